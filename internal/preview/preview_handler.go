package preview

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mediarepo/internal/domain"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetPreview(w http.ResponseWriter, r *http.Request) {
	fileUUID, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		http.Error(w, "Invalid file UUID", http.StatusBadRequest)
		return
	}

	previewData, err := h.service.GetOrGeneratePreview(r.Context(), fileUUID.String())
	if err != nil {
		log.Printf("[Preview] Failed to get preview for %s: %v", fileUUID, err)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			http.Error(w, "File not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrValidation):
			http.Error(w, "Preview is not supported for this file type", http.StatusBadRequest)
		default:
			http.Error(w, "Failed to generate preview", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")

	w.WriteHeader(http.StatusOK)
	w.Write(previewData)
}
