package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"mediarepo/internal/domain"
	"mediarepo/internal/identity"
	"mediarepo/internal/service"
)

type ShareHandler struct {
	shareService *service.ShareService
	baseURL      string
}

func NewShareHandler(shareService *service.ShareService, baseURL string) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
		baseURL:      baseURL,
	}
}

type createShareLinkRequest struct {
	Permission    domain.Permission `json:"permission"`
	ExpiresInDays *int              `json:"expires_in_days,omitempty"`
}

type shareLinkResponse struct {
	ID         int64             `json:"id"`
	Token      string            `json:"token"`
	ShareURL   string            `json:"share_url"`
	Permission domain.Permission `json:"permission"`
	ExpiresAt  *time.Time        `json:"expires_at,omitempty"`
	IsActive   bool              `json:"is_active"`
	ViewCount  int64             `json:"view_count"`
	CreatedAt  time.Time         `json:"created_at"`
}

// CreateShareLink выпускает публичную ссылку на репозиторий
func (h *ShareHandler) CreateShareLink(w http.ResponseWriter, r *http.Request) {
	caller, err := identity.VerifyCaller(r)
	if err != nil {
		log.Printf("[CreateShareLink] Authentication failed: %v", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	repositoryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid repository id", domain.ErrValidation))
		return
	}

	var req createShareLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	link, err := h.shareService.CreateShareLink(r.Context(), repositoryID, caller, req.Permission, req.ExpiresInDays)
	if err != nil {
		log.Printf("[CreateShareLink] Failed to create share link: %v", err)
		writeError(w, err)
		return
	}

	log.Printf("[CreateShareLink] Created link %d for repository %d", link.ID, repositoryID)
	writeJSON(w, http.StatusCreated, shareLinkResponse{
		ID:         link.ID,
		Token:      link.Token,
		ShareURL:   fmt.Sprintf("%s/share/%s", h.baseURL, link.Token),
		Permission: link.Permission,
		ExpiresAt:  link.ExpiresAt,
		IsActive:   link.IsActive,
		ViewCount:  link.ViewCount,
		CreatedAt:  link.CreatedAt,
	})
}

// AccessSharedRepository — анонимный заход по публичной ссылке. GET без
// тела; POST может нести email посетителя для журнала.
func (h *ShareHandler) AccessSharedRepository(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		writeError(w, fmt.Errorf("%w: token is required", domain.ErrValidation))
		return
	}

	var email string
	if r.Method == http.MethodPost {
		var body struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
			writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
			return
		}
		email = body.Email
	}

	shared, err := h.shareService.AccessByToken(r.Context(), service.AccessRequest{
		Token:     token,
		Email:     email,
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		log.Printf("[AccessShared] Access denied for token: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, shared)
}
