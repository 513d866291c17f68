package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"mediarepo/internal/domain"
	"mediarepo/internal/identity"
	"mediarepo/internal/service"
)

type RepositoryHandler struct {
	repoService *service.RepoService
}

func NewRepositoryHandler(repoService *service.RepoService) *RepositoryHandler {
	return &RepositoryHandler{repoService: repoService}
}

type createRepositoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	RepoType    string `json:"type"`
}

func (h *RepositoryHandler) CreateRepository(w http.ResponseWriter, r *http.Request) {
	caller, err := identity.VerifyCaller(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createRepositoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	repo, err := h.repoService.CreateRepository(r.Context(), caller, req.Name, req.Description, req.RepoType)
	if err != nil {
		log.Printf("[CreateRepository] Failed: %v", err)
		writeError(w, err)
		return
	}

	log.Printf("[CreateRepository] Created repository %d for user %s", repo.ID, caller.ID)
	writeJSON(w, http.StatusCreated, repo)
}

func (h *RepositoryHandler) ListRepositories(w http.ResponseWriter, r *http.Request) {
	caller, err := identity.VerifyCaller(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	repos, err := h.repoService.ListMine(r.Context(), caller)
	if err != nil {
		log.Printf("[ListRepositories] Failed: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, repos)
}

func (h *RepositoryHandler) GetRepository(w http.ResponseWriter, r *http.Request) {
	caller, err := identity.VerifyCaller(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid repository id", domain.ErrValidation))
		return
	}

	detail, err := h.repoService.GetRepository(r.Context(), id, caller)
	if err != nil {
		log.Printf("[GetRepository] Failed for id %d: %v", id, err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (h *RepositoryHandler) DeleteRepository(w http.ResponseWriter, r *http.Request) {
	caller, err := identity.VerifyCaller(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid repository id", domain.ErrValidation))
		return
	}

	if err := h.repoService.DeleteRepository(r.Context(), id, caller); err != nil {
		log.Printf("[DeleteRepository] Failed for id %d: %v", id, err)
		writeError(w, err)
		return
	}

	log.Printf("[DeleteRepository] Deleted repository %d", id)
	w.WriteHeader(http.StatusNoContent)
}

type createMeetingRequest struct {
	Title       string     `json:"title"`
	Platform    string     `json:"platform"`
	MeetingURL  string     `json:"meeting_url"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

func (h *RepositoryHandler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	caller, err := identity.VerifyCaller(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	repositoryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid repository id", domain.ErrValidation))
		return
	}

	var req createMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	meeting, err := h.repoService.CreateMeeting(r.Context(), repositoryID, caller, &domain.Meeting{
		Title:       req.Title,
		Platform:    req.Platform,
		MeetingURL:  req.MeetingURL,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		log.Printf("[CreateMeeting] Failed for repository %d: %v", repositoryID, err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, meeting)
}
