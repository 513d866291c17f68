package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mediarepo/internal/domain"
	"mediarepo/internal/identity"
	"mediarepo/internal/service"
)

// AdminHandler — обзорная панель. Все операции только для super_admin.
type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// requireAdmin проверяет вызывающего и его роль. Неадминам — 403 без
// деталей о том, что скрывается за маршрутом.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) *identity.Caller {
	caller, err := identity.VerifyCaller(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	if !caller.IsSuperAdmin() {
		writeError(w, domain.ErrForbidden)
		return nil
	}

	return caller
}

func (h *AdminHandler) ListShareLinks(w http.ResponseWriter, r *http.Request) {
	if h.requireAdmin(w, r) == nil {
		return
	}

	links, err := h.adminService.ListShareLinks(r.Context())
	if err != nil {
		log.Printf("[AdminListShareLinks] Failed: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, links)
}

func (h *AdminHandler) RevokeShareLink(w http.ResponseWriter, r *http.Request) {
	if h.requireAdmin(w, r) == nil {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid share link id", domain.ErrValidation))
		return
	}

	if err := h.adminService.RevokeShareLink(r.Context(), id); err != nil {
		log.Printf("[AdminRevokeShareLink] Failed for link %d: %v", id, err)
		writeError(w, err)
		return
	}

	log.Printf("[AdminRevokeShareLink] Revoked link %d", id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "revoked"})
}

func (h *AdminHandler) ReactivateShareLink(w http.ResponseWriter, r *http.Request) {
	if h.requireAdmin(w, r) == nil {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid share link id", domain.ErrValidation))
		return
	}

	if err := h.adminService.ReactivateShareLink(r.Context(), id); err != nil {
		log.Printf("[AdminReactivateShareLink] Failed for link %d: %v", id, err)
		writeError(w, err)
		return
	}

	log.Printf("[AdminReactivateShareLink] Reactivated link %d", id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "active"})
}

func (h *AdminHandler) ShareLinkAccessLogs(w http.ResponseWriter, r *http.Request) {
	if h.requireAdmin(w, r) == nil {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid share link id", domain.ErrValidation))
		return
	}

	entries, err := h.adminService.ShareLinkAccessLogs(r.Context(), id)
	if err != nil {
		log.Printf("[AdminAccessLogs] Failed for link %d: %v", id, err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *AdminHandler) DownloadStats(w http.ResponseWriter, r *http.Request) {
	if h.requireAdmin(w, r) == nil {
		return
	}

	stats, err := h.adminService.DownloadStats(r.Context())
	if err != nil {
		log.Printf("[AdminDownloadStats] Failed: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) ListRepositories(w http.ResponseWriter, r *http.Request) {
	if h.requireAdmin(w, r) == nil {
		return
	}

	repos, err := h.adminService.ListRepositories(r.Context())
	if err != nil {
		log.Printf("[AdminListRepositories] Failed: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, repos)
}
