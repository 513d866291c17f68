package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediarepo/internal/domain"
	"mediarepo/internal/service"
)

// Минимальные in-memory стора для прогонки анонимного доступа через роутер

type memLinkStore struct {
	links map[string]*domain.ShareLink
}

func (m *memLinkStore) Create(_ context.Context, link *domain.ShareLink) error {
	m.links[link.Token] = link
	return nil
}

func (m *memLinkStore) GetByToken(_ context.Context, token string) (*domain.ShareLink, error) {
	link, ok := m.links[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return link, nil
}

func (m *memLinkStore) GetByID(_ context.Context, id int64) (*domain.ShareLink, error) {
	for _, link := range m.links {
		if link.ID == id {
			return link, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memLinkStore) SetActive(_ context.Context, id int64, active bool) error {
	for _, link := range m.links {
		if link.ID == id {
			link.IsActive = active
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memLinkStore) IncrementViewCount(_ context.Context, token string) (int64, error) {
	link, ok := m.links[token]
	if !ok {
		return 0, domain.ErrNotFound
	}
	link.ViewCount++
	return link.ViewCount, nil
}

func (m *memLinkStore) ListAll(_ context.Context) ([]domain.AdminShareLinkItem, error) {
	return nil, nil
}

type memLogStore struct {
	entries []domain.LinkAccessLog
}

func (m *memLogStore) Append(_ context.Context, entry *domain.LinkAccessLog) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memLogStore) GetByShareLink(_ context.Context, _ int64) ([]domain.LinkAccessLog, error) {
	return m.entries, nil
}

type memRepoStore struct {
	repo *domain.Repository
}

func (m *memRepoStore) GetByID(_ context.Context, id int64) (*domain.Repository, error) {
	if m.repo == nil || m.repo.ID != id {
		return nil, domain.ErrNotFound
	}
	return m.repo, nil
}

type memFileStore struct{}

func (m *memFileStore) GetByRepository(_ context.Context, _ int64) ([]domain.File, error) {
	return nil, nil
}

func newShareRouter(t *testing.T, links *memLinkStore, logs *memLogStore) http.Handler {
	t.Helper()

	repoStore := &memRepoStore{repo: &domain.Repository{
		ID: 1, Name: "Design docs", RepoType: "documents", OwnerID: "user-1", CreatedAt: time.Now(),
	}}

	svc := service.NewShareService(links, logs, repoStore, &memFileStore{}, false)
	h := NewShareHandler(svc, "http://localhost:2525")

	r := chi.NewRouter()
	r.Get("/share/{token}", h.AccessSharedRepository)
	r.Post("/share/{token}", h.AccessSharedRepository)
	return r
}

func activeLink(token string) *domain.ShareLink {
	return &domain.ShareLink{
		ID:           1,
		Token:        token,
		RepositoryID: 1,
		Permission:   domain.PermissionView,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

func TestAccessSharedRepositoryOK(t *testing.T) {
	links := &memLinkStore{links: map[string]*domain.ShareLink{"tok-1": activeLink("tok-1")}}
	logs := &memLogStore{}
	router := newShareRouter(t, links, logs)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/share/tok-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var shared domain.SharedRepository
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shared))
	assert.Equal(t, "Design docs", shared.Name)
	assert.NotNil(t, shared.Files)

	assert.Equal(t, int64(1), links.links["tok-1"].ViewCount)
	assert.Len(t, logs.entries, 1)
}

func TestAccessSharedRepositoryNotFound(t *testing.T) {
	router := newShareRouter(t, &memLinkStore{links: map[string]*domain.ShareLink{}}, &memLogStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/share/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccessSharedRepositoryRevoked(t *testing.T) {
	link := activeLink("tok-1")
	link.IsActive = false
	router := newShareRouter(t, &memLinkStore{links: map[string]*domain.ShareLink{"tok-1": link}}, &memLogStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/share/tok-1", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "revoked")
}

func TestAccessSharedRepositoryExpired(t *testing.T) {
	link := activeLink("tok-1")
	past := time.Now().Add(-time.Hour)
	link.ExpiresAt = &past
	router := newShareRouter(t, &memLinkStore{links: map[string]*domain.ShareLink{"tok-1": link}}, &memLogStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/share/tok-1", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestAccessSharedRepositoryRecordsEmail(t *testing.T) {
	links := &memLinkStore{links: map[string]*domain.ShareLink{"tok-1": activeLink("tok-1")}}
	logs := &memLogStore{}
	router := newShareRouter(t, links, logs)

	body := strings.NewReader(`{"email":"guest@example.com"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/share/tok-1", body))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, logs.entries, 1)
	assert.Equal(t, "guest@example.com", logs.entries[0].Email)
}
