package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediarepo/internal/domain"
	"mediarepo/internal/identity"
)

func newTestAdminService(links *fakeLinkStore, logs *fakeAccessLogStore, resolve UserResolver) *AdminService {
	if resolve == nil {
		resolve = func(_ context.Context, _ []string) ([]identity.UserInfo, error) {
			return nil, nil
		}
	}
	downloads := &fakeDownloadStore{stats: []domain.RepositoryDownloadStats{
		{RepositoryID: 1, RepositoryName: "Design docs", DownloadCount: 3},
	}}
	repos := &fakeAdminRepoStore{items: []domain.AdminRepositoryItem{
		{Repository: domain.Repository{ID: 1, Name: "Design docs", OwnerID: testOwner.ID}},
	}}

	return NewAdminService(links, logs, downloads, repos, resolve)
}

func TestRevokeShareLinkIdempotent(t *testing.T) {
	shareSvc, links, _ := newTestShareService(false)
	adminSvc := newTestAdminService(links, &fakeAccessLogStore{}, nil)

	link, err := shareSvc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	require.NoError(t, adminSvc.RevokeShareLink(context.Background(), link.ID))
	// Повторный отзыв — такой же успех
	require.NoError(t, adminSvc.RevokeShareLink(context.Background(), link.ID))

	_, err = shareSvc.AccessByToken(context.Background(), AccessRequest{Token: link.Token})
	assert.ErrorIs(t, err, domain.ErrRevoked)
}

func TestRevokeUnknownShareLink(t *testing.T) {
	adminSvc := newTestAdminService(newFakeLinkStore(), &fakeAccessLogStore{}, nil)

	err := adminSvc.RevokeShareLink(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReactivateShareLink(t *testing.T) {
	shareSvc, links, _ := newTestShareService(false)
	adminSvc := newTestAdminService(links, &fakeAccessLogStore{}, nil)

	link, err := shareSvc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	require.NoError(t, adminSvc.RevokeShareLink(context.Background(), link.ID))
	require.NoError(t, adminSvc.ReactivateShareLink(context.Background(), link.ID))

	_, err = shareSvc.AccessByToken(context.Background(), AccessRequest{Token: link.Token})
	assert.NoError(t, err)
}

// Реактивация не оживляет истекшую ссылку: expires_at остается в прошлом
func TestReactivateExpiredLinkStaysExpired(t *testing.T) {
	shareSvc, links, _ := newTestShareService(false)
	adminSvc := newTestAdminService(links, &fakeAccessLogStore{}, nil)

	link, err := shareSvc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	links.links[link.Token].ExpiresAt = &past

	require.NoError(t, adminSvc.RevokeShareLink(context.Background(), link.ID))
	require.NoError(t, adminSvc.ReactivateShareLink(context.Background(), link.ID))

	_, err = shareSvc.AccessByToken(context.Background(), AccessRequest{Token: link.Token})
	assert.ErrorIs(t, err, domain.ErrExpired)
}

func TestListShareLinksDenormalizesCreators(t *testing.T) {
	shareSvc, links, _ := newTestShareService(false)

	resolve := func(_ context.Context, ids []string) ([]identity.UserInfo, error) {
		return []identity.UserInfo{{ID: testOwner.ID, Username: "alice"}}, nil
	}
	adminSvc := newTestAdminService(links, &fakeAccessLogStore{}, resolve)

	_, err := shareSvc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	items, err := adminSvc.ListShareLinks(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "alice", items[0].CreatorName)
}

// Недоступный identity-сервис не роняет список: вместо имен остаются id
func TestListShareLinksFallsBackToIDs(t *testing.T) {
	shareSvc, links, _ := newTestShareService(false)

	resolve := func(_ context.Context, _ []string) ([]identity.UserInfo, error) {
		return nil, errors.New("identity service unavailable")
	}
	adminSvc := newTestAdminService(links, &fakeAccessLogStore{}, resolve)

	_, err := shareSvc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	items, err := adminSvc.ListShareLinks(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, testOwner.ID, items[0].CreatorName)
}

func TestShareLinkAccessLogs(t *testing.T) {
	shareSvc, links, logs := newTestShareService(false)
	adminSvc := newTestAdminService(links, logs, nil)

	link, err := shareSvc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	_, err = shareSvc.AccessByToken(context.Background(), AccessRequest{Token: link.Token, Email: "guest@example.com"})
	require.NoError(t, err)

	entries, err := adminSvc.ShareLinkAccessLogs(context.Background(), link.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "guest@example.com", entries[0].Email)

	_, err = adminSvc.ShareLinkAccessLogs(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadStats(t *testing.T) {
	adminSvc := newTestAdminService(newFakeLinkStore(), &fakeAccessLogStore{}, nil)

	stats, err := adminSvc.DownloadStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(3), stats[0].DownloadCount)
}
