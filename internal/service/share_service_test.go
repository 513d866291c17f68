package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediarepo/internal/domain"
	"mediarepo/internal/identity"
)

var (
	testOwner = &identity.Caller{ID: "user-1", Username: "alice", Role: identity.RoleUser}
	testAdmin = &identity.Caller{ID: "root-1", Username: "root", Role: identity.RoleSuperAdmin}
	testOther = &identity.Caller{ID: "user-2", Username: "bob", Role: identity.RoleUser}
)

func newTestShareService(requireEmail bool) (*ShareService, *fakeLinkStore, *fakeAccessLogStore) {
	links := newFakeLinkStore()
	logs := &fakeAccessLogStore{}
	repos := &fakeRepoStore{repos: map[int64]*domain.Repository{
		1: {ID: 1, Name: "Design docs", Description: "Layouts", RepoType: "documents", OwnerID: testOwner.ID, CreatedAt: time.Now()},
	}}
	files := &fakeFileStore{files: map[int64][]domain.File{
		1: {{ID: 10, OriginalName: "plan.pdf", MIMEType: "application/pdf", RepositoryID: 1}},
	}}

	return NewShareService(links, logs, repos, files, requireEmail), links, logs
}

func TestCreateShareLinkDefaults(t *testing.T) {
	svc, _, _ := newTestShareService(false)

	link, err := svc.CreateShareLink(context.Background(), 1, testOwner, "", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.PermissionView, link.Permission)
	assert.True(t, link.IsActive)
	assert.Nil(t, link.ExpiresAt)
	assert.Zero(t, link.ViewCount)
	assert.NotEmpty(t, link.Token)
	assert.Equal(t, testOwner.ID, link.CreatedBy)
}

func TestCreateShareLinkUniqueTokens(t *testing.T) {
	svc, _, _ := newTestShareService(false)

	first, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)
	second, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionEdit, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestCreateShareLinkExpiry(t *testing.T) {
	svc, _, _ := newTestShareService(false)

	days := 7
	link, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, &days)
	require.NoError(t, err)
	require.NotNil(t, link.ExpiresAt)

	expected := time.Now().AddDate(0, 0, 7)
	assert.WithinDuration(t, expected, *link.ExpiresAt, time.Minute)
}

func TestCreateShareLinkInvalidExpiry(t *testing.T) {
	svc, _, _ := newTestShareService(false)

	days := 0
	_, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, &days)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateShareLinkInvalidPermission(t *testing.T) {
	svc, _, _ := newTestShareService(false)

	_, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.Permission("owner"), nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateShareLinkForbiddenForNonOwner(t *testing.T) {
	svc, links, _ := newTestShareService(false)

	_, err := svc.CreateShareLink(context.Background(), 1, testOther, domain.PermissionView, nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Отказ происходит до какой-либо записи
	assert.Zero(t, links.createCalls)
}

func TestCreateShareLinkAllowedForSuperAdmin(t *testing.T) {
	svc, _, _ := newTestShareService(false)

	link, err := svc.CreateShareLink(context.Background(), 1, testAdmin, domain.PermissionView, nil)
	require.NoError(t, err)
	assert.Equal(t, testAdmin.ID, link.CreatedBy)
}

func TestCreateShareLinkUnknownRepository(t *testing.T) {
	svc, _, _ := newTestShareService(false)

	_, err := svc.CreateShareLink(context.Background(), 42, testOwner, domain.PermissionView, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateShareLinkRetriesOnTokenCollision(t *testing.T) {
	svc, links, _ := newTestShareService(false)
	links.failCreates = 2

	link, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, link.Token)
	assert.Equal(t, 3, links.createCalls)
}

func TestAccessByTokenUnknown(t *testing.T) {
	svc, _, _ := newTestShareService(false)

	_, err := svc.AccessByToken(context.Background(), AccessRequest{Token: "no-such-token"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccessByTokenRevoked(t *testing.T) {
	svc, links, _ := newTestShareService(false)

	link, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)
	require.NoError(t, links.SetActive(context.Background(), link.ID, false))

	_, err = svc.AccessByToken(context.Background(), AccessRequest{Token: link.Token})
	assert.ErrorIs(t, err, domain.ErrRevoked)
}

func TestAccessByTokenExpired(t *testing.T) {
	svc, links, _ := newTestShareService(false)

	link, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	links.links[link.Token].ExpiresAt = &past

	_, err = svc.AccessByToken(context.Background(), AccessRequest{Token: link.Token})
	assert.ErrorIs(t, err, domain.ErrExpired)
}

// Отозванная и одновременно истекшая ссылка отвечает как отозванная
func TestAccessByTokenRevokedBeatsExpired(t *testing.T) {
	svc, links, _ := newTestShareService(false)

	link, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	links.links[link.Token].ExpiresAt = &past
	require.NoError(t, links.SetActive(context.Background(), link.ID, false))

	_, err = svc.AccessByToken(context.Background(), AccessRequest{Token: link.Token})
	assert.ErrorIs(t, err, domain.ErrRevoked)
}

func TestAccessByTokenReturnsSnapshot(t *testing.T) {
	svc, _, _ := newTestShareService(true)

	link, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionEdit, nil)
	require.NoError(t, err)

	shared, err := svc.AccessByToken(context.Background(), AccessRequest{Token: link.Token, Email: "guest@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "Design docs", shared.Name)
	assert.Equal(t, domain.PermissionEdit, shared.Permission)
	assert.Len(t, shared.Files, 1)
	assert.False(t, shared.RequiresEmail)
}

// Флаг requires_email стоит, пока гость не указал почту в этом же заходе
func TestAccessByTokenEmailGate(t *testing.T) {
	svc, _, _ := newTestShareService(true)

	link, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	shared, err := svc.AccessByToken(context.Background(), AccessRequest{Token: link.Token})
	require.NoError(t, err)
	assert.True(t, shared.RequiresEmail)

	shared, err = svc.AccessByToken(context.Background(), AccessRequest{Token: link.Token, Email: "guest@example.com"})
	require.NoError(t, err)
	assert.False(t, shared.RequiresEmail)
}

// При выключенном требовании почты флаг не поднимается никогда
func TestAccessByTokenEmailGateDisabled(t *testing.T) {
	svc, _, _ := newTestShareService(false)

	link, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	shared, err := svc.AccessByToken(context.Background(), AccessRequest{Token: link.Token})
	require.NoError(t, err)
	assert.False(t, shared.RequiresEmail)
}

func TestAccessByTokenCountsViewsAndLogs(t *testing.T) {
	svc, links, logs := newTestShareService(false)

	link, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := svc.AccessByToken(context.Background(), AccessRequest{Token: link.Token, IPAddress: "10.0.0.1"})
		require.NoError(t, err)
	}

	stored, err := links.GetByToken(context.Background(), link.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.ViewCount)
	assert.Equal(t, 2, logs.count(link.ID))
}

// Параллельные заходы не теряют инкременты счетчика
func TestAccessByTokenConcurrentViews(t *testing.T) {
	svc, links, logs := newTestShareService(false)

	link, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	const workers = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AccessByToken(context.Background(), AccessRequest{Token: link.Token})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := links.GetByToken(context.Background(), link.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), stored.ViewCount)
	assert.Equal(t, workers, logs.count(link.ID))
}

// Падение журнала не должно ломать сам доступ
func TestAccessByTokenSurvivesLogFailure(t *testing.T) {
	svc, links, logs := newTestShareService(false)
	logs.failing = true

	link, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	shared, err := svc.AccessByToken(context.Background(), AccessRequest{Token: link.Token})
	require.NoError(t, err)
	assert.Equal(t, "Design docs", shared.Name)

	// Просмотр при этом засчитан
	stored, err := links.GetByToken(context.Background(), link.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ViewCount)
}

func TestResolveActiveLink(t *testing.T) {
	svc, links, _ := newTestShareService(false)

	link, err := svc.CreateShareLink(context.Background(), 1, testOwner, domain.PermissionView, nil)
	require.NoError(t, err)

	resolved, err := svc.ResolveActiveLink(context.Background(), link.Token)
	require.NoError(t, err)
	assert.Equal(t, link.ID, resolved.ID)

	// Просмотры через resolve не считаются
	stored, err := links.GetByToken(context.Background(), link.Token)
	require.NoError(t, err)
	assert.Zero(t, stored.ViewCount)

	require.NoError(t, links.SetActive(context.Background(), link.ID, false))
	_, err = svc.ResolveActiveLink(context.Background(), link.Token)
	assert.ErrorIs(t, err, domain.ErrRevoked)
}
