package service

import (
	"context"
	"log"

	"mediarepo/internal/domain"
	"mediarepo/internal/identity"
)

type DownloadLogStore interface {
	Append(ctx context.Context, entry *domain.DownloadLog) error
	StatsByRepository(ctx context.Context) ([]domain.RepositoryDownloadStats, error)
}

type AdminRepositoryStore interface {
	ListAll(ctx context.Context) ([]domain.AdminRepositoryItem, error)
}

// UserResolver запрашивает пользователей у identity-сервиса пачкой
type UserResolver func(ctx context.Context, ids []string) ([]identity.UserInfo, error)

// AdminService — обзорная панель для супер-админа. Проверка роли выполняется
// на уровне handler-а, сюда запросы попадают уже авторизованными.
type AdminService struct {
	links        ShareLinkStore
	accessLogs   AccessLogStore
	downloads    DownloadLogStore
	repos        AdminRepositoryStore
	resolveUsers UserResolver
}

func NewAdminService(
	links ShareLinkStore,
	accessLogs AccessLogStore,
	downloads DownloadLogStore,
	repos AdminRepositoryStore,
	resolveUsers UserResolver,
) *AdminService {
	return &AdminService{
		links:        links,
		accessLogs:   accessLogs,
		downloads:    downloads,
		repos:        repos,
		resolveUsers: resolveUsers,
	}
}

// usernamesFor собирает имена пользователей по их id. Недоступность
// identity-сервиса не должна ронять админские списки: тогда вместо имен
// останутся голые id.
func (s *AdminService) usernamesFor(ctx context.Context, ids []string) map[string]string {
	names := make(map[string]string)

	users, err := s.resolveUsers(ctx, ids)
	if err != nil {
		log.Printf("[AdminService] Failed to resolve usernames: %v", err)
		return names
	}

	for _, u := range users {
		names[u.ID] = u.Username
	}

	return names
}

func (s *AdminService) ListShareLinks(ctx context.Context) ([]domain.AdminShareLinkItem, error) {
	items, err := s.links.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.CreatedBy)
	}

	names := s.usernamesFor(ctx, ids)
	for i := range items {
		if name, ok := names[items[i].CreatedBy]; ok {
			items[i].CreatorName = name
		} else {
			items[i].CreatorName = items[i].CreatedBy
		}
	}

	return items, nil
}

// RevokeShareLink гасит ссылку. Повторный отзыв уже отозванной ссылки —
// успешный no-op.
func (s *AdminService) RevokeShareLink(ctx context.Context, id int64) error {
	return s.links.SetActive(ctx, id, false)
}

// ReactivateShareLink включает ссылку обратно. Истекшую ссылку это не
// оживляет: expires_at никто не трогает.
func (s *AdminService) ReactivateShareLink(ctx context.Context, id int64) error {
	return s.links.SetActive(ctx, id, true)
}

func (s *AdminService) ShareLinkAccessLogs(ctx context.Context, linkID int64) ([]domain.LinkAccessLog, error) {
	if _, err := s.links.GetByID(ctx, linkID); err != nil {
		return nil, err
	}

	entries, err := s.accessLogs.GetByShareLink(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.LinkAccessLog{}
	}

	return entries, nil
}

func (s *AdminService) DownloadStats(ctx context.Context) ([]domain.RepositoryDownloadStats, error) {
	stats, err := s.downloads.StatsByRepository(ctx)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []domain.RepositoryDownloadStats{}
	}

	return stats, nil
}

func (s *AdminService) ListRepositories(ctx context.Context) ([]domain.AdminRepositoryItem, error) {
	items, err := s.repos.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.OwnerID)
	}

	names := s.usernamesFor(ctx, ids)
	for i := range items {
		if name, ok := names[items[i].OwnerID]; ok {
			items[i].OwnerName = name
		} else {
			items[i].OwnerName = items[i].OwnerID
		}
	}

	return items, nil
}
