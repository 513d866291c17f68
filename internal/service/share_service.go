package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"time"

	"mediarepo/internal/domain"
	"mediarepo/internal/identity"
)

// Количество попыток при коллизии токена. На 32 случайных байтах коллизия
// практически невозможна, но уникальный индекс всё равно прикрыт повтором.
const maxTokenAttempts = 5

// ShareLinkStore — операции над ссылками, нужные сервисам
type ShareLinkStore interface {
	Create(ctx context.Context, link *domain.ShareLink) error
	GetByToken(ctx context.Context, token string) (*domain.ShareLink, error)
	GetByID(ctx context.Context, id int64) (*domain.ShareLink, error)
	SetActive(ctx context.Context, id int64, active bool) error
	IncrementViewCount(ctx context.Context, token string) (int64, error)
	ListAll(ctx context.Context) ([]domain.AdminShareLinkItem, error)
}

type AccessLogStore interface {
	Append(ctx context.Context, entry *domain.LinkAccessLog) error
	GetByShareLink(ctx context.Context, shareLinkID int64) ([]domain.LinkAccessLog, error)
}

type RepositoryStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Repository, error)
}

type FileStore interface {
	GetByRepository(ctx context.Context, repositoryID int64) ([]domain.File, error)
}

type ShareService struct {
	links        ShareLinkStore
	accessLogs   AccessLogStore
	repos        RepositoryStore
	files        FileStore
	requireEmail bool
}

func NewShareService(
	links ShareLinkStore,
	accessLogs AccessLogStore,
	repos RepositoryStore,
	files FileStore,
	requireEmail bool,
) *ShareService {
	return &ShareService{
		links:        links,
		accessLogs:   accessLogs,
		repos:        repos,
		files:        files,
		requireEmail: requireEmail,
	}
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// CreateShareLink выпускает публичную ссылку на репозиторий. Разрешено
// владельцу репозитория и супер-админу, всем остальным — отказ до каких-либо
// записей в базу.
func (s *ShareService) CreateShareLink(
	ctx context.Context,
	repositoryID int64,
	caller *identity.Caller,
	permission domain.Permission,
	expiresInDays *int,
) (*domain.ShareLink, error) {
	repo, err := s.repos.GetByID(ctx, repositoryID)
	if err != nil {
		return nil, err
	}

	if repo.OwnerID != caller.ID && !caller.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}

	if permission == "" {
		permission = domain.PermissionView
	}
	if !permission.Valid() {
		return nil, fmt.Errorf("%w: unknown permission %q", domain.ErrValidation, permission)
	}

	var expiresAt *time.Time
	if expiresInDays != nil {
		if *expiresInDays <= 0 {
			return nil, fmt.Errorf("%w: expires_in_days must be positive", domain.ErrValidation)
		}
		t := time.Now().AddDate(0, 0, *expiresInDays)
		expiresAt = &t
	}

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token, err := generateToken()
		if err != nil {
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}

		link := &domain.ShareLink{
			Token:        token,
			RepositoryID: repositoryID,
			Permission:   permission,
			CreatedBy:    caller.ID,
			ExpiresAt:    expiresAt,
		}

		err = s.links.Create(ctx, link)
		if errors.Is(err, domain.ErrDuplicateToken) {
			log.Printf("[ShareService] Token collision on attempt %d, retrying", attempt+1)
			continue
		}
		if err != nil {
			return nil, err
		}

		return link, nil
	}

	return nil, fmt.Errorf("failed to create share link: %w", domain.ErrDuplicateToken)
}

// AccessRequest — один анонимный заход по публичной ссылке
type AccessRequest struct {
	Token     string
	Email     string
	IPAddress string
	UserAgent string
}

// AccessByToken решает судьбу захода по токену. Порядок проверок строгий:
// несуществующий токен, потом отзыв, потом истечение. Отозванная И истекшая
// ссылка отвечает как отозванная.
func (s *ShareService) AccessByToken(ctx context.Context, req AccessRequest) (*domain.SharedRepository, error) {
	link, err := s.links.GetByToken(ctx, req.Token)
	if err != nil {
		return nil, err
	}

	if !link.IsActive {
		return nil, domain.ErrRevoked
	}

	if link.Expired(time.Now()) {
		return nil, domain.ErrExpired
	}

	// Счетчик просмотров — атомарный инкремент в базе, до сборки ответа
	if _, err := s.links.IncrementViewCount(ctx, req.Token); err != nil {
		return nil, fmt.Errorf("failed to count view: %w", err)
	}

	// Журнал доступов best-effort: его отказ не должен ломать сам доступ
	entry := &domain.LinkAccessLog{
		ShareLinkID: link.ID,
		Email:       req.Email,
		IPAddress:   req.IPAddress,
		UserAgent:   req.UserAgent,
	}
	if err := s.accessLogs.Append(ctx, entry); err != nil {
		log.Printf("[ShareService] Failed to log access for link %d: %v", link.ID, err)
	}

	repo, err := s.repos.GetByID(ctx, link.RepositoryID)
	if err != nil {
		return nil, err
	}

	files, err := s.files.GetByRepository(ctx, link.RepositoryID)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []domain.File{}
	}

	return &domain.SharedRepository{
		ID:            repo.ID,
		Name:          repo.Name,
		Description:   repo.Description,
		RepoType:      repo.RepoType,
		Permission:    link.Permission,
		Files:         files,
		RequiresEmail: s.requireEmail && req.Email == "",
		CreatedAt:     repo.CreatedAt,
	}, nil
}

// ResolveActiveLink возвращает ссылку по токену, прошедшую все проверки
// доступа, но без учета просмотра. Используется при скачивании файлов по
// публичной ссылке.
func (s *ShareService) ResolveActiveLink(ctx context.Context, token string) (*domain.ShareLink, error) {
	link, err := s.links.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if !link.IsActive {
		return nil, domain.ErrRevoked
	}

	if link.Expired(time.Now()) {
		return nil, domain.ErrExpired
	}

	return link, nil
}
