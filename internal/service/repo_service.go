package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"mediarepo/internal/domain"
	"mediarepo/internal/identity"
	"mediarepo/internal/service/s3"
)

type RepoStore interface {
	Create(ctx context.Context, repo *domain.Repository) error
	GetByID(ctx context.Context, id int64) (*domain.Repository, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.RepositoryListItem, error)
	Delete(ctx context.Context, id int64) error
}

type MeetingStore interface {
	Create(ctx context.Context, meeting *domain.Meeting) error
	GetByRepository(ctx context.Context, repositoryID int64) ([]domain.Meeting, error)
}

type RepoService struct {
	repos    RepoStore
	files    FileStore
	meetings MeetingStore
	s3Client s3.Storage
}

func NewRepoService(repos RepoStore, files FileStore, meetings MeetingStore, s3Client s3.Storage) *RepoService {
	return &RepoService{
		repos:    repos,
		files:    files,
		meetings: meetings,
		s3Client: s3Client,
	}
}

func (s *RepoService) CreateRepository(ctx context.Context, caller *identity.Caller, name, description, repoType string) (*domain.Repository, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: repository name is required", domain.ErrValidation)
	}
	if repoType == "" {
		repoType = "general"
	}

	repo := &domain.Repository{
		Name:        name,
		Description: description,
		RepoType:    repoType,
		OwnerID:     caller.ID,
	}

	if err := s.repos.Create(ctx, repo); err != nil {
		return nil, err
	}

	return repo, nil
}

func (s *RepoService) ListMine(ctx context.Context, caller *identity.Caller) ([]domain.RepositoryListItem, error) {
	repos, err := s.repos.ListByOwner(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if repos == nil {
		repos = []domain.RepositoryListItem{}
	}

	return repos, nil
}

// GetRepository возвращает репозиторий с файлами и встречами. Доступ только
// владельцу и супер-админу: анонимы ходят через публичные ссылки.
func (s *RepoService) GetRepository(ctx context.Context, id int64, caller *identity.Caller) (*domain.RepositoryDetail, error) {
	repo, err := s.repos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if repo.OwnerID != caller.ID && !caller.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}

	files, err := s.files.GetByRepository(ctx, id)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []domain.File{}
	}

	meetings, err := s.meetings.GetByRepository(ctx, id)
	if err != nil {
		return nil, err
	}
	if meetings == nil {
		meetings = []domain.Meeting{}
	}

	return &domain.RepositoryDetail{
		Repository: *repo,
		Files:      files,
		Meetings:   meetings,
	}, nil
}

// DeleteRepository удаляет репозиторий вместе с содержимым. Строки в базе
// уходят каскадом, объекты в S3 подчищаются best-effort до удаления строк.
func (s *RepoService) DeleteRepository(ctx context.Context, id int64, caller *identity.Caller) error {
	repo, err := s.repos.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if repo.OwnerID != caller.ID && !caller.IsSuperAdmin() {
		return domain.ErrForbidden
	}

	files, err := s.files.GetByRepository(ctx, id)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := s.s3Client.DeleteObject(file.Name); err != nil {
			log.Printf("[RepoService] Failed to delete %s from s3: %v", file.Name, err)
		}
	}

	return s.repos.Delete(ctx, id)
}

// CreateMeeting прикрепляет встречу к репозиторию
func (s *RepoService) CreateMeeting(
	ctx context.Context,
	repositoryID int64,
	caller *identity.Caller,
	meeting *domain.Meeting,
) (*domain.Meeting, error) {
	repo, err := s.repos.GetByID(ctx, repositoryID)
	if err != nil {
		return nil, err
	}

	if repo.OwnerID != caller.ID && !caller.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}

	if strings.TrimSpace(meeting.Title) == "" {
		return nil, fmt.Errorf("%w: meeting title is required", domain.ErrValidation)
	}

	meeting.RepositoryID = repositoryID
	meeting.CreatedBy = caller.ID

	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, err
	}

	return meeting, nil
}
