package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"

	"mediarepo/internal/config"
	"mediarepo/internal/domain"
	"mediarepo/internal/identity"
	"mediarepo/internal/service/s3"
)

// FileRecordStore — операции над записями файлов в базе
type FileRecordStore interface {
	Create(ctx context.Context, file *domain.File) error
	GetByID(ctx context.Context, id int64) (*domain.File, error)
	GetByUUID(ctx context.Context, fileUUID uuid.UUID) (*domain.File, error)
	GetByRepository(ctx context.Context, repositoryID int64) ([]domain.File, error)
}

// LinkResolver отдает ссылку по токену, уже прошедшую проверки доступа
type LinkResolver interface {
	ResolveActiveLink(ctx context.Context, token string) (*domain.ShareLink, error)
}

type FileService struct {
	files     FileRecordStore
	repos     RepositoryStore
	linkRes   LinkResolver
	downloads DownloadLogStore
	s3Client  s3.Storage
	upload    config.UploadConfig
}

func NewFileService(
	files FileRecordStore,
	repos RepositoryStore,
	linkRes LinkResolver,
	downloads DownloadLogStore,
	s3Client s3.Storage,
	upload config.UploadConfig,
) *FileService {
	return &FileService{
		files:     files,
		repos:     repos,
		linkRes:   linkRes,
		downloads: downloads,
		s3Client:  s3Client,
		upload:    upload,
	}
}

// UploadFile загружает файл в репозиторий. Сначала объект уходит в S3,
// потом создается запись в базе; при ошибке записи объект подчищается.
func (s *FileService) UploadFile(
	ctx context.Context,
	header *multipart.FileHeader,
	file multipart.File,
	repositoryID int64,
	tags string,
	caller *identity.Caller,
) (*domain.File, error) {
	if header == nil || file == nil {
		return nil, fmt.Errorf("%w: no file provided", domain.ErrValidation)
	}

	repo, err := s.repos.GetByID(ctx, repositoryID)
	if err != nil {
		return nil, err
	}

	if repo.OwnerID != caller.ID && !caller.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}

	ext := filepath.Ext(header.Filename)
	if !s.upload.AllowedExtension(ext) {
		return nil, fmt.Errorf("%w: file type %q is not allowed", domain.ErrValidation, ext)
	}

	maxSize := s.upload.MaxSizeMB * 1024 * 1024
	if header.Size > maxSize {
		return nil, fmt.Errorf("%w: file exceeds %d MB", domain.ErrValidation, s.upload.MaxSizeMB)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	fileUUID := uuid.New()
	s3Key := fmt.Sprintf("repository_files/%d/%s", repositoryID, fileUUID.String())

	filePtr := &file
	if err := s.s3Client.UploadFile(s3Key, filePtr); err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	newFile := &domain.File{
		UUID:         fileUUID,
		Name:         s3Key,
		OriginalName: filepath.Base(header.Filename),
		MIMEType:     contentType,
		SizeBytes:    header.Size,
		Tags:         tags,
		RepositoryID: repositoryID,
		UploadedBy:   caller.ID,
	}

	if err := s.files.Create(ctx, newFile); err != nil {
		if deleteErr := s.s3Client.DeleteObject(s3Key); deleteErr != nil {
			log.Printf("[FileService] Failed to delete %s from s3 after db error: %v", s3Key, deleteErr)
		}
		return nil, err
	}

	return newFile, nil
}

// DownloadFile отдает файл из S3. Доступ либо по публичному токену,
// ведущему на репозиторий файла, либо владельцу/супер-админу. Факт
// скачивания журналируется best-effort.
func (s *FileService) DownloadFile(
	ctx context.Context,
	fileID int64,
	shareToken string,
	ipAddress string,
	caller *identity.Caller,
) (*domain.File, s3.S3Object, error) {
	file, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}

	var shareLinkID *int64
	if shareToken != "" {
		link, err := s.linkRes.ResolveActiveLink(ctx, shareToken)
		if err != nil {
			return nil, nil, err
		}
		if link.RepositoryID != file.RepositoryID {
			// Токен от чужого репозитория не дает доступа к файлу
			return nil, nil, domain.ErrForbidden
		}
		shareLinkID = &link.ID
	} else {
		if caller == nil {
			return nil, nil, domain.ErrForbidden
		}
		repo, err := s.repos.GetByID(ctx, file.RepositoryID)
		if err != nil {
			return nil, nil, err
		}
		if repo.OwnerID != caller.ID && !caller.IsSuperAdmin() {
			return nil, nil, domain.ErrForbidden
		}
	}

	object, err := s.s3Client.GetObject(ctx, file.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get file from storage: %w", err)
	}

	entry := &domain.DownloadLog{
		FileID:       file.ID,
		ShareLinkID:  shareLinkID,
		RepositoryID: file.RepositoryID,
		IPAddress:    ipAddress,
	}
	if err := s.downloads.Append(ctx, entry); err != nil {
		log.Printf("[FileService] Failed to log download of file %d: %v", file.ID, err)
	}

	return file, object, nil
}

// GetFileRange отдает диапазон байтов файла для потокового воспроизведения
func (s *FileService) GetFileRange(ctx context.Context, fileID int64, shareToken string, start, end int64, caller *identity.Caller) (*domain.File, s3.S3Object, error) {
	file, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}

	if shareToken != "" {
		link, err := s.linkRes.ResolveActiveLink(ctx, shareToken)
		if err != nil {
			return nil, nil, err
		}
		if link.RepositoryID != file.RepositoryID {
			return nil, nil, domain.ErrForbidden
		}
	} else {
		if caller == nil {
			return nil, nil, domain.ErrForbidden
		}
		repo, err := s.repos.GetByID(ctx, file.RepositoryID)
		if err != nil {
			return nil, nil, err
		}
		if repo.OwnerID != caller.ID && !caller.IsSuperAdmin() {
			return nil, nil, domain.ErrForbidden
		}
	}

	if start < 0 {
		start = 0
	}
	if end >= file.SizeBytes || end < 0 {
		end = file.SizeBytes - 1
	}
	if start > end {
		return nil, nil, fmt.Errorf("%w: invalid range %d-%d", domain.ErrValidation, start, end)
	}

	object, err := s.s3Client.GetObjectRange(ctx, file.Name, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get file range from storage: %w", err)
	}

	return file, object, nil
}
