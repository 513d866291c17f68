package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"mediarepo/internal/domain"
)

type FileRepository struct {
	db *sqlx.DB
}

func NewFileRepository(db *sqlx.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, file *domain.File) error {
	query := `
        INSERT INTO files (uuid, name, original_name, mime_type, size_bytes, tags, repository_id, uploaded_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		file.UUID,
		file.Name,
		file.OriginalName,
		file.MIMEType,
		file.SizeBytes,
		file.Tags,
		file.RepositoryID,
		file.UploadedBy,
	).Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	return nil
}

func (r *FileRepository) GetByID(ctx context.Context, id int64) (*domain.File, error) {
	var file domain.File
	query := `SELECT * FROM files WHERE id = $1`

	if err := r.db.GetContext(ctx, &file, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return &file, nil
}

func (r *FileRepository) GetByUUID(ctx context.Context, fileUUID uuid.UUID) (*domain.File, error) {
	var file domain.File
	query := `SELECT * FROM files WHERE uuid = $1`

	if err := r.db.GetContext(ctx, &file, query, fileUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return &file, nil
}

func (r *FileRepository) GetByRepository(ctx context.Context, repositoryID int64) ([]domain.File, error) {
	query := `SELECT * FROM files WHERE repository_id = $1 ORDER BY created_at DESC`

	var files []domain.File
	if err := r.db.SelectContext(ctx, &files, query, repositoryID); err != nil {
		return nil, fmt.Errorf("failed to get repository files: %w", err)
	}

	return files, nil
}
