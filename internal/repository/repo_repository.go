package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mediarepo/internal/domain"
)

type RepoRepository struct {
	db *sqlx.DB
}

func NewRepoRepository(db *sqlx.DB) *RepoRepository {
	return &RepoRepository{db: db}
}

func (r *RepoRepository) Create(ctx context.Context, repo *domain.Repository) error {
	query := `
        INSERT INTO repositories (name, description, repo_type, owner_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		repo.Name,
		repo.Description,
		repo.RepoType,
		repo.OwnerID,
	).Scan(&repo.ID, &repo.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}

	return nil
}

func (r *RepoRepository) GetByID(ctx context.Context, id int64) (*domain.Repository, error) {
	var repo domain.Repository
	query := `SELECT * FROM repositories WHERE id = $1`

	if err := r.db.GetContext(ctx, &repo, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get repository: %w", err)
	}

	return &repo, nil
}

func (r *RepoRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.RepositoryListItem, error) {
	query := `
        SELECT r.*,
            (SELECT COUNT(*) FROM files f WHERE f.repository_id = r.id) AS file_count
        FROM repositories r
        WHERE r.owner_id = $1
        ORDER BY r.created_at DESC`

	var repos []domain.RepositoryListItem
	if err := r.db.SelectContext(ctx, &repos, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	return repos, nil
}

// ListAll возвращает все репозитории для админского списка
func (r *RepoRepository) ListAll(ctx context.Context) ([]domain.AdminRepositoryItem, error) {
	query := `
        SELECT r.*,
            (SELECT COUNT(*) FROM files f WHERE f.repository_id = r.id) AS file_count
        FROM repositories r
        ORDER BY r.created_at DESC`

	var repos []domain.AdminRepositoryItem
	if err := r.db.SelectContext(ctx, &repos, query); err != nil {
		return nil, fmt.Errorf("failed to list all repositories: %w", err)
	}

	return repos, nil
}

// Delete удаляет репозиторий; файлы, встречи, ссылки и журналы уходят каскадом
func (r *RepoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM repositories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete repository: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}
