package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"mediarepo/internal/domain"
)

type ShareLinkRepository struct {
	db *sqlx.DB
}

func NewShareLinkRepository(db *sqlx.DB) *ShareLinkRepository {
	return &ShareLinkRepository{db: db}
}

func (r *ShareLinkRepository) Create(ctx context.Context, link *domain.ShareLink) error {
	query := `
        INSERT INTO share_links (token, repository_id, permission, created_by, expires_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, is_active, view_count, created_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		link.Token,
		link.RepositoryID,
		link.Permission,
		link.CreatedBy,
		link.ExpiresAt,
	).Scan(&link.ID, &link.IsActive, &link.ViewCount, &link.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// Коллизия токена: вызывающий генерирует новый и повторяет
			return domain.ErrDuplicateToken
		}
		return fmt.Errorf("failed to create share link: %w", err)
	}

	return nil
}

// GetByToken возвращает ссылку как есть, без фильтрации по is_active и
// expires_at: порядок проверок (revoked прежде expired) принадлежит
// evaluator-у, а не SQL
func (r *ShareLinkRepository) GetByToken(ctx context.Context, token string) (*domain.ShareLink, error) {
	var link domain.ShareLink
	query := `SELECT * FROM share_links WHERE token = $1`

	if err := r.db.GetContext(ctx, &link, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get share link by token: %w", err)
	}

	return &link, nil
}

func (r *ShareLinkRepository) GetByID(ctx context.Context, id int64) (*domain.ShareLink, error) {
	var link domain.ShareLink
	query := `SELECT * FROM share_links WHERE id = $1`

	if err := r.db.GetContext(ctx, &link, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get share link by id: %w", err)
	}

	return &link, nil
}

// SetActive выставляет is_active. Повторный revoke/reactivate — no-op
func (r *ShareLinkRepository) SetActive(ctx context.Context, id int64, active bool) error {
	query := `UPDATE share_links SET is_active = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("failed to update share link: %w", err)
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

// IncrementViewCount атомарно увеличивает счетчик просмотров в SQL.
// Никакого read-modify-write на уровне приложения: параллельные запросы
// не должны терять инкременты
func (r *ShareLinkRepository) IncrementViewCount(ctx context.Context, token string) (int64, error) {
	var count int64
	query := `
        UPDATE share_links
        SET view_count = view_count + 1
        WHERE token = $1
        RETURNING view_count`

	if err := r.db.QueryRowContext(ctx, query, token).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment view count: %w", err)
	}

	return count, nil
}

// ListAll возвращает все ссылки с денормализованным именем репозитория
func (r *ShareLinkRepository) ListAll(ctx context.Context) ([]domain.AdminShareLinkItem, error) {
	query := `
        SELECT sl.*, r.name AS repository_name
        FROM share_links sl
        JOIN repositories r ON r.id = sl.repository_id
        ORDER BY sl.created_at DESC`

	var links []domain.AdminShareLinkItem
	if err := r.db.SelectContext(ctx, &links, query); err != nil {
		return nil, fmt.Errorf("failed to list share links: %w", err)
	}

	return links, nil
}
