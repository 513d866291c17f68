package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mediarepo/internal/domain"
)

// AccessLogRepository — append-only журнал доступов по публичным ссылкам
type AccessLogRepository struct {
	db *sqlx.DB
}

func NewAccessLogRepository(db *sqlx.DB) *AccessLogRepository {
	return &AccessLogRepository{db: db}
}

func (r *AccessLogRepository) Append(ctx context.Context, entry *domain.LinkAccessLog) error {
	query := `
        INSERT INTO link_access_logs (share_link_id, email, ip_address, user_agent)
        VALUES ($1, $2, $3, $4)
        RETURNING id, accessed_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		entry.ShareLinkID,
		entry.Email,
		entry.IPAddress,
		entry.UserAgent,
	).Scan(&entry.ID, &entry.AccessedAt)
	if err != nil {
		return fmt.Errorf("failed to append access log: %w", err)
	}

	return nil
}

func (r *AccessLogRepository) GetByShareLink(ctx context.Context, shareLinkID int64) ([]domain.LinkAccessLog, error) {
	query := `
        SELECT * FROM link_access_logs
        WHERE share_link_id = $1
        ORDER BY accessed_at DESC`

	var entries []domain.LinkAccessLog
	if err := r.db.SelectContext(ctx, &entries, query, shareLinkID); err != nil {
		return nil, fmt.Errorf("failed to get access logs: %w", err)
	}

	return entries, nil
}
