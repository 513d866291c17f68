package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mediarepo/internal/domain"
)

// DownloadLogRepository — append-only журнал скачиваний файлов
type DownloadLogRepository struct {
	db *sqlx.DB
}

func NewDownloadLogRepository(db *sqlx.DB) *DownloadLogRepository {
	return &DownloadLogRepository{db: db}
}

func (r *DownloadLogRepository) Append(ctx context.Context, entry *domain.DownloadLog) error {
	query := `
        INSERT INTO download_logs (file_id, share_link_id, repository_id, ip_address)
        VALUES ($1, $2, $3, $4)
        RETURNING id, downloaded_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		entry.FileID,
		entry.ShareLinkID,
		entry.RepositoryID,
		entry.IPAddress,
	).Scan(&entry.ID, &entry.DownloadedAt)
	if err != nil {
		return fmt.Errorf("failed to append download log: %w", err)
	}

	return nil
}

// StatsByRepository возвращает количество скачиваний на репозиторий
func (r *DownloadLogRepository) StatsByRepository(ctx context.Context) ([]domain.RepositoryDownloadStats, error) {
	query := `
        SELECT r.id AS repository_id, r.name AS repository_name, COUNT(dl.id) AS download_count
        FROM repositories r
        JOIN download_logs dl ON dl.repository_id = r.id
        GROUP BY r.id, r.name
        ORDER BY download_count DESC`

	var stats []domain.RepositoryDownloadStats
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get download stats: %w", err)
	}

	return stats, nil
}
