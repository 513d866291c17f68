package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mediarepo/internal/domain"
)

type MeetingRepository struct {
	db *sqlx.DB
}

func NewMeetingRepository(db *sqlx.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) Create(ctx context.Context, meeting *domain.Meeting) error {
	query := `
        INSERT INTO meetings (repository_id, title, platform, meeting_url, scheduled_at, created_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		meeting.RepositoryID,
		meeting.Title,
		meeting.Platform,
		meeting.MeetingURL,
		meeting.ScheduledAt,
		meeting.CreatedBy,
	).Scan(&meeting.ID, &meeting.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}

	return nil
}

func (r *MeetingRepository) GetByRepository(ctx context.Context, repositoryID int64) ([]domain.Meeting, error) {
	query := `SELECT * FROM meetings WHERE repository_id = $1 ORDER BY scheduled_at`

	var meetings []domain.Meeting
	if err := r.db.SelectContext(ctx, &meetings, query, repositoryID); err != nil {
		return nil, fmt.Errorf("failed to get repository meetings: %w", err)
	}

	return meetings, nil
}
