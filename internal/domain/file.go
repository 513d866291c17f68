package domain

import (
	"github.com/google/uuid"
	"time"
)

type File struct {
	ID           int64     `json:"id" db:"id"`
	UUID         uuid.UUID `json:"uuid" db:"uuid"`
	Name         string    `json:"-" db:"name"` // ключ объекта в S3
	OriginalName string    `json:"filename" db:"original_name"`
	MIMEType     string    `json:"file_type" db:"mime_type"`
	SizeBytes    int64     `json:"file_size" db:"size_bytes"`
	Tags         string    `json:"tags" db:"tags"`
	RepositoryID int64     `json:"repository_id" db:"repository_id"`
	UploadedBy   string    `json:"uploaded_by" db:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
