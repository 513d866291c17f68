package domain

import "time"

type Repository struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	RepoType    string    `json:"type" db:"repo_type"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// RepositoryDetail — репозиторий вместе с файлами и встречами
type RepositoryDetail struct {
	Repository
	Files    []File    `json:"files"`
	Meetings []Meeting `json:"meetings"`
}

// RepositoryListItem используется в списках, где файлы не нужны целиком
type RepositoryListItem struct {
	Repository
	FileCount int64 `json:"files" db:"file_count"`
}

// AdminRepositoryItem — строка для админского списка с именем владельца
type AdminRepositoryItem struct {
	Repository
	OwnerName string `json:"owner"`
	FileCount int64  `json:"files_count" db:"file_count"`
}
