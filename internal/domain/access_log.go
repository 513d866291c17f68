package domain

import "time"

// LinkAccessLog — одна запись на каждый успешно оцененный доступ по ссылке.
// Записи никогда не обновляются и не удаляются.
type LinkAccessLog struct {
	ID          int64     `json:"id" db:"id"`
	ShareLinkID int64     `json:"share_link_id" db:"share_link_id"`
	Email       string    `json:"email" db:"email"`
	IPAddress   string    `json:"ip_address" db:"ip_address"`
	UserAgent   string    `json:"user_agent" db:"user_agent"`
	AccessedAt  time.Time `json:"accessed_at" db:"accessed_at"`
}

// DownloadLog — одна запись на каждую выдачу файла. share_link_id заполняется
// только когда скачивание пришло по публичной ссылке.
type DownloadLog struct {
	ID           int64     `json:"id" db:"id"`
	FileID       int64     `json:"file_id" db:"file_id"`
	ShareLinkID  *int64    `json:"share_link_id,omitempty" db:"share_link_id"`
	RepositoryID int64     `json:"repository_id" db:"repository_id"`
	IPAddress    string    `json:"ip_address" db:"ip_address"`
	DownloadedAt time.Time `json:"downloaded_at" db:"downloaded_at"`
}

// RepositoryDownloadStats — агрегат для админской статистики скачиваний
type RepositoryDownloadStats struct {
	RepositoryID   int64  `json:"repository_id" db:"repository_id"`
	RepositoryName string `json:"repository_name" db:"repository_name"`
	DownloadCount  int64  `json:"download_count" db:"download_count"`
}
