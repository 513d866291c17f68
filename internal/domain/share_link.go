package domain

import "time"

type Permission string

const (
	PermissionView  Permission = "view"
	PermissionEdit  Permission = "edit"
	PermissionAdmin Permission = "admin"
)

// Valid проверяет, что permission одно из поддерживаемых значений
func (p Permission) Valid() bool {
	switch p {
	case PermissionView, PermissionEdit, PermissionAdmin:
		return true
	}
	return false
}

// ShareLink — публичная ссылка на репозиторий. Токен сам по себе является
// авторизацией: отдельной проверки личности для просмотра нет.
type ShareLink struct {
	ID           int64      `json:"id" db:"id"`
	Token        string     `json:"token" db:"token"`
	RepositoryID int64      `json:"repository_id" db:"repository_id"`
	Permission   Permission `json:"permission" db:"permission"`
	CreatedBy    string     `json:"created_by" db:"created_by"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	ViewCount    int64      `json:"view_count" db:"view_count"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// Expired сообщает, истек ли срок действия ссылки на момент now.
// Ссылка без expires_at не истекает никогда.
func (l *ShareLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && !l.ExpiresAt.After(now)
}

// AdminShareLinkItem — строка админского списка с денормализованными полями
type AdminShareLinkItem struct {
	ShareLink
	RepositoryName string `json:"repository_name" db:"repository_name"`
	CreatorName    string `json:"created_by_name"`
}

// SharedRepository — срез репозитория, который видит анонимный держатель токена
type SharedRepository struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	RepoType      string     `json:"type"`
	Permission    Permission `json:"permission"`
	Files         []File     `json:"files"`
	RequiresEmail bool       `json:"requires_email"`
	CreatedAt     time.Time  `json:"created_at"`
}
