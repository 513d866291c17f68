package domain

import "errors"

// Ошибки уровня домена. Хендлеры маппят их на HTTP-статусы.
var (
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("access denied")
	ErrRevoked        = errors.New("this link has been revoked")
	ErrExpired        = errors.New("share link has expired")
	ErrValidation     = errors.New("invalid request")
	ErrDuplicateToken = errors.New("token already exists")
)
