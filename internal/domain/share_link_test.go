package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPermissionValid(t *testing.T) {
	assert.True(t, PermissionView.Valid())
	assert.True(t, PermissionEdit.Valid())
	assert.True(t, PermissionAdmin.Valid())
	assert.False(t, Permission("owner").Valid())
	assert.False(t, Permission("").Valid())
}

func TestShareLinkExpired(t *testing.T) {
	now := time.Now()

	// Ссылка без expires_at не истекает никогда
	link := &ShareLink{}
	assert.False(t, link.Expired(now))

	past := now.Add(-time.Minute)
	link.ExpiresAt = &past
	assert.True(t, link.Expired(now))

	future := now.Add(time.Minute)
	link.ExpiresAt = &future
	assert.False(t, link.Expired(now))

	// Граница: expires_at == now считается истекшей
	link.ExpiresAt = &now
	assert.True(t, link.Expired(now))
}
