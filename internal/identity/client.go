package identity

import (
	"context"
	"log"
	"strings"

	"mediarepo/pkg/proto/identity_v1"
)

// UserInfo представляет информацию о пользователе identity-сервиса
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// GetUsersByIds запрашивает пользователей пачкой. Используется админским
// списком ссылок для денормализации имен создателей.
func GetUsersByIds(ctx context.Context, userIds []string) ([]UserInfo, error) {
	// Убираем пустые значения и дубликаты
	cleanIds := make([]string, 0)
	idMap := make(map[string]bool)

	for _, id := range userIds {
		id = strings.TrimSpace(id)
		if id != "" && !idMap[id] {
			cleanIds = append(cleanIds, id)
			idMap[id] = true
		}
	}

	if len(cleanIds) == 0 {
		return nil, nil
	}

	response, err := gClient.GetUsersByIds(ctx, &identity_v1.GetUsersByIdsRequest{
		Ids: cleanIds,
	})
	if err != nil {
		log.Printf("Error getting users from identity service: %v", err)
		return nil, err
	}

	users := make([]UserInfo, 0, len(response.Users))
	for _, user := range response.Users {
		users = append(users, UserInfo{
			ID:       user.Id,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		})
	}

	return users, nil
}
