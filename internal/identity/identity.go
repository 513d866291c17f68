package identity

import (
	"fmt"
	"net/http"

	"mediarepo/pkg/proto/identity_v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	RoleUser       = "user"
	RoleSuperAdmin = "super_admin"
)

// Caller — аутентифицированный вызывающий. Сервис доверяет этим данным
// как есть: проверку пароля/токена выполняет внешний identity-сервис.
type Caller struct {
	ID       string
	Username string
	Role     string
}

func (c *Caller) IsSuperAdmin() bool {
	return c.Role == RoleSuperAdmin
}

var gClient identity_v1.IdentityV1Client

func InitClient(conn *grpc.ClientConn) {
	gClient = identity_v1.NewIdentityV1Client(conn)
}

// VerifyCaller проверяет Authorization-заголовок через identity-сервис
// и возвращает личность вызывающего
func VerifyCaller(r *http.Request) (*Caller, error) {
	authToken := r.Header.Get("Authorization")
	if authToken == "" {
		return nil, fmt.Errorf("no authorization header")
	}

	md := metadata.New(map[string]string{
		"Authorization": authToken,
	})
	ctx := metadata.NewOutgoingContext(r.Context(), md)

	resp, err := gClient.GetUser(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, err
	}

	user := resp.GetUser()
	return &Caller{
		ID:       user.GetId(),
		Username: user.GetUsername(),
		Role:     user.GetRole(),
	}, nil
}
