package interfaces

import (
	"context"

	"taller_pos/internal/domain/entities"
)

//go:generate mockgen -source=identity_interface.go -destination=mocks/mock_identity.go -package=mock_interfaces

// IIdentityService is the session collaborator: it resolves the current
// operator from the request context and records audit entries after
// state-changing operations. Authentication itself happens elsewhere.
type IIdentityService interface {
	CurrentUser(ctx context.Context) (entities.User, error)
	LogAction(ctx context.Context, action string, payload map[string]interface{}) error
}

// IUserRepository reads the users table for identity resolution and
// dashboard counts.
type IUserRepository interface {
	GetUser(ctx context.Context, id string) (entities.User, error)
	CountUsers(ctx context.Context) (total int, active int, err error)
}
