package identity

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"taller_pos/internal/domain/entities"
	"taller_pos/internal/usecase/interfaces"
)

var ErrNoUserInContext = errors.New("no user in request context")
var ErrUserNotFound = errors.New("user not found")
var ErrUserInactive = errors.New("user is inactive")

type contextKey string

const userIDKey contextKey = "taller_pos.user_id"

// ContextWithUserID stamps the authenticated operator id onto the
// request context. The HTTP middleware is the only writer.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, strings.TrimSpace(userID))
}

// UserIDFromContext returns the operator id stamped by the middleware,
// or empty when the request is anonymous.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// Service resolves the current operator from the users table and writes
// audit entries through the structured logger.
type Service struct {
	users  interfaces.IUserRepository
	logger *zap.Logger
}

var _ interfaces.IIdentityService = (*Service)(nil)

func NewService(users interfaces.IUserRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, logger: logger}
}

func (s *Service) CurrentUser(ctx context.Context) (entities.User, error) {
	userID := UserIDFromContext(ctx)
	if userID == "" {
		return entities.User{}, ErrNoUserInContext
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	if !user.IsActive {
		return entities.User{}, ErrUserInactive
	}
	return user, nil
}

func (s *Service) LogAction(ctx context.Context, action string, payload map[string]interface{}) error {
	fields := make([]zap.Field, 0, len(payload)+2)
	fields = append(fields, zap.String("action", action))
	if userID := UserIDFromContext(ctx); userID != "" {
		fields = append(fields, zap.String("user_id", userID))
	}
	for k, v := range payload {
		fields = append(fields, zap.Any(k, v))
	}
	s.logger.Info("audit", fields...)
	return nil
}
