package services

import (
	"context"
	"fmt"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/ports"
)

// roleKey is the settings key holding the active role.
const roleKey = "role"

// SessionService tracks the active demo identity across CLI runs.
type SessionService struct {
	settings ports.Settings
}

// NewSessionService creates a new session service.
func NewSessionService(settings ports.Settings) *SessionService {
	return &SessionService{settings: settings}
}

// Login makes the demo user for role the active user.
func (s *SessionService) Login(ctx context.Context, role entities.Role) (entities.User, error) {
	if err := s.settings.Set(ctx, roleKey, string(role)); err != nil {
		return entities.User{}, fmt.Errorf("saving role: %w", err)
	}
	return entities.UserForRole(role), nil
}

// Logout clears the active user.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.settings.Delete(ctx, roleKey); err != nil {
		return fmt.Errorf("clearing role: %w", err)
	}
	return nil
}

// Current returns the active user, or nil when nobody is logged in.
func (s *SessionService) Current(ctx context.Context) (*entities.User, error) {
	role, ok, err := s.settings.Get(ctx, roleKey)
	if err != nil {
		return nil, fmt.Errorf("reading role: %w", err)
	}
	if !ok || role == "" {
		return nil, nil
	}
	user := entities.UserForRole(entities.Role(role))
	return &user, nil
}
