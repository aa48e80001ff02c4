package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/services"
)

// SessionHandler handles demo role login for the CLI.
type SessionHandler struct {
	session *services.SessionService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(session *services.SessionService) *SessionHandler {
	return &SessionHandler{session: session}
}

// Login switches the active user to the demo user for role.
func (h *SessionHandler) Login(ctx context.Context, role string) (entities.User, error) {
	parsed, err := entities.ParseRole(role)
	if err != nil {
		return entities.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return h.session.Login(ctx, parsed)
}

// Logout clears the active user.
func (h *SessionHandler) Logout(ctx context.Context) error {
	return h.session.Logout(ctx)
}

// Current returns the active user, or nil when nobody is logged in.
func (h *SessionHandler) Current(ctx context.Context) (*entities.User, error) {
	return h.session.Current(ctx)
}

// RequireUser returns the active user or ErrUnauthenticated.
func (h *SessionHandler) RequireUser(ctx context.Context) (*entities.User, error) {
	user, err := h.session.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("run 'logitrust login <role>' first: %w", services.ErrUnauthenticated)
	}
	return user, nil
}
