package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/mocks"
	"github.com/ersonp/logitrust/internal/domain/services"
)

func TestSessionHandler_LoginLogout(t *testing.T) {
	settings := mocks.NewSettings()
	handler := NewSessionHandler(services.NewSessionService(settings))

	user, err := handler.RequireUser(t.Context())
	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)

	logged, err := handler.Login(t.Context(), "OPS")
	require.NoError(t, err)
	assert.Equal(t, "ops1", logged.ID)

	current, err := handler.Current(t.Context())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, entities.RoleOps, current.Role)

	user, err = handler.RequireUser(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "최운영", user.Name)

	require.NoError(t, handler.Logout(t.Context()))
	current, err = handler.Current(t.Context())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSessionHandler_Login_InvalidRole(t *testing.T) {
	handler := NewSessionHandler(services.NewSessionService(mocks.NewSettings()))

	_, err := handler.Login(t.Context(), "admin")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "invalid role")
}

func TestSessionHandler_SettingsError(t *testing.T) {
	settings := mocks.NewSettings()
	settings.Err = errors.New("db closed")
	handler := NewSessionHandler(services.NewSessionService(settings))

	_, err := handler.RequireUser(t.Context())

	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrUnauthenticated)
}
