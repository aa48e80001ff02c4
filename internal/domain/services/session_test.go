package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/mocks"
)

func TestSessionService_LoginLogout(t *testing.T) {
	ctx := context.Background()
	settings := mocks.NewSettings()
	svc := NewSessionService(settings)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	user, err := svc.Login(ctx, entities.RoleOps)
	require.NoError(t, err)
	assert.Equal(t, "ops1", user.ID)
	assert.Equal(t, "ops", settings.Values["role"])

	current, err = svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "최운영", current.Name)

	require.NoError(t, svc.Logout(ctx))
	current, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSessionService_UnknownRoleGetsDemoUser(t *testing.T) {
	settings := mocks.NewSettings()
	settings.Values["role"] = "auditor"
	svc := NewSessionService(settings)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "demo-auditor", current.ID)
}

func TestSessionService_SettingsError(t *testing.T) {
	settings := mocks.NewSettings()
	settings.Err = errors.New("closed")
	svc := NewSessionService(settings)

	_, err := svc.Login(context.Background(), entities.RoleDriver)
	assert.Error(t, err)
	_, err = svc.Current(context.Background())
	assert.Error(t, err)
	assert.Error(t, svc.Logout(context.Background()))
}
