package session_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goaoxor/workbench/internal/domain/admin"
	"github.com/goaoxor/workbench/internal/session"
	"github.com/goaoxor/workbench/internal/store"
)

func newManager(t *testing.T) *session.Manager {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	admins := admin.NewService(store.New(), logger)
	require.NoError(t, admins.EnsureDefault(context.Background(), "admin", "123456"))
	return session.NewManager(admins, logger)
}

func TestManager_LoginAndResolve(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	token, adm, err := m.Login(ctx, "admin", "123456")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "admin", adm.Username)
	require.NotEqual(t, admin.LastLoginNone, adm.LastLogin)

	username, ok := m.Resolve(token)
	require.True(t, ok)
	require.Equal(t, "admin", username)
}

func TestManager_LoginRejectsBadCredentials(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	_, _, err := m.Login(ctx, "admin", "wrong")
	require.ErrorIs(t, err, admin.ErrInvalidCredentials)

	_, _, err = m.Login(ctx, "ghost", "123456")
	require.ErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestManager_Logout(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	token, _, err := m.Login(ctx, "admin", "123456")
	require.NoError(t, err)

	username, err := m.Logout(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "admin", username)

	_, ok := m.Resolve(token)
	require.False(t, ok)

	_, err = m.Logout(ctx, token)
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
}
