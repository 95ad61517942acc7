package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"UserCRUD/internal/cli/docstore"
	fsrepo "UserCRUD/internal/cli/repo/fs"
	"UserCRUD/internal/config"
	"UserCRUD/internal/crud"
)

// loggedIn поднимает сервер и регистрирует пользователя.
func loggedIn(t *testing.T) *config.Config {
	t.Helper()
	withTempConfig(t)
	cfg := newTestServer(t)
	withStdoutCapture(t, func() {
		require.NoError(t, (registerCmd{}).Run(context.Background(), cfg, []string{"owner", "pwd"}))
	})
	return cfg
}

func TestUsersCommands_Flow(t *testing.T) {
	cfg := loggedIn(t)
	ctx := context.Background()

	out := withStdoutCapture(t, func() { require.NoError(t, (usersCmd{}).Run(ctx, cfg, nil)) })
	assert.Contains(t, out, "no users")

	out = withStdoutCapture(t, func() {
		require.NoError(t, (userAddCmd{}).Run(ctx, cfg, []string{"x@y.com", "p1"}))
		require.NoError(t, (userAddCmd{}).Run(ctx, cfg, []string{"b@c.com", "p2"}))
	})
	assert.Contains(t, out, "User added:")

	v, err := loadedView(ctx, cfg)
	require.NoError(t, err)
	recs := v.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "x@y.com", recs[0].Email)

	// правка по id и по номеру строки
	withStdoutCapture(t, func() {
		require.NoError(t, (userEditCmd{}).Run(ctx, cfg, []string{recs[0].ID, "new@y.com", "p9"}))
		require.NoError(t, (userEditCmd{}).Run(ctx, cfg, []string{"#2", "b2@c.com", "p3"}))
	})
	require.NoError(t, v.Load(ctx))
	assert.Equal(t, []crud.Record{
		{ID: recs[0].ID, Email: "new@y.com", Password: "p9"},
		{ID: recs[1].ID, Email: "b2@c.com", Password: "p3"},
	}, v.Records())

	out = withStdoutCapture(t, func() {
		require.NoError(t, (userDeleteCmd{}).Run(ctx, cfg, []string{"#1"}))
	})
	assert.Contains(t, out, "User deleted: "+recs[0].ID)

	out = withStdoutCapture(t, func() { require.NoError(t, (usersCmd{}).Run(ctx, cfg, nil)) })
	assert.NotContains(t, out, "new@y.com")
	assert.Contains(t, out, "b2@c.com")
}

func TestUsersCommands_Errors(t *testing.T) {
	cfg := loggedIn(t)
	ctx := context.Background()

	assert.Equal(t, ErrUsage, (usersCmd{}).Run(ctx, cfg, []string{"x"}))
	assert.Equal(t, ErrUsage, (userAddCmd{}).Run(ctx, cfg, []string{"only-email"}))
	assert.Equal(t, ErrUsage, (userEditCmd{}).Run(ctx, cfg, []string{"id", "email"}))
	assert.Equal(t, ErrUsage, (userDeleteCmd{}).Run(ctx, cfg, nil))

	// пустое поле — alert и ErrMissingFields, без записи
	out := withStdoutCapture(t, func() {
		err := (userAddCmd{}).Run(ctx, cfg, []string{"x@y.com", ""})
		assert.ErrorIs(t, err, crud.ErrMissingFields)
	})
	assert.Contains(t, out, crud.AlertFillAllFields)

	err := (userEditCmd{}).Run(ctx, cfg, []string{"#5", "a", "b"})
	assert.ErrorIs(t, err, ErrNoSuchRow)
	err = (userEditCmd{}).Run(ctx, cfg, []string{"missing-id", "a", "b"})
	assert.ErrorIs(t, err, ErrNoSuchRow)
	err = (userDeleteCmd{}).Run(ctx, cfg, []string{"#0"})
	assert.ErrorIs(t, err, ErrNoSuchRow)

	// без токена
	require.NoError(t, fsrepo.AuthFSStore{}.Clear())
	err = (usersCmd{}).Run(ctx, cfg, nil)
	assert.ErrorIs(t, err, fsrepo.ErrNoToken)

	// протухший/чужой токен
	require.NoError(t, fsrepo.AuthFSStore{}.Save("garbage"))
	err = (usersCmd{}).Run(ctx, cfg, nil)
	assert.ErrorIs(t, err, docstore.ErrUnauthorized)
}

func TestResolveRow(t *testing.T) {
	v := crud.NewView(nil, "", nil, nil)
	_, err := resolveRow(v, "#1")
	assert.ErrorIs(t, err, ErrNoSuchRow)
	_, err = resolveRow(v, "#x")
	assert.True(t, strings.Contains(err.Error(), "#x"))
}
