package crud

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_RenderCreateMode(t *testing.T) {
	v := NewView(newMemStore(userDoc("a", "x@y.com", "p1")), "users", nil, nil)
	require.NoError(t, v.Load(context.Background()))
	require.NoError(t, v.Change(FieldPassword, "hunter2"))

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "Add User")
	assert.Contains(t, out, "Enter email")
	// пароль в форме скрыт
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, strings.Repeat("•", len("hunter2")))
	assert.Contains(t, out, "User List")
	assert.Contains(t, out, "x@y.com")
	assert.Contains(t, out, "edit | delete")
}

func TestView_RenderEditModeAndEmptyTable(t *testing.T) {
	v := NewView(newMemStore(), "users", nil, nil)
	v.EditRow(Record{ID: "a", Email: "x@y.com", Password: "p1"})

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "Edit User")
	assert.Contains(t, out, "Update User")
	assert.Contains(t, out, "no users")

	buf.Reset()
	require.NoError(t, v.RenderTable(&buf))
	assert.NotContains(t, buf.String(), "Actions")
	assert.Contains(t, buf.String(), "no users")
}
