// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinora/internal/models"
	"github.com/taibuivan/kinora/internal/session"
)

func newFileVault(t *testing.T) *session.FileVault {
	t.Helper()
	return session.NewFileVault(filepath.Join(t.TempDir(), "session.json"))
}

/*
TestFileVault_RoundTrip verifies that a saved session loads back intact.
*/
func TestFileVault_RoundTrip(t *testing.T) {
	ctx := context.Background()
	vault := newFileVault(t)

	user := &models.User{ID: 1, Username: "alice", AvatarURL: "/a/1.png"}
	require.NoError(t, vault.SaveSession(ctx, user, "T1"))

	loaded, token, err := vault.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", token)
	require.NotNil(t, loaded)
	assert.Equal(t, "alice", loaded.Username)
	assert.Equal(t, "/a/1.png", loaded.AvatarURL)

	assert.Equal(t, "T1", vault.Token(ctx))
}

/*
TestFileVault_MissingFile verifies that an absent file reads as the Anonymous
session rather than an error.
*/
func TestFileVault_MissingFile(t *testing.T) {
	ctx := context.Background()
	vault := newFileVault(t)

	user, token, err := vault.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.Empty(t, vault.Token(ctx))
}

/*
TestFileVault_SaveUserKeepsToken verifies the read-modify-write user update.
*/
func TestFileVault_SaveUserKeepsToken(t *testing.T) {
	ctx := context.Background()
	vault := newFileVault(t)

	require.NoError(t, vault.SaveSession(ctx, &models.User{ID: 1, Username: "alice"}, "T1"))

	updated := &models.User{ID: 1, Username: "alice", AvatarURL: "/a/1.png"}
	require.NoError(t, vault.SaveUser(ctx, updated))

	loaded, token, err := vault.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", token)
	assert.Equal(t, "/a/1.png", loaded.AvatarURL)
}

/*
TestFileVault_Clear verifies that clearing removes the file and that clearing
an already-absent vault is not an error.
*/
func TestFileVault_Clear(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	vault := session.NewFileVault(path)

	require.NoError(t, vault.SaveSession(ctx, &models.User{ID: 1}, "T1"))
	require.NoError(t, vault.Clear(ctx))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Idempotent.
	require.NoError(t, vault.Clear(ctx))
}

/*
TestFileVault_Permissions verifies the session file is owner-only.
*/
func TestFileVault_Permissions(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "nested", "session.json")
	vault := session.NewFileVault(path)
	require.NoError(t, vault.SaveSession(ctx, nil, "T1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
