// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/taibuivan/kinora/internal/models"
)

// fileState is the on-disk JSON shape of the persisted session.
type fileState struct {
	User  *models.User `json:"user,omitempty"`
	Token string       `json:"token,omitempty"`
}

// FileVault implements [Vault] on a local JSON file.
//
// # Durability
//
// The file survives process restarts; a later start restores the
// Authenticated state without re-login. The token is a credential, so the
// file is written with owner-only permissions.
type FileVault struct {
	path string
	mu   sync.Mutex
}

// NewFileVault creates a file-backed [Vault] at the given path.
func NewFileVault(path string) *FileVault {
	return &FileVault{path: path}
}

/*
SaveSession persists the user and token pair to disk.

Parameters:
  - context: context.Context
  - user: *models.User
  - token: string

Returns:
  - error: Write failures
*/
func (vault *FileVault) SaveSession(_ context.Context, user *models.User, token string) error {
	vault.mu.Lock()
	defer vault.mu.Unlock()

	return vault.write(fileState{User: user, Token: token})
}

/*
SaveUser persists only the user record, keeping the stored token.

Parameters:
  - context: context.Context
  - user: *models.User

Returns:
  - error: Read or write failures
*/
func (vault *FileVault) SaveUser(_ context.Context, user *models.User) error {
	vault.mu.Lock()
	defer vault.mu.Unlock()

	// Read-modify-write so the token survives the update.
	state, err := vault.read()
	if err != nil {
		return err
	}
	state.User = user

	return vault.write(state)
}

/*
LoadSession restores the persisted user and token pair.

Description: A missing file yields the Anonymous session, not an error.

Parameters:
  - context: context.Context

Returns:
  - *models.User: Persisted user, or nil
  - string: Persisted token, or ""
  - error: Read failures
*/
func (vault *FileVault) LoadSession(_ context.Context) (*models.User, string, error) {
	vault.mu.Lock()
	defer vault.mu.Unlock()

	state, err := vault.read()
	if err != nil {
		return nil, "", err
	}

	return state.User, state.Token, nil
}

/*
Token returns the persisted bearer token, or "" when absent.

Parameters:
  - context: context.Context

Returns:
  - string: Persisted token, or ""
*/
func (vault *FileVault) Token(_ context.Context) string {
	vault.mu.Lock()
	defer vault.mu.Unlock()

	state, err := vault.read()
	if err != nil {
		return ""
	}
	return state.Token
}

/*
Clear removes the persisted session file.

Parameters:
  - context: context.Context

Returns:
  - error: Deletion failures
*/
func (vault *FileVault) Clear(_ context.Context) error {
	vault.mu.Lock()
	defer vault.mu.Unlock()

	if err := os.Remove(vault.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file_vault_clear_failed: %w", err)
	}
	return nil
}

// read loads the on-disk state. A missing file yields the zero state.
// Callers must hold the mutex.
func (vault *FileVault) read() (fileState, error) {
	state := fileState{}

	raw, err := os.ReadFile(vault.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return state, nil
		}
		return state, fmt.Errorf("file_vault_read_failed: %w", err)
	}

	if err := json.Unmarshal(raw, &state); err != nil {
		return fileState{}, fmt.Errorf("file_vault_decode_failed: %w", err)
	}

	return state, nil
}

// write stores state on disk with owner-only permissions.
// Callers must hold the mutex.
func (vault *FileVault) write(state fileState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("file_vault_encode_failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(vault.path), 0o700); err != nil {
		return fmt.Errorf("file_vault_mkdir_failed: %w", err)
	}

	if err := os.WriteFile(vault.path, raw, 0o600); err != nil {
		return fmt.Errorf("file_vault_write_failed: %w", err)
	}

	return nil
}
