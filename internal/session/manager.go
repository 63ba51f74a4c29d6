// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session implements the authenticated identity lifecycle of the client.

It owns the current user and bearer token, persists them across process
restarts via a [Vault], and exposes the authentication status consumed by the
navigation guard.

Architecture:

  - Manager: The single writer of session state, in memory and in the vault.
  - Vault: Abstracted durable storage (file or Redis backed).
  - State machine: Anonymous (no user, no token) ⇄ Authenticated (user + token).

The bearer token is an opaque credential. It is injected into outbound
requests by the gateway and is never inspected or parsed here.
*/
package session

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/taibuivan/kinora/internal/gateway"
	"github.com/taibuivan/kinora/internal/models"
)

// # Contracts & Types

// Gateway defines the remote operations the session manager depends on.
//
// # Why an interface?
//
// Narrowing the dependency to these three calls decouples the manager from
// the full gateway surface and lets tests inject a scripted fake.
type Gateway interface {
	// Login authenticates with the remote service and returns the user/token pair.
	Login(ctx context.Context, username, password string) (*models.LoginResult, error)

	// Register enrolls a new user without authenticating the caller.
	Register(ctx context.Context, input gateway.RegisterInput) (*models.User, error)

	// UploadAvatar uploads a new avatar image and returns its URL.
	UploadAvatar(ctx context.Context, userID int64, filename string, file io.Reader) (*models.AvatarResult, error)
}

// Manager owns the authenticated identity and bearer token.
//
// # Concurrency
//
// All methods are safe for concurrent use. The loading indicator is an
// in-flight counter so overlapping operations cannot clobber each other's
// flag state.
type Manager struct {
	mu       sync.Mutex
	user     *models.User
	token    string
	inFlight int
	lastErr  error

	api   Gateway
	vault Vault
	log   *slog.Logger
}

// NewManager constructs a session [Manager].
//
// The manager starts Anonymous; call [Manager.Restore] at process start to
// pick up a previously persisted session.
func NewManager(api Gateway, vault Vault, logger *slog.Logger) *Manager {
	return &Manager{
		api:   api,
		vault: vault,
		log:   logger,
	}
}

// # Restoration

/*
Restore initializes session state from the vault at process start.

Description: Absence of a persisted token yields the Anonymous state. A token
with a stale or missing user record is tolerated; the token alone drives the
authentication status.

Parameters:
  - context: context.Context

Returns:
  - error: Vault retrieval failures
*/
func (manager *Manager) Restore(context context.Context) error {
	user, token, err := manager.vault.LoadSession(context)
	if err != nil {
		return err
	}

	manager.mu.Lock()
	manager.user = user
	manager.token = token
	manager.mu.Unlock()

	if token != "" {
		manager.log.Info("session_restored", slog.Bool("has_user", user != nil))
	}

	return nil
}

// # Authentication Flow

/*
Login authenticates the user and transitions the session to Authenticated.

Description: Sends credentials through the gateway; on success stores the
returned user and token in memory and in the vault, then returns the user.
On failure the session state is left unchanged and the failure is recorded
and re-raised. The loading indicator is held for the duration of the call.

Parameters:
  - context: context.Context
  - username: string
  - password: string

Returns:
  - *models.User: The authenticated user
  - error: Transport or server failures
*/
func (manager *Manager) Login(context context.Context, username, password string) (*models.User, error) {
	manager.begin()
	defer manager.end()

	result, err := manager.api.Login(context, username, password)
	if err != nil {
		manager.fail(err)
		return nil, err
	}

	// Success: update memory first, then durable storage.
	manager.mu.Lock()
	manager.user = result.User
	manager.token = result.Token
	manager.mu.Unlock()

	if err := manager.vault.SaveSession(context, result.User, result.Token); err != nil {
		// The in-memory session is valid either way; persistence being behind
		// only costs a re-login after the next restart.
		manager.log.Warn("session_persist_failed", slog.Any("error", err))
	}

	manager.log.Info("session_authenticated", slog.String("username", username))

	return result.User, nil
}

/*
Register forwards an enrollment request to the remote service.

Description: Stateless relative to the session — the created user payload is
returned but the caller remains in its current state.

Parameters:
  - context: context.Context
  - input: gateway.RegisterInput

Returns:
  - *models.User: Created-user payload
  - error: Transport or server failures
*/
func (manager *Manager) Register(context context.Context, input gateway.RegisterInput) (*models.User, error) {
	manager.begin()
	defer manager.end()

	user, err := manager.api.Register(context, input)
	if err != nil {
		manager.fail(err)
		return nil, err
	}

	return user, nil
}

/*
Logout transitions the session to Anonymous.

Description: Clears the in-memory and persisted user/token immediately.
No network call is made; the remote service is not informed.

Parameters:
  - context: context.Context

Returns:
  - error: Vault deletion failures (state is cleared regardless)
*/
func (manager *Manager) Logout(context context.Context) error {
	manager.mu.Lock()
	manager.user = nil
	manager.token = ""
	manager.mu.Unlock()

	if err := manager.vault.Clear(context); err != nil {
		return err
	}

	manager.log.Info("session_cleared")

	return nil
}

// # Profile Mutations

/*
UploadAvatar uploads a new avatar and applies it to the current session.

Description: Side-channel mutation — when the upload succeeds and the acting
userID matches the authenticated user, only the AvatarURL field is updated in
memory and in the vault. No full user re-fetch is performed.

Parameters:
  - context: context.Context
  - userID: int64
  - filename: Original file name
  - file: io.Reader with the image bytes

Returns:
  - *models.AvatarResult: The new avatar URL
  - error: Transport or server failures
*/
func (manager *Manager) UploadAvatar(context context.Context, userID int64, filename string, file io.Reader) (*models.AvatarResult, error) {
	manager.begin()
	defer manager.end()

	result, err := manager.api.UploadAvatar(context, userID, filename, file)
	if err != nil {
		manager.fail(err)
		return nil, err
	}

	manager.applyAvatar(context, userID, result.AvatarURL)

	return result, nil
}

/*
SetAvatarURL applies an already-known avatar URL to the current user.

Description: Local-only mutation for callers that obtained the URL out of
band; updates memory and the vault, no network call.

Parameters:
  - context: context.Context
  - avatarURL: string
*/
func (manager *Manager) SetAvatarURL(context context.Context, avatarURL string) {
	manager.mu.Lock()
	userID := int64(0)
	if manager.user != nil {
		userID = manager.user.ID
	}
	manager.mu.Unlock()

	if userID != 0 {
		manager.applyAvatar(context, userID, avatarURL)
	}
}

// applyAvatar updates the avatar URL in memory and in the vault when the
// acting user is the authenticated one.
func (manager *Manager) applyAvatar(context context.Context, userID int64, avatarURL string) {
	manager.mu.Lock()
	if manager.user == nil || manager.user.ID != userID {
		manager.mu.Unlock()
		return
	}
	manager.user.AvatarURL = avatarURL
	snapshot := *manager.user
	manager.mu.Unlock()

	if err := manager.vault.SaveUser(context, &snapshot); err != nil {
		manager.log.Warn("session_persist_failed", slog.Any("error", err))
	}
}

// # Derived State

// IsAuthenticated reports whether a bearer token is currently held.
// It is a pure predicate over in-memory state.
func (manager *Manager) IsAuthenticated() bool {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.token != ""
}

// CurrentUser returns the authenticated user, or nil when Anonymous.
func (manager *Manager) CurrentUser() *models.User {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if manager.user == nil {
		return nil
	}
	snapshot := *manager.user
	return &snapshot
}

// Token returns the in-memory bearer token, or "" when Anonymous.
func (manager *Manager) Token() string {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.token
}

// Loading reports whether any session operation is currently in flight.
func (manager *Manager) Loading() bool {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.inFlight > 0
}

// Err returns the most recent operation failure, or nil. The value is
// replaced or cleared by the next operation.
func (manager *Manager) Err() error {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.lastErr
}

// # Internal Bookkeeping

// begin marks an operation as in flight and clears the previous error.
func (manager *Manager) begin() {
	manager.mu.Lock()
	manager.inFlight++
	manager.lastErr = nil
	manager.mu.Unlock()
}

// end marks an operation as finished. Always deferred so the loading
// indicator clears on every exit path.
func (manager *Manager) end() {
	manager.mu.Lock()
	manager.inFlight--
	manager.mu.Unlock()
}

// fail records the most recent failure for observers.
func (manager *Manager) fail(err error) {
	manager.mu.Lock()
	manager.lastErr = err
	manager.mu.Unlock()
}
