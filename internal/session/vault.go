// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"

	"github.com/taibuivan/kinora/internal/models"
)

// # Persisted Session Access

// Vault defines the durable storage contract for the session user/token pair.
//
// # Ownership
//
// The [Manager] is the sole writer of the vault. Every other component (the
// gateway in particular) is a reader of the token only. Absence of a persisted
// user or token is not an error; it simply means an Anonymous session.
type Vault interface {

	/*
		SaveSession persists the user and token pair after a successful login.

		Parameters:
		  - context: context.Context
		  - user: *models.User
		  - token: string

		Returns:
		  - error: Persistence failures
	*/
	SaveSession(context context.Context, user *models.User, token string) error

	/*
		SaveUser persists only the user record, leaving the token untouched.
		Used for local field updates such as a new avatar URL.

		Parameters:
		  - context: context.Context
		  - user: *models.User

		Returns:
		  - error: Persistence failures
	*/
	SaveUser(context context.Context, user *models.User) error

	/*
		LoadSession restores the persisted user and token pair.

		Description: A missing vault or missing fields yield (nil, "", nil) —
		the Anonymous session — never an error.

		Parameters:
		  - context: context.Context

		Returns:
		  - *models.User: Persisted user, or nil
		  - string: Persisted token, or ""
		  - error: Retrieval failures
	*/
	LoadSession(context context.Context) (*models.User, string, error)

	/*
		Token returns the currently persisted bearer token, or "" when absent.

		Description: Read on every outbound request by the gateway. Failures
		degrade to "" so the request is simply sent unauthenticated.

		Parameters:
		  - context: context.Context

		Returns:
		  - string: Persisted token, or ""
	*/
	Token(context context.Context) string

	/*
		Clear removes the persisted user and token pair.

		Parameters:
		  - context: context.Context

		Returns:
		  - error: Deletion failures
	*/
	Clear(context context.Context) error
}
