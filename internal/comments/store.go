// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comments implements the data synchronization store for movie comments.

Two independent views are cached: comments on a movie and comments authored by
a user. Mutations follow the refresh-after-write policy — the affected view(s)
are re-fetched from the remote service instead of being patched locally.

# Refresh Rules

  - Adding a comment refreshes only the movie's comment collection.
  - Deleting a comment refreshes the movie's collection when a movie ID was
    supplied, and unconditionally refreshes the acting user's collection —
    deletion always affects "my comments", addition does not touch it.
*/
package comments

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/kinora/internal/models"
)

// # Contracts & Types

// Gateway defines the remote comment operations the store depends on.
type Gateway interface {
	AddComment(ctx context.Context, userID, movieID int64, comment string) (*models.Ack, error)
	DeleteComment(ctx context.Context, userID, commentID int64) (*models.Ack, error)
	MovieComments(ctx context.Context, movieID int64) ([]models.Comment, error)
	UserComments(ctx context.Context, userID int64) ([]models.Comment, error)
}

// Store caches the two comment views.
type Store struct {
	mu            sync.Mutex
	movieComments []models.Comment
	userComments  []models.Comment
	inFlight      int
	lastErr       error

	api Gateway
	log *slog.Logger
}

// NewStore constructs a comment [Store].
func NewStore(api Gateway, logger *slog.Logger) *Store {
	return &Store{
		api: api,
		log: logger,
	}
}

// # Comment Queries

/*
FetchMovieComments retrieves the comment collection for a movie into the cache.

Parameters:
  - context: context.Context
  - movieID: int64

Returns:
  - []models.Comment: Comments on the movie
  - error: Transport or server failures
*/
func (store *Store) FetchMovieComments(context context.Context, movieID int64) ([]models.Comment, error) {
	store.begin()
	defer store.end()

	comments, err := store.api.MovieComments(context, movieID)
	if err != nil {
		store.fail(err)
		return nil, err
	}

	store.mu.Lock()
	store.movieComments = comments
	store.mu.Unlock()

	return comments, nil
}

/*
FetchUserComments retrieves the comments authored by a user into the cache.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - []models.Comment: Comments by the user
  - error: Transport or server failures
*/
func (store *Store) FetchUserComments(context context.Context, userID int64) ([]models.Comment, error) {
	store.begin()
	defer store.end()

	comments, err := store.api.UserComments(context, userID)
	if err != nil {
		store.fail(err)
		return nil, err
	}

	store.mu.Lock()
	store.userComments = comments
	store.mu.Unlock()

	return comments, nil
}

// # Comment Mutations

/*
Add posts a new comment, then re-fetches the movie's comment collection.

Description: The mutation response is not trusted to update the cache; the
follow-up fetch replaces it with fresh server state. The user's own comment
collection is not touched by addition.

Parameters:
  - context: context.Context
  - userID: int64
  - movieID: int64
  - comment: The comment text

Returns:
  - *models.Ack: The mutation's acknowledgement payload
  - error: Transport or server failures (mutation or refresh)
*/
func (store *Store) Add(context context.Context, userID, movieID int64, comment string) (*models.Ack, error) {
	store.begin()
	defer store.end()

	ack, err := store.api.AddComment(context, userID, movieID, comment)
	if err != nil {
		store.fail(err)
		return nil, err
	}

	// Refresh the movie view with fresh server state.
	if _, err := store.FetchMovieComments(context, movieID); err != nil {
		return nil, err
	}

	return ack, nil
}

/*
Delete removes a comment, then re-fetches the affected view(s).

Description: The movie's comment collection is refreshed when movieID is
non-zero (zero means no movie context was supplied). The acting user's
collection is refreshed unconditionally.

Parameters:
  - context: context.Context
  - userID: int64
  - commentID: int64
  - movieID: int64 (0 when no movie context is available)

Returns:
  - *models.Ack: The mutation's acknowledgement payload
  - error: Transport or server failures (mutation or refresh)
*/
func (store *Store) Delete(context context.Context, userID, commentID, movieID int64) (*models.Ack, error) {
	store.begin()
	defer store.end()

	ack, err := store.api.DeleteComment(context, userID, commentID)
	if err != nil {
		store.fail(err)
		return nil, err
	}

	// Refresh the movie view only when a movie context was supplied.
	if movieID != 0 {
		if _, err := store.FetchMovieComments(context, movieID); err != nil {
			return nil, err
		}
	}

	// Deletion always affects "my comments".
	if _, err := store.FetchUserComments(context, userID); err != nil {
		return nil, err
	}

	return ack, nil
}

// # Cached State

// MovieComments returns the cached movie comment collection.
func (store *Store) MovieComments() []models.Comment {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.movieComments
}

// UserComments returns the cached user comment collection.
func (store *Store) UserComments() []models.Comment {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.userComments
}

// Loading reports whether any comment operation is currently in flight.
func (store *Store) Loading() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.inFlight > 0
}

// Err returns the most recent operation failure, or nil.
func (store *Store) Err() error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.lastErr
}

// # Internal Bookkeeping

// begin marks an operation as in flight and clears the previous error.
func (store *Store) begin() {
	store.mu.Lock()
	store.inFlight++
	store.lastErr = nil
	store.mu.Unlock()
}

// end marks an operation as finished. Always deferred so the loading
// indicator clears on every exit path.
func (store *Store) end() {
	store.mu.Lock()
	store.inFlight--
	store.mu.Unlock()
}

// fail records the most recent failure for observers.
func (store *Store) fail(err error) {
	store.mu.Lock()
	store.lastErr = err
	store.mu.Unlock()
}
