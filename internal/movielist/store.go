// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package movielist implements the data synchronization store for a user's
personal movie list.

The remote service is the authoritative source of truth; the cached list is a
read-through mirror. Mutations never splice the cache optimistically — every
add/remove is followed by a full re-fetch of the list, trading one extra round
trip for read-your-writes consistency.

# Loading Exception

Add and Remove intentionally do not touch the loading indicator. They are
expected to run alongside other loading-bearing operations without visually
blocking the view.
*/
package movielist

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/kinora/internal/models"
)

// # Contracts & Types

// Gateway defines the remote list operations the store depends on.
type Gateway interface {
	AddToList(ctx context.Context, userID, movieID int64) (*models.Ack, error)
	RemoveFromList(ctx context.Context, userID, movieID int64) (*models.Ack, error)
	GetList(ctx context.Context, userID int64) ([]models.ListEntry, error)
}

// Store caches the user's saved-movie list.
type Store struct {
	mu       sync.Mutex
	entries  []models.ListEntry
	inFlight int
	lastErr  error

	api Gateway
	log *slog.Logger
}

// NewStore constructs a movie-list [Store].
func NewStore(api Gateway, logger *slog.Logger) *Store {
	return &Store{
		api: api,
		log: logger,
	}
}

// # List Queries

/*
Fetch retrieves the user's personal list into the cache.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - []models.ListEntry: The saved-movie collection
  - error: Transport or server failures
*/
func (store *Store) Fetch(context context.Context, userID int64) ([]models.ListEntry, error) {
	store.begin()
	defer store.end()

	entries, err := store.api.GetList(context, userID)
	if err != nil {
		store.fail(err)
		return nil, err
	}

	store.mu.Lock()
	store.entries = entries
	store.mu.Unlock()

	return entries, nil
}

// # List Mutations

/*
Add saves a movie into the user's list, then re-fetches the list.

Description: The mutation's own response is not trusted to update the cache.
After it succeeds, a follow-up GetList replaces the cache with the fresh
server state. The loading indicator is deliberately untouched.

Parameters:
  - context: context.Context
  - userID: int64
  - movieID: int64

Returns:
  - *models.Ack: The mutation's acknowledgement payload
  - error: Transport or server failures (mutation or refresh)
*/
func (store *Store) Add(context context.Context, userID, movieID int64) (*models.Ack, error) {
	ack, err := store.api.AddToList(context, userID, movieID)
	if err != nil {
		store.fail(err)
		return nil, err
	}

	if err := store.refresh(context, userID); err != nil {
		return nil, err
	}

	return ack, nil
}

/*
Remove deletes a movie from the user's list, then re-fetches the list.

Description: Same refresh-after-write policy as [Store.Add], with the same
loading-indicator exception.

Parameters:
  - context: context.Context
  - userID: int64
  - movieID: int64

Returns:
  - *models.Ack: The mutation's acknowledgement payload
  - error: Transport or server failures (mutation or refresh)
*/
func (store *Store) Remove(context context.Context, userID, movieID int64) (*models.Ack, error) {
	ack, err := store.api.RemoveFromList(context, userID, movieID)
	if err != nil {
		store.fail(err)
		return nil, err
	}

	if err := store.refresh(context, userID); err != nil {
		return nil, err
	}

	return ack, nil
}

// refresh replaces the cache with a fresh GetList result without touching the
// loading indicator.
func (store *Store) refresh(context context.Context, userID int64) error {
	entries, err := store.api.GetList(context, userID)
	if err != nil {
		store.fail(err)
		return err
	}

	store.mu.Lock()
	store.entries = entries
	store.mu.Unlock()

	return nil
}

// # Cached State

// Entries returns the cached saved-movie collection.
func (store *Store) Entries() []models.ListEntry {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.entries
}

// Contains reports whether the cached list holds the given movie.
func (store *Store) Contains(movieID int64) bool {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, entry := range store.entries {
		if entry.MovieID == movieID {
			return true
		}
	}
	return false
}

// Loading reports whether a list fetch is currently in flight.
// Mutations do not register here.
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

// begin marks a fetch as in flight and clears the previous error.
func (store *Store) begin() {
	store.mu.Lock()
	store.inFlight++
	store.lastErr = nil
	store.mu.Unlock()
}

// end marks a fetch as finished. Always deferred so the loading indicator
// clears on every exit path.
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
