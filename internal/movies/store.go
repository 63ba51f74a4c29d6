// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package movies implements the data synchronization store for the movie catalogue.

It owns the cached trending collections and the current movie detail, and
performs all catalogue fetches through the gateway.

Architecture:

  - Cache discipline: Every successful fetch replaces its cached slice with
    the response payload verbatim; there is no local merge or patch logic.
  - Loading: An in-flight counter is held for the duration of each fetch and
    always released, success or failure.
  - Errors: The most recent failure is recorded and re-raised; display
    behavior is fully delegated to the caller.
*/
package movies

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/kinora/internal/models"
	"github.com/taibuivan/kinora/pkg/pagination"
	"github.com/taibuivan/kinora/pkg/textquery"
)

// # Contracts & Types

// Gateway defines the remote catalogue operations the store depends on.
type Gateway interface {
	WeeklyTrending(ctx context.Context, page int) ([]models.Movie, error)
	DailyTrending(ctx context.Context, page int) ([]models.Movie, error)
	MovieDetails(ctx context.Context, movieID int64) (*models.Movie, error)
	FetchAllMovies(ctx context.Context) (*models.Ack, error)
	SearchMovies(ctx context.Context, query string) ([]models.Movie, error)
}

// Store caches the remotely-sourced movie collections.
//
// # Ownership
//
// The store exclusively owns its cached slices; no other component writes
// them. Overlapping calls may resolve out of order, in which case the
// later-resolving response wins.
type Store struct {
	mu       sync.Mutex
	weekly   []models.Movie
	daily    []models.Movie
	current  *models.Movie
	inFlight int
	lastErr  error

	api Gateway
	log *slog.Logger
}

// NewStore constructs a movie [Store].
func NewStore(api Gateway, logger *slog.Logger) *Store {
	return &Store{
		api: api,
		log: logger,
	}
}

// # Trending Collections

/*
WeeklyTrending fetches one page of the weekly ranking into the cache.

Parameters:
  - context: context.Context
  - page: 1-based page number (values below 1 default to page 1)

Returns:
  - []models.Movie: The fetched collection
  - error: Transport or server failures
*/
func (store *Store) WeeklyTrending(context context.Context, page int) ([]models.Movie, error) {
	store.begin()
	defer store.end()

	result, err := store.api.WeeklyTrending(context, pagination.Clamp(page))
	if err != nil {
		store.fail(err)
		return nil, err
	}

	store.mu.Lock()
	store.weekly = result
	store.mu.Unlock()

	return result, nil
}

/*
DailyTrending fetches one page of the daily ranking into the cache.

Parameters:
  - context: context.Context
  - page: 1-based page number (values below 1 default to page 1)

Returns:
  - []models.Movie: The fetched collection
  - error: Transport or server failures
*/
func (store *Store) DailyTrending(context context.Context, page int) ([]models.Movie, error) {
	store.begin()
	defer store.end()

	result, err := store.api.DailyTrending(context, pagination.Clamp(page))
	if err != nil {
		store.fail(err)
		return nil, err
	}

	store.mu.Lock()
	store.daily = result
	store.mu.Unlock()

	return result, nil
}

// # Movie Detail

/*
MovieDetails fetches the detail payload for a movie into the cache.

Parameters:
  - context: context.Context
  - movieID: int64

Returns:
  - *models.Movie: The detail payload
  - error: Transport or server failures
*/
func (store *Store) MovieDetails(context context.Context, movieID int64) (*models.Movie, error) {
	store.begin()
	defer store.end()

	movie, err := store.api.MovieDetails(context, movieID)
	if err != nil {
		store.fail(err)
		return nil, err
	}

	store.mu.Lock()
	store.current = movie
	store.mu.Unlock()

	return movie, nil
}

// # Transient Operations

/*
RefreshAll triggers a server-side ranking refresh.

Description: Fetch-type but cacheless — the acknowledgement is returned for
transient display and no cached collection is overwritten.

Parameters:
  - context: context.Context

Returns:
  - *models.Ack: Acknowledgement payload
  - error: Transport or server failures
*/
func (store *Store) RefreshAll(context context.Context) (*models.Ack, error) {
	store.begin()
	defer store.end()

	ack, err := store.api.FetchAllMovies(context)
	if err != nil {
		store.fail(err)
		return nil, err
	}

	return ack, nil
}

/*
Search fetches the search result collection for a free-text query.

Description: The query is Unicode-normalized before transmission. Results are
returned for transient display and are not cached.

Parameters:
  - context: context.Context
  - query: string

Returns:
  - []models.Movie: Search results
  - error: Transport or server failures
*/
func (store *Store) Search(context context.Context, query string) ([]models.Movie, error) {
	store.begin()
	defer store.end()

	result, err := store.api.SearchMovies(context, textquery.Normalize(query))
	if err != nil {
		store.fail(err)
		return nil, err
	}

	return result, nil
}

// # Cached State

// Weekly returns the cached weekly trending collection.
func (store *Store) Weekly() []models.Movie {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.weekly
}

// Daily returns the cached daily trending collection.
func (store *Store) Daily() []models.Movie {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.daily
}

// Current returns the most recently fetched movie detail, or nil.
func (store *Store) Current() *models.Movie {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.current
}

// Loading reports whether any fetch is currently in flight.
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
