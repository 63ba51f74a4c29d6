// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movies_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinora/internal/models"
	"github.com/taibuivan/kinora/internal/movies"
	"github.com/taibuivan/kinora/internal/platform/apperr"
)

// fakeGateway scripts the catalogue operations and records call parameters.
type fakeGateway struct {
	weekly     []models.Movie
	daily      []models.Movie
	detail     *models.Movie
	results    []models.Movie
	ack        *models.Ack
	err        error
	lastPage   int
	lastQuery  string
	fetchCalls int
}

func (f *fakeGateway) WeeklyTrending(_ context.Context, page int) ([]models.Movie, error) {
	f.lastPage = page
	return f.weekly, f.err
}

func (f *fakeGateway) DailyTrending(_ context.Context, page int) ([]models.Movie, error) {
	f.lastPage = page
	return f.daily, f.err
}

func (f *fakeGateway) MovieDetails(_ context.Context, _ int64) (*models.Movie, error) {
	return f.detail, f.err
}

func (f *fakeGateway) FetchAllMovies(_ context.Context) (*models.Ack, error) {
	f.fetchCalls++
	return f.ack, f.err
}

func (f *fakeGateway) SearchMovies(_ context.Context, query string) ([]models.Movie, error) {
	f.lastQuery = query
	return f.results, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestStore_TrendingReplacesCache verifies that each successful fetch replaces
the cached collection verbatim.
*/
func TestStore_TrendingReplacesCache(t *testing.T) {
	ctx := context.Background()

	api := &fakeGateway{
		weekly: []models.Movie{{MovieID: 1, Title: "First"}},
		daily:  []models.Movie{{MovieID: 2, Title: "Second"}},
	}
	store := movies.NewStore(api, testLogger())

	// 1. Weekly fetch fills the weekly cache only.
	got, err := store.WeeklyTrending(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, api.weekly, got)
	assert.Equal(t, api.weekly, store.Weekly())
	assert.Empty(t, store.Daily())

	// 2. Daily fetch fills the daily cache without touching weekly.
	_, err = store.DailyTrending(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, api.daily, store.Daily())
	assert.Equal(t, api.weekly, store.Weekly())

	// 3. A later response replaces the cache as a whole.
	api.weekly = []models.Movie{{MovieID: 3, Title: "Third"}}
	_, err = store.WeeklyTrending(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, api.weekly, store.Weekly())
}

/*
TestStore_PageClamp verifies that page numbers below 1 default to page 1.
*/
func TestStore_PageClamp(t *testing.T) {
	ctx := context.Background()

	api := &fakeGateway{}
	store := movies.NewStore(api, testLogger())

	_, err := store.WeeklyTrending(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, api.lastPage)

	_, err = store.DailyTrending(ctx, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, api.lastPage)

	_, err = store.WeeklyTrending(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, api.lastPage)
}

/*
TestStore_MovieDetails verifies the current-movie cache.
*/
func TestStore_MovieDetails(t *testing.T) {
	ctx := context.Background()

	api := &fakeGateway{detail: &models.Movie{MovieID: 42, Title: "Detail"}}
	store := movies.NewStore(api, testLogger())

	assert.Nil(t, store.Current())

	movie, err := store.MovieDetails(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), movie.MovieID)
	assert.Equal(t, movie, store.Current())
}

/*
TestStore_FailureRecordsError verifies that a failed fetch records the error,
re-raises it, and leaves the cache and loading indicator intact.
*/
func TestStore_FailureRecordsError(t *testing.T) {
	ctx := context.Background()

	api := &fakeGateway{weekly: []models.Movie{{MovieID: 1}}}
	store := movies.NewStore(api, testLogger())

	// Seed the cache with a successful fetch.
	_, err := store.WeeklyTrending(ctx, 1)
	require.NoError(t, err)

	// 1. The failure is re-raised and recorded.
	api.err = apperr.Server(500, "upstream exploded", nil)
	_, err = store.WeeklyTrending(ctx, 2)
	require.Error(t, err)
	assert.Equal(t, err, store.Err())

	// 2. The previous cache content survives the failure.
	assert.Equal(t, []models.Movie{{MovieID: 1}}, store.Weekly())

	// 3. The loading indicator is clear after the failure.
	assert.False(t, store.Loading())

	// 4. The next successful operation clears the recorded error.
	api.err = nil
	_, err = store.WeeklyTrending(ctx, 1)
	require.NoError(t, err)
	assert.NoError(t, store.Err())
}

/*
TestStore_TransientOperations verifies that search and refresh-all return
their payloads without overwriting any cached collection.
*/
func TestStore_TransientOperations(t *testing.T) {
	ctx := context.Background()

	api := &fakeGateway{
		weekly:  []models.Movie{{MovieID: 1}},
		results: []models.Movie{{MovieID: 9, Title: "Found"}},
		ack:     &models.Ack{Message: "refreshed", Success: true},
	}
	store := movies.NewStore(api, testLogger())

	_, err := store.WeeklyTrending(ctx, 1)
	require.NoError(t, err)

	// 1. Search results come back but do not land in any cache.
	results, err := store.Search(ctx, "blade runner")
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, []models.Movie{{MovieID: 1}}, store.Weekly())

	// 2. Refresh-all returns the acknowledgement and fires exactly once.
	ack, err := store.RefreshAll(ctx)
	require.NoError(t, err)
	assert.True(t, ack.Success)
	assert.Equal(t, 1, api.fetchCalls)
	assert.Equal(t, []models.Movie{{MovieID: 1}}, store.Weekly())
}

/*
TestStore_SearchNormalizesQuery verifies whitespace normalization of the
outbound search query.
*/
func TestStore_SearchNormalizesQuery(t *testing.T) {
	ctx := context.Background()

	api := &fakeGateway{}
	store := movies.NewStore(api, testLogger())

	_, err := store.Search(ctx, "  blade \t runner  ")
	require.NoError(t, err)
	assert.Equal(t, "blade runner", api.lastQuery)
}
