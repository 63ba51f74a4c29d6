// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movielist_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinora/internal/models"
	"github.com/taibuivan/kinora/internal/movielist"
	"github.com/taibuivan/kinora/internal/platform/apperr"
)

// fakeGateway serves a mutable server-side list and counts calls.
type fakeGateway struct {
	list        []models.ListEntry
	addErr      error
	removeErr   error
	getErr      error
	addCalls    int
	removeCalls int
	getCalls    int

	// loading is probed from inside GetList to observe the store's
	// indicator while the re-fetch is in flight.
	loading  func() bool
	observed []bool
}

func (f *fakeGateway) AddToList(_ context.Context, _, movieID int64) (*models.Ack, error) {
	f.addCalls++
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.list = append(f.list, models.ListEntry{MovieID: movieID})
	return &models.Ack{Success: true}, nil
}

func (f *fakeGateway) RemoveFromList(_ context.Context, _, movieID int64) (*models.Ack, error) {
	f.removeCalls++
	if f.removeErr != nil {
		return nil, f.removeErr
	}
	kept := f.list[:0]
	for _, entry := range f.list {
		if entry.MovieID != movieID {
			kept = append(kept, entry)
		}
	}
	f.list = kept
	return &models.Ack{Success: true}, nil
}

func (f *fakeGateway) GetList(_ context.Context, _ int64) ([]models.ListEntry, error) {
	f.getCalls++
	if f.loading != nil {
		f.observed = append(f.observed, f.loading())
	}
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]models.ListEntry(nil), f.list...), nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestStore_RefreshAfterAdd verifies that a successful add is followed by a full
re-fetch and that the cache equals the fresh server state.
*/
func TestStore_RefreshAfterAdd(t *testing.T) {
	ctx := context.Background()

	api := &fakeGateway{list: []models.ListEntry{{MovieID: 1}}}
	store := movielist.NewStore(api, testLogger())

	ack, err := store.Add(ctx, 7, 2)
	require.NoError(t, err)
	assert.True(t, ack.Success)

	// 1. Exactly one mutation and one follow-up fetch.
	assert.Equal(t, 1, api.addCalls)
	assert.Equal(t, 1, api.getCalls)

	// 2. The cache mirrors the fresh server list, not a local splice.
	assert.Equal(t, api.list, store.Entries())
	assert.True(t, store.Contains(2))
	assert.True(t, store.Contains(1))
}

/*
TestStore_RefreshAfterRemove verifies the same refresh-after-write policy for
the delete mutation.
*/
func TestStore_RefreshAfterRemove(t *testing.T) {
	ctx := context.Background()

	api := &fakeGateway{list: []models.ListEntry{{MovieID: 1}, {MovieID: 2}}}
	store := movielist.NewStore(api, testLogger())

	_, err := store.Remove(ctx, 7, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, api.removeCalls)
	assert.Equal(t, 1, api.getCalls)
	assert.False(t, store.Contains(1))
	assert.True(t, store.Contains(2))
}

/*
TestStore_MutationsSkipLoading verifies that add/remove never raise the
loading indicator, even during the follow-up re-fetch, while Fetch does.
*/
func TestStore_MutationsSkipLoading(t *testing.T) {
	ctx := context.Background()

	api := &fakeGateway{list: []models.ListEntry{{MovieID: 1}}}
	store := movielist.NewStore(api, testLogger())
	api.loading = store.Loading

	// 1. The mutation's re-fetch sees the indicator down.
	_, err := store.Add(ctx, 7, 2)
	require.NoError(t, err)
	_, err = store.Remove(ctx, 7, 2)
	require.NoError(t, err)
	require.Len(t, api.observed, 2)
	assert.False(t, api.observed[0])
	assert.False(t, api.observed[1])

	// 2. A plain fetch sees it up.
	_, err = store.Fetch(ctx, 7)
	require.NoError(t, err)
	require.Len(t, api.observed, 3)
	assert.True(t, api.observed[2])
	assert.False(t, store.Loading())
}

/*
TestStore_MutationFailure verifies that a failed mutation records the error,
skips the re-fetch, and leaves the cache untouched.
*/
func TestStore_MutationFailure(t *testing.T) {
	ctx := context.Background()

	api := &fakeGateway{list: []models.ListEntry{{MovieID: 1}}}
	store := movielist.NewStore(api, testLogger())

	_, err := store.Fetch(ctx, 7)
	require.NoError(t, err)
	fetches := api.getCalls

	api.addErr = apperr.Server(409, "already saved", nil)
	_, err = store.Add(ctx, 7, 1)
	require.Error(t, err)

	// No refresh was attempted and the cache is unchanged.
	assert.Equal(t, fetches, api.getCalls)
	assert.Equal(t, []models.ListEntry{{MovieID: 1}}, store.Entries())
	assert.Equal(t, err, store.Err())
}

/*
TestStore_RefreshFailure verifies that a failed follow-up fetch surfaces as
the mutation's error and keeps the stale cache.
*/
func TestStore_RefreshFailure(t *testing.T) {
	ctx := context.Background()

	api := &fakeGateway{}
	store := movielist.NewStore(api, testLogger())

	api.getErr = apperr.Transport(io.ErrUnexpectedEOF)
	_, err := store.Add(ctx, 7, 2)
	require.Error(t, err)
	assert.True(t, apperr.IsTransport(err))

	// The mutation itself went through on the server.
	assert.Equal(t, 1, api.addCalls)
	assert.Empty(t, store.Entries())
}
