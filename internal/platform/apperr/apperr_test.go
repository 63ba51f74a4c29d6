// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinora/internal/platform/apperr"
)

func TestTransport(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := apperr.Transport(cause)

	assert.Equal(t, apperr.KindTransport, err.Kind)
	assert.Equal(t, "Network request failed", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.True(t, apperr.IsTransport(err))
	assert.False(t, apperr.IsServer(err))
}

func TestServer(t *testing.T) {
	err := apperr.Server(401, "Invalid login credentials", []byte(`{"message":"Invalid login credentials"}`))

	assert.Equal(t, apperr.KindServer, err.Kind)
	assert.Equal(t, 401, err.HTTPStatus)
	assert.Equal(t, "Invalid login credentials", err.Error())

	assert.True(t, apperr.IsServer(err))
	assert.False(t, apperr.IsTransport(err))
}

func TestAs_TraversesWrapping(t *testing.T) {
	inner := apperr.Server(500, "upstream exploded", nil)
	wrapped := fmt.Errorf("fetch_trending_failed: %w", inner)

	extracted := apperr.As(wrapped)
	require.NotNil(t, extracted)
	assert.Equal(t, 500, extracted.HTTPStatus)
	assert.True(t, apperr.IsServer(wrapped))
}

func TestAs_NilForForeignErrors(t *testing.T) {
	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.Nil(t, apperr.As(nil))
	assert.False(t, apperr.IsTransport(nil))
	assert.False(t, apperr.IsServer(nil))
}
