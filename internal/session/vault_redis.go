// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/kinora/internal/models"
	"github.com/taibuivan/kinora/internal/platform/constants"
)

// RedisVault implements [Vault] on a Redis instance.
//
// # When to use
//
// The file vault is the default for a single-user host. The redis backend
// serves deployments where several processes must observe the same session
// (e.g. a kiosk fleet behind one account).
type RedisVault struct {
	client *redis.Client
}

// NewRedisVault creates a redis-backed [Vault].
func NewRedisVault(client *redis.Client) *RedisVault {
	return &RedisVault{client: client}
}

/*
SaveSession persists the user and token pair under the session keys.

Parameters:
  - context: context.Context
  - user: *models.User
  - token: string

Returns:
  - error: Persistence failures
*/
func (vault *RedisVault) SaveSession(context context.Context, user *models.User, token string) error {

	// Store the serialized user
	if err := vault.SaveUser(context, user); err != nil {
		return err
	}

	// Store the raw token string
	if err := vault.client.Set(context, constants.RedisKeySessionToken, token, 0).Err(); err != nil {
		return fmt.Errorf("redis_vault_save_token_failed: %w", err)
	}

	return nil
}

/*
SaveUser persists only the serialized user record.

Parameters:
  - context: context.Context
  - user: *models.User

Returns:
  - error: Persistence failures
*/
func (vault *RedisVault) SaveUser(context context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("redis_vault_encode_user_failed: %w", err)
	}

	if err := vault.client.Set(context, constants.RedisKeySessionUser, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis_vault_save_user_failed: %w", err)
	}

	return nil
}

/*
LoadSession restores the persisted user and token pair.

Description: Missing keys yield (nil, "", nil) — the Anonymous session.

Parameters:
  - context: context.Context

Returns:
  - *models.User: Persisted user, or nil
  - string: Persisted token, or ""
  - error: Retrieval failures
*/
func (vault *RedisVault) LoadSession(context context.Context) (*models.User, string, error) {

	// Token first; its absence alone already means Anonymous.
	token, err := vault.client.Get(context, constants.RedisKeySessionToken).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			token = ""
		} else {
			return nil, "", fmt.Errorf("redis_vault_load_token_failed: %w", err)
		}
	}

	raw, err := vault.client.Get(context, constants.RedisKeySessionUser).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, token, nil
		}
		return nil, "", fmt.Errorf("redis_vault_load_user_failed: %w", err)
	}

	user := &models.User{}
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		return nil, "", fmt.Errorf("redis_vault_decode_user_failed: %w", err)
	}

	return user, token, nil
}

/*
Token returns the persisted bearer token, or "" when absent or unreachable.

Parameters:
  - context: context.Context

Returns:
  - string: Persisted token, or ""
*/
func (vault *RedisVault) Token(context context.Context) string {
	token, err := vault.client.Get(context, constants.RedisKeySessionToken).Result()
	if err != nil {
		return ""
	}
	return token
}

/*
Clear removes the persisted user and token keys.

Parameters:
  - context: context.Context

Returns:
  - error: Deletion failures
*/
func (vault *RedisVault) Clear(context context.Context) error {
	if err := vault.client.Del(context, constants.RedisKeySessionUser, constants.RedisKeySessionToken).Err(); err != nil {
		return fmt.Errorf("redis_vault_clear_failed: %w", err)
	}
	return nil
}
