// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (Gateway, Vault) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the client is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Session Backends

const (
	// BackendFile persists the session to a JSON file on local disk.
	BackendFile = "file"
	// BackendRedis persists the session to a Redis instance.
	BackendRedis = "redis"
)

// # Configuration Schema

// Config holds all runtime configuration for the Kinora client.
type Config struct {

	// Remote service endpoint
	APIBaseURL string `env:"KINORA_API_URL" envDefault:"https://mondaydb.top"`

	// RequestTimeout is the fixed deadline applied to every outbound request.
	RequestTimeout time.Duration `env:"KINORA_REQUEST_TIMEOUT" envDefault:"10s"`

	// Outbound rate limiting towards the remote service
	RateLimitRPS   float64 `env:"KINORA_RATE_RPS"   envDefault:"10"`
	RateLimitBurst int     `env:"KINORA_RATE_BURST" envDefault:"20"`

	// Session persistence
	SessionBackend string `env:"KINORA_SESSION_BACKEND" envDefault:"file"`

	// SessionFile is the path of the file-backed session vault.
	// Empty means a per-user default under the OS config directory.
	SessionFile string `env:"KINORA_SESSION_FILE"`

	// RedisURL configures the redis-backed session vault (backend "redis" only).
	RedisURL string `env:"KINORA_REDIS_URL"`

	Debug bool `env:"KINORA_DEBUG" envDefault:"false"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Cross-field validation that struct tags cannot express.
	if cfg.SessionBackend != BackendFile && cfg.SessionBackend != BackendRedis {
		return nil, fmt.Errorf("config: unknown session backend %q", cfg.SessionBackend)
	}
	if cfg.SessionBackend == BackendRedis && cfg.RedisURL == "" {
		return nil, fmt.Errorf("config: KINORA_REDIS_URL is required for the redis session backend")
	}

	return cfg, nil
}
