// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire client.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Gateway Timing: the fixed outbound request deadline.
  - Rate Limiting: outbound request budget towards the remote service.
  - Navigation: well-known paths and query keys for the auth guard.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "kinora"
	AppVersion = "0.1.0-dev"
)

// # Gateway Timing

const (
	// DefaultRequestTimeout is the fixed upper bound for a single outbound
	// request. Calls exceeding it fail with a timeout error instead of hanging.
	DefaultRequestTimeout = 10 * time.Second

	// MaxErrorBodySize caps how much of a failed response body is read for
	// error reporting, preventing unbounded allocation on large payloads.
	MaxErrorBodySize = 64 * 1024
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the outbound requests per second towards the remote service.
	DefaultRateLimitRPS = 10.0

	// DefaultRateLimitBurst is the maximum burst allowed for the outbound limiter.
	DefaultRateLimitBurst = 20
)

// # Navigation

const (
	// LoginPath is the destination unauthenticated users are redirected to.
	LoginPath = "/login"

	// RedirectQueryParam carries the originally intended path through the
	// login flow so the user can be forwarded back afterwards.
	RedirectQueryParam = "redirect"
)

// # HTTP Headers

const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
	HeaderContentType   = "Content-Type"
)

// # Content Types

const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// # Redis Keys (Session Taxonomy)

const (
	RedisKeySessionUser  = "kinora:session:user"
	RedisKeySessionToken = "kinora:session:token"
)
