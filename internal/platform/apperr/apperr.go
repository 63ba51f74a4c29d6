// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for Kinora.

It provides a rich error type that bridges the gap between low-level transport
failures and the human-readable messages surfaced by the state stores.

Architecture:

  - APIError: A struct containing a machine-readable Kind and a user-friendly message.
  - Taxonomy: TRANSPORT (timeout/network, no server payload) vs SERVER
    (non-success response carrying a message field).
  - Branching: Callers switch on Kind rather than string content.

Every failure that leaves the gateway is wrapped as an [APIError] so that the
session manager and stores can record and re-raise it uniformly.
*/
package apperr

import (
	"errors"
)

// # Error Kinds

const (
	// KindTransport marks timeouts and network failures. No server payload exists.
	KindTransport = "TRANSPORT"

	// KindServer marks non-success responses reported by the remote service.
	KindServer = "SERVER"
)

// APIError is the canonical error type for remote-call failures.
//
// It carries the error kind, a display-ready message, the HTTP status code
// (server-reported errors only), and the underlying cause.
//
// # Logging
//
// The Cause and Body fields are for client-side logging and diagnostics only;
// Message is the only field meant for display.
type APIError struct {
	// Kind is the machine-readable error category ([KindTransport] or [KindServer]).
	Kind string `json:"kind"`
	// Message is a short human-readable description suitable for display.
	Message string `json:"error"`
	// HTTPStatus is the response status code for server-reported errors, 0 otherwise.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for logging only.
	Cause error `json:"-"`
	// Body is the raw server error payload, when one was present.
	Body []byte `json:"-"`
}

// Error implements the error interface. It returns the display message.
func (e *APIError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *APIError) Unwrap() error { return e.Cause }

// # Constructors

// Transport creates an [APIError] for a timeout or network failure.
//
// Example:
//
//	apperr.Transport(err) // "Network request failed"
func Transport(cause error) *APIError {
	return &APIError{
		Kind:    KindTransport,
		Message: "Network request failed",
		Cause:   cause,
	}
}

// Server creates an [APIError] for a non-success response from the remote
// service. The message is taken from the server's error payload when present;
// callers pass a generic fallback otherwise.
func Server(status int, message string, body []byte) *APIError {
	return &APIError{
		Kind:       KindServer,
		Message:    message,
		HTTPStatus: status,
		Body:       body,
	}
}

// # Helpers

// As extracts the [*APIError] from err's chain. It returns nil if not found.
func As(err error) *APIError {
	var apiError *APIError
	if errors.As(err, &apiError) {
		return apiError
	}
	return nil
}

// IsTransport reports whether err (or any error in its chain) is a transport failure.
func IsTransport(err error) bool {
	apiError := As(err)
	return apiError != nil && apiError.Kind == KindTransport
}

// IsServer reports whether err (or any error in its chain) is a server-reported failure.
func IsServer(err error) bool {
	apiError := As(err)
	return apiError != nil && apiError.Kind == KindServer
}
