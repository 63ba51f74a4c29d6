// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package gateway implements the single point of outbound HTTP communication
with the remote movie service.

It owns the base endpoint, the fixed request timeout, and uniform request
augmentation: every outbound call is stamped with a correlation ID and, when a
bearer token is present in persistent storage, an Authorization header.

Architecture:

  - Client: One configured [http.Client] shared by all operation groups.
  - Operation groups: Thin typed methods per remote endpoint (movies, users,
    lists, comments), each fixing the HTTP method, path, and body encoding.
  - Encodings: JSON body by default, form-encoded body for login, multipart
    body for avatar upload. The encoding is fixed per endpoint.

The gateway performs no retries and no error translation beyond wrapping
failures as [apperr.APIError]; rejections propagate verbatim to the caller.
*/
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/taibuivan/kinora/internal/platform/apperr"
	"github.com/taibuivan/kinora/internal/platform/config"
	"github.com/taibuivan/kinora/internal/platform/constants"
	"github.com/taibuivan/kinora/internal/platform/ctxutil"
)

// # Contracts & Types

// TokenSource reports the bearer token currently held in persistent storage.
//
// # Why an interface?
//
// The gateway is a reader only; the session manager is the sole writer of the
// persisted token. Depending on this narrow contract keeps the gateway free of
// session state and lets tests inject a fixed token.
type TokenSource interface {
	// Token returns the persisted bearer token, or "" when absent.
	Token(ctx context.Context) string
}

// StaticToken is a [TokenSource] that always returns the same value.
// An empty StaticToken yields unauthenticated requests.
type StaticToken string

// Token implements [TokenSource].
func (t StaticToken) Token(_ context.Context) string { return string(t) }

// Client is the configured HTTP client for the remote movie service.
//
// It holds no state beyond configuration; all cached data lives in the
// domain stores.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
	log        *slog.Logger
}

// # Client Initialization

// New constructs a gateway [Client] from configuration.
//
// # Parameters
//   - cfg: Runtime configuration (base URL, timeout, rate budget).
//   - tokens: Read-only view of the persisted bearer token.
//   - logger: Structured logger for outbound call events.
func New(cfg *config.Config, tokens TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		tokens:  tokens,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		log:     logger,
	}
}

// # Request Plumbing

// call executes one outbound request and decodes the JSON response into out.
//
// Description: Builds the URL, waits for the outbound rate budget, stamps the
// correlation ID, attaches the bearer token when present, and maps failures
// onto the [apperr] taxonomy. A nil out discards the response body.
//
// Parameters:
//   - context: context.Context
//   - method: HTTP method
//   - path: Endpoint path relative to the base URL
//   - query: Optional query parameters
//   - body: Optional request body
//   - contentType: Content-Type for the body ("" when body is nil)
//   - out: Pointer to the decode target, or nil
//
// Returns:
//   - error: apperr.Transport or apperr.Server failures
func (client *Client) call(context context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {

	// Respect the outbound request budget before doing any work.
	if err := client.limiter.Wait(context); err != nil {
		return apperr.Transport(err)
	}

	// Assemble the full request URL.
	endpoint := client.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(context, method, endpoint, body)
	if err != nil {
		return apperr.Transport(err)
	}

	// Correlation ID for log matching across client and server.
	requestID := ctxutil.GetRequestID(context)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	request.Header.Set(constants.HeaderRequestID, requestID)

	if contentType != "" {
		request.Header.Set(constants.HeaderContentType, contentType)
	}

	// Attach the bearer token only when one is present in persistent storage.
	// Requests without a token are sent unauthenticated; the server decides
	// whether that is acceptable per endpoint.
	if token := client.tokens.Token(context); token != "" {
		request.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.log.Debug("gateway_transport_failure",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
		return apperr.Transport(err)
	}
	defer func() { _ = response.Body.Close() }()

	// Non-success responses carry the server's error payload up to the caller.
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return client.serverError(response, method, path, requestID)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, response.Body)
		return nil
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return apperr.Transport(fmt.Errorf("gateway_decode_failed: %w", err))
	}

	return nil
}

// serverError converts a non-2xx response into an [apperr.APIError].
func (client *Client) serverError(response *http.Response, method, path, requestID string) error {

	// Bounded read keeps oversized error pages from exhausting memory.
	body := readErrorBody(response.Body)

	// The server's message field wins when the payload is parseable.
	message := fmt.Sprintf("Request failed with status %d", response.StatusCode)
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			message = payload.Message
		} else if payload.Error != "" {
			message = payload.Error
		}
	}

	client.log.Debug("gateway_server_failure",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
		slog.Int("status", response.StatusCode),
	)

	return apperr.Server(response.StatusCode, message, body)
}

// readErrorBody reads a failed response body for error reporting, capped at
// [constants.MaxErrorBodySize].
func readErrorBody(r io.Reader) []byte {
	limited := io.LimitReader(r, constants.MaxErrorBodySize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

// # Encoding Helpers

// getJSON performs a GET request and decodes the JSON response.
func (client *Client) getJSON(context context.Context, path string, query url.Values, out interface{}) error {
	return client.call(context, http.MethodGet, path, query, nil, "", out)
}

// postJSON performs a POST request with an optional JSON body.
func (client *Client) postJSON(context context.Context, path string, query url.Values, payload interface{}, out interface{}) error {

	// Endpoints without a body post an empty one.
	var body io.Reader
	contentType := ""
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return apperr.Transport(fmt.Errorf("gateway_encode_failed: %w", err))
		}
		body = strings.NewReader(string(encoded))
		contentType = constants.ContentTypeJSON
	}

	return client.call(context, http.MethodPost, path, query, body, contentType, out)
}

// deleteJSON performs a DELETE request and decodes the JSON response.
func (client *Client) deleteJSON(context context.Context, path string, query url.Values, out interface{}) error {
	return client.call(context, http.MethodDelete, path, query, nil, "", out)
}
