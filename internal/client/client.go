// Package client is the programmatic surface for the newsdesk backend API.
//
// Each exported method wraps one backend endpoint: it attaches the cached
// bearer token from the injected session store, issues the request, and
// unwraps the endpoint's response envelope before returning a flat value.
// The backend's envelopes are not uniform - some endpoints nest the payload
// under "data", some under "message", and acknowledgments come back either
// way. Each method encodes the shape its endpoint actually returns; do not
// assume a single convention (see envelope.go).
//
// Failures are normalized to the backend-supplied message text via APIError.
// Login is the one exception to the error contract - see auth.go.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/newsdesk/internal/session"
)

// DefaultTimeout bounds every request unless overridden. The legacy admin
// front-end ran without one; pass WithTimeout(0) to reproduce that.
const DefaultTimeout = 10 * time.Second

// Client handles communication with the newsdesk backend API.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	sessions      session.Store
	logger        *zerolog.Logger
	authPreflight bool
}

type Option func(*Client)

// WithTimeout overrides the HTTP client timeout. 0 disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithLogger attaches a logger; one event is logged per request.
func WithLogger(l *zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithAuthPreflight makes authenticated calls fail fast with
// session.ErrAuthenticationRequired when no token is cached, instead of
// sending the request anyway and letting the backend reject it. Off by
// default to match the observed behavior of the admin front-end.
func WithAuthPreflight() Option {
	return func(c *Client) {
		c.authPreflight = true
	}
}

// New creates a client for the API at baseURL. The session store supplies
// the bearer token for authenticated calls and is written to by Login.
func New(baseURL string, sessions session.Store, opts ...Option) *Client {
	nop := zerolog.Nop()
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		sessions:   sessions,
		logger:     &nop,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClearSession drops the cached session. The legacy front-end cleared
// storage from the UI directly; this is the symmetric primitive callers
// should use instead.
func (c *Client) ClearSession() error {
	return c.sessions.Clear()
}

// request carries everything needed to issue one backend call.
type request struct {
	method      string
	path        string
	body        io.Reader
	contentType string // "" means application/json
	public      bool   // skip the Authorization header
}

// do issues the request and returns the response for any 2xx status.
// Every other outcome - connection failure, non-2xx - is returned as an
// *APIError carrying the most specific message available. The caller owns
// the response body.
func (c *Client) do(ctx context.Context, r request) (*http.Response, error) {
	url := c.baseURL + "/" + strings.TrimPrefix(r.path, "/")

	req, err := http.NewRequestWithContext(ctx, r.method, url, r.body)
	if err != nil {
		return nil, newInternalError(err)
	}

	contentType := r.contentType
	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	if !r.public {
		if c.authPreflight {
			if err := session.RequireToken(c.sessions); err != nil {
				return nil, err
			}
		}
		// when no token is cached the request is still sent without the
		// header: authorization is enforced by the backend only
		if token := c.sessions.Token(); token != "" {
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		}
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().
			Str("request_id", requestID).
			Str("method", r.method).
			Str("path", r.path).
			Err(err).
			Msg("request failed")
		return nil, newConnectionError(err)
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", r.method).
		Str("path", r.path).
		Int("status", res.StatusCode).
		Dur("duration_ms", time.Since(start)).
		Msg("request completed")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		defer res.Body.Close()
		return nil, newAPIError(res)
	}

	return res, nil
}
