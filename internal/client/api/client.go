// Package api contains the HTTP clients for the LostLink REST backend, one
// file per resource prefix, over a shared request core that owns base-URL
// resolution, bearer-token injection, request correlation ids, envelope
// decoding, and the centralized 401/403 forced-logout hook.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/lostlink/internal/common"
	"github.com/dmitrijs2005/lostlink/internal/logging"
)

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource func() string

// AuthFailureHandler is invoked once per 401/403 response, before the error
// is returned to the caller. It is the single place where auth failures
// force a logout; individual calls cannot bypass it.
type AuthFailureHandler func()

// Client is the shared HTTP core for all resource clients.
type Client struct {
	baseURL       string
	http          *http.Client
	token         TokenSource
	onAuthFailure AuthFailureHandler
	log           logging.Logger
}

type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client (tests, timeouts).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTokenSource installs the session token provider.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// WithAuthFailureHandler installs the forced-logout hook.
func WithAuthFailureHandler(h AuthFailureHandler) Option {
	return func(c *Client) { c.onAuthFailure = h }
}

// WithLogger installs a diagnostic logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client for the backend at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// dataEnvelope is the standard backend response wrapper: {"data": ...}.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// okEnvelope is the wrapper used by operations that return no payload.
type okEnvelope struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// do performs one request-response round trip. No retries: every mutation in
// this client is single-shot and pessimistic.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set(common.AuthHeaderName, "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response object: a network-level failure. It must not trigger
		// the auth side effect.
		return fmt.Errorf("%s %s: %w: %w", method, path, common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.decodeError(resp)
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			if c.onAuthFailure != nil {
				c.onAuthFailure()
			}
		}
		if c.log != nil {
			c.log.Warn(ctx, "request failed", "method", method, "path", path, "status", resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
