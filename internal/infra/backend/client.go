// Package backend implements the gateway interfaces against the remote
// marketplace REST API. One client carries the shared request mechanics:
// base URL resolution, bearer injection, JSON codec and error
// normalization. The per-resource gateways stay thin on top of it.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"marketfront/config"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"

	"github.com/pkg/errors"
)

// Client issues requests to the backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Backend.Timeout},
		logger:  logger,
	}
}

// apiError is the backend's error body shape. Only message is relied upon.
type apiError struct {
	Message string `json:"message"`
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := gateway.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.normalizeError(resp, method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, path)
	}

	return nil
}

// normalizeError converts a non-2xx response into a domain error. The
// backend's message field is surfaced verbatim when present; otherwise a
// status-coded generic message is used.
func (c *Client) normalizeError(resp *http.Response, method, path string) error {
	var payload apiError
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if readErr == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, &payload)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return errors.Wrapf(gateway.ErrUnauthorized, "%s %s", method, path)
	case http.StatusNotFound:
		return errors.Wrapf(gateway.ErrNotFound, "%s %s", method, path)
	}

	return domainerrors.NewBackendError(resp.StatusCode, payload.Message, method+" "+path)
}
