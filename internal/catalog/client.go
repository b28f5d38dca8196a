// Package catalog fetches the product list from the remote catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rshade/catalogview/internal/logging"
	"github.com/rshade/catalogview/internal/product"
)

// DefaultTimeout bounds a single FetchAll call when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of a non-2xx response body is kept for the error.
const maxErrorBody = 512

// Client reads the full product list with one GET request.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.Timeout = d
		}
	}
}

// NewClient creates a Client for baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
		Timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll requests the product list and decodes it. There is no retry.
// Context cancellation and deadline errors are returned unwrapped.
func (c *Client) FetchAll(ctx context.Context) ([]product.Record, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, &FetchError{Source: c.BaseURL, Err: fmt.Errorf("%w: %w", ErrFetchFailed, err)}
	}
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("url", c.BaseURL).Msg("fetching products")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &FetchError{Source: c.BaseURL, Err: fmt.Errorf("%w: %w", ErrFetchFailed, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Warn().Ctx(ctx).
			Str("url", c.BaseURL).
			Int("status", resp.StatusCode).
			Msg("catalog API returned an error status")
		return nil, &FetchError{
			Source:     c.BaseURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %s", ErrFetchFailed, bodySnippet(body, resp.Status)),
		}
	}

	var records []product.Record
	if err = json.NewDecoder(resp.Body).Decode(&records); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &FetchError{
			Source:     c.BaseURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %w", ErrDecodeFailed, err),
		}
	}

	log.Info().Ctx(ctx).
		Int("count", len(records)).
		Dur("duration", time.Since(start)).
		Msg("fetched products")

	return records, nil
}

func bodySnippet(body []byte, status string) string {
	if len(body) == 0 {
		return status
	}
	return string(body)
}
