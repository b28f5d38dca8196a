package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for fetch failures. Use errors.Is to test for them.
var (
	ErrFetchFailed  = errors.New("fetch failed")
	ErrDecodeFailed = errors.New("decoding product list failed")
)

// FetchError describes a failed request to the catalog API.
type FetchError struct {
	// Source is the URL that was requested.
	Source string

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int

	Err error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching products from %s: HTTP %d: %v", e.Source, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetching products from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
