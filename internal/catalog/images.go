package catalog

import (
	"context"
	"net/http"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/catalogview/internal/logging"
	"github.com/rshade/catalogview/internal/product"
)

// defaultProbeTimeout bounds a single image HEAD request.
const defaultProbeTimeout = 5 * time.Second

// ImageChecker decides which image to display for each record by probing the
// primary image URL. Images that are missing, malformed, or fail to load are
// replaced by the placeholder.
type ImageChecker struct {
	HTTPClient  *http.Client
	Placeholder string
	Timeout     time.Duration

	// Concurrency caps in-flight probes. Zero means runtime.NumCPU().
	Concurrency int
}

// NewImageChecker creates an ImageChecker using the standard placeholder.
func NewImageChecker(hc *http.Client) *ImageChecker {
	if hc == nil {
		hc = &http.Client{}
	}
	return &ImageChecker{
		HTTPClient:  hc,
		Placeholder: product.PlaceholderImage,
		Timeout:     defaultProbeTimeout,
	}
}

// Resolve returns, for every record ID, the URL that should be displayed.
// Probe failures are logged and fall back to the placeholder; Resolve never fails.
func (c *ImageChecker) Resolve(ctx context.Context, records []product.Record) map[int]string {
	resolved := make(map[int]string, len(records))

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	limit := c.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	g.SetLimit(limit)

	for _, rec := range records {
		primary := rec.PrimaryImage(c.Placeholder)
		if primary == c.Placeholder {
			resolved[rec.ID] = c.Placeholder
			continue
		}

		g.Go(func() error {
			display := primary
			if !c.probe(gCtx, primary) {
				display = c.Placeholder
			}
			mu.Lock()
			resolved[rec.ID] = display
			mu.Unlock()
			// One broken image must not cancel the other probes.
			return nil
		})
	}

	_ = g.Wait()
	return resolved
}

// probe reports whether url answers a HEAD request with a 2xx status.
func (c *ImageChecker) probe(ctx context.Context, url string) bool {
	log := logging.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		log.Debug().Str("image", url).Err(err).Msg("invalid image request")
		return false
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Debug().Str("image", url).Err(err).Msg("image probe failed")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug().Str("image", url).Int("status", resp.StatusCode).Msg("image unavailable")
		return false
	}
	return true
}
