package catalog

import (
	"context"

	"github.com/rshade/catalogview/internal/listview"
	"github.com/rshade/catalogview/internal/product"
)

// Fetcher returns the complete product list.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]product.Record, error)
}

// Loader fills a list view state from a Fetcher.
type Loader struct {
	fetcher Fetcher
}

// NewLoader creates a Loader that reads from f.
func NewLoader(f Fetcher) *Loader {
	return &Loader{fetcher: f}
}

// Load fetches all products and loads them into state. On error the state is
// left untouched.
func (l *Loader) Load(ctx context.Context, state *listview.State) error {
	records, err := l.fetcher.FetchAll(ctx)
	if err != nil {
		return err
	}
	state.Load(records)
	return nil
}
