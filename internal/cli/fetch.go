package cli

import (
	"context"
	"fmt"

	"github.com/rshade/catalogview/internal/catalog"
	"github.com/rshade/catalogview/internal/config"
	"github.com/rshade/catalogview/internal/listview"
	"github.com/rshade/catalogview/internal/logging"
	"github.com/rshade/catalogview/internal/pagination"
)

// newCatalogClient builds the API client from the effective configuration.
func newCatalogClient(cfg *config.Config) *catalog.Client {
	return catalog.NewClient(cfg.Source.APIURL, catalog.WithTimeout(cfg.Source.Timeout))
}

// resolvePageSize returns flagValue when set, otherwise the configured size.
// Sizes outside pagination.PageSizeOptions are rejected.
func resolvePageSize(flagValue int, cfg *config.Config) (int, error) {
	size := cfg.View.PageSize
	if flagValue != 0 {
		size = flagValue
	}
	if !pagination.IsPageSizeOption(size) {
		return 0, fmt.Errorf("%w: got %d, want one of %v", pagination.ErrInvalidPageSize, size, pagination.PageSizeOptions)
	}
	return size, nil
}

// newListState creates the list view state with a component logger from ctx.
func newListState(ctx context.Context, pageSize int) *listview.State {
	return listview.New(
		listview.WithPageSize(pageSize),
		listview.WithLogger(logging.ComponentLogger(*logging.FromContext(ctx), "listview")),
	)
}
