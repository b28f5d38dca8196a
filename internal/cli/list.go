package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/catalogview/internal/catalog"
	"github.com/rshade/catalogview/internal/listview"
	"github.com/rshade/catalogview/internal/pagination"
	"github.com/rshade/catalogview/internal/product"
	"github.com/rshade/catalogview/internal/tui"
)

// listOptions holds the flags of the list command.
type listOptions struct {
	search      string
	sort        string
	pageSize    int
	page        int
	output      string
	checkImages bool
}

// newListCmd creates the one-shot list command.
func newListCmd(opts *rootOptions) *cobra.Command {
	list := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of products",
		Long: `Fetches the product list once, applies --search, then --sort, then prints
the requested page.

--sort takes field[:asc|desc] where field is title or price. The field's
direction is toggled until it matches, exactly as pressing the sort key in
the browser would.`,
		Example: `  # First page, default size
  catalogview list

  # Most expensive products first, 10 per page, page 3
  catalogview list --sort price:desc --page-size 10 --page 3

  # Search and export as YAML
  catalogview list --search shoes --output yaml

  # Replace images that fail to load with the placeholder
  catalogview list --check-images`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts, list)
		},
	}

	cmd.Flags().StringVar(&list.search, "search", "", "title search keyword (case-insensitive)")
	cmd.Flags().StringVar(&list.sort, "sort", "", "sort field and direction, e.g. price:desc or title")
	cmd.Flags().IntVar(&list.pageSize, "page-size", 0, "rows per page: 5, 10, 20 or 50 (default from config)")
	cmd.Flags().IntVar(&list.page, "page", pagination.DefaultPage, "page number (clamped to the last page)")
	cmd.Flags().StringVarP(&list.output, "output", "o", outputTable,
		"output format: "+strings.Join(outputFormats, ", "))
	cmd.Flags().BoolVar(&list.checkImages, "check-images", false,
		"probe each image URL and show the placeholder for images that fail to load")

	return cmd
}

func runList(cmd *cobra.Command, opts *rootOptions, list *listOptions) error {
	if !isValidOutputFormat(list.output) {
		return fmt.Errorf("unsupported output format: %s", list.output)
	}
	if list.page < pagination.MinPage {
		return fmt.Errorf("%w: got %d", pagination.ErrInvalidPage, list.page)
	}

	sortField, sortDir, hasSort, err := parseSortFlag(list.sort)
	if err != nil {
		return err
	}

	cfg := opts.effectiveConfig()
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	pageSize, err := resolvePageSize(list.pageSize, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	state := newListState(ctx, pageSize)
	if err = catalog.NewLoader(newCatalogClient(cfg)).Load(ctx, state); err != nil {
		return err
	}

	state.Search(list.search)
	if hasSort {
		state.SortTo(sortField, sortDir)
	}
	state.GoToPage(list.page)

	var image tui.ImageFunc
	if list.checkImages {
		resolved := catalog.NewImageChecker(nil).Resolve(ctx, state.VisiblePage().Rows)
		image = func(rec product.Record) string {
			if url, ok := resolved[rec.ID]; ok {
				return url
			}
			return product.PlaceholderImage
		}
	}

	logger.Debug().Ctx(ctx).
		Int("matched", state.ViewCount()).
		Int("page", state.CurrentPage()).
		Str("output", list.output).
		Msg("rendering product list")

	return renderList(cmd.OutOrStdout(), list.output, state, image)
}

// parseSortFlag parses field[:asc|desc]. An empty value means no sort.
func parseSortFlag(value string) (listview.SortField, listview.Direction, bool, error) {
	if value == "" {
		return 0, listview.Unsorted, false, nil
	}

	fieldName, order, err := pagination.ParseSort(value)
	if err != nil {
		return 0, listview.Unsorted, false, fmt.Errorf("invalid --sort: %w", err)
	}
	field, err := listview.ParseSortField(fieldName)
	if err != nil {
		return 0, listview.Unsorted, false, fmt.Errorf("invalid --sort: %w", err)
	}

	dir := listview.Ascending
	if order == pagination.SortOrderDesc {
		dir = listview.Descending
	}
	return field, dir, true, nil
}
