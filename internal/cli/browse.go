package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/catalogview/internal/catalog"
	"github.com/rshade/catalogview/internal/tui"
)

// browseOptions holds the flags shared by the root command and "browse".
type browseOptions struct {
	pageSize int
	search   string
	plain    bool
}

func (b *browseOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&b.pageSize, "page-size", 0, "rows per page: 5, 10, 20 or 50 (default from config)")
	cmd.Flags().StringVar(&b.search, "search", "", "initial title search keyword")
	cmd.Flags().BoolVar(&b.plain, "plain", false, "print the first page as plain text instead of starting the TUI")
}

// newBrowseCmd creates the interactive browse command.
func newBrowseCmd(opts *rootOptions) *cobra.Command {
	browse := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse products in an interactive table",
		Long: `Fetches the product list and opens an interactive table.

Keys: '/' search, 't' sort by title, 'p' sort by price, left/right or h/l to
change page, 'z' to cycle the page size, enter for details, 'q' to quit.

When stdout is not a terminal (or --plain is set) the first page is printed
as plain text instead.`,
		Example: `  # Open the browser
  catalogview browse

  # Open with 20 rows per page and a search applied
  catalogview browse --page-size 20 --search shirt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, opts, browse)
		},
	}
	browse.addFlags(cmd)

	return cmd
}

// runBrowse routes to the TUI or the plain renderer based on the output mode.
func runBrowse(cmd *cobra.Command, opts *rootOptions, browse *browseOptions) error {
	cfg := opts.effectiveConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	pageSize, err := resolvePageSize(browse.pageSize, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client := newCatalogClient(cfg)

	if tui.DetectOutputMode(browse.plain) == tui.OutputModePlain {
		state := newListState(ctx, pageSize)
		if err = catalog.NewLoader(client).Load(ctx, state); err != nil {
			return err
		}
		if browse.search != "" {
			state.Search(browse.search)
		}
		return tui.RenderPlain(cmd.OutOrStdout(), state, nil)
	}

	// Console log lines would paint over the TUI; only file logging stays on.
	if opts.logResult == nil || !opts.logResult.UsingFile {
		ctx = zerolog.Nop().WithContext(ctx)
	}

	state := newListState(ctx, pageSize)
	model := tui.NewTableModel(ctx, state, client.FetchAll, tui.WithInitialSearch(browse.search))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
