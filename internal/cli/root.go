package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/catalogview/internal/config"
	"github.com/rshade/catalogview/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootOptions carries the persistent flags and the effective configuration
// to every subcommand.
type rootOptions struct {
	configPath string
	apiURL     string
	timeout    time.Duration
	debug      bool

	cfg       *config.Config
	logResult *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the catalogview CLI.
// Running it without a subcommand starts the interactive browser.
func NewRootCmd(ver string) *cobra.Command {
	opts := &rootOptions{}
	browse := &browseOptions{}

	cmd := &cobra.Command{
		Use:           "catalogview",
		Short:         "Browse a remote product catalog in the terminal",
		Long:          "catalogview fetches a product list once, then searches, sorts and pages through it locally.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd, opts)
			opts.logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, opts.logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, opts, browse)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"path to config file (default $CATALOGVIEW_HOME/config.yaml or ~/.catalogview/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "product API URL (overrides config and environment)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "fetch timeout, e.g. 10s (overrides config and environment)")
	browse.addFlags(cmd)

	cmd.AddCommand(newBrowseCmd(opts), newListCmd(opts), newConfigCmd(opts))

	return cmd
}

// loadConfig builds the effective configuration and applies flag overrides.
func (o *rootOptions) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if cmd.Flags().Changed("api-url") {
		cfg.Source.APIURL = o.apiURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Source.Timeout = o.timeout
	}

	o.cfg = cfg
	return nil
}

// effectiveConfig returns the effective configuration, or defaults before PersistentPreRunE ran.
func (o *rootOptions) effectiveConfig() *config.Config {
	if o.cfg == nil {
		return config.New()
	}
	return o.cfg
}

const rootCmdExample = `  # Browse products interactively
  catalogview

  # Start the browser with a search applied
  catalogview browse --search shoes

  # Print page 2 of the cheapest products as a table
  catalogview list --sort price:asc --page 2

  # Export matching products as JSON
  catalogview list --search classic --page-size 50 --output json

  # Use a different API endpoint
  catalogview --api-url http://localhost:8080/api/v1/products list

  # Write a default configuration file
  catalogview config init`
