package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvHome      = "CATALOGVIEW_HOME"
	EnvAPIURL    = "CATALOGVIEW_API_URL"
	EnvTimeout   = "CATALOGVIEW_TIMEOUT"
	EnvPageSize  = "CATALOGVIEW_PAGE_SIZE"
	EnvLogLevel  = "CATALOGVIEW_LOG_LEVEL"
	EnvLogFormat = "CATALOGVIEW_LOG_FORMAT"
	EnvLogFile   = "CATALOGVIEW_LOG_FILE"
)

// DotEnvFile is the dotenv file read from the working directory.
const DotEnvFile = ".env"

// ApplyEnv loads DotEnvFile (if present) without overriding variables that are
// already set, then applies CATALOGVIEW_* overrides onto cfg.
func ApplyEnv(cfg *Config) error {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", DotEnvFile, err)
	}
	return applyEnvLookup(cfg, os.LookupEnv)
}

// applyEnvLookup applies overrides read through lookup, for testability.
func applyEnvLookup(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		cfg.Source.APIURL = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvTimeout, err)
		}
		cfg.Source.Timeout = d
	}
	if v, ok := lookup(EnvPageSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvPageSize, err)
		}
		cfg.View.PageSize = n
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.Logging.Format = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Logging.File = v
	}
	return nil
}
