package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/catalogview/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")

	path := filepath.Join(home, "config.yaml")
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	_, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigShow_MergesFileEnvAndFlags(t *testing.T) {
	home := setupCLITest(t)
	t.Setenv(config.EnvPageSize, "20")

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("source:\n  timeout: 3s\nview:\n  page_size: 10\n"), 0600))

	out, err := execute(t, "--api-url", "http://localhost:9/products", "config", "show")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "http://localhost:9/products", cfg.Source.APIURL, "flag wins")
	assert.Equal(t, 20, cfg.View.PageSize, "env beats file")
	assert.Equal(t, "3s", cfg.Source.Timeout.String(), "file beats default")
}

func TestConfigShow_DotEnv(t *testing.T) {
	setupCLITest(t)
	require.NoError(t, os.WriteFile(".env", []byte("CATALOGVIEW_PAGE_SIZE=50\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv(config.EnvPageSize) })

	out, err := execute(t, "config", "show")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 50, cfg.View.PageSize)
}

func TestConfigValidate(t *testing.T) {
	home := setupCLITest(t)

	out, err := execute(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("view:\n  page_size: 7\n"), 0600))
	_, err = execute(t, "config", "validate")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidPageSize)
}

func TestConfigPath(t *testing.T) {
	home := setupCLITest(t)

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml")+"\n", out)

	out, err = execute(t, "--config", "/tmp/custom.yaml", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml\n", out)
}
