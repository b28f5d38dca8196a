package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/catalogview/internal/cli"
	"github.com/rshade/catalogview/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "catalogview", root.Use)
	})
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(errors.New("boom")))
}

func TestRun_FetchFailurePrintsOnceAndExitsOne(t *testing.T) {
	t.Setenv("CATALOGVIEW_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	var stderr bytes.Buffer
	code := run([]string{"--api-url", server.URL, "list"}, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, bytes.Count(stderr.Bytes(), []byte("Error:")))
	assert.Contains(t, stderr.String(), "HTTP 503")
}

func TestRun_Version(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"--version"}, &stderr))
	assert.Empty(t, stderr.String())
}
