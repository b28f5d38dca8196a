package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/catalogview/internal/cli"
)

// setupCLITest isolates config and .env lookup from the developer's machine.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("CATALOGVIEW_HOME", home)
	t.Setenv("CATALOGVIEW_LOG_LEVEL", "error")
	t.Chdir(t.TempDir())
	return home
}

// newProductServer serves n products; product i costs 10*i and is titled "Product i".
func newProductServer(t *testing.T, n int) *httptest.Server {
	t.Helper()
	items := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, fmt.Sprintf(
			`{"id": %d, "title": "Product %d", "price": %d, "images": ["https://img.example/%d.png"]}`,
			i, i, 10*i, i))
	}
	body := "[" + strings.Join(items, ",") + "]"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCmd("0.1.0")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

type listDoc struct {
	Search string `json:"search" yaml:"search"`
	Sort   string `json:"sort"   yaml:"sort"`
	Items  []struct {
		ID    int     `json:"id"    yaml:"id"`
		Title string  `json:"title" yaml:"title"`
		Price float64 `json:"price" yaml:"price"`
		Image string  `json:"image" yaml:"image"`
	} `json:"items" yaml:"items"`
	Pagination struct {
		CurrentPage int  `json:"current_page" yaml:"current_page"`
		PageSize    int  `json:"page_size"    yaml:"page_size"`
		TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
		TotalItems  int  `json:"total_items"  yaml:"total_items"`
		HasPrevious bool `json:"has_previous" yaml:"has_previous"`
		HasNext     bool `json:"has_next"     yaml:"has_next"`
	} `json:"pagination" yaml:"pagination"`
}

func itemIDs(doc listDoc) []int {
	ids := make([]int, len(doc.Items))
	for i, item := range doc.Items {
		ids[i] = item.ID
	}
	return ids
}

func TestList_JSONPaginationClamps(t *testing.T) {
	setupCLITest(t)
	server := newProductServer(t, 12)

	out, err := execute(t, "--api-url", server.URL, "list", "--page", "5", "--output", "json")
	require.NoError(t, err)

	var doc listDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []int{11, 12}, itemIDs(doc))
	assert.Equal(t, 3, doc.Pagination.CurrentPage)
	assert.Equal(t, 3, doc.Pagination.TotalPages)
	assert.Equal(t, 12, doc.Pagination.TotalItems)
	assert.True(t, doc.Pagination.HasPrevious)
	assert.False(t, doc.Pagination.HasNext)
	assert.InDelta(t, 110.0, doc.Items[0].Price, 0.001)
}

func TestList_SearchSortPageSize(t *testing.T) {
	setupCLITest(t)
	server := newProductServer(t, 12)

	out, err := execute(t, "--api-url", server.URL, "list",
		"--search", "PRODUCT 1", "--sort", "price:desc", "--page-size", "10", "--output", "json")
	require.NoError(t, err)

	var doc listDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "PRODUCT 1", doc.Search)
	assert.Equal(t, "price:desc", doc.Sort)
	assert.Equal(t, []int{12, 11, 10, 1}, itemIDs(doc))
	assert.Equal(t, 10, doc.Pagination.PageSize)
}

func TestList_YAML(t *testing.T) {
	setupCLITest(t)
	server := newProductServer(t, 3)

	out, err := execute(t, "--api-url", server.URL, "list", "--sort", "title", "-o", "yaml")
	require.NoError(t, err)

	var doc listDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []int{1, 2, 3}, itemIDs(doc))
	assert.Equal(t, "title:asc", doc.Sort)
	assert.Equal(t, "https://img.example/2.png", doc.Items[1].Image)
}

func TestList_NDJSON(t *testing.T) {
	setupCLITest(t)
	server := newProductServer(t, 7)

	out, err := execute(t, "--api-url", server.URL, "list", "--output", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.JSONEq(t,
		`{"id":1,"title":"Product 1","price":10,"image":"https://img.example/1.png","images":["https://img.example/1.png"]}`,
		lines[0])
}

func TestList_Table(t *testing.T) {
	setupCLITest(t)
	server := newProductServer(t, 2)

	out, err := execute(t, "--api-url", server.URL, "list", "--search", "nothing matches")
	require.NoError(t, err)
	assert.Contains(t, out, "No products found")
	assert.Contains(t, out, "Page 1 / 1")
	assert.Contains(t, out, "Filtered: 0/2")
}

func TestList_FlagErrors(t *testing.T) {
	setupCLITest(t)
	server := newProductServer(t, 2)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "bad output", args: []string{"list", "-o", "xml"}, wantErr: "unsupported output format"},
		{name: "bad sort field", args: []string{"list", "--sort", "rating"}, wantErr: "invalid --sort"},
		{name: "bad sort order", args: []string{"list", "--sort", "price:up"}, wantErr: "invalid --sort"},
		{name: "bad page size", args: []string{"list", "--page-size", "7"}, wantErr: "page-size"},
		{name: "bad page", args: []string{"list", "--page", "0"}, wantErr: "page"},
		{name: "positional arg", args: []string{"list", "extra"}, wantErr: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--api-url", server.URL}, tt.args...)
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestList_FetchFailure(t *testing.T) {
	setupCLITest(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	out, err := execute(t, "--api-url", server.URL, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 503")
	assert.NotContains(t, out, "Error:", "root command leaves printing to main")
}

func TestBrowse_PlainFallback(t *testing.T) {
	setupCLITest(t)
	server := newProductServer(t, 6)

	out, err := execute(t, "--api-url", server.URL, "browse", "--plain", "--search", "product 6")
	require.NoError(t, err)
	assert.Contains(t, out, "Product 6")
	assert.Contains(t, out, "$60.00")
	assert.Contains(t, out, "Filtered: 1/6")
}

func TestRoot_DefaultsToBrowse(t *testing.T) {
	setupCLITest(t)
	server := newProductServer(t, 6)

	// The test binary's stdout is not a terminal, so browse prints the first page.
	out, err := execute(t, "--api-url", server.URL, "--page-size", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Product 5")
	assert.NotContains(t, out, "Product 6")
	assert.Contains(t, out, "Page 1 / 2")
}
