package tui

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/catalogview/internal/listview"
	"github.com/rshade/catalogview/internal/product"
)

func TestRenderPlain(t *testing.T) {
	list := listview.New()
	list.Load([]product.Record{
		{ID: 1, Title: "Classic Shoes", Price: decimal.NewFromInt(30), Images: []string{"https://img.example/1.png"}},
		{ID: 2, Title: "Hat", PriceMissing: true},
	})

	var buf bytes.Buffer
	require.NoError(t, RenderPlain(&buf, list, nil))

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "https://img.example/1.png")
	assert.Contains(t, out, product.PlaceholderImage)
	assert.Contains(t, out, "$30.00")
	assert.Contains(t, out, "Page 1 / 1")
	assert.Contains(t, out, "Sort: Title, Price")
	assert.NotContains(t, out, "Filtered")
}

func TestRenderPlain_EmptyAndFiltered(t *testing.T) {
	list := listview.New()
	list.Load([]product.Record{{ID: 1, Title: "Hat"}})
	list.Search("boots")
	list.Sort(listview.SortByPrice)

	var buf bytes.Buffer
	require.NoError(t, RenderPlain(&buf, list, nil))

	out := buf.String()
	assert.Contains(t, out, noResultsText)
	assert.Contains(t, out, "Page 1 / 1")
	assert.Contains(t, out, "Filtered: 0/1")
	assert.Contains(t, out, "*Price ▲")
}

func TestRenderPlain_CustomImage(t *testing.T) {
	list := listview.New()
	list.Load([]product.Record{{ID: 4, Title: "Lamp", Images: []string{"https://img.example/4.png"}}})

	var buf bytes.Buffer
	require.NoError(t, RenderPlain(&buf, list, func(product.Record) string { return "checked.png" }))
	assert.Contains(t, buf.String(), "checked.png")
	assert.NotContains(t, buf.String(), "https://img.example/4.png")
}
