package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rshade/catalogview/internal/listview"
	"github.com/rshade/catalogview/internal/product"
)

// ImageFunc picks the image shown for a record.
type ImageFunc func(rec product.Record) string

// PrimaryImageOrPlaceholder is the default ImageFunc.
func PrimaryImageOrPlaceholder(rec product.Record) string {
	return rec.PrimaryImage(product.PlaceholderImage)
}

// RenderPlain writes the visible page of list as an uncolored text table
// followed by the pagination footer and sort summary. A nil image uses
// PrimaryImageOrPlaceholder.
func RenderPlain(w io.Writer, list *listview.State, image ImageFunc) error {
	if image == nil {
		image = PrimaryImageOrPlaceholder
	}

	page := list.VisiblePage()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // Column padding.
	fmt.Fprintln(tw, "ID\tIMAGE\tTITLE\tPRICE")
	if page.Empty() {
		fmt.Fprintf(tw, "\t\t%s\t\n", noResultsText)
	}
	for _, rec := range page.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			strconv.Itoa(rec.ID),
			image(rec),
			rec.Title,
			FormatRecordPrice(rec),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	footer := []string{pageLabel(page.CurrentPage, page.TotalPages)}
	if list.Filtered() {
		footer = append(footer, fmt.Sprintf("Filtered: %d/%d", list.ViewCount(), list.FullCount()))
	}
	footer = append(footer, "Sort: "+sortSummary(list))

	if _, err := fmt.Fprintln(w, strings.Join(footer, " | ")); err != nil {
		return fmt.Errorf("writing footer: %w", err)
	}
	return nil
}
