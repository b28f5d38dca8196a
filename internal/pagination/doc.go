// Package pagination provides page arithmetic, page-size options, and sort flag
// parsing shared by the list view, the TUI, and the CLI.
//
// This package contains:
//   - TotalPages, ClampPage, Bounds: 1-based page math that never divides by zero
//   - PageSizeOptions: the fixed set of page sizes offered by the page-size selector
//   - Meta: response metadata for paginated results
//   - ParseSort: "field" / "field:order" parsing for the --sort flag
//
// An empty result set is always one page with zero rows, so callers never need
// to special-case "page 1 of 0".
package pagination
