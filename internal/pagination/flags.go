package pagination

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Pagination defaults and validation limits.
const (
	DefaultPageSize  = 5
	MinPageSize      = 1
	MaxPageSize      = 1000
	DefaultPage      = 1
	MinPage          = 1
	DefaultSortField = ""
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// PageSizeOptions lists the page sizes offered by the page-size selector, in display order.
//
//nolint:gochecknoglobals // Fixed selector values.
var PageSizeOptions = []int{5, 10, 20, 50}

// Common validation errors.
var (
	ErrInvalidPageSize   = errors.New("page-size must be one of 5, 10, 20, 50")
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'price:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// IsPageSizeOption reports whether size is one of PageSizeOptions.
func IsPageSizeOption(size int) bool {
	return slices.Contains(PageSizeOptions, size)
}

// ParsePageSize parses a --page-size flag value. Only values from PageSizeOptions are accepted.
func ParsePageSize(s string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidPageSize, s)
	}
	if !IsPageSizeOption(size) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPageSize, size)
	}
	return size, nil
}

// NextPageSize returns the option following current in PageSizeOptions, wrapping around.
// A size that is not an option restarts the cycle at the first option.
func NextPageSize(current int) int {
	idx := slices.Index(PageSizeOptions, current)
	if idx < 0 {
		return PageSizeOptions[0]
	}
	return PageSizeOptions[(idx+1)%len(PageSizeOptions)]
}

// NormalizePageSize clamps size into [MinPageSize, MaxPageSize].
func NormalizePageSize(size int) int {
	switch {
	case size < MinPageSize:
		return MinPageSize
	case size > MaxPageSize:
		return MaxPageSize
	default:
		return size
	}
}

// TotalPages returns the number of pages needed for total items at size items per page.
// The result is never less than 1, so an empty set still has a single (empty) page.
func TotalPages(total, size int) int {
	size = NormalizePageSize(size)
	if total <= 0 {
		return 1
	}
	pages := total / size
	if total%size > 0 {
		pages++
	}
	return pages
}

// ClampPage clamps page into [MinPage, max(MinPage, totalPages)].
func ClampPage(page, totalPages int) int {
	if totalPages < MinPage {
		totalPages = MinPage
	}
	switch {
	case page < MinPage:
		return MinPage
	case page > totalPages:
		return totalPages
	default:
		return page
	}
}

// Bounds returns the half-open [start, end) slice bounds of page within total items.
// The page is clamped first, so the bounds are always valid for a slice of length total.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func Bounds(page, size, total int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}
	size = NormalizePageSize(size)
	page = ClampPage(page, TotalPages(total, size))

	start = (page - 1) * size
	end = start + size
	if end > total {
		end = total
	}
	return start, end
}

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "price", "title:desc", "price:asc"
// Returns the field name and order, or an error if invalid.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return strings.ToLower(field), order, nil
}
