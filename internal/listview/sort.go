package listview

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/catalogview/internal/product"
)

// ErrInvalidSortField is returned by ParseSortField for names other than "title" and "price".
var ErrInvalidSortField = errors.New("invalid sort field")

// SortField represents a sortable column.
type SortField int

const (
	// SortByTitle sorts by title, case-insensitively.
	SortByTitle SortField = iota
	// SortByPrice sorts by price, numerically.
	SortByPrice
)

// numSortFields is the number of sortable fields.
const numSortFields = 2

// SortFields lists every sortable field in column order.
//
//nolint:gochecknoglobals // Fixed enumeration.
var SortFields = []SortField{SortByTitle, SortByPrice}

// String returns the flag name of the field.
func (f SortField) String() string {
	switch f {
	case SortByTitle:
		return "title"
	case SortByPrice:
		return "price"
	default:
		return "unknown"
	}
}

// Label returns the column heading for the field.
func (f SortField) Label() string {
	switch f {
	case SortByTitle:
		return "Title"
	case SortByPrice:
		return "Price"
	default:
		return "Unknown"
	}
}

func (f SortField) valid() bool {
	return f >= 0 && f < numSortFields
}

// ParseSortField maps a field name ("title", "price") to a SortField.
func ParseSortField(name string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "title", "name":
		return SortByTitle, nil
	case "price":
		return SortByPrice, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: title, price)", ErrInvalidSortField, name)
	}
}

// Direction is the remembered sort direction of a field.
type Direction int

const (
	// Unsorted means the field has not been sorted yet.
	Unsorted Direction = iota
	// Ascending orders lowest first.
	Ascending
	// Descending orders highest first.
	Descending
)

// Toggle returns the direction a sort request moves to.
// An unsorted field sorts ascending first.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// String returns "asc", "desc", or "none".
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	case Unsorted:
		return "none"
	default:
		return "none"
	}
}

// Arrow returns a one-character indicator for column headings.
func (d Direction) Arrow() string {
	switch d {
	case Ascending:
		return "▲"
	case Descending:
		return "▼"
	case Unsorted:
		return ""
	default:
		return ""
	}
}

// sortKey pairs a record with the precomputed value it is ordered by.
type sortKey struct {
	rec   product.Record
	title string
}

// comparator orders two keyed records in ascending order.
type comparator func(a, b sortKey) int

// compareTitle orders by case-folded title. Empty titles sort first.
func compareTitle(a, b sortKey) int {
	return strings.Compare(a.title, b.title)
}

// comparePrice orders numerically. Records without a price sort first.
func comparePrice(a, b sortKey) int {
	switch {
	case a.rec.PriceMissing && b.rec.PriceMissing:
		return 0
	case a.rec.PriceMissing:
		return -1
	case b.rec.PriceMissing:
		return 1
	default:
		return a.rec.Price.Cmp(b.rec.Price)
	}
}

// comparators maps each field to its ascending comparator.
//
//nolint:gochecknoglobals // Compile-time dispatch table.
var comparators = [numSortFields]comparator{
	SortByTitle: compareTitle,
	SortByPrice: comparePrice,
}

// sortRecords stably sorts records by field in dir, returning a new slice.
// fold normalizes titles for case-insensitive comparison.
func sortRecords(records []product.Record, field SortField, dir Direction, fold func(string) string) []product.Record {
	keyed := make([]sortKey, len(records))
	for i, rec := range records {
		keyed[i] = sortKey{rec: rec}
		if field == SortByTitle {
			keyed[i].title = fold(rec.Title)
		}
	}

	cmp := comparators[field]
	slices.SortStableFunc(keyed, func(a, b sortKey) int {
		if dir == Descending {
			return cmp(b, a)
		}
		return cmp(a, b)
	})

	sorted := make([]product.Record, len(keyed))
	for i, k := range keyed {
		sorted[i] = k.rec
	}
	return sorted
}
