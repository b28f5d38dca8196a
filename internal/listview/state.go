package listview

import (
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/rshade/catalogview/internal/pagination"
	"github.com/rshade/catalogview/internal/product"
)

// Page is the visible slice of the view set plus its pagination metadata.
type Page struct {
	// Rows are the records on the current page, in view order.
	Rows []product.Record

	pagination.Meta
}

// Empty reports whether the page has no rows to show.
func (p Page) Empty() bool {
	return len(p.Rows) == 0
}

// State is the list view state machine behind the product table.
type State struct {
	// full is the unmodified record set from the last Load.
	full []product.Record

	// view is full after filtering and sorting.
	view []product.Record

	// keyword is the current search keyword ("" means no filter).
	keyword string

	// page is the current 1-based page number.
	page int

	// pageSize is the number of rows per page.
	pageSize int

	// directions remembers the last direction of each sortable field.
	directions [numSortFields]Direction

	// lastSort is the most recently sorted field; valid only when sorted is true.
	lastSort SortField
	sorted   bool

	// fold case-folds strings for search and title comparison.
	fold func(string) string

	logger zerolog.Logger
}

// Option configures a State.
type Option func(*State)

// WithPageSize sets the initial page size. Non-positive sizes are clamped.
func WithPageSize(size int) Option {
	return func(s *State) {
		s.pageSize = pagination.NormalizePageSize(size)
	}
}

// WithLogger attaches a logger that receives debug events for each transition.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *State) {
		s.logger = logger
	}
}

// New creates an empty State on page 1 with the default page size.
func New(opts ...Option) *State {
	caser := cases.Fold()
	s := &State{
		page:     pagination.DefaultPage,
		pageSize: pagination.DefaultPageSize,
		fold:     caser.String,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the full set and the view set with a copy of records and resets to page 1.
// The search keyword is cleared. Remembered sort directions are kept but not applied.
func (s *State) Load(records []product.Record) {
	s.full = cloneRecords(records)
	s.view = cloneRecords(records)
	s.keyword = ""
	s.sorted = false
	s.page = pagination.DefaultPage

	s.logger.Debug().Int("records", len(records)).Msg("list view loaded")
}

// Search sets the view set to the records of the full set whose title contains
// keyword, ignoring case. An empty keyword selects the full set. The page resets to 1.
// The result depends only on the full set and keyword, never on earlier searches.
func (s *State) Search(keyword string) {
	s.keyword = keyword
	s.page = pagination.DefaultPage

	if keyword == "" {
		s.view = cloneRecords(s.full)
	} else {
		needle := s.fold(keyword)
		filtered := make([]product.Record, 0, len(s.full))
		for _, rec := range s.full {
			if strings.Contains(s.fold(rec.Title), needle) {
				filtered = append(filtered, rec)
			}
		}
		s.view = filtered
	}
	s.sorted = false

	s.logger.Debug().
		Str("keyword", keyword).
		Int("matched", len(s.view)).
		Int("total", len(s.full)).
		Msg("list view searched")
}

// Sort toggles field's remembered direction and stably reorders the current view set by it.
// Other fields keep their remembered directions. The current page is unchanged.
// Unknown fields are ignored.
func (s *State) Sort(field SortField) {
	if !field.valid() {
		return
	}

	dir := s.directions[field].Toggle()
	s.directions[field] = dir
	s.view = sortRecords(s.view, field, dir, s.fold)
	s.lastSort = field
	s.sorted = true

	s.logger.Debug().
		Stringer("field", field).
		Stringer("direction", dir).
		Int("rows", len(s.view)).
		Msg("list view sorted")
}

// SortTo sorts by field until its remembered direction equals dir.
// It issues at most two Sort calls, so toggle semantics are preserved.
func (s *State) SortTo(field SortField, dir Direction) {
	if !field.valid() || dir == Unsorted {
		return
	}
	s.Sort(field)
	if s.directions[field] != dir {
		s.Sort(field)
	}
}

// SetPageSize sets the page size and resets to page 1. Non-positive sizes are clamped.
func (s *State) SetPageSize(size int) {
	s.pageSize = pagination.NormalizePageSize(size)
	s.page = pagination.DefaultPage

	s.logger.Debug().Int("page_size", s.pageSize).Msg("list view page size changed")
}

// GoToPage moves to page, clamped to [1, TotalPages], and returns the resulting page.
func (s *State) GoToPage(page int) int {
	s.page = pagination.ClampPage(page, s.TotalPages())
	return s.page
}

// NextPage moves forward one page if possible and returns the resulting page.
func (s *State) NextPage() int {
	return s.GoToPage(s.page + 1)
}

// PrevPage moves back one page if possible and returns the resulting page.
func (s *State) PrevPage() int {
	return s.GoToPage(s.page - 1)
}

// VisiblePage returns the rows of the current page and its metadata.
// It has no side effects; the returned rows do not alias internal state.
func (s *State) VisiblePage() Page {
	meta := pagination.NewMeta(s.page, s.pageSize, len(s.view))
	start, end := pagination.Bounds(meta.CurrentPage, meta.PageSize, len(s.view))

	return Page{
		Rows: cloneRecords(s.view[start:end]),
		Meta: meta,
	}
}

// TotalPages returns the number of pages in the view set (at least 1).
func (s *State) TotalPages() int {
	return pagination.TotalPages(len(s.view), s.pageSize)
}

// CurrentPage returns the current 1-based page number.
func (s *State) CurrentPage() int {
	return s.page
}

// PageSize returns the number of rows per page.
func (s *State) PageSize() int {
	return s.pageSize
}

// Keyword returns the current search keyword.
func (s *State) Keyword() string {
	return s.keyword
}

// Direction returns the remembered sort direction of field.
func (s *State) Direction(field SortField) Direction {
	if !field.valid() {
		return Unsorted
	}
	return s.directions[field]
}

// LastSort returns the field the view set is currently ordered by.
// ok is false when the view set is in full-set order (after Load or Search).
//
//nolint:nonamedreturns // Named returns document the comma-ok result.
func (s *State) LastSort() (field SortField, ok bool) {
	return s.lastSort, s.sorted
}

// FullCount returns the number of records in the full set.
func (s *State) FullCount() int {
	return len(s.full)
}

// ViewCount returns the number of records in the view set.
func (s *State) ViewCount() int {
	return len(s.view)
}

// ViewSet returns a copy of the whole view set in view order.
func (s *State) ViewSet() []product.Record {
	return cloneRecords(s.view)
}

// Filtered reports whether a search keyword is narrowing the view set.
func (s *State) Filtered() bool {
	return s.keyword != ""
}

// cloneRecords deep-copies records so callers and State never share backing arrays.
func cloneRecords(records []product.Record) []product.Record {
	if records == nil {
		return nil
	}
	out := make([]product.Record, len(records))
	for i, rec := range records {
		out[i] = rec.Clone()
	}
	return out
}
