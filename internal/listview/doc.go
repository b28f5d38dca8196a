// Package listview holds the in-memory state behind the product table.
//
// A State owns the full record set loaded from the catalog, the derived view
// set (filtered and sorted), and the view parameters: current page, page size,
// and a remembered sort direction per sortable field. Every mutator is a total
// transition: out-of-range input is clamped, never reported as an error.
//
// The derivation pipeline is:
//
//	full set --Search--> view set --Sort--> view set --VisiblePage--> rows
//
// Search always starts again from the full set, so it is idempotent and
// independent of earlier searches. Sort reorders the current view set in place
// with a stable comparator, so ties keep their previous relative order.
//
// State is not safe for concurrent use. The embedding UI issues calls
// sequentially in response to discrete user actions.
package listview
