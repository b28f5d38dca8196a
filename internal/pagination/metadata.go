package pagination

// Meta contains metadata about a paginated result.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates pagination metadata for page of size over totalItems.
// The page is clamped into range, so the result always describes a page that exists.
func NewMeta(page, size, totalItems int) Meta {
	size = NormalizePageSize(size)
	totalPages := TotalPages(totalItems, size)
	currentPage := ClampPage(page, totalPages)

	return Meta{
		CurrentPage: currentPage,
		PageSize:    size,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}
