package tui

// ViewState is the screen the table model is currently showing.
type ViewState int

const (
	// ViewStateLoading shows a spinner while products are fetched.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the product table.
	ViewStateList
	// ViewStateDetail shows one product.
	ViewStateDetail
	// ViewStateError shows the fetch failure notice until a key is pressed.
	ViewStateError
	// ViewStateQuitting indicates the program is exiting.
	ViewStateQuitting
)

// String returns a short name for the state.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateDetail:
		return "detail"
	case ViewStateError:
		return "error"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}
