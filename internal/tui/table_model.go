package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/catalogview/internal/listview"
	"github.com/rshade/catalogview/internal/logging"
	"github.com/rshade/catalogview/internal/pagination"
	"github.com/rshade/catalogview/internal/product"
)

// Column widths.
const (
	colWidthID    = 6
	colWidthImage = 40
	colWidthTitle = 36
	colWidthPrice = 12
)

// noResultsText fills the table when there is nothing to show.
const noResultsText = "No products found"

// FetchFunc retrieves the full product list.
type FetchFunc func(ctx context.Context) ([]product.Record, error)

// ProductsLoadedMsg is sent when the product fetch succeeds.
type ProductsLoadedMsg struct {
	Records []product.Record
}

// ProductsFailedMsg is sent when the product fetch fails.
type ProductsFailedMsg struct {
	Err error
}

// TableModel is the Bubble Tea model for the interactive product table.
// The list view state is owned by the caller and mutated only in response to
// key presses.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type TableModel struct {
	state ViewState
	list  *listview.State
	ctx   context.Context
	fetch FetchFunc

	// Interactive components
	table      table.Model
	textInput  textinput.Model
	showSearch bool
	selected   product.Record

	// Display configuration
	width         int
	height        int
	placeholder   string
	initialSearch string

	loadingState *LoadingState
	err          error
}

// TableOption configures a TableModel.
type TableOption func(*TableModel)

// WithInitialSearch applies keyword as soon as the products are loaded.
func WithInitialSearch(keyword string) TableOption {
	return func(m *TableModel) {
		m.initialSearch = keyword
	}
}

// NewTableModel creates the interactive product table. The returned model is in
// the loading state; Init starts fetch.
func NewTableModel(ctx context.Context, list *listview.State, fetch FetchFunc, opts ...TableOption) TableModel {
	m := TableModel{
		state:        ViewStateLoading,
		list:         list,
		ctx:          ctx,
		fetch:        fetch,
		textInput:    newTextInput(),
		width:        defaultWidth,
		height:       defaultHeight,
		placeholder:  product.PlaceholderImage,
		loadingState: NewLoadingState("Loading products..."),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.rebuildTable()
	return m
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "search titles"
	ti.Prompt = ""
	ti.CharLimit = 128 //nolint:mnd // Reasonable keyword limit.
	return ti
}

// Init starts the spinner and the fetch (Bubble Tea interface).
func (m TableModel) Init() tea.Cmd {
	return tea.Batch(m.loadingState.Init(), m.fetchCmd())
}

// fetchCmd runs the fetch once and reports the result as a message.
func (m TableModel) fetchCmd() tea.Cmd {
	ctx, fetch := m.ctx, m.fetch
	return func() tea.Msg {
		records, err := fetch(ctx)
		if err != nil {
			return ProductsFailedMsg{Err: err}
		}
		return ProductsLoadedMsg{Records: records}
	}
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()
		return m, nil
	case spinner.TickMsg:
		if m.state != ViewStateLoading {
			return m, nil
		}
		return m, m.loadingState.Update(msg)
	case ProductsLoadedMsg:
		return m.handleLoaded(msg)
	case ProductsFailedMsg:
		return m.handleFailed(msg)
	}

	if m.showSearch {
		return m.handleSearchInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateError:
		return m.handleErrorUpdate(msg)
	case ViewStateLoading:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == keyCtrlC {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
		return m, nil
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m TableModel) handleLoaded(msg ProductsLoadedMsg) (tea.Model, tea.Cmd) {
	m.list.Load(msg.Records)
	if m.initialSearch != "" {
		m.textInput.SetValue(m.initialSearch)
		m.list.Search(m.initialSearch)
	}
	m.state = ViewStateList
	m.rebuildTable()

	logging.FromContext(m.ctx).Debug().
		Int("count", len(msg.Records)).
		Msg("products loaded into table")
	return m, nil
}

func (m TableModel) handleFailed(msg ProductsFailedMsg) (tea.Model, tea.Cmd) {
	m.err = msg.Err
	m.state = ViewStateError

	logging.FromContext(m.ctx).Error().
		Err(msg.Err).
		Msg("failed to load products")
	return m, nil
}

// handleErrorUpdate dismisses the failure notice on any key, leaving an empty table.
func (m TableModel) handleErrorUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == keyCtrlC {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}
	m.state = ViewStateList
	m.rebuildTable()
	return m, nil
}

// handleSearchInput feeds keystrokes to the search box and re-filters on every change.
func (m TableModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter:
			m.showSearch = false
			m.textInput.Blur()
			return m, nil
		case keyEsc:
			m.showSearch = false
			m.textInput.Blur()
			m.textInput.SetValue("")
			m.applySearch()
			return m, nil
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}

	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != before {
		m.applySearch()
	}
	return m, cmd
}

func (m TableModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m.handleListKeypress(keyMsg)
}

func (m TableModel) handleListKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEnter:
		page := m.list.VisiblePage()
		cursor := m.table.Cursor()
		if cursor >= 0 && cursor < len(page.Rows) {
			m.selected = page.Rows[cursor]
			m.state = ViewStateDetail
		}
		return m, nil
	case keySlash:
		m.showSearch = true
		m.textInput.Focus()
		return m, textinput.Blink
	case keyEsc:
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.applySearch()
		}
		return m, nil
	case keyTitle:
		m.list.Sort(listview.SortByTitle)
		m.rebuildTable()
		return m, nil
	case keyPrice:
		m.list.Sort(listview.SortByPrice)
		m.rebuildTable()
		return m, nil
	case keyLeft, keyH:
		m.changePage(m.list.PrevPage)
		return m, nil
	case keyRight, keyL:
		m.changePage(m.list.NextPage)
		return m, nil
	case keyResize:
		m.list.SetPageSize(pagination.NextPageSize(m.list.PageSize()))
		m.rebuildTable()
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

// changePage moves to another page; at a boundary nothing is rebuilt.
func (m *TableModel) changePage(move func() int) {
	before := m.list.CurrentPage()
	if move() != before {
		m.rebuildTable()
	}
}

func (m TableModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc, keyBack:
			m.state = ViewStateList
			m.table.Focus()
			return m, nil
		}
	}
	return m, nil
}

// applySearch runs the current search box value against the list state.
func (m *TableModel) applySearch() {
	m.list.Search(m.textInput.Value())
	m.rebuildTable()
}

// rebuildTable reconstructs the table from the current visible page.
func (m *TableModel) rebuildTable() {
	m.table = m.buildProductTable()
}

// buildProductTable creates a new table model holding the visible page.
func (m *TableModel) buildProductTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: colWidthID},
		{Title: "Image", Width: colWidthImage},
		{Title: "Title" + m.sortIndicator(listview.SortByTitle), Width: colWidthTitle},
		{Title: "Price" + m.sortIndicator(listview.SortByPrice), Width: colWidthPrice},
	}

	page := m.list.VisiblePage()
	rows := make([]table.Row, 0, len(page.Rows))
	for _, rec := range page.Rows {
		rows = append(rows, table.Row{
			strconv.Itoa(rec.ID),
			truncate(rec.PrimaryImage(m.placeholder), colWidthImage),
			truncate(rec.Title, colWidthTitle),
			FormatRecordPrice(rec),
		})
	}
	if len(rows) == 0 {
		rows = append(rows, table.Row{"", "", noResultsText, ""})
	}

	availableHeight := m.height - chromeHeight
	if availableHeight < minHeight {
		availableHeight = minHeight
	}
	if limit := page.PageSize + 1; availableHeight > limit {
		availableHeight = limit
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(availableHeight),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// sortIndicator returns " ▲" or " ▼" when field has been sorted, else "".
func (m *TableModel) sortIndicator(field listview.SortField) string {
	if arrow := m.list.Direction(field).Arrow(); arrow != "" {
		return " " + arrow
	}
	return ""
}

// State returns the current view state.
func (m TableModel) State() ViewState {
	return m.state
}

// Err returns the fetch error, if any.
func (m TableModel) Err() error {
	return m.err
}
