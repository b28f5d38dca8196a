package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/catalogview/internal/listview"
	"github.com/rshade/catalogview/internal/product"
)

// View renders the current view (Bubble Tea interface).
func (m TableModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return RenderLoading(m.loadingState)
	case ViewStateError:
		return m.renderErrorView()
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

// renderErrorView shows the single user-facing fetch failure notice.
func (m TableModel) renderErrorView() string {
	var content strings.Builder
	content.WriteString(ErrorStyle.Render("Failed to load products"))
	content.WriteString("\n\n")
	content.WriteString(ValueStyle.Render(fmt.Sprint(m.err)))
	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render("\nPress any key to continue"))

	return ErrorBoxStyle.Width(m.width - borderPadding).Render(content.String())
}

// renderListView renders the table with footer, status bar and optional search input.
func (m TableModel) renderListView() string {
	sections := []string{
		HeaderStyle.Render("Products"),
		m.table.View(),
		m.renderPaginationFooter(),
		m.renderStatusBar(),
	}

	if m.showSearch || m.textInput.Value() != "" {
		sections = append(sections, LabelStyle.Render("Search: ")+m.textInput.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPaginationFooter shows "< Page n / m >" with unusable arrows dimmed.
func (m TableModel) renderPaginationFooter() string {
	page := m.list.VisiblePage()

	prev := DisabledStyle.Render("<")
	if page.HasPrevious {
		prev = ActiveStyle.Render("<")
	}
	next := DisabledStyle.Render(">")
	if page.HasNext {
		next = ActiveStyle.Render(">")
	}

	return fmt.Sprintf("%s %s %s  %s",
		prev,
		pageLabel(page.CurrentPage, page.TotalPages),
		next,
		SubtleStyle.Render("Size: "+strconv.Itoa(page.PageSize)),
	)
}

// renderStatusBar displays sort directions, filter counts and key help.
func (m TableModel) renderStatusBar() string {
	parts := []string{"Sort: " + sortSummary(m.list)}
	if m.list.Filtered() {
		parts = append(parts, fmt.Sprintf("Filtered: %d/%d", m.list.ViewCount(), m.list.FullCount()))
	}
	parts = append(parts, helpText)
	return SubtleStyle.Render(strings.Join(parts, " | "))
}

// renderDetailView renders every field of the selected record.
func (m TableModel) renderDetailView() string {
	rec := m.selected
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("PRODUCT DETAIL"))
	content.WriteString("\n\n")
	writeField(&content, "ID:    ", strconv.Itoa(rec.ID))
	writeField(&content, "Title: ", rec.Title)
	writeField(&content, "Price: ", FormatRecordPrice(rec))
	writeField(&content, "Image: ", rec.PrimaryImage(m.placeholder))

	if len(rec.Images) > 1 {
		content.WriteString("\n")
		content.WriteString(LabelStyle.Render("All images:"))
		content.WriteString("\n")
		for _, img := range rec.Images {
			marker := "  - "
			if !product.IsValidImageURL(img) {
				marker = "  x "
			}
			content.WriteString(marker + ValueStyle.Render(img) + "\n")
		}
	}

	content.WriteString(SubtleStyle.Render("\nPress ESC to return"))

	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}

func writeField(content *strings.Builder, label, value string) {
	content.WriteString(LabelStyle.Render(label))
	content.WriteString(ValueStyle.Render(value))
	content.WriteString("\n")
}

func pageLabel(current, total int) string {
	return fmt.Sprintf("Page %d / %d", current, total)
}

// sortSummary lists every sortable field with its remembered direction,
// marking the most recently applied one.
func sortSummary(list *listview.State) string {
	last, ok := list.LastSort()
	parts := make([]string, 0, len(listview.SortFields))
	for _, field := range listview.SortFields {
		label := field.Label()
		if arrow := list.Direction(field).Arrow(); arrow != "" {
			label += " " + arrow
		}
		if ok && field == last {
			label = "*" + label
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, ", ")
}
