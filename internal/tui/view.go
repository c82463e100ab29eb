package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/pricedex/internal/labels"
	"github.com/nikbrunner/pricedex/internal/model"
	"github.com/nikbrunner/pricedex/internal/tui/layout"
)

// renderView creates the complete three-pane view.
func (a App) renderView() string {
	switch a.mode {
	case ModeHelp:
		return a.renderHelpModal()
	case ModePrice:
		return a.renderPriceModal()
	}

	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	paneLayout := layout.CalculatePaneWidths(a.width, a.layoutConfig.Pane)

	searchLine := a.renderSearchLine()

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.renderCategoriesPane(paneLayout.Categories, paneHeight),
		a.renderResultsPane(paneLayout.Results, paneHeight),
		a.renderDetailPane(paneLayout.Detail, paneHeight),
	)

	statusBar := a.renderStatusBar()
	helpBar := a.styles.Help.Render(a.renderHints(a.getContextualHints()))

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, searchLine, columns, statusBar, helpBar),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderSearchLine renders the query line above the panes. In search
// mode it shows the focused input; otherwise the live query text with
// the active filters beside it.
func (a App) renderSearchLine() string {
	title := a.styles.Title.Render("pricedex")

	if a.mode == ModeSearch {
		return title + " " + a.searchState.Input.View()
	}

	live := a.session.Live()

	var parts []string
	if live.Text != "" {
		parts = append(parts, "/"+live.Text)
	}
	if live.Category != "" {
		parts = append(parts, a.table.Get(labels.FilterCategory)+": "+live.Category)
	}
	if live.MaxPrice > 0 {
		parts = append(parts, a.table.Get(labels.FilterPriceMax)+": $"+model.FormatPrice(live.MaxPrice))
	}

	if len(parts) == 0 {
		return title + " " + a.styles.Empty.Render(a.table.Get(labels.SearchPlaceholder))
	}
	return title + " " + strings.Join(parts, "  ")
}

// renderCategoriesPane renders the left pane with category filters.
func (a App) renderCategoriesPane(width, height int) string {
	var content strings.Builder

	content.WriteString(a.styles.Title.Render(a.table.Get(labels.FilterCategory)) + "\n\n")

	visibleHeight := layout.CalculateVisibleHeight(height, 2)
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	committed := a.session.Committed().Category
	focused := a.focusedPane == PaneCategories

	rows := append([]string{a.table.Get(labels.FilterCategoryAll)}, a.categories.Categories...)
	offset := layout.CalculateViewportOffset(a.categories.Cursor, len(rows), visibleHeight)

	for i, label := range rows {
		if i < offset {
			continue
		}
		if i >= offset+visibleHeight {
			break
		}

		// Mark the committed category so the active filter stays
		// visible while the cursor roams.
		active := (i == 0 && committed == "") || (i > 0 && rows[i] == committed)
		prefix := "  "
		if active {
			prefix = "* "
		}

		line, _ := layout.TruncateText(prefix+label, itemWidth, a.layoutConfig.Text)
		if focused && i == a.categories.Cursor {
			content.WriteString(a.styles.ItemSelected.Render(padRight(line, itemWidth)) + "\n")
		} else {
			content.WriteString(a.styles.Item.Render(line) + "\n")
		}
	}

	return a.paneStyle(focused).
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderResultsPane renders the middle pane with the committed result set.
func (a App) renderResultsPane(width, height int) string {
	var content strings.Builder

	results := a.session.Results()
	header := strconv.Itoa(len(results)) + " " + a.table.Found(len(results))
	content.WriteString(a.styles.Title.Render(header) + "\n\n")

	visibleHeight := layout.CalculateVisibleHeight(height, 2)
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)
	focused := a.focusedPane == PaneResults

	if len(results) == 0 {
		content.WriteString(a.styles.Empty.Render(a.table.Get(labels.ProductNotFound)))
	} else {
		offset := layout.CalculateViewportOffset(a.resultCursor, len(results), visibleHeight)

		for i, p := range results {
			if i < offset {
				continue
			}
			if i >= offset+visibleHeight {
				break
			}

			price := fmt.Sprintf("$%.2f", p.Price)
			name, _ := layout.TruncateText(p.Name, itemWidth-len(price)-1, a.layoutConfig.Text)
			line := name + " " + price

			if focused && i == a.resultCursor {
				content.WriteString(a.styles.ItemSelected.Render(padRight(line, itemWidth)) + "\n")
			} else {
				content.WriteString(a.styles.Item.Render(line) + "\n")
			}
		}
	}

	return a.paneStyle(focused).
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderDetailPane renders the right pane with the selected product.
func (a App) renderDetailPane(width, height int) string {
	var content strings.Builder

	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)
	p := a.SelectedProduct()

	if p == nil {
		content.WriteString(a.styles.Empty.Render(a.table.Get(labels.ProductNotFound)))
	} else {
		name, _ := layout.TruncateText(p.Name, itemWidth, a.layoutConfig.Text)
		content.WriteString(a.styles.Title.Render(name) + "\n\n")

		content.WriteString(a.table.Get(labels.ProductPrice) + ": ")
		content.WriteString(a.styles.Price.Render(fmt.Sprintf("$%.2f", p.Price)) + "\n")

		if p.Category != "" {
			content.WriteString(a.table.Get(labels.FilterCategory) + ": " + p.Category + "\n")
		}
		if p.Source != "" {
			content.WriteString(a.table.Get(labels.ProductSource) + ": ")
			content.WriteString(a.styles.Source.Render(p.Source) + "\n")
		}
		if p.URL != "" {
			url, _ := layout.TruncateText(p.URL, itemWidth, a.layoutConfig.Text)
			content.WriteString("\n" + a.styles.URL.Render(url) + "\n")
			content.WriteString(a.styles.Empty.Render(a.table.Get(labels.ProductVisit) + ": o"))
		}
	}

	return a.paneStyle(false).
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderStatusBar renders the line below the panes: stale hint,
// quarantined entry count and transient action feedback.
func (a App) renderStatusBar() string {
	var parts []string

	if a.session.Stale() {
		parts = append(parts, a.styles.Stale.Render(a.table.Get(labels.SearchPending)))
	}

	if n := len(a.session.Catalog().Invalid()); n > 0 {
		parts = append(parts, a.styles.Empty.Render(
			strconv.Itoa(n)+" "+a.table.Get(labels.CatalogInvalidEntries)))
	}

	if a.statusMsg != "" {
		parts = append(parts, a.styles.Empty.Render(a.statusMsg))
	}

	if len(parts) == 0 {
		return a.styles.StatusBar.Render("")
	}
	return a.styles.StatusBar.Render(strings.Join(parts, "  ·  "))
}

// renderPriceModal renders the max-price input dialog.
func (a App) renderPriceModal() string {
	var content strings.Builder

	content.WriteString(a.styles.Title.Render(a.table.Get(labels.FilterPriceMax)) + "\n\n")
	content.WriteString(a.priceState.Input.View() + "\n")

	if a.priceState.Err != nil {
		content.WriteString("\n" + a.styles.Stale.Render(a.priceState.Err.Error()) + "\n")
	}

	content.WriteString("\n" + a.renderHintsInline([]Hint{
		{Key: "Enter", Desc: "apply"},
		{Key: "Esc", Desc: "cancel"},
	}))

	return a.placeModal(content.String())
}

// renderHelpModal renders the full keybinding overlay.
func (a App) renderHelpModal() string {
	var content strings.Builder

	left := a.layoutConfig.Modal.HelpLeftColumnWidth

	content.WriteString(a.styles.Title.Render("Keybindings") + "\n\n")

	section := func(title string, rows [][2]string) {
		content.WriteString(a.styles.Title.Render(title) + "\n")
		for _, r := range rows {
			content.WriteString("  " + padRight(r[0], left) + r[1] + "\n")
		}
		content.WriteString("\n")
	}

	section("Navigation", [][2]string{
		{"j/k", "move down/up"},
		{"h/l", "focus categories/results"},
		{"gg/G", "jump to top/bottom"},
	})
	section("Query", [][2]string{
		{"/", "edit query text"},
		{"c", "focus categories"},
		{"p", "set max price"},
		{"Enter", "run search"},
		{"x", "clear all filters"},
	})
	section("Actions", [][2]string{
		{"o", "open in browser"},
		{"Y", "copy URL"},
		{"e", "export results"},
	})
	section("Other", [][2]string{
		{"?", "toggle this help"},
		{"q", "quit"},
	})

	return a.placeModal(strings.TrimRight(content.String(), "\n"))
}

// placeModal centers modal content in the terminal with the standard frame.
func (a App) placeModal(content string) string {
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(modalWidth)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		modalStyle.Render(content))
}

// paneStyle returns the active or inactive pane style.
func (a App) paneStyle(focused bool) lipgloss.Style {
	if focused {
		return a.styles.PaneActive
	}
	return a.styles.Pane
}

// padRight pads a string with spaces to the given visible width.
func padRight(s string, width int) string {
	for layout.VisibleLength(s) < width {
		s += " "
	}
	return s
}
