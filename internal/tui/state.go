package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/pricedex/internal/tui/layout"
)

// Mode identifies the active input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch      // query text input focused
	ModePrice       // max price modal open
	ModeHelp        // help overlay
)

// Pane identifies the focusable panes.
type Pane int

const (
	PaneCategories Pane = iota
	PaneResults
)

// SearchState holds the query text input. While the input is focused
// every keystroke updates the live query; results do not move until
// the query is committed.
type SearchState struct {
	Input textinput.Model
}

// NewSearchState creates a SearchState with an initialized input.
func NewSearchState(placeholder string, cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.SearchWidth
	return SearchState{Input: input}
}

// PriceState holds the max-price modal input.
type PriceState struct {
	Input textinput.Model
	Err   error // parse error from the last submit attempt
}

// NewPriceState creates a PriceState with an initialized input.
func NewPriceState(cfg layout.LayoutConfig) PriceState {
	input := textinput.New()
	input.Placeholder = "0.00"
	input.CharLimit = cfg.Input.PriceCharLimit
	input.Width = cfg.Input.PriceCharLimit
	return PriceState{Input: input}
}

// Reset clears the price input for a new modal session.
func (p *PriceState) Reset() {
	p.Input.Reset()
	p.Err = nil
}

// CategoryNav holds cursor state for the categories pane. Index 0 is
// the "all categories" row; catalog categories follow in catalog order.
type CategoryNav struct {
	Cursor     int
	Categories []string
}

// NewCategoryNav creates a CategoryNav over the given category labels.
func NewCategoryNav(categories []string) CategoryNav {
	return CategoryNav{Categories: categories}
}

// Len returns the row count including the "all categories" row.
func (c *CategoryNav) Len() int {
	return len(c.Categories) + 1
}

// Selected returns the category under the cursor, or "" for the
// "all categories" row.
func (c *CategoryNav) Selected() string {
	if c.Cursor == 0 || c.Cursor > len(c.Categories) {
		return ""
	}
	return c.Categories[c.Cursor-1]
}
