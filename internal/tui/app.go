package tui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/pricedex/internal/exporter"
	"github.com/nikbrunner/pricedex/internal/labels"
	"github.com/nikbrunner/pricedex/internal/model"
	"github.com/nikbrunner/pricedex/internal/search"
	"github.com/nikbrunner/pricedex/internal/tui/layout"
)

// App is the main bubbletea model for the catalog browser.
type App struct {
	session      *search.Session
	table        *labels.Table
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	mode        Mode
	focusedPane Pane

	// Pane state
	categories   CategoryNav
	resultCursor int

	// Input state
	searchState SearchState
	priceState  PriceState

	// Transient feedback shown in the status bar (yank, export, errors)
	statusMsg string

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Session      *search.Session
	Labels       *labels.Table        // optional, uses default table if nil
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	table := params.Labels
	if table == nil {
		table = labels.Default()
	}

	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	app := App{
		session:      params.Session,
		table:        table,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		focusedPane:  PaneResults,
		categories:   NewCategoryNav(params.Session.Catalog().Categories()),
		searchState:  NewSearchState(table.Get(labels.SearchPlaceholder), layoutConfig),
		priceState:   NewPriceState(layoutConfig),
		width:        80,
		height:       24,
	}

	return app
}

// WithDimensions returns a copy of the app with fixed dimensions.
// Used by tests that need deterministic output.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// FocusedPane returns the currently focused pane.
func (a App) FocusedPane() Pane {
	return a.focusedPane
}

// ResultCursor returns the cursor position in the results pane.
func (a App) ResultCursor() int {
	return a.resultCursor
}

// CategoryCursor returns the cursor position in the categories pane.
func (a App) CategoryCursor() int {
	return a.categories.Cursor
}

// Session returns the query session driving the view.
func (a App) Session() *search.Session {
	return a.session
}

// SelectedProduct returns the product under the result cursor, or nil.
func (a App) SelectedProduct() *model.Product {
	results := a.session.Results()
	if len(results) == 0 || a.resultCursor >= len(results) {
		return nil
	}
	return &results[a.resultCursor]
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeSearch:
			return a.updateSearchMode(msg)
		case ModePrice:
			return a.updatePriceMode(msg)
		case ModeHelp:
			return a.updateHelpMode(msg)
		default:
			return a.updateNormalMode(msg)
		}
	}

	return a, nil
}

// updateSearchMode handles keys while the query input is focused.
// Keystrokes edit the live query only; the result set stays put until
// Enter commits it.
func (a App) updateSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		a.session.SetQueryText(strings.TrimSpace(a.searchState.Input.Value()))
		a.commit()
		a.searchState.Input.Blur()
		a.mode = ModeNormal
		return a, nil

	case tea.KeyEsc:
		// Keep the edited text in the live query; results stay on the
		// last committed snapshot until the user presses Enter.
		a.session.SetQueryText(strings.TrimSpace(a.searchState.Input.Value()))
		a.searchState.Input.Blur()
		a.mode = ModeNormal
		return a, nil
	}

	var cmd tea.Cmd
	a.searchState.Input, cmd = a.searchState.Input.Update(msg)
	a.session.SetQueryText(strings.TrimSpace(a.searchState.Input.Value()))
	a.clampResultCursor()
	return a, cmd
}

// updatePriceMode handles keys while the max-price modal is open.
func (a App) updatePriceMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		raw := strings.TrimSpace(a.priceState.Input.Value())
		if raw == "" {
			a.session.SetMaxPrice(0)
			a.commit()
			a.mode = ModeNormal
			return a, nil
		}

		price, err := model.ParsePrice(raw)
		if err != nil {
			a.priceState.Err = err
			return a, nil
		}

		a.session.SetMaxPrice(price)
		a.commit()
		a.mode = ModeNormal
		return a, nil

	case tea.KeyEsc:
		a.mode = ModeNormal
		return a, nil
	}

	var cmd tea.Cmd
	a.priceState.Input, cmd = a.priceState.Input.Update(msg)
	a.priceState.Err = nil
	return a, cmd
}

// updateHelpMode handles keys while the help overlay is open.
func (a App) updateHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Help) || key.Matches(msg, a.keys.Quit) || msg.Type == tea.KeyEsc {
		a.mode = ModeNormal
	}
	return a, nil
}

// updateNormalMode handles keys in browse mode.
func (a App) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			// Second g - go to top
			a.moveCursorTo(0)
			a.lastKeyWasG = false
			return a, nil
		}
		// First g - wait for second
		a.lastKeyWasG = true
		return a, nil
	}

	// Reset g flag for any other key
	a.lastKeyWasG = false
	a.statusMsg = ""

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp

	case key.Matches(msg, a.keys.Search):
		a.searchState.Input.SetValue(a.session.Live().Text)
		a.searchState.Input.CursorEnd()
		a.searchState.Input.Focus()
		a.mode = ModeSearch

	case key.Matches(msg, a.keys.Price):
		a.priceState.Reset()
		if max := a.session.Live().MaxPrice; max > 0 {
			a.priceState.Input.SetValue(model.FormatPrice(max))
			a.priceState.Input.CursorEnd()
		}
		a.priceState.Input.Focus()
		a.mode = ModePrice

	case key.Matches(msg, a.keys.Categories):
		a.focusedPane = PaneCategories

	case key.Matches(msg, a.keys.Left):
		a.focusedPane = PaneCategories

	case key.Matches(msg, a.keys.Right):
		a.focusedPane = PaneResults

	case key.Matches(msg, a.keys.Down):
		a.moveCursorBy(1)

	case key.Matches(msg, a.keys.Up):
		a.moveCursorBy(-1)

	case key.Matches(msg, a.keys.Bottom):
		if a.focusedPane == PaneCategories {
			a.moveCursorTo(a.categories.Len() - 1)
		} else {
			a.moveCursorTo(len(a.session.Results()) - 1)
		}

	case key.Matches(msg, a.keys.Commit):
		a.commit()

	case key.Matches(msg, a.keys.Clear):
		a.session.SetQueryText("")
		a.session.SetCategory("")
		a.session.SetMaxPrice(0)
		a.categories.Cursor = 0
		a.searchState.Input.Reset()
		a.commit()

	case key.Matches(msg, a.keys.Open):
		if p := a.SelectedProduct(); p != nil {
			openURL(p.URL)
		}

	case key.Matches(msg, a.keys.YankURL):
		if p := a.SelectedProduct(); p != nil {
			if err := clipboard.WriteAll(p.URL); err != nil {
				a.statusMsg = fmt.Sprintf("clipboard error: %v", err)
			} else {
				a.statusMsg = "copied " + p.URL
			}
		}

	case key.Matches(msg, a.keys.Export):
		a.statusMsg = a.exportResults()
	}

	return a, nil
}

// commit applies the live query and re-clamps the result cursor.
func (a *App) commit() {
	a.session.Commit()
	a.resultCursor = 0
}

// moveCursorBy moves the cursor in the focused pane, clamped to bounds.
// Moving in the categories pane edits the live query; results hold the
// last committed snapshot until Enter.
func (a *App) moveCursorBy(delta int) {
	if a.focusedPane == PaneCategories {
		a.categories.Cursor = clamp(a.categories.Cursor+delta, 0, a.categories.Len()-1)
		a.session.SetCategory(a.categories.Selected())
		a.clampResultCursor()
		return
	}

	max := len(a.session.Results()) - 1
	if max < 0 {
		max = 0
	}
	a.resultCursor = clamp(a.resultCursor+delta, 0, max)
}

// moveCursorTo jumps the cursor in the focused pane, clamped to bounds.
func (a *App) moveCursorTo(pos int) {
	if a.focusedPane == PaneCategories {
		a.categories.Cursor = clamp(pos, 0, a.categories.Len()-1)
		a.session.SetCategory(a.categories.Selected())
		a.clampResultCursor()
		return
	}

	max := len(a.session.Results()) - 1
	if max < 0 {
		max = 0
	}
	a.resultCursor = clamp(pos, 0, max)
}

// clampResultCursor keeps the result cursor inside the result set.
func (a *App) clampResultCursor() {
	max := len(a.session.Results()) - 1
	if max < 0 {
		max = 0
	}
	a.resultCursor = clamp(a.resultCursor, 0, max)
}

// exportResults writes the committed result set to the default export
// path and returns a status line for the bar.
func (a App) exportResults() string {
	path, err := exporter.DefaultExportPath()
	if err != nil {
		return fmt.Sprintf("export error: %v", err)
	}
	if err := exporter.WriteExport(path, a.session.Results(), a.table); err != nil {
		return fmt.Sprintf("export error: %v", err)
	}
	return "exported to " + path
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
