package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + search line (1) + pane borders (2) + status bar (3) = 7
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// CategoriesWidthPercent is the share of the terminal width given
	// to the categories pane.
	CategoriesWidthPercent int

	// DetailWidthPercent is the share given to the detail pane; the
	// results pane takes the rest.
	DetailWidthPercent int

	// MinPaneWidth is the minimum width of any pane.
	MinPaneWidth int

	// WidthOffset is subtracted from the terminal width before the
	// split, accounting for borders and spacing between the 3 panes.
	WidthOffset int

	// ContentPadding is subtracted from pane width for item rendering.
	// Accounts for pane border/padding on each side.
	ContentPadding int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// HelpLeftColumnWidth: width for help overlay left column.
	HelpLeftColumnWidth int

	// HelpRightColumnWidth: width for help overlay right column.
	HelpRightColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// SearchCharLimit caps the query text length.
	SearchCharLimit int

	// SearchWidth is the display width of the search input.
	SearchWidth int

	// PriceCharLimit caps the max-price input length.
	PriceCharLimit int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:        7, // app padding (1) + search line (1) + pane borders (2) + status bar (3)
			MinHeight:              5,
			CategoriesWidthPercent: 22,
			DetailWidthPercent:     32,
			MinPaneWidth:           16,
			WidthOffset:            8,
			ContentPadding:         4,
		},
		Modal: ModalConfig{
			DefaultWidthPercent:  40,
			MinWidth:             50,
			MaxWidth:             80,
			HelpLeftColumnWidth:  18,
			HelpRightColumnWidth: 20,
		},
		Input: InputConfig{
			SearchCharLimit: 100,
			SearchWidth:     40,
			PriceCharLimit:  10,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
