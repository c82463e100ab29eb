package layout

// PaneLayout holds calculated widths for the three panes.
type PaneLayout struct {
	Categories int
	Results    int
	Detail     int
}

// CalculatePaneHeight computes the content height for panes.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculatePaneWidths splits the terminal width across the
// categories | results | detail panes. Categories and detail get their
// configured share, results takes the remainder; every pane is clamped
// to MinPaneWidth.
func CalculatePaneWidths(terminalWidth int, cfg PaneConfig) PaneLayout {
	usable := terminalWidth - cfg.WidthOffset

	categories := usable * cfg.CategoriesWidthPercent / 100
	detail := usable * cfg.DetailWidthPercent / 100
	results := usable - categories - detail

	if categories < cfg.MinPaneWidth {
		categories = cfg.MinPaneWidth
	}
	if detail < cfg.MinPaneWidth {
		detail = cfg.MinPaneWidth
	}
	if results < cfg.MinPaneWidth {
		results = cfg.MinPaneWidth
	}

	return PaneLayout{
		Categories: categories,
		Results:    results,
		Detail:     detail,
	}
}

// CalculateItemWidth computes the width available for item content.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	return paneWidth - cfg.ContentPadding
}

// CalculateVisibleHeight computes the visible item count in a pane.
func CalculateVisibleHeight(paneHeight, headerLines int) int {
	height := paneHeight - headerLines
	if height < 1 {
		return 1
	}
	return height
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
