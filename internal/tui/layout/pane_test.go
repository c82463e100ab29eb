package layout

import "testing"

func TestCalculatePaneHeight(t *testing.T) {
	cfg := DefaultConfig().Pane

	tests := []struct {
		name           string
		terminalHeight int
		want           int
	}{
		{"normal terminal", 24, 17},               // 24 - 7 = 17
		{"large terminal", 50, 43},                // 50 - 7 = 43
		{"small terminal enforces min", 8, 5},     // 8 - 7 = 1, min is 5
		{"exactly at reduction", 7, 5},            // 7 - 7 = 0, min is 5
		{"terminal smaller than reduction", 4, 5}, // negative clamps to min
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePaneHeight(tt.terminalHeight, cfg)
			if got != tt.want {
				t.Errorf("CalculatePaneHeight(%d) = %d, want %d",
					tt.terminalHeight, got, tt.want)
			}
		})
	}
}

func TestCalculatePaneWidths(t *testing.T) {
	cfg := DefaultConfig().Pane

	tests := []struct {
		name           string
		terminalWidth  int
		wantCategories int
		wantResults    int
		wantDetail     int
	}{
		// usable = width - 8; categories 22%, detail 32%, results rest
		{"normal width", 108, 22, 46, 32},
		{"wide terminal", 208, 44, 92, 64},
		{"narrow enforces min", 48, 16, 20, 16}, // 40*22% = 8 -> 16, 40*32% = 12 -> 16
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePaneWidths(tt.terminalWidth, cfg)
			if got.Categories != tt.wantCategories || got.Results != tt.wantResults || got.Detail != tt.wantDetail {
				t.Errorf("CalculatePaneWidths(%d) = %+v, want {%d %d %d}",
					tt.terminalWidth, got, tt.wantCategories, tt.wantResults, tt.wantDetail)
			}
		})
	}
}

func TestCalculateItemWidth(t *testing.T) {
	cfg := DefaultConfig().Pane

	if got := CalculateItemWidth(30, cfg); got != 26 {
		t.Errorf("CalculateItemWidth(30) = %d, want 26", got)
	}
}

func TestCalculateVisibleHeight(t *testing.T) {
	if got := CalculateVisibleHeight(17, 2); got != 15 {
		t.Errorf("CalculateVisibleHeight(17, 2) = %d, want 15", got)
	}
	if got := CalculateVisibleHeight(2, 5); got != 1 {
		t.Errorf("expected clamp to 1, got %d", got)
	}
}

func TestCalculateViewportOffset(t *testing.T) {
	tests := []struct {
		name           string
		selected       int
		total          int
		viewportHeight int
		want           int
	}{
		{"everything fits", 3, 5, 10, 0},
		{"selection at top", 0, 50, 10, 0},
		{"selection centered", 25, 50, 10, 20},
		{"selection near bottom clamps", 49, 50, 10, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateViewportOffset(tt.selected, tt.total, tt.viewportHeight)
			if got != tt.want {
				t.Errorf("CalculateViewportOffset(%d, %d, %d) = %d, want %d",
					tt.selected, tt.total, tt.viewportHeight, got, tt.want)
			}
		})
	}
}
