package layout

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello", "hello"},
		{"colored text", "\x1b[31mred\x1b[0m", "red"},
		{"multiple codes", "\x1b[1m\x1b[36mbold cyan\x1b[0m and plain", "bold cyan and plain"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisibleLength(t *testing.T) {
	if got := VisibleLength("\x1b[32mSamsung TV\x1b[0m"); got != 10 {
		t.Errorf("VisibleLength = %d, want 10", got)
	}
	if got := VisibleLength("Lämpe"); got != 5 {
		t.Errorf("VisibleLength with multibyte rune = %d, want 5", got)
	}
}

func TestTruncateText(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name          string
		text          string
		maxWidth      int
		want          string
		wantTruncated bool
	}{
		{"fits exactly", "iPhone 13", 9, "iPhone 13", false},
		{"shorter than width", "Lamp", 20, "Lamp", false},
		{"truncated with ellipsis", "Wireless Keyboard", 10, "Wireles...", true},
		{"width equals ellipsis", "abcdef", 3, "...", true},
		{"width below ellipsis", "abcdef", 2, "..", true},
		{"zero width", "abc", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := TruncateText(tt.text, tt.maxWidth, cfg)
			if got != tt.want || truncated != tt.wantTruncated {
				t.Errorf("TruncateText(%q, %d) = (%q, %v), want (%q, %v)",
					tt.text, tt.maxWidth, got, truncated, tt.want, tt.wantTruncated)
			}
		})
	}
}
