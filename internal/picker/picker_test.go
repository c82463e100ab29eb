package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/pricedex/internal/labels"
	"github.com/nikbrunner/pricedex/internal/model"
)

func testResults() []model.Product {
	return []model.Product{
		{ID: "1", Name: "iPhone 13", Price: 799, Source: "Amazon", URL: "https://amazon.com/1"},
		{ID: "2", Name: "iPhone 13 Case", Price: 12.5, Source: "AliExpress", URL: "https://aliexpress.com/2"},
	}
}

func TestPicker_InitialState(t *testing.T) {
	p := New(testResults(), "iphone", labels.Default())

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
	if len(p.results) != 2 {
		t.Errorf("expected 2 results, got %d", len(p.results))
	}
}

func TestPicker_Navigate(t *testing.T) {
	p := New(testResults(), "iphone", labels.Default())

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", p.cursor)
	}

	// Down at the bottom stays put
	newModel, _ = p.Update(msg)
	p = newModel.(Picker)
	if p.cursor != 1 {
		t.Errorf("expected cursor clamped at 1, got %d", p.cursor)
	}

	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	newModel, _ = p.Update(msg)
	p = newModel.(Picker)
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
}

func TestPicker_SelectAndCancel(t *testing.T) {
	p := New(testResults(), "iphone", labels.Default())
	p.cursor = 1

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(Picker)

	selected := p.SelectedProduct()
	if selected == nil || selected.ID != "2" {
		t.Errorf("expected product 2 selected, got %v", selected)
	}

	p = New(testResults(), "iphone", labels.Default())
	newModel, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	p = newModel.(Picker)

	if !p.Cancelled() {
		t.Error("expected picker to be cancelled")
	}
	if p.SelectedProduct() != nil {
		t.Error("cancelled picker must not return a product")
	}
}

func TestPicker_ViewShowsPricesAndNoResults(t *testing.T) {
	p := New(testResults(), "iphone", labels.Default())
	view := p.View()

	if !strings.Contains(view, "$799.00") || !strings.Contains(view, "$12.50") {
		t.Errorf("expected two-decimal prices in view:\n%s", view)
	}

	empty := New(nil, "toaster", labels.Default())
	view = empty.View()
	if !strings.Contains(view, labels.Default().Get(labels.ProductNotFound)) {
		t.Errorf("expected no-results label in view:\n%s", view)
	}
}
