// Package labels supplies all user-facing strings, keyed by fixed
// identifiers. The search core never embeds display text; the TUI,
// picker and exporter look labels up here so an integrator can swap
// the table for another locale.
package labels

import (
	"encoding/json"
	"os"
)

// Label keys. These identifiers are fixed; only the text behind them
// is localizable.
const (
	SearchPlaceholder = "search.placeholder"
	SearchButton      = "search.button"
	SearchPending     = "search.pending"

	ProductFound       = "product.found"
	ProductFoundPlural = "product.found_plural"
	ProductNotFound    = "product.notfound"
	ProductVisit       = "product.visit"
	ProductPrice       = "product.price"
	ProductSource      = "product.source"

	FilterCategory    = "filter.category"
	FilterCategoryAll = "filter.category.all"
	FilterPriceMax    = "filter.price.max"

	CatalogInvalidEntries = "catalog.invalid_entries"
)

// defaults is the built-in English table.
var defaults = map[string]string{
	SearchPlaceholder: "Search for products, brands, or categories...",
	SearchButton:      "Search",
	SearchPending:     "edited — press enter to search",

	ProductFound:       "product found",
	ProductFoundPlural: "products found",
	ProductNotFound:    "No products found. Try a different search!",
	ProductVisit:       "Visit",
	ProductPrice:       "Price",
	ProductSource:      "Source",

	FilterCategory:    "Category",
	FilterCategoryAll: "All Categories",
	FilterPriceMax:    "Max Price",

	CatalogInvalidEntries: "entries skipped",
}

// Table resolves label keys to localized text.
type Table struct {
	overrides map[string]string
}

// Default returns a table with the built-in English strings.
func Default() *Table {
	return &Table{overrides: map[string]string{}}
}

// Load reads a JSON file mapping label keys to text and layers it over
// the defaults. Keys absent from the file keep their default text.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var overrides map[string]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, err
	}

	return &Table{overrides: overrides}, nil
}

// Get returns the text for a key: override first, then default, then
// the key itself so a missing label is visible instead of blank.
func (t *Table) Get(key string) string {
	if s, ok := t.overrides[key]; ok && s != "" {
		return s
	}
	if s, ok := defaults[key]; ok {
		return s
	}
	return key
}

// Found returns the result-count label, singular or plural.
func (t *Table) Found(n int) string {
	if n == 1 {
		return t.Get(ProductFound)
	}
	return t.Get(ProductFoundPlural)
}
