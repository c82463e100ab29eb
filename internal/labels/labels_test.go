package labels_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/pricedex/internal/labels"
)

func TestDefault_KnownKeys(t *testing.T) {
	table := labels.Default()

	if got := table.Get(labels.FilterCategoryAll); got != "All Categories" {
		t.Errorf("expected default text, got %q", got)
	}
	if got := table.Get(labels.ProductNotFound); got == "" {
		t.Error("expected non-empty no-results text")
	}
}

func TestGet_UnknownKeyFallsBackToKey(t *testing.T) {
	table := labels.Default()

	if got := table.Get("nav.title"); got != "nav.title" {
		t.Errorf("expected key passthrough, got %q", got)
	}
}

func TestLoad_OverridesLayerOverDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "de.json")

	raw := `{"filter.category.all": "Alle Kategorien"}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := labels.Load(path)
	if err != nil {
		t.Fatalf("failed to load labels: %v", err)
	}

	if got := table.Get(labels.FilterCategoryAll); got != "Alle Kategorien" {
		t.Errorf("expected override, got %q", got)
	}
	// Keys missing from the override file keep their defaults
	if got := table.Get(labels.SearchButton); got != "Search" {
		t.Errorf("expected default for missing key, got %q", got)
	}
}

func TestFound_Pluralizes(t *testing.T) {
	table := labels.Default()

	if got := table.Found(1); got != "product found" {
		t.Errorf("singular: got %q", got)
	}
	if got := table.Found(3); got != "products found" {
		t.Errorf("plural: got %q", got)
	}
}
