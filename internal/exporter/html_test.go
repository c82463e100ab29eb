package exporter_test

import (
	"strings"
	"testing"

	"github.com/nikbrunner/pricedex/internal/exporter"
	"github.com/nikbrunner/pricedex/internal/labels"
	"github.com/nikbrunner/pricedex/internal/model"
)

func TestExportHTML_RendersProducts(t *testing.T) {
	products := []model.Product{
		{ID: "1", Name: "iPhone 13", Category: "Electronics", Price: 799, Source: "Amazon", URL: "https://amazon.com/1"},
		{ID: "3", Name: "Desk Lamp", Category: "Home", Price: 19.99, Source: "AliExpress", URL: "https://aliexpress.com/3"},
	}

	out := exporter.ExportHTML(products, labels.Default())

	// Prices are always formatted to two decimals
	if !strings.Contains(out, "$799.00") {
		t.Errorf("expected two-decimal price for 799, got:\n%s", out)
	}
	if !strings.Contains(out, "$19.99") {
		t.Errorf("expected $19.99 in output, got:\n%s", out)
	}

	for _, want := range []string{"iPhone 13", "Desk Lamp", "Amazon", "AliExpress", `href="https://amazon.com/1"`, "2 products found"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestExportHTML_EscapesMarkup(t *testing.T) {
	products := []model.Product{
		{ID: "1", Name: "Lamp <deluxe> & more", Price: 10, Source: "Walmart", URL: "https://walmart.com/1"},
	}

	out := exporter.ExportHTML(products, labels.Default())

	if strings.Contains(out, "<deluxe>") {
		t.Error("product name was not escaped")
	}
	if !strings.Contains(out, "Lamp &lt;deluxe&gt; &amp; more") {
		t.Errorf("expected escaped name, got:\n%s", out)
	}
}

func TestExportHTML_EmptyResults(t *testing.T) {
	out := exporter.ExportHTML(nil, labels.Default())

	if !strings.Contains(out, "No products found") {
		t.Errorf("expected no-results message, got:\n%s", out)
	}
	if strings.Contains(out, "<li>") {
		t.Error("expected no list items for empty results")
	}
}

func TestExportHTML_UsesLabelTable(t *testing.T) {
	table := labels.Default()
	out := exporter.ExportHTML(nil, table)

	if !strings.Contains(out, table.Get(labels.ProductNotFound)) {
		t.Error("expected exporter to read the no-results text from the label table")
	}
}
