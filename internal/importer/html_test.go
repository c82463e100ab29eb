package importer_test

import (
	"strings"
	"testing"

	"github.com/nikbrunner/pricedex/internal/importer"
	"github.com/nikbrunner/pricedex/internal/model"
)

const samplePage = `<!DOCTYPE html>
<html>
<body>
  <div class="results">
    <div class="product" data-id="a1" data-category="Electronics">
      <a href="https://amazon.com/iphone-13"><span class="title">iPhone 13</span></a>
      <span class="price">$799.00</span>
    </div>
    <div class="product" data-category="Electronics">
      <a href="https://amazon.com/samsung-tv">Samsung TV</a>
      <span class="price">499</span>
    </div>
    <li data-product data-category="Home">
      <a href="https://amazon.com/desk-lamp">Desk Lamp</a>
      <div class="price">$19.99</div>
    </li>
    <div class="product">
      <a href="https://amazon.com/mystery">Mystery Box</a>
      <span class="price">free</span>
    </div>
    <div class="product">
      <span>No link, not importable</span>
    </div>
  </div>
</body>
</html>`

func TestParse_SampleResultPage(t *testing.T) {
	entries, err := importer.Parse(strings.NewReader(samplePage), "Amazon")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d: %+v", len(entries), entries)
	}

	first := entries[0]
	if first.ID != "a1" {
		t.Errorf("expected data-id carried over, got %q", first.ID)
	}
	if first.Name != "iPhone 13" {
		t.Errorf("expected title-classed name, got %q", first.Name)
	}
	if first.PriceText != "$799.00" {
		t.Errorf("expected raw price text, got %q", first.PriceText)
	}
	if first.Category != "Electronics" {
		t.Errorf("expected category from data attribute, got %q", first.Category)
	}
	if first.Source != "Amazon" {
		t.Errorf("expected caller-supplied source, got %q", first.Source)
	}
	if first.URL != "https://amazon.com/iphone-13" {
		t.Errorf("expected anchor href, got %q", first.URL)
	}

	// Anchor text is the fallback name
	if entries[1].Name != "Samsung TV" {
		t.Errorf("expected anchor text name, got %q", entries[1].Name)
	}

	// data-product marks a listing just like the product class
	if entries[2].Name != "Desk Lamp" || entries[2].Category != "Home" {
		t.Errorf("data-product listing not parsed: %+v", entries[2])
	}
}

func TestParse_ImportedEntriesFeedTheCatalog(t *testing.T) {
	entries, err := importer.Parse(strings.NewReader(samplePage), "Amazon")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	catalog := model.NewCatalog(entries)

	// "free" is not a usable price; everything else makes it in
	if catalog.Len() != 3 {
		t.Errorf("expected 3 valid products, got %d", catalog.Len())
	}
	if len(catalog.Invalid()) != 1 {
		t.Errorf("expected 1 quarantined entry, got %v", catalog.Invalid())
	}
}

func TestParse_EmptyPage(t *testing.T) {
	entries, err := importer.Parse(strings.NewReader("<html><body></body></html>"), "Walmart")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %v", entries)
	}
}
