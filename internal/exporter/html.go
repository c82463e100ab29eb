package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/pricedex/internal/labels"
	"github.com/nikbrunner/pricedex/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/pricedex-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("pricedex-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders a result set as a standalone HTML page: name,
// price to two decimals, source and an outbound link per product, or
// the localized no-results message when the list is empty.
func ExportHTML(products []model.Product, table *labels.Table) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<title>pricedex</title>\n")
	b.WriteString("</head>\n<body>\n")

	if len(products) == 0 {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(table.Get(labels.ProductNotFound)))
	} else {
		fmt.Fprintf(&b, "<p>%d %s</p>\n", len(products), html.EscapeString(table.Found(len(products))))
		b.WriteString("<ul>\n")
		for _, p := range products {
			writeProduct(&b, p, table)
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// writeProduct writes one result list item.
func writeProduct(b *strings.Builder, p model.Product, table *labels.Table) {
	b.WriteString("    <li>\n")
	fmt.Fprintf(b, "        <h3>%s</h3>\n", html.EscapeString(p.Name))
	fmt.Fprintf(b, "        <p>%s: $%.2f</p>\n",
		html.EscapeString(table.Get(labels.ProductPrice)), p.Price)
	fmt.Fprintf(b, "        <p>%s: %s</p>\n",
		html.EscapeString(table.Get(labels.ProductSource)), html.EscapeString(p.Source))
	fmt.Fprintf(b, "        <a href=%q>%s %s</a>\n",
		p.URL, html.EscapeString(table.Get(labels.ProductVisit)), html.EscapeString(p.Source))
	b.WriteString("    </li>\n")
}

// WriteExport writes the rendered page to the given path, creating the
// directory if needed.
func WriteExport(path string, products []model.Product, table *labels.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(ExportHTML(products, table)), 0644)
}
