package model

import "fmt"

// InvalidEntry describes one catalog record that failed validation and
// was quarantined at ingestion time.
type InvalidEntry struct {
	ID     string
	Name   string
	Reason string
}

func (e InvalidEntry) String() string {
	return fmt.Sprintf("invalid product %q (%s): %s", e.ID, e.Name, e.Reason)
}

// Catalog holds the ordered, validated products of one search session.
// Entries that fail validation are quarantined once, here, and never
// reach search results or the category list. Products are immutable
// for the lifetime of the catalog.
type Catalog struct {
	products []Product
	invalid  []InvalidEntry
}

// NewCatalog validates raw entries in feed order and builds a catalog.
// Validation never fails the catalog as a whole: offending entries are
// collected in the quarantine report instead. Entries without an id
// get a generated one (scraped feeds carry no stable ids).
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{
		products: []Product{},
		invalid:  []InvalidEntry{},
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			c.invalid = append(c.invalid, InvalidEntry{ID: e.ID, Name: e.Name, Reason: "empty name"})
			continue
		}

		price, err := ParsePrice(e.PriceText)
		if err != nil {
			c.invalid = append(c.invalid, InvalidEntry{
				ID:     e.ID,
				Name:   e.Name,
				Reason: fmt.Sprintf("unusable price %q", e.PriceText),
			})
			continue
		}

		id := e.ID
		if id == "" {
			id = generateUUID()
		}
		if seen[id] {
			c.invalid = append(c.invalid, InvalidEntry{ID: id, Name: e.Name, Reason: "duplicate id"})
			continue
		}
		seen[id] = true

		c.products = append(c.products, Product{
			ID:       id,
			Name:     e.Name,
			Category: e.Category,
			Price:    price,
			Source:   e.Source,
			URL:      e.URL,
		})
	}

	return c
}

// Products returns the valid products in feed order.
func (c *Catalog) Products() []Product {
	return c.products
}

// Invalid returns the quarantine report for the caller to surface as
// warnings.
func (c *Catalog) Invalid() []InvalidEntry {
	return c.invalid
}

// Len returns the number of valid products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns the distinct category labels of valid products,
// each at the position of its first occurrence. An empty catalog
// yields an empty list.
func (c *Catalog) Categories() []string {
	categories := []string{}
	seen := make(map[string]bool)
	for _, p := range c.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// Entries converts the valid products back to raw feed entries, for
// persisting a catalog through a Storage backend.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, len(c.products))
	for i, p := range c.products {
		entries[i] = EntryOf(p)
	}
	return entries
}
