package model

// Product represents one marketplace listing in a catalog.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Source   string  `json:"source"`
	URL      string  `json:"url"`
}

// Entry is a raw catalog record as produced by a feed or scraper.
// PriceText holds the price exactly as scraped ("799", "$1,299.00", "free");
// it is parsed and validated when the entry is placed into a Catalog.
type Entry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	PriceText string `json:"price"`
	Source    string `json:"source"`
	URL       string `json:"url"`
}

// EntryOf converts a validated product back to its raw feed form.
func EntryOf(p Product) Entry {
	return Entry{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		PriceText: FormatPrice(p.Price),
		Source:    p.Source,
		URL:       p.URL,
	}
}
