package search

// Query holds one search request: free-text name match, exact category
// restriction and an optional price cap. The zero value matches every
// product.
type Query struct {
	// Text is matched case-insensitively as a substring of the
	// product name. Empty means no text restriction.
	Text string

	// Category must equal the product category exactly (case
	// sensitive). Empty means no category restriction.
	Category string

	// MaxPrice excludes products above the cap. Zero or negative
	// means no cap.
	MaxPrice float64
}

// IsZero reports whether the query carries no restrictions.
func (q Query) IsZero() bool {
	return q.Text == "" && q.Category == "" && q.MaxPrice <= 0
}
