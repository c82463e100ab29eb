package search

import (
	"strings"

	"github.com/nikbrunner/pricedex/internal/model"
)

// Matches reports whether a product satisfies every predicate of the
// query. Predicates are independent and combined with AND; there is no
// scoring or ranking.
//
// Text matching uses strings.ToLower on both sides, so case folding is
// simple Unicode lowercasing with no locale-specific rules.
func Matches(p model.Product, q Query) bool {
	if q.Text != "" {
		if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Text)) {
			return false
		}
	}
	if q.Category != "" && p.Category != q.Category {
		return false
	}
	if q.MaxPrice > 0 && p.Price > q.MaxPrice {
		return false
	}
	return true
}

// Search returns the products of the catalog that match the query, in
// catalog order. The result is a fresh slice on every call; the engine
// keeps no state, so repeated calls with unchanged inputs return
// identical sequences. An empty catalog yields an empty result.
func Search(catalog *model.Catalog, q Query) []model.Product {
	results := []model.Product{}
	for _, p := range catalog.Products() {
		if Matches(p, q) {
			results = append(results, p)
		}
	}
	return results
}
