package model

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidPrice is returned when a price string cannot be parsed
// into a non-negative number.
var ErrInvalidPrice = errors.New("invalid price")

// ParsePrice parses a scraped price string into a numeric value.
// Handles the formats the marketplace scrapers emit: currency prefix
// ("$799"), thousands separators ("1,299.00"), trailing units
// ("19.99 USD") and ranges ("10-20", where the low bound wins).
func ParsePrice(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, ErrInvalidPrice
	}

	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	// Keep only the first whitespace-separated token ("19.99 USD")
	if fields := strings.Fields(s); len(fields) > 0 {
		s = fields[0]
	}

	// Alibaba-style price range: take the low bound
	if idx := strings.Index(s, "-"); idx > 0 {
		s = s[:idx]
	}

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	if price < 0 {
		return 0, ErrInvalidPrice
	}

	return price, nil
}

// FormatPrice renders a price the way feeds store it.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
