package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nikbrunner/pricedex/internal/model"
)

// Storage defines the interface for persisting catalog feeds.
type Storage interface {
	Load() ([]model.Entry, error)
	Save(entries []model.Entry) error
	Path() string
}

// feedDocument is the on-disk shape of a catalog feed, matching what
// the scraper pipeline writes.
type feedDocument struct {
	ScrapedAt string      `json:"scrapedAt,omitempty"`
	Products  []feedEntry `json:"products"`
}

// feedEntry tolerates the loose typing of scraped records: price may
// arrive as a JSON number or as a string like "$1,299.00" or "free".
type feedEntry struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    json.RawMessage `json:"price"`
	Source   string          `json:"source"`
	URL      string          `json:"url"`
}

func (f feedEntry) priceText() string {
	if len(f.Price) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(f.Price, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(f.Price, &n); err == nil {
		return model.FormatPrice(n)
	}
	// Leave malformed values for catalog validation to reject
	return string(f.Price)
}

// FeedStorage implements Storage using a JSON feed file.
type FeedStorage struct {
	path string
}

// NewFeedStorage creates a new FeedStorage with the given file path.
func NewFeedStorage(path string) *FeedStorage {
	return &FeedStorage{path: path}
}

// Path returns the feed file path.
func (s *FeedStorage) Path() string {
	return s.path
}

// Load reads the catalog entries from the feed file.
// Returns an empty feed if the file doesn't exist.
func (s *FeedStorage) Load() ([]model.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Return empty feed for missing file
			return []model.Entry{}, nil
		}
		return nil, err
	}

	var doc feedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", s.path, err)
	}

	entries := make([]model.Entry, len(doc.Products))
	for i, p := range doc.Products {
		entries[i] = model.Entry{
			ID:        p.ID,
			Name:      p.Name,
			Category:  p.Category,
			PriceText: p.priceText(),
			Source:    p.Source,
			URL:       p.URL,
		}
	}

	return entries, nil
}

// Save writes the entries to the feed file.
// Creates the directory if it doesn't exist.
func (s *FeedStorage) Save(entries []model.Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	doc := feedDocument{
		ScrapedAt: time.Now().Format(time.RFC3339),
		Products:  make([]feedEntry, len(entries)),
	}
	for i, e := range entries {
		price, err := json.Marshal(e.PriceText)
		if err != nil {
			return err
		}
		doc.Products[i] = feedEntry{
			ID:       e.ID,
			Name:     e.Name,
			Category: e.Category,
			Price:    price,
			Source:   e.Source,
			URL:      e.URL,
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// DefaultFeedPath returns the default feed path: ~/.config/pricedex/catalog.json
func DefaultFeedPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "pricedex", "catalog.json"), nil
}

// OpenStorage opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to
// the JSON feed.
func OpenStorage() (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	// If SQLite database exists, use it
	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}

	// Fall back to JSON feed
	feedPath, err := DefaultFeedPath()
	if err != nil {
		return nil, err
	}
	return NewFeedStorage(feedPath), nil
}
