package search

import "github.com/nikbrunner/pricedex/internal/model"

// InitialResults selects what a session shows before the first commit.
type InitialResults int

const (
	// InitialAll runs an unfiltered commit at construction, so the
	// whole catalog is visible immediately.
	InitialAll InitialResults = iota

	// InitialEmpty shows nothing until the first explicit commit.
	InitialEmpty
)

// Options configures a Session.
type Options struct {
	Initial InitialResults

	// Live commits after every edit instead of waiting for an
	// explicit Commit call. Off by default: results stay put while
	// the user types.
	Live bool
}

// Session is the query state machine for one catalog. Edits accumulate
// in a live query and only take effect on Commit, which snapshots the
// live query and reruns the engine. Between edits and commit the
// results are intentionally stale.
//
// A Session is single-writer: callers embedding it in a concurrent
// host must serialize access themselves.
type Session struct {
	catalog   *model.Catalog
	live      Query
	committed Query
	results   []model.Product
	liveMode  bool
}

// NewSession creates a session over the given catalog.
func NewSession(catalog *model.Catalog, opts Options) *Session {
	s := &Session{
		catalog:  catalog,
		liveMode: opts.Live,
		results:  []model.Product{},
	}
	if opts.Initial == InitialAll {
		s.Commit()
	}
	return s
}

// SetQueryText replaces the live query text. Results are unchanged
// unless the session is in live mode.
func (s *Session) SetQueryText(text string) {
	s.live.Text = text
	s.autoCommit()
}

// SetCategory replaces the live category restriction. Empty clears it.
func (s *Session) SetCategory(category string) {
	s.live.Category = category
	s.autoCommit()
}

// SetMaxPrice replaces the live price cap. Zero or negative clears it.
func (s *Session) SetMaxPrice(max float64) {
	s.live.MaxPrice = max
	s.autoCommit()
}

// Commit snapshots the live query, runs the engine against the catalog
// and replaces the result set. Returns the new results.
func (s *Session) Commit() []model.Product {
	s.committed = s.live
	s.results = Search(s.catalog, s.committed)
	return s.results
}

func (s *Session) autoCommit() {
	if s.liveMode {
		s.Commit()
	}
}

// Results returns the result set of the last commit.
func (s *Session) Results() []model.Product {
	return s.results
}

// Live returns the current, possibly uncommitted query.
func (s *Session) Live() Query {
	return s.live
}

// Committed returns the query snapshot behind the current results.
func (s *Session) Committed() Query {
	return s.committed
}

// Stale reports whether the live query has diverged from the committed
// one, i.e. the visible results no longer reflect what the user typed.
func (s *Session) Stale() bool {
	return s.live != s.committed
}

// Catalog returns the catalog this session searches.
func (s *Session) Catalog() *model.Catalog {
	return s.catalog
}
