package search_test

import (
	"testing"

	"github.com/nikbrunner/pricedex/internal/search"
)

func TestNewSession_InitialAll(t *testing.T) {
	s := search.NewSession(testCatalog(), search.Options{Initial: search.InitialAll})

	assertIDs(t, s.Results(), "1", "2", "3")
	if s.Stale() {
		t.Error("fresh session must not be stale")
	}
}

func TestNewSession_InitialEmpty(t *testing.T) {
	s := search.NewSession(testCatalog(), search.Options{Initial: search.InitialEmpty})

	if len(s.Results()) != 0 {
		t.Errorf("expected no results before first commit, got %v", s.Results())
	}

	s.Commit()
	assertIDs(t, s.Results(), "1", "2", "3")
}

func TestSession_EditsDoNotChangeResults(t *testing.T) {
	s := search.NewSession(testCatalog(), search.Options{})

	s.SetQueryText("phone")
	assertIDs(t, s.Results(), "1", "2", "3")

	s.SetCategory("Home")
	assertIDs(t, s.Results(), "1", "2", "3")

	if !s.Stale() {
		t.Error("expected session to be stale after uncommitted edits")
	}
}

func TestSession_CommitAppliesLiveQuery(t *testing.T) {
	s := search.NewSession(testCatalog(), search.Options{})

	s.SetQueryText("phone")
	s.Commit()
	assertIDs(t, s.Results(), "1")

	s.SetQueryText("")
	s.SetCategory("Home")
	s.Commit()
	assertIDs(t, s.Results(), "3")

	s.SetCategory("")
	s.Commit()
	assertIDs(t, s.Results(), "1", "2", "3")
}

func TestSession_CommittedSnapshotSurvivesLaterEdits(t *testing.T) {
	s := search.NewSession(testCatalog(), search.Options{})

	s.SetQueryText("phone")
	s.Commit()

	// Editing after commit must not retroactively change the
	// committed snapshot or its results.
	s.SetQueryText("samsung")

	if got := s.Committed().Text; got != "phone" {
		t.Errorf("committed snapshot changed after edit: %q", got)
	}
	assertIDs(t, s.Results(), "1")
	if !s.Stale() {
		t.Error("expected stale after post-commit edit")
	}
}

func TestSession_LiveModeCommitsOnEveryEdit(t *testing.T) {
	s := search.NewSession(testCatalog(), search.Options{Live: true})

	s.SetQueryText("phone")
	assertIDs(t, s.Results(), "1")

	s.SetQueryText("")
	s.SetCategory("Home")
	assertIDs(t, s.Results(), "3")

	if s.Stale() {
		t.Error("live session must never be stale")
	}
}

func TestSession_MaxPrice(t *testing.T) {
	s := search.NewSession(testCatalog(), search.Options{})

	s.SetMaxPrice(100)
	s.Commit()
	assertIDs(t, s.Results(), "3")

	s.SetMaxPrice(0)
	s.Commit()
	assertIDs(t, s.Results(), "1", "2", "3")
}
