package fsquery

import (
	"testing"

	"github.com/Vedant9500/fuzzyfind/internal/fscache"
	"github.com/Vedant9500/fuzzyfind/internal/fsfilter"
	"github.com/Vedant9500/fuzzyfind/internal/fsindex"
	"github.com/Vedant9500/fuzzyfind/internal/lang"
)

func buildOrchestrator(t *testing.T, strs ...string) *Orchestrator {
	t.Helper()
	items := make([]fsindex.Item, len(strs))
	for i, s := range strs {
		items[i] = fsindex.Item{Text: s}
	}
	cfg := fsindex.Config{
		NgramSize: 3, MaxEditDistance: 2, Performance: "balanced",
		FuzzyThreshold: 0.3, FuzzyMin: 0.3,
	}
	idx, err := fsindex.Build(cfg, []lang.Processor{lang.NewEnglish(nil)}, nil, nil, items)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return New(idx, fscache.NewSearchCache(100))
}

func TestQueryTooShortReturnsEmpty(t *testing.T) {
	o := buildOrchestrator(t, "apple", "banana")
	results := o.Search("a", Options{MinQueryLength: 2, MaxResults: 5})
	if results != nil {
		t.Errorf("expected nil for below-minimum query length, got %v", results)
	}
}

func TestSearchIsCachedOnRepeat(t *testing.T) {
	o := buildOrchestrator(t, "apple", "banana")
	opts := Options{MaxResults: 5, FuzzyThreshold: 0.3}
	first := o.Search("apple", opts)
	if len(first) == 0 {
		t.Fatal("expected a result for 'apple'")
	}
	if stats := o.cache.Stats(); stats.Misses != 1 {
		t.Fatalf("expected 1 miss after first search, got %+v", stats)
	}
	second := o.Search("apple", opts)
	if len(second) != len(first) {
		t.Fatalf("expected cached result set of same length, got %d vs %d", len(second), len(first))
	}
	if stats := o.cache.Stats(); stats.Hits != 1 {
		t.Errorf("expected a cache hit on repeat search, got %+v", stats)
	}
}

func TestInvalidateClearsCache(t *testing.T) {
	o := buildOrchestrator(t, "apple", "banana")
	opts := Options{MaxResults: 5, FuzzyThreshold: 0.3}
	o.Search("apple", opts)
	o.Invalidate()
	o.Search("apple", opts)
	// Invalidate clears the LRU, which also resets its counters, so the
	// repeat search must register as the only miss and no hit.
	if stats := o.cache.Stats(); stats.Misses != 1 || stats.Hits != 0 {
		t.Errorf("expected a fresh miss after Invalidate, got %+v", stats)
	}
}

func TestIncludeHighlightsSeparatesCacheEntries(t *testing.T) {
	o := buildOrchestrator(t, "apple", "banana")
	o.Search("apple", Options{MaxResults: 5, FuzzyThreshold: 0.3, IncludeHighlights: false})
	o.Search("apple", Options{MaxResults: 5, FuzzyThreshold: 0.3, IncludeHighlights: true})
	if stats := o.cache.Stats(); stats.Misses != 2 {
		t.Errorf("expected distinct cache entries for differing IncludeHighlights, got %+v", stats)
	}
}

func TestStopWordsRestoredWhenQueryWouldEmpty(t *testing.T) {
	o := buildOrchestrator(t, "apple", "banana")
	opts := Options{
		MaxResults: 5, FuzzyThreshold: 0.3,
		EnableStopWords: true,
		StopWords:       map[string]bool{"apple": true},
	}
	results := o.Search("apple", opts)
	if len(results) == 0 {
		t.Fatal("expected stopword stripping to be restored rather than searching on an empty query")
	}
}

func TestPhraseQueryRanksExactAboveProximity(t *testing.T) {
	o := buildOrchestrator(t, "New York Pizza", "New Pizza York", "New Yorker Bagel")
	opts := Options{MaxResults: 5, FuzzyThreshold: 0.1, ProximityWindow: 4, ProximityBonus: 1.5}
	results := o.Search(`"new york" pizza`, opts)
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].BaseID != "New York Pizza" {
		t.Errorf("expected 'New York Pizza' to rank first, got %q", results[0].BaseID)
	}
}

func TestFiltersBypassCache(t *testing.T) {
	o := buildOrchestrator(t, "apple", "banana")
	allow := fsfilter.Predicate(func(map[string]interface{}) bool { return true })
	opts := Options{
		MaxResults: 5, FuzzyThreshold: 0.3,
		Filters: []fsfilter.Predicate{allow},
	}
	o.Search("apple", opts)
	o.Search("apple", opts)
	if o.cache.Size() != 0 {
		t.Errorf("expected a filtered search to never populate the cache, got size %d", o.cache.Size())
	}
}
