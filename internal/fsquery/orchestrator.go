// Package fsquery implements the search orchestrator: query-length
// validation, phrase routing, stopword filtering, result-cache
// probing, the index's strategy fan-out, and post-retrieval
// filters/sort/truncation. It is the glue between internal/fsindex
// (the strategies and scoring) and internal/fscache, internal/phrase,
// and internal/fsfilter (the cross-cutting concerns around them).
package fsquery

import (
	"strings"

	"github.com/Vedant9500/fuzzyfind/internal/fscache"
	"github.com/Vedant9500/fuzzyfind/internal/fsfilter"
	"github.com/Vedant9500/fuzzyfind/internal/fsindex"
	"github.com/Vedant9500/fuzzyfind/internal/phrase"
)

// Result is one ranked hit returned to the caller: an index match,
// possibly adjusted by the phrase-search combination rule.
type Result struct {
	fsindex.SearchResult
	PhraseMatched bool
}

// Options controls one Search call, combining the index-level search
// options with the orchestrator's own cross-cutting concerns.
type Options struct {
	MaxResults        int
	MinQueryLength    int
	FuzzyThreshold    float64
	MatchTypes        map[fsindex.MatchType]bool
	IncludeHighlights bool

	EnableStopWords bool
	StopWords       map[string]bool

	ProximityWindow int
	ProximityBonus  float64

	Filters []fsfilter.Predicate
	Sort    []fsfilter.SortKey
}

// Orchestrator runs searches against one Index, sharing its result
// cache across calls.
type Orchestrator struct {
	index *fsindex.Index
	cache *fscache.SearchCache
}

// New creates an orchestrator over index, using cache for result
// memoization (pass nil to disable caching entirely).
func New(index *fsindex.Index, cache *fscache.SearchCache) *Orchestrator {
	return &Orchestrator{index: index, cache: cache}
}

// Invalidate clears the result cache. Callers must invoke this
// whenever the underlying index is mutated (add/remove), per the
// cache-coherence property.
func (o *Orchestrator) Invalidate() {
	if o.cache != nil {
		o.cache.Invalidate()
	}
}

// CacheStats reports the result cache's hit/miss/eviction counters, or
// the zero value if caching is disabled.
func (o *Orchestrator) CacheStats() fscache.CacheStats {
	if o.cache == nil {
		return fscache.CacheStats{}
	}
	return o.cache.Stats()
}

// Search runs the full orchestrator pipeline (§4.10) for query and
// returns up to opts.MaxResults results, sorted by score descending or
// by opts.Sort if given.
func (o *Orchestrator) Search(query string, opts Options) []Result {
	minLen := opts.MinQueryLength
	if minLen < 1 {
		minLen = 1
	}
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < minLen {
		return nil
	}

	parsed := phrase.Parse(trimmed)
	if opts.EnableStopWords && len(opts.StopWords) > 0 {
		if stripped := stripStopWords(parsed.Terms, opts.StopWords); len(stripped) > 0 || len(parsed.Phrases) > 0 {
			parsed.Terms = stripped
		}
	}
	processed := rejoin(parsed)

	cacheable := o.cache != nil && len(opts.Filters) == 0
	digest := cacheDigest(opts)
	if cacheable {
		if cached, ok := o.cache.Get(processed, opts.MaxResults, digest); ok {
			return decodeCached(cached)
		}
	}

	var results []Result
	if parsed.HasPhrases() {
		results = o.searchWithPhrases(parsed, opts)
	} else {
		results = o.searchTerms(processed, opts)
	}

	results = applyFiltersAndSort(results, opts)

	maxResults := opts.MaxResults
	if maxResults < 1 {
		maxResults = 10
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	if cacheable {
		o.cache.Put(processed, opts.MaxResults, digest, encodeCached(results))
	}
	return results
}

func (o *Orchestrator) searchTerms(query string, opts Options) []Result {
	raw := o.index.Search(query, fsindex.SearchOptions{
		MaxResults:        searchBudget(opts.MaxResults),
		FuzzyThreshold:    opts.FuzzyThreshold,
		MatchTypes:        opts.MatchTypes,
		IncludeHighlights: opts.IncludeHighlights,
	})
	out := make([]Result, len(raw))
	for i, r := range raw {
		out[i] = Result{SearchResult: r}
	}
	return out
}

// searchBudget is the result budget the index search uses internally
// for its adaptive short-circuit logic: the caller's MaxResults, or 10
// when unset. It is not widened beyond that; the orchestrator still
// truncates to the caller's MaxResults at the end of the pipeline.
func searchBudget(maxResults int) int {
	if maxResults < 1 {
		return 10
	}
	return maxResults
}

func applyFiltersAndSort(results []Result, opts Options) []Result {
	var filtered []Result
	for _, r := range results {
		if len(opts.Filters) > 0 && !fsfilter.Apply(opts.Filters, stringFields(r.FieldValues)) {
			continue
		}
		filtered = append(filtered, r)
	}

	sortable := make([]fsfilter.Sortable, len(filtered))
	for i := range filtered {
		sortable[i] = resultSortable{&filtered[i]}
	}
	fsfilter.SortByKeys(sortable, opts.Sort)

	out := make([]Result, len(sortable))
	for i, s := range sortable {
		out[i] = *s.(resultSortable).r
	}
	return out
}

func stringFields(fields map[string]string) map[string]interface{} {
	if fields == nil {
		return nil
	}
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// resultSortable adapts *Result to fsfilter.Sortable.
type resultSortable struct {
	r *Result
}

func (s resultSortable) Score() float64 { return s.r.Score }
func (s resultSortable) Field(name string) (interface{}, bool) {
	if s.r.FieldValues == nil {
		return nil, false
	}
	v, ok := s.r.FieldValues[name]
	return v, ok
}
