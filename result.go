package fuzzyfind

import (
	"github.com/Vedant9500/fuzzyfind/internal/fsfilter"
	"github.com/Vedant9500/fuzzyfind/internal/fsindex"
	"github.com/Vedant9500/fuzzyfind/internal/fsquery"
)

var matchTypeByName = map[string]fsindex.MatchType{
	"exact":     fsindex.Exact,
	"prefix":    fsindex.Prefix,
	"substring": fsindex.Substring,
	"fuzzy":     fsindex.Fuzzy,
	"ngram":     fsindex.NGram,
	"phonetic":  fsindex.Phonetic,
	"compound":  fsindex.Compound,
	"synonym":   fsindex.Synonym,
}

func translateMatchTypes(names map[string]bool) map[fsindex.MatchType]bool {
	if len(names) == 0 {
		return nil
	}
	out := make(map[fsindex.MatchType]bool, len(names))
	for name, allowed := range names {
		if mt, ok := matchTypeByName[name]; ok {
			out[mt] = allowed
		}
	}
	return out
}

var allMatchTypes = []fsindex.MatchType{
	fsindex.Exact, fsindex.Prefix, fsindex.Substring, fsindex.Fuzzy,
	fsindex.NGram, fsindex.Phonetic, fsindex.Compound, fsindex.Synonym,
}

// gatedMatchTypes combines the caller's explicit per-search match-type
// allow-list with the engine's standing feature set. fsindex.Search
// treats a non-nil, non-empty map as exclusive: any type absent from it
// is disallowed, so gating a single feature off requires building a
// full map with every other type explicitly true, not just adding one
// false entry.
func gatedMatchTypes(names map[string]bool, features featureSet) map[fsindex.MatchType]bool {
	disablesAny := !features.has("phonetic") || !features.has("compound") || !features.has("synonyms")
	if len(names) == 0 && !disablesAny {
		return nil
	}

	explicit := translateMatchTypes(names)
	out := make(map[fsindex.MatchType]bool, len(allMatchTypes))
	for _, mt := range allMatchTypes {
		if v, ok := explicit[mt]; ok {
			out[mt] = v
		} else {
			out[mt] = true
		}
	}
	if !features.has("phonetic") {
		out[fsindex.Phonetic] = false
	}
	if !features.has("compound") {
		out[fsindex.Compound] = false
	}
	if !features.has("synonyms") {
		out[fsindex.Synonym] = false
	}
	return out
}

// Highlight marks the [Start, End) range, in rune offsets, of one
// matched span within a result's display string.
type Highlight struct {
	Start int
	End   int
}

// Result is one ranked search hit: a canonical display string, its
// canonical base identifier, the score and match type that produced it,
// and (in record mode) the field it matched against and every declared
// field's value.
type Result struct {
	BaseID  string
	Display string

	IsSynonym     bool
	PhraseMatched bool

	Score     float64
	Language  string
	MatchType string

	MatchedTerm  string
	MatchedField string
	FieldValues  map[string]string

	Highlights []Highlight
}

func fromQueryResult(r fsquery.Result) Result {
	highlights := make([]Highlight, len(r.Highlights))
	for i, h := range r.Highlights {
		highlights[i] = Highlight{Start: h.Start, End: h.End}
	}
	return Result{
		BaseID:        r.BaseID,
		Display:       r.Display,
		IsSynonym:     r.IsSynonym,
		PhraseMatched: r.PhraseMatched,
		Score:         r.Score,
		Language:      r.Language,
		MatchType:     r.MatchType.String(),
		MatchedTerm:   r.MatchedTerm,
		MatchedField:  r.MatchedField,
		FieldValues:   r.FieldValues,
		Highlights:    highlights,
	}
}

// SearchOptions controls a single Search call, layered on top of the
// engine's standing Config.
type SearchOptions struct {
	MaxResults        int
	FuzzyThreshold    float64
	MatchTypes        map[string]bool
	IncludeHighlights bool

	filters []fsfilter.Predicate
	sort    []fsfilter.SortKey
}

// WithRangeFilter restricts results to those whose numeric field value
// falls within [min, max].
func (o SearchOptions) WithRangeFilter(field string, min, max float64) SearchOptions {
	o.filters = append(append([]fsfilter.Predicate(nil), o.filters...), fsfilter.Range(field, min, max))
	return o
}

// WithTermFilter restricts results to those whose field value is in
// allowed.
func (o SearchOptions) WithTermFilter(field string, allowed map[string]bool) SearchOptions {
	o.filters = append(append([]fsfilter.Predicate(nil), o.filters...), fsfilter.TermSet(field, allowed))
	return o
}

// SortDirection selects ascending or descending order for a sort key.
type SortDirection int

const (
	Ascending SortDirection = SortDirection(fsfilter.Ascending)
	Descending SortDirection = SortDirection(fsfilter.Descending)
)

// WithSort appends a sort key; keys are applied in the order added,
// each breaking ties left by the previous one.
func (o SearchOptions) WithSort(field string, dir SortDirection) SearchOptions {
	o.sort = append(append([]fsfilter.SortKey(nil), o.sort...), fsfilter.SortKey{Field: field, Direction: fsfilter.Direction(dir)})
	return o
}
