package fuzzyfind

import (
	"github.com/Vedant9500/fuzzyfind/internal/bm25"
	"github.com/Vedant9500/fuzzyfind/internal/fsindex"
	"github.com/Vedant9500/fuzzyfind/internal/fsquery"
	"github.com/Vedant9500/fuzzyfind/internal/fsvalidate"
)

// BM25Params tunes the BM25 ranking function, mirroring the engine's
// bm25Config configuration block.
type BM25Params struct {
	K1     float64
	B      float64
	MinIDF float64
}

// ScoringModifiers overrides the default score contributed by each
// match type, keyed by the match type's name (exact, prefix, substring,
// fuzzy, ngram, phonetic, compound, synonym).
type ScoringModifiers map[string]float64

// Config is the engine's single build-time configuration structure,
// validated before any index is constructed.
type Config struct {
	// Languages is a non-empty list of language tags, or the sentinel
	// "auto" to trigger auto-detection over a sampled corpus prefix.
	Languages []string
	// Features is the subset of {phonetic, compound, synonyms,
	// keyboard-neighbors, partial-words, missing-letters,
	// extra-letters, transpositions} to enable. Nil enables everything
	// the resolved language processors support.
	Features []string
	// Performance is one of fast | balanced | comprehensive.
	Performance string

	MaxResults      int
	MinQueryLength  int
	FuzzyThreshold  float64
	MaxEditDistance int
	NgramSize       int

	CustomSynonyms   map[string][]string
	CustomNormalizer func(string) string

	UseInvertedIndex bool
	FieldWeights     map[string]float64

	EnableCache bool
	CacheSize   int

	EnableStopWords bool
	StopWords       map[string]bool

	WordBoundaries string

	EnableAlphanumericSegmentation             bool
	AlphanumericAlphaWeight                    float64
	AlphanumericNumericWeight                  float64
	AlphanumericNumericEditDistanceMultiplier  float64

	UseBM25    bool
	BM25Weight float64
	BM25Config BM25Params

	UseBloomFilter               bool
	BloomFilterFalsePositiveRate float64

	MatchTypeScores  ScoringModifiers
	ScoringModifiers ScoringModifiers
}

// DefaultConfig returns a Config with the engine's documented defaults:
// English, balanced performance, BM25 and caching on, everything else
// at its zero value translated to a sane default downstream.
// FuzzyThreshold matches fsindex.DefaultFuzzyThreshold("balanced"), the
// balanced preset's lower bound per the Open Question decision in
// DESIGN.md.
func DefaultConfig() Config {
	return Config{
		Languages:       []string{"en"},
		Performance:     "balanced",
		MaxResults:      10,
		MinQueryLength:  1,
		FuzzyThreshold:  0.3,
		MaxEditDistance: 2,
		NgramSize:       3,
		EnableCache:     true,
		CacheSize:       100,
		UseBM25:         true,
		BM25Weight:      0.6,
		BM25Config:      BM25Params{K1: 1.2, B: 0.75},
		UseBloomFilter:  true,
	}
}

// featureSet indexes Config.Features for quick membership checks; nil
// Features means every feature is allowed.
type featureSet struct {
	all     bool
	allowed map[string]bool
}

func newFeatureSet(features []string) featureSet {
	if len(features) == 0 {
		return featureSet{all: true}
	}
	m := make(map[string]bool, len(features))
	for _, f := range features {
		m[f] = true
	}
	return featureSet{allowed: m}
}

func (fs featureSet) has(name string) bool {
	return fs.all || fs.allowed[name]
}

func (c Config) validateParams() error {
	languages := c.Languages
	if len(languages) == 0 {
		languages = []string{"auto"}
	}
	return fsvalidate.Validate(fsvalidate.Params{
		Languages:       languages,
		Performance:     c.Performance,
		MaxResults:      orDefault(c.MaxResults, 10),
		MinQueryLength:  orDefault(c.MinQueryLength, 1),
		FuzzyThreshold:  c.FuzzyThreshold,
		MaxEditDistance: c.MaxEditDistance,
		NgramSize:       orDefault(c.NgramSize, 3),
		BM25K1:          orDefaultFloat(c.BM25Config.K1, 1.2),
		BM25B:           orDefaultFloat(c.BM25Config.B, 0.75),
		BloomFPRate:     c.BloomFilterFalsePositiveRate,
	})
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// toIndexConfig translates the public Config into fsindex's internal
// build configuration.
func (c Config) toIndexConfig() fsindex.Config {
	scores := fsindex.DefaultMatchTypeScores(c.Performance)
	for name, v := range c.MatchTypeScores {
		if mt, ok := matchTypeByName[name]; ok {
			scores[mt] = v
		}
	}
	for name, v := range c.ScoringModifiers {
		if mt, ok := matchTypeByName[name]; ok {
			scores[mt] = v
		}
	}

	return fsindex.Config{
		NgramSize:       orDefault(c.NgramSize, 3),
		MaxEditDistance: c.MaxEditDistance,
		ForceInverted:   c.UseInvertedIndex,
		UseBM25:         c.UseBM25,
		BM25Params:      bm25.Params{K1: orDefaultFloat(c.BM25Config.K1, 1.2), B: orDefaultFloat(c.BM25Config.B, 0.75), MinIDF: c.BM25Config.MinIDF},
		UseBloom:        c.UseBloomFilter,
		BloomFPRate:     c.BloomFilterFalsePositiveRate,
		Performance:     c.Performance,
		MatchTypeScores: scores,
		FuzzyThreshold:  c.FuzzyThreshold,
		FuzzyMin:        fsindex.DefaultFuzzyThreshold(c.Performance),
		BM25Weight:      orDefaultFloat(c.BM25Weight, 0.6),

		AlphanumericEnabled:   c.EnableAlphanumericSegmentation,
		AlphaWeight:           orDefaultFloat(c.AlphanumericAlphaWeight, 0.7),
		NumericWeight:         orDefaultFloat(c.AlphanumericNumericWeight, 0.3),
		NumericEditMultiplier: orDefaultFloat(c.AlphanumericNumericEditDistanceMultiplier, 1.5),
	}
}

// toSearchOptions translates per-search options (combined with the
// engine's standing Config) into the orchestrator's Options.
func (c Config) toSearchOptions(opts SearchOptions) fsquery.Options {
	maxResults := opts.MaxResults
	if maxResults == 0 {
		maxResults = orDefault(c.MaxResults, 10)
	}
	fuzzyThreshold := opts.FuzzyThreshold
	if fuzzyThreshold == 0 {
		fuzzyThreshold = c.FuzzyThreshold
	}

	matchTypes := gatedMatchTypes(opts.MatchTypes, newFeatureSet(c.Features))

	return fsquery.Options{
		MaxResults:        maxResults,
		MinQueryLength:    orDefault(c.MinQueryLength, 1),
		FuzzyThreshold:    fuzzyThreshold,
		MatchTypes:        matchTypes,
		IncludeHighlights: opts.IncludeHighlights,
		EnableStopWords:   c.EnableStopWords,
		StopWords:         c.StopWords,
		ProximityWindow:   4,
		ProximityBonus:    1.5,
		Filters:           opts.filters,
		Sort:              opts.sort,
	}
}
