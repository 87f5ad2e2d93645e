// Package fsvalidate validates the engine's configuration at build
// time. Every failure is a fatal configuration error; there is no
// partial recovery or retry.
package fsvalidate

import (
	"fmt"

	"github.com/Vedant9500/fuzzyfind/internal/fserr"
)

// Params mirrors the subset of the engine's public Config that has
// validity constraints, kept separate from the root Config type so
// this package has no dependency on it.
type Params struct {
	Languages       []string
	Performance     string
	MaxResults      int
	MinQueryLength  int
	FuzzyThreshold  float64
	MaxEditDistance int
	NgramSize       int
	BM25K1          float64
	BM25B           float64
	BloomFPRate     float64
}

var validPerformanceModes = map[string]bool{
	"fast": true, "balanced": true, "comprehensive": true,
}

// Validate checks every constrained field and returns the first
// violation found as a *fserr.ConfigError.
func Validate(p Params) error {
	if len(p.Languages) == 0 {
		return fserr.NewConfigError("languages", fmt.Errorf("must be non-empty or contain the sentinel \"auto\""))
	}
	if len(p.Languages) == 1 && p.Languages[0] == "auto" {
		// auto-detection sentinel, valid on its own
	}

	if p.Performance != "" && !validPerformanceModes[p.Performance] {
		return fserr.NewConfigError("performance", fmt.Errorf("must be one of fast, balanced, comprehensive, got %q", p.Performance))
	}
	if p.MaxResults < 1 {
		return fserr.NewConfigError("maxResults", fmt.Errorf("must be >= 1, got %d", p.MaxResults))
	}
	if p.MinQueryLength < 1 {
		return fserr.NewConfigError("minQueryLength", fmt.Errorf("must be >= 1, got %d", p.MinQueryLength))
	}
	if p.FuzzyThreshold < 0 || p.FuzzyThreshold > 1 {
		return fserr.NewConfigError("fuzzyThreshold", fmt.Errorf("must be in [0,1], got %f", p.FuzzyThreshold))
	}
	if p.MaxEditDistance < 0 {
		return fserr.NewConfigError("maxEditDistance", fmt.Errorf("must be >= 0, got %d", p.MaxEditDistance))
	}
	if p.NgramSize < 2 {
		return fserr.NewConfigError("ngramSize", fmt.Errorf("must be >= 2, got %d", p.NgramSize))
	}
	if p.BM25K1 < 0 {
		return fserr.NewConfigError("bm25Config.k1", fmt.Errorf("must be >= 0, got %f", p.BM25K1))
	}
	if p.BM25B < 0 || p.BM25B > 1 {
		return fserr.NewConfigError("bm25Config.b", fmt.Errorf("must be in [0,1], got %f", p.BM25B))
	}
	if p.BloomFPRate != 0 && (p.BloomFPRate <= 0 || p.BloomFPRate >= 1) {
		return fserr.NewConfigError("bloomFilterFalsePositiveRate", fmt.Errorf("must be in (0,1), got %f", p.BloomFPRate))
	}

	return nil
}
