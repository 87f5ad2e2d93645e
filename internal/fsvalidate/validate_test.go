package fsvalidate

import (
	"errors"
	"testing"

	"github.com/Vedant9500/fuzzyfind/internal/fserr"
)

func validParams() Params {
	return Params{
		Languages:       []string{"en"},
		Performance:     "balanced",
		MaxResults:      10,
		MinQueryLength:  2,
		FuzzyThreshold:  0.3,
		MaxEditDistance: 2,
		NgramSize:       3,
		BM25K1:          1.2,
		BM25B:           0.75,
	}
}

func TestValidParamsPass(t *testing.T) {
	if err := Validate(validParams()); err != nil {
		t.Fatalf("expected valid params to pass, got %v", err)
	}
}

func TestEmptyLanguagesRejected(t *testing.T) {
	p := validParams()
	p.Languages = nil
	err := Validate(p)
	var cfgErr *fserr.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "languages" {
		t.Fatalf("expected ConfigError for languages, got %v", err)
	}
}

func TestAutoSentinelAccepted(t *testing.T) {
	p := validParams()
	p.Languages = []string{"auto"}
	if err := Validate(p); err != nil {
		t.Fatalf("expected 'auto' sentinel to be valid, got %v", err)
	}
}

func TestInvalidPerformanceModeRejected(t *testing.T) {
	p := validParams()
	p.Performance = "ludicrous"
	err := Validate(p)
	var cfgErr *fserr.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "performance" {
		t.Fatalf("expected ConfigError for performance, got %v", err)
	}
}

func TestMaxResultsMustBePositive(t *testing.T) {
	p := validParams()
	p.MaxResults = 0
	if err := Validate(p); err == nil {
		t.Fatal("expected error for maxResults=0")
	}
}

func TestFuzzyThresholdRange(t *testing.T) {
	p := validParams()
	p.FuzzyThreshold = 1.5
	if err := Validate(p); err == nil {
		t.Fatal("expected error for out-of-range fuzzyThreshold")
	}
}

func TestNgramSizeMinimum(t *testing.T) {
	p := validParams()
	p.NgramSize = 1
	if err := Validate(p); err == nil {
		t.Fatal("expected error for ngramSize < 2")
	}
}

func TestBloomFPRateOptionalButBounded(t *testing.T) {
	p := validParams()
	p.BloomFPRate = 0
	if err := Validate(p); err != nil {
		t.Fatalf("expected zero (unset) bloom FP rate to be valid, got %v", err)
	}
	p.BloomFPRate = 1.5
	if err := Validate(p); err == nil {
		t.Fatal("expected error for out-of-range bloom FP rate")
	}
}
