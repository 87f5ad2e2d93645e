package fuzzyfind

import (
	"testing"

	"github.com/Vedant9500/fuzzyfind/internal/lang"
)

func TestResolveProcessorsAcceptsHumanReadableAliases(t *testing.T) {
	registry := lang.NewRegistry()
	processors, tags, err := resolveProcessors(registry, []string{"English", "german"}, nil, nil)
	if err != nil {
		t.Fatalf("resolveProcessors: %v", err)
	}
	if len(processors) != 2 || tags[0] != "en" || tags[1] != "de" {
		t.Fatalf("expected tags [en de], got %v", tags)
	}
}

func TestResolveProcessorsRejectsUnknownTag(t *testing.T) {
	registry := lang.NewRegistry()
	if _, _, err := resolveProcessors(registry, []string{"klingon"}, nil, nil); err == nil {
		t.Error("expected a MissingProcessorError for an unregistered, unaliased tag")
	}
}

func TestBuildAcceptsHumanReadableLanguageTag(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Languages = []string{"English"}
	e, err := Build(cfg, nil, []Item{{Text: "apple"}})
	if err != nil {
		t.Fatalf("Build with human-readable language tag: %v", err)
	}
	if len(e.Search("apple", SearchOptions{MaxResults: 5, FuzzyThreshold: 0.3})) == 0 {
		t.Error("expected a match after resolving the 'English' alias to 'en'")
	}
}
