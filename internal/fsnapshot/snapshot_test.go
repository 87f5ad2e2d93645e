package fsnapshot

import (
	"testing"

	"github.com/Vedant9500/fuzzyfind/internal/fsindex"
	"github.com/Vedant9500/fuzzyfind/internal/lang"
)

func buildTestIndex(t *testing.T) *fsindex.Index {
	t.Helper()
	cfg := fsindex.Config{
		NgramSize: 3, MaxEditDistance: 2, Performance: "balanced",
		FuzzyThreshold: 0.3, FuzzyMin: 0.3, UseBM25: true, UseBloom: true, ForceInverted: true,
	}
	items := []fsindex.Item{{Text: "apple"}, {Text: "apricot"}, {Text: "banana"}}
	idx, err := fsindex.Build(cfg, []lang.Processor{lang.NewEnglish(nil)}, nil, nil, items)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return idx
}

func TestEncodeDecodeRoundTripsSearchBehavior(t *testing.T) {
	idx := buildTestIndex(t)
	before := idx.Search("aple", fsindex.SearchOptions{MaxResults: 5, FuzzyThreshold: 0.1})

	snap := Encode(idx)
	registry := lang.NewRegistry()
	restored, err := Decode(snap, registry)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	after := restored.Search("aple", fsindex.SearchOptions{MaxResults: 5, FuzzyThreshold: 0.1})
	if len(after) != len(before) {
		t.Fatalf("expected %d results after round-trip, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i].BaseID != after[i].BaseID {
			t.Errorf("result %d: expected BaseID %q, got %q", i, before[i].BaseID, after[i].BaseID)
		}
		if before[i].Score != after[i].Score {
			t.Errorf("result %d: expected score %f, got %f", i, before[i].Score, after[i].Score)
		}
	}
	if restored.DocCount() != idx.DocCount() {
		t.Errorf("expected DocCount %d after round-trip, got %d", idx.DocCount(), restored.DocCount())
	}
}

func TestDecodeRejectsWrongVersion(t *testing.T) {
	idx := buildTestIndex(t)
	snap := Encode(idx)
	snap.Version = FormatVersion + 1
	if _, err := Decode(snap, lang.NewRegistry()); err == nil {
		t.Error("expected an error decoding a snapshot with a mismatched version")
	}
}

func TestDecodeRejectsUnresolvedLanguage(t *testing.T) {
	idx := buildTestIndex(t)
	snap := Encode(idx)
	snap.LanguageTags = []string{"xx"}
	if _, err := Decode(snap, lang.NewRegistry()); err == nil {
		t.Error("expected an error decoding a snapshot naming an unregistered language tag")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	idx := buildTestIndex(t)
	path := t.TempDir() + "/index.json"
	if err := Save(idx, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	restored, err := Load(path, lang.NewRegistry())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.DocCount() != idx.DocCount() {
		t.Errorf("expected DocCount %d, got %d", idx.DocCount(), restored.DocCount())
	}
}
