package main

import (
	"os"
	"path/filepath"
	"testing"

	fuzzyfind "github.com/Vedant9500/fuzzyfind"
)

func TestToItemsInfersFieldsFromEntries(t *testing.T) {
	entries := []corpusEntry{
		{Fields: map[string]string{"name": "iPhone", "description": "Smartphone"}},
		{Fields: map[string]string{"name": "MacBook", "description": "Laptop"}},
	}
	items, fields := toItems(entries)

	if len(items) != 2 {
		t.Fatalf("toItems() len = %d, want 2", len(items))
	}
	want := []string{"description", "name"}
	if len(fields) != len(want) || fields[0] != want[0] || fields[1] != want[1] {
		t.Fatalf("toItems() fields = %v, want %v", fields, want)
	}
}

func TestToItemsRawStringMode(t *testing.T) {
	entries := []corpusEntry{{Text: "apple"}, {Text: "banana"}}
	items, fields := toItems(entries)

	if fields != nil {
		t.Fatalf("toItems() fields = %v, want nil for raw-string corpus", fields)
	}
	if items[0].Text != "apple" || items[1].Text != "banana" {
		t.Fatalf("toItems() items = %v", items)
	}
}

func TestOpenEngineBuildsFromYAMLCorpus(t *testing.T) {
	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "corpus.yaml")
	if err := os.WriteFile(corpusPath, []byte("- text: apple\n- text: apricot\n- text: banana\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	eng, err := openEngine(corpusPath, fuzzyfind.DefaultConfig())
	if err != nil {
		t.Fatalf("openEngine() error = %v", err)
	}
	if eng.DocCount() != 3 {
		t.Fatalf("DocCount() = %d, want 3", eng.DocCount())
	}

	results := eng.Search("apple", fuzzyfind.SearchOptions{MaxResults: 1})
	if len(results) != 1 || results[0].BaseID != "apple" {
		t.Fatalf("Search(apple) = %v, want [apple]", results)
	}
}

func TestOpenEngineRoundTripsSnapshot(t *testing.T) {
	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "corpus.yaml")
	snapshotPath := filepath.Join(dir, "index.json")
	if err := os.WriteFile(corpusPath, []byte("- text: apple\n- text: banana\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	built, err := openEngine(corpusPath, fuzzyfind.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := built.Save(snapshotPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := openEngine(snapshotPath, fuzzyfind.DefaultConfig())
	if err != nil {
		t.Fatalf("openEngine(snapshot) error = %v", err)
	}
	if loaded.DocCount() != built.DocCount() {
		t.Fatalf("loaded DocCount() = %d, want %d", loaded.DocCount(), built.DocCount())
	}
}
