package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	fuzzyfind "github.com/Vedant9500/fuzzyfind"
)

// corpusEntry is one YAML record: either a bare Text string, or a
// Fields map for record-mode corpora. A corpus file is a flat list of
// these; Build infers record mode from whether any entry sets Fields.
type corpusEntry struct {
	Text   string            `yaml:"text,omitempty"`
	Fields map[string]string `yaml:"fields,omitempty"`
}

func loadCorpus(path string) ([]corpusEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	var entries []corpusEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	return entries, nil
}

// toItems converts raw corpus entries into engine items, and derives
// the declared field list (the union of keys across every record
// entry, in first-seen order) when any entry carries Fields.
func toItems(entries []corpusEntry) ([]fuzzyfind.Item, []string) {
	items := make([]fuzzyfind.Item, len(entries))
	var fields []string
	seen := map[string]bool{}
	for i, e := range entries {
		items[i] = fuzzyfind.Item{Text: e.Text, Fields: e.Fields}
		for _, key := range fieldOrder(e.Fields) {
			if !seen[key] {
				seen[key] = true
				fields = append(fields, key)
			}
		}
	}
	return items, fields
}

// fieldOrder returns m's keys in a stable order (sorted), since
// map[string]string iteration order is not deterministic and the
// declared field list must be the same across runs over the same file.
func fieldOrder(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
