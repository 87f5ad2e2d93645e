package fsquery

import (
	"strings"

	"github.com/Vedant9500/fuzzyfind/internal/phrase"
)

// stripStopWords removes every term present in stop (case-insensitive)
// from terms. If every term would be removed, it returns the original
// terms unchanged rather than leaving an empty query, per §4.10
// step 4 ("if stripping empties the query, restore the original").
func stripStopWords(terms []string, stop map[string]bool) []string {
	if len(stop) == 0 {
		return terms
	}
	var kept []string
	for _, t := range terms {
		if !stop[strings.ToLower(t)] {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return terms
	}
	return kept
}

// rejoin reconstructs a single canonical string from a Parsed query,
// for use as the cache key's query component.
func rejoin(p phrase.Parsed) string {
	var b strings.Builder
	for _, ph := range p.Phrases {
		b.WriteByte('"')
		b.WriteString(ph)
		b.WriteByte('"')
		b.WriteByte(' ')
	}
	b.WriteString(strings.Join(p.Terms, " "))
	return strings.TrimSpace(b.String())
}
