package fsquery

import (
	"strings"

	"github.com/Vedant9500/fuzzyfind/internal/fsindex"
	"github.com/Vedant9500/fuzzyfind/internal/phrase"
)

// searchWithPhrases implements §4.11: every quoted phrase is matched
// against each document's normalized text via the phrase matcher
// (exact substring, then fuzzy-aligned, then proximity); the
// remaining bare terms are scored through the normal strategy
// pipeline; and a document matching both is boosted, one matching only
// terms is demoted, per phrase.Combine.
func (o *Orchestrator) searchWithPhrases(parsed phrase.Parsed, opts Options) []Result {
	termQuery := strings.Join(parsed.Terms, " ")
	termResults := make(map[string]fsindex.SearchResult)
	if termQuery != "" {
		for _, r := range o.searchTerms(termQuery, opts) {
			termResults[r.BaseID] = r.SearchResult
		}
	}

	threshold := opts.FuzzyThreshold

	var out []Result
	for _, doc := range o.index.AllDocuments() {
		phraseScore, hasPhrase := matchAllPhrases(parsed.Phrases, doc.Normalized, opts)
		termResult, hasTerm := termResults[doc.BaseID]

		if !hasPhrase && !hasTerm {
			continue
		}

		termScore := 0.0
		if hasTerm {
			termScore = termResult.Score
		}
		combined := phrase.Combine(phraseScore, termScore, hasPhrase, hasTerm)
		if combined < threshold {
			continue
		}

		res := Result{PhraseMatched: hasPhrase}
		if hasTerm {
			res.SearchResult = termResult
		} else {
			res.SearchResult = fsindex.SearchResult{
				BaseID:      doc.BaseID,
				Display:     doc.Original,
				Language:    doc.Language,
				MatchType:   fsindex.Substring,
				FieldValues: o.index.FieldValuesFor(doc.BaseID),
			}
		}
		res.Score = combined
		out = append(out, res)
	}
	return out
}

func matchAllPhrases(phrases []string, normalizedText string, opts Options) (float64, bool) {
	if len(phrases) == 0 {
		return 0, false
	}
	var sum float64
	for _, ph := range phrases {
		m, ok := phrase.MatchPhrase(strings.ToLower(ph), normalizedText, opts.ProximityWindow, opts.ProximityBonus)
		if !ok {
			return 0, false
		}
		sum += m.Score
	}
	return sum / float64(len(phrases)), true
}
