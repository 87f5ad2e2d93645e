package fsindex

import (
	"sort"
	"strings"

	"github.com/Vedant9500/fuzzyfind/internal/bm25"
	"github.com/Vedant9500/fuzzyfind/internal/editdistance"
	"github.com/Vedant9500/fuzzyfind/internal/lang"
)

// fuzzyTermCap bounds how many candidate term keys the fuzzy strategy
// examines per query, scaled by corpus size.
func fuzzyTermCap(termCount int) int {
	if termCount > 100000 {
		return 1000
	}
	return 8000
}

// earlyStopSize is the candidate-map size past which the fuzzy
// strategy stops examining further terms, scaled by corpus size
// (big corpora look for 2x maxResults worth of high quality matches,
// small corpora can afford 3x).
func earlyStopSize(termCount, maxResults int) int {
	if termCount > 50000 {
		return maxResults * 2
	}
	return maxResults * 3
}

// Highlight marks a matched span within a result's original display
// text, in rune offsets.
type Highlight struct {
	Start int
	End   int
}

// SearchResult is one scored hit from Index.Search. The orchestrator
// (internal/fsquery) translates these into the engine's public Result
// type, attaching phrase-search and field-filter/sort behavior on top.
type SearchResult struct {
	BaseID       string
	Display      string
	IsSynonym    bool
	Score        float64
	Language     string
	MatchType    MatchType
	MatchedTerm  string
	MatchedField string
	FieldValues  map[string]string
	Highlights   []Highlight
}

// SearchOptions controls one Index.Search call.
type SearchOptions struct {
	MaxResults        int
	FuzzyThreshold    float64
	MatchTypes        map[MatchType]bool // nil/empty means all types allowed
	IncludeHighlights bool
}

// Search runs the strategy fan-out of §4.7 (exact, prefix, phonetic,
// synonym, compound, n-gram, fuzzy) against query, merges candidates
// by match-type priority, scores, filters by threshold/allowed types,
// and returns results sorted by score descending. Sorting, filters,
// caching, phrase routing, and truncation beyond raw scoring are the
// orchestrator's responsibility; Search always returns every surviving
// candidate.
func (idx *Index) Search(query string, opts SearchOptions) []SearchResult {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	p := idx.primaryProcessor()
	normQuery := normalizeKey(p.Normalize(query))
	if normQuery == "" {
		return nil
	}

	maxResults := opts.MaxResults
	if maxResults < 1 {
		maxResults = 10
	}
	threshold := opts.FuzzyThreshold
	if threshold == 0 {
		threshold = idx.cfg.FuzzyThreshold
	}

	cands := make(candidateMap)

	idx.runExact(normQuery, cands)
	idx.runPrefix(normQuery, cands)
	idx.runPhonetic(p, normQuery, cands)
	idx.runSynonym(normQuery, cands)
	idx.runCompound(normQuery, cands)

	highQuality := exactOrPrefixCount(cands)
	skipRemaining := highQuality >= maxResults && idx.hasExactFullMatch(cands, normQuery)

	if !skipRemaining {
		if highQuality >= 2*maxResults {
			if len(cands) < 3*maxResults {
				idx.runNGram(normQuery, cands)
				idx.runFuzzy(p, normQuery, cands, maxResults)
			}
		} else {
			idx.runNGram(normQuery, cands)
			idx.runFuzzy(p, normQuery, cands, maxResults)
		}
	}

	return idx.buildResults(normQuery, cands, threshold, opts)
}

func exactOrPrefixCount(cands candidateMap) int {
	n := 0
	for _, c := range cands {
		if c.Type == Exact || c.Type == Prefix {
			n++
		}
	}
	return n
}

func (idx *Index) hasExactFullMatch(cands candidateMap, normQuery string) bool {
	for _, c := range cands {
		if c.Type == Exact && normalizeKey(c.MatchedTerm) == normQuery {
			return true
		}
	}
	return false
}

func (idx *Index) runExact(normQuery string, cands candidateMap) {
	if idx.bloom != nil && !idx.bloom.MightContain(normQuery) {
		return
	}
	for _, id := range idx.termPostings.get(normQuery) {
		// A key that is only a generated prefix variant of the document's
		// tokens is a prefix hit, not an exact one.
		mt := Exact
		if doc, ok := idx.docs.get(id); ok && normalizeKey(doc.Normalized) != normQuery {
			own, prefixed := false, false
			for _, t := range doc.Tokens {
				k := normalizeKey(t)
				own = own || k == normQuery
				prefixed = prefixed || strings.HasPrefix(k, normQuery)
			}
			if !own && prefixed {
				mt = Prefix
			}
		}
		cands.offer(Candidate{DocID: id, Type: mt, MatchedTerm: normQuery})
	}
}

func (idx *Index) runPrefix(normQuery string, cands candidateMap) {
	if idx.trie != nil {
		for _, m := range idx.trie.FindWithPrefix(normQuery) {
			if m.Term == normQuery {
				continue
			}
			for id := range m.DocIDs {
				cands.offer(Candidate{DocID: id, Type: Prefix, MatchedTerm: m.Term})
			}
		}
		return
	}
	for key, ids := range idx.termPostings {
		if key == normQuery || !strings.HasPrefix(key, normQuery) {
			continue
		}
		for _, id := range ids {
			cands.offer(Candidate{DocID: id, Type: Prefix, MatchedTerm: key})
		}
	}
}

func (idx *Index) runPhonetic(p lang.Processor, normQuery string, cands candidateMap) {
	if !lang.HasCapability(p, lang.CapPhonetic) {
		return
	}
	code := normalizeKey(p.PhoneticCode(normQuery))
	if code == "" {
		return
	}
	for _, id := range idx.phoneticPostings.get(code) {
		cands.offer(Candidate{DocID: id, Type: Phonetic, MatchedTerm: code})
	}
}

func (idx *Index) runSynonym(normQuery string, cands candidateMap) {
	for _, id := range idx.synonymPostings.get(normQuery) {
		cands.offer(Candidate{DocID: id, Type: Synonym, MatchedTerm: normQuery})
	}
}

func (idx *Index) runCompound(normQuery string, cands candidateMap) {
	for _, id := range idx.compoundPostings.get(normQuery) {
		cands.offer(Candidate{DocID: id, Type: Compound, MatchedTerm: normQuery})
	}
}

func (idx *Index) runNGram(normQuery string, cands candidateMap) {
	grams := editdistance.NGrams(normQuery, idx.cfg.NgramSize)
	seen := make(map[int]struct{})
	for _, g := range grams {
		for _, id := range idx.ngramPostings.get(g) {
			seen[id] = struct{}{}
		}
	}
	for id := range seen {
		doc, ok := idx.docs.get(id)
		if !ok {
			continue
		}
		sim := editdistance.NGramSimilarity(normQuery, doc.Normalized, idx.cfg.NgramSize)
		cands.offer(Candidate{DocID: id, Type: NGram, MatchedTerm: doc.Normalized, NGramSim: sim})
	}
}

func (idx *Index) runFuzzy(p lang.Processor, normQuery string, cands candidateMap, maxResults int) {
	ceiling := idx.cfg.MaxEditDistance
	if ceiling < 1 {
		ceiling = 1
	}
	if len([]rune(normQuery)) <= 3 && ceiling < 2 {
		ceiling = 2
	}

	keys := idx.termPostings.keys()
	if idx.trie != nil && len(keys) > 50000 {
		pfx := normQuery
		if len(pfx) > 3 {
			pfx = pfx[:3]
		}
		var filtered []string
		for _, m := range idx.trie.FindWithPrefix(pfx) {
			filtered = append(filtered, m.Term)
		}
		if len(filtered) >= 100 {
			keys = filtered
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		return absInt(len(keys[i])-len(normQuery)) < absInt(len(keys[j])-len(normQuery))
	})

	useTransposition := lang.HasCapability(p, lang.CapTranspositions)
	termCap := fuzzyTermCap(len(idx.termPostings))
	stop := earlyStopSize(len(idx.termPostings), maxResults)

	examined := 0
	for _, key := range keys {
		if examined >= termCap || len(cands) >= stop {
			break
		}
		if absInt(len(key)-len(normQuery)) > ceiling {
			continue
		}
		examined++

		var d int
		if useTransposition {
			d = editdistance.BoundedDamerauLevenshtein(normQuery, key, ceiling)
		} else {
			d = editdistance.BoundedLevenshtein(normQuery, key, ceiling, nil)
		}
		if d > ceiling {
			continue
		}
		for _, id := range idx.termPostings.get(key) {
			cands.offer(Candidate{DocID: id, Type: Fuzzy, MatchedTerm: key, Distance: d})
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (idx *Index) buildResults(normQuery string, cands candidateMap, threshold float64, opts SearchOptions) []SearchResult {
	var maxRaw float64
	rawBM25 := make(map[int]float64)
	if idx.stats != nil {
		queryTokens := strings.Fields(normQuery)
		for _, c := range cands {
			doc, ok := idx.docs.get(c.DocID)
			if !ok {
				continue
			}
			var raw float64
			for _, qt := range queryTokens {
				tf := 0
				for _, t := range doc.Tokens {
					if t == qt {
						tf++
					}
				}
				raw += idx.stats.Score(qt, tf, len(doc.Tokens))
			}
			rawBM25[c.DocID] = raw
			if raw > maxRaw {
				maxRaw = raw
			}
		}
	}

	results := make([]SearchResult, 0, len(cands))
	for _, c := range cands {
		if opts.MatchTypes != nil && len(opts.MatchTypes) > 0 && !opts.MatchTypes[c.Type] {
			continue
		}
		doc, ok := idx.docs.get(c.DocID)
		if !ok {
			continue
		}

		matchedField := ""
		var fieldValues map[string]string
		fieldWeight := 1.0
		if idx.IsRecordMode() {
			fieldValues = idx.fieldData[lower(doc.BaseID)]
			matchedField = idx.matchedField(fieldValues, c.MatchedTerm, normQuery)
			fieldWeight = idx.fieldWeight(matchedField)
		}

		params := ScoreParams{
			MatchTypeScores:       idx.cfg.MatchTypeScores,
			FuzzyMin:              idx.cfg.FuzzyMin,
			Query:                 normQuery,
			MatchedText:           c.MatchedTerm,
			AlphanumericEnabled:   idx.cfg.AlphanumericEnabled,
			AlphaWeight:           idx.cfg.AlphaWeight,
			NumericWeight:         idx.cfg.NumericWeight,
			NumericEditMultiplier: idx.cfg.NumericEditMultiplier,
			BM25Enabled:           idx.stats != nil,
			BM25Weight:            idx.cfg.BM25Weight,
			FieldWeight:           fieldWeight,
		}
		if idx.stats != nil {
			params.BM25Norm = bm25.Normalize(rawBM25[c.DocID], maxRaw)
		}

		score := Score(c, params)
		if score < threshold {
			continue
		}

		res := SearchResult{
			BaseID:       doc.BaseID,
			Display:      doc.Original,
			IsSynonym:    c.Type == Synonym,
			Score:        score,
			Language:     doc.Language,
			MatchType:    c.Type,
			MatchedTerm:  c.MatchedTerm,
			MatchedField: matchedField,
			FieldValues:  fieldValues,
		}
		if opts.IncludeHighlights {
			res.Highlights = highlightSpans(doc.Original, c.MatchedTerm)
		}
		results = append(results, res)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func (idx *Index) matchedField(fieldValues map[string]string, matchedTerm, normQuery string) string {
	p := idx.primaryProcessor()
	needle := matchedTerm
	if needle == "" {
		needle = normQuery
	}
	for _, f := range idx.fieldNames {
		v, ok := fieldValues[f]
		if !ok {
			continue
		}
		if strings.Contains(p.Normalize(v), needle) {
			return f
		}
	}
	if len(idx.fieldNames) > 0 {
		return idx.fieldNames[0]
	}
	return ""
}

func highlightSpans(original, term string) []Highlight {
	if term == "" {
		return nil
	}
	lowerOriginal := strings.ToLower(original)
	i := strings.Index(lowerOriginal, strings.ToLower(term))
	if i < 0 {
		return nil
	}
	start := len([]rune(lowerOriginal[:i]))
	end := start + len([]rune(term))
	return []Highlight{{Start: start, End: end}}
}

