package fsindex

import (
	"math"
	"strings"

	"github.com/Vedant9500/fuzzyfind/internal/editdistance"
	"github.com/Vedant9500/fuzzyfind/internal/segment"
)

// DefaultMatchTypeScores returns the per-match-type base score table
// for one of the three performance presets. The source carries a
// range per type rather than a single constant; we pick one concrete
// value per preset and treat it as authoritative configuration, per
// the engine's decision to resolve that ambiguity explicitly rather
// than keep a hidden override.
func DefaultMatchTypeScores(preset string) map[MatchType]float64 {
	switch preset {
	case "fast":
		return map[MatchType]float64{
			Exact: 1.00, Prefix: 0.70, Substring: 0.75, Fuzzy: 0.60,
			Phonetic: 0.35, Synonym: 0.40, Compound: 0.60, NGram: 0.50,
		}
	case "comprehensive":
		return map[MatchType]float64{
			Exact: 1.00, Prefix: 0.90, Substring: 0.80, Fuzzy: 0.60,
			Phonetic: 0.50, Synonym: 0.40, Compound: 0.75, NGram: 0.50,
		}
	default: // "balanced"
		return map[MatchType]float64{
			Exact: 1.00, Prefix: 0.80, Substring: 0.78, Fuzzy: 0.60,
			Phonetic: 0.42, Synonym: 0.40, Compound: 0.68, NGram: 0.50,
		}
	}
}

// DefaultFuzzyThreshold returns the minimum score at or above which a
// candidate survives, per preset. Values follow the Open Question
// decision recorded in DESIGN.md (spec.md §9): fast is the strictest
// (0.4), balanced fixes the lower bound of the documented balanced
// range (0.3), and comprehensive is the most permissive (0.2), trading
// precision for recall.
func DefaultFuzzyThreshold(preset string) float64 {
	switch preset {
	case "fast":
		return 0.4
	case "comprehensive":
		return 0.2
	default: // "balanced"
		return 0.3
	}
}

// ScoreParams carries everything Score needs beyond the Candidate
// itself: the match-type base-score table, the query/matched text for
// decay and alphanumeric computations, and the optional BM25/field-
// weight blending inputs.
type ScoreParams struct {
	MatchTypeScores map[MatchType]float64
	FuzzyMin        float64

	Query       string
	MatchedText string

	AlphanumericEnabled   bool
	AlphaWeight           float64
	NumericWeight         float64
	NumericEditMultiplier float64

	BM25Enabled bool
	BM25Norm    float64
	BM25Weight  float64

	FieldWeight float64
}

// Score computes the final [0,1] score for a candidate: base score by
// match type, optional alphanumeric override for fuzzy candidates,
// optional BM25 blending, then the field-weight multiplier clamped to
// 1.0.
func Score(c Candidate, p ScoreParams) float64 {
	base := baseScore(c, p)

	if c.Type == Fuzzy && p.AlphanumericEnabled &&
		segment.IsAlphanumeric(p.Query) && segment.IsAlphanumeric(p.MatchedText) {
		base = alphanumericScore(p)
	}

	score := base
	if p.BM25Enabled {
		w := p.BM25Weight
		score = w*p.BM25Norm + (1-w)*base
	}

	fieldWeight := p.FieldWeight
	if fieldWeight == 0 {
		fieldWeight = 1.0
	}
	score *= fieldWeight
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func baseScore(c Candidate, p ScoreParams) float64 {
	table := p.MatchTypeScores
	if table == nil {
		table = DefaultMatchTypeScores("balanced")
	}
	switch c.Type {
	case Exact:
		return table[Exact]
	case Prefix:
		return table[Prefix]
	case Substring:
		return table[Substring]
	case Fuzzy:
		fuzzyMin := p.FuzzyMin
		qLen, mLen := runeLen(p.Query), runeLen(p.MatchedText)
		denom := qLen
		if mLen > denom {
			denom = mLen
		}
		if denom == 0 {
			denom = 1
		}
		decayed := table[Fuzzy] - float64(c.Distance)/float64(denom)*0.3
		if decayed < fuzzyMin {
			return fuzzyMin
		}
		return decayed
	case NGram:
		return c.NGramSim * table[NGram]
	case Phonetic:
		return table[Phonetic]
	case Compound:
		return table[Compound]
	case Synonym:
		return table[Synonym]
	default:
		return 0
	}
}

// alphanumericScore handles mixed alpha/numeric identifiers (e.g.
// "servicehandler14568") by scoring the alpha and numeric runs
// independently and recombining with configurable weights, flooring
// the result at 0.3.
func alphanumericScore(p ScoreParams) float64 {
	qAlpha, mAlpha := segment.AlphaOnly(p.Query), segment.AlphaOnly(p.MatchedText)
	qNum, mNum := segment.NumericOnly(p.Query), segment.NumericOnly(p.MatchedText)

	simAlpha := 1.0
	maxAlphaLen := runeLen(qAlpha)
	if runeLen(mAlpha) > maxAlphaLen {
		maxAlphaLen = runeLen(mAlpha)
	}
	if maxAlphaLen > 0 {
		d := editdistance.BoundedLevenshtein(qAlpha, mAlpha, maxAlphaLen, nil)
		simAlpha = editdistance.DistanceToSimilarity(d, runeLen(qAlpha), runeLen(mAlpha))
	}

	simNumeric := numericSimilarity(qNum, mNum, p.NumericEditMultiplier)

	alphaW, numW := p.AlphaWeight, p.NumericWeight
	if alphaW == 0 && numW == 0 {
		alphaW, numW = 0.7, 0.3
	}
	result := alphaW*simAlpha + numW*simNumeric
	if result < 0.3 {
		return 0.3
	}
	return result
}

// numericSimilarity scores the numeric runs leniently: containment
// counts as a full match (trailing/leading zero padding and partial
// id prefixes are common in identifier corpora); otherwise falls back
// to edit distance with an inflated budget.
func numericSimilarity(a, b string, multiplier float64) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 1.0
	}
	if multiplier <= 0 {
		multiplier = 1.5
	}
	maxLen := runeLen(a)
	if runeLen(b) > maxLen {
		maxLen = runeLen(b)
	}
	ceiling := int(math.Ceil(float64(maxLen) * multiplier))
	d := editdistance.BoundedLevenshtein(a, b, ceiling, nil)
	return editdistance.DistanceToSimilarity(d, runeLen(a), runeLen(b))
}

func runeLen(s string) int { return len([]rune(s)) }
