package phrase

// BoostPhraseAndTerm is the multiplier applied when a candidate matches
// both a quoted phrase and at least one bare term in the same query.
const BoostPhraseAndTerm = 1.2

// DemoteTermOnly is the multiplier applied when a candidate matches
// only bare terms, with no phrase match, in a query that also contains
// phrases.
const DemoteTermOnly = 0.8

// Combine folds a phrase match score and a term-pipeline score into a
// single candidate score, applying the phrase-query combination rule:
// both present boosts by BoostPhraseAndTerm, term-only is demoted by
// DemoteTermOnly, phrase-only is left unscaled.
func Combine(phraseScore, termScore float64, hasPhrase, hasTerm bool) float64 {
	switch {
	case hasPhrase && hasTerm:
		return clamp1((phraseScore + termScore) / 2 * BoostPhraseAndTerm)
	case hasPhrase:
		return phraseScore
	case hasTerm:
		return termScore * DemoteTermOnly
	default:
		return 0
	}
}
