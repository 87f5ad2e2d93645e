package fsindex

// MatchType identifies which strategy produced a candidate. It drives
// both the base score (score.go) and merge priority below.
type MatchType int

const (
	NoMatch MatchType = iota
	Synonym
	Compound
	Phonetic
	NGram
	Fuzzy
	Substring
	Prefix
	Exact
)

// priority ranks match types for candidate merging: exact > prefix >
// substring > fuzzy > ngram > phonetic > compound > synonym. Higher
// numeric value wins, matching the const declaration order above.
func (m MatchType) priority() int { return int(m) }

func (m MatchType) String() string {
	switch m {
	case Exact:
		return "exact"
	case Prefix:
		return "prefix"
	case Substring:
		return "substring"
	case Fuzzy:
		return "fuzzy"
	case NGram:
		return "ngram"
	case Phonetic:
		return "phonetic"
	case Compound:
		return "compound"
	case Synonym:
		return "synonym"
	default:
		return "none"
	}
}

// Candidate is one document's best-observed match within a single
// search call.
type Candidate struct {
	DocID       int
	Type        MatchType
	MatchedTerm string  // the term/variant/phonetic/ngram/synonym key that matched
	Distance    int     // edit distance, for Fuzzy candidates; 0 otherwise
	NGramSim    float64 // n-gram Jaccard similarity, for NGram candidates
}

// candidateMap accumulates the single best Candidate per document id
// across every strategy run in a search call.
type candidateMap map[int]Candidate

// offer records c for c.DocID, replacing any existing candidate only
// if c has strictly higher merge priority, or equal priority with a
// strictly smaller fuzzy distance.
func (cm candidateMap) offer(c Candidate) {
	existing, ok := cm[c.DocID]
	if !ok {
		cm[c.DocID] = c
		return
	}
	if c.Type.priority() > existing.Type.priority() {
		cm[c.DocID] = c
		return
	}
	if c.Type.priority() == existing.Type.priority() && c.Type == Fuzzy && c.Distance < existing.Distance {
		cm[c.DocID] = c
	}
}
