package lang

import "strings"

// englishSynonyms is a small built-in synonym table; callers can layer
// additional custom synonyms on top via the engine's configuration.
var englishSynonyms = map[string][]string{
	"file":     {"document"},
	"folder":   {"directory"},
	"picture":  {"image", "photo"},
	"quick":    {"fast", "rapid"},
	"big":      {"large"},
	"small":    {"tiny", "little"},
	"error":    {"bug", "issue"},
	"settings": {"preferences", "config"},
}

var englishCapabilities = []Capability{
	CapPhonetic, CapSynonyms, CapKeyboardNeighbor,
	CapPartialWords, CapMissingLetters, CapExtraLetters, CapTranspositions,
}

// English is the English-language processor: soundex phonetic coding,
// QWERTY keyboard neighbors, and English-specific plural stripping
// added on top of Base's generic affix list.
type English struct {
	*Base
}

// NewEnglish constructs the English processor. extraSynonyms is merged
// on top of the built-in table (caller entries win on conflict); every
// entry, built-in or custom, is made bidirectional by mergeSynonyms so
// a query for either side of a configured pair reaches documents
// containing the other.
func NewEnglish(extraSynonyms map[string][]string) *English {
	table := mergeSynonyms(englishSynonyms, extraSynonyms)
	return &English{Base: NewBase("en", "English", englishCapabilities, table)}
}

// WordVariants layers English plural stripping on top of Base's prefix
// and generic affix variants.
func (e *English) WordVariants(word string, mode PerformanceMode) []string {
	variants := e.Base.WordVariants(word, mode)
	word = strings.ToLower(word)

	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		variants = append(variants, word[:len(word)-3]+"y")
	case strings.HasSuffix(word, "es") && len(word) > 3:
		variants = append(variants, word[:len(word)-2])
	case strings.HasSuffix(word, "s") && len(word) > 2 && !strings.HasSuffix(word, "ss"):
		variants = append(variants, word[:len(word)-1])
	}

	return dedupeStrings(variants)
}
