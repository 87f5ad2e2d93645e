package lang

import "strings"

var germanUmlautFold = map[rune]string{
	'ä': "ae", 'ö': "oe", 'ü': "ue", 'Ä': "Ae", 'Ö': "Oe", 'Ü': "Ue",
	'ß': "ss",
}

// qwertzNeighbors is QWERTY with the y/z positions swapped, matching
// the German keyboard layout.
var qwertzNeighbors = func() map[byte]string {
	m := make(map[byte]string, len(qwertyNeighbors))
	for k, v := range qwertyNeighbors {
		m[k] = v
	}
	m['y'], m['z'] = m['z'], m['y']
	for k, v := range m {
		m[k] = strings.Map(func(r rune) rune {
			switch r {
			case 'y':
				return 'z'
			case 'z':
				return 'y'
			default:
				return r
			}
		}, v)
	}
	return m
}()

// germanLexicon is a small bounded set of known German word stems used
// by the compound splitter; a real deployment supplies a much larger
// list via a custom Language Processor, per the engine's plug-in model.
var germanLexicon = map[string]bool{
	"arbeit": true, "zeit": true, "haus": true, "tür": true, "tuer": true,
	"schlüssel": true, "schluessel": true, "wasser": true, "sprache": true,
	"geschwindigkeit": true, "sicherheit": true, "verwaltung": true,
	"system": true, "daten": true, "bank": true, "buch": true, "stadt": true,
	"freund": true, "kraft": true, "fahrzeug": true, "sitz": true,
}

var germanCapabilities = []Capability{
	CapPhonetic, CapCompound, CapSynonyms, CapKeyboardNeighbor,
	CapPartialWords, CapMissingLetters, CapExtraLetters,
}

// German is the German-language processor: umlaut/ß folding, QWERTZ
// keyboard neighbors, and a lexicon-bounded compound-word splitter,
// central to German search quality per the engine's design.
type German struct {
	*Base
}

// NewGerman constructs the German processor. extraSynonyms is made
// bidirectional by mergeSynonyms, matching English's handling (see
// NewEnglish).
func NewGerman(extraSynonyms map[string][]string) *German {
	table := mergeSynonyms(extraSynonyms)
	return &German{Base: NewBase("de", "German", germanCapabilities, table)}
}

// Normalize applies umlaut/ß folding (ä→ae, ß→ss) ahead of the generic
// accent fold, then lowercases and collapses whitespace.
func (g *German) Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if rep, ok := germanUmlautFold[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}
	return foldAccents(b.String())
}

func (g *German) IsValidSubstitution(a, b byte) bool {
	if !g.Capabilities()[CapKeyboardNeighbor] {
		return false
	}
	neighbors, ok := qwertzNeighbors[a]
	if !ok {
		return false
	}
	return strings.IndexByte(neighbors, b) >= 0
}

// SplitCompoundWords tries each split position, longest left part
// first, and returns the first two-part split whose left and right
// remainders are both known lexicon entries (at least 3 runes each),
// lowercased. If none is found, returns []string{word}.
func (g *German) SplitCompoundWords(word string) []string {
	lower := strings.ToLower(word)
	runes := []rune(lower)
	n := len(runes)
	if n < 6 {
		return []string{word}
	}

	for split := n - 3; split >= 3; split-- {
		left := string(runes[:split])
		right := string(runes[split:])
		if germanLexicon[left] && germanLexicon[right] {
			return []string{left, right}
		}
	}
	return []string{word}
}
