package lang

import "strings"

// qwertyNeighbors maps each lowercase letter to its physically adjacent
// keys on a standard QWERTY layout, used by Base.IsValidSubstitution.
var qwertyNeighbors = map[byte]string{
	'q': "wa", 'w': "qeas", 'e': "wrsd", 'r': "etdf", 't': "rygf",
	'y': "tuhg", 'u': "yijh", 'i': "uokj", 'o': "ipkl", 'p': "ol",
	'a': "qwsz", 's': "weadzx", 'd': "erfscx", 'f': "rtgdcv", 'g': "tyhfvb",
	'h': "yujgbn", 'j': "uikhnm", 'k': "iojlm", 'l': "opk",
	'z': "asx", 'x': "zsdc", 'c': "xdfv", 'v': "cfgb", 'b': "vghn",
	'n': "bhjm", 'm': "njk",
}

// Base is the default Language Processor: QWERTY keyboard neighbors, a
// simple soundex-like phonetic code, and generic affix/prefix variant
// generation. Language-specific processors embed Base and override
// whichever methods need language knowledge.
type Base struct {
	tag          string
	name         string
	capabilities map[Capability]bool
	synonymTable map[string][]string
}

// NewBase constructs a Base processor. synonymTable may be nil.
func NewBase(tag, name string, caps []Capability, synonymTable map[string][]string) *Base {
	capSet := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		capSet[c] = true
	}
	if synonymTable == nil {
		synonymTable = map[string][]string{}
	}
	return &Base{tag: tag, name: name, capabilities: capSet, synonymTable: synonymTable}
}

func (b *Base) Tag() string                         { return b.tag }
func (b *Base) Name() string                        { return b.name }
func (b *Base) Capabilities() map[Capability]bool   { return b.capabilities }
func (b *Base) Normalize(text string) string        { return foldAccents(text) }
func (b *Base) SplitCompoundWords(word string) []string { return []string{word} }

func (b *Base) Synonyms(word string) []string {
	if !b.capabilities[CapSynonyms] {
		return nil
	}
	return b.synonymTable[strings.ToLower(word)]
}

// mergeSynonyms layers tables in order (a later table's entry for a
// key wins over an earlier one, so caller-supplied custom synonyms
// override the built-in list) and then adds the reciprocal edge for
// every entry: a configured "car"->["automobile"] also produces
// "automobile"->["car"]. Indexing only ever walks a document's own
// tokens through Synonyms (see fsindex.indexTerms), so without the
// reciprocal edge a document containing "automobile" would never be
// reachable by searching "car" even though the two are configured as
// synonyms of each other.
func mergeSynonyms(tables ...map[string][]string) map[string][]string {
	merged := make(map[string][]string)
	for _, t := range tables {
		for k, v := range t {
			merged[strings.ToLower(k)] = v
		}
	}

	type edge struct{ from, to string }
	var reciprocals []edge
	for k, vs := range merged {
		for _, v := range vs {
			reciprocals = append(reciprocals, edge{from: strings.ToLower(v), to: k})
		}
	}
	for _, e := range reciprocals {
		if !containsFold(merged[e.from], e.to) {
			merged[e.from] = append(merged[e.from], e.to)
		}
	}
	return merged
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func (b *Base) IsValidSubstitution(a, b2 byte) bool {
	if !b.capabilities[CapKeyboardNeighbor] {
		return false
	}
	neighbors, ok := qwertyNeighbors[a]
	if !ok {
		return false
	}
	return strings.IndexByte(neighbors, b2) >= 0
}

// PhoneticCode implements a simple soundex-like scheme: first letter
// kept verbatim, subsequent consonants mapped to one of six digit
// classes, vowels and 'h'/'w' dropped, adjacent duplicate digits
// collapsed, padded/truncated to 4 characters.
func (b *Base) PhoneticCode(word string) string {
	if !b.capabilities[CapPhonetic] {
		return ""
	}
	return soundex(word)
}

var soundexClass = map[byte]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

func soundex(word string) string {
	lower := strings.ToLower(word)
	var letters []byte
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'z' {
			letters = append(letters, c)
		}
	}
	if len(letters) == 0 {
		return ""
	}

	code := make([]byte, 0, 4)
	code = append(code, upper(letters[0]))
	lastClass := soundexClass[letters[0]]

	for i := 1; i < len(letters) && len(code) < 4; i++ {
		c := letters[i]
		class, isConsonant := soundexClass[c]
		if !isConsonant {
			if c != 'h' && c != 'w' {
				lastClass = 0
			}
			continue
		}
		if class != lastClass {
			code = append(code, class)
		}
		lastClass = class
	}
	for len(code) < 4 {
		code = append(code, '0')
	}
	return string(code)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// WordVariants generates the word itself, a stepped sequence of
// prefixes, and (in balanced/comprehensive modes) simple affix-stripped
// forms. The number of prefixes generated scales with mode.
func (b *Base) WordVariants(word string, mode PerformanceMode) []string {
	word = strings.ToLower(word)
	if word == "" {
		return nil
	}

	variants := []string{word}
	variants = append(variants, prefixes(word, mode)...)

	if mode != Fast {
		variants = append(variants, affixVariants(word)...)
	}

	return dedupeStrings(variants)
}

// prefixes returns a bounded set of leading substrings of word. Fast
// mode emits only a couple of short prefixes; balanced steps through
// the word; comprehensive emits nearly every prefix length up to a cap.
func prefixes(word string, mode PerformanceMode) []string {
	runes := []rune(word)
	n := len(runes)
	if n <= 1 {
		return nil
	}

	var lengths []int
	switch mode {
	case Fast:
		for _, l := range []int{2, 3} {
			if l < n {
				lengths = append(lengths, l)
			}
		}
	case Balanced:
		step := 1
		if n > 8 {
			step = 2
		}
		for l := 2; l < n; l += step {
			lengths = append(lengths, l)
		}
	default: // Comprehensive
		cap := n - 1
		if cap > 12 {
			cap = 12
		}
		for l := 1; l <= cap; l++ {
			lengths = append(lengths, l)
		}
	}

	out := make([]string, 0, len(lengths))
	for _, l := range lengths {
		out = append(out, string(runes[:l]))
	}
	return out
}

// commonSuffixes is a generic (language-agnostic) affix list used by
// Base.WordVariants. English keeps it and adds its own plural stripping;
// German uses Base.WordVariants as is.
var commonSuffixes = []string{"ing", "ed", "es", "s", "er", "ly"}

func affixVariants(word string) []string {
	var out []string
	for _, suf := range commonSuffixes {
		if strings.HasSuffix(word, suf) && len(word) > len(suf)+1 {
			out = append(out, word[:len(word)-len(suf)])
		}
	}
	return out
}

func dedupeStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
