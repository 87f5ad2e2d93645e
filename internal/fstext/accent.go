// Package fstext implements accent/diacritic folding for the engine's
// normalization pipeline.
//
// Folding is two-stage: a direct mapping table for precomposed
// Latin-1/Latin-Extended characters and ligatures that Unicode
// decomposition does not reduce to ASCII on its own (æ, œ, ß, þ), then
// Unicode NFD decomposition with combining marks (category Mn) removed
// and NFC recomposition. Results are memoized in a bounded LRU keyed by
// the exact input string.
package fstext

import (
	"container/list"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var ligatures = map[rune]string{
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ß': "ss",
	'þ': "th", 'Þ': "Th",
	'ð': "d", 'Ð': "D",
	'ø': "o", 'Ø': "O",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
}

// AccentNormalizer removes diacritics from text, memoizing results in a
// bounded LRU cache.
type AccentNormalizer struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

type accentEntry struct {
	key   string
	value string
}

// NewAccentNormalizer creates a normalizer whose cache holds at most
// capacity distinct input strings. A non-positive capacity disables
// caching (every call folds from scratch).
func NewAccentNormalizer(capacity int) *AccentNormalizer {
	return &AccentNormalizer{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Fold removes diacritics from s, returning the folded string.
func (a *AccentNormalizer) Fold(s string) string {
	if a.capacity <= 0 {
		return fold(s)
	}

	a.mu.Lock()
	if el, ok := a.items[s]; ok {
		a.order.MoveToFront(el)
		v := el.Value.(*accentEntry).value
		a.mu.Unlock()
		return v
	}
	a.mu.Unlock()

	folded := fold(s)

	a.mu.Lock()
	defer a.mu.Unlock()
	if el, ok := a.items[s]; ok {
		a.order.MoveToFront(el)
		return el.Value.(*accentEntry).value
	}
	el := a.order.PushFront(&accentEntry{key: s, value: folded})
	a.items[s] = el
	if a.order.Len() > a.capacity {
		oldest := a.order.Back()
		if oldest != nil {
			a.order.Remove(oldest)
			delete(a.items, oldest.Value.(*accentEntry).key)
		}
	}
	return folded
}

// Clear empties the cache.
func (a *AccentNormalizer) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items = make(map[string]*list.Element)
	a.order.Init()
}

func fold(s string) string {
	mapped := make([]rune, 0, len(s))
	for _, r := range s {
		if rep, ok := ligatures[r]; ok {
			mapped = append(mapped, []rune(rep)...)
			continue
		}
		mapped = append(mapped, r)
	}

	decomposed := norm.NFD.String(string(mapped))
	out := make([]rune, 0, len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		out = append(out, r)
	}
	return norm.NFC.String(string(out))
}
