// Package lang defines the Language Processor capability interface that
// the engine's core consumes but never owns the contents of: per-language
// normalization, phonetic coding, compound splitting, word-variant
// expansion, synonym lookup, and keyboard-neighbor adjacency. The core
// only ever calls through this interface; language-specific knowledge
// (synonym lists, keyboard layouts, phonetic constants) lives in the
// concrete processors below.
package lang

import (
	"strings"

	"github.com/Vedant9500/fuzzyfind/internal/fstext"
)

// Capability names a single declarable language-processor feature.
type Capability string

const (
	CapPhonetic         Capability = "phonetic"
	CapCompound         Capability = "compound"
	CapSynonyms         Capability = "synonyms"
	CapKeyboardNeighbor Capability = "keyboard-neighbors"
	CapPartialWords     Capability = "partial-words"
	CapMissingLetters   Capability = "missing-letters"
	CapExtraLetters     Capability = "extra-letters"
	CapTranspositions   Capability = "transpositions"
)

// PerformanceMode controls how aggressively wordVariants expands a word
// into prefixes and affix forms.
type PerformanceMode int

const (
	Fast PerformanceMode = iota
	Balanced
	Comprehensive
)

// Processor is the fixed interface the engine's core consumes. It owns
// no state the core depends on beyond what these methods expose.
type Processor interface {
	// Tag returns the language tag (e.g. "en", "de").
	Tag() string
	// Name returns a human-readable name.
	Name() string
	// Capabilities returns the declared capability set.
	Capabilities() map[Capability]bool

	// Normalize lowercases, collapses whitespace, and applies
	// language-specific folding.
	Normalize(text string) string
	// PhoneticCode returns a stable per-language phonetic fingerprint,
	// or "" if the processor has no phonetic capability.
	PhoneticCode(word string) string
	// SplitCompoundWords decomposes word into meaningful sub-words.
	// Processors without compound capability return []string{word}.
	SplitCompoundWords(word string) []string
	// WordVariants generates morphological/affix variants plus
	// prefixes, scaled by mode.
	WordVariants(word string, mode PerformanceMode) []string
	// Synonyms returns fixed or configured synonyms for word.
	Synonyms(word string) []string
	// IsValidSubstitution reports whether b is a keyboard-neighbor
	// substitution for a on this language's layout.
	IsValidSubstitution(a, b byte) bool
}

// HasCapability is a convenience check usable on any Processor.
func HasCapability(p Processor, c Capability) bool {
	return p.Capabilities()[c]
}

func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

var accentFolder = fstext.NewAccentNormalizer(4096)

// foldAccents is shared by every processor's Normalize: lowercase, fold
// ligatures/diacritics, then collapse whitespace.
func foldAccents(text string) string {
	return collapseWhitespace(accentFolder.Fold(strings.ToLower(text)))
}
