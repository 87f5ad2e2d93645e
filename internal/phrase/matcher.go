package phrase

import (
	"strings"

	"github.com/Vedant9500/fuzzyfind/internal/editdistance"
)

// Kind identifies which strategy matched a phrase against a candidate.
type Kind int

const (
	NoMatch Kind = iota
	ExactSubstring
	FuzzyAligned
	Proximity
)

// baseScore per match kind, before the proximity bonus multiplier.
var baseScore = map[Kind]float64{
	ExactSubstring: 1.0,
	FuzzyAligned:   0.85,
	Proximity:      0.65,
}

// DefaultProximityBonus is the multiplier applied to every matched
// phrase's base score.
const DefaultProximityBonus = 1.5

// DefaultWindow bounds how far apart (in words) a phrase's words may be
// scattered in the candidate text for a proximity match to count.
const DefaultWindow = 4

// Match is the outcome of matching one phrase against one candidate
// string.
type Match struct {
	Kind  Kind
	Score float64
}

// MatchPhrase tries, in order: exact substring containment, per-word
// fuzzy alignment (each phrase word within edit distance 1 of some text
// word, in order), then bounded-window proximity (every phrase word
// appears somewhere in text within a window-sized span of word
// positions). phrase and text must already be normalized (lowercased)
// by the caller. bonus defaults to DefaultProximityBonus when <= 0;
// window defaults to DefaultWindow when <= 0.
func MatchPhrase(phraseText, text string, window int, bonus float64) (Match, bool) {
	if bonus <= 0 {
		bonus = DefaultProximityBonus
	}
	if window <= 0 {
		window = DefaultWindow
	}

	if strings.Contains(text, phraseText) {
		return Match{Kind: ExactSubstring, Score: clamp1(baseScore[ExactSubstring] * bonus)}, true
	}

	phraseWords := strings.Fields(phraseText)
	textWords := strings.Fields(text)
	if len(phraseWords) == 0 || len(textWords) == 0 {
		return Match{}, false
	}

	if positions, ok := alignFuzzy(phraseWords, textWords); ok {
		_ = positions
		return Match{Kind: FuzzyAligned, Score: clamp1(baseScore[FuzzyAligned] * bonus)}, true
	}

	if withinProximityWindow(phraseWords, textWords, window) {
		return Match{Kind: Proximity, Score: clamp1(baseScore[Proximity] * bonus)}, true
	}

	return Match{}, false
}

// alignFuzzy reports whether phraseWords appear as a contiguous run in
// textWords, each phrase word within edit distance 1 of the word at the
// same offset. This is stricter than Proximity: words must be adjacent,
// not merely nearby, distinguishing a near-verbatim phrase from a
// scattered one.
func alignFuzzy(phraseWords, textWords []string) ([]int, bool) {
	if len(phraseWords) > len(textWords) {
		return nil, false
	}
	scratch := editdistance.NewScratch(16)

	for start := 0; start+len(phraseWords) <= len(textWords); start++ {
		matched := true
		for j, pw := range phraseWords {
			if editdistance.BoundedLevenshtein(pw, textWords[start+j], 1, scratch) > 1 {
				matched = false
				break
			}
		}
		if matched {
			positions := make([]int, len(phraseWords))
			for j := range phraseWords {
				positions[j] = start + j
			}
			return positions, true
		}
	}
	return nil, false
}

// withinProximityWindow reports whether every phrase word occurs
// somewhere in textWords (in any order, possibly reused positions)
// such that the span between the earliest and latest matched position
// does not exceed window word-positions.
func withinProximityWindow(phraseWords, textWords []string, window int) bool {
	minPos, maxPos := -1, -1
	for _, pw := range phraseWords {
		pos := -1
		for i, tw := range textWords {
			if tw == pw {
				pos = i
				break
			}
		}
		if pos < 0 {
			return false
		}
		if minPos < 0 || pos < minPos {
			minPos = pos
		}
		if pos > maxPos {
			maxPos = pos
		}
	}
	return maxPos-minPos <= window
}

func clamp1(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}
