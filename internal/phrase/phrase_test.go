package phrase

import (
	"reflect"
	"testing"
)

func TestParseQuotedAndBareTerms(t *testing.T) {
	p := Parse(`"new york" pizza`)
	if !p.HasPhrases() {
		t.Fatal("expected at least one phrase")
	}
	if !reflect.DeepEqual(p.Phrases, []string{"new york"}) {
		t.Errorf("expected phrase 'new york', got %v", p.Phrases)
	}
	if !reflect.DeepEqual(p.Terms, []string{"pizza"}) {
		t.Errorf("expected term 'pizza', got %v", p.Terms)
	}
}

func TestParseNoQuotes(t *testing.T) {
	p := Parse("quick brown fox")
	if p.HasPhrases() {
		t.Error("expected no phrases")
	}
	if !reflect.DeepEqual(p.Terms, []string{"quick", "brown", "fox"}) {
		t.Errorf("unexpected terms: %v", p.Terms)
	}
}

func TestParseUnterminatedQuote(t *testing.T) {
	p := Parse(`find "old man`)
	if !p.HasPhrases() || p.Phrases[0] != "old man" {
		t.Errorf("expected trailing unterminated quote treated as phrase, got %v", p.Phrases)
	}
	if !reflect.DeepEqual(p.Terms, []string{"find"}) {
		t.Errorf("expected leading bare term 'find', got %v", p.Terms)
	}
}

func TestMatchPhraseExactSubstring(t *testing.T) {
	m, ok := MatchPhrase("new york", "new york pizza", 0, 0)
	if !ok || m.Kind != ExactSubstring {
		t.Fatalf("expected exact substring match, got %+v ok=%v", m, ok)
	}
}

func TestMatchPhraseFuzzyAligned(t *testing.T) {
	// "new yorc" is one edit away from "york"
	m, ok := MatchPhrase("new yorc", "new york pizza", 0, 0)
	if !ok || m.Kind != FuzzyAligned {
		t.Fatalf("expected fuzzy-aligned match, got %+v ok=%v", m, ok)
	}
}

func TestMatchPhraseProximity(t *testing.T) {
	m, ok := MatchPhrase("new york", "new pizza york special", 0, 0)
	if !ok || m.Kind != Proximity {
		t.Fatalf("expected proximity match, got %+v ok=%v", m, ok)
	}
}

func TestMatchPhraseNoMatch(t *testing.T) {
	_, ok := MatchPhrase("new york", "completely unrelated text here", 0, 0)
	if ok {
		t.Error("expected no match")
	}
}

func TestMatchPhraseOutOfWindowFails(t *testing.T) {
	_, ok := MatchPhrase("new york", "new a b c d e f g york", 2, 0)
	if ok {
		t.Error("expected proximity match to fail outside the window")
	}
}

func TestExactScoresHigherThanProximity(t *testing.T) {
	exact, _ := MatchPhrase("new york", "new york pizza", 0, 0)
	prox, _ := MatchPhrase("new york", "new pizza york", 0, 0)
	if exact.Score <= prox.Score {
		t.Errorf("expected exact score %f > proximity score %f", exact.Score, prox.Score)
	}
}

func TestCombinePhraseAndTermBoost(t *testing.T) {
	both := Combine(0.8, 0.8, true, true)
	phraseOnly := Combine(0.8, 0, true, false)
	termOnly := Combine(0, 0.8, false, true)

	if both <= phraseOnly {
		t.Errorf("expected phrase+term combination %f to exceed phrase-only %f", both, phraseOnly)
	}
	if termOnly >= 0.8 {
		t.Errorf("expected term-only score to be demoted below raw term score, got %f", termOnly)
	}
}
