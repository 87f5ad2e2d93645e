package lang

import "testing"

func TestBasePhoneticDeterministic(t *testing.T) {
	b := NewBase("xx", "Test", []Capability{CapPhonetic}, nil)
	a := b.PhoneticCode("Robert")
	c := b.PhoneticCode("robert")
	if a != c {
		t.Errorf("expected phonetic code independent of case: %q vs %q", a, c)
	}
	if a == "" {
		t.Error("expected non-empty phonetic code")
	}
}

func TestSoundexKnownPairs(t *testing.T) {
	cases := []struct{ a, b string }{
		{"Robert", "Rupert"},
		{"Smith", "Smyth"},
	}
	b := NewBase("xx", "Test", []Capability{CapPhonetic}, nil)
	for _, c := range cases {
		if b.PhoneticCode(c.a) != b.PhoneticCode(c.b) {
			t.Errorf("expected %q and %q to share a phonetic code, got %q and %q",
				c.a, c.b, b.PhoneticCode(c.a), b.PhoneticCode(c.b))
		}
	}
}

func TestPhoneticDisabledWithoutCapability(t *testing.T) {
	b := NewBase("xx", "Test", nil, nil)
	if b.PhoneticCode("Robert") != "" {
		t.Error("expected empty phonetic code when capability not declared")
	}
}

func TestBaseIsValidSubstitutionQWERTY(t *testing.T) {
	b := NewBase("xx", "Test", []Capability{CapKeyboardNeighbor}, nil)
	if !b.IsValidSubstitution('q', 'w') {
		t.Error("expected 'w' to be a QWERTY neighbor of 'q'")
	}
	if b.IsValidSubstitution('q', 'm') {
		t.Error("expected 'm' not to be a QWERTY neighbor of 'q'")
	}
}

func TestWordVariantsScalesWithMode(t *testing.T) {
	b := NewBase("xx", "Test", nil, nil)
	fast := b.WordVariants("information", Fast)
	comprehensive := b.WordVariants("information", Comprehensive)
	if len(comprehensive) <= len(fast) {
		t.Errorf("expected comprehensive mode to generate more variants than fast: fast=%d comprehensive=%d",
			len(fast), len(comprehensive))
	}
}

func TestEnglishPluralVariant(t *testing.T) {
	e := NewEnglish(nil)
	variants := e.WordVariants("boxes", Balanced)
	found := false
	for _, v := range variants {
		if v == "box" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'box' among variants of 'boxes', got %v", variants)
	}
}

func TestEnglishSynonyms(t *testing.T) {
	e := NewEnglish(map[string][]string{"quick": {"speedy"}})
	syns := e.Synonyms("quick")
	if len(syns) != 1 || syns[0] != "speedy" {
		t.Errorf("expected custom synonym override, got %v", syns)
	}
}

func TestGermanNormalizeUmlauts(t *testing.T) {
	g := NewGerman(nil)
	got := g.Normalize("Straße")
	if got != "strasse" {
		t.Errorf("expected 'strasse', got %q", got)
	}
	got = g.Normalize("Müller")
	if got != "mueller" {
		t.Errorf("expected 'mueller', got %q", got)
	}
}

func TestGermanCompoundSplit(t *testing.T) {
	g := NewGerman(nil)
	parts := g.SplitCompoundWords("wasserdaten")
	if len(parts) != 2 {
		t.Fatalf("expected a 2-part compound split, got %v", parts)
	}
}

func TestGermanCompoundSplitUnknownWordReturnsWhole(t *testing.T) {
	g := NewGerman(nil)
	parts := g.SplitCompoundWords("xyzzyplugh")
	if len(parts) != 1 || parts[0] != "xyzzyplugh" {
		t.Errorf("expected unsplit word for unknown compound, got %v", parts)
	}
}

func TestGermanQWERTZNeighbors(t *testing.T) {
	g := NewGerman(nil)
	if !g.IsValidSubstitution('z', 'u') {
		t.Error("expected 'u' to be a QWERTZ neighbor of 'z' (German y/z swap)")
	}
}

func TestRegistryResolvesBuiltins(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Resolve("en"); !ok {
		t.Error("expected 'en' to resolve")
	}
	if _, ok := r.Resolve("de"); !ok {
		t.Error("expected 'de' to resolve")
	}
	if _, ok := r.Resolve("fr"); ok {
		t.Error("expected unregistered tag 'fr' not to resolve")
	}
}

func TestRegistryRegisterOverride(t *testing.T) {
	r := NewRegistry()
	custom := NewEnglish(map[string][]string{"custom": {"override"}})
	r.Register(custom)
	p, ok := r.Resolve("en")
	if !ok {
		t.Fatal("expected 'en' to resolve after override")
	}
	if p.Synonyms("custom")[0] != "override" {
		t.Error("expected overridden processor to be returned by Resolve")
	}
}
