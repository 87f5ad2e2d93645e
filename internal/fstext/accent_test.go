package fstext

import "testing"

func TestFoldLigaturesAndDiacritics(t *testing.T) {
	cases := map[string]string{
		"café":     "cafe",
		"naïve":    "naive",
		"Zürich":   "Zurich",
		"Straße":   "Strasse",
		"Müller":   "Muller",
		"œuvre":    "oeuvre",
		"Þórr":     "Thorr",
		"résumé":   "resume",
		"no-accent": "no-accent",
	}
	n := NewAccentNormalizer(8)
	for in, want := range cases {
		if got := n.Fold(in); got != want {
			t.Errorf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAccentNormalizerCacheEviction(t *testing.T) {
	n := NewAccentNormalizer(2)
	n.Fold("café")
	n.Fold("naïve")
	n.Fold("Zürich") // evicts "café"

	if n.order.Len() != 2 {
		t.Errorf("expected cache size 2, got %d", n.order.Len())
	}
	if _, ok := n.items["café"]; ok {
		t.Error("expected 'café' to have been evicted")
	}
}

func TestAccentNormalizerDisabledCache(t *testing.T) {
	n := NewAccentNormalizer(0)
	if got := n.Fold("café"); got != "cafe" {
		t.Errorf("Fold with disabled cache = %q, want %q", got, "cafe")
	}
	if len(n.items) != 0 {
		t.Error("disabled cache should never populate items")
	}
}
