package trie

import "testing"

func TestInsertAndGet(t *testing.T) {
	tr := New()
	tr.Insert("apple", []int{1})
	tr.Insert("apple", []int{2})
	tr.Insert("apricot", []int{3})

	docs := tr.Get("apple")
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs for 'apple', got %d", len(docs))
	}
	if tr.Get("missing") != nil {
		t.Error("expected nil for missing term")
	}
}

func TestFindWithPrefix(t *testing.T) {
	tr := New()
	tr.Insert("apple", []int{1})
	tr.Insert("apricot", []int{2})
	tr.Insert("banana", []int{3})

	matches := tr.FindWithPrefix("ap")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches for prefix 'ap', got %d: %+v", len(matches), matches)
	}

	if matches := tr.FindWithPrefix("zzz"); matches != nil {
		t.Errorf("expected nil for unmatched prefix, got %+v", matches)
	}
}

func TestKeysConsistency(t *testing.T) {
	tr := New()
	terms := []string{"apple", "apricot", "banana"}
	for i, term := range terms {
		tr.Insert(term, []int{i})
	}
	keys := tr.Keys()
	if len(keys) != len(terms) {
		t.Fatalf("expected %d keys, got %d", len(terms), len(keys))
	}
	found := make(map[string]bool)
	for _, k := range keys {
		found[k] = true
	}
	for _, term := range terms {
		if !found[term] {
			t.Errorf("expected key %q to be present", term)
		}
	}
}

func TestRemove(t *testing.T) {
	tr := New()
	tr.Insert("apple", []int{1, 2})
	tr.Remove("apple", 1)
	docs := tr.Get("apple")
	if len(docs) != 1 {
		t.Fatalf("expected 1 doc remaining, got %d", len(docs))
	}
	tr.Remove("apple", 2)
	if tr.Get("apple") != nil {
		t.Error("expected term to be gone once all docs removed")
	}
	if tr.Len() != 0 {
		t.Errorf("expected trie size 0, got %d", tr.Len())
	}
}
