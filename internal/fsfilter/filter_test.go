package fsfilter

import "testing"

type testItem struct {
	score  float64
	fields map[string]interface{}
}

func (t testItem) Score() float64 { return t.score }
func (t testItem) Field(name string) (interface{}, bool) {
	v, ok := t.fields[name]
	return v, ok
}

func TestRangePredicate(t *testing.T) {
	p := Range("price", 10, 20)
	if !p(map[string]interface{}{"price": 15.0}) {
		t.Error("expected 15 to pass [10,20]")
	}
	if p(map[string]interface{}{"price": 25.0}) {
		t.Error("expected 25 to fail [10,20]")
	}
	if p(map[string]interface{}{}) {
		t.Error("expected missing field to fail")
	}
}

func TestTermSetPredicate(t *testing.T) {
	p := TermSet("category", map[string]bool{"books": true, "toys": true})
	if !p(map[string]interface{}{"category": "books"}) {
		t.Error("expected 'books' to pass")
	}
	if p(map[string]interface{}{"category": "electronics"}) {
		t.Error("expected 'electronics' to fail")
	}
}

func TestApplyShortCircuitsInOrder(t *testing.T) {
	calls := 0
	first := Bool(func(fields map[string]interface{}) bool {
		calls++
		return false
	})
	second := Bool(func(fields map[string]interface{}) bool {
		calls++
		return true
	})

	if Apply([]Predicate{first, second}, nil) {
		t.Error("expected Apply to fail when first predicate fails")
	}
	if calls != 1 {
		t.Errorf("expected short-circuit after first predicate, got %d calls", calls)
	}
}

func TestSortByScoreDescending(t *testing.T) {
	items := []Sortable{
		testItem{score: 0.5},
		testItem{score: 0.9},
		testItem{score: 0.1},
	}
	SortByScoreDescending(items)

	want := []float64{0.9, 0.5, 0.1}
	for i, w := range want {
		if items[i].Score() != w {
			t.Errorf("index %d: expected score %f, got %f", i, w, items[i].Score())
		}
	}
}

func TestSortByKeysAscendingThenDescendingTiebreak(t *testing.T) {
	items := []Sortable{
		testItem{score: 0.5, fields: map[string]interface{}{"category": "b", "price": 10.0}},
		testItem{score: 0.9, fields: map[string]interface{}{"category": "a", "price": 20.0}},
		testItem{score: 0.1, fields: map[string]interface{}{"category": "a", "price": 5.0}},
	}
	SortByKeys(items, []SortKey{
		{Field: "category", Direction: Ascending},
		{Field: "price", Direction: Descending},
	})

	gotCategories := make([]string, len(items))
	for i, it := range items {
		v, _ := it.Field("category")
		gotCategories[i] = v.(string)
	}
	if gotCategories[0] != "a" || gotCategories[1] != "a" || gotCategories[2] != "b" {
		t.Fatalf("expected category-ascending grouping, got %v", gotCategories)
	}
	// within category "a", price descending: 20 before 5
	first, _ := items[0].Field("price")
	second, _ := items[1].Field("price")
	if first.(float64) != 20.0 || second.(float64) != 5.0 {
		t.Errorf("expected price-descending tiebreak within category 'a', got %v then %v", first, second)
	}
}

func TestSortByKeysMissingFieldSortsLast(t *testing.T) {
	items := []Sortable{
		testItem{fields: map[string]interface{}{}},
		testItem{fields: map[string]interface{}{"price": 5.0}},
	}
	SortByKeys(items, []SortKey{{Field: "price", Direction: Ascending}})

	if _, ok := items[0].Field("price"); !ok {
		t.Error("expected item with the field present to sort before the one missing it")
	}
}
