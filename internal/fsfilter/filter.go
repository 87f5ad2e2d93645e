// Package fsfilter implements post-retrieval filtering and sorting over
// declared record fields: range, term-set, and boolean predicates, plus
// stable multi-key sort.
package fsfilter

import "sort"

// Predicate tests a single field value on a candidate's field map and
// reports whether the candidate passes.
type Predicate func(fields map[string]interface{}) bool

// Range builds a predicate accepting numeric values of field within
// [min, max] inclusive. Non-numeric or missing fields fail the
// predicate.
func Range(field string, min, max float64) Predicate {
	return func(fields map[string]interface{}) bool {
		v, ok := numericField(fields, field)
		if !ok {
			return false
		}
		return v >= min && v <= max
	}
}

// TermSet builds a predicate accepting values of field present in
// allowed. Values are compared via fmt-free type assertion to string;
// non-string or missing fields fail the predicate.
func TermSet(field string, allowed map[string]bool) Predicate {
	return func(fields map[string]interface{}) bool {
		raw, ok := fields[field]
		if !ok {
			return false
		}
		s, ok := raw.(string)
		if !ok {
			return false
		}
		return allowed[s]
	}
}

// Bool builds a predicate from a caller-supplied boolean test over the
// full field map, for conditions Range/TermSet cannot express.
func Bool(test func(fields map[string]interface{}) bool) Predicate {
	return Predicate(test)
}

func numericField(fields map[string]interface{}, field string) (float64, bool) {
	raw, ok := fields[field]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Apply runs every predicate in declared order against fields,
// short-circuiting (returning false) on the first failure.
func Apply(predicates []Predicate, fields map[string]interface{}) bool {
	for _, p := range predicates {
		if !p(fields) {
			return false
		}
	}
	return true
}

// Direction is a sort direction for one SortKey.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortKey names a field and the direction to sort it by.
type SortKey struct {
	Field     string
	Direction Direction
}

// Sortable is anything fsfilter can stably sort: Score for the default
// score-descending sort, and Field for SortKey-driven sorts.
type Sortable interface {
	Score() float64
	Field(name string) (interface{}, bool)
}

// SortByScoreDescending stably sorts items by descending score, the
// engine's default ordering when the caller supplies no sort keys.
func SortByScoreDescending(items []Sortable) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score() > items[j].Score()
	})
}

// SortByKeys stably sorts items by the given (field, direction) pairs,
// applied in order: earlier keys take priority, later keys break ties.
func SortByKeys(items []Sortable, keys []SortKey) {
	if len(keys) == 0 {
		SortByScoreDescending(items)
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		for _, k := range keys {
			vi, oki := items[i].Field(k.Field)
			vj, okj := items[j].Field(k.Field)
			cmp := compare(vi, oki, vj, okj)
			if cmp == 0 {
				continue
			}
			if oki != okj {
				return oki
			}
			if k.Direction == Descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

// compare orders two optional field values: missing values sort last,
// numeric values compare numerically, everything else falls back to
// string comparison.
func compare(a interface{}, okA bool, b interface{}, okB bool) int {
	if !okA && !okB {
		return 0
	}
	if !okA {
		return 1
	}
	if !okB {
		return -1
	}

	af, aIsNum := toFloat(a)
	bf, bIsNum := toFloat(b)
	if aIsNum && bIsNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	as, bs := toString(a), toString(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
