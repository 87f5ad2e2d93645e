package fsquery

import "sort"

// optionsDigest captures every option that affects the *shape* of the
// cached result set, for the cache key. Filters are deliberately
// excluded (closures aren't hashable); callers with custom filters are
// naturally routed around the cache (see Options.Filters check in
// Search), so this digest only needs to disambiguate the
// filter-free common path.
type optionsDigest struct {
	FuzzyThreshold    float64
	MatchTypes        []string
	IncludeHighlights bool
	SortKeys          []sortKeyDigest
	EnableStopWords   bool
}

type sortKeyDigest struct {
	Field     string
	Direction int
}

func cacheDigest(opts Options) optionsDigest {
	d := optionsDigest{
		FuzzyThreshold:    opts.FuzzyThreshold,
		IncludeHighlights: opts.IncludeHighlights,
		EnableStopWords:   opts.EnableStopWords,
	}
	for mt := range opts.MatchTypes {
		if opts.MatchTypes[mt] {
			d.MatchTypes = append(d.MatchTypes, mt.String())
		}
	}
	sort.Strings(d.MatchTypes)
	for _, k := range opts.Sort {
		d.SortKeys = append(d.SortKeys, sortKeyDigest{Field: k.Field, Direction: int(k.Direction)})
	}
	return d
}

func encodeCached(results []Result) []interface{} {
	out := make([]interface{}, len(results))
	for i, r := range results {
		out[i] = r
	}
	return out
}

func decodeCached(cached []interface{}) []Result {
	out := make([]Result, 0, len(cached))
	for _, c := range cached {
		if r, ok := c.(Result); ok {
			out = append(out, r)
		}
	}
	return out
}
