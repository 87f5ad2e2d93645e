// Package phrase splits a query into quoted phrases and bare terms, and
// matches phrases against candidate text via exact substring, per-word
// fuzzy alignment, and bounded-window proximity matching.
package phrase

import "strings"

// Parsed is the result of splitting a raw query into quoted phrases and
// the remaining bare terms.
type Parsed struct {
	Phrases []string
	Terms   []string
}

// HasPhrases reports whether the query contained at least one quoted
// phrase.
func (p Parsed) HasPhrases() bool { return len(p.Phrases) > 0 }

// Parse splits query on double-quoted spans into phrases, collecting
// everything outside quotes as whitespace-separated bare terms. An
// unterminated trailing quote is treated as a phrase running to the end
// of the string.
func Parse(query string) Parsed {
	var phrases, terms []string
	var buf strings.Builder

	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '"' && !inQuote:
			terms = append(terms, strings.Fields(buf.String())...)
			buf.Reset()
			inQuote = true
		case c == '"' && inQuote:
			if phrase := strings.TrimSpace(buf.String()); phrase != "" {
				phrases = append(phrases, phrase)
			}
			buf.Reset()
			inQuote = false
		default:
			buf.WriteByte(c)
		}
	}

	if inQuote {
		if phrase := strings.TrimSpace(buf.String()); phrase != "" {
			phrases = append(phrases, phrase)
		}
	} else {
		terms = append(terms, strings.Fields(buf.String())...)
	}

	return Parsed{Phrases: phrases, Terms: terms}
}
