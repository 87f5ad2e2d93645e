package fuzzyfind

import (
	"strings"

	"github.com/Vedant9500/fuzzyfind/internal/fserr"
	"github.com/Vedant9500/fuzzyfind/internal/lang"
)

// normalizeOverride wraps a lang.Processor, substituting a
// caller-supplied normalizer for the processor's own Normalize. Every
// other capability (phonetic coding, compound splitting, word variants,
// synonyms, keyboard neighbors) is delegated unchanged, since
// customNormalizer's stated purpose is to override tokenization/folding
// only, not the rest of a language's behavior.
type normalizeOverride struct {
	lang.Processor
	fn func(string) string
}

func (n normalizeOverride) Normalize(text string) string { return n.fn(text) }

// languageAliases maps human-readable language names (and a couple of
// common alternate codes) onto the two-letter tags newBuiltinProcessor
// and lang.Registry both key on. Anything not listed here must already
// be one of those tags ("en", "de") or a tag a caller registered
// directly on the Registry.
var languageAliases = map[string]string{
	"english": "en",
	"eng":     "en",
	"german":  "de",
	"deutsch": "de",
	"ger":     "de",
}

func normalizeLanguageTag(tag string) string {
	lower := strings.ToLower(strings.TrimSpace(tag))
	if alias, ok := languageAliases[lower]; ok {
		return alias
	}
	return lower
}

// resolveProcessors resolves each of languages to a lang.Processor,
// accepting the registry's own tags ("en", "de", "auto") plus the
// human-readable aliases in languageAliases ("english", "german", ...).
// Any other tag must already be registered on registry (e.g. a
// caller-supplied custom Processor) or resolution fails with a
// MissingProcessorError.
func resolveProcessors(registry *lang.Registry, languages []string, customSynonyms map[string][]string, customNormalizer func(string) string) ([]lang.Processor, []string, error) {
	tags := make([]string, len(languages))
	for i, t := range languages {
		tags[i] = normalizeLanguageTag(t)
	}
	if len(tags) == 0 || (len(tags) == 1 && tags[0] == "auto") {
		// Auto-detection over a sampled corpus prefix is not
		// implemented; the primary-processor simplification already
		// applies, so auto falls back to the registry's base English
		// processor.
		tags = []string{"en"}
	}

	processors := make([]lang.Processor, 0, len(tags))
	for _, tag := range tags {
		p, ok := registry.Resolve(tag)
		if !ok {
			p = newBuiltinProcessor(tag, customSynonyms)
			if p == nil {
				return nil, nil, fserr.NewMissingProcessorError(tag)
			}
			registry.Register(p)
		} else if len(customSynonyms) > 0 {
			if rebuilt := newBuiltinProcessor(tag, customSynonyms); rebuilt != nil {
				p = rebuilt
				registry.Register(p)
			}
		}
		if customNormalizer != nil {
			p = normalizeOverride{Processor: p, fn: customNormalizer}
		}
		processors = append(processors, p)
	}
	return processors, tags, nil
}

func newBuiltinProcessor(tag string, customSynonyms map[string][]string) lang.Processor {
	switch tag {
	case "en":
		return lang.NewEnglish(customSynonyms)
	case "de":
		return lang.NewGerman(customSynonyms)
	default:
		return nil
	}
}
