package fsindex

import (
	"strings"

	"github.com/Vedant9500/fuzzyfind/internal/editdistance"
	"github.com/Vedant9500/fuzzyfind/internal/fserr"
	"github.com/Vedant9500/fuzzyfind/internal/lang"
)

// Item is one unit of input to Build/Add: either a raw string (Text
// set, Fields nil) or a record (Fields set, keyed by the declared
// field names).
type Item struct {
	Text   string
	Fields map[string]string
}

// Build constructs a new index from scratch: empty items yield a
// valid empty index with the configured processors and posting
// tables, ready for Add/Search.
func Build(cfg Config, processors []lang.Processor, fields []string, fieldWeights map[string]float64, items []Item) (*Index, error) {
	idx, err := New(cfg, processors)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		idx.UseFields(fields, fieldWeights)
	}
	if err := idx.Add(items); err != nil {
		return nil, err
	}
	return idx, nil
}

// Add ingests items into the index: duplicate suppression by
// lowercased canonical id (a no-op, not an error, per the idempotence
// property), then normalization/variant/phonetic/ngram/synonym
// emission into the posting tables, then a full rebuild of the
// derived trie/Bloom/BM25 structures.
func (idx *Index) Add(items []Item) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for _, item := range items {
		if err := idx.validateItem(item); err != nil {
			return err
		}
	}

	for _, item := range items {
		baseID := idx.baseID(item)
		if _, exists := idx.docs.resolveBase(lower(baseID)); exists {
			continue // idempotent: already present
		}
		idx.ingest(item, baseID)
	}

	idx.rebuildSecondary()
	return nil
}

func (idx *Index) validateItem(item Item) error {
	if idx.IsRecordMode() {
		if item.Fields == nil {
			return fserr.NewFieldMismatchError("add", "index built in record mode but item has no fields")
		}
	} else if item.Fields != nil {
		return fserr.NewFieldMismatchError("add", "index built in raw-string mode but item has fields")
	}
	return nil
}

func (idx *Index) baseID(item Item) string {
	if !idx.IsRecordMode() {
		return item.Text
	}
	return item.Fields[idx.fieldNames[0]]
}

// ingest normalizes one item through the primary language processor
// and populates every posting table for it, plus fieldData for record
// items.
func (idx *Index) ingest(item Item, baseID string) {
	p := idx.primaryProcessor()

	searchText := idx.searchableText(item)
	normalized := p.Normalize(searchText)

	var phonetic string
	if lang.HasCapability(p, lang.CapPhonetic) {
		phonetic = p.PhoneticCode(normalized)
	}

	tokens := strings.Fields(normalized)
	var compoundParts []string
	if lang.HasCapability(p, lang.CapCompound) {
		for _, tok := range tokens {
			if parts := p.SplitCompoundWords(tok); len(parts) > 1 {
				compoundParts = append(compoundParts, parts...)
			}
		}
	}

	doc := Document{
		BaseID:        baseID,
		Original:      baseID,
		Normalized:    normalized,
		Phonetic:      phonetic,
		Language:      p.Tag(),
		CompoundParts: compoundParts,
		Tokens:        tokens,
	}
	docID := idx.docs.insert(doc)

	if idx.IsRecordMode() {
		idx.fieldData[lower(baseID)] = item.Fields
	}

	idx.indexTerms(docID, normalized, tokens, phonetic, compoundParts, p)
}

// searchableText is the text actually normalized and indexed: the raw
// string itself, or every declared field's value joined with a space
// so a query can match on any field.
func (idx *Index) searchableText(item Item) string {
	if !idx.IsRecordMode() {
		return item.Text
	}
	var parts []string
	for _, f := range idx.fieldNames {
		if v, ok := item.Fields[f]; ok && v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

func (idx *Index) indexTerms(docID int, normalized string, tokens []string, phonetic string, compoundParts []string, p lang.Processor) {
	idx.termPostings.add(normalizeKey(normalized), docID)

	mode := performanceMode(idx.cfg.Performance)
	for _, tok := range tokens {
		key := normalizeKey(tok)
		idx.termPostings.add(key, docID)

		for _, variant := range p.WordVariants(tok, mode) {
			idx.termPostings.add(normalizeKey(variant), docID)
		}

		for _, gram := range editdistance.NGrams(key, idx.cfg.NgramSize) {
			idx.ngramPostings.add(gram, docID)
		}

		if lang.HasCapability(p, lang.CapSynonyms) {
			for _, syn := range p.Synonyms(tok) {
				idx.synonymPostings.add(normalizeKey(syn), docID)
			}
		}
	}

	if phonetic != "" {
		idx.phoneticPostings.add(normalizeKey(phonetic), docID)
	}
	for _, part := range compoundParts {
		idx.compoundPostings.add(normalizeKey(part), docID)
	}
}

func performanceMode(preset string) lang.PerformanceMode {
	switch preset {
	case "fast":
		return lang.Fast
	case "comprehensive":
		return lang.Comprehensive
	default:
		return lang.Balanced
	}
}

// Remove deletes every id in ids: filters every posting list, the
// trie, and fieldData, rebuilds the derived structures, and clears
// nothing itself (cache invalidation is the caller's/fsquery's
// responsibility via the shared SearchCache). Absent ids are a no-op.
func (idx *Index) Remove(baseIDs []string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for _, baseID := range baseIDs {
		docID, ok := idx.docs.resolveBase(lower(baseID))
		if !ok {
			continue
		}
		idx.termPostings.removeDocEverywhere(docID)
		idx.phoneticPostings.removeDocEverywhere(docID)
		idx.ngramPostings.removeDocEverywhere(docID)
		idx.synonymPostings.removeDocEverywhere(docID)
		idx.compoundPostings.removeDocEverywhere(docID)
		delete(idx.fieldData, lower(baseID))
		idx.docs.remove(docID)
	}

	idx.rebuildSecondary()
}
