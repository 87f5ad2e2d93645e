package fsindex

import (
	"strings"
	"sync"

	"github.com/Vedant9500/fuzzyfind/internal/bloom"
	"github.com/Vedant9500/fuzzyfind/internal/bm25"
	"github.com/Vedant9500/fuzzyfind/internal/fserr"
	"github.com/Vedant9500/fuzzyfind/internal/lang"
	"github.com/Vedant9500/fuzzyfind/internal/trie"
)

// invertedThreshold is the corpus size at which the trie is always
// built (the Bloom filter and BM25 stats only when configured), per the
// engine's unification of the hash-map and inverted-index paths. Below
// it, posting tables alone serve as the "hash index" unless BM25, the
// Bloom filter, or ForceInverted is requested.
const invertedThreshold = 10000

// Config holds the subset of the engine's public configuration that
// shapes index construction and scoring, translated from the caller's
// own configuration type to avoid a dependency cycle.
type Config struct {
	NgramSize       int
	MaxEditDistance int

	ForceInverted bool // explicit useInvertedIndex override
	UseBM25       bool
	BM25Params    bm25.Params
	UseBloom      bool
	BloomFPRate   float64

	Performance     string // fast | balanced | comprehensive
	MatchTypeScores map[MatchType]float64
	FuzzyThreshold  float64
	FuzzyMin        float64
	BM25Weight      float64

	AlphanumericEnabled   bool
	AlphaWeight           float64
	NumericWeight         float64
	NumericEditMultiplier float64
}

// Index is the engine's single multi-strategy index type: document
// store, five posting tables, and the optional trie/Bloom/BM25
// structures that are only populated once the corpus (or an explicit
// flag) crosses invertedThreshold.
type Index struct {
	mu sync.RWMutex

	cfg Config

	docs *docStore

	fieldNames   []string // declared record field names; nil in raw-string mode
	fieldWeights map[string]float64
	fieldData    map[string]map[string]string // lower(baseID) -> field -> original value

	termPostings     postingTable
	phoneticPostings postingTable
	ngramPostings    postingTable
	synonymPostings  postingTable
	compoundPostings postingTable

	trie  *trie.Trie
	bloom *bloom.Filter
	stats *bm25.Stats

	invertedActive bool

	processors []lang.Processor
}

// New creates an empty, valid index configured with cfg and the
// resolved language processors. Processors must be non-empty;
// resolving an empty/unknown language tag is the caller's
// responsibility (fserr.MissingProcessorError) before reaching here.
func New(cfg Config, processors []lang.Processor) (*Index, error) {
	if len(processors) == 0 {
		return nil, fserr.NewInvalidIndexError("build: no language processors resolved")
	}
	if cfg.NgramSize < 2 {
		cfg.NgramSize = 3
	}
	if cfg.MatchTypeScores == nil {
		cfg.MatchTypeScores = DefaultMatchTypeScores(cfg.Performance)
	}
	idx := &Index{
		cfg:              cfg,
		docs:             newDocStore(),
		fieldData:        make(map[string]map[string]string),
		termPostings:     make(postingTable),
		phoneticPostings: make(postingTable),
		ngramPostings:    make(postingTable),
		synonymPostings:  make(postingTable),
		compoundPostings: make(postingTable),
		processors:       processors,
	}
	return idx, nil
}

// UseFields switches the index into record mode with the given
// declared searchable field names and optional per-field weight
// multipliers (default 1.0).
func (idx *Index) UseFields(fields []string, weights map[string]float64) {
	idx.fieldNames = fields
	idx.fieldWeights = weights
}

func (idx *Index) fieldWeight(field string) float64 {
	if idx.fieldWeights == nil {
		return 1.0
	}
	if w, ok := idx.fieldWeights[field]; ok {
		return w
	}
	return 1.0
}

// IsRecordMode reports whether the index was configured with declared
// fields.
func (idx *Index) IsRecordMode() bool { return len(idx.fieldNames) > 0 }

// DocCount returns the number of live (non-deleted) documents.
func (idx *Index) DocCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.docs.liveCount()
}

// AllDocuments returns every live document, for callers (the phrase
// search driver) that need to scan base identifiers directly rather
// than go through a posting-table lookup.
func (idx *Index) AllDocuments() []Document {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.docs.all()
}

// FieldValuesFor returns the verbatim declared field values for
// baseID in record mode, or nil in raw-string mode / if absent.
func (idx *Index) FieldValuesFor(baseID string) map[string]string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.fieldData[lower(baseID)]
}

// Normalize exposes the primary language processor's normalize
// function, for callers (the phrase search driver, wildcard search)
// that need to preprocess text identically to the index's own
// ingestion pipeline.
func (idx *Index) Normalize(text string) string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.primaryProcessor().Normalize(text)
}

// primaryProcessor is the single processor used to normalize every
// item. Per-item language detection/selection across multiple
// declared languages is not attempted; the first resolved processor
// is authoritative for the whole corpus, consistent with "auto"
// falling back to the registry's first entry.
func (idx *Index) primaryProcessor() lang.Processor {
	return idx.processors[0]
}

// shouldInvert decides, after a mutation, whether the trie/Bloom/BM25
// structures should be (re)built: corpus size at or above
// invertedThreshold, or BM25/Bloom explicitly requested, or the caller
// forced it. This is the union resolution of the two competing
// thresholds noted in the engine's design notes.
func (idx *Index) shouldInvert() bool {
	return idx.cfg.ForceInverted || idx.cfg.UseBM25 || idx.cfg.UseBloom ||
		idx.docs.liveCount() >= invertedThreshold
}

// rebuildSecondary reconstructs the trie, Bloom filter, and BM25
// stats from the current posting tables and document store. Posting
// tables themselves are maintained incrementally by add/remove; only
// these derived structures are fully rebuilt, per §4.14.
func (idx *Index) rebuildSecondary() {
	idx.invertedActive = idx.shouldInvert()
	if !idx.invertedActive {
		idx.trie = nil
		idx.bloom = nil
		idx.stats = nil
		return
	}

	t := trie.New()
	for key, ids := range idx.termPostings {
		t.Insert(key, append([]int(nil), ids...))
	}
	idx.trie = t

	if idx.cfg.UseBloom {
		rate := idx.cfg.BloomFPRate
		if rate <= 0 {
			rate = 0.01
		}
		f := bloom.New(len(idx.termPostings), rate)
		for key := range idx.termPostings {
			f.Add(key)
		}
		idx.bloom = f
	} else {
		idx.bloom = nil
	}

	if idx.cfg.UseBM25 {
		stats := bm25.NewStats(idx.cfg.BM25Params)
		for _, d := range idx.docs.all() {
			stats.AddDocument(d.ID, d.Tokens)
		}
		idx.stats = stats
	} else {
		idx.stats = nil
	}
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Config returns a copy of the index's configuration, for callers that
// need to persist it (the snapshot encoder).
func (idx *Index) Config() Config {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.cfg
}

// FieldNames returns the declared record field names, or nil in
// raw-string mode.
func (idx *Index) FieldNames() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.fieldNames
}

// FieldWeights returns the declared per-field weight multipliers.
func (idx *Index) FieldWeights() map[string]float64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.fieldWeights
}

// LanguageTags returns the tag of every processor the index was built
// with, in order; a snapshot re-resolves processors by these tags
// against the host's registry on load.
func (idx *Index) LanguageTags() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	tags := make([]string, len(idx.processors))
	for i, p := range idx.processors {
		tags[i] = p.Tag()
	}
	return tags
}

// ExportDocuments returns every document, including tombstoned ones, so
// a snapshot can reproduce doc IDs exactly (posting tables reference
// them directly and IDs are never reused).
func (idx *Index) ExportDocuments() []Document {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]Document, len(idx.docs.docs))
	copy(out, idx.docs.docs)
	return out
}

// ExportFieldData returns the raw baseID-keyed field-value map backing
// record mode.
func (idx *Index) ExportFieldData() map[string]map[string]string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make(map[string]map[string]string, len(idx.fieldData))
	for k, v := range idx.fieldData {
		fields := make(map[string]string, len(v))
		for fk, fv := range v {
			fields[fk] = fv
		}
		out[k] = fields
	}
	return out
}

// PostingSnapshot is one posting table flattened to (key, docIDs) pairs,
// per the external snapshot format.
type PostingSnapshot struct {
	Key    string
	DocIDs []int
}

func exportTable(t postingTable) []PostingSnapshot {
	out := make([]PostingSnapshot, 0, len(t))
	for k, ids := range t {
		out = append(out, PostingSnapshot{Key: k, DocIDs: append([]int(nil), ids...)})
	}
	return out
}

func importTable(entries []PostingSnapshot) postingTable {
	t := make(postingTable, len(entries))
	for _, e := range entries {
		t[e.Key] = append([]int(nil), e.DocIDs...)
	}
	return t
}

// ExportPostings flattens all five posting tables for serialization.
func (idx *Index) ExportPostings() (term, phonetic, ngram, synonym, compound []PostingSnapshot) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return exportTable(idx.termPostings), exportTable(idx.phoneticPostings),
		exportTable(idx.ngramPostings), exportTable(idx.synonymPostings),
		exportTable(idx.compoundPostings)
}

// BloomBytes returns the active Bloom filter's packed bit array and
// sizing parameters, or ok=false if the index has none.
func (idx *Index) BloomBytes() (data []byte, numBits, numHashes uint64, n int, ok bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if idx.bloom == nil {
		return nil, 0, 0, 0, false
	}
	return idx.bloom.Bytes(), uint64(idx.bloom.NumBits()), uint64(idx.bloom.NumHashes()), idx.bloom.Len(), true
}

// Restore reconstructs an Index from previously exported state (a
// snapshot load). Secondary structures (trie, Bloom, BM25) are rebuilt
// deterministically from the restored posting tables and documents
// rather than round-tripped byte-for-byte, since rebuildSecondary is
// already the index's single source of truth for deriving them.
func Restore(cfg Config, processors []lang.Processor, fieldNames []string, fieldWeights map[string]float64,
	docs []Document, fieldData map[string]map[string]string,
	term, phonetic, ngram, synonym, compound []PostingSnapshot) (*Index, error) {
	idx, err := New(cfg, processors)
	if err != nil {
		return nil, err
	}
	idx.fieldNames = fieldNames
	idx.fieldWeights = fieldWeights

	idx.docs.docs = append([]Document(nil), docs...)
	idx.docs.baseIndex = make(map[string]int, len(docs))
	for _, d := range docs {
		if !d.Deleted {
			idx.docs.baseIndex[lower(d.BaseID)] = d.ID
		}
	}

	idx.fieldData = make(map[string]map[string]string, len(fieldData))
	for k, v := range fieldData {
		fields := make(map[string]string, len(v))
		for fk, fv := range v {
			fields[fk] = fv
		}
		idx.fieldData[k] = fields
	}

	idx.termPostings = importTable(term)
	idx.phoneticPostings = importTable(phonetic)
	idx.ngramPostings = importTable(ngram)
	idx.synonymPostings = importTable(synonym)
	idx.compoundPostings = importTable(compound)

	idx.rebuildSecondary()
	return idx, nil
}
