// Package fsnapshot encodes and decodes an index's full state as JSON,
// per the engine's external snapshot format: a version tag, the
// document store, every posting table flattened to (key, docIDs) pairs,
// BM25 configuration (restored by rebuilding stats from the document
// token lists, not by round-tripping internal counters), the Bloom
// filter's packed bytes and sizing parameters if one was built, and the
// language tags used. Language processors themselves are never
// serialized; they are re-resolved by tag against the caller's
// registry on load.
package fsnapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Vedant9500/fuzzyfind/internal/fserr"
	"github.com/Vedant9500/fuzzyfind/internal/fsindex"
	"github.com/Vedant9500/fuzzyfind/internal/lang"
)

// FormatVersion is bumped whenever the on-disk shape changes
// incompatibly. Load rejects any other value.
const FormatVersion = 1

// Snapshot is the full on-disk representation of one index.
type Snapshot struct {
	Version int `json:"version"`

	Config       fsindex.Config      `json:"config"`
	FieldNames   []string            `json:"field_names,omitempty"`
	FieldWeights map[string]float64  `json:"field_weights,omitempty"`
	LanguageTags []string            `json:"language_tags"`

	Documents []fsindex.Document            `json:"documents"`
	FieldData map[string]map[string]string `json:"field_data,omitempty"`

	TermPostings     []fsindex.PostingSnapshot `json:"term_postings"`
	PhoneticPostings []fsindex.PostingSnapshot `json:"phonetic_postings"`
	NGramPostings    []fsindex.PostingSnapshot `json:"ngram_postings"`
	SynonymPostings  []fsindex.PostingSnapshot `json:"synonym_postings"`
	CompoundPostings []fsindex.PostingSnapshot `json:"compound_postings"`

	Bloom *BloomSnapshot `json:"bloom,omitempty"`
}

// BloomSnapshot is the Bloom filter's packed bit array plus the sizing
// parameters needed to reconstruct it, per §6's external format.
type BloomSnapshot struct {
	Data      []byte `json:"data"`
	NumBits   uint64 `json:"num_bits"`
	NumHashes uint64 `json:"num_hashes"`
	N         int    `json:"n"`
}

// Encode captures idx's full state into a Snapshot.
func Encode(idx *fsindex.Index) Snapshot {
	term, phonetic, ngram, synonym, compound := idx.ExportPostings()
	snap := Snapshot{
		Version:      FormatVersion,
		Config:       idx.Config(),
		FieldNames:   idx.FieldNames(),
		FieldWeights: idx.FieldWeights(),
		LanguageTags: idx.LanguageTags(),
		Documents:    idx.ExportDocuments(),
		FieldData:    idx.ExportFieldData(),

		TermPostings:     term,
		PhoneticPostings: phonetic,
		NGramPostings:    ngram,
		SynonymPostings:  synonym,
		CompoundPostings: compound,
	}
	if data, numBits, numHashes, n, ok := idx.BloomBytes(); ok {
		snap.Bloom = &BloomSnapshot{Data: data, NumBits: numBits, NumHashes: numHashes, N: n}
	}
	return snap
}

// Decode rebuilds an Index from a Snapshot, resolving each of
// snap.LanguageTags against registry. A snapshot naming a tag the
// registry doesn't carry is a missing-processor condition, fatal to the
// load per §7.
func Decode(snap Snapshot, registry *lang.Registry) (*fsindex.Index, error) {
	if snap.Version != FormatVersion {
		return nil, fserr.NewSnapshotError("decode", fmt.Errorf("unsupported version %d (want %d)", snap.Version, FormatVersion))
	}
	if len(snap.LanguageTags) == 0 {
		return nil, fserr.NewSnapshotError("decode", fmt.Errorf("no language tags recorded"))
	}

	processors := make([]lang.Processor, 0, len(snap.LanguageTags))
	for _, tag := range snap.LanguageTags {
		p, ok := registry.Resolve(tag)
		if !ok {
			return nil, fserr.NewSnapshotError("decode", fmt.Errorf("no processor registered for language %q", tag))
		}
		processors = append(processors, p)
	}

	idx, err := fsindex.Restore(snap.Config, processors, snap.FieldNames, snap.FieldWeights,
		snap.Documents, snap.FieldData,
		snap.TermPostings, snap.PhoneticPostings, snap.NGramPostings, snap.SynonymPostings, snap.CompoundPostings)
	if err != nil {
		return nil, fserr.NewSnapshotError("decode", err)
	}
	return idx, nil
}

// Save encodes idx and writes it to path as JSON.
func Save(idx *fsindex.Index, path string) error {
	data, err := json.Marshal(Encode(idx))
	if err != nil {
		return fserr.NewSnapshotError("save", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fserr.NewSnapshotError("save", err)
	}
	return nil
}

// Load reads path and decodes it into an Index, resolving language
// processors against registry.
func Load(path string, registry *lang.Registry) (*fsindex.Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fserr.NewSnapshotError("load", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fserr.NewSnapshotError("load", fmt.Errorf("malformed snapshot: %w", err))
	}
	return Decode(snap, registry)
}
