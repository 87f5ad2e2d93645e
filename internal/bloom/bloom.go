// Package bloom implements a probabilistic "definitely absent"
// membership filter over the exact-term key set, sized per the standard
// formulas from the expected element count and target false-positive
// rate.
package bloom

import (
	"hash/fnv"
	"math"
)

// Filter is a Bloom filter with no false negatives: mightContain always
// returns true for a key that was added, and may return true for a key
// that was not (a false positive).
type Filter struct {
	bits []uint64
	m    uint64 // number of bits
	k    uint64 // number of hash functions
	n    int    // number of elements added
}

// New creates a Filter sized from the expected element count n and the
// target false-positive rate p, using m = ceil(-n*ln(p)/(ln2)^2) bits
// and k = ceil((m/n)*ln2) hash functions.
func New(n int, p float64) *Filter {
	if n < 1 {
		n = 1
	}
	if p <= 0 || p >= 1 {
		p = 0.01
	}
	m := uint64(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
	if m < 64 {
		m = 64
	}
	k := uint64(math.Ceil((float64(m) / float64(n)) * math.Ln2))
	if k < 1 {
		k = 1
	}
	words := (m + 63) / 64
	return &Filter{
		bits: make([]uint64, words),
		m:    words * 64,
		k:    k,
	}
}

// Add inserts term into the filter.
func (f *Filter) Add(term string) {
	h1, h2 := seedHashes(term)
	for i := uint64(0); i < f.k; i++ {
		idx := (h1 + i*h2) % f.m
		f.bits[idx/64] |= 1 << (idx % 64)
	}
	f.n++
}

// MightContain reports whether term may be present. A false result
// means term is definitely not present; a true result may be a false
// positive.
func (f *Filter) MightContain(term string) bool {
	h1, h2 := seedHashes(term)
	for i := uint64(0); i < f.k; i++ {
		idx := (h1 + i*h2) % f.m
		if f.bits[idx/64]&(1<<(idx%64)) == 0 {
			return false
		}
	}
	return true
}

// Len returns the number of elements added.
func (f *Filter) Len() int { return f.n }

// NumBits returns the size of the underlying bit array.
func (f *Filter) NumBits() int { return int(f.m) }

// NumHashes returns the number of hash functions in use.
func (f *Filter) NumHashes() int { return int(f.k) }

// Bytes returns the packed bit array for snapshotting.
func (f *Filter) Bytes() []byte {
	out := make([]byte, len(f.bits)*8)
	for i, w := range f.bits {
		for b := 0; b < 8; b++ {
			out[i*8+b] = byte(w >> (8 * b))
		}
	}
	return out
}

// FromBytes reconstructs a Filter from a packed bit array plus its
// original sizing parameters (m bits, k hashes, n elements), as stored
// in a snapshot.
func FromBytes(data []byte, m, k uint64, n int) *Filter {
	words := (m + 63) / 64
	bits := make([]uint64, words)
	for i := 0; i < len(data) && i/8 < len(bits); i++ {
		bits[i/8] |= uint64(data[i]) << (8 * (i % 8))
	}
	return &Filter{bits: bits, m: words * 64, k: k, n: n}
}

// double hashing on top of two FNV-1a-like seeded hashes, per spec §3.
func seedHashes(term string) (uint64, uint64) {
	h1 := fnv.New64a()
	_, _ = h1.Write([]byte(term))
	first := h1.Sum64()

	h2 := fnv.New64a()
	_, _ = h2.Write([]byte{0xff})
	_, _ = h2.Write([]byte(term))
	second := h2.Sum64()
	if second == 0 {
		second = 1
	}
	return first, second
}
