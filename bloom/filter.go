// Package bloom provides probabilistic prefiltering of commentary dictionary
// keys using Bloom filters, letting the resolver skip its linear key scan
// for words that are definitely absent.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"

	"github.com/skaranam/namartha"
)

// Ensure Filter implements namartha.KeyFilter at compile time.
var _ namartha.KeyFilter = (*Filter)(nil)

// Filter wraps a Bloom filter over hyphen-stripped dictionary keys.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected keys
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a key to the filter.
func (f *Filter) Add(key string) {
	f.f.AddString(key)
}

// MightContain returns true if the key might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) MightContain(key string) bool {
	return f.f.TestString(key)
}

// EstimatedCount returns the approximate number of keys in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
