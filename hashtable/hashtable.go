package hashtable

import (
	"iter"
	"math/bits"

	"github.com/dolthub/maphash"
	"go.uber.org/zap"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// HashTable maps keys of type K to values of type V.
type HashTable[K comparable, V any] struct {
	buckets [][]entry[K, V] // len is a power of two
	size    int
	hash    func(K) uint64
	maxLoad float64
	log     *zap.Logger
}

// New returns an empty table hashing keys with a per-process seeded
// generic hasher.
func New[K comparable, V any](opts ...Option) *HashTable[K, V] {
	h := maphash.NewHasher[K]()
	return NewWithHasher[K, V](h.Hash, opts...)
}

// NewWithHasher returns an empty table that hashes keys with hash.
// A nil hash falls back to the default hasher.
func NewWithHasher[K comparable, V any](hash func(K) uint64, opts ...Option) *HashTable[K, V] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if hash == nil {
		hash = maphash.NewHasher[K]().Hash
	}

	return &HashTable[K, V]{
		buckets: make([][]entry[K, V], bucketsFor(o.Capacity, o.MaxLoadFactor)),
		hash:    hash,
		maxLoad: o.MaxLoadFactor,
		log:     o.Logger,
	}
}

// bucketsFor returns the smallest power of two >= DefaultBuckets that
// holds capacity entries without exceeding maxLoad.
func bucketsFor(capacity int, maxLoad float64) int {
	need := int(float64(capacity)/maxLoad) + 1
	if need <= DefaultBuckets {
		return DefaultBuckets
	}

	return 1 << bits.Len(uint(need-1))
}

// slot returns the bucket index for k.
func (t *HashTable[K, V]) slot(k K) int {
	return int(t.hash(k) & uint64(len(t.buckets)-1))
}

// Set stores v under k. It returns true if k was newly inserted and false
// if an existing value was overwritten.
func (t *HashTable[K, V]) Set(k K, v V) bool {
	i := t.slot(k)
	b := t.buckets[i]
	for j := range b {
		if b[j].key == k {
			b[j].value = v
			return false
		}
	}
	t.buckets[i] = append(b, entry[K, V]{key: k, value: v})
	t.size++
	if float64(t.size) > t.maxLoad*float64(len(t.buckets)) {
		t.resize(len(t.buckets) * 2)
	}

	return true
}

// Get returns the value stored under k.
func (t *HashTable[K, V]) Get(k K) (V, bool) {
	for _, e := range t.buckets[t.slot(k)] {
		if e.key == k {
			return e.value, true
		}
	}
	var zero V

	return zero, false
}

// Has reports whether k is present.
func (t *HashTable[K, V]) Has(k K) bool {
	_, ok := t.Get(k)
	return ok
}

// Delete removes k and reports whether it was present.
// Order of the remaining entries in the bucket is preserved.
func (t *HashTable[K, V]) Delete(k K) bool {
	i := t.slot(k)
	b := t.buckets[i]
	for j := range b {
		if b[j].key != k {
			continue
		}
		copy(b[j:], b[j+1:])
		b[len(b)-1] = entry[K, V]{}
		t.buckets[i] = b[:len(b)-1]
		t.size--

		return true
	}

	return false
}

// Len returns the number of entries.
func (t *HashTable[K, V]) Len() int { return t.size }

// Buckets returns the current number of buckets.
func (t *HashTable[K, V]) Buckets() int { return len(t.buckets) }

// LoadFactor returns Len/Buckets.
func (t *HashTable[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// Keys returns all keys in bucket order. O(n).
func (t *HashTable[K, V]) Keys() []K {
	out := make([]K, 0, t.size)
	for _, b := range t.buckets {
		for _, e := range b {
			out = append(out, e.key)
		}
	}

	return out
}

// Values returns all values in the same order as Keys. O(n).
func (t *HashTable[K, V]) Values() []V {
	out := make([]V, 0, t.size)
	for _, b := range t.buckets {
		for _, e := range b {
			out = append(out, e.value)
		}
	}

	return out
}

// All yields every (key, value) pair in bucket order.
func (t *HashTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range t.buckets {
			for _, e := range b {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Clear removes all entries and keeps the current bucket count.
func (t *HashTable[K, V]) Clear() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.size = 0
}

// resize rehashes every entry into n buckets.
func (t *HashTable[K, V]) resize(n int) {
	old := t.buckets
	t.buckets = make([][]entry[K, V], n)
	for _, b := range old {
		for _, e := range b {
			i := t.slot(e.key)
			t.buckets[i] = append(t.buckets[i], e)
		}
	}
	t.log.Debug("hashtable resized",
		zap.Int("from", len(old)),
		zap.Int("to", n),
		zap.Int("entries", t.size),
	)
}
