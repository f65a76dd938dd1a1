// Package hashtable implements a generic hash table with separate
// chaining.
//
// Each bucket is an ordered slice of (key, value) entries; at most one
// entry exists per distinct key. Get, Set and Delete are O(1) expected
// when the hash function spreads keys across buckets, and degrade to
// O(n) when every key collides (the table stays correct either way).
//
// Resize policy
//
// The table starts with 8 buckets (or the next power of two at or above
// WithCapacity / MaxLoadFactor). After an insert, if Len/Buckets exceeds
// the maximum load factor (default 0.75) the bucket array doubles and all
// entries are rehashed in bucket order. Deletes never shrink the table.
//
// Hashers
//
//   - New uses a per-process seeded hasher for any comparable key
//     (github.com/dolthub/maphash).
//   - StringHasher (xxhash) and FingerprintHasher (farmhash fingerprint)
//     hash string keys; FingerprintHasher output is stable across
//     processes and releases.
//   - NewWithHasher accepts any func(K) uint64; equal keys must hash
//     equally.
//
// A HashTable is not safe for concurrent use.
package hashtable
