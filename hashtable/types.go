package hashtable

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-farm"
	"go.uber.org/zap"
)

const (
	// DefaultBuckets is the initial bucket count when no capacity is given.
	DefaultBuckets = 8

	// DefaultMaxLoadFactor is the Len/Buckets ratio that triggers a resize.
	DefaultMaxLoadFactor = 0.75
)

// Option configures a HashTable at construction.
type Option func(*Options)

// Options holds construction-time settings.
type Options struct {
	// Capacity is the number of entries the table should hold before its
	// first resize. Zero means DefaultBuckets buckets.
	Capacity int

	// MaxLoadFactor is the Len/Buckets ratio above which the table grows.
	MaxLoadFactor float64

	// Logger receives debug events such as resizes.
	Logger *zap.Logger
}

// DefaultOptions returns zero capacity, DefaultMaxLoadFactor and a no-op
// logger.
func DefaultOptions() Options {
	return Options{
		Capacity:      0,
		MaxLoadFactor: DefaultMaxLoadFactor,
		Logger:        zap.NewNop(),
	}
}

// WithCapacity pre-sizes the bucket array for n entries.
// Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Capacity = n
		}
	}
}

// WithMaxLoadFactor sets the resize threshold. Non-positive values are
// ignored.
func WithMaxLoadFactor(f float64) Option {
	return func(o *Options) {
		if f > 0 {
			o.MaxLoadFactor = f
		}
	}
}

// WithLogger routes debug events to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// StringHasher hashes string keys with xxhash.
func StringHasher(s string) uint64 {
	return xxhash.Sum64String(s)
}

// FingerprintHasher hashes string keys with the farmhash fingerprint,
// whose output does not change between processes or library versions.
func FingerprintHasher(s string) uint64 {
	return farm.Fingerprint64([]byte(s))
}
