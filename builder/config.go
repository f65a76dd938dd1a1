// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"
	"strconv"
)

// builderConfig is the resolved, immutable configuration handed to
// constructors.
type builderConfig struct {
	idFn     func(int) string        // index → vertex ID
	rng      *rand.Rand              // nil means no randomness
	weightFn func(*rand.Rand) int64 // used only for weighted graphs
}

const defaultConstWeight = int64(1)

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     strconv.Itoa,
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex naming function. Nil is ignored.
func WithIDScheme(fn func(int) string) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithIDPrefix names vertices prefix+index, e.g. "v0", "v1".
func WithIDPrefix(prefix string) BuilderOption {
	return WithIDScheme(func(i int) string { return prefix + strconv.Itoa(i) })
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightRange draws weights uniformly from [lo, hi]. The RNG must be
// set (WithSeed); without it the lower bound is used. Inverted bounds are
// swapped. The full int64 range is accepted.
func WithWeightRange(lo, hi int64) BuilderOption {
	if lo > hi {
		lo, hi = hi, lo
	}

	// span = hi-lo computed in uint64 so that wide ranges do not overflow
	span := uint64(hi) - uint64(lo)

	return func(c *builderConfig) {
		c.weightFn = func(r *rand.Rand) int64 {
			switch {
			case r == nil || span == 0:
				return lo
			case span < math.MaxInt64:
				return lo + r.Int63n(int64(span)+1)
			case span == math.MaxUint64:
				return int64(r.Uint64())
			default:
				return int64(uint64(lo) + r.Uint64()%(span+1))
			}
		}
	}
}
