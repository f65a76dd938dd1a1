// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not built WithWeighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex is absent.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight is returned under WithNegativeWeightCheck.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a non-positive InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by PathTo when dest was not reached.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           string      // starting vertex ID
	ReturnPath       bool        // return the predecessor map
	MaxDistance      int64       // vertices farther than this are not settled
	InfEdgeThreshold int64       // edges with weight >= this are impassable
	CheckNegative    bool        // scan edges and reject negative weights
	Logger           *zap.Logger // debug events; never nil after DefaultOptions

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options for source with no distance cap, no
// impassable edges, no predecessor map, no negative-weight scan and a
// no-op logger.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		Logger:           zap.NewNop(),
	}
}

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps explored distances; vertices whose shortest
// distance exceeds max are omitted. A negative max yields ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight >= threshold as
// impassable. A non-positive threshold yields ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithNegativeWeightCheck scans every edge before the run and fails with
// ErrNegativeWeight on the first negative weight.
func WithNegativeWeightCheck() Option {
	return func(o *Options) {
		o.CheckNegative = true
	}
}

// WithLogger sets the logger used for debug events. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
