// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a core insertion failure.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnsupportedGraphMode indicates a constructor that cannot build the
// requested graph kind (e.g. RandomRegular on a directed graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrInvalidDegree indicates a degree sequence that cannot be realised.
var ErrInvalidDegree = errors.New("builder: invalid degree")

// ErrEmptyGrid indicates a cell grid with no rows or no columns.
var ErrEmptyGrid = errors.New("builder: grid must have at least one row and one column")

// ErrNonRectangular indicates cell rows of differing lengths.
var ErrNonRectangular = errors.New("builder: all grid rows must have the same length")
