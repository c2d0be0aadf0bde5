package builder

import "errors"

// Sentinel errors. Callers branch with errors.Is; implementations attach
// context with %w.
var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrTooManyVertices indicates n exceeds the two-letter name space.
	ErrTooManyVertices = errors.New("builder: parameter too large")

	// ErrInvalidProbability indicates a probability or ratio outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates that no RNG was configured.
	ErrNeedRandSource = errors.New("builder: rng is required")
)
