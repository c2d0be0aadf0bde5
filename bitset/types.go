package bitset

import "errors"

// Capacity is the number of keys a Set can hold.
const Capacity = 64

// ErrOutOfRange is raised (as a panic value) when a key does not fit the set.
// Keys come from a validated assignment, so an out-of-range key is a caller bug.
var ErrOutOfRange = errors.New("bitset: key out of range")
