package bitset

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Set is a fixed-capacity bitset of keys in [0, Capacity).
// The zero value is the empty set.
type Set uint64

// Of returns the set holding the given keys.
func Of(keys ...int) Set {
	var s Set
	for _, k := range keys {
		s = s.Insert(k)
	}

	return s
}

// Full returns the set holding keys 0..n-1.
func Full(n int) Set {
	if n < 0 || n > Capacity {
		panic(fmt.Errorf("%w: %d", ErrOutOfRange, n))
	}
	if n == Capacity {
		return ^Set(0)
	}

	return Set(1)<<uint(n) - 1
}

// Contains reports whether key i is a member. Keys out of range are never members.
func (s Set) Contains(i int) bool {
	if i < 0 || i >= Capacity {
		return false
	}

	return s&(1<<uint(i)) != 0
}

// Insert returns a copy of s with key i added.
// Panics with ErrOutOfRange if i does not fit.
func (s Set) Insert(i int) Set {
	if i < 0 || i >= Capacity {
		panic(fmt.Errorf("%w: %d", ErrOutOfRange, i))
	}

	return s | 1<<uint(i)
}

// IsSubset reports whether every member of s is also in o.
func (s Set) IsSubset(o Set) bool { return s&^o == 0 }

// Union returns the members of s or o.
func (s Set) Union(o Set) Set { return s | o }

// Equal reports whether s and o hold the same keys.
func (s Set) Equal(o Set) bool { return s == o }

// Len returns the number of members.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// Keys returns the members in ascending order.
func (s Set) Keys() []int {
	out := make([]int, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(rest))
	}

	return out
}

// String renders the set as "{0,3,5}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range s.Keys() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(k))
	}
	sb.WriteByte('}')

	return sb.String()
}
