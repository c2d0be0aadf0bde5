// Package bitset provides the activation-set representations used by the
// frontier search: a fixed-capacity bitset (Set) indexed by a stable key
// assignment, and a hashed name set (NameSet) with identical semantics.
//
// Set is the hot-path representation. A key assignment maps every location
// with a positive yield to one bit, so activation sets become a single
// machine word that is copied by value and compared with two instructions:
//
//	a.IsSubset(b)  ⇔  a &^ b == 0
//
// NameSet keeps the same contract over the location names themselves. It is
// slower (every Insert copies a map) and exists so that callers can check
// that the bitset encoding never changes a search decision.
//
// Both types are immutable values: Insert and Union return new sets.
//
// Operations:
//
//	Contains(i) bool   – membership of key i
//	Insert(i) T        – copy with key i added
//	IsSubset(o) bool   – every member of the receiver is in o
//	Union(o) T         – members of either set
//	Equal(o) bool      – same members
//	Len() int          – cardinality
//
// Errors:
//
//	ErrOutOfRange – key outside [0, Capacity) (Set) or the name table (NameSet).
package bitset
