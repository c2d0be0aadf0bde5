package bitset

import (
	"fmt"
	"sort"
	"strings"
)

// NameSet is an immutable hashed set of location names addressed by key.
//
// The key→name table is shared by every NameSet derived from the same
// NewNameSet call and must not be modified afterwards. Keys have the same
// meaning as for Set, so a NameSet and a Set built from the same inserts
// answer every query identically.
type NameSet struct {
	names []string
	m     map[string]struct{}
}

// NewNameSet returns an empty NameSet over the key→name table names.
func NewNameSet(names []string) NameSet {
	return NameSet{names: names, m: map[string]struct{}{}}
}

func (s NameSet) name(i int) string {
	if i < 0 || i >= len(s.names) {
		panic(fmt.Errorf("%w: %d (table size %d)", ErrOutOfRange, i, len(s.names)))
	}

	return s.names[i]
}

// Contains reports whether key i is a member.
func (s NameSet) Contains(i int) bool {
	if i < 0 || i >= len(s.names) {
		return false
	}
	_, ok := s.m[s.names[i]]

	return ok
}

// Insert returns a copy of s with key i added.
// Panics with ErrOutOfRange if i is not in the name table.
func (s NameSet) Insert(i int) NameSet {
	name := s.name(i)
	if _, ok := s.m[name]; ok {
		return s
	}
	m := make(map[string]struct{}, len(s.m)+1)
	for k := range s.m {
		m[k] = struct{}{}
	}
	m[name] = struct{}{}

	return NameSet{names: s.names, m: m}
}

// IsSubset reports whether every member of s is also in o.
func (s NameSet) IsSubset(o NameSet) bool {
	if len(s.m) > len(o.m) {
		return false
	}
	for k := range s.m {
		if _, ok := o.m[k]; !ok {
			return false
		}
	}

	return true
}

// Union returns the members of s or o. The result uses s's name table.
func (s NameSet) Union(o NameSet) NameSet {
	m := make(map[string]struct{}, len(s.m)+len(o.m))
	for k := range s.m {
		m[k] = struct{}{}
	}
	for k := range o.m {
		m[k] = struct{}{}
	}

	return NameSet{names: s.names, m: m}
}

// Equal reports whether s and o hold the same names.
func (s NameSet) Equal(o NameSet) bool {
	return len(s.m) == len(o.m) && s.IsSubset(o)
}

// Len returns the number of members.
func (s NameSet) Len() int { return len(s.m) }

// Names returns the members sorted by name.
func (s NameSet) Names() []string {
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// String renders the set as "{AA,BB}".
func (s NameSet) String() string {
	return "{" + strings.Join(s.Names(), ",") + "}"
}
