package robots

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrBadBlueprint indicates a blueprint without exactly seven numbers.
	ErrBadBlueprint = errors.New("robots: malformed blueprint")

	// ErrNoBlueprints indicates an empty blueprint list.
	ErrNoBlueprints = errors.New("robots: no blueprints")
)

// Kind is a robot kind, also the resource it collects.
type Kind int

// Robot kinds in cost-table order.
const (
	Ore Kind = iota
	Clay
	Obsidian
	Geode
)

// Kinds is the number of robot kinds.
const Kinds = 4

// Resources is the number of spendable resources (geodes are never spent).
const Resources = 3

func (k Kind) String() string {
	switch k {
	case Ore:
		return "ore"
	case Clay:
		return "clay"
	case Obsidian:
		return "obsidian"
	case Geode:
		return "geode"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Cost is a price in ore, clay and obsidian.
type Cost [Resources]int

// Blueprint is one factory price list.
type Blueprint struct {
	ID    int
	Costs [Kinds]Cost
}

// Stock is the spendable inventory. It doubles as the activation vector for
// dominance: IsSubset is componentwise ≤.
type Stock [Resources]int

// IsSubset reports whether s holds no more of any resource than o.
func (s Stock) IsSubset(o Stock) bool {
	for i := range s {
		if s[i] > o[i] {
			return false
		}
	}

	return true
}

// Equal reports whether s and o hold the same amounts.
func (s Stock) Equal(o Stock) bool { return s == o }

// covers reports whether s can pay c.
func (s Stock) covers(c Cost) bool {
	for i := range s {
		if s[i] < c[i] {
			return false
		}
	}

	return true
}

// State is one point in the robot search. Geodes holds committed geodes:
// a geode robot built at tick t is credited with everything it will crack
// by the horizon at once, so Geodes never depends on later choices.
type State struct {
	Time   int
	Stock  Stock
	Geodes int
	Robots [Kinds]int
}

// key buckets states by time and spendable-resource robots. Geode robots
// are left out: their whole output is already counted in Geodes.
type key struct {
	time   int
	robots [Resources]int
}
