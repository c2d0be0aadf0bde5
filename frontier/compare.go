package frontier

// Set is the activation-set contract needed by Compare.
type Set[T any] interface {
	IsSubset(o T) bool
	Equal(o T) bool
}

// Compare orders (a, objA) against (b, objB) under set inclusion and the
// scalar objective.
//
//   - a == b:  the objectives decide (Less, Equal or Greater).
//   - a ⊂ b:   Less when objA <= objB.
//   - b ⊂ a:   Greater when objA >= objB.
//   - otherwise Incomparable.
func Compare[T Set[T]](a T, objA int, b T, objB int) Ordering {
	switch {
	case a.Equal(b):
		return compareInts(objA, objB)
	case a.IsSubset(b):
		if objA <= objB {
			return Less
		}
	case b.IsSubset(a):
		if objA >= objB {
			return Greater
		}
	}

	return Incomparable
}

func compareInts(a, b int) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
