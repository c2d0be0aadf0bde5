package frontier

// Prune removes dominated states from one bucket and returns the survivors
// (in their original relative order, sharing bucket's backing array) and the
// number of states removed.
//
// Implementation:
//   - Pairwise scan i < j, skipping indices already removed; a removed index
//     is never used as a comparison source.
//   - Equal: the higher index goes.
//   - Greater: j goes. Less: i goes and its scan stops.
//   - PruneDuplicates acts on Equal only; PruneNone returns bucket unchanged.
//
// After Prune no two survivors compare as anything but Incomparable (for
// PruneDominance), so a second call removes nothing.
//
// Complexity: O(n²) comparisons, O(n) extra space.
func Prune[S any](bucket []S, cmp func(a, b S) Ordering, mode PruneMode) ([]S, int) {
	if mode == PruneNone || len(bucket) < 2 {
		return bucket, 0
	}

	removed := make([]bool, len(bucket))
	n := 0
	for i := range bucket {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(bucket); j++ {
			if removed[j] {
				continue
			}
			ord := cmp(bucket[i], bucket[j])
			if ord == Equal {
				removed[j] = true
				n++
				continue
			}
			if mode == PruneDuplicates {
				continue
			}
			if ord == Greater {
				removed[j] = true
				n++
			} else if ord == Less {
				removed[i] = true
				n++
				break
			}
		}
	}
	if n == 0 {
		return bucket, 0
	}

	out := bucket[:0]
	for i, s := range bucket {
		if !removed[i] {
			out = append(out, s)
		}
	}
	var zero S
	for i := len(out); i < len(bucket); i++ {
		bucket[i] = zero
	}

	return out, n
}
