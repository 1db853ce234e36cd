package order

import "sort"

// Violation identifies an out-of-place key and the element it should
// have preceded.
type Violation struct {
	Lesser  Key // the misplaced key
	Greater Key // the key Lesser must sort before
}

// Check verifies that keys appear in non-decreasing order. A sequence
// is accepted when it is sorted under the WildcardFirst policy or,
// failing that, under WildcardLast: the single catch-all entry of
// idiomatic code may legally sit at either end. On rejection the
// returned violation names the first misplaced key under WildcardLast
// and the element it belongs before.
func Check(keys []Key) *Violation {
	if misordered(keys, WildcardFirst) < 0 {
		return nil
	}

	wrong := misordered(keys, WildcardLast)
	if wrong < 0 {
		return nil
	}

	lesser := keys[wrong]

	// The immediate predecessor is greater by construction, so the
	// correct slot is searched in the prefix before it. The predicate
	// is strictly-greater: when equal keys are present the reported
	// reference is the element just past the equal run.
	prefix := keys[:wrong-1]
	pos := sort.Search(len(prefix), func(i int) bool {
		return Compare(prefix[i], lesser, WildcardLast) > 0
	})

	return &Violation{Lesser: lesser, Greater: keys[pos]}
}

// misordered returns the index of the first key comparing below its
// predecessor under the given policy, or -1 when the sequence is
// sorted.
func misordered(keys []Key, pol Policy) int {
	for i := 1; i < len(keys); i++ {
		if Compare(keys[i], keys[i-1], pol) < 0 {
			return i
		}
	}

	return -1
}
