// Package order implements the sort-key model and the ordering verifier
// behind the gosorted checker. Keys are (category, path) pairs: category
// groups declaration kinds, the path orders declarations within a kind.
package order

import (
	"fmt"
	"go/token"
	"strings"
)

// Wildcard is the reserved path segment standing for a catch-all entry
// (the default clause of a switch, a blank identifier). Its position
// relative to concrete segments is governed by Policy.
const Wildcard = "_"

// Category is a coarse kind-grouping tag. It is the most significant
// component of a sort key so that declaration kinds are grouped before
// being sorted within each kind. Homogeneous containers use 0 throughout.
type Category uint8

// Path is an ordered, non-empty sequence of name segments identifying a
// declaration for sorting purposes.
type Path struct {
	Segments []string
}

// PathOf builds a path from the given segments.
func PathOf(segments ...string) Path {
	return Path{Segments: segments}
}

// String renders the path the way it is spelled in source.
func (p Path) String() string {
	return strings.Join(p.Segments, ".")
}

// Key is the unit the verifier orders, one per non-excluded declaration.
// Pos locates the declaration for diagnostics.
type Key struct {
	Category Category
	Path     Path
	Pos      token.Pos
}

// Policy places the wildcard segment either below or above every
// concrete segment. It is not persisted anywhere, the verifier chooses
// one per pass.
type Policy int

const (
	// WildcardFirst sorts the wildcard segment before all concrete ones.
	WildcardFirst Policy = iota
	// WildcardLast sorts the wildcard segment after all concrete ones.
	WildcardLast
)

func (p Policy) String() string {
	switch p {
	case WildcardFirst:
		return "wildcard-first"
	case WildcardLast:
		return "wildcard-last"
	default:
		return fmt.Sprintf("policy-invalid(%d)", int(p))
	}
}

// Compare orders two keys under the given wildcard policy. Categories
// are compared numerically first. Paths are then compared segment by
// segment as case-sensitive strings, except that the wildcard segment
// compares below (WildcardFirst) or above (WildcardLast) any concrete
// segment at whatever position it occurs. A strict prefix sorts before
// the longer path.
func Compare(a, b Key, pol Policy) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return -1
		}
		return 1
	}

	x, y := a.Path.Segments, b.Path.Segments
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		if x[i] == y[i] {
			continue
		}
		switch {
		case x[i] == Wildcard:
			return wildcardOrder(pol)
		case y[i] == Wildcard:
			return -wildcardOrder(pol)
		default:
			return strings.Compare(x[i], y[i])
		}
	}

	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	default:
		return 0
	}
}

func wildcardOrder(pol Policy) int {
	if pol == WildcardFirst {
		return -1
	}
	return 1
}
