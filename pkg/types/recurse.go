package types

import (
	"strconv"
)

// RecurseLimit is the deepest level (root = 0) at which entries are still
// admitted. RecurseInfinite removes the bound.
type RecurseLimit int

// RecurseInfinite admits entries at any depth
const RecurseInfinite RecurseLimit = -1

// IsInfinite reports whether the limit is unbounded
func (l RecurseLimit) IsInfinite() bool {
	return l == RecurseInfinite
}

// IsValid reports whether l is RecurseInfinite or a non-negative depth
func (l RecurseLimit) IsValid() bool {
	return l == RecurseInfinite || l >= 0
}

// Allows reports whether an entry at depth is within the limit
func (l RecurseLimit) Allows(depth int) bool {
	return l.IsInfinite() || depth <= int(l)
}

func (l RecurseLimit) String() string {
	if l.IsInfinite() {
		return "infinite"
	}
	return strconv.Itoa(int(l))
}
