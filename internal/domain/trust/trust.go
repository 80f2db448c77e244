// Package trust holds the set of player identifiers exempt from mutual
// comparison.
package trust

// Set is a read-only membership set of trusted owners. It is built once
// per batch and only read afterwards, so no locking is needed.
type Set struct {
	members map[string]struct{}
}

// NewSet builds a trust set from owner identifiers.
func NewSet(owners ...string) *Set {
	members := make(map[string]struct{}, len(owners))
	for _, o := range owners {
		members[o] = struct{}{}
	}
	return &Set{members: members}
}

// Contains reports whether owner is trusted. A nil set trusts nobody.
func (s *Set) Contains(owner string) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[owner]
	return ok
}

// Both reports whether both owners are trusted. A pair of trusted owners
// carries no signal and is skipped by the comparison engine.
func (s *Set) Both(a, b string) bool {
	return s.Contains(a) && s.Contains(b)
}

// Size returns the number of trusted owners.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}
