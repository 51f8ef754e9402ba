package tableau

import (
	"fmt"
	"sort"

	"github.com/openltl/ltlcheck/ltl"
)

// key returns a canonical string identity for a formula, used for set
// membership and the (now,next) merge signature in UpdateClosed. It
// is based on AP identity (not display name), matching the construction's
// identity-not-extensional-equality semantics for APs.
func key(f ltl.Formula) string {
	if f.Tag() == ltl.TagAtomic {
		return fmt.Sprintf("A%d", f.AP().ID())
	}
	c := f.Children()
	switch len(c) {
	case 1:
		return fmt.Sprintf("%d(%s)", f.Tag(), key(c[0]))
	default:
		return fmt.Sprintf("%d(%s,%s)", f.Tag(), key(c[0]), key(c[1]))
	}
}

// fset is a small insertion-order set of formulas, deduplicated by
// structural identity (key). It backs the tableau node's new/now/next
// fields.
type fset struct {
	list []ltl.Formula
	seen map[string]bool
}

func newFset() *fset {
	return &fset{seen: make(map[string]bool)}
}

func fsetOf(fs ...ltl.Formula) *fset {
	s := newFset()
	for _, f := range fs {
		s.Add(f)
	}
	return s
}

func (s *fset) Add(f ltl.Formula) {
	k := key(f)
	if s.seen[k] {
		return
	}
	s.seen[k] = true
	s.list = append(s.list, f)
}

func (s *fset) Contains(f ltl.Formula) bool {
	return s.seen[key(f)]
}

func (s *fset) IsEmpty() bool { return len(s.list) == 0 }

// Pop removes and returns an arbitrary element (the construction does not
// constrain the order in which q.new is drained).
func (s *fset) Pop() ltl.Formula {
	f := s.list[len(s.list)-1]
	s.list = s.list[:len(s.list)-1]
	delete(s.seen, key(f))
	return f
}

func (s *fset) Clone() *fset {
	c := newFset()
	for _, f := range s.list {
		c.Add(f)
	}
	return c
}

// signature is a canonical, order-independent identity for the set,
// used to detect the "same (now,next)" merge condition in
// UpdateClosed.
func (s *fset) signature() string {
	keys := make([]string, 0, len(s.list))
	for _, f := range s.list {
		keys = append(keys, key(f))
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += k + "|"
	}
	return out
}

func (s *fset) Slice() []ltl.Formula {
	out := make([]ltl.Formula, len(s.list))
	copy(out, s.list)
	return out
}
