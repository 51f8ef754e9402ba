// Package ltl implements an immutable Linear Temporal Logic formula
// tree and its normalization to negation normal form (NNF).
package ltl

import (
	"fmt"

	"github.com/openltl/ltlcheck/ap"
)

// Tag identifies a Formula's syntactic variant.
type Tag int

const (
	TagAtomic Tag = iota
	TagNot
	TagOr
	TagAnd
	TagGlobal
	TagFuture
	TagUntil
	TagRelease
)

func (t Tag) String() string {
	switch t {
	case TagAtomic:
		return "Atomic"
	case TagNot:
		return "Not"
	case TagOr:
		return "Or"
	case TagAnd:
		return "And"
	case TagGlobal:
		return "Global"
	case TagFuture:
		return "Future"
	case TagUntil:
		return "Until"
	case TagRelease:
		return "Release"
	default:
		return "Tag(?)"
	}
}

// APSet is the set of atomic propositions appearing in a formula's
// subtree, keyed by AP identity.
type APSet map[uint64]ap.AP

func apSetOf(aps ...ap.AP) APSet {
	s := make(APSet, len(aps))
	for _, a := range aps {
		s[a.ID()] = a
	}
	return s
}

func union(sets ...APSet) APSet {
	out := make(APSet)
	for _, s := range sets {
		for id, a := range s {
			out[id] = a
		}
	}
	return out
}

// Equal reports set-equality by AP identity.
func (s APSet) Equal(other APSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}
	return true
}

// Formula is an immutable LTL syntax tree node. The only way to
// construct one is through a Builder: constructors may
// perform atomic-fold optimizations, but those are not required
// semantics — two trees with the same Tag/APSet/Children are equal
// whether or not a fold was applied along the way.
type Formula interface {
	Tag() Tag
	// Children returns the formula's direct subformulas: zero for
	// Atomic, one for Not/Global/Future, two for And/Or/Until/Release.
	Children() []Formula
	// AP returns the formula's atomic proposition. It panics if Tag()
	// != TagAtomic (an input-structure error per the invariant).
	AP() ap.AP
	// APSet returns the cached union of APs in this formula's subtree.
	APSet() APSet
	String() string

	isFormula()
}

// Equal reports structural equality: same tag, same cached AP set,
// and recursively equal children (and, for Atomic, the same AP
// identity).
func Equal(a, b Formula) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Tag() != b.Tag() {
		return false
	}
	if !a.APSet().Equal(b.APSet()) {
		return false
	}
	if a.Tag() == TagAtomic {
		return a.AP().Equal(b.AP())
	}
	ca, cb := a.Children(), b.Children()
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if !Equal(ca[i], cb[i]) {
			return false
		}
	}
	return true
}

// ---- concrete node types ----

type atomicFormula struct {
	atom  ap.AP
	apset APSet
}

func (f *atomicFormula) Tag() Tag          { return TagAtomic }
func (f *atomicFormula) Children() []Formula { return nil }
func (f *atomicFormula) AP() ap.AP          { return f.atom }
func (f *atomicFormula) APSet() APSet       { return f.apset }
func (f *atomicFormula) String() string     { return f.atom.String() }
func (f *atomicFormula) isFormula()         {}

type unaryFormula struct {
	tag   Tag
	inner Formula
	apset APSet
}

func (f *unaryFormula) Tag() Tag            { return f.tag }
func (f *unaryFormula) Children() []Formula { return []Formula{f.inner} }
func (f *unaryFormula) AP() ap.AP {
	panic(fmt.Sprintf("ltl: AP() called on non-Atomic formula (tag=%s)", f.tag))
}
func (f *unaryFormula) APSet() APSet { return f.apset }
func (f *unaryFormula) String() string {
	switch f.tag {
	case TagNot:
		return fmt.Sprintf("¬%s", f.inner)
	case TagGlobal:
		return fmt.Sprintf("G(%s)", f.inner)
	case TagFuture:
		return fmt.Sprintf("F(%s)", f.inner)
	default:
		return fmt.Sprintf("%s(%s)", f.tag, f.inner)
	}
}
func (f *unaryFormula) isFormula() {}

type binaryFormula struct {
	tag         Tag
	left, right Formula
	apset       APSet
}

func (f *binaryFormula) Tag() Tag            { return f.tag }
func (f *binaryFormula) Children() []Formula { return []Formula{f.left, f.right} }
func (f *binaryFormula) AP() ap.AP {
	panic(fmt.Sprintf("ltl: AP() called on non-Atomic formula (tag=%s)", f.tag))
}
func (f *binaryFormula) APSet() APSet { return f.apset }
func (f *binaryFormula) String() string {
	switch f.tag {
	case TagAnd:
		return fmt.Sprintf("(%s ∧ %s)", f.left, f.right)
	case TagOr:
		return fmt.Sprintf("(%s ∨ %s)", f.left, f.right)
	case TagUntil:
		return fmt.Sprintf("(%s U %s)", f.left, f.right)
	case TagRelease:
		return fmt.Sprintf("(%s R %s)", f.left, f.right)
	default:
		return fmt.Sprintf("%s(%s, %s)", f.tag, f.left, f.right)
	}
}
func (f *binaryFormula) isFormula() {}

// AsLiteral reports whether f is a (possibly negated) atomic literal,
// as produced by the tableau's `now` sets: Atomic(a) or Not(Atomic(a)).
func AsLiteral(f Formula) (a ap.AP, negated bool, ok bool) {
	switch f.Tag() {
	case TagAtomic:
		return f.AP(), false, true
	case TagNot:
		inner := f.Children()[0]
		if inner.Tag() == TagAtomic {
			return inner.AP(), true, true
		}
	}
	return ap.AP{}, false, false
}

// newNot builds a bare Not node with no atomic folding. Used
// internally by Normalize, which must be able to produce
// Not(Atomic(a)) verbatim regardless of whether a
// Builder would have folded it.
func newNot(f Formula) Formula {
	return &unaryFormula{tag: TagNot, inner: f, apset: f.APSet()}
}

func newUntil(l, r Formula) Formula {
	return &binaryFormula{tag: TagUntil, left: l, right: r, apset: union(l.APSet(), r.APSet())}
}

func newRelease(l, r Formula) Formula {
	return &binaryFormula{tag: TagRelease, left: l, right: r, apset: union(l.APSet(), r.APSet())}
}

func newOr(l, r Formula) Formula {
	return &binaryFormula{tag: TagOr, left: l, right: r, apset: union(l.APSet(), r.APSet())}
}

func newAnd(l, r Formula) Formula {
	return &binaryFormula{tag: TagAnd, left: l, right: r, apset: union(l.APSet(), r.APSet())}
}

// Builder constructs Formula trees. Reg supplies the AP capability
// hooks (true/false/complement, optional or/and folds) used by Not's
// and Or's/And's atomic-fold optimizations and by Normalize's G/F
// rewrite. A nil Reg disables folding: constructors build the tag as
// given.
type Builder struct {
	Reg *ap.Registry
}

// NewBuilder constructs a Builder backed by reg. reg must not be nil;
// use Builder{} directly if folding should be disabled.
func NewBuilder(reg *ap.Registry) Builder {
	return Builder{Reg: reg}
}

// Atomic builds an atomic proposition leaf.
func (b Builder) Atomic(a ap.AP) Formula {
	return &atomicFormula{atom: a, apset: apSetOf(a)}
}

// Not builds ¬f, folding Not(Atomic(a)) into Atomic(¬a) when a
// Registry is available.
func (b Builder) Not(f Formula) Formula {
	if b.Reg != nil && f.Tag() == TagAtomic {
		return b.Atomic(b.Reg.Complement(f.AP()))
	}
	return newNot(f)
}

// Or builds l∨r, folding Atomic∨Atomic into a single Atomic when a
// Registry with an Or-fold hook is available.
func (b Builder) Or(l, r Formula) Formula {
	if b.Reg != nil && l.Tag() == TagAtomic && r.Tag() == TagAtomic {
		return b.Atomic(b.Reg.Or(l.AP(), r.AP()))
	}
	return newOr(l, r)
}

// And is the conjunction analogue of Or.
func (b Builder) And(l, r Formula) Formula {
	if b.Reg != nil && l.Tag() == TagAtomic && r.Tag() == TagAtomic {
		return b.Atomic(b.Reg.And(l.AP(), r.AP()))
	}
	return newAnd(l, r)
}

// Global builds G(f). Never folded.
func (b Builder) Global(f Formula) Formula {
	return &unaryFormula{tag: TagGlobal, inner: f, apset: f.APSet()}
}

// Future builds F(f). Never folded.
func (b Builder) Future(f Formula) Formula {
	return &unaryFormula{tag: TagFuture, inner: f, apset: f.APSet()}
}

// Until builds l U r. Never folded.
func (b Builder) Until(l, r Formula) Formula {
	return newUntil(l, r)
}

// Release builds l R r. Never folded.
func (b Builder) Release(l, r Formula) Formula {
	return newRelease(l, r)
}
