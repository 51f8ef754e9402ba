// Package ap implements atomic propositions: opaque predicates over
// Kripke states with a stable, monotonically assigned identity.
//
// Two APs are equal iff their IDs match. Two APs built from the same
// name or the same underlying predicate but minted separately are
// intentionally distinct values — identity, not extensional equality.
package ap

import "fmt"

// AP is an atomic proposition: an identity-tagged predicate over
// Kripke states. The zero value is not a valid AP; construct one
// through a Registry.
type AP struct {
	id   uint64
	name string
}

// ID returns the AP's stable identity. Two APs are equal iff their
// IDs match.
func (a AP) ID() uint64 { return a.id }

// Name returns the AP's optional display string, for debugging only.
// It is not part of AP's identity.
func (a AP) Name() string { return a.name }

func (a AP) String() string {
	if a.name != "" {
		return a.name
	}
	return fmt.Sprintf("ap#%d", a.id)
}

// Equal reports whether two APs share an identity.
func (a AP) Equal(b AP) bool { return a.id == b.id }

// Registry mints fresh APs and implements the AP capability hooks
// (true, false, complement, and optional or/and folds) that Normalize
// and the formula constructors use. A Registry is scoped to one
// model-check invocation: its counter is not process-global, so two
// concurrent Registries never collide and tests never depend on the
// numeric value of an ID.
type Registry struct {
	next uint64

	trueAP  AP
	falseAP AP

	complements map[uint64]AP
	orFold      map[[2]uint64]AP
	andFold     map[[2]uint64]AP
}

// NewRegistry constructs an empty Registry, pre-seeded with the
// special true/false APs used by Normalize's G/F rewrite rules.
func NewRegistry() *Registry {
	r := &Registry{
		complements: make(map[uint64]AP),
		orFold:      make(map[[2]uint64]AP),
		andFold:     make(map[[2]uint64]AP),
	}
	r.trueAP = r.New("true")
	r.falseAP = r.New("false")
	r.complements[r.trueAP.id] = r.falseAP
	r.complements[r.falseAP.id] = r.trueAP
	return r
}

// New mints a fresh AP with the given display name.
func (r *Registry) New(name string) AP {
	r.next++
	return AP{id: r.next, name: name}
}

// True returns the special always-true AP used to encode `F φ` as
// `U(true, φ)`.
func (r *Registry) True() AP { return r.trueAP }

// False returns the special always-false AP used to encode `G φ` as
// `R(false, φ)`.
func (r *Registry) False() AP { return r.falseAP }

// Complement returns an AP representing the negation of a, minting a
// fresh one on first use and memoizing it so repeated calls (and
// double complementation) return identity-stable results:
// Complement(Complement(a)) == a.
func (r *Registry) Complement(a AP) AP {
	if c, ok := r.complements[a.id]; ok {
		return c
	}
	c := r.New("¬" + a.String())
	r.complements[a.id] = c
	r.complements[c.id] = a
	return c
}

// Or returns the memoized fold of a∨b as a single AP, if the Registry
// has been asked to fold it before, or mints and remembers one.
// Folding is optional; callers that never need atomic-OR folding can
// ignore this and build an Or(Atomic,Atomic) node instead.
func (r *Registry) Or(a, b AP) AP {
	return r.fold(r.orFold, a, b, "∨")
}

// And is the conjunction analogue of Or.
func (r *Registry) And(a, b AP) AP {
	return r.fold(r.andFold, a, b, "∧")
}

func (r *Registry) fold(table map[[2]uint64]AP, a, b AP, op string) AP {
	key := [2]uint64{a.id, b.id}
	if key[0] > key[1] {
		key[0], key[1] = key[1], key[0]
	}
	if c, ok := table[key]; ok {
		return c
	}
	c := r.New(fmt.Sprintf("(%s%s%s)", a, op, b))
	table[key] = c
	return c
}
