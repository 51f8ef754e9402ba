// Package tableau implements the Gerth-Peled-Vardi-Wolper tableau
// construction translating a normalized LTL formula into a
// generalized Büchi automaton.
package tableau

import (
	"github.com/openltl/ltlcheck/ap"
	"github.com/openltl/ltlcheck/automaton"
	"github.com/openltl/ltlcheck/ltl"
)

// NodeID identifies a tableau node within one Build call's arena. The
// sentinel root (-1) represents the tableau's synthetic entry point.
type NodeID int64

const root NodeID = -1

// SignedLiteral is one element of the LTL-side alphabet: an atomic
// proposition together with the polarity it must hold at.
type SignedLiteral struct {
	AP      ap.AP
	Negated bool
}

// node is one (new, now, next) triple plus its identity.
type node struct {
	id   NodeID
	new  *fset
	now  *fset
	next *fset
}

// relations tracks the tableau graph's incoming/outgoing edges,
// independent of node content, so merges (UpdateClosed) can redirect
// edges without walking every node.
type relations struct {
	incoming map[NodeID]map[NodeID]struct{}
	outgoing map[NodeID]map[NodeID]struct{}
}

func newRelations() *relations {
	return &relations{
		incoming: make(map[NodeID]map[NodeID]struct{}),
		outgoing: make(map[NodeID]map[NodeID]struct{}),
	}
}

func (r *relations) addEdge(from, to NodeID) {
	if r.outgoing[from] == nil {
		r.outgoing[from] = make(map[NodeID]struct{})
	}
	r.outgoing[from][to] = struct{}{}
	if r.incoming[to] == nil {
		r.incoming[to] = make(map[NodeID]struct{})
	}
	r.incoming[to][from] = struct{}{}
}

func (r *relations) removeEdge(from, to NodeID) {
	delete(r.outgoing[from], to)
	delete(r.incoming[to], from)
}

// state holds the full mutable construction state for one Build call.
type state struct {
	nextID    int64
	arena     map[NodeID]*node
	open      map[NodeID]*node
	closed    map[NodeID]*node
	closedSig map[string]NodeID
	rel       *relations
	untilSet  []ltl.Formula // distinct Until subformulas seen, for fairness
}

func newState() *state {
	return &state{
		arena:     make(map[NodeID]*node),
		open:      make(map[NodeID]*node),
		closed:    make(map[NodeID]*node),
		closedSig: make(map[string]NodeID),
		rel:       newRelations(),
	}
}

func (st *state) freshNode(new0, now0, next0 *fset) *node {
	id := NodeID(st.nextID)
	st.nextID++
	n := &node{id: id, new: new0, now: now0, next: next0}
	st.arena[id] = n
	return n
}

func (st *state) addUntil(u ltl.Formula) {
	for _, existing := range st.untilSet {
		if ltl.Equal(existing, u) {
			return
		}
	}
	st.untilSet = append(st.untilSet, u)
}

// cloneNode creates a new node carrying copies of q's current
// new/now/next sets, and duplicates every edge a -> q as a -> clone.
func (st *state) cloneNode(q *node) *node {
	c := st.freshNode(q.new.Clone(), q.now.Clone(), q.next.Clone())
	for a := range st.rel.incoming[q.id] {
		st.rel.addEdge(a, c.id)
	}
	st.open[c.id] = c
	return c
}

// Result is the tableau's output: the GBA ready to be collapsed by
// automaton.Collapse, plus each surviving node's `now` set (used by
// the transition-label and fairness-predicate closures, and useful
// for diagnostics).
type Result struct {
	GBA *automaton.GeneralizedAutomaton[NodeID, []SignedLiteral]
	Now map[NodeID][]ltl.Formula
}

// Build runs the GPVW tableau construction on phi, which MUST already
// be in negation normal form (ltl.Normalize's output) — encountering a
// Global or Future node here is an invariant violation and panics.
func Build(phi ltl.Formula) *Result {
	st := newState()

	q0 := st.freshNode(fsetOf(phi), newFset(), newFset())
	st.open[q0.id] = q0
	st.rel.addEdge(root, q0.id)

	for len(st.open) > 0 {
		var q *node
		for _, n := range st.open {
			q = n
			break
		}
		delete(st.open, q.id)

		if q.new.IsEmpty() {
			st.updateClosed(q)
			continue
		}

		psi := q.new.Pop()
		q.now.Add(psi)
		st.open[q.id] = q // keep mutating the same node until new is drained
		st.updateSplit(q, psi)
	}

	return st.result()
}

// updateClosed implements the merge step: merge q into an
// existing closed node with the same (now,next) signature, or promote
// it and spawn its successor.
func (st *state) updateClosed(q *node) {
	sig := q.now.signature() + "##" + q.next.signature()
	if existingID, ok := st.closedSig[sig]; ok {
		c := st.closed[existingID]
		for a := range st.rel.incoming[q.id] {
			st.rel.removeEdge(a, q.id)
			st.rel.addEdge(a, c.id)
		}
		delete(st.arena, q.id)
		return
	}

	st.closed[q.id] = q
	st.closedSig[sig] = q.id

	succ := st.freshNode(q.next.Clone(), newFset(), newFset())
	st.rel.addEdge(q.id, succ.id)
	st.open[succ.id] = succ
}

// updateSplit implements the case analysis on the
// formula psi just moved into q.now.
func (st *state) updateSplit(q *node, psi ltl.Formula) {
	switch psi.Tag() {
	case ltl.TagAtomic, ltl.TagNot:
		// Literal: no structural action, it is already recorded in now.
		return

	case ltl.TagAnd:
		c := psi.Children()
		q.new.Add(c[0])
		q.new.Add(c[1])

	case ltl.TagOr:
		c := psi.Children()
		q2 := st.cloneNode(q)
		q.new.Add(c[0])
		q2.new.Add(c[1])

	case ltl.TagUntil:
		st.addUntil(psi)
		c := psi.Children()
		alpha, beta := c[0], c[1]
		q2 := st.cloneNode(q)
		q.new.Add(beta)
		q2.new.Add(alpha)
		q2.next.Add(psi)

	case ltl.TagRelease:
		c := psi.Children()
		alpha, beta := c[0], c[1]
		q2 := st.cloneNode(q)
		q.new.Add(alpha)
		q.new.Add(beta)
		q2.new.Add(beta)
		q2.next.Add(psi)

	default:
		panic("tableau: UpdateSplit: formula not in negation normal form (Global/Future reached the tableau)")
	}
}

// literalsOf extracts the signed-literal requirement of a now set: a
// transition leaving the node owning now may be taken at a state s iff
// every literal here holds at s — the requirement travels with the
// node's own outgoing edges so that a node reachable only as an
// initial state (never as an edge target) still has its own literal
// content enforced, rather than silently skipped.
func literalsOf(now *fset) []SignedLiteral {
	var out []SignedLiteral
	for _, f := range now.list {
		if a, neg, ok := ltl.AsLiteral(f); ok {
			out = append(out, SignedLiteral{AP: a, Negated: neg})
		}
	}
	return out
}

func (st *state) result() *Result {
	gba := automaton.NewGeneralized[NodeID, []SignedLiteral]()
	nowOf := make(map[NodeID][]ltl.Formula, len(st.closed))

	for id, n := range st.closed {
		nowOf[id] = n.now.Slice()
	}

	for id, outs := range st.rel.outgoing {
		if id == root {
			for to := range outs {
				gba.AddInitial(to)
			}
			continue
		}
		src, ok := st.closed[id]
		if !ok {
			continue
		}
		for to := range outs {
			if _, ok := st.closed[to]; !ok {
				continue
			}
			gba.AddTransition(id, literalsOf(src.now), to)
		}
	}

	for _, u := range st.untilSet {
		beta := u.Children()[1]
		until := u
		gba.Fairness = append(gba.Fairness, func(n NodeID) bool {
			now := nowOf[n]
			hasBeta := false
			hasUntil := false
			for _, f := range now {
				if ltl.Equal(f, beta) {
					hasBeta = true
				}
				if ltl.Equal(f, until) {
					hasUntil = true
				}
			}
			return hasBeta || !hasUntil
		})
	}

	return &Result{GBA: gba, Now: nowOf}
}
