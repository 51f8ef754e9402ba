// Package automaton implements generalized and ordinary Büchi
// automata, their synchronous product (intersection), and nested DFS
// emptiness search.
package automaton

import "reflect"

// Transition is one outgoing edge: take Label, arrive at To.
type Transition[Q comparable, L any] struct {
	Label L
	To    Q
}

// Automaton is a non-deterministic Büchi automaton over alphabet L
// and state Q, with a single acceptance set expressed as a predicate.
type Automaton[Q comparable, L any] struct {
	Initial   map[Q]struct{}
	Trans     map[Q][]Transition[Q, L]
	Accepting func(Q) bool
}

// New constructs an empty automaton with no accepting states.
func New[Q comparable, L any]() *Automaton[Q, L] {
	return &Automaton[Q, L]{
		Initial:   make(map[Q]struct{}),
		Trans:     make(map[Q][]Transition[Q, L]),
		Accepting: func(Q) bool { return false },
	}
}

// AddInitial marks q as an initial state.
func (a *Automaton[Q, L]) AddInitial(q Q) {
	a.Initial[q] = struct{}{}
}

// AddTransition adds an edge from -(label)-> to, deduplicating
// identical (label, to) pairs already present on from (the transition
// relation is a finite multi-valued function with set semantics).
func (a *Automaton[Q, L]) AddTransition(from Q, label L, to Q) {
	for _, t := range a.Trans[from] {
		if t.To == to && reflect.DeepEqual(t.Label, label) {
			return
		}
	}
	a.Trans[from] = append(a.Trans[from], Transition[Q, L]{Label: label, To: to})
}

// InitialStates returns the automaton's initial states in no
// particular order.
func (a *Automaton[Q, L]) InitialStates() []Q {
	out := make([]Q, 0, len(a.Initial))
	for q := range a.Initial {
		out = append(out, q)
	}
	return out
}
