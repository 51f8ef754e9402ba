// Package kripke implements finite Kripke structures with generalized
// Büchi fairness constraints, and their conversion to an ordinary
// Büchi automaton via the counter-product construction.
package kripke

import (
	"github.com/openltl/ltlcheck/ap"
	"github.com/openltl/ltlcheck/automaton"
)

// Label is the set of atomic propositions that hold at a state,
// keyed by AP identity — the alphabet of the Büchi automaton produced
// by ToBuchi.
type Label map[uint64]ap.AP

// Contains reports whether a holds, by identity.
func (l Label) Contains(a ap.AP) bool {
	_, ok := l[a.ID()]
	return ok
}

// Structure is a finite Kripke structure over state type S: a set of
// initial states, a (deterministic-as-a-function) successor relation,
// a total labeling function, and a list of fairness constraints. An
// empty Fairness list is treated as a single always-true constraint.
type Structure[S comparable] struct {
	Initial  map[S]struct{}
	Succ     func(S) []S
	Label    func(S, ap.AP) bool
	Fairness []func(S) bool
}

// NewStructure constructs a Structure with the given initial states.
func NewStructure[S comparable](initial []S, succ func(S) []S, label func(S, ap.AP) bool, fairness []func(S) bool) *Structure[S] {
	init := make(map[S]struct{}, len(initial))
	for _, s := range initial {
		init[s] = struct{}{}
	}
	return &Structure[S]{Initial: init, Succ: succ, Label: label, Fairness: fairness}
}

// ToBuchi converts k into a Büchi automaton over alphabet Label,
// observing exactly the APs in apSet, using the same rotating-counter
// (state, counter) product automaton.Collapse applies to tableau
// output. Each edge s -> t is labeled with the APs holding at s, the
// state it leaves, so an initial state's label is the first letter of
// every run's word and no synthetic start state is needed. This
// matches the tableau side, whose edges carry their source node's
// literals.
func ToBuchi[S comparable](k *Structure[S], apSet []ap.AP) *automaton.Automaton[automaton.CounterState[S], Label] {
	g := automaton.NewGeneralized[S, Label]()
	g.Fairness = append(g.Fairness, k.Fairness...)

	labelOf := func(s S) Label {
		lbl := make(Label, len(apSet))
		for _, a := range apSet {
			if k.Label(s, a) {
				lbl[a.ID()] = a
			}
		}
		return lbl
	}

	visited := make(map[S]bool)
	var queue []S
	for s := range k.Initial {
		g.AddInitial(s)
		if !visited[s] {
			visited[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, t := range k.Succ(s) {
			g.AddTransition(s, labelOf(s), t)
			if !visited[t] {
				visited[t] = true
				queue = append(queue, t)
			}
		}
	}

	return automaton.Collapse(g)
}
