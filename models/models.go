// Package models bundles small, self-contained integer Kripke
// structures and LTL formulas used by the demo CLI and by the
// end-to-end model-checking tests. Each Demo owns its own AP registry
// so its formula and its structure's labels always resolve against
// the same identities.
package models

import (
	"fmt"

	"github.com/openltl/ltlcheck/ap"
	"github.com/openltl/ltlcheck/kripke"
	"github.com/openltl/ltlcheck/ltl"
)

// Demo is one named scenario: a structure, the formula to check
// against it, and the expected verdict (used by tests; the CLI
// ignores it).
type Demo struct {
	Name        string
	Reg         *ap.Registry
	Structure   *kripke.Structure[int]
	Formula     ltl.Formula
	WantHolds   bool
	Description string
}

func mustBind(el *kripke.ExprLabeler, a ap.AP, src string) {
	if err := el.Bind(a, src); err != nil {
		panic(fmt.Sprintf("models: binding %q: %v", src, err))
	}
}

// ThreeCycle is a 0->1->2->0 cycle, no fairness constraints. Every
// infinite run revisits 0 every three steps, so G F(x=0) holds.
func ThreeCycle() Demo {
	reg := ap.NewRegistry()
	isZero := reg.New("x=0")
	el := kripke.NewExprLabeler()
	mustBind(el, isZero, "x % 3 == 0")

	succ := func(s int) []int { return []int{(s + 1) % 3} }
	label := func(s int, a ap.AP) bool { return el.Label(s, a) }
	k := kripke.NewStructure([]int{0}, succ, label, nil)

	b := ltl.NewBuilder(reg)
	phi := b.Global(b.Future(b.Atomic(isZero)))

	return Demo{
		Name:        "three-cycle",
		Reg:         reg,
		Structure:   k,
		Formula:     phi,
		WantHolds:   true,
		Description: "0->1->2->0 cycle; G F(x=0) holds unconditionally",
	}
}

// ThreeCycleFair is ThreeCycle with an (redundant, always-satisfiable)
// fairness constraint on x=1, exercising the k=1 generalized
// acceptance path through a structure that already satisfies the
// formula without it.
func ThreeCycleFair() Demo {
	reg := ap.NewRegistry()
	isZero := reg.New("x=0")
	isOne := reg.New("x=1")
	el := kripke.NewExprLabeler()
	mustBind(el, isZero, "x % 3 == 0")
	mustBind(el, isOne, "x % 3 == 1")

	succ := func(s int) []int { return []int{(s + 1) % 3} }
	label := func(s int, a ap.AP) bool { return el.Label(s, a) }
	fair := func(s int) bool { return el.Label(s, isOne) }
	k := kripke.NewStructure([]int{0}, succ, label, []func(int) bool{fair})

	b := ltl.NewBuilder(reg)
	phi := b.Global(b.Future(b.Atomic(isZero)))

	return Demo{
		Name:        "three-cycle-fair",
		Reg:         reg,
		Structure:   k,
		Formula:     phi,
		WantHolds:   true,
		Description: "three-cycle plus a fairness constraint that the only cycle already satisfies",
	}
}

// EventuallyStuck has succ(0)={0,1}, succ(1)={1}, with a fairness
// constraint requiring x=1 infinitely often. That constraint rules
// out the always-stay-at-0 run, so every fair run eventually reaches
// 1 and stays: F G(x=1) holds.
func EventuallyStuck() Demo {
	reg := ap.NewRegistry()
	isOne := reg.New("x=1")
	el := kripke.NewExprLabeler()
	mustBind(el, isOne, "x == 1")

	succ := func(s int) []int {
		if s == 0 {
			return []int{0, 1}
		}
		return []int{1}
	}
	label := func(s int, a ap.AP) bool { return el.Label(s, a) }
	fair := func(s int) bool { return el.Label(s, isOne) }
	k := kripke.NewStructure([]int{0}, succ, label, []func(int) bool{fair})

	b := ltl.NewBuilder(reg)
	phi := b.Future(b.Global(b.Atomic(isOne)))

	return Demo{
		Name:        "eventually-stuck",
		Reg:         reg,
		Structure:   k,
		Formula:     phi,
		WantHolds:   true,
		Description: "fairness on x=1 excludes the run that never leaves 0; F G(x=1) holds",
	}
}

// Alternation is a 2-state 0<->1 structure checked against a
// tautological formula over its own alphabet, a boundary sanity case.
func Alternation() Demo {
	reg := ap.NewRegistry()
	isZero := reg.New("x=0")
	isOne := reg.New("x=1")
	// b.Or folds two atomic operands into a single atomic over the
	// registry's memoized Or-AP, so that fold target needs its own
	// binding too, not just its operands.
	either := reg.Or(isZero, isOne)
	el := kripke.NewExprLabeler()
	mustBind(el, isZero, "x == 0")
	mustBind(el, isOne, "x == 1")
	mustBind(el, either, "x == 0 or x == 1")

	succ := func(s int) []int { return []int{1 - s} }
	label := func(s int, a ap.AP) bool { return el.Label(s, a) }
	k := kripke.NewStructure([]int{0}, succ, label, nil)

	b := ltl.NewBuilder(reg)
	phi := b.Global(b.Or(b.Atomic(isZero), b.Atomic(isOne)))

	return Demo{
		Name:        "alternation",
		Reg:         reg,
		Structure:   k,
		Formula:     phi,
		WantHolds:   true,
		Description: "0<->1 alternation; G(x=0 or x=1) is a tautology over this alphabet",
	}
}

// SelfLoop is a single self-looping state whose label never satisfies
// x=1: F(x=1) is violated by the only run, giving the boundary lasso
// shape stem=[], loop=[0].
func SelfLoop() Demo {
	reg := ap.NewRegistry()
	isOne := reg.New("x=1")
	el := kripke.NewExprLabeler()
	mustBind(el, isOne, "x == 1")

	succ := func(s int) []int { return []int{s} }
	label := func(s int, a ap.AP) bool { return el.Label(s, a) }
	k := kripke.NewStructure([]int{0}, succ, label, nil)

	b := ltl.NewBuilder(reg)
	phi := b.Future(b.Atomic(isOne))

	return Demo{
		Name:        "self-loop",
		Reg:         reg,
		Structure:   k,
		Formula:     phi,
		WantHolds:   false,
		Description: "single self-loop never reaching x=1; F(x=1) is violated",
	}
}

// ReverseCollatz is the mod-6 reverse-Collatz residue graph:
// succ(x) = {2x mod 6} union ({(x-1)/3 mod 6} when x mod 6 == 4),
// starting from residue 1. The reachable set from 1 is exactly
// {1, 2, 4} (1->2->4->{1,2}->...), so G(x=1 or x=2 or x=4) holds.
func ReverseCollatz() Demo {
	reg := ap.NewRegistry()
	isOne := reg.New("x=1")
	isTwo := reg.New("x=2")
	isFour := reg.New("x=4")
	// As in Alternation, each b.Or below folds into a memoized Or-AP,
	// and those fold targets need bindings of their own.
	twoOrFour := reg.Or(isTwo, isFour)
	anyOf := reg.Or(isOne, twoOrFour)
	el := kripke.NewExprLabeler()
	mustBind(el, isOne, "x == 1")
	mustBind(el, isTwo, "x == 2")
	mustBind(el, isFour, "x == 4")
	mustBind(el, twoOrFour, "x == 2 or x == 4")
	mustBind(el, anyOf, "x == 1 or x == 2 or x == 4")

	succ := func(s int) []int {
		out := []int{(2 * s) % 6}
		if s%6 == 4 {
			out = append(out, ((s-1)/3)%6)
		}
		return out
	}
	label := func(s int, a ap.AP) bool { return el.Label(s, a) }
	k := kripke.NewStructure([]int{1}, succ, label, nil)

	b := ltl.NewBuilder(reg)
	phi := b.Global(b.Or(b.Atomic(isOne), b.Or(b.Atomic(isTwo), b.Atomic(isFour))))

	return Demo{
		Name:        "reverse-collatz",
		Reg:         reg,
		Structure:   k,
		Formula:     phi,
		WantHolds:   true,
		Description: "reverse-Collatz mod 6 from residue 1; the reachable set is exactly {1,2,4}, so G(x=1 or x=2 or x=4) holds",
	}
}

// All returns every built-in demo, in a stable order.
func All() []Demo {
	return []Demo{
		ThreeCycle(),
		ThreeCycleFair(),
		EventuallyStuck(),
		Alternation(),
		SelfLoop(),
		ReverseCollatz(),
	}
}

// Lookup finds a demo by name.
func Lookup(name string) (Demo, bool) {
	for _, d := range All() {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}
