package automaton

import "testing"

func chain(n int) *Automaton[int, string] {
	a := New[int, string]()
	a.AddInitial(0)
	for i := 0; i < n-1; i++ {
		a.AddTransition(i, "x", i+1)
	}
	a.AddTransition(n-1, "x", n-1) // self-loop at the end
	a.Accepting = func(q int) bool { return q == n-1 }
	return a
}

func TestAddTransitionDedups(t *testing.T) {
	a := New[int, string]()
	a.AddTransition(0, "x", 1)
	a.AddTransition(0, "x", 1)
	a.AddTransition(0, "y", 1)
	if len(a.Trans[0]) != 2 {
		t.Fatalf("expected 2 distinct transitions, got %d", len(a.Trans[0]))
	}
}

func TestFindAcceptingRunOnEmptyLanguage(t *testing.T) {
	a := New[int, string]()
	a.AddInitial(0)
	a.AddTransition(0, "x", 0)
	a.Accepting = func(int) bool { return false }

	_, found := FindAcceptingRun(a)
	if found {
		t.Fatalf("automaton with no accepting states should have empty language")
	}
}

func TestFindAcceptingRunOnSelfLoop(t *testing.T) {
	a := New[int, string]()
	a.AddInitial(0)
	a.AddTransition(0, "x", 0)
	a.Accepting = func(int) bool { return true }

	lasso, found := FindAcceptingRun(a)
	if !found {
		t.Fatalf("self-loop at an accepting initial state must be accepted")
	}
	if len(lasso.Stem) != 0 || len(lasso.Loop) != 1 || lasso.Loop[0] != 0 {
		t.Fatalf("expected stem=[] loop=[0], got stem=%v loop=%v", lasso.Stem, lasso.Loop)
	}
}

func TestFindAcceptingRunWithStem(t *testing.T) {
	a := chain(4)
	lasso, found := FindAcceptingRun(a)
	if !found {
		t.Fatalf("expected an accepting run in a chain ending in a self-loop")
	}
	if len(lasso.Loop) == 0 {
		t.Fatalf("loop must be non-empty")
	}
}

func TestCollapseEmptyFairnessAcceptsEverything(t *testing.T) {
	g := NewGeneralized[int, string]()
	g.AddInitial(0)
	g.AddTransition(0, "x", 0)

	b := Collapse(g)
	_, found := FindAcceptingRun(b)
	if !found {
		t.Fatalf("empty Fairness list should behave as a single always-true constraint")
	}
}

func TestCollapseRequiresAllFairnessSetsInfinitelyOften(t *testing.T) {
	g := NewGeneralized[int, string]()
	g.AddInitial(0)
	g.AddTransition(0, "x", 1)
	g.AddTransition(1, "x", 0)
	// Fairness set only satisfied at state 1; the 0<->1 cycle visits it
	// infinitely often, so the collapsed automaton must still accept.
	g.Fairness = []func(int) bool{func(q int) bool { return q == 1 }}

	b := Collapse(g)
	_, found := FindAcceptingRun(b)
	if !found {
		t.Fatalf("cycle visiting the only fairness set infinitely often should be accepted")
	}
}

func TestCollapseRejectsCycleMissingAFairnessSet(t *testing.T) {
	g := NewGeneralized[int, string]()
	g.AddInitial(0)
	g.AddTransition(0, "x", 0)
	// Fairness set is never satisfied anywhere in this cycle.
	g.Fairness = []func(int) bool{func(q int) bool { return q == 999 }}

	b := Collapse(g)
	_, found := FindAcceptingRun(b)
	if found {
		t.Fatalf("cycle that never satisfies the fairness set must be rejected")
	}
}

func TestIntersectOfTrueAutomatonIsIdentity(t *testing.T) {
	b := chain(3)

	alwaysTrue := New[struct{}, string]()
	alwaysTrue.AddInitial(struct{}{})
	alwaysTrue.AddTransition(struct{}{}, "x", struct{}{})
	alwaysTrue.Accepting = func(struct{}) bool { return true }

	match := func(l1, l2 string) bool { return l1 == l2 }
	combine := func(l1, l2 string) string { return l1 }

	prod := Intersect(b, alwaysTrue, match, combine)

	_, foundB := FindAcceptingRun(b)
	_, foundProd := FindAcceptingRun(prod)
	if foundB != foundProd {
		t.Fatalf("Intersect(B, B_true) should preserve emptiness: B=%v, prod=%v", foundB, foundProd)
	}
}

func TestIntersectMatchFiltersTransitions(t *testing.T) {
	b1 := New[int, string]()
	b1.AddInitial(0)
	b1.AddTransition(0, "a", 0)
	b1.Accepting = func(int) bool { return true }

	b2 := New[int, string]()
	b2.AddInitial(0)
	b2.AddTransition(0, "b", 0)
	b2.Accepting = func(int) bool { return true }

	// Labels never match, so the product has no outgoing edges at all.
	match := func(l1, l2 string) bool { return l1 == l2 }
	combine := func(l1, l2 string) string { return l1 }

	prod := Intersect(b1, b2, match, combine)
	if len(prod.Trans[ProductState[int, int]{Left: 0, Right: 0, Phase: 0}]) != 0 {
		t.Fatalf("mismatched labels must produce no product transitions")
	}
}
