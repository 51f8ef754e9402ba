package tableau

import (
	"testing"

	"github.com/openltl/ltlcheck/ap"
	"github.com/openltl/ltlcheck/automaton"
	"github.com/openltl/ltlcheck/ltl"
)

func TestBuildAtomicIsSatisfiable(t *testing.T) {
	reg := ap.NewRegistry()
	b := ltl.NewBuilder(reg)
	a := reg.New("a")
	phi := ltl.Normalize(reg, b.Atomic(a))

	res := Build(phi)
	collapsed := automaton.Collapse(res.GBA)

	if len(collapsed.InitialStates()) == 0 {
		t.Fatalf("Build(Atomic) should have at least one initial state")
	}
	_, found := automaton.FindAcceptingRun(collapsed)
	if !found {
		t.Fatalf("Atomic(a) is satisfiable: some run should be accepted")
	}
}

func TestBuildTerminates(t *testing.T) {
	reg := ap.NewRegistry()
	b := ltl.NewBuilder(reg)
	a := reg.New("a")
	c := reg.New("c")
	phi := ltl.Normalize(reg, b.Until(b.Atomic(a), b.And(b.Atomic(c), b.Global(b.Atomic(a)))))

	res := Build(phi)
	// Termination bound: |closed states| <= 2^|subformulas|. A handful
	// of subformulas bounds this to a small number in practice; the
	// real guarantee is simply that Build returns at all.
	if len(res.Now) == 0 {
		t.Fatalf("expected at least one closed tableau node")
	}
}

func TestUntilIsSatisfiable(t *testing.T) {
	// phi = a U c: the tableau automaton on its own, with its Until
	// fairness set collapsed, must accept some run.
	reg := ap.NewRegistry()
	b := ltl.NewBuilder(reg)
	a := reg.New("a")
	c := reg.New("c")
	phi := ltl.Normalize(reg, b.Until(b.Atomic(a), b.Atomic(c)))

	res := Build(phi)
	collapsed := automaton.Collapse(res.GBA)

	// Build a product-free check: does the automaton admit an
	// accepting run at all (it should — a U c is satisfiable)?
	_, found := automaton.FindAcceptingRun(collapsed)
	if !found {
		t.Fatalf("a U c is satisfiable and must admit an accepting run")
	}
}

func TestFsetDedupAndClone(t *testing.T) {
	reg := ap.NewRegistry()
	b := ltl.Builder{}
	a := reg.New("a")

	f := fsetOf(b.Atomic(a), b.Atomic(a))
	if len(f.list) != 1 {
		t.Fatalf("fsetOf should dedup structurally identical formulas, got %d entries", len(f.list))
	}

	clone := f.Clone()
	clone.Add(b.Atomic(reg.New("c")))
	if len(f.list) != 1 {
		t.Fatalf("Clone must be independent of the original set")
	}
}
