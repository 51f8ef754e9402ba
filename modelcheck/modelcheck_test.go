package modelcheck

import (
	"testing"

	"github.com/openltl/ltlcheck/ap"
	"github.com/openltl/ltlcheck/kripke"
	"github.com/openltl/ltlcheck/ltl"
	"github.com/openltl/ltlcheck/models"
)

func TestEndToEndDemos(t *testing.T) {
	for _, d := range models.All() {
		d := d
		t.Run(d.Name, func(t *testing.T) {
			lasso, violated := Check(d.Reg, d.Structure, d.Formula)
			if violated == d.WantHolds {
				t.Fatalf("%s: got violated=%v, want holds=%v", d.Name, violated, d.WantHolds)
			}
			if violated && len(lasso.Loop) == 0 {
				t.Fatalf("%s: counterexample lasso must have a non-empty loop", d.Name)
			}
			if !violated && lasso != nil {
				t.Fatalf("%s: Check should return a nil lasso when the formula holds", d.Name)
			}
		})
	}
}

func TestModelCheckTrueFormulaAlwaysHolds(t *testing.T) {
	reg := ap.NewRegistry()
	a := reg.New("a")
	el := kripke.NewExprLabeler()
	if err := el.Bind(a, "true"); err != nil {
		t.Fatalf("bind: %v", err)
	}
	k := kripke.NewStructure([]int{0}, func(s int) []int { return []int{s} }, el.Label, nil)

	b := ltl.NewBuilder(reg)
	trueF := b.Atomic(reg.True())

	_, violated := Check(reg, k, trueF)
	if violated {
		t.Fatalf("the always-true literal should hold on every structure")
	}
}

func TestModelCheckFalseFormulaAlwaysViolated(t *testing.T) {
	reg := ap.NewRegistry()
	k := kripke.NewStructure([]int{0}, func(s int) []int { return []int{s} }, func(int, ap.AP) bool { return false }, nil)

	b := ltl.NewBuilder(reg)
	falseF := b.Atomic(reg.False())

	lasso, violated := Check(reg, k, falseF)
	if !violated {
		t.Fatalf("the always-false literal should be violated on every structure")
	}
	if lasso == nil || len(lasso.Loop) == 0 {
		t.Fatalf("expected a counterexample with a non-empty loop")
	}
}

func TestSimplifyClipsRedundantBackEdges(t *testing.T) {
	seq := []int{1, 2, 3, 2, 4}
	got := clipBackEdges(seq)
	want := []int{1, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("clipBackEdges(%v) = %v, want %v", seq, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("clipBackEdges(%v) = %v, want %v", seq, got, want)
		}
	}
}

func TestRealignRotatesLoopToEarliestSharedState(t *testing.T) {
	stem := []int{0, 1, 2}
	loop := []int{5, 1, 6}
	newStem, newLoop := realign(stem, loop)

	if len(newStem) != 1 || newStem[0] != 0 {
		t.Fatalf("expected stem truncated to [0], got %v", newStem)
	}
	if len(newLoop) != 3 || newLoop[0] != 1 {
		t.Fatalf("expected loop rotated to start at the shared state 1, got %v", newLoop)
	}
}

func TestLassoReportIsValidYAML(t *testing.T) {
	l := &Lasso[int]{Stem: []int{0, 1}, Loop: []int{2, 3}}
	data, err := l.Report()
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("Report produced empty output")
	}
}
