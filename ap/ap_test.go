package ap

import "testing"

func TestRegistryNewAssignsDistinctIDs(t *testing.T) {
	reg := NewRegistry()
	a := reg.New("a")
	b := reg.New("b")
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct IDs, got %d and %d", a.ID(), b.ID())
	}
	if a.Name() != "a" || b.Name() != "b" {
		t.Fatalf("unexpected names: %q, %q", a.Name(), b.Name())
	}
}

func TestComplementInvolution(t *testing.T) {
	reg := NewRegistry()
	a := reg.New("a")

	na := reg.Complement(a)
	nna := reg.Complement(na)

	if !nna.Equal(a) {
		t.Fatalf("Complement(Complement(a)) = %v, want %v", nna, a)
	}
	if na.Equal(a) {
		t.Fatalf("Complement(a) should not equal a")
	}
}

func TestComplementMemoized(t *testing.T) {
	reg := NewRegistry()
	a := reg.New("a")

	na1 := reg.Complement(a)
	na2 := reg.Complement(a)
	if !na1.Equal(na2) {
		t.Fatalf("Complement(a) called twice returned different APs: %v vs %v", na1, na2)
	}
}

func TestTrueFalseAreComplements(t *testing.T) {
	reg := NewRegistry()
	tr := reg.True()
	fa := reg.False()
	if reg.Complement(tr).ID() != fa.ID() {
		t.Fatalf("Complement(True()) should equal False()")
	}
	if reg.Complement(fa).ID() != tr.ID() {
		t.Fatalf("Complement(False()) should equal True()")
	}
}

func TestOrAndFoldCommuteOnOperandOrder(t *testing.T) {
	reg := NewRegistry()
	a := reg.New("a")
	b := reg.New("b")

	if !reg.Or(a, b).Equal(reg.Or(b, a)) {
		t.Fatalf("Or should be order-independent under folding")
	}
	if !reg.And(a, b).Equal(reg.And(b, a)) {
		t.Fatalf("And should be order-independent under folding")
	}
}

func TestAPStringFallsBackToID(t *testing.T) {
	reg := NewRegistry()
	anon := reg.New("")
	if anon.String() == "" {
		t.Fatalf("unnamed AP should still stringify to something identifying")
	}
}
