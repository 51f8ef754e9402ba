package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntersectAcceptingRequiresBothPhasesInOrder(t *testing.T) {
	b1 := New[int, string]()
	b1.AddInitial(0)
	b1.AddTransition(0, "x", 0)
	b1.Accepting = func(int) bool { return true }

	b2 := New[int, string]()
	b2.AddInitial(0)
	b2.AddTransition(0, "x", 0)
	b2.Accepting = func(int) bool { return true }

	prod := Intersect(b1, b2, func(a, b string) bool { return a == b }, func(a, b string) string { return a })

	lasso, found := FindAcceptingRun(prod)
	require.True(t, found, "both components looping on an always-accepting self-loop should intersect non-emptily")
	require.NotEmpty(t, lasso.Loop)
}

func TestIntersectRequiresBothComponentsAccepting(t *testing.T) {
	b1 := New[int, string]()
	b1.AddInitial(0)
	b1.AddTransition(0, "x", 0)
	b1.Accepting = func(int) bool { return false }

	b2 := New[int, string]()
	b2.AddInitial(0)
	b2.AddTransition(0, "x", 0)
	b2.Accepting = func(int) bool { return true }

	prod := Intersect(b1, b2, func(a, b string) bool { return a == b }, func(a, b string) string { return a })

	_, found := FindAcceptingRun(prod)
	require.False(t, found, "the product's acceptance requires visiting phase 2, which needs b1 to accept too")
}
