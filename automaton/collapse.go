package automaton

// GeneralizedAutomaton is a Büchi automaton with k generalized
// acceptance ("fairness") sets: a run is accepting iff it visits
// every set infinitely often. Used both for the LTL→GBA tableau's
// output (one set per Until subformula) and for a Kripke structure's
// own fairness constraints.
type GeneralizedAutomaton[Q comparable, L any] struct {
	Initial  map[Q]struct{}
	Trans    map[Q][]Transition[Q, L]
	Fairness []func(Q) bool
}

// NewGeneralized constructs an empty GeneralizedAutomaton.
func NewGeneralized[Q comparable, L any]() *GeneralizedAutomaton[Q, L] {
	return &GeneralizedAutomaton[Q, L]{
		Initial: make(map[Q]struct{}),
		Trans:   make(map[Q][]Transition[Q, L]),
	}
}

func (g *GeneralizedAutomaton[Q, L]) AddInitial(q Q) { g.Initial[q] = struct{}{} }

func (g *GeneralizedAutomaton[Q, L]) AddTransition(from Q, label L, to Q) {
	for _, t := range g.Trans[from] {
		if t.To == to {
			return
		}
	}
	g.Trans[from] = append(g.Trans[from], Transition[Q, L]{Label: label, To: to})
}

// CounterState pairs an inner automaton/Kripke state with the
// fairness-cycle phase 0..k used by the counter-product construction.
type CounterState[Q comparable] struct {
	Inner Q
	Phase int
}

// Collapse compiles a GeneralizedAutomaton with k fairness sets into
// an ordinary Automaton with a single acceptance set, using the
// rotating-counter product of the construction:
//
//	step(j, s') = 0          if j == k
//	            = j+1        if j != k and F_j(s')
//	            = j          otherwise
//	accepting((s,j)) <=> j == k
//
// An infinite run visits Accepting infinitely often iff it visits
// every fairness set infinitely often. An empty Fairness list is
// treated as a single always-true constraint.
func Collapse[Q comparable, L any](g *GeneralizedAutomaton[Q, L]) *Automaton[CounterState[Q], L] {
	fairness := g.Fairness
	if len(fairness) == 0 {
		fairness = []func(Q) bool{func(Q) bool { return true }}
	}
	k := len(fairness)

	step := func(j int, q Q) int {
		if j == k {
			return 0
		}
		if fairness[j](q) {
			return j + 1
		}
		return j
	}

	out := New[CounterState[Q], L]()
	out.Accepting = func(cs CounterState[Q]) bool { return cs.Phase == k }

	visited := make(map[CounterState[Q]]struct{})
	var queue []CounterState[Q]

	enqueue := func(cs CounterState[Q]) {
		if _, ok := visited[cs]; ok {
			return
		}
		visited[cs] = struct{}{}
		queue = append(queue, cs)
	}

	for q := range g.Initial {
		cs := CounterState[Q]{Inner: q, Phase: step(0, q)}
		out.AddInitial(cs)
		enqueue(cs)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range g.Trans[cur.Inner] {
			next := CounterState[Q]{Inner: t.To, Phase: step(cur.Phase, t.To)}
			out.AddTransition(cur, t.Label, next)
			enqueue(next)
		}
	}

	return out
}
