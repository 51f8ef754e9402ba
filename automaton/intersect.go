package automaton

// ProductState is the state of a synchronous product of two Büchi
// automata: the pair of component states plus a 3-phase counter that
// forces both components' acceptance sets to be visited infinitely
// often.
type ProductState[Q1, Q2 comparable] struct {
	Left  Q1
	Right Q2
	Phase int
}

// Intersect builds the synchronous product of b1 and b2. match
// decides which pairs of labels (one per automaton) may be taken
// together; combine produces the product's own label for such a
// pair. Only states reachable from a product-initial state are
// constructed.
func Intersect[Q1, Q2 comparable, L1, L2, L any](
	b1 *Automaton[Q1, L1],
	b2 *Automaton[Q2, L2],
	match func(L1, L2) bool,
	combine func(L1, L2) L,
) *Automaton[ProductState[Q1, Q2], L] {
	out := New[ProductState[Q1, Q2], L]()
	out.Accepting = func(p ProductState[Q1, Q2]) bool { return p.Phase == 2 }

	nextPhase := func(p int, accL bool, accR bool) int {
		switch {
		case p == 0 && accL:
			return 1
		case p == 1 && accR:
			return 2
		case p == 2:
			return 0
		default:
			return p
		}
	}

	visited := make(map[ProductState[Q1, Q2]]struct{})
	var queue []ProductState[Q1, Q2]

	enqueue := func(p ProductState[Q1, Q2]) {
		if _, ok := visited[p]; ok {
			return
		}
		visited[p] = struct{}{}
		queue = append(queue, p)
	}

	for q1 := range b1.Initial {
		for q2 := range b2.Initial {
			p := ProductState[Q1, Q2]{Left: q1, Right: q2, Phase: 0}
			out.AddInitial(p)
			enqueue(p)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, t1 := range b1.Trans[cur.Left] {
			for _, t2 := range b2.Trans[cur.Right] {
				if !match(t1.Label, t2.Label) {
					continue
				}
				phase := nextPhase(cur.Phase, b1.Accepting(t1.To), b2.Accepting(t2.To))
				next := ProductState[Q1, Q2]{Left: t1.To, Right: t2.To, Phase: phase}
				out.AddTransition(cur, combine(t1.Label, t2.Label), next)
				enqueue(next)
			}
		}
	}

	return out
}
