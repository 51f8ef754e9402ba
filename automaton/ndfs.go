package automaton

// Lasso is a finite stem followed by a finite non-empty loop: the
// witness that stem · loop · loop · ... is an accepting run.
type Lasso[Q any] struct {
	Stem []Q
	Loop []Q
}

// FindAcceptingRun runs the classic Courcoubetis-Vardi-Wolper nested
// DFS over b, a Büchi automaton with a single
// acceptance set. It returns (lasso, true) if some fair infinite run
// exists, or (nil, false) if the automaton's language is empty.
func FindAcceptingRun[Q comparable, L any](b *Automaton[Q, L]) (*Lasso[Q], bool) {
	hashed := make(map[Q]bool)
	flagged := make(map[Q]bool)
	stack1 := make([]Q, 0)

	var found *Lasso[Q]

	indexIn := func(stack []Q, q Q) int {
		for i, s := range stack {
			if s == q {
				return i
			}
		}
		return -1
	}

	var dfs2 func(stack2 []Q) bool
	dfs2 = func(stack2 []Q) bool {
		cur := stack2[len(stack2)-1]
		flagged[cur] = true
		for _, t := range b.Trans[cur] {
			n := t.To
			if idx := indexIn(stack1, n); idx >= 0 {
				loop := make([]Q, 0, len(stack1)-idx+len(stack2)-1)
				loop = append(loop, stack1[idx:]...)
				loop = append(loop, stack2[1:]...)
				stem := make([]Q, idx)
				copy(stem, stack1[:idx])
				found = &Lasso[Q]{Stem: stem, Loop: loop}
				return true
			}
			if !flagged[n] {
				next := make([]Q, len(stack2)+1)
				copy(next, stack2)
				next[len(stack2)] = n
				if dfs2(next) {
					return true
				}
			}
		}
		return false
	}

	var dfs1 func(q Q) bool
	dfs1 = func(q Q) bool {
		hashed[q] = true
		stack1 = append(stack1, q)
		for _, t := range b.Trans[q] {
			if !hashed[t.To] {
				if dfs1(t.To) {
					return true
				}
			}
		}
		if b.Accepting(q) {
			if dfs2([]Q{q}) {
				return true
			}
		}
		stack1 = stack1[:len(stack1)-1]
		return false
	}

	for _, q := range b.InitialStates() {
		if !hashed[q] {
			if dfs1(q) {
				return found, true
			}
		}
	}
	return nil, false
}
