package modelcheck

import "gopkg.in/yaml.v3"

// Lasso is a counterexample: a finite stem followed by a finite
// non-empty loop of Kripke states, witnessing a fair run of the
// checked structure that violates the checked formula.
type Lasso[S any] struct {
	Stem []S `yaml:"stem"`
	Loop []S `yaml:"loop"`
}

// Report renders the lasso as YAML, for --report output or logging.
func (l *Lasso[S]) Report() ([]byte, error) {
	return yaml.Marshal(l)
}

// clipBackEdges collapses redundant detours: whenever a value recurs
// later in seq, the stretch between the two occurrences is a round
// trip back to the same point and carries no information, so it is
// dropped. Kripke transitions depend only on state value, never on
// position in the run, so the edge leading into the first occurrence
// remains valid leading into whichever occurrence survives.
func clipBackEdges[S comparable](seq []S) []S {
	if len(seq) == 0 {
		return seq
	}
	last := make(map[S]int, len(seq))
	for i, s := range seq {
		last[s] = i
	}
	out := make([]S, 0, len(seq))
	for i := 0; i < len(seq); {
		out = append(out, seq[i])
		if j := last[seq[i]]; j > i {
			i = j + 1
		} else {
			i++
		}
	}
	return out
}

// realign finds the earliest pair (i,j) with stem[i] == loop[j],
// truncates the stem to [0,i), and rotates the loop to start at j
// (moving the skipped prefix to the loop's end). This shrinks the
// stem as much as possible by folding its tail into the cycle it
// already leads into.
func realign[S comparable](stem, loop []S) ([]S, []S) {
	for i, s := range stem {
		for j, l := range loop {
			if s == l {
				newStem := append([]S{}, stem[:i]...)
				newLoop := make([]S, 0, len(loop))
				newLoop = append(newLoop, loop[j:]...)
				newLoop = append(newLoop, loop[:j]...)
				return newStem, newLoop
			}
		}
	}
	return stem, loop
}

// simplify applies clipBackEdges to stem and loop independently, then
// realigns them, producing a shorter but equally valid witness.
func simplify[S comparable](stem, loop []S) ([]S, []S) {
	stem = clipBackEdges(stem)
	loop = clipBackEdges(loop)
	return realign(stem, loop)
}
