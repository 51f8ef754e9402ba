// Package modelcheck composes the LTL-to-tableau, Kripke-to-Büchi,
// product, and nested-DFS stages into a single Check entry point, and
// projects any accepting run found back into a Kripke-state
// counterexample lasso.
package modelcheck

import (
	"github.com/rs/zerolog"

	"github.com/openltl/ltlcheck/ap"
	"github.com/openltl/ltlcheck/automaton"
	"github.com/openltl/ltlcheck/kripke"
	"github.com/openltl/ltlcheck/ltl"
	"github.com/openltl/ltlcheck/runid"
	"github.com/openltl/ltlcheck/tableau"
)

// Option configures a Check call.
type Option func(*config)

type config struct {
	log zerolog.Logger
}

// WithLogger attaches a logger; each Check call logs one debug event
// per pipeline stage, tagged with a freshly minted run ID. The zero
// value zerolog.Logger discards everything, so WithLogger is optional.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// Check decides whether k satisfies phi. phi and every AP observed by
// k.Label must have been built from reg, so that True/False/Complement
// resolve consistently between the formula and the structure. k.Label
// is never called with reg.True() or reg.False().
//
// It returns (nil, false) when k ⊨ phi. Otherwise it returns a
// simplified counterexample lasso: a fair run of k violating phi.
func Check[S comparable](reg *ap.Registry, k *kripke.Structure[S], phi ltl.Formula, opts ...Option) (*Lasso[S], bool) {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	run := runid.New()
	log := cfg.log.With().Str("run_id", run.String()).Logger()

	negated := ltl.NewBuilder(reg).Not(phi)
	nnf := ltl.Normalize(reg, negated)
	log.Debug().Str("stage", "normalize").Str("formula", nnf.String()).Msg("normalized negated formula")

	tab := tableau.Build(nnf)
	bBar := automaton.Collapse(tab.GBA)
	log.Debug().Str("stage", "tableau").Int("states", len(bBar.Trans)).Msg("built negated-formula automaton")

	// Use nnf's APSet, not phi's: negating phi can fold an atomic
	// literal into its complement (Builder.Not's atomic-fold path),
	// minting an AP that never appears in phi.APSet() but does appear
	// in every state label the tableau side will actually compare
	// against. Normalize preserves APSet, so nnf.APSet() == negated's.
	// True and False are decided by match below without consulting the
	// state label, so k.Label is never asked about them.
	apSet := make([]ap.AP, 0, len(nnf.APSet()))
	for _, a := range nnf.APSet() {
		if a.Equal(reg.True()) || a.Equal(reg.False()) {
			continue
		}
		apSet = append(apSet, a)
	}
	bK := kripke.ToBuchi(k, apSet)
	log.Debug().Str("stage", "kripke").Int("states", len(bK.Trans)).Msg("built structure automaton")

	match := func(klabel kripke.Label, lits []tableau.SignedLiteral) bool {
		for _, lit := range lits {
			switch {
			case lit.AP.Equal(reg.True()):
				if lit.Negated {
					return false
				}
			case lit.AP.Equal(reg.False()):
				if !lit.Negated {
					return false
				}
			default:
				holds := klabel.Contains(lit.AP)
				if holds != !lit.Negated {
					return false
				}
			}
		}
		return true
	}
	combine := func(klabel kripke.Label, _ []tableau.SignedLiteral) kripke.Label { return klabel }

	prod := automaton.Intersect(bK, bBar, match, combine)
	log.Debug().Str("stage", "intersect").Int("states", len(prod.Trans)).Msg("built product automaton")

	run1, found := automaton.FindAcceptingRun(prod)
	if !found {
		log.Debug().Str("stage", "ndfs").Msg("no accepting run: formula holds")
		return nil, false
	}

	projStem := make([]S, len(run1.Stem))
	for i, p := range run1.Stem {
		projStem[i] = p.Left.Inner
	}
	projLoop := make([]S, len(run1.Loop))
	for i, p := range run1.Loop {
		projLoop[i] = p.Left.Inner
	}
	stem, loop := simplify(projStem, projLoop)
	log.Debug().Str("stage", "project").Int("stem_len", len(stem)).Int("loop_len", len(loop)).Msg("counterexample lasso found")

	return &Lasso[S]{Stem: stem, Loop: loop}, true
}
