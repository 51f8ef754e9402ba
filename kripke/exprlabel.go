package kripke

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/openltl/ltlcheck/ap"
)

// ExprLabeler compiles small boolean expressions (e.g. "x % 3 == 0")
// into a per-state Label predicate for integer Kripke states, used by
// the built-in demo models. It is a
// value-expression evaluator over a single state, not an LTL or
// Kripke-description parser: it has no temporal operators and cannot
// express a formula, only label(s, a) bool.
type ExprLabeler struct {
	programs map[uint64]*vm.Program
}

// NewExprLabeler constructs an empty ExprLabeler.
func NewExprLabeler() *ExprLabeler {
	return &ExprLabeler{programs: make(map[uint64]*vm.Program)}
}

// Bind compiles exprSrc, an expr-lang boolean expression over the
// integer variable x, and associates it with AP a.
func (el *ExprLabeler) Bind(a ap.AP, exprSrc string) error {
	program, err := expr.Compile(exprSrc, expr.Env(map[string]any{"x": 0}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("kripke: compiling AP expression %q for %s: %w", exprSrc, a, err)
	}
	el.programs[a.ID()] = program
	return nil
}

// Label evaluates the compiled expression for AP a at integer state
// s. It panics if a was never bound via Bind — an input-structure
// error.
func (el *ExprLabeler) Label(s int, a ap.AP) bool {
	program, ok := el.programs[a.ID()]
	if !ok {
		panic(fmt.Sprintf("kripke: ExprLabeler: no expression bound for %s", a))
	}
	out, err := expr.Run(program, map[string]any{"x": s})
	if err != nil {
		panic(fmt.Sprintf("kripke: ExprLabeler: evaluating %s at x=%d: %v", a, s, err))
	}
	return out.(bool)
}
