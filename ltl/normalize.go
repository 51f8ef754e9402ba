package ltl

import "github.com/openltl/ltlcheck/ap"

// Normalize rewrites f into negation normal form: the result uses
// only Atomic | Not(Atomic) | Or | And | Until | Release, with Not
// appearing only directly above Atomic, and no Global/Future nodes.
// Normalize is idempotent and preserves APSet.
func Normalize(reg *ap.Registry, f Formula) Formula {
	switch f.Tag() {
	case TagAtomic:
		return f

	case TagNot:
		return normalizeNot(reg, f.Children()[0])

	case TagOr:
		c := f.Children()
		return newOr(Normalize(reg, c[0]), Normalize(reg, c[1]))

	case TagAnd:
		c := f.Children()
		return newAnd(Normalize(reg, c[0]), Normalize(reg, c[1]))

	case TagUntil:
		c := f.Children()
		return newUntil(Normalize(reg, c[0]), Normalize(reg, c[1]))

	case TagRelease:
		c := f.Children()
		return newRelease(Normalize(reg, c[0]), Normalize(reg, c[1]))

	case TagGlobal:
		// G φ ⇒ R(false, N(φ)). false is synthetic, not a formula AP:
		// it carries an empty apset so Normalize preserves APSet.
		falseLit := (&atomicFormula{atom: reg.False(), apset: apSetOf()})
		return newRelease(falseLit, Normalize(reg, f.Children()[0]))

	case TagFuture:
		// F φ ⇒ U(true, N(φ)). Same synthetic-literal treatment as above.
		trueLit := (&atomicFormula{atom: reg.True(), apset: apSetOf()})
		return newUntil(trueLit, Normalize(reg, f.Children()[0]))

	default:
		panic("ltl: Normalize: unreachable formula tag")
	}
}

// normalizeNot handles ¬inner by case on inner's shape, applying the
// De Morgan / duality rewrite rules that push negation down to the
// literals.
func normalizeNot(reg *ap.Registry, inner Formula) Formula {
	switch inner.Tag() {
	case TagAtomic:
		// ¬Atomic(a) stays as Not(Atomic(a)).
		return newNot(inner)

	case TagNot:
		// ¬¬φ ⇒ N(φ)
		return Normalize(reg, inner.Children()[0])

	case TagAnd:
		// ¬(a ∧ b) ⇒ N(¬a) ∨ N(¬b)
		c := inner.Children()
		return newOr(normalizeNot(reg, c[0]), normalizeNot(reg, c[1]))

	case TagOr:
		// ¬(a ∨ b) ⇒ N(¬a) ∧ N(¬b)
		c := inner.Children()
		return newAnd(normalizeNot(reg, c[0]), normalizeNot(reg, c[1]))

	case TagUntil:
		// ¬(U a b) ⇒ R(N(¬a), N(¬b))
		c := inner.Children()
		return newRelease(normalizeNot(reg, c[0]), normalizeNot(reg, c[1]))

	case TagRelease:
		// ¬(R a b) ⇒ U(N(¬a), N(¬b))
		c := inner.Children()
		return newUntil(normalizeNot(reg, c[0]), normalizeNot(reg, c[1]))

	case TagGlobal:
		// ¬(G φ) ⇒ U(true, N(¬φ)). Synthetic true carries no apset.
		trueLit := (&atomicFormula{atom: reg.True(), apset: apSetOf()})
		return newUntil(trueLit, normalizeNot(reg, inner.Children()[0]))

	case TagFuture:
		// ¬(F φ) ⇒ R(false, N(¬φ)). Synthetic false carries no apset.
		falseLit := (&atomicFormula{atom: reg.False(), apset: apSetOf()})
		return newRelease(falseLit, normalizeNot(reg, inner.Children()[0]))

	default:
		panic("ltl: normalizeNot: unreachable formula tag")
	}
}
