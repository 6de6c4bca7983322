package dedalog

import "fmt"

// resolve returns t's bound value if t is a variable bound in b,
// otherwise t unchanged.
func resolve(t Term, b *Bindings) Term {
	if isVariable(t) {
		if v, ok := b.Get(t); ok {
			return v
		}
	}
	return t
}

// evalBuiltIn evaluates a binary built-in expression under bindings,
// per spec §4.1. A successful "=" against exactly one unbound
// variable binds that variable into b as a side effect; every other
// built-in is a pure test. expr.Arity() must be 2 — built-ins are
// strictly binary (spec §3). The parser only ever builds binary
// built-ins, and ValidateRule does not check built-in arity, so a
// mismatch here is reported as an internal invariant violation rather
// than a user-facing validation error.
func evalBuiltIn(expr Expression, b *Bindings) (bool, error) {
	if expr.Arity() != 2 {
		return false, fmt.Errorf("%w: built-in %q called with arity %d, want 2", ErrInternalInvariant, expr.Predicate, expr.Arity())
	}
	lhs, rhs := resolve(expr.Terms[0], b), resolve(expr.Terms[1], b)
	lhsVar, rhsVar := isVariable(lhs), isVariable(rhs)

	switch expr.Predicate {
	case "=":
		switch {
		case lhsVar && rhsVar:
			return false, fmt.Errorf("%w: both operands of = are unbound (%q, %q)", ErrUnboundBuiltin, lhs, rhs)
		case lhsVar:
			b.Set(lhs, rhs)
			return true, nil
		case rhsVar:
			b.Set(rhs, lhs)
			return true, nil
		default:
			return equalValues(lhs, rhs), nil
		}
	case "<>":
		if lhsVar || rhsVar {
			return false, fmt.Errorf("%w: both operands of <> must be bound (%q, %q)", ErrUnboundBuiltin, lhs, rhs)
		}
		return !equalValues(lhs, rhs), nil
	case "<", "<=", ">", ">=":
		if lhsVar || rhsVar {
			return false, fmt.Errorf("%w: both operands of %s must be bound (%q, %q)", ErrUnboundBuiltin, expr.Predicate, lhs, rhs)
		}
		return compareValues(expr.Predicate, lhs, rhs), nil
	default:
		return false, fmt.Errorf("%w: unknown built-in predicate %q", ErrInternalInvariant, expr.Predicate)
	}
}

// equalValues compares two bound, non-variable terms: numerically if
// both parse as numbers, otherwise as strings (spec §4.1).
func equalValues(a, b Term) bool {
	af, aok := parseNumber(a)
	bf, bok := parseNumber(b)
	if aok && bok {
		return af == bf
	}
	return a == b
}

// compareValues evaluates one of <, <=, >, >= between two bound
// terms as IEEE-754 doubles, coercing unparseable operands to 0.0
// (spec §4.1, preserved per §9's compatibility note).
func compareValues(op string, a, b Term) bool {
	af, ok := parseNumber(a)
	if !ok {
		af = 0.0
	}
	bf, ok := parseNumber(b)
	if !ok {
		bf = 0.0
	}
	switch op {
	case "<":
		return af < bf
	case "<=":
		return af <= bf
	case ">":
		return af > bf
	case ">=":
		return af >= bf
	}
	return false
}
