package dedalog

// Unify attempts to match expr against a ground fact, extending b in
// place. It returns false (without partially reverting any bindings
// already set in b) the moment a position fails — callers always pass
// a fresh child scope per attempt, per spec §4.7, so a failed
// attempt's partial bindings are simply discarded along with the
// scope.
func Unify(expr, fact Expression, b *Bindings) bool {
	if expr.Predicate != fact.Predicate || expr.Arity() != fact.Arity() {
		return false
	}
	for i, t := range expr.Terms {
		ft := fact.Terms[i]
		if isVariable(t) {
			if existing, ok := b.Get(t); ok {
				if existing != ft {
					return false
				}
				continue
			}
			b.Set(t, ft)
			continue
		}
		if t != ft {
			return false
		}
	}
	return true
}
