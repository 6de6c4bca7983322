package dedalog

// Rule is a head expression implied by a conjunction of body
// expressions (spec §3). The head must be non-negated, non-built-in,
// and the body non-empty — enforced at insertion time by Validate,
// not by this constructor, so that programmatic callers and the
// parser share one validation path.
type Rule struct {
	Head Expression
	Body []Expression
}

// variablesIn collects the distinct variables appearing in e's terms.
func variablesIn(e Expression, into map[Term]bool) {
	for _, t := range e.Terms {
		if isVariable(t) {
			into[t] = true
		}
	}
}

// positiveNonBuiltInVars returns the set of variables appearing in at
// least one positive, non-built-in body literal of r — the set that
// range-restriction (I2) requires every head/negated/built-in
// variable to be a member of.
func (r Rule) positiveNonBuiltInVars() map[Term]bool {
	vars := make(map[Term]bool)
	for _, lit := range r.Body {
		if lit.Negated || lit.IsBuiltIn() {
			continue
		}
		variablesIn(lit, vars)
	}
	return vars
}
