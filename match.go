package dedalog

// reorderGoals reorders goals so that positive non-built-in literals
// come first (preserving their mutual order), followed by negated
// literals and non-"=" built-ins in their original relative order.
// "=" is left wherever it falls among that trailing group — it is
// never pulled forward, only kept out of the leading positive block
// (spec §4.7).
func reorderGoals(goals []Expression) []Expression {
	positives := make([]Expression, 0, len(goals))
	rest := make([]Expression, 0, len(goals))
	for _, g := range goals {
		if !g.Negated && !g.IsBuiltIn() {
			positives = append(positives, g)
		} else {
			rest = append(rest, g)
		}
	}
	return append(positives, rest...)
}

// matchGoals recursively matches a conjunction of goals against
// facts, invoking yield once per fully-bound solution. yield may
// return an error to abort the whole search early; any other error
// (e.g. from built-in evaluation) also aborts immediately. Goals
// should already be in reordered form (spec §4.7) — callers that
// matter use reorderGoals first.
func matchGoals(goals []Expression, facts *FactStore, b *Bindings, yield func(*Bindings) error) error {
	if len(goals) == 0 {
		return yield(b)
	}

	goal, rest := goals[0], goals[1:]

	switch {
	case goal.IsBuiltIn():
		child := b.Child()
		result, err := evalBuiltIn(goal, child)
		if err != nil {
			return err
		}
		if result == goal.Negated {
			return nil
		}
		return matchGoals(rest, facts, child, yield)

	case goal.Negated:
		grounded := Substitute(goal, b)
		any := false
		for _, fact := range facts.GetFacts(grounded.Predicate) {
			if fact.Arity() != grounded.Arity() {
				continue
			}
			scratch := b.Child()
			if Unify(grounded, fact, scratch) {
				any = true
				break
			}
		}
		if any {
			return nil
		}
		return matchGoals(rest, facts, b, yield)

	default:
		candidates := facts.GetFacts(goal.Predicate)
		if len(candidates) > parallelJoinThreshold {
			return matchPositiveParallel(goal, rest, candidates, facts, b, yield)
		}
		for _, fact := range candidates {
			if fact.Arity() != goal.Arity() {
				continue
			}
			child := b.Child()
			if !Unify(goal, fact, child) {
				continue
			}
			if err := matchGoals(rest, facts, child, yield); err != nil {
				return err
			}
		}
		return nil
	}
}

// parallelJoinThreshold is the candidate-fact count above which the
// positive-literal branch of matchGoals fans unification out across
// goroutines, one per candidate, instead of looping sequentially.
const parallelJoinThreshold = 32

// matchPositiveParallel is the large-candidate-set join strategy
// named in SPEC_FULL.md §12, adapted from the teacher's
// Omega.joinPar (database.go): one goroutine per candidate fact
// attempts Unify and, on success, recursively matches the remaining
// goals, buffering its own solutions locally. Each goroutine's
// buffered solutions are replayed into yield sequentially once every
// goroutine has finished, so yield itself is never called from more
// than one goroutine at a time — a single query still behaves as a
// single-threaded caller from yield's point of view (spec §5).
func matchPositiveParallel(goal Expression, rest []Expression, candidates []Expression, facts *FactStore, b *Bindings, yield func(*Bindings) error) error {
	type outcome struct {
		matches []*Bindings
		err     error
	}
	results := make(chan outcome, len(candidates))

	for _, fact := range candidates {
		fact := fact
		go func() {
			if fact.Arity() != goal.Arity() {
				results <- outcome{}
				return
			}
			child := b.Child()
			if !Unify(goal, fact, child) {
				results <- outcome{}
				return
			}
			var local []*Bindings
			err := matchGoals(rest, facts, child, func(bb *Bindings) error {
				local = append(local, bb)
				return nil
			})
			results <- outcome{matches: local, err: err}
		}()
	}

	for i := 0; i < len(candidates); i++ {
		r := <-results
		if r.err != nil {
			return r.err
		}
		for _, m := range r.matches {
			if err := yield(m); err != nil {
				return err
			}
		}
	}
	return nil
}
