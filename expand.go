package dedalog

import (
	"fmt"

	"go.uber.org/zap"
)

// buildDependencyIndex maps each predicate hash referenced in a rule
// body to the indices (within rules) of rules whose body references
// it — used to restrict the next semi-naive round to only the rules
// that could possibly produce new facts (spec §4.8 step 1).
func buildDependencyIndex(rules []Rule) map[string][]int {
	idx := make(map[string][]int)
	for i, r := range rules {
		seen := make(map[string]bool)
		for _, lit := range r.Body {
			if lit.IsBuiltIn() {
				continue
			}
			h := PredicateHash(lit.Predicate)
			if seen[h] {
				continue
			}
			seen[h] = true
			idx[h] = append(idx[h], i)
		}
	}
	return idx
}

// expandStratum runs one stratum's rules to a fixed point over store,
// generalizing the teacher's evalSeminaive (datalog.go) from fixed
// 3-ary single-literal-body delta rules to N-ary, N-literal bodies:
// each round matches every currently-active rule's (reordered) body
// against the whole store, collects heads not already present, unions
// them in, then narrows the active set to rules whose body mentions a
// predicate that just grew (spec §4.8). cfg.MaxFixpointIterations
// bounds how many rounds this runs before giving up; 0 means
// unbounded.
func expandStratum(store *FactStore, rules []Rule, cfg Config, logger *zap.Logger) error {
	if len(rules) == 0 {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	depIndex := buildDependencyIndex(rules)
	active := make(map[int]bool, len(rules))
	for i := range rules {
		active[i] = true
	}

	for iteration := 1; len(active) > 0; iteration++ {
		if cfg.MaxFixpointIterations > 0 && iteration > cfg.MaxFixpointIterations {
			return fmt.Errorf("%w: semi-naive expansion did not reach a fixed point within %d iterations", ErrInternalInvariant, cfg.MaxFixpointIterations)
		}

		newFacts := make([]Expression, 0)
		seen := make(map[string]bool)

		for i := range active {
			r := rules[i]
			goals := reorderGoals(r.Body)
			err := matchGoals(goals, store, NewBindings(), func(b *Bindings) error {
				head := Substitute(r.Head, b)
				if store.Contains(head) || seen[head.Key()] {
					return nil
				}
				seen[head.Key()] = true
				newFacts = append(newFacts, head)
				return nil
			})
			if err != nil {
				return err
			}
		}

		if len(newFacts) == 0 {
			logger.Debug("stratum reached fixed point", zap.Int("iteration", iteration))
			return nil
		}

		store.AddAll(newFacts)
		logger.Debug("semi-naive iteration",
			zap.Int("iteration", iteration),
			zap.Int("new_facts", len(newFacts)))

		next := make(map[int]bool)
		for _, f := range newFacts {
			for _, i := range depIndex[PredicateHash(f.Predicate)] {
				next[i] = true
			}
		}
		active = next
	}

	return nil
}

// expand runs every stratum in order over store: lower strata fully
// reach their fixed point before a higher stratum's rules — the only
// rules allowed to negatively depend on them — ever run (I3).
func expand(store *FactStore, strata [][]Rule, cfg Config, logger *zap.Logger) error {
	for _, rules := range strata {
		if err := expandStratum(store, rules, cfg, logger); err != nil {
			return err
		}
	}
	return nil
}
