package dedalog

import "go.uber.org/zap"

// Answer is a single satisfying assignment of variables to terms,
// ready to hand back to a caller (spec §6).
type Answer map[string]Term

// relevantPredicates computes the closure described in spec §4.9
// step 1: starting from the goals' own predicates, repeatedly pull in
// every body predicate of any rule whose head is already known
// relevant, until nothing new is added.
func relevantPredicates(goals []Expression, rules []Rule) map[string]bool {
	relevant := make(map[string]bool)
	for _, g := range goals {
		if !g.IsBuiltIn() {
			relevant[g.Predicate] = true
		}
	}

	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			if !relevant[r.Head.Predicate] {
				continue
			}
			for _, lit := range r.Body {
				if lit.IsBuiltIn() {
					continue
				}
				if !relevant[lit.Predicate] {
					relevant[lit.Predicate] = true
					changed = true
				}
			}
		}
	}
	return relevant
}

func selectRelevantRules(rules []Rule, relevant map[string]bool) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if relevant[r.Head.Predicate] {
			out = append(out, r)
		}
	}
	return out
}

func selectRelevantFacts(edb *FactStore, relevant map[string]bool) *FactStore {
	scratch := NewFactStore()
	for predicate := range relevant {
		for _, f := range edb.GetFacts(predicate) {
			scratch.Add(f)
		}
	}
	return scratch
}

// runQuery implements spec §4.9's Query: relevance pruning, scratch
// expansion and matching; it returns the raw bindings, and projection
// into Answers is done by toAnswer. It is shared by Database's
// public Query (fresh bindings) and by Delete (which needs the raw
// answers to ground and remove facts, not just the projected maps).
func runQuery(edb *FactStore, rules []Rule, goals []Expression, initial *Bindings, cfg Config, logger *zap.Logger) ([]*Bindings, error) {
	relevant := relevantPredicates(goals, rules)
	selectedRules := selectRelevantRules(rules, relevant)
	scratch := selectRelevantFacts(edb, relevant)

	strata, err := Stratify(selectedRules, cfg.KeepSentinelStratum, logger)
	if err != nil {
		return nil, err
	}
	if err := expand(scratch, strata, cfg, logger); err != nil {
		return nil, err
	}

	reordered := reorderGoals(goals)
	var results []*Bindings
	err = matchGoals(reordered, scratch, initial, func(b *Bindings) error {
		results = append(results, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func toAnswer(b *Bindings, cfg Config) Answer {
	flat := b.Flatten()
	a := make(Answer, len(flat))
	for k, v := range flat {
		if cfg.StripQuoteMarker {
			v = stripQuoteMarker(v)
		}
		a[string(k)] = v
	}
	return a
}
