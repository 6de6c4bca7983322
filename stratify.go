package dedalog

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// stratifier computes, for a fixed rule set, the stratum number of
// each head predicate via DFS over the rule dependency graph (head
// predicate -> body predicate), memoizing results and detecting
// negative recursion on the recursion stack rather than via a
// separate SCC pass (spec §4.6, design note in §9).
//
// trail and trailNeg are parallel: trail[i] is the predicate at depth
// i on the current DFS path, and trailNeg[i] is whether the edge used
// to *enter* trail[i] was negated. A cycle back to some trail[idx] is
// negative if any edge from trail[idx] onward — including the closing
// edge itself — was negated, not just the closing edge; tracking the
// whole path is what makes a cycle like a→b (negated) →c→a (positive)
// detectable, since the closing edge c→a carries no negation of its
// own.
type stratifier struct {
	byHead   map[string][]Rule
	memo     map[string]int
	onStack  map[string]bool
	trail    []string
	trailNeg []bool
	logger   *zap.Logger
}

func groupByHead(rules []Rule) map[string][]Rule {
	byHead := make(map[string][]Rule)
	for _, r := range rules {
		byHead[r.Head.Predicate] = append(byHead[r.Head.Predicate], r)
	}
	return byHead
}

// Stratify partitions rules into an ordered list of strata such that
// lower-indexed strata must be fully evaluated before higher-indexed
// ones (I3). If keepSentinel is true, the entire rule set is appended
// as one final stratum (spec §4.6, §9 open question), matching the
// default behavior selected by Config.KeepSentinelStratum.
func Stratify(rules []Rule, keepSentinel bool, logger *zap.Logger) ([][]Rule, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &stratifier{
		byHead:  groupByHead(rules),
		memo:    make(map[string]int),
		onStack: make(map[string]bool),
		logger:  logger,
	}

	ruleStratum := make([]int, len(rules))
	maxStratum := 0
	for i, r := range rules {
		n, err := s.stratumOf(r.Head.Predicate, false)
		if err != nil {
			return nil, err
		}
		ruleStratum[i] = n
		if n > maxStratum {
			maxStratum = n
		}
	}

	strata := make([][]Rule, maxStratum+1)
	for i, r := range rules {
		strata[ruleStratum[i]] = append(strata[ruleStratum[i]], r)
		logger.Debug("assigned rule to stratum",
			zap.String("head", r.Head.Predicate),
			zap.Int("stratum", ruleStratum[i]))
	}

	if keepSentinel && len(rules) > 0 {
		sentinel := make([]Rule, len(rules))
		copy(sentinel, rules)
		strata = append(strata, sentinel)
		logger.Debug("appended sentinel stratum", zap.Int("rules", len(sentinel)))
	}

	return strata, nil
}

// stratumOf returns the stratum number of predicate p, computing it
// via DFS if not already memoized. enteredNegated is whether the edge
// that led to visiting p was itself negated; it becomes p's entry in
// trailNeg for the duration of this call.
func (s *stratifier) stratumOf(p string, enteredNegated bool) (int, error) {
	if n, ok := s.memo[p]; ok {
		return n, nil
	}

	s.onStack[p] = true
	s.trail = append(s.trail, p)
	s.trailNeg = append(s.trailNeg, enteredNegated)
	defer func() {
		delete(s.onStack, p)
		s.trail = s.trail[:len(s.trail)-1]
		s.trailNeg = s.trailNeg[:len(s.trailNeg)-1]
	}()

	rules, ok := s.byHead[p]
	if !ok {
		// p is an EDB-only predicate: never a rule head, so it is a
		// leaf of the dependency graph at stratum 0.
		s.memo[p] = 0
		return 0, nil
	}

	best := 0
	for _, r := range rules {
		for _, lit := range r.Body {
			if lit.IsBuiltIn() {
				continue
			}
			bp := lit.Predicate

			var contribution int
			if s.onStack[bp] {
				// bp is an ancestor of p on the current DFS path: a
				// cycle. Reject it if any edge from bp's position
				// onward — including the closing edge lit itself — is
				// negated; a purely positive cycle doesn't push p's
				// stratum any higher, so it contributes 0 without
				// recursing further (recursing would loop forever).
				idx := indexOfPredicate(s.trail, bp)
				negatedInCycle := lit.Negated
				for _, neg := range s.trailNeg[idx+1:] {
					if neg {
						negatedInCycle = true
						break
					}
				}
				if negatedInCycle {
					cycle := append(append([]string{}, s.trail[idx:]...), bp)
					return 0, fmt.Errorf("%w: %s", ErrNegativeRecursion, strings.Join(cycle, " -> "))
				}
				contribution = 0
			} else {
				child, err := s.stratumOf(bp, lit.Negated)
				if err != nil {
					return 0, err
				}
				contribution = child
				if lit.Negated {
					contribution++
				}
			}
			if contribution > best {
				best = contribution
			}
		}
	}

	s.memo[p] = best
	return best, nil
}

// indexOfPredicate returns the index of p in trail; callers only call
// this once they've established p is present (onStack[p] is true).
func indexOfPredicate(trail []string, p string) int {
	for i, t := range trail {
		if t == p {
			return i
		}
	}
	return -1
}
