package dedalog

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Database holds the EDB and IDB of one deductive-database instance.
// It is not safe for concurrent mutation (spec §5): a single query or
// statement runs to completion before another may begin. Adapted from
// the teacher's Omega (database.go), generalized from its fixed
// edb/idb 3-ary-atom pair to a single arbitrary-arity FactStore plus a
// rule slice, since this module recomputes the IDB fresh per query
// (spec §4.9) rather than persisting it between calls.
type Database struct {
	edb    *FactStore
	rules  []Rule
	cfg    Config
	logger *zap.Logger

	checkpoints []checkpointSnapshot
}

// checkpointSnapshot is one entry on the Checkpoint/Rollback stack,
// adapted from the teacher's commit/revert (database.go): a full
// clone of the EDB and rule slice rather than a slice-length to
// truncate back to, since FactStore is a set of unordered buckets,
// not the teacher's append-only []Atom.
type checkpointSnapshot struct {
	edb   *FactStore
	rules []Rule
}

// Option configures a Database at construction time.
type Option func(*Database)

// WithLogger attaches a structured logger; without this option the
// database logs nothing (zap.NewNop).
func WithLogger(logger *zap.Logger) Option {
	return func(db *Database) { db.logger = logger }
}

// WithConfig overrides the default tuning.
func WithConfig(cfg Config) Option {
	return func(db *Database) { db.cfg = cfg }
}

// NewDatabase returns an empty database.
func NewDatabase(opts ...Option) *Database {
	db := &Database{
		edb:    NewFactStore(),
		rules:  nil,
		cfg:    DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Fact builds and inserts a ground fact from a predicate name and
// constant argument terms, the programmatic-API shape named in spec
// §6 (fact(pred, args...)).
func (db *Database) Fact(predicate string, args ...string) error {
	terms := make([]Term, len(args))
	for i, a := range args {
		terms[i] = Term(a)
	}
	return db.AddFact(NewExpression(predicate, terms, false))
}

// AddFact validates and inserts a fact into the EDB.
func (db *Database) AddFact(e Expression) error {
	if err := ValidateFact(e); err != nil {
		return err
	}
	db.edb.Add(e)
	return nil
}

// Rule builds and inserts a rule from a head and body expressions,
// the programmatic-API shape named in spec §6 (rule(head, body...)).
func (db *Database) Rule(head Expression, body ...Expression) error {
	return db.AddRule(Rule{Head: head, Body: body})
}

// AddRule validates and inserts a rule into the IDB.
func (db *Database) AddRule(r Rule) error {
	if err := ValidateRule(r); err != nil {
		return err
	}
	db.rules = append(db.rules, r)
	return nil
}

// Query runs goals against the database with fresh bindings and
// returns every satisfying answer (spec §4.9).
func (db *Database) Query(goals ...Expression) ([]Answer, error) {
	return db.QueryWithBindings(NewBindings(), goals...)
}

// QueryWithBindings runs goals starting from the caller-supplied
// bindings, the prepared-statement flow named in spec §6.
func (db *Database) QueryWithBindings(initial *Bindings, goals ...Expression) ([]Answer, error) {
	requestID := uuid.New().String()
	logger := db.logger.With(zap.String("request_id", requestID), zap.String("op", "query"))
	logger.Info("query start", zap.Int("goals", len(goals)))

	results, err := runQuery(db.edb, db.rules, goals, initial, db.cfg, logger)
	if err != nil {
		logger.Info("query failed", zap.Error(err))
		return nil, err
	}

	answers := make([]Answer, 0, len(results))
	for _, b := range results {
		answers = append(answers, toAnswer(b, db.cfg))
	}
	logger.Info("query done", zap.Int("answers", len(answers)))
	return answers, nil
}

// Delete runs goals as a query, then removes from the EDB every
// ground instance of a positive, non-built-in goal literal produced
// by any answer — the conjunction of goals filters which facts are
// removed, it does not name them independently (spec §4.9).
func (db *Database) Delete(goals ...Expression) error {
	return db.DeleteWithBindings(NewBindings(), goals...)
}

// DeleteWithBindings is Delete with caller-supplied initial bindings.
func (db *Database) DeleteWithBindings(initial *Bindings, goals ...Expression) error {
	requestID := uuid.New().String()
	logger := db.logger.With(zap.String("request_id", requestID), zap.String("op", "delete"))
	logger.Info("delete start", zap.Int("goals", len(goals)))

	results, err := runQuery(db.edb, db.rules, goals, initial, db.cfg, logger)
	if err != nil {
		logger.Info("delete failed", zap.Error(err))
		return err
	}

	removed := 0
	for _, b := range results {
		for _, g := range goals {
			if g.Negated || g.IsBuiltIn() {
				continue
			}
			ground := Substitute(g, b)
			if !ground.IsGround() {
				continue
			}
			if db.edb.Remove(ground) {
				removed++
			}
		}
	}
	logger.Info("delete done", zap.Int("answers", len(results)), zap.Int("facts_removed", removed))
	return nil
}

// Validate runs spec §4.5's checks over every currently-held rule and
// fact, and also stratifies the full rule set so that
// ErrNegativeRecursion surfaces here rather than only at the first
// query that happens to touch the offending predicates.
func (db *Database) Validate() error {
	for _, f := range db.edb.AllFacts() {
		if err := ValidateFact(f); err != nil {
			return err
		}
	}
	for _, r := range db.rules {
		if err := ValidateRule(r); err != nil {
			return err
		}
	}
	_, err := Stratify(db.rules, db.cfg.KeepSentinelStratum, db.logger)
	return err
}

// Checkpoint snapshots the current EDB and rule set so a later
// Rollback can restore them.
func (db *Database) Checkpoint() {
	db.checkpoints = append(db.checkpoints, checkpointSnapshot{
		edb:   db.edb.Clone(),
		rules: append([]Rule(nil), db.rules...),
	})
}

// Rollback restores the most recent Checkpoint, discarding it from the
// stack. It returns ErrInternalInvariant if there is nothing to roll
// back to.
func (db *Database) Rollback() error {
	if len(db.checkpoints) == 0 {
		return fmt.Errorf("%w: Rollback called with no matching Checkpoint", ErrInternalInvariant)
	}
	last := db.checkpoints[len(db.checkpoints)-1]
	db.checkpoints = db.checkpoints[:len(db.checkpoints)-1]
	db.edb = last.edb
	db.rules = last.rules
	return nil
}

// FactCount returns the number of facts currently in the EDB.
func (db *Database) FactCount() int {
	return db.edb.Len()
}

// RuleCount returns the number of rules currently in the IDB.
func (db *Database) RuleCount() int {
	return len(db.rules)
}
