package dedalog

// FactStore is a set of ground expressions with a predicate-keyed
// index for O(1) predicate lookup (spec §3, §4.2). Generalizes the
// teacher's edb/idb `map[Constant][]Atom` from fixed 3-ary atoms to
// arbitrary-arity expressions.
type FactStore struct {
	byPredicate map[string]map[string]Expression
}

// NewFactStore returns an empty store.
func NewFactStore() *FactStore {
	return &FactStore{byPredicate: make(map[string]map[string]Expression)}
}

// Add inserts e if not already present (idempotent under structural
// equality) and reports whether anything new was added.
func (s *FactStore) Add(e Expression) bool {
	hash := PredicateHash(e.Predicate)
	bucket, ok := s.byPredicate[hash]
	if !ok {
		bucket = make(map[string]Expression)
		s.byPredicate[hash] = bucket
	}
	key := e.Key()
	if _, exists := bucket[key]; exists {
		return false
	}
	bucket[key] = e
	return true
}

// AddAll inserts every expression in es and reports whether anything
// new was added overall, preserving set semantics per expression.
func (s *FactStore) AddAll(es []Expression) bool {
	added := false
	for _, e := range es {
		if s.Add(e) {
			added = true
		}
	}
	return added
}

// Remove deletes e by structural equality and reports whether it was
// present.
func (s *FactStore) Remove(e Expression) bool {
	bucket, ok := s.byPredicate[PredicateHash(e.Predicate)]
	if !ok {
		return false
	}
	key := e.Key()
	if _, exists := bucket[key]; !exists {
		return false
	}
	delete(bucket, key)
	return true
}

// Contains reports whether e is already present.
func (s *FactStore) Contains(e Expression) bool {
	bucket, ok := s.byPredicate[PredicateHash(e.Predicate)]
	if !ok {
		return false
	}
	_, exists := bucket[e.Key()]
	return exists
}

// GetFacts returns every fact currently stored under predicate,
// satisfying the EDB-provider contract named in spec §6.
func (s *FactStore) GetFacts(predicate string) []Expression {
	bucket, ok := s.byPredicate[PredicateHash(predicate)]
	if !ok {
		return nil
	}
	out := make([]Expression, 0, len(bucket))
	for _, e := range bucket {
		out = append(out, e)
	}
	return out
}

// AllFacts returns every fact in the store, satisfying the
// EDB-provider contract named in spec §6.
func (s *FactStore) AllFacts() []Expression {
	out := make([]Expression, 0)
	for _, bucket := range s.byPredicate {
		for _, e := range bucket {
			out = append(out, e)
		}
	}
	return out
}

// Indexes enumerates the predicate hashes currently present.
func (s *FactStore) Indexes() []string {
	out := make([]string, 0, len(s.byPredicate))
	for hash := range s.byPredicate {
		out = append(out, hash)
	}
	return out
}

// Len returns the total number of facts in the store.
func (s *FactStore) Len() int {
	n := 0
	for _, bucket := range s.byPredicate {
		n += len(bucket)
	}
	return n
}

// Clone returns a deep copy of s, used by Database.Checkpoint to
// snapshot the EDB so later mutations do not reach the snapshot.
func (s *FactStore) Clone() *FactStore {
	out := NewFactStore()
	for hash, bucket := range s.byPredicate {
		nb := make(map[string]Expression, len(bucket))
		for k, v := range bucket {
			nb[k] = v
		}
		out.byPredicate[hash] = nb
	}
	return out
}
