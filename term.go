package dedalog

import "strings"

// Term is the universal atomic datum of the engine: a plain string
// whose role (variable or constant) is determined structurally, not
// by its Go type, per spec §3. Quoted string constants carry a
// leading '"' marker that distinguishes `"1"` (the string) from `1`
// (the number) through unification and substitution; the marker is
// stripped only when an answer is printed or handed back to a caller
// (subject to Config.StripQuoteMarker).
type Term string

const quoteMarker = '"'

// isVariable reports whether t is a variable: its first character is
// an ASCII upper-case letter.
func isVariable(t Term) bool {
	if len(t) == 0 {
		return false
	}
	c := t[0]
	return c >= 'A' && c <= 'Z'
}

// stripQuoteMarker removes the internal quote marker a quoted string
// constant carries, if present.
func stripQuoteMarker(t Term) Term {
	if len(t) > 0 && t[0] == quoteMarker {
		return t[1:]
	}
	return t
}

// Expression is a literal: a predicate applied to an ordered sequence
// of terms, optionally negated.
type Expression struct {
	Predicate string
	Terms     []Term
	Negated   bool
}

// NewExpression builds an expression, normalizing the "!=" spelling of
// the not-equals built-in to its canonical "<>" form per spec §3.
func NewExpression(predicate string, terms []Term, negated bool) Expression {
	if predicate == "!=" {
		predicate = "<>"
	}
	return Expression{Predicate: predicate, Terms: terms, Negated: negated}
}

// Arity is the number of terms in the expression.
func (e Expression) Arity() int {
	return len(e.Terms)
}

// IsGround reports whether no term in e is a variable.
func (e Expression) IsGround() bool {
	for _, t := range e.Terms {
		if isVariable(t) {
			return false
		}
	}
	return true
}

var builtinPredicates = map[string]bool{
	"=": true, "<>": true, "<": true, "<=": true, ">": true, ">=": true,
}

// IsBuiltIn reports whether e's predicate names one of the canonical
// built-ins. Per spec §3, a predicate is built-in exactly when its
// first character is neither a letter, a digit, nor a quote — the
// builtinPredicates table pins this down to the six supported
// operators rather than accepting arbitrary punctuation-led names.
func (e Expression) IsBuiltIn() bool {
	return builtinPredicates[e.Predicate]
}

// predicateLooksBuiltIn classifies a raw predicate string by its first
// byte: true iff it is not an ASCII letter, digit, or quote. The parser
// does not call it; it tells built-ins apart by token kind.
func predicateLooksBuiltIn(predicate string) bool {
	if predicate == "" {
		return false
	}
	c := predicate[0]
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return false
	case c >= '0' && c <= '9':
		return false
	case c == quoteMarker:
		return false
	default:
		return true
	}
}

// Substitute returns a copy of e in which every variable term is
// replaced by its binding, if any; unbound variables and constants
// pass through unchanged. The negation flag is preserved.
func Substitute(e Expression, b *Bindings) Expression {
	terms := make([]Term, len(e.Terms))
	changed := false
	for i, t := range e.Terms {
		if isVariable(t) {
			if v, ok := b.Get(t); ok {
				terms[i] = v
				changed = true
				continue
			}
		}
		terms[i] = t
	}
	if !changed {
		// still return a fresh slice so callers can't alias e.Terms
		copy(terms, e.Terms)
	}
	return Expression{Predicate: e.Predicate, Terms: terms, Negated: e.Negated}
}

// Equal reports structural equality over (predicate, terms, negated),
// the equality relation facts are deduplicated and stored under (§3).
func (e Expression) Equal(o Expression) bool {
	if e.Predicate != o.Predicate || e.Negated != o.Negated || len(e.Terms) != len(o.Terms) {
		return false
	}
	for i := range e.Terms {
		if e.Terms[i] != o.Terms[i] {
			return false
		}
	}
	return true
}

// Key returns a string uniquely determined by (predicate, terms,
// negated), suitable as a map key for set semantics. Distinct arities
// never share a key, so p(x) and p(x, y) are distinct set members;
// I4 itself (no unification across arities) is enforced by Unify.
func (e Expression) Key() string {
	var sb strings.Builder
	if e.Negated {
		sb.WriteByte('!')
	}
	sb.WriteString(e.Predicate)
	sb.WriteByte('/')
	for _, t := range e.Terms {
		sb.WriteString(string(t))
		sb.WriteByte('\x1f')
	}
	return sb.String()
}

// PredicateHash returns the key under which a predicate name is
// indexed in a fact store (spec §4.2: "whatever hash the
// implementation chooses"). Arity is deliberately not part of this
// key — invariant I4 (distinct arities never unify) is enforced at
// match time (C7), not at the storage index.
func PredicateHash(predicate string) string {
	return predicate
}

// String renders e back to surface syntax, stripping the internal
// quote marker from any quoted-string term (the printer's job per
// spec §3).
func (e Expression) String() string {
	var sb strings.Builder
	if e.Negated {
		sb.WriteString("not ")
	}
	if e.IsBuiltIn() && e.Arity() == 2 {
		sb.WriteString(string(stripQuoteMarker(e.Terms[0])))
		sb.WriteByte(' ')
		sb.WriteString(e.Predicate)
		sb.WriteByte(' ')
		sb.WriteString(string(stripQuoteMarker(e.Terms[1])))
		return sb.String()
	}
	sb.WriteString(e.Predicate)
	sb.WriteByte('(')
	for i, t := range e.Terms {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(string(stripQuoteMarker(t)))
	}
	sb.WriteByte(')')
	return sb.String()
}
