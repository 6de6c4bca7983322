package dedalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFactRejectsNonGround(t *testing.T) {
	err := ValidateFact(NewExpression("parent", []Term{"a", "X"}, false))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateFactRejectsNegated(t *testing.T) {
	err := ValidateFact(NewExpression("parent", []Term{"a", "b"}, true))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateFactAcceptsGround(t *testing.T) {
	assert.NoError(t, ValidateFact(NewExpression("parent", []Term{"a", "b"}, false)))
}

func TestValidateRuleRejectsEmptyBody(t *testing.T) {
	r := Rule{Head: NewExpression("foo", []Term{"X"}, false), Body: nil}
	assert.ErrorIs(t, ValidateRule(r), ErrValidation)
}

func TestValidateRuleRejectsBuiltInHead(t *testing.T) {
	r := Rule{
		Head: NewExpression("=", []Term{"X", "Y"}, false),
		Body: []Expression{NewExpression("foo", []Term{"X", "Y"}, false)},
	}
	assert.ErrorIs(t, ValidateRule(r), ErrValidation)
}

func TestValidateRuleRejectsUnrestrictedHeadVariable(t *testing.T) {
	r := Rule{
		Head: NewExpression("ancestor", []Term{"X", "Y"}, false),
		Body: []Expression{NewExpression("parent", []Term{"X"}, false)},
	}
	assert.ErrorIs(t, ValidateRule(r), ErrValidation)
}

func TestValidateRuleRejectsUnrestrictedNegatedVariable(t *testing.T) {
	r := Rule{
		Head: NewExpression("single", []Term{"X"}, false),
		Body: []Expression{
			NewExpression("foo", []Term{"X"}, false),
			{Predicate: "bar", Terms: []Term{"Y"}, Negated: true},
		},
	}
	assert.ErrorIs(t, ValidateRule(r), ErrValidation)
}

func TestValidateRuleAcceptsRangeRestricted(t *testing.T) {
	r := Rule{
		Head: NewExpression("sibling", []Term{"A", "B"}, false),
		Body: []Expression{
			NewExpression("parent", []Term{"P", "A"}, false),
			NewExpression("parent", []Term{"P", "B"}, false),
			NewExpression("<>", []Term{"A", "B"}, false),
		},
	}
	assert.NoError(t, ValidateRule(r))
}
