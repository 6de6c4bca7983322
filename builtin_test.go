package dedalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalBuiltInEqualsBindsUnboundOperand(t *testing.T) {
	b := NewBindings()
	b.Set("X", "aa")
	result, err := evalBuiltIn(NewExpression("=", []Term{"X", "Y"}, false), b)
	require.NoError(t, err)
	assert.True(t, result)
	v, ok := b.Get("Y")
	assert.True(t, ok)
	assert.Equal(t, Term("aa"), v)
}

func TestEvalBuiltInEqualsBothUnboundErrors(t *testing.T) {
	_, err := evalBuiltIn(NewExpression("=", []Term{"X", "Y"}, false), NewBindings())
	assert.ErrorIs(t, err, ErrUnboundBuiltin)
}

func TestEvalBuiltInNumericEquality(t *testing.T) {
	result, err := evalBuiltIn(NewExpression("=", []Term{"1", "1.0"}, false), NewBindings())
	require.NoError(t, err)
	assert.True(t, result)
}

func TestEvalBuiltInNotEquals(t *testing.T) {
	result, err := evalBuiltIn(NewExpression("<>", []Term{"aaa", "aab"}, false), NewBindings())
	require.NoError(t, err)
	assert.True(t, result)
}

func TestEvalBuiltInNotEqualsRequiresBothBound(t *testing.T) {
	_, err := evalBuiltIn(NewExpression("<>", []Term{"X", "a"}, false), NewBindings())
	assert.ErrorIs(t, err, ErrUnboundBuiltin)
}

func TestEvalBuiltInComparison(t *testing.T) {
	cases := []struct {
		op       string
		lhs, rhs Term
		want     bool
	}{
		{"<", "1", "2", true},
		{"<", "2", "1", false},
		{"<=", "2", "2", true},
		{">", "3", "2", true},
		{">=", "2", "2", true},
	}
	for _, c := range cases {
		result, err := evalBuiltIn(NewExpression(c.op, []Term{c.lhs, c.rhs}, false), NewBindings())
		require.NoError(t, err)
		assert.Equal(t, c.want, result, "%s %s %s", c.lhs, c.op, c.rhs)
	}
}

func TestEvalBuiltInComparisonCoercesUnparseableToZero(t *testing.T) {
	result, err := evalBuiltIn(NewExpression("<", []Term{"notanumber", "1"}, false), NewBindings())
	require.NoError(t, err)
	assert.True(t, result)
}

func TestEvalBuiltInWrongArityIsInternalInvariant(t *testing.T) {
	_, err := evalBuiltIn(NewExpression("=", []Term{"a"}, false), NewBindings())
	assert.ErrorIs(t, err, ErrInternalInvariant)
}

func TestNumberFormatting(t *testing.T) {
	assert.Equal(t, Term("3"), formatNumber(3.0))
	assert.Equal(t, Term("3.5"), formatNumber(3.5))
}
