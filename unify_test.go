package dedalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifySuccess(t *testing.T) {
	expr := NewExpression("parent", []Term{"X", "b"}, false)
	fact := NewExpression("parent", []Term{"a", "b"}, false)
	b := NewBindings()
	assert.True(t, Unify(expr, fact, b))
	v, ok := b.Get("X")
	assert.True(t, ok)
	assert.Equal(t, Term("a"), v)
}

func TestUnifyArityMismatch(t *testing.T) {
	expr := NewExpression("parent", []Term{"X"}, false)
	fact := NewExpression("parent", []Term{"a", "b"}, false)
	assert.False(t, Unify(expr, fact, NewBindings()))
}

func TestUnifyPredicateMismatch(t *testing.T) {
	expr := NewExpression("parent", []Term{"a"}, false)
	fact := NewExpression("child", []Term{"a"}, false)
	assert.False(t, Unify(expr, fact, NewBindings()))
}

func TestUnifyRepeatedVariableMustAgree(t *testing.T) {
	expr := NewExpression("sameParent", []Term{"X", "X"}, false)
	assert.False(t, Unify(expr, NewExpression("sameParent", []Term{"a", "b"}, false), NewBindings()))
	assert.True(t, Unify(expr, NewExpression("sameParent", []Term{"a", "a"}, false), NewBindings()))
}

func TestUnifyConstantMismatch(t *testing.T) {
	expr := NewExpression("parent", []Term{"a", "b"}, false)
	fact := NewExpression("parent", []Term{"a", "c"}, false)
	assert.False(t, Unify(expr, fact, NewBindings()))
}
