package dedalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactStoreAddIsIdempotent(t *testing.T) {
	s := NewFactStore()
	f := NewExpression("parent", []Term{"a", "b"}, false)
	assert.True(t, s.Add(f))
	assert.False(t, s.Add(f))
	assert.Equal(t, 1, s.Len())
}

func TestFactStoreGetFactsByPredicate(t *testing.T) {
	s := NewFactStore()
	s.Add(NewExpression("parent", []Term{"a", "b"}, false))
	s.Add(NewExpression("parent", []Term{"a", "c"}, false))
	s.Add(NewExpression("foo", []Term{"x"}, false))

	assert.Len(t, s.GetFacts("parent"), 2)
	assert.Len(t, s.GetFacts("foo"), 1)
	assert.Nil(t, s.GetFacts("missing"))
}

func TestFactStoreRemove(t *testing.T) {
	s := NewFactStore()
	f := NewExpression("parent", []Term{"a", "b"}, false)
	s.Add(f)
	assert.True(t, s.Remove(f))
	assert.False(t, s.Remove(f))
	assert.False(t, s.Contains(f))
}

func TestFactStoreCloneIsIndependent(t *testing.T) {
	s := NewFactStore()
	s.Add(NewExpression("parent", []Term{"a", "b"}, false))
	clone := s.Clone()
	clone.Add(NewExpression("parent", []Term{"c", "d"}, false))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestFactStoreAllFacts(t *testing.T) {
	s := NewFactStore()
	s.AddAll([]Expression{
		NewExpression("p", []Term{"1"}, false),
		NewExpression("q", []Term{"2"}, false),
	})
	assert.Len(t, s.AllFacts(), 2)
}
