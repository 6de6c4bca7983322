package dedalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandStratumReachesFixedPoint(t *testing.T) {
	store := NewFactStore()
	store.AddAll([]Expression{
		NewExpression("parent", []Term{"a", "aa"}, false),
		NewExpression("parent", []Term{"aa", "aaa"}, false),
		NewExpression("parent", []Term{"aaa", "aaaa"}, false),
	})
	rules := []Rule{
		{Head: NewExpression("ancestor", []Term{"X", "Y"}, false),
			Body: []Expression{NewExpression("parent", []Term{"X", "Y"}, false)}},
		{Head: NewExpression("ancestor", []Term{"X", "Y"}, false),
			Body: []Expression{
				NewExpression("parent", []Term{"X", "Z"}, false),
				NewExpression("ancestor", []Term{"Z", "Y"}, false),
			}},
	}
	require.NoError(t, expandStratum(store, rules, DefaultConfig(), nil))
	assert.Len(t, store.GetFacts("ancestor"), 6)

	// P6: one more round is a no-op.
	before := store.Len()
	require.NoError(t, expandStratum(store, rules, DefaultConfig(), nil))
	assert.Equal(t, before, store.Len())
}

func TestExpandStratumNoRulesIsNoOp(t *testing.T) {
	store := NewFactStore()
	require.NoError(t, expandStratum(store, nil, DefaultConfig(), nil))
	assert.Equal(t, 0, store.Len())
}

func TestExpandStratumStopsAtIterationCap(t *testing.T) {
	store := NewFactStore()
	store.AddAll(genChainGraph(50))

	cfg := Config{MaxFixpointIterations: 1}
	err := expandStratum(store, ancestorRules, cfg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalInvariant)
}
