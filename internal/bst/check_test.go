package bst

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkSample(t *testing.T) *Tree[int, string] {
	t.Helper()
	tree := New[int, string]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Put(k, "")
	}
	require.NoError(t, tree.Check())
	return tree
}

func TestCheckCount(t *testing.T) {
	tree := checkSample(t)

	// 5 -> {3 -> {1, 4}, 8 -> {7, 9}}
	tree.root.smaller.count = 7

	err := tree.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCount))
	assert.Contains(t, err.Error(), "Node: 3:")
	assert.Contains(t, err.Error(), "want 3")

	tree.root.smaller.count = 3
	tree.root.count = 6
	assert.ErrorIs(t, tree.Check(), ErrCount)
}

func TestCheckOrder(t *testing.T) {
	tree := checkSample(t)

	// the smallest key of the larger subtree now sorts before the root
	tree.root.larger.smaller.key = 2

	err := tree.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOrder))
	assert.False(t, errors.Is(err, ErrCount))
	assert.Contains(t, err.Error(), "5 is not less than 2")
}

func TestCheckDuplicateKey(t *testing.T) {
	tree := checkSample(t)

	tree.root.smaller.larger.key = 5

	assert.ErrorIs(t, tree.Check(), ErrOrder)
}
