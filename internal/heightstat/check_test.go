package heightstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/bst/internal/bst"
)

func TestCheckWrapsTreeError(t *testing.T) {
	var reversed bool
	order := func(x, y int) int {
		if reversed {
			return y - x
		}
		return x - y
	}
	tree := bst.NewFunc[int, int](order)
	for _, k := range []int{5, 3, 8} {
		tree.Put(k, k)
	}
	require.NoError(t, check(tree, 3))

	// same nodes, opposite order
	reversed = true

	err := check(tree, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, bst.ErrOrder)
	assert.Contains(t, err.Error(), "tree of size 3")
}
