/*
Package bst implements an ordered map on top of an unbalanced binary search
tree whose nodes carry the size of the subtree they root.

No rebalancing is ever performed. Inserting keys in sorted (or otherwise
adversarial) order degrades the tree into a list with O(n) height and O(n)
cost per operation. Operations recurse along a single root-to-leaf path, so
stack usage grows with the height of the tree.

A Tree is not safe for concurrent use. Callers sharing a tree between
goroutines must serialize Put, PutAll, Delete and DeleteMin against every
other operation, traversals included.
*/
package bst

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"
	"github.com/xlab/treeprint"
)

var Log = logrus.New()

type CompareFunc[K any] func(x, y K) int

type Tree[K, V any] struct {
	root *node[K, V]
	cmp  CompareFunc[K]
}

// New returns an empty tree ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty tree ordered by cmp, which must define a total
// order over K. An inconsistent cmp leaves the tree in an unspecified state.
func NewFunc[K, V any](cmp CompareFunc[K]) *Tree[K, V] {
	return &Tree[K, V]{
		root: nil,
		cmp:  cmp,
	}
}

// NewFrom returns a tree ordered by cmp holding every pair yielded by
// entries, inserted in the order they are yielded.
func NewFrom[K, V any](cmp CompareFunc[K], entries iter.Seq2[K, V]) *Tree[K, V] {
	t := NewFunc[K, V](cmp)
	t.PutAll(entries)
	return t
}

func (t *Tree[K, V]) Size() int {
	return t.root.size()
}

func (t *Tree[K, V]) Get(key K) (value V, ok bool) {
	n := t.root
	for n != nil {
		if c := t.cmp(key, n.key); c < 0 {
			n = n.smaller
		} else if c > 0 {
			n = n.larger
		} else {
			return n.value, true
		}
	}
	return
}

func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Min returns the smallest key and its value, or ok == false when the tree
// is empty.
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	if t.root == nil {
		return
	}
	n := t.root.min()
	return n.key, n.value, true
}

/*
Check walks the whole tree and verifies that keys are in strictly
ascending in-order sequence and that every node's count equals one plus the
counts of its children. It returns nil for a consistent tree.
*/
func (t *Tree[K, V]) Check() error {
	var (
		prev    *node[K, V]
		walkErr error
	)
	var walk func(n *node[K, V]) int
	walk = func(n *node[K, V]) int {
		if n == nil || walkErr != nil {
			return 0
		}
		ls := walk(n.smaller)
		if walkErr != nil {
			return 0
		}
		if prev != nil && t.cmp(prev.key, n.key) >= 0 {
			walkErr = fmt.Errorf("%w: %v is not less than %v", ErrOrder, prev.key, n.key)
			return 0
		}
		prev = n
		rs := walk(n.larger)
		if walkErr != nil {
			return 0
		}
		if want := 1 + ls + rs; n.count != want {
			walkErr = fmt.Errorf("%w: %v has count %d, want %d", ErrCount, n, n.count, want)
			return 0
		}
		return n.count
	}
	walk(t.root)
	return walkErr
}

// Tree implements [fmt.Stringer]
func (t *Tree[K, V]) String() string {
	if t.root == nil {
		return "<empty>"
	}
	tree := treeprint.NewWithRoot(t.root.label())
	addBranches(tree, t.root)
	return tree.String()
}

func addBranches[K, V any](tree treeprint.Tree, n *node[K, V]) {
	if n.smaller != nil {
		addBranches(tree.AddMetaBranch("smaller", n.smaller.label()), n.smaller)
	}
	if n.larger != nil {
		addBranches(tree.AddMetaBranch("larger", n.larger.label()), n.larger)
	}
}
