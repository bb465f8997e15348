package bst

import "iter"

// Order selects when a traversal visits a node relative to its subtrees.
type Order int8

const (
	PreOrder  Order = -1 // node, smaller, larger
	InOrder   Order = 0  // smaller, node, larger
	PostOrder Order = 1  // smaller, larger, node
)

type Entry[K, V any] struct {
	Key   K
	Value V
}

func traverse[K, V any](order Order, n *node[K, V], visit func(K, V)) {
	if n == nil {
		return
	}
	if order < InOrder {
		visit(n.key, n.value)
	}
	traverse(order, n.smaller, visit)
	if order == InOrder {
		visit(n.key, n.value)
	}
	traverse(order, n.larger, visit)
	if order > InOrder {
		visit(n.key, n.value)
	}
}

/*
Traverse calls visit once for every key/value pair of the tree, depth first,
in the given order. visit must not modify the structure of the tree (Put of
an existing key is fine; Put of a new key, Delete and DeleteMin are not).
*/
func (t *Tree[K, V]) Traverse(order Order, visit func(K, V)) {
	traverse(order, t.root, visit)
}

// InOrderTraverse calls visit for every pair in ascending key order.
func (t *Tree[K, V]) InOrderTraverse(visit func(K, V)) {
	traverse(InOrder, t.root, visit)
}

// All returns an iterator over the pairs of the tree in ascending key
// order. The iterator may be ranged over any number of times; the tree must
// not be structurally modified while a range over it is in progress.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []*node[K, V]
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.smaller
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key, n.value) {
				return
			}
			n = n.larger
		}
	}
}

// Keys returns every key of the tree in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Size())
	t.InOrderTraverse(func(k K, _ V) {
		keys = append(keys, k)
	})
	return keys
}

// Entries returns every pair of the tree in ascending key order.
func (t *Tree[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, t.Size())
	for k, v := range t.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

type depthNode[K, V any] struct {
	n     *node[K, V]
	depth int
}

/*
LevelOrder walks the tree breadth first, calling visit with the depth of
every node (the root is at depth 0) and whether the node is a leaf. It gives
read access to the shape of the tree without exposing the nodes.
*/
func (t *Tree[K, V]) LevelOrder(visit func(depth int, leaf bool)) {
	if t.root == nil {
		return
	}
	queue := []depthNode[K, V]{{t.root, 0}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		visit(it.depth, it.n.smaller == nil && it.n.larger == nil)
		if it.n.smaller != nil {
			queue = append(queue, depthNode[K, V]{it.n.smaller, it.depth + 1})
		}
		if it.n.larger != nil {
			queue = append(queue, depthNode[K, V]{it.n.larger, it.depth + 1})
		}
	}
}

func maxDepth[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(maxDepth(n.smaller), maxDepth(n.larger))
}

// MaxDepth returns the number of nodes on the longest root-to-leaf path, 0
// for an empty tree.
func (t *Tree[K, V]) MaxDepth() int {
	return maxDepth(t.root)
}
