package bst

import "fmt"

type node[K, V any] struct {
	key     K
	value   V
	smaller *node[K, V]
	larger  *node[K, V]
	count   int
}

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value, count: 1}
}

// size of the subtree rooted at n, 0 for an absent subtree
func (n *node[K, V]) size() int {
	if n == nil {
		return 0
	}
	return n.count
}

func (n *node[K, V]) recount() {
	n.count = 1 + n.smaller.size() + n.larger.size()
}

func (n *node[K, V]) min() *node[K, V] {
	for n.smaller != nil {
		n = n.smaller
	}
	return n
}

func (n *node[K, V]) label() string {
	return fmt.Sprintf("%v: %v", n.key, n.value)
}

// node implements [fmt.Stringer]
func (n *node[K, V]) String() string {
	if n == nil {
		return "<nil>"
	}
	s := fmt.Sprintf("Node: %v:%v", n.key, n.value)
	if n.smaller != nil {
		s += fmt.Sprintf(", smaller: %v", n.smaller.key)
	}
	if n.larger != nil {
		s += fmt.Sprintf(", larger: %v", n.larger.key)
	}
	return s
}
