package bst

import "github.com/sirupsen/logrus"

// Remove the smallest node of the non-empty subtree n, returning the new
// subtree root. Every node on the path to the minimum is recounted.
func (t *Tree[K, V]) deleteMin(n *node[K, V]) *node[K, V] {
	if n.smaller == nil {
		return n.larger
	}
	n.smaller = t.deleteMin(n.smaller)
	n.recount()
	return n
}

/*
Delete key from the subtree rooted at n and return the new subtree root.

A matching node with a single child is replaced by that child. A matching
node with two children is replaced by its in-order successor: the minimum of
the larger subtree is detached from there and takes over both of the
deleted node's subtrees. Each frame recounts its root on the way back up,
which leaves counts untouched when key was not found.
*/
func (t *Tree[K, V]) delete(n *node[K, V], key K) (root *node[K, V], found bool) {
	if n == nil {
		return nil, false
	}
	c := t.cmp(key, n.key)
	switch {
	case c < 0:
		n.smaller, found = t.delete(n.smaller, key)
	case c > 0:
		n.larger, found = t.delete(n.larger, key)
	default:
		found = true
		if n.larger == nil {
			return n.smaller, true
		}
		if n.smaller == nil {
			return n.larger, true
		}
		s := n.larger.min()
		s.larger = t.deleteMin(n.larger)
		s.smaller = n.smaller
		n = s
	}
	n.recount()
	return n, found
}

// Delete removes key and its value. Deleting an absent key is a no-op.
func (t *Tree[K, V]) Delete(key K) {
	var found bool
	t.root, found = t.delete(t.root, key)

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"op": "delete", "key": key, "found": found, "size": t.Size(),
		}).Debug("delete key")
	}
}

// DeleteMin removes the smallest key. The tree must not be empty: calling
// DeleteMin on an empty tree panics with [ErrEmptyTree].
func (t *Tree[K, V]) DeleteMin() {
	if t.root == nil {
		panic(ErrEmptyTree)
	}
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"op": "deleteMin", "key": t.root.min().key,
		}).Debug("delete smallest key")
	}
	t.root = t.deleteMin(t.root)
}
