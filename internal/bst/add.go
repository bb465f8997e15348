package bst

import (
	"iter"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

/*
Put the key/value pair into the subtree rooted at n. Returns the root of the
updated subtree, which differs from n only when n was absent, together with
the value previously stored under key. replaced is false when a new node was
created somewhere below, and every frame on the way back up bumps its own
count in that case.
*/
func (t *Tree[K, V]) put(n *node[K, V], key K, value V) (
	root *node[K, V], prev V, replaced bool,
) {
	if n == nil {
		return newNode(key, value), prev, false
	}
	c := t.cmp(key, n.key)
	switch {
	case c < 0:
		n.smaller, prev, replaced = t.put(n.smaller, key, value)
	case c > 0:
		n.larger, prev, replaced = t.put(n.larger, key, value)
	default:
		prev = n.value
		n.value = value
		return n, prev, true
	}
	if !replaced {
		n.count++
	}
	return n, prev, replaced
}

// Put associates value with key. If key was already present its value is
// overwritten in place and the old one is returned with replaced == true;
// the size of the tree is then unchanged.
func (t *Tree[K, V]) Put(key K, value V) (prev V, replaced bool) {
	t.root, prev, replaced = t.put(t.root, key, value)

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"op": "put", "key": key, "replaced": replaced, "size": t.Size(),
		}).Debug("put key")
	}

	return prev, replaced
}

// PutAll puts every pair yielded by entries in the order they are yielded.
// A key yielded more than once keeps the last value.
func (t *Tree[K, V]) PutAll(entries iter.Seq2[K, V]) {
	for k, v := range entries {
		t.Put(k, v)
	}
}

/*
PutAllShuffled collects entries and puts them in an order drawn from r.
Shuffling the input of a bulk load protects the tree from the degenerate
height sorted input produces. For keys yielded more than once, which value
wins depends on the shuffle.
*/
func (t *Tree[K, V]) PutAllShuffled(entries iter.Seq2[K, V], r *rand.Rand) {
	var batch []Entry[K, V]
	for k, v := range entries {
		batch = append(batch, Entry[K, V]{Key: k, Value: v})
	}
	r.Shuffle(len(batch), func(i, j int) {
		batch[i], batch[j] = batch[j], batch[i]
	})

	Log.WithFields(logrus.Fields{
		"op": "putAllShuffled", "entries": len(batch),
	}).Debug("bulk loading shuffled entries")

	for _, e := range batch {
		t.Put(e.Key, e.Value)
	}
}
