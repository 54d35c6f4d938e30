package btree

import (
	"cmp"
	"fmt"
	"slices"
)

// A node holds up to 2*degree-1 keys. values[i] belongs to keys[i], and an
// internal node has exactly len(keys)+1 children where every key under
// children[i] sits between keys[i-1] and keys[i].
type node[K cmp.Ordered, V any] struct {
	keys     []K
	values   []V
	children []*node[K, V]
	isLeaf   bool
	degree   int
}

func makeNode[K cmp.Ordered, V any](degree int, isLeaf bool) *node[K, V] {
	n := &node[K, V]{
		keys:   make([]K, 0, 2*degree-1),
		values: make([]V, 0, 2*degree-1),
		isLeaf: isLeaf,
		degree: degree,
	}
	if !isLeaf {
		n.children = make([]*node[K, V], 0, 2*degree)
	}

	return n
}

func makeLeaf[K cmp.Ordered, V any](degree int) *node[K, V] {
	return makeNode[K, V](degree, true)
}

func (n *node[K, V]) isFull() bool {
	return len(n.keys) == 2*n.degree-1
}

// Returns the smallest index whose key is >= `key` (len(keys) if there is none)
// and whether the key at that index equals `key`.
func (n *node[K, V]) search(key K) (int, bool) {
	return slices.BinarySearch(n.keys, key)
}

// Inserts into the subtree rooted at `n`, which must not be full. Any full
// child is split before we descend into it, so nothing above `n` is touched.
// Returns false if the key already existed and only its value was replaced.
func (n *node[K, V]) insertNonFull(key K, value V) bool {
	pos, found := n.search(key)
	if found {
		n.values[pos] = value
		return false
	}

	if n.isLeaf {
		n.keys = slices.Insert(n.keys, pos, key)
		n.values = slices.Insert(n.values, pos, value)
		return true
	}

	if n.children[pos].isFull() {
		n.splitChild(pos)

		// The promoted median now sits at keys[pos] and may change our direction.
		switch c := cmp.Compare(key, n.keys[pos]); {
		case c > 0:
			pos++
		case c == 0:
			n.values[pos] = value
			return false
		}
	}

	return n.children[pos].insertNonFull(key, value)
}

// Splits the full child at `index` around its median. The child keeps the
// first degree-1 pairs, a new right sibling takes the last degree-1 pairs,
// and the median pair moves up into `n` at `index`.
func (n *node[K, V]) splitChild(index int) {
	if n.isLeaf || n.isFull() || index < 0 || index >= len(n.children) || !n.children[index].isFull() {
		panic(fmt.Errorf("split child %d: %w", index, INVALID_SPLIT_ERROR))
	}

	t := n.degree
	child := n.children[index]
	sibling := makeNode[K, V](t, child.isLeaf)
	sibling.keys = append(sibling.keys, child.keys[t:]...)
	sibling.values = append(sibling.values, child.values[t:]...)
	if !child.isLeaf {
		sibling.children = append(sibling.children, child.children[t:]...)
		clear(child.children[t:])
		child.children = child.children[:t]
	}

	medianKey, medianValue := child.keys[t-1], child.values[t-1]

	// Zero the moved tail so the child doesn't keep the sibling's values alive.
	clear(child.keys[t-1:])
	clear(child.values[t-1:])
	child.keys = child.keys[:t-1]
	child.values = child.values[:t-1]

	n.keys = slices.Insert(n.keys, index, medianKey)
	n.values = slices.Insert(n.values, index, medianValue)
	n.children = slices.Insert(n.children, index+1, sibling)
}

func (n *node[K, V]) find(key K) (V, bool) {
	for next := n; next != nil; {
		pos, found := next.search(key)
		if found {
			return next.values[pos], true
		}

		// If we get here on a leaf, the key is not in the tree.
		if next.isLeaf {
			break
		}

		next = next.children[pos]
	}

	var zero V
	return zero, false
}

// In-order walk of the subtree. Returns false once `fn` asks to stop.
func (n *node[K, V]) walk(fn func(K, V) bool) bool {
	for i := range n.keys {
		if !n.isLeaf && !n.children[i].walk(fn) {
			return false
		}

		if !fn(n.keys[i], n.values[i]) {
			return false
		}
	}

	if !n.isLeaf {
		return n.children[len(n.keys)].walk(fn)
	}

	return true
}
