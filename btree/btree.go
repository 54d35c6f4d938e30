// Package btree implements an in-memory ordered map backed by a B-tree of
// configurable minimum degree.
//
// Every non-root node holds between degree-1 and 2*degree-1 keys. Insertion
// splits full nodes on the way down, so a single pass from the root is enough
// and the tree only grows in height at the root.
//
// A BTree is not safe for concurrent use.
package btree

import (
	"cmp"
	"fmt"
	"io"
)

// The smallest legal minimum degree.
const MIN_DEGREE = 2

type BTree[K cmp.Ordered, V any] struct {
	root   *node[K, V]
	degree int
	length int
}

// NewTree returns an empty tree. `degree` must not be less than MIN_DEGREE.
func NewTree[K cmp.Ordered, V any](degree int) (*BTree[K, V], error) {
	if degree < MIN_DEGREE {
		return nil, fmt.Errorf("%w, got %d", INVALID_DEGREE_ERROR, degree)
	}

	return &BTree[K, V]{degree: degree}, nil
}

// MustNewTree is like NewTree but panics on an invalid degree.
func MustNewTree[K cmp.Ordered, V any](degree int) *BTree[K, V] {
	tree, err := NewTree[K, V](degree)
	if err != nil {
		panic(err)
	}

	return tree
}

// Insert binds `value` to `key`. If the key is already present its value is
// replaced.
func (t *BTree[K, V]) Insert(key K, value V) {
	// The tree is empty, so initialize a new leaf root.
	if t.root == nil {
		t.root = makeLeaf[K, V](t.degree)
	}

	// The root is full, so grow the tree by one level before descending.
	if t.root.isFull() {
		t.splitRoot()
	}

	if t.root.insertNonFull(key, value) {
		t.length++
	}
}

// The old root becomes the only child of a new internal root and is then
// split, leaving the median as the new root's single key.
func (t *BTree[K, V]) splitRoot() {
	newRoot := makeNode[K, V](t.degree, false)
	newRoot.children = append(newRoot.children, t.root)
	newRoot.splitChild(0)
	t.root = newRoot
}

// Search returns the value bound to `key`. The boolean is false if the key
// is absent.
func (t *BTree[K, V]) Search(key K) (V, bool) {
	if t.root == nil {
		var zero V
		return zero, false
	}

	return t.root.find(key)
}

// Find is like Search but reports an absent key as KEY_NOT_FOUND_ERROR.
func (t *BTree[K, V]) Find(key K) (V, error) {
	value, ok := t.Search(key)
	if !ok {
		return value, KEY_NOT_FOUND_ERROR
	}

	return value, nil
}

// Walk calls `fn` for every pair in ascending key order until `fn` returns false.
func (t *BTree[K, V]) Walk(fn func(key K, value V) bool) {
	if t.root == nil {
		return
	}

	t.root.walk(fn)
}

// Len returns the number of distinct keys in the tree.
func (t *BTree[K, V]) Len() int {
	return t.length
}

func (t *BTree[K, V]) IsEmpty() bool {
	return t.root == nil
}

func (t *BTree[K, V]) Degree() int {
	return t.degree
}

// Height returns the number of levels, 0 for an empty tree. All leaves are
// at the same depth, so following the leftmost path is enough.
func (t *BTree[K, V]) Height() int {
	if t.root == nil {
		return 0
	}

	height := 1
	for n := t.root; !n.isLeaf; n = n.children[0] {
		height++
	}

	return height
}

// Print writes the keys of the tree level by level, one line per level.
func (t *BTree[K, V]) Print(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "Tree is empty")
		return
	}

	queue := []*node[K, V]{t.root}
	for len(queue) > 0 {
		levelSize := len(queue)
		for i := 0; i < levelSize; i++ {
			n := queue[0]
			queue = queue[1:]
			fmt.Fprint(w, n.keys)

			if !n.isLeaf {
				queue = append(queue, n.children...)
			}

			if i < levelSize-1 {
				fmt.Fprint(w, ", ")
			}
		}

		fmt.Fprintln(w)
	}
}
