package btree

import (
	"cmp"
	"errors"
	"fmt"
	mathRand "math/rand"
)

const MULTIPLE_TEST_COUNT = 1000

// Walks every node and reports the first broken structural rule: ordering,
// parallel slices, occupancy bounds, separator ranges and equal leaf depth.
// It also checks that Len agrees with the number of stored keys.
func checkInvariants[K cmp.Ordered, V any](tree *BTree[K, V]) error {
	if tree.root == nil {
		if tree.length != 0 {
			return fmt.Errorf("empty tree reports %d keys", tree.length)
		}

		return nil
	}

	leafDepth := -1
	count, err := checkNode(tree.root, nil, nil, 1, true, &leafDepth)
	if err != nil {
		return err
	}

	if count != tree.length {
		return fmt.Errorf("tree holds %d keys but Len is %d", count, tree.length)
	}

	if leafDepth != tree.Height() {
		return fmt.Errorf("leaves at depth %d but height is %d", leafDepth, tree.Height())
	}

	return nil
}

func checkNode[K cmp.Ordered, V any](n *node[K, V], lo, hi *K, depth int, isRoot bool, leafDepth *int) (int, error) {
	t := n.degree
	minKeys := t - 1
	if isRoot {
		minKeys = 1
	}

	if len(n.keys) < minKeys || len(n.keys) > 2*t-1 {
		return 0, fmt.Errorf("node %v at depth %d holds %d keys, want between %d and %d", n.keys, depth, len(n.keys), minKeys, 2*t-1)
	}

	if len(n.values) != len(n.keys) {
		return 0, fmt.Errorf("node %v has %d values", n.keys, len(n.values))
	}

	for i, k := range n.keys {
		if i > 0 && cmp.Compare(n.keys[i-1], k) >= 0 {
			return 0, fmt.Errorf("node %v is not strictly increasing", n.keys)
		}

		if lo != nil && cmp.Compare(k, *lo) <= 0 {
			return 0, fmt.Errorf("key %v in node %v is not greater than separator %v", k, n.keys, *lo)
		}

		if hi != nil && cmp.Compare(k, *hi) >= 0 {
			return 0, fmt.Errorf("key %v in node %v is not less than separator %v", k, n.keys, *hi)
		}
	}

	count := len(n.keys)
	if n.isLeaf {
		if len(n.children) != 0 {
			return 0, fmt.Errorf("leaf %v has %d children", n.keys, len(n.children))
		}

		if *leafDepth == -1 {
			*leafDepth = depth
		} else if *leafDepth != depth {
			return 0, fmt.Errorf("leaf %v at depth %d, expected %d", n.keys, depth, *leafDepth)
		}

		return count, nil
	}

	if len(n.children) != len(n.keys)+1 {
		return 0, fmt.Errorf("internal node %v has %d children", n.keys, len(n.children))
	}

	for i, child := range n.children {
		if child.degree != t {
			return 0, errors.New("child degree differs from parent degree")
		}

		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			childHi = &n.keys[i]
		}

		c, err := checkNode(child, childLo, childHi, depth+1, false, leafDepth)
		if err != nil {
			return 0, err
		}

		count += c
	}

	return count, nil
}

func valueOf(i int) string {
	return "v" + fmt.Sprint(i)
}

func ascendingLoop(count int, cb func(key int, val string) error) error {
	for i := 0; i < count; i++ {
		if err := cb(i, valueOf(i)); err != nil {
			return err
		}
	}

	return nil
}

func descendingLoop(count int, cb func(key int, val string) error) error {
	for i := count - 1; i >= 0; i-- {
		if err := cb(i, valueOf(i)); err != nil {
			return err
		}
	}

	return nil
}

func getRandomKeys(count int) []int {
	return mathRand.Perm(count)
}
