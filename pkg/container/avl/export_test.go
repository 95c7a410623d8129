package avl

import (
	"fmt"

	"github.com/graph-guard/ggdict/pkg/math"
	"github.com/graph-guard/ggdict/pkg/stack"
)

type frame[K comparable, V any] struct {
	n *node[K, V]
	// min and max bound the keys of the subtree, nil if unbounded.
	min, max *K
}

// Validate checks the height formula, the balance factor
// and the search order of every node.
func (t *Tree[K, V]) Validate() error {
	count := 0
	st := stack.New[frame[K, V]](64)
	if t.root != nil {
		st.Push(frame[K, V]{n: t.root})
	}
	for st.Len() > 0 {
		f := st.Pop()
		n := f.n
		count++
		if h := 1 + math.Max(height(n.Left), height(n.Right)); n.Height != h {
			return fmt.Errorf("node %v: height %d, expected %d", n.Key, n.Height, h)
		}
		if b := n.balance(); b < -1 || b > 1 {
			return fmt.Errorf("node %v: balance %d", n.Key, b)
		}
		if f.min != nil && !t.less(*f.min, n.Key) {
			return fmt.Errorf("node %v: not greater than %v", n.Key, *f.min)
		}
		if f.max != nil && !t.less(n.Key, *f.max) {
			return fmt.Errorf("node %v: not less than %v", n.Key, *f.max)
		}
		key := n.Key
		if n.Left != nil {
			st.Push(frame[K, V]{n: n.Left, min: f.min, max: &key})
		}
		if n.Right != nil {
			st.Push(frame[K, V]{n: n.Right, min: &key, max: f.max})
		}
	}
	if count != t.size {
		return fmt.Errorf("counted %d nodes, size is %d", count, t.size)
	}
	return nil
}

// Height returns the height of the root.
func (t *Tree[K, V]) Height() int { return height(t.root) }
