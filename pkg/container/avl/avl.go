// Package avl provides a container.Dictionary implementation
// backed by a self-balancing AVL binary search tree.
//
// The ordering must be a strict total order consistent with ==,
// otherwise the search invariant is silently corrupted.
package avl

import (
	"github.com/graph-guard/ggdict/pkg/container"
	"github.com/graph-guard/ggdict/pkg/math"
	"github.com/graph-guard/ggdict/pkg/stack"
	"golang.org/x/exp/constraints"
)

type node[K comparable, V any] struct {
	Key         K
	Value       V
	Height      int
	Left, Right *node[K, V]
}

// Tree is an AVL tree ordered by less.
type Tree[K comparable, V any] struct {
	root *node[K, V]
	less func(a, b K) bool
	size int
}

var _ container.Dictionary[int, int] = new(Tree[int, int])

// New creates a new empty tree ordered by less.
func New[K comparable, V any](less func(a, b K) bool) *Tree[K, V] {
	return &Tree[K, V]{less: less}
}

// NewOrdered creates a new empty tree ordered by the < operator.
func NewOrdered[K constraints.Ordered, V any]() *Tree[K, V] {
	return New[K, V](func(a, b K) bool { return a < b })
}

func (t *Tree[K, V]) find(key K) *node[K, V] {
	for n := t.root; n != nil; {
		if n.Key == key {
			return n
		}
		if t.less(key, n.Key) {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return nil
}

// Get returns the value associated with key,
// otherwise returns *container.NotFoundError.
func (t *Tree[K, V]) Get(key K) (value V, err error) {
	if n := t.find(key); n != nil {
		return n.Value, nil
	}
	return value, &container.NotFoundError[K]{Key: key}
}

// IsSet returns true if key exists.
func (t *Tree[K, V]) IsSet(key K) bool {
	return t.find(key) != nil
}

// Set overwrites the value of an existing key without restructuring,
// otherwise inserts a new leaf and rebalances the insertion path.
func (t *Tree[K, V]) Set(key K, value V) {
	var inserted bool
	t.root, inserted = t.insert(t.root, key, value)
	if inserted {
		t.size++
	}
}

// insert recurses at most height(root) levels deep.
func (t *Tree[K, V]) insert(
	n *node[K, V],
	key K,
	value V,
) (_ *node[K, V], inserted bool) {
	if n == nil {
		return &node[K, V]{Key: key, Value: value, Height: 1}, true
	}
	if n.Key == key {
		n.Value = value
		return n, false
	}
	if t.less(key, n.Key) {
		n.Left, inserted = t.insert(n.Left, key, value)
	} else {
		n.Right, inserted = t.insert(n.Right, key, value)
	}
	if !inserted {
		return n, false
	}
	return rebalance(n), true
}

// Len returns the number of stored entries.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Reset releases every node in post-order using an explicit stack.
func (t *Tree[K, V]) Reset() {
	if t.root == nil {
		return
	}
	st := stack.New[*node[K, V]](t.root.Height)
	var last *node[K, V]
	for n := t.root; n != nil || st.Len() > 0; {
		if n != nil {
			st.Push(n)
			n = n.Left
			continue
		}
		top := st.Top()
		if top.Right != nil && top.Right != last {
			n = top.Right
			continue
		}
		st.Pop()
		top.Left, top.Right = nil, nil
		last = top
	}
	t.root, t.size = nil, 0
}

func height[K comparable, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.Height
}

func (n *node[K, V]) updateHeight() {
	n.Height = 1 + math.Max(height(n.Left), height(n.Right))
}

func (n *node[K, V]) balance() int {
	return height(n.Right) - height(n.Left)
}

func rotateLeft[K comparable, V any](n *node[K, V]) *node[K, V] {
	r := n.Right
	n.Right, r.Left = r.Left, n
	n.updateHeight()
	r.updateHeight()
	return r
}

func rotateRight[K comparable, V any](n *node[K, V]) *node[K, V] {
	l := n.Left
	n.Left, l.Right = l.Right, n
	n.updateHeight()
	l.updateHeight()
	return l
}

// rebalance updates the height of n and restores |balance(n)| <= 1.
// It returns the new root of the subtree.
func rebalance[K comparable, V any](n *node[K, V]) *node[K, V] {
	n.updateHeight()
	switch n.balance() {
	case 2:
		if n.Right.balance() < 0 {
			n.Right = rotateRight(n.Right)
		}
		return rotateLeft(n)
	case -2:
		if n.Left.balance() > 0 {
			n.Left = rotateLeft(n.Left)
		}
		return rotateRight(n)
	}
	return n
}
