// Package list provides a container.Dictionary implementation
// backed by a singly linked list and linear search.
// It only requires keys to be comparable.
package list

import "github.com/graph-guard/ggdict/pkg/container"

type node[K comparable, V any] struct {
	Key   K
	Value V
	Next  *node[K, V]
}

// List keeps the most recently inserted key at the head.
type List[K comparable, V any] struct {
	head *node[K, V]
	size int
}

var _ container.Dictionary[int, int] = new(List[int, int])

// New creates a new empty list.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

func (l *List[K, V]) find(key K) *node[K, V] {
	for n := l.head; n != nil; n = n.Next {
		if n.Key == key {
			return n
		}
	}
	return nil
}

// Get returns the value associated with key,
// otherwise returns *container.NotFoundError.
func (l *List[K, V]) Get(key K) (value V, err error) {
	if n := l.find(key); n != nil {
		return n.Value, nil
	}
	return value, &container.NotFoundError[K]{Key: key}
}

// Set overwrites the value of an existing key in place,
// otherwise prepends a new entry.
func (l *List[K, V]) Set(key K, value V) {
	if n := l.find(key); n != nil {
		n.Value = value
		return
	}
	l.head = &node[K, V]{Key: key, Value: value, Next: l.head}
	l.size++
}

// IsSet returns true if key exists.
func (l *List[K, V]) IsSet(key K) bool {
	return l.find(key) != nil
}

// Len returns the number of stored entries.
func (l *List[K, V]) Len() int {
	return l.size
}

// Reset unlinks every node one by one.
func (l *List[K, V]) Reset() {
	for n := l.head; n != nil; {
		next := n.Next
		n.Next = nil
		n = next
	}
	l.head, l.size = nil, 0
}
