// package gomap provides a container.Dictionary implementation
// backed by Go's native map for benchmark reference.
package gomap

import "github.com/graph-guard/ggdict/pkg/container"

type Gomap[K comparable, V any] struct {
	m map[K]V
}

var _ container.Dictionary[int, int] = new(Gomap[int, int])

func New[K comparable, V any](capacity int) *Gomap[K, V] {
	return &Gomap[K, V]{
		m: make(map[K]V, capacity),
	}
}

func (m *Gomap[K, V]) Set(key K, value V) {
	m.m[key] = value
}

func (m *Gomap[K, V]) Get(key K) (v V, err error) {
	v, ok := m.m[key]
	if !ok {
		return v, &container.NotFoundError[K]{Key: key}
	}
	return v, nil
}

func (m *Gomap[K, V]) IsSet(key K) bool {
	_, ok := m.m[key]
	return ok
}

func (m *Gomap[K, V]) Reset() {
	m.m = make(map[K]V)
}

func (m *Gomap[K, V]) Len() int {
	return len(m.m)
}
