// package hamap provides a container.Dictionary implementation
// backed by a chained hash table.
// The table grows by a constant multiplier and rehashes every stored
// entry whenever the number of distinct keys exceeds
// the bucket count divided by the load factor divisor.
// Any hash function can be provided during initialization,
// see package capability for the default XXH3 based ones.
package hamap

import (
	"fmt"
	"reflect"

	"github.com/graph-guard/ggdict/pkg/capability"
	"github.com/graph-guard/ggdict/pkg/container"
)

const (
	DefaultBuckets           = 61
	DefaultLoadFactorDivisor = 4
	DefaultGrowthMultiplier  = 3
)

type entry[K comparable, V any] struct {
	KeyHash uint64
	Key     K
	Value   V
}

// Map is a hash table with separate chaining.
type Map[K comparable, V any] struct {
	size    int
	buckets [][]entry[K, V]
	hash    func(K) uint64
	opts    options
}

var _ container.Dictionary[int, int] = new(Map[int, int])

type options struct {
	buckets           int
	loadFactorDivisor int
	growthMultiplier  int
}

// Option configures a Map.
type Option func(*options)

// WithBuckets sets the initial bucket count.
func WithBuckets(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.buckets = n
		}
	}
}

// WithLoadFactorDivisor sets the divisor d of the growth threshold:
// the table grows when size > buckets / d.
func WithLoadFactorDivisor(d int) Option {
	return func(o *options) {
		if d > 0 {
			o.loadFactorDivisor = d
		}
	}
}

// WithGrowthMultiplier sets the factor the bucket count grows by.
func WithGrowthMultiplier(m int) Option {
	return func(o *options) {
		if m > 1 {
			o.growthMultiplier = m
		}
	}
}

// New creates a new empty map hashing keys with hash.
// If hash is nil, the default hash of K from package capability is used
// and New panics if K isn't hashable.
func New[K comparable, V any](hash func(K) uint64, opts ...Option) *Map[K, V] {
	if hash == nil {
		var ok bool
		if hash, ok = capability.HashFunc[K](nil); !ok {
			panic(fmt.Errorf(
				"hamap: no default hash for key type %s",
				reflect.TypeOf((*K)(nil)).Elem(),
			))
		}
	}
	o := options{
		buckets:           DefaultBuckets,
		loadFactorDivisor: DefaultLoadFactorDivisor,
		growthMultiplier:  DefaultGrowthMultiplier,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return &Map[K, V]{
		buckets: make([][]entry[K, V], o.buckets),
		hash:    hash,
		opts:    o,
	}
}

func (m *Map[K, V]) index(keyHash uint64) int {
	return int(keyHash % uint64(len(m.buckets)))
}

func (m *Map[K, V]) find(key K) *entry[K, V] {
	hash := m.hash(key)
	b := m.buckets[m.index(hash)]
	for i := range b {
		if b[i].KeyHash == hash && b[i].Key == key {
			return &b[i]
		}
	}
	return nil
}

// Get returns the value associated with key,
// otherwise returns *container.NotFoundError.
func (m *Map[K, V]) Get(key K) (value V, err error) {
	if e := m.find(key); e != nil {
		return e.Value, nil
	}
	return value, &container.NotFoundError[K]{Key: key}
}

// IsSet returns true if key exists.
func (m *Map[K, V]) IsSet(key K) bool {
	return m.find(key) != nil
}

// Set associates key with value overwriting any existing associations.
//
// The size is incremented before it's known whether key is new,
// so an update can trigger growth one call early.
// The increment is rolled back if key already exists.
func (m *Map[K, V]) Set(key K, value V) {
	m.size++
	if m.size > len(m.buckets)/m.opts.loadFactorDivisor {
		m.grow()
	}

	hash := m.hash(key)
	i := m.index(hash)
	b := m.buckets[i]
	for j := range b {
		if b[j].KeyHash == hash && b[j].Key == key {
			b[j].Value = value
			m.size--
			return
		}
	}
	m.buckets[i] = append(b, entry[K, V]{KeyHash: hash, Key: key, Value: value})
}

// grow allocates a table growthMultiplier times larger
// and reinserts every entry.
func (m *Map[K, V]) grow() {
	old := m.buckets
	m.buckets = make([][]entry[K, V], len(old)*m.opts.growthMultiplier)
	for i := range old {
		for _, e := range old[i] {
			j := m.index(e.KeyHash)
			m.buckets[j] = append(m.buckets[j], e)
		}
		old[i] = nil
	}
}

// Len returns the number of distinct keys stored.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Buckets returns the current bucket count.
func (m *Map[K, V]) Buckets() int {
	return len(m.buckets)
}

// Reset releases all buckets and restores the initial bucket count.
func (m *Map[K, V]) Reset() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.buckets = make([][]entry[K, V], m.opts.buckets)
	m.size = 0
}
