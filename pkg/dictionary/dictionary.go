// Package dictionary binds a key type to exactly one storage backend
// based on the capabilities of the key type.
//
// The priority is fixed: keys that can be hashed use the hash table,
// otherwise keys that can be ordered use the AVL tree,
// otherwise the linked list is used. Equality is required at compile time.
package dictionary

import (
	"fmt"
	"reflect"

	"github.com/graph-guard/ggdict/pkg/capability"
	"github.com/graph-guard/ggdict/pkg/config"
	"github.com/graph-guard/ggdict/pkg/container"
	"github.com/graph-guard/ggdict/pkg/container/avl"
	"github.com/graph-guard/ggdict/pkg/container/hamap"
	"github.com/graph-guard/ggdict/pkg/container/list"
)

// Backend is one of the storage strategies.
type Backend uint8

const (
	_ Backend = iota
	BackendList
	BackendTree
	BackendHash
)

func (b Backend) String() string {
	switch b {
	case BackendList:
		return "list"
	case BackendTree:
		return "tree"
	case BackendHash:
		return "hash"
	}
	return fmt.Sprintf("Backend(%d)", uint8(b))
}

// ParseBackend returns the backend named s and true,
// otherwise returns (0, false).
func ParseBackend(s string) (Backend, bool) {
	for _, b := range []Backend{BackendList, BackendTree, BackendHash} {
		if b.String() == s {
			return b, true
		}
	}
	return 0, false
}

// Select returns the backend used for key type K.
func Select[K comparable]() Backend {
	switch {
	case capability.HasHash[K]():
		return BackendHash
	case capability.HasOrdering[K]():
		return BackendTree
	}
	return BackendList
}

// Dictionary is a container.Dictionary bound to
// the backend selected for K for its entire lifetime.
type Dictionary[K comparable, V any] struct {
	container.Dictionary[K, V]
	backend Backend
}

// Backend returns the backend the dictionary is bound to.
func (d *Dictionary[K, V]) Backend() Backend { return d.backend }

type options struct {
	hash config.Hash
}

// Option configures New and NewBackend.
type Option func(*options)

// WithConfig tunes the hash table backend.
// It has no effect on the other backends.
func WithConfig(c config.Hash) Option {
	return func(o *options) { o.hash = c }
}

// New creates a new empty dictionary using the backend selected for K.
func New[K comparable, V any](opts ...Option) *Dictionary[K, V] {
	b := Select[K]()
	d, err := NewBackend[K, V](b, opts...)
	if err != nil {
		// Select only picks backends K is capable of.
		panic(err)
	}
	return &Dictionary[K, V]{Dictionary: d, backend: b}
}

// NewBackend creates a new empty container of the given backend.
// Returns *ErrorIncapable if K lacks the capability b requires.
func NewBackend[K comparable, V any](
	b Backend,
	opts ...Option,
) (container.Dictionary[K, V], error) {
	o := options{hash: config.Default().Hash}
	for _, fn := range opts {
		fn(&o)
	}

	switch b {
	case BackendList:
		return list.New[K, V](), nil
	case BackendTree:
		less, ok := capability.LessFunc[K]()
		if !ok {
			return nil, &ErrorIncapable{Backend: b, KeyType: keyTypeName[K]()}
		}
		return avl.New[K, V](less), nil
	case BackendHash:
		hash, ok := capability.HashFunc[K](hasher(o.hash))
		if !ok {
			return nil, &ErrorIncapable{Backend: b, KeyType: keyTypeName[K]()}
		}
		return hamap.New[K, V](hash,
			hamap.WithBuckets(o.hash.Buckets),
			hamap.WithLoadFactorDivisor(o.hash.LoadFactorDivisor),
			hamap.WithGrowthMultiplier(o.hash.GrowthMultiplier),
		), nil
	}
	return nil, fmt.Errorf("unknown backend: %s", b)
}

func hasher(c config.Hash) capability.Hasher {
	if c.Hasher == config.HasherXXH64 {
		return capability.HasherXXH64{Seed: c.Seed}
	}
	return capability.HasherXXH3{Seed: c.Seed}
}

func keyTypeName[K any]() string {
	return reflect.TypeOf((*K)(nil)).Elem().String()
}

// ErrorIncapable is returned when a key type doesn't support
// the operations a backend requires.
type ErrorIncapable struct {
	Backend Backend
	KeyType string
}

func (e ErrorIncapable) Error() string {
	return fmt.Sprintf(
		"key type %s is incapable of backend %s", e.KeyType, e.Backend,
	)
}
