// Package container defines the dictionary contract shared by
// every storage backend.
package container

import (
	"errors"
	"fmt"
)

// Dictionary is an associative container with unique keys.
// Implementations aren't safe for concurrent use.
type Dictionary[K comparable, V any] interface {
	// Get returns the value associated with key,
	// otherwise returns *NotFoundError[K].
	Get(key K) (V, error)

	// Set associates key with value overwriting any existing association.
	Set(key K, value V)

	// IsSet returns true if key was ever set.
	IsSet(key K) bool

	// Len returns the number of distinct keys stored.
	Len() int

	// Reset releases all stored entries.
	Reset()
}

// ErrNotFound is matched by any *NotFoundError through errors.Is.
var ErrNotFound = errors.New("key not found")

// NotFoundError is returned by Get when no entry matches Key.
type NotFoundError[K any] struct {
	Key K
}

// GetKey returns the key that wasn't found.
func (e *NotFoundError[K]) GetKey() K { return e.Key }

func (e *NotFoundError[K]) Error() string {
	return fmt.Sprintf("key not found: %v", e.Key)
}

func (e *NotFoundError[K]) Is(target error) bool {
	return target == ErrNotFound
}
