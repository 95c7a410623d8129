// Package capability classifies key types by the operations they support.
//
// Equality is required of every key type at compile time through
// the comparable constraint. Ordering and hashing are detected once
// per key type, either from the built-in kind of the key or from
// the Lesser and Hashable interfaces implemented by user types.
package capability

import (
	"bytes"
	"encoding/binary"
	"math"
	"reflect"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

// Lesser is implemented by key types that declare a strict total order
// consistent with ==.
type Lesser[K any] interface{ Less(K) bool }

// Hashable is implemented by key types that declare their own hash.
// Keys that are == must produce equal hashes.
type Hashable interface{ Hash() uint64 }

// HasOrdering reports whether K supports ordering.
func HasOrdering[K comparable]() bool {
	_, ok := LessFunc[K]()
	return ok
}

// HasHash reports whether K supports hashing.
func HasHash[K comparable]() bool {
	_, ok := HashFunc[K](DefaultHasher)
	return ok
}

// LessFunc returns the ordering of K and true,
// otherwise returns (nil, false) if K isn't ordered.
func LessFunc[K comparable]() (less func(a, b K) bool, ok bool) {
	var zero K
	if _, ok := any(zero).(Lesser[K]); ok {
		return func(a, b K) bool { return any(a).(Lesser[K]).Less(b) }, true
	}
	switch any(zero).(type) {
	case int:
		return lessOf[K, int](), true
	case int8:
		return lessOf[K, int8](), true
	case int16:
		return lessOf[K, int16](), true
	case int32:
		return lessOf[K, int32](), true
	case int64:
		return lessOf[K, int64](), true
	case uint:
		return lessOf[K, uint](), true
	case uint8:
		return lessOf[K, uint8](), true
	case uint16:
		return lessOf[K, uint16](), true
	case uint32:
		return lessOf[K, uint32](), true
	case uint64:
		return lessOf[K, uint64](), true
	case uintptr:
		return lessOf[K, uintptr](), true
	case float32:
		return lessOf[K, float32](), true
	case float64:
		return lessOf[K, float64](), true
	case string:
		return lessOf[K, string](), true
	case uuid.UUID:
		return func(a, b K) bool {
			ua, ub := any(a).(uuid.UUID), any(b).(uuid.UUID)
			return bytes.Compare(ua[:], ub[:]) < 0
		}, true
	}
	return lessOfKind[K]()
}

// HashFunc returns a hash function for K based on h and true,
// otherwise returns (nil, false) if K isn't hashable.
// Keys implementing Hashable ignore h.
func HashFunc[K comparable](h Hasher) (hash func(K) uint64, ok bool) {
	if h == nil {
		h = DefaultHasher
	}
	var zero K
	if _, ok := any(zero).(Hashable); ok {
		return func(k K) uint64 { return any(k).(Hashable).Hash() }, true
	}
	switch any(zero).(type) {
	case int:
		return hashInt[K, int](h), true
	case int8:
		return hashInt[K, int8](h), true
	case int16:
		return hashInt[K, int16](h), true
	case int32:
		return hashInt[K, int32](h), true
	case int64:
		return hashInt[K, int64](h), true
	case uint:
		return hashInt[K, uint](h), true
	case uint8:
		return hashInt[K, uint8](h), true
	case uint16:
		return hashInt[K, uint16](h), true
	case uint32:
		return hashInt[K, uint32](h), true
	case uint64:
		return hashInt[K, uint64](h), true
	case uintptr:
		return hashInt[K, uintptr](h), true
	case float32:
		return hashFloat[K, float32](h), true
	case float64:
		return hashFloat[K, float64](h), true
	case bool:
		return func(k K) uint64 {
			if any(k).(bool) {
				return h.Sum([]byte{1})
			}
			return h.Sum([]byte{0})
		}, true
	case string:
		return func(k K) uint64 { return h.SumString(any(k).(string)) }, true
	case uuid.UUID:
		return func(k K) uint64 {
			u := any(k).(uuid.UUID)
			return h.Sum(u[:])
		}, true
	}
	return hashOfKind[K](h)
}

func lessOf[K comparable, T constraints.Ordered]() func(a, b K) bool {
	return func(a, b K) bool { return any(a).(T) < any(b).(T) }
}

func hashInt[K comparable, T constraints.Integer](h Hasher) func(K) uint64 {
	return func(k K) uint64 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(any(k).(T)))
		return h.Sum(b[:])
	}
}

func hashFloat[K comparable, T constraints.Float](h Hasher) func(K) uint64 {
	return func(k K) uint64 {
		var b [8]byte
		f := float64(any(k).(T))
		if f == 0 {
			// -0 == +0
			f = 0
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		return h.Sum(b[:])
	}
}

// lessOfKind orders named types without methods, such as time.Duration,
// by their underlying kind.
func lessOfKind[K comparable]() (func(a, b K) bool, bool) {
	switch reflect.TypeOf((*K)(nil)).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b K) bool {
			return reflect.ValueOf(a).Int() < reflect.ValueOf(b).Int()
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return func(a, b K) bool {
			return reflect.ValueOf(a).Uint() < reflect.ValueOf(b).Uint()
		}, true
	case reflect.Float32, reflect.Float64:
		return func(a, b K) bool {
			return reflect.ValueOf(a).Float() < reflect.ValueOf(b).Float()
		}, true
	case reflect.String:
		return func(a, b K) bool {
			return reflect.ValueOf(a).String() < reflect.ValueOf(b).String()
		}, true
	}
	return nil, false
}

// hashOfKind hashes named types without methods by their underlying kind
// using the same encoding as the built-in types.
func hashOfKind[K comparable](h Hasher) (func(K) uint64, bool) {
	sum64 := func(v uint64) uint64 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		return h.Sum(b[:])
	}
	switch reflect.TypeOf((*K)(nil)).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(k K) uint64 {
			return sum64(uint64(reflect.ValueOf(k).Int()))
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return func(k K) uint64 {
			return sum64(reflect.ValueOf(k).Uint())
		}, true
	case reflect.Float32, reflect.Float64:
		return func(k K) uint64 {
			f := reflect.ValueOf(k).Float()
			if f == 0 {
				f = 0
			}
			return sum64(math.Float64bits(f))
		}, true
	case reflect.Bool:
		return func(k K) uint64 {
			if reflect.ValueOf(k).Bool() {
				return h.Sum([]byte{1})
			}
			return h.Sum([]byte{0})
		}, true
	case reflect.String:
		return func(k K) uint64 {
			return h.SumString(reflect.ValueOf(k).String())
		}, true
	}
	return nil, false
}
