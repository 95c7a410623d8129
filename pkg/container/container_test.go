package container_test

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/graph-guard/ggdict/pkg/capability"
	"github.com/graph-guard/ggdict/pkg/container"
	"github.com/graph-guard/ggdict/pkg/container/avl"
	"github.com/graph-guard/ggdict/pkg/container/gomap"
	"github.com/graph-guard/ggdict/pkg/container/hamap"
	"github.com/graph-guard/ggdict/pkg/container/list"
	"github.com/stretchr/testify/require"
)

var implementations = []struct {
	Name string
	Make func() container.Dictionary[string, int]
}{
	{"gomap", func() container.Dictionary[string, int] {
		return gomap.New[string, int](0)
	}},
	{"list", func() container.Dictionary[string, int] {
		return list.New[string, int]()
	}},
	{"avl", func() container.Dictionary[string, int] {
		return avl.NewOrdered[string, int]()
	}},
	{"hamap", func() container.Dictionary[string, int] {
		hash, _ := capability.HashFunc[string](nil)
		return hamap.New[string, int](hash)
	}},
}

func forEachImplT(
	t *testing.T,
	fn func(*testing.T, container.Dictionary[string, int]),
) {
	for _, impl := range implementations {
		t.Run(impl.Name, func(t *testing.T) {
			fn(t, impl.Make())
		})
	}
}

func TestReset(t *testing.T) {
	forEachImplT(t, func(t *testing.T, m container.Dictionary[string, int]) {
		numKeys := 5
		for i := 0; i < numKeys; i++ {
			m.Set(strconv.Itoa(i), i)
		}
		require.Equal(t, numKeys, m.Len())

		m.Reset()

		require.Zero(t, m.Len())
		for i := 0; i < numKeys; i++ {
			require.False(t, m.IsSet(strconv.Itoa(i)))
			v, err := m.Get(strconv.Itoa(i))
			require.Zero(t, v)
			require.Error(t, err)
		}

		// Reusable after reset
		m.Set("a", 1)
		HasVal(t, m, "a", 1)
		require.Equal(t, 1, m.Len())
	})
}

func TestSet(t *testing.T) {
	forEachImplT(t, func(t *testing.T, m container.Dictionary[string, int]) {
		m.Set("a", -1)
		m.Set("b", 0)
		m.Set("c", 1)
		Expect(t, m, map[string]int{
			"a": -1,
			"b": 0,
			"c": 1,
		})
		m.Set("a", 2)
		m.Set("b", 3)
		m.Set("c", 4)
		Expect(t, m, map[string]int{
			"a": 2,
			"b": 3,
			"c": 4,
		})
	})
}

func TestGet(t *testing.T) {
	forEachImplT(t, func(t *testing.T, m container.Dictionary[string, int]) {
		m.Set("a", 2)
		m.Set("b", 3)

		HasVal(t, m, "b", 3)

		v, err := m.Get("nonexistent")
		require.Zero(t, v)
		require.True(t, errors.Is(err, container.ErrNotFound))
		var nf *container.NotFoundError[string]
		require.ErrorAs(t, err, &nf)
		require.Equal(t, "nonexistent", nf.GetKey())
		require.Equal(t, "key not found: nonexistent", err.Error())
	})
}

func TestIsSet(t *testing.T) {
	forEachImplT(t, func(t *testing.T, m container.Dictionary[string, int]) {
		require.False(t, m.IsSet(""))
		m.Set("", 0)
		require.True(t, m.IsSet(""))
		require.False(t, m.IsSet("x"))
	})
}

func TestLen(t *testing.T) {
	forEachImplT(t, func(t *testing.T, m container.Dictionary[string, int]) {
		dataSet := make([]string, 512)
		for i := range dataSet {
			dataSet[i] = strconv.Itoa(i)
		}
		for i, d := range dataSet {
			m.Set(d, i)
		}
		require.Equal(t, len(dataSet), m.Len())

		// Updates don't change the number of distinct keys.
		for i, d := range dataSet {
			m.Set(d, -i)
		}
		require.Equal(t, len(dataSet), m.Len())
	})
}

func TestShuffled(t *testing.T) {
	forEachImplT(t, func(t *testing.T, m container.Dictionary[string, int]) {
		const n = 5000
		r := rand.New(rand.NewSource(n))
		for _, i := range r.Perm(n) {
			m.Set(strconv.Itoa(i), i)
		}
		for _, i := range r.Perm(n) {
			HasVal(t, m, strconv.Itoa(i), i)
		}
		require.Equal(t, n, m.Len())
	})
}

func TestMembershipRandom(t *testing.T) {
	forEachImplT(t, func(t *testing.T, m container.Dictionary[string, int]) {
		r := rand.New(rand.NewSource(1))
		reference := map[string]int{}
		for i := 0; i < 2000; i++ {
			k := fmt.Sprintf("k%d", r.Intn(700))
			reference[k] = i
			m.Set(k, i)
		}
		Expect(t, m, reference)
		for i := 700; i < 800; i++ {
			require.False(t, m.IsSet(fmt.Sprintf("k%d", i)))
		}
	})
}

func Expect[K comparable, V any](
	t *testing.T,
	m container.Dictionary[K, V],
	expect map[K]V,
) {
	t.Helper()
	require.Equal(t, len(expect), m.Len())
	for k, ev := range expect {
		HasVal(t, m, k, ev)
	}
}

func HasVal[K comparable, V any](
	t *testing.T,
	m container.Dictionary[K, V],
	key K,
	expectedValue V,
) {
	t.Helper()
	v, err := m.Get(key)
	require.NoError(t, err)
	require.Equal(t, expectedValue, v)
	require.True(t, m.IsSet(key))
}
