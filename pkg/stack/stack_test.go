package stack_test

import (
	"testing"

	"github.com/graph-guard/ggdict/pkg/stack"
	"github.com/stretchr/testify/require"
)

func TestPushLen(t *testing.T) {
	st := stack.New[int16](4)
	st.Push(0)
	st.Push(1)
	st.Push(-1)
	require.Equal(t, 3, st.Len())
}

func TestPop(t *testing.T) {
	st := stack.New[int64](4)
	st.Push(0)
	st.Push(1)
	st.Push(-1)
	require.Equal(t, int64(-1), st.Pop())
	st.Pop()
	require.Equal(t, int64(0), st.Pop())
	require.Zero(t, st.Pop())
	require.Zero(t, st.Len())
}

func TestPopReleasesPointer(t *testing.T) {
	st := stack.New[*int](1)
	v := 42
	st.Push(&v)
	require.Same(t, &v, st.Pop())
	require.Nil(t, st.Top())
}

func TestTop(t *testing.T) {
	st := stack.New[int](2)
	st.Push(0)
	st.Push(-1)
	require.Equal(t, -1, st.Top())
	st.Pop()
	require.Equal(t, 0, st.Top())
	st.Pop()
	require.Zero(t, st.Top())
}
