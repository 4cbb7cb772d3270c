package gcontainer_test

import (
	"testing"

	"github.com/gordian-engine/gtree/gcontainer"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	t.Parallel()

	var q gcontainer.Queue[int]
	require.True(t, q.Empty())

	_, err := q.Pop()
	require.ErrorIs(t, err, gcontainer.ErrUnderflow)
	_, err = q.Peek()
	require.ErrorIs(t, err, gcontainer.ErrUnderflow)

	q.Push(1)
	q.Push(2)
	q.Push(3)
	require.Equal(t, 3, q.Len())

	v, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	for _, want := range []int{1, 2, 3} {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	require.True(t, q.Empty())
}

func TestStack(t *testing.T) {
	t.Parallel()

	var s gcontainer.Stack[int]
	require.True(t, s.Empty())

	_, err := s.Pop()
	require.ErrorIs(t, err, gcontainer.ErrUnderflow)
	_, err = s.Peek()
	require.ErrorIs(t, err, gcontainer.ErrUnderflow)

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Len())

	v, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, 3, v)

	for _, want := range []int{3, 2, 1} {
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	require.True(t, s.Empty())
}
