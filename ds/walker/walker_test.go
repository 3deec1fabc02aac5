package walker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/rbviz/ds/walker"
)

func TestWalker(t *testing.T) {
	w := walker.New[int]()

	// Test Push and Next
	w.Push(1)
	w.Push(2)
	w.Push(3)

	require.True(t, w.HasNext())
	require.Equal(t, 1, w.Next())
	require.Equal(t, 2, w.Next())
	require.Equal(t, 3, w.Next())
	require.False(t, w.HasNext())

	// Test PushAll
	w.PushAll(4, 5, 6)

	require.True(t, w.HasNext())
	require.Equal(t, 4, w.Next())
	require.Equal(t, 5, w.Next())
	require.Equal(t, 6, w.Next())
	require.False(t, w.HasNext())

	// elements are only visited once by default
	w.Push(1)
	require.False(t, w.HasNext())

	// stopping discards the remaining elements
	w.Push(9)
	w.StopWalk()

	require.False(t, w.HasNext())
}

func TestWalker_Revisit(t *testing.T) {
	w := walker.New[string](true)

	w.Push("a")
	w.Push("a")

	require.Equal(t, "a", w.Next())
	require.Equal(t, "a", w.Next())
	require.False(t, w.HasNext())
}

func TestWalker_Walk(t *testing.T) {
	// a complete binary tree encoded as heap indices
	children := func(i int) []int {
		next := make([]int, 0, 2)
		for _, child := range []int{2*i + 1, 2*i + 2} {
			if child < 7 {
				next = append(next, child)
			}
		}

		return next
	}

	visited := make([]int, 0)
	walker.New[int]().Push(0).Walk(func(element int) []int {
		visited = append(visited, element)

		return children(element)
	})

	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, visited)
}

func TestWalker_WalkStop(t *testing.T) {
	w := walker.New[int]().PushAll(1, 2, 3, 4)

	visited := make([]int, 0)
	w.Walk(func(element int) []int {
		visited = append(visited, element)
		if element == 2 {
			w.StopWalk()
		}

		return nil
	})

	require.Equal(t, []int{1, 2}, visited)
}
