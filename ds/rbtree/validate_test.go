package rbtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validTree(t *testing.T) *Tree[int] {
	t.Helper()

	tree := NewOrdered[int]()
	for i := 1; i <= 7; i++ {
		require.True(t, tree.Insert(i))
	}
	require.NoError(t, tree.Validate())

	// 2B(1B,4R(3B,6B(5R,7R)))
	return tree
}

func TestValidate_Violations(t *testing.T) {
	testCases := map[string]struct {
		corrupt  func(tree *Tree[int])
		expected error
	}{
		"root is red": {
			corrupt: func(tree *Tree[int]) {
				tree.root.color = Red
			},
			expected: ErrRootNotBlack,
		},
		"red node with red child": {
			corrupt: func(tree *Tree[int]) {
				tree.root.right.right.color = Red
			},
			expected: ErrRedRedViolation,
		},
		"black heights differ": {
			corrupt: func(tree *Tree[int]) {
				tree.root.right.right.right.color = Black
			},
			expected: ErrBlackHeightMismatch,
		},
		"keys out of order": {
			corrupt: func(tree *Tree[int]) {
				tree.root.left.key = 3
			},
			expected: ErrOrderViolation,
		},
		"child with wrong parent": {
			corrupt: func(tree *Tree[int]) {
				tree.root.right.left.parent = tree.root
			},
			expected: ErrBrokenParentLink,
		},
		"root with parent": {
			corrupt: func(tree *Tree[int]) {
				tree.root.parent = tree.root.left
			},
			expected: ErrBrokenParentLink,
		},
		"child pointing back to the root": {
			corrupt: func(tree *Tree[int]) {
				tree.root.right.right.right.left = tree.root
			},
			expected: ErrBrokenParentLink,
		},
		"size too large": {
			corrupt: func(tree *Tree[int]) {
				tree.size++
			},
			expected: ErrSizeMismatch,
		},
		"empty tree with size": {
			corrupt: func(tree *Tree[int]) {
				tree.root = nil
			},
			expected: ErrSizeMismatch,
		},
		"pending delete set": {
			corrupt: func(tree *Tree[int]) {
				tree.pendingDelete = tree.root.left
			},
			expected: ErrMarkerNotCleared,
		},
		"double black set": {
			corrupt: func(tree *Tree[int]) {
				tree.doubleBlack = tree.root.left
			},
			expected: ErrMarkerNotCleared,
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			tree := validTree(t)
			testCase.corrupt(tree)

			require.ErrorIs(t, tree.Validate(), testCase.expected)
		})
	}
}

func TestRotate(t *testing.T) {
	tree := validTree(t)

	// rotating the root to the left lifts its right child
	tree.rotate(tree.root, leftSide)
	require.Equal(t, 4, tree.root.key)
	require.Nil(t, tree.root.parent)
	require.Equal(t, 2, tree.root.left.key)
	require.Equal(t, 3, tree.root.left.right.key)
	require.Equal(t, tree.root.left, tree.root.left.right.parent)

	tree.rotate(tree.root, rightSide)
	require.Equal(t, 2, tree.root.key)
	require.Equal(t, 4, tree.root.right.key)
	require.Equal(t, 3, tree.root.right.left.key)
	require.NoError(t, tree.Validate())
}

func TestReplaceChild(t *testing.T) {
	tree := validTree(t)

	four := tree.root.right
	six := four.right
	tree.replaceChild(four, six)

	require.Equal(t, six, tree.root.right)
	require.Equal(t, tree.root, six.parent)
	require.Nil(t, four.parent)
	require.Nil(t, four.right)
}

func TestSideOf(t *testing.T) {
	require.Equal(t, leftSide, sideOf(-1))
	require.Equal(t, rightSide, sideOf(1))
	require.Equal(t, rightSide, leftSide.flip())
	require.Equal(t, leftSide, rightSide.flip())
}
