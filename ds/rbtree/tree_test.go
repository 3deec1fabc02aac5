package rbtree_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/rbviz/ds/rbtree"
	"github.com/iotaledger/rbviz/lo"
)

// shape returns a parenthesized pre-order representation of the subtree including the colors.
func shape[K any](node rbtree.Node[K]) string {
	if !node.Exists() {
		return "-"
	}

	color := lo.Cond(node.IsRed(), "R", "B")
	if !node.Left().Exists() && !node.Right().Exists() {
		return fmt.Sprintf("%v%s", node.Key(), color)
	}

	return fmt.Sprintf("%v%s(%s,%s)", node.Key(), color, shape(node.Left()), shape(node.Right()))
}

func newTreeWith(t *testing.T, keys ...int) *rbtree.Tree[int] {
	tree := rbtree.NewOrdered[int]()
	for _, key := range keys {
		require.True(t, tree.Insert(key))
		require.NoError(t, tree.Validate())
	}

	return tree
}

func TestTree_InsertRotatesLeft(t *testing.T) {
	tree := newTreeWith(t, 10, 20, 30)

	root := tree.Root()
	require.Equal(t, 20, root.Key())
	require.Equal(t, rbtree.Black, root.Color())
	require.Equal(t, 10, root.Left().Key())
	require.Equal(t, rbtree.Red, root.Left().Color())
	require.Equal(t, 30, root.Right().Key())
	require.Equal(t, rbtree.Red, root.Right().Color())
	require.Equal(t, root, root.Left().Parent())
	require.Equal(t, root, root.Right().Parent())

	require.True(t, tree.Delete(10))
	require.NoError(t, tree.Validate())

	require.Equal(t, "20B(-,30R)", shape(tree.Root()))
	require.False(t, tree.Root().Left().Exists())
	require.Equal(t, 2, tree.Size())
}

func TestTree_InsertZigZag(t *testing.T) {
	tree := newTreeWith(t, 30, 10, 20)

	require.Equal(t, "20B(10R,30R)", shape(tree.Root()))
}

func TestTree_InsertRecolorAndClimb(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 3, 4)

	require.Equal(t, "2B(1B,3B(-,4R))", shape(tree.Root()))
}

func TestTree_DeleteInternalNode(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 3, 4, 5, 6, 7)
	require.Equal(t, "2B(1B,4R(3B,6B(5R,7R)))", shape(tree.Root()))

	require.True(t, tree.Delete(4))
	require.NoError(t, tree.Validate())

	require.Equal(t, 5, tree.Root().Right().Key())
	require.Equal(t, "2B(1B,5R(3B,6B(-,7R)))", shape(tree.Root()))
	require.False(t, tree.Contains(4))
	require.Equal(t, []int{1, 2, 3, 5, 6, 7}, tree.Keys())
}

func TestTree_DeleteLastNode(t *testing.T) {
	tree := newTreeWith(t, 42)

	require.True(t, tree.Delete(42))
	require.NoError(t, tree.Validate())

	require.False(t, tree.Root().Exists())
	require.True(t, tree.IsEmpty())
	require.Equal(t, 0, tree.Size())
	require.False(t, tree.Contains(42))
	require.False(t, tree.Delete(42))
}

func TestTree_DeleteBlackLeaf(t *testing.T) {
	// 2B(1B,4R(3B,6B(5R,7R))) - removing 1 requires the double black fixup
	tree := newTreeWith(t, 1, 2, 3, 4, 5, 6, 7)

	require.True(t, tree.Delete(1))
	require.NoError(t, tree.Validate())
	require.Equal(t, []int{2, 3, 4, 5, 6, 7}, tree.Keys())

	for _, key := range []int{3, 2, 7, 5, 4, 6} {
		require.True(t, tree.Delete(key), "delete %d", key)
		require.NoError(t, tree.Validate(), "delete %d", key)
	}

	require.True(t, tree.IsEmpty())
}

func TestTree_DuplicateInsert(t *testing.T) {
	tree := rbtree.NewOrdered[int]()

	require.True(t, tree.Insert(5))
	before := shape(tree.Root())

	require.False(t, tree.Insert(5))
	require.Equal(t, 1, tree.Size())
	require.Equal(t, before, shape(tree.Root()))
}

func TestTree_DeleteMissing(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 3)
	before := shape(tree.Root())

	require.False(t, tree.Delete(4))
	require.Equal(t, 3, tree.Size())
	require.Equal(t, before, shape(tree.Root()))

	require.False(t, rbtree.NewOrdered[int]().Delete(1))
}

func TestTree_RandomOperations(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	tree := rbtree.NewOrdered[int]()
	expected := make(map[int]struct{})

	successfulInserts, successfulDeletes := 0, 0
	for i := 0; i < 5000; i++ {
		key := random.Intn(500)

		if random.Intn(3) == 0 {
			_, exists := expected[key]
			require.Equal(t, exists, tree.Delete(key))
			if exists {
				successfulDeletes++
			}
			delete(expected, key)
		} else {
			_, exists := expected[key]
			require.Equal(t, !exists, tree.Insert(key))
			if !exists {
				successfulInserts++
			}
			expected[key] = struct{}{}
		}

		require.NoError(t, tree.Validate())
		require.Equal(t, successfulInserts-successfulDeletes, tree.Size())
	}

	for key := 0; key < 500; key++ {
		_, exists := expected[key]
		require.Equal(t, exists, tree.Contains(key), "key %d", key)
	}
}

func TestTree_CustomComparator(t *testing.T) {
	tree := rbtree.New(lo.ReverseComparator(lo.Comparator[int]))
	for i := 1; i <= 10; i++ {
		require.True(t, tree.Insert(i))
	}

	require.NoError(t, tree.Validate())
	require.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, tree.Keys())

	minKey, exists := tree.Min()
	require.True(t, exists)
	require.Equal(t, 10, minKey)
}

func TestTree_StructKeys(t *testing.T) {
	type version struct {
		major, minor int
	}

	tree := rbtree.New(func(a, b version) int {
		if a.major != b.major {
			return lo.Comparator(a.major, b.major)
		}

		return lo.Comparator(a.minor, b.minor)
	})

	require.True(t, tree.Insert(version{1, 2}))
	require.True(t, tree.Insert(version{1, 0}))
	require.True(t, tree.Insert(version{0, 9}))
	require.False(t, tree.Insert(version{1, 0}))

	require.Equal(t, []version{{0, 9}, {1, 0}, {1, 2}}, tree.Keys())
}

func TestTree_StringKeys(t *testing.T) {
	tree := rbtree.NewOrdered[string]()
	for _, word := range strings.Fields("the quick brown fox jumps over the lazy dog") {
		tree.Insert(word)
	}

	require.NoError(t, tree.Validate())
	require.Equal(t, []string{"brown", "dog", "fox", "jumps", "lazy", "over", "quick", "the"}, tree.Keys())
}

func TestTree_NilComparator(t *testing.T) {
	require.Panics(t, func() {
		rbtree.New[int](nil)
	})
}

func TestTree_Clone(t *testing.T) {
	tree := newTreeWith(t, 1, 2, 3, 4, 5, 6, 7)
	clone := tree.Clone()
	expectedShape := shape(tree.Root())

	require.Equal(t, expectedShape, shape(clone.Root()))
	require.Equal(t, tree.Size(), clone.Size())
	require.NoError(t, clone.Validate())
	require.False(t, tree.Root() == clone.Root(), "the clone must not share nodes")

	require.True(t, tree.Delete(4))
	require.True(t, tree.Delete(2))
	require.True(t, tree.Insert(8))

	require.Equal(t, expectedShape, shape(clone.Root()))
	require.Equal(t, 7, clone.Size())
	require.True(t, clone.Contains(4))

	// the clone is a fully functional tree on its own
	require.True(t, clone.Delete(1))
	require.NoError(t, clone.Validate())
	require.True(t, tree.Contains(1))
}

func TestTree_CloneEmpty(t *testing.T) {
	clone := rbtree.NewOrdered[int]().Clone()

	require.True(t, clone.IsEmpty())
	require.True(t, clone.Insert(1))
	require.NoError(t, clone.Validate())
}

func TestTree_Navigation(t *testing.T) {
	tree := newTreeWith(t, 50, 30, 70, 20, 40, 60, 80, 35)

	successor, exists := tree.Successor(30)
	require.True(t, exists)
	require.Equal(t, 35, successor)

	successor, exists = tree.Successor(40)
	require.True(t, exists)
	require.Equal(t, 50, successor)

	_, exists = tree.Successor(80)
	require.False(t, exists)

	_, exists = tree.Successor(45)
	require.False(t, exists)

	predecessor, exists := tree.Predecessor(50)
	require.True(t, exists)
	require.Equal(t, 40, predecessor)

	predecessor, exists = tree.Predecessor(60)
	require.True(t, exists)
	require.Equal(t, 50, predecessor)

	_, exists = tree.Predecessor(20)
	require.False(t, exists)

	minKey, exists := tree.Min()
	require.True(t, exists)
	require.Equal(t, 20, minKey)

	maxKey, exists := tree.Max()
	require.True(t, exists)
	require.Equal(t, 80, maxKey)

	_, exists = rbtree.NewOrdered[int]().Min()
	require.False(t, exists)
	_, exists = rbtree.NewOrdered[int]().Max()
	require.False(t, exists)
}

func TestTree_ForEach(t *testing.T) {
	tree := newTreeWith(t, 5, 3, 8, 1, 4)

	visited := make([]int, 0)
	tree.ForEach(func(node rbtree.Node[int]) bool {
		visited = append(visited, node.Key())

		return node.Key() < 4
	})

	require.Equal(t, []int{1, 3, 4}, visited)
	require.Empty(t, rbtree.NewOrdered[int]().Keys())
}

func TestNode_ZeroValue(t *testing.T) {
	var node rbtree.Node[int]

	require.False(t, node.Exists())
	require.Equal(t, 0, node.Key())
	require.Equal(t, rbtree.Black, node.Color())
	require.True(t, node.IsBlack())
	require.False(t, node.IsRed())
	require.False(t, node.Left().Exists())
	require.False(t, node.Right().Exists())
	require.False(t, node.Parent().Exists())
	require.Equal(t, "Node(nil)", node.String())
}

func TestNode_String(t *testing.T) {
	tree := newTreeWith(t, 1, 2)

	require.Equal(t, "Node(1, BLACK)", tree.Root().String())
	require.Equal(t, "Node(2, RED)", tree.Root().Right().String())
	require.Equal(t, "RED", rbtree.Red.String())
	require.Equal(t, "UNKNOWN", rbtree.Color(7).String())
}
