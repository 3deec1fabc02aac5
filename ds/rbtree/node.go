package rbtree

import (
	"fmt"
)

// region node /////////////////////////////////////////////////////////////////////////////////////////////////////////

// node is the mutable representation of a key that is only ever modified by the Tree that owns it.
type node[K any] struct {
	key    K
	color  Color
	left   *node[K]
	right  *node[K]
	parent *node[K]
}

// newNode creates a detached red node.
func newNode[K any](key K) *node[K] {
	return &node[K]{
		key:   key,
		color: Red,
	}
}

func (n *node[K]) child(s side) *node[K] {
	if s == leftSide {
		return n.left
	}

	return n.right
}

func (n *node[K]) setChild(s side, child *node[K]) {
	if s == leftSide {
		n.left = child
	} else {
		n.right = child
	}
}

// link makes child the given child of n and updates the back reference of the child.
func (n *node[K]) link(s side, child *node[K]) {
	n.setChild(s, child)
	if child != nil {
		child.parent = n
	}
}

// side returns which child of its parent the node is. It must not be called on the root.
func (n *node[K]) side() side {
	if n.parent.left == n {
		return leftSide
	}

	return rightSide
}

// sibling returns the other child of the node's parent (nil for the root or a missing sibling).
func (n *node[K]) sibling() *node[K] {
	if n.parent == nil {
		return nil
	}

	return n.parent.child(n.side().flip())
}

func (n *node[K]) childCount() (count int) {
	if n.left != nil {
		count++
	}
	if n.right != nil {
		count++
	}

	return count
}

// onlyChild returns the child of a node that has exactly one child.
func (n *node[K]) onlyChild() *node[K] {
	if n.left != nil {
		return n.left
	}

	return n.right
}

// isRed is nil-safe: absent children count as black.
func (n *node[K]) isRed() bool {
	return n != nil && n.color == Red
}

// copy returns an unlinked copy of the node.
func (n *node[K]) copy() *node[K] {
	return &node[K]{
		key:   n.key,
		color: n.color,
	}
}

func (n *node[K]) view() Node[K] {
	return Node[K]{node: n}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Node /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Node is a read-only view of a node in a Tree. The zero value represents an absent node. Two views are equal if and
// only if they refer to the same node, which allows consumers to compare them with the markers of the Tree.
type Node[K any] struct {
	node *node[K]
}

// Exists returns true if the view refers to a node.
func (n Node[K]) Exists() bool {
	return n.node != nil
}

// Key returns the key of the node (or the zero value if the node does not exist).
func (n Node[K]) Key() (key K) {
	if n.node == nil {
		return key
	}

	return n.node.key
}

// Color returns the color of the node. Absent nodes are black.
func (n Node[K]) Color() Color {
	if n.node == nil {
		return Black
	}

	return n.node.color
}

// IsRed returns true if the node exists and is red.
func (n Node[K]) IsRed() bool {
	return n.node.isRed()
}

// IsBlack returns true if the node is black or absent.
func (n Node[K]) IsBlack() bool {
	return !n.node.isRed()
}

// Left returns the left child of the node.
func (n Node[K]) Left() Node[K] {
	if n.node == nil {
		return Node[K]{}
	}

	return n.node.left.view()
}

// Right returns the right child of the node.
func (n Node[K]) Right() Node[K] {
	if n.node == nil {
		return Node[K]{}
	}

	return n.node.right.view()
}

// Parent returns the parent of the node (an absent node for the root or for detached nodes).
func (n Node[K]) Parent() Node[K] {
	if n.node == nil {
		return Node[K]{}
	}

	return n.node.parent.view()
}

// String returns a human-readable representation of the node.
func (n Node[K]) String() string {
	if n.node == nil {
		return "Node(nil)"
	}

	return fmt.Sprintf("Node(%v, %s)", n.node.key, n.node.color)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
