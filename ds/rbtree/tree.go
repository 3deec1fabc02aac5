// Package rbtree implements a red-black tree whose rebalancing algorithm can be followed step by step.
//
// Every comparison, node visit, rotation and recoloring is reported to the registered Observers, and the transient
// state of a deletion (the node pending deletion and the doubly-black node) is exposed through read-only views. This
// allows consumers to render or verify the tree in between the individual steps of an operation.
//
// A Tree is not safe for concurrent use and Observers must not modify the Tree they observe.
package rbtree

import (
	"github.com/iotaledger/rbviz/constraints"
	"github.com/iotaledger/rbviz/lo"
	"github.com/iotaledger/rbviz/runtime/options"
)

// Tree is a red-black tree of unique keys that are ordered by a comparator.
type Tree[K any] struct {
	// root is the root of the tree (nil if the tree is empty).
	root *node[K]

	// size is the number of keys in the tree.
	size int

	// comparator defines the total order of the keys.
	comparator func(a, b K) int

	// pendingDelete is the node that is currently being removed (only set during Delete).
	pendingDelete *node[K]

	// doubleBlack is the node that is currently short one black node (only set during Delete).
	doubleBlack *node[K]

	// observers are notified about the steps of all operations.
	observers []Observer[K]
}

// New creates a new Tree that orders its keys by the given comparator. The comparator must return a negative number
// if a < b, zero if a == b and a positive number if a > b, and it must define a total order.
func New[K any](comparator func(a, b K) int, opts ...options.Option[Tree[K]]) *Tree[K] {
	if comparator == nil {
		panic("rbtree: comparator must not be nil")
	}

	return options.Apply(&Tree[K]{
		comparator: comparator,
	}, opts)
}

// NewOrdered creates a new Tree for keys that have a natural order.
func NewOrdered[K constraints.Ordered](opts ...options.Option[Tree[K]]) *Tree[K] {
	return New(lo.Comparator[K], opts...)
}

// Insert adds the key to the Tree and returns true if the key was not present before. Inserting an existing key leaves
// the Tree untouched and returns false.
func (t *Tree[K]) Insert(key K) bool {
	parent, comparison := t.findInsertPosition(key)
	if parent != nil && comparison == 0 {
		return false
	}

	inserted := newNode(key)
	if parent == nil {
		t.root = inserted
	} else {
		parent.link(sideOf(comparison), inserted)
	}
	t.size++
	t.stepCompleted()

	t.fixRedRed(inserted)
	t.assertValid()

	t.inserted(inserted)

	return true
}

// Delete removes the key from the Tree and returns true if it was present.
func (t *Tree[K]) Delete(key K) bool {
	t.resetMarkers()

	target := t.find(key)
	if target == nil {
		return false
	}

	detached := t.deleteNode(target)
	t.size--
	t.assertValid()

	t.deleted(detached)

	return true
}

// Contains returns true if the key is part of the Tree. It never modifies the Tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.find(key) != nil
}

// Size returns the number of keys in the Tree.
func (t *Tree[K]) Size() int {
	return t.size
}

// IsEmpty returns true if the Tree contains no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == nil
}

// Comparator returns the function that defines the order of the keys.
func (t *Tree[K]) Comparator() func(a, b K) int {
	return t.comparator
}

// Root returns the root of the Tree (an absent Node if the Tree is empty).
func (t *Tree[K]) Root() Node[K] {
	return t.root.view()
}

// DoubleBlack returns the node that is currently doubly black. It only exists while a Delete is in progress.
func (t *Tree[K]) DoubleBlack() Node[K] {
	return t.doubleBlack.view()
}

// PendingDelete returns the node that is currently being deleted. It only exists while a Delete is in progress.
func (t *Tree[K]) PendingDelete() Node[K] {
	return t.pendingDelete.view()
}

// compare evaluates the comparator and notifies the observers.
func (t *Tree[K]) compare(a, b K) int {
	t.comparatorInvoked(a, b)

	return t.comparator(a, b)
}

func (t *Tree[K]) resetMarkers() {
	t.pendingDelete = nil
	t.doubleBlack = nil
}
