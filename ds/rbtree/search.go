package rbtree

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// findInsertPosition descends from the root towards the key. It returns the node holding the key (with a comparison
// result of 0) or the node that would become the parent of the key together with the result of comparing the key to
// it. An empty Tree yields a nil position.
func (t *Tree[K]) findInsertPosition(key K) (position *node[K], comparison int) {
	for current := t.root; current != nil; current = current.child(sideOf(comparison)) {
		t.nodeObserved(current)

		if position, comparison = current, t.compare(key, current.key); comparison == 0 {
			break
		}
	}

	return position, comparison
}

// find returns the node that holds the key or nil.
func (t *Tree[K]) find(key K) *node[K] {
	if position, comparison := t.findInsertPosition(key); position != nil && comparison == 0 {
		return position
	}

	return nil
}

// neighbor returns the in-order successor (s == rightSide) or predecessor (s == leftSide) of the node.
func (t *Tree[K]) neighbor(n *node[K], s side) *node[K] {
	t.nodeObserved(n)

	if next := n.child(s); next != nil {
		for t.nodeObserved(next); next.child(s.flip()) != nil; t.nodeObserved(next) {
			next = next.child(s.flip())
		}

		return next
	}

	for n.parent != nil && n.parent.child(s) == n {
		n = n.parent
		t.nodeObserved(n)
	}

	if n.parent != nil {
		t.nodeObserved(n.parent)
	}

	return n.parent
}

// successor returns the node with the next larger key (or nil).
func (t *Tree[K]) successor(n *node[K]) *node[K] {
	return t.neighbor(n, rightSide)
}

// predecessor returns the node with the next smaller key (or nil).
func (t *Tree[K]) predecessor(n *node[K]) *node[K] {
	return t.neighbor(n, leftSide)
}

// Successor returns the smallest key that is larger than the given key. The key itself must be part of the Tree,
// otherwise false is returned.
func (t *Tree[K]) Successor(key K) (successor K, exists bool) {
	return t.neighborKey(key, t.successor)
}

// Predecessor returns the largest key that is smaller than the given key. The key itself must be part of the Tree,
// otherwise false is returned.
func (t *Tree[K]) Predecessor(key K) (predecessor K, exists bool) {
	return t.neighborKey(key, t.predecessor)
}

func (t *Tree[K]) neighborKey(key K, neighbor func(*node[K]) *node[K]) (neighborKey K, exists bool) {
	n := t.find(key)
	if n == nil {
		return neighborKey, false
	}

	if next := neighbor(n); next != nil {
		return next.key, true
	}

	return neighborKey, false
}

// Min returns the smallest key of the Tree.
func (t *Tree[K]) Min() (key K, exists bool) {
	return t.outermost(leftSide)
}

// Max returns the largest key of the Tree.
func (t *Tree[K]) Max() (key K, exists bool) {
	return t.outermost(rightSide)
}

func (t *Tree[K]) outermost(s side) (key K, exists bool) {
	if t.root == nil {
		return key, false
	}

	current := t.root
	for current.child(s) != nil {
		current = current.child(s)
	}

	return current.key, true
}

// ForEach iterates over the nodes in ascending key order until the consumer returns false. It does not notify the
// observers.
func (t *Tree[K]) ForEach(consumer func(node Node[K]) bool) {
	stack := arraystack.New()

	for current := t.root; current != nil || !stack.Empty(); {
		for ; current != nil; current = current.left {
			stack.Push(current)
		}

		top, _ := stack.Pop()
		//nolint:forcetypeassert // only nodes are pushed to the stack
		visited := top.(*node[K])
		if !consumer(visited.view()) {
			return
		}

		current = visited.right
	}
}

// Keys returns all keys of the Tree in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.ForEach(func(node Node[K]) bool {
		keys = append(keys, node.Key())

		return true
	})

	return keys
}
