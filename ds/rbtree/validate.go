package rbtree

import (
	"github.com/iotaledger/rbviz/ds/walker"
	"github.com/iotaledger/rbviz/ierrors"
)

var (
	// ErrRootNotBlack is returned if the root of a non-empty Tree is red.
	ErrRootNotBlack = ierrors.New("root is not black")

	// ErrRedRedViolation is returned if a red node has a red child.
	ErrRedRedViolation = ierrors.New("red node has a red child")

	// ErrBlackHeightMismatch is returned if two paths from a node to its leaves pass a different number of black nodes.
	ErrBlackHeightMismatch = ierrors.New("black height mismatch")

	// ErrOrderViolation is returned if the in-order sequence of keys is not strictly increasing.
	ErrOrderViolation = ierrors.New("keys are not strictly increasing")

	// ErrBrokenParentLink is returned if the parent reference of a node does not point to the node holding it.
	ErrBrokenParentLink = ierrors.New("broken parent link")

	// ErrSizeMismatch is returned if the size counter does not match the number of reachable nodes.
	ErrSizeMismatch = ierrors.New("size mismatch")

	// ErrMarkerNotCleared is returned if the pending-delete or doubly-black marker is set outside of a Delete.
	ErrMarkerNotCleared = ierrors.New("transient marker not cleared")
)

// Validate checks the red-black and binary-search-tree properties of the Tree and returns an error describing the
// first violation it finds. It uses the comparator directly and does not notify the observers.
func (t *Tree[K]) Validate() error {
	if t.pendingDelete != nil || t.doubleBlack != nil {
		return ErrMarkerNotCleared
	}

	if t.root == nil {
		if t.size != 0 {
			return ierrors.Wrapf(ErrSizeMismatch, "empty tree with size %d", t.size)
		}

		return nil
	}

	if t.root.parent != nil {
		return ierrors.Wrapf(ErrBrokenParentLink, "root %v has a parent", t.root.key)
	}

	if t.root.color != Black {
		return ierrors.Wrapf(ErrRootNotBlack, "root %v", t.root.key)
	}

	count, err := t.validateLinks()
	if err != nil {
		return err
	}

	if count != t.size {
		return ierrors.Wrapf(ErrSizeMismatch, "counted %d nodes, size is %d", count, t.size)
	}

	if _, err = t.validateBlackHeight(t.root); err != nil {
		return err
	}

	return t.validateOrder()
}

// validateLinks walks the Tree breadth-first, checks the parent references and the red-red property and returns the
// number of reachable nodes. The walk stops at the first violation.
func (t *Tree[K]) validateLinks() (count int, err error) {
	linkWalker := walker.New[*node[K]]().Push(t.root)
	linkWalker.Walk(func(n *node[K]) (children []*node[K]) {
		count++

		for _, s := range []side{leftSide, rightSide} {
			child := n.child(s)
			if child == nil {
				continue
			}

			if child.parent != n {
				err = ierrors.Wrapf(ErrBrokenParentLink, "child %v of %v", child.key, n.key)
			} else if n.isRed() && child.isRed() {
				err = ierrors.Wrapf(ErrRedRedViolation, "%v -> %v", n.key, child.key)
			}

			if err != nil {
				linkWalker.StopWalk()

				return nil
			}

			children = append(children, child)
		}

		return children
	})

	return count, err
}

// validateBlackHeight returns the black height of the subtree rooted at n.
func (t *Tree[K]) validateBlackHeight(n *node[K]) (blackHeight int, err error) {
	if n == nil {
		return 1, nil
	}

	blackHeights := [2]int{}
	for _, s := range []side{leftSide, rightSide} {
		if blackHeights[s], err = t.validateBlackHeight(n.child(s)); err != nil {
			return 0, err
		}
	}

	if blackHeights[leftSide] != blackHeights[rightSide] {
		return 0, ierrors.Wrapf(ErrBlackHeightMismatch, "at %v: left %d, right %d", n.key, blackHeights[leftSide], blackHeights[rightSide])
	}

	blackHeight = blackHeights[leftSide]
	if n.color == Black {
		blackHeight++
	}

	return blackHeight, nil
}

func (t *Tree[K]) validateOrder() (err error) {
	var previous Node[K]
	t.ForEach(func(current Node[K]) bool {
		if previous.Exists() && t.comparator(previous.Key(), current.Key()) >= 0 {
			err = ierrors.Wrapf(ErrOrderViolation, "%v is followed by %v", previous.Key(), current.Key())

			return false
		}
		previous = current

		return true
	})

	return err
}
