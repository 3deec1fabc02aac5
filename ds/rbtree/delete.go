package rbtree

// deleteNode removes the target from the Tree and returns the node that was physically detached. Nodes with two
// children hand their deletion down to their successor by swapping keys, so the detached node always carries the key
// that was deleted.
func (t *Tree[K]) deleteNode(target *node[K]) (detached *node[K]) {
	defer t.resetMarkers()

	t.pendingDelete = target
	for {
		n := t.pendingDelete

		switch n.childCount() {
		case 2:
			next := t.successor(n)
			n.key, next.key = next.key, n.key
			t.pendingDelete = next
			t.stepCompleted()

		case 1:
			// a node with a single child is black and its child is red
			child := n.onlyChild()
			t.assertSingleChild(n, child)

			t.replaceChild(n, child)
			t.assignColor(child, Black)
			t.pendingDelete = nil
			t.stepCompleted()

			return n

		default:
			if n.parent != nil && n.color == Black {
				t.doubleBlack = n
				t.stepCompleted()

				t.fixDoubleBlack()
			}

			t.replaceChild(n, nil)
			t.pendingDelete = nil
			t.stepCompleted()

			return n
		}
	}
}

// fixDoubleBlack resolves the black deficiency of the doubly-black node by rotating and recoloring around it, pushing
// the deficiency towards the root where it can be absorbed.
func (t *Tree[K]) fixDoubleBlack() {
	for t.doubleBlack != nil {
		n := t.doubleBlack

		parent := n.parent
		if parent == nil {
			t.doubleBlack = nil
			t.stepCompleted()

			return
		}

		s := n.side()
		sibling := parent.child(s.flip())

		if sibling.color == Red {
			// reshape so that the doubly-black node gets a black sibling
			t.rotate(parent, s)
			t.assignColor(parent, Red)
			t.assignColor(sibling, Black)
			t.stepCompleted()

			continue
		}

		parentColor := parent.color
		outerNephew := sibling.child(s.flip())
		innerNephew := sibling.child(s)

		switch {
		case outerNephew.isRed():
			t.rotate(parent, s)
			t.assignColor(parent, Black)
			t.assignColor(sibling, parentColor)
			t.assignColor(outerNephew, Black)
			t.doubleBlack = nil
			t.stepCompleted()

		case innerNephew.isRed():
			t.rotate(sibling, s.flip())
			t.stepCompleted()

			t.rotate(parent, s)
			t.assignColor(parent, Black)
			t.assignColor(innerNephew, parentColor)
			t.assignColor(sibling, Black)
			t.doubleBlack = nil
			t.stepCompleted()

		default:
			t.assignColor(sibling, Red)
			if parentColor == Red {
				t.assignColor(parent, Black)
				t.doubleBlack = nil
			} else {
				t.doubleBlack = parent
			}
			t.stepCompleted()
		}
	}
}
