package rbtree

// fixRedRed restores the red-black properties after n has been inserted as a red leaf. In every iteration n is the red
// node that might violate the "no red child of a red node" rule.
func (t *Tree[K]) fixRedRed(n *node[K]) {
	for {
		t.nodeObserved(n)

		parent := n.parent
		if parent == nil {
			t.assignColor(n, Black)
			t.stepCompleted()

			return
		}

		t.nodeObserved(parent)
		if parent.color == Black {
			return
		}

		// the parent is red, so it can not be the root and the grandparent is black
		grandParent := parent.parent
		uncle := parent.sibling()
		if !uncle.isRed() {
			t.fixRedRedByRotation(n)

			return
		}

		t.nodeObserved(uncle)
		t.nodeObserved(grandParent)

		t.assignColor(parent, Black)
		t.assignColor(uncle, Black)
		t.assignColor(grandParent, Red)
		t.stepCompleted()

		n = grandParent
	}
}

// fixRedRedByRotation resolves a red-red violation below a black uncle with one or two rotations.
func (t *Tree[K]) fixRedRedByRotation(n *node[K]) {
	parent := n.parent
	grandParent := parent.parent
	parentSide := parent.side()

	if n.side() != parentSide {
		t.rotate(parent, parentSide)
		parent, n = n, parent
		t.stepCompleted()
	}

	t.rotate(grandParent, parentSide.flip())
	t.assignColor(grandParent, Red)
	t.assignColor(parent, Black)
	t.assignColor(n, Red)
	t.stepCompleted()
}
