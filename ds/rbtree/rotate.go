package rbtree

// rotate turns the subtree rooted at root towards the given side: root moves down to become the s-child of its
// opposite child, which takes its place. It is the only operation that changes the shape of the Tree.
func (t *Tree[K]) rotate(root *node[K], s side) {
	t.rotating(root)

	pivot := root.child(s.flip())
	pivotChild := pivot.child(s)

	t.replaceChild(root, pivot)
	pivot.link(s, root)
	root.link(s.flip(), pivotChild)
}

// replaceChild puts newChild (which may be nil) at the position of oldChild. newChild is unlinked from its previous
// parent and oldChild is left without a parent.
func (t *Tree[K]) replaceChild(oldChild, newChild *node[K]) {
	if newChild != nil && newChild.parent != nil {
		newChild.parent.setChild(newChild.side(), nil)
	}

	parent := oldChild.parent
	if parent == nil {
		t.root = newChild
	} else {
		parent.setChild(oldChild.side(), newChild)
	}

	oldChild.parent = nil
	if newChild != nil {
		newChild.parent = parent
	}
}

// assignColor is the only place where the color of a node is changed.
func (t *Tree[K]) assignColor(n *node[K], color Color) {
	t.colorChanging(n, color)

	n.color = color
}
