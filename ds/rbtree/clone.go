package rbtree

import (
	"github.com/iotaledger/rbviz/ds/walker"
)

// clonePair associates a node of the source Tree with its copy.
type clonePair[K any] struct {
	source *node[K]
	target *node[K]
}

// Clone returns a deep copy of the Tree that shares no nodes with it. The copy keeps the comparator but has no
// observers. If it is called from within an Observer during a Delete, the markers of the copy point to the copies of
// the marked nodes, which allows to capture the intermediate states of the algorithm.
func (t *Tree[K]) Clone() *Tree[K] {
	clone := &Tree[K]{
		size:       t.size,
		comparator: t.comparator,
	}

	if t.root == nil {
		return clone
	}

	clone.root = t.root.copy()

	walker.New[clonePair[K]]().Push(clonePair[K]{source: t.root, target: clone.root}).Walk(func(pair clonePair[K]) []clonePair[K] {
		if pair.source == t.pendingDelete {
			clone.pendingDelete = pair.target
		}
		if pair.source == t.doubleBlack {
			clone.doubleBlack = pair.target
		}

		children := make([]clonePair[K], 0, 2)
		for _, s := range []side{leftSide, rightSide} {
			if sourceChild := pair.source.child(s); sourceChild != nil {
				targetChild := sourceChild.copy()
				pair.target.link(s, targetChild)

				children = append(children, clonePair[K]{source: sourceChild, target: targetChild})
			}
		}

		return children
	})

	return clone
}
