package rbtree

import (
	"github.com/iotaledger/rbviz/ierrors"
)

// assertValid panics if the Tree violates one of its invariants. It is a no-op unless built with "rbtree_debug".
func (t *Tree[K]) assertValid() {
	if !debugAssertions {
		return
	}

	if err := t.Validate(); err != nil {
		panic(err)
	}
}

// assertSingleChild panics if a node with a single child is not a black node with a red child. It is a no-op unless
// built with "rbtree_debug".
func (t *Tree[K]) assertSingleChild(n, child *node[K]) {
	if !debugAssertions {
		return
	}

	if n.color != Black || child.color != Red {
		panic(ierrors.Errorf("rbtree: node %v with single child %v is %s/%s", n.key, child.key, n.color, child.color))
	}
}
