package rbtree

import (
	"github.com/iotaledger/rbviz/runtime/options"
)

// WithObserver registers observers that are notified about the steps of the Tree in the order of their registration.
func WithObserver[K any](observers ...Observer[K]) options.Option[Tree[K]] {
	return func(tree *Tree[K]) {
		for _, observer := range observers {
			if observer != nil {
				tree.observers = append(tree.observers, observer)
			}
		}
	}
}
