package api

import (
	"github.com/iotaledger/rbviz/ds/rbtree"
	"github.com/iotaledger/rbviz/log"
)

// traceObserver logs every step of the tree at the TRACE level.
type traceObserver struct {
	log.Logger
}

func (t *traceObserver) NodeObserved(node rbtree.Node[int]) {
	t.LogTrace("node observed", "node", node)
}

func (t *traceObserver) ComparatorInvoked(a, b int) {
	t.LogTrace("comparator invoked", "a", a, "b", b)
}

func (t *traceObserver) Rotating(root rbtree.Node[int]) {
	t.LogTrace("rotating", "root", root)
}

func (t *traceObserver) ColorChanging(node rbtree.Node[int], color rbtree.Color) {
	t.LogTrace("color changing", "node", node, "color", color)
}

func (t *traceObserver) StepCompleted() {
	t.LogTrace("step completed")
}

func (t *traceObserver) Inserted(node rbtree.Node[int]) {
	t.LogDebug("inserted", "node", node)
}

func (t *traceObserver) Deleted(node rbtree.Node[int]) {
	t.LogDebug("deleted", "key", node.Key())
}
