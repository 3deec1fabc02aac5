package rbtree

// Observer is notified synchronously about every step the Tree takes while searching and rebalancing. Observers must
// not modify the Tree they observe.
type Observer[K any] interface {
	// NodeObserved is called whenever a node is read during search, traversal or fixups.
	NodeObserved(node Node[K])

	// ComparatorInvoked is called with the compared keys whenever the comparator is evaluated.
	ComparatorInvoked(a, b K)

	// Rotating is called with the root of a rotation right before the rotation is applied.
	Rotating(root Node[K])

	// ColorChanging is called right before the color of a node is overwritten.
	ColorChanging(node Node[K], color Color)

	// StepCompleted is called after every atomic step of an insertion or deletion.
	StepCompleted()

	// Inserted is called once per successful Insert after all fixups are done.
	Inserted(node Node[K])

	// Deleted is called once per successful Delete with the detached node that carries the deleted key.
	Deleted(node Node[K])
}

// region NoopObserver /////////////////////////////////////////////////////////////////////////////////////////////////

// NoopObserver implements all methods of the Observer interface as no-ops. It can be embedded to only implement the
// callbacks that are of interest.
type NoopObserver[K any] struct{}

func (NoopObserver[K]) NodeObserved(Node[K]) {}

func (NoopObserver[K]) ComparatorInvoked(_, _ K) {}

func (NoopObserver[K]) Rotating(Node[K]) {}

func (NoopObserver[K]) ColorChanging(Node[K], Color) {}

func (NoopObserver[K]) StepCompleted() {}

func (NoopObserver[K]) Inserted(Node[K]) {}

func (NoopObserver[K]) Deleted(Node[K]) {}

var _ Observer[int] = NoopObserver[int]{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ObserverFuncs ////////////////////////////////////////////////////////////////////////////////////////////////

// ObserverFuncs is an Observer that forwards the events to the configured functions. Every function is optional.
type ObserverFuncs[K any] struct {
	OnNodeObserved      func(node Node[K])
	OnComparatorInvoked func(a, b K)
	OnRotating          func(root Node[K])
	OnColorChanging     func(node Node[K], color Color)
	OnStepCompleted     func()
	OnInserted          func(node Node[K])
	OnDeleted           func(node Node[K])
}

func (o *ObserverFuncs[K]) NodeObserved(node Node[K]) {
	if o.OnNodeObserved != nil {
		o.OnNodeObserved(node)
	}
}

func (o *ObserverFuncs[K]) ComparatorInvoked(a, b K) {
	if o.OnComparatorInvoked != nil {
		o.OnComparatorInvoked(a, b)
	}
}

func (o *ObserverFuncs[K]) Rotating(root Node[K]) {
	if o.OnRotating != nil {
		o.OnRotating(root)
	}
}

func (o *ObserverFuncs[K]) ColorChanging(node Node[K], color Color) {
	if o.OnColorChanging != nil {
		o.OnColorChanging(node, color)
	}
}

func (o *ObserverFuncs[K]) StepCompleted() {
	if o.OnStepCompleted != nil {
		o.OnStepCompleted()
	}
}

func (o *ObserverFuncs[K]) Inserted(node Node[K]) {
	if o.OnInserted != nil {
		o.OnInserted(node)
	}
}

func (o *ObserverFuncs[K]) Deleted(node Node[K]) {
	if o.OnDeleted != nil {
		o.OnDeleted(node)
	}
}

var _ Observer[int] = &ObserverFuncs[int]{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region notifications ////////////////////////////////////////////////////////////////////////////////////////////////

func (t *Tree[K]) nodeObserved(n *node[K]) {
	for _, observer := range t.observers {
		observer.NodeObserved(n.view())
	}
}

func (t *Tree[K]) comparatorInvoked(a, b K) {
	for _, observer := range t.observers {
		observer.ComparatorInvoked(a, b)
	}
}

func (t *Tree[K]) rotating(root *node[K]) {
	for _, observer := range t.observers {
		observer.Rotating(root.view())
	}
}

func (t *Tree[K]) colorChanging(n *node[K], color Color) {
	for _, observer := range t.observers {
		observer.ColorChanging(n.view(), color)
	}
}

func (t *Tree[K]) stepCompleted() {
	for _, observer := range t.observers {
		observer.StepCompleted()
	}
}

func (t *Tree[K]) inserted(n *node[K]) {
	for _, observer := range t.observers {
		observer.Inserted(n.view())
	}
}

func (t *Tree[K]) deleted(n *node[K]) {
	for _, observer := range t.observers {
		observer.Deleted(n.view())
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
