package dot

import (
	"github.com/iotaledger/rbviz/ds/rbtree"
	"github.com/iotaledger/rbviz/runtime/options"
)

// Recorder is an rbtree.Observer that renders the observed tree after every completed step. The renderings are
// collected in a change log that can be drained after an operation.
//
// A Recorder is not safe for concurrent use. It shares the synchronization of the tree it observes.
type Recorder[K any] struct {
	rbtree.NoopObserver[K]

	renderer  *Renderer[K]
	tree      *rbtree.Tree[K]
	current   string
	changeLog []string
}

// NewRecorder creates a new Recorder. It has to be attached to the tree that it is registered with.
func NewRecorder[K any](opts ...options.Option[Renderer[K]]) *Recorder[K] {
	return &Recorder[K]{
		renderer: NewRenderer(opts...),
	}
}

// Attach sets the tree that is rendered on every step and renders its current state.
func (r *Recorder[K]) Attach(tree *rbtree.Tree[K]) *Recorder[K] {
	r.tree = tree
	r.current = r.renderer.Render(tree)

	return r
}

// StepCompleted appends the rendering of the current state to the change log.
func (r *Recorder[K]) StepCompleted() {
	if r.tree == nil {
		return
	}

	r.current = r.renderer.Render(r.tree)
	r.changeLog = append(r.changeLog, r.current)
}

// Current returns the rendering of the last completed step.
func (r *Recorder[K]) Current() string {
	return r.current
}

// Drain returns the renderings recorded since the last call and clears the change log.
func (r *Recorder[K]) Drain() (changeLog []string) {
	changeLog, r.changeLog = r.changeLog, nil

	return changeLog
}
