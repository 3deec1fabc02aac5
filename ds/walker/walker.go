package walker

import (
	"container/list"
)

// region Walker /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Walker implements a generic data structure that simplifies breadth-first walks over collections or data structures.
type Walker[T comparable] struct {
	queue           *list.List
	pushedElements  map[T]struct{}
	walkStopped     bool
	revisitElements bool
}

// New is the constructor of the Walker. It accepts an optional boolean flag that controls whether the Walker will visit
// the same Element multiple times.
func New[T comparable](revisitElements ...bool) *Walker[T] {
	return &Walker[T]{
		queue:           list.New(),
		pushedElements:  make(map[T]struct{}),
		revisitElements: len(revisitElements) > 0 && revisitElements[0],
	}
}

// HasNext returns true if the Walker has another element that shall be visited.
func (w *Walker[T]) HasNext() bool {
	return w.queue.Len() > 0 && !w.walkStopped
}

// Next returns the next element of the walk.
func (w *Walker[T]) Next() (nextElement T) {
	currentEntry := w.queue.Front()
	w.queue.Remove(currentEntry)

	//nolint:forcetypeassert // only elements of type T are ever pushed
	return currentEntry.Value.(T)
}

// Push adds a new element to the walk, which can consequently be retrieved by calling the Next method.
func (w *Walker[T]) Push(nextElement T) (walker *Walker[T]) {
	if !w.markPushed(nextElement) && !w.revisitElements {
		return w
	}

	w.queue.PushBack(nextElement)

	return w
}

// PushAll adds new elements to the walk, which can consequently be retrieved by calling the Next method.
func (w *Walker[T]) PushAll(nextElements ...T) (walker *Walker[T]) {
	for _, nextElement := range nextElements {
		w.Push(nextElement)
	}

	return w
}

// Walk consumes the walk by handing every element to the visitor. The elements returned by the visitor are queued
// behind the already pushed ones, which results in a breadth-first traversal.
func (w *Walker[T]) Walk(visitor func(element T) (nextElements []T)) {
	for w.HasNext() {
		w.PushAll(visitor(w.Next())...)
	}
}

// StopWalk aborts the walk and forces HasNext to always return false.
func (w *Walker[T]) StopWalk() {
	w.walkStopped = true
}

// markPushed records the element as pushed and returns false if it had been pushed before.
func (w *Walker[T]) markPushed(element T) bool {
	if _, exists := w.pushedElements[element]; exists {
		return false
	}

	w.pushedElements[element] = struct{}{}

	return true
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
