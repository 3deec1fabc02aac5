//go:build !rbtree_debug

package rbtree

// debugAssertions enables the runtime verification of the tree invariants (build tag "rbtree_debug").
const debugAssertions = false
