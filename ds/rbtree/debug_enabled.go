//go:build rbtree_debug

package rbtree

const debugAssertions = true
