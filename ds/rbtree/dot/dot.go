// Package dot renders the state of an rbtree.Tree as a Graphviz digraph and records the renderings of every step of
// an operation.
package dot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iotaledger/rbviz/ds/rbtree"
	"github.com/iotaledger/rbviz/ds/walker"
	"github.com/iotaledger/rbviz/runtime/options"
)

const (
	// header opens the digraph and sets up the layout shared by all nodes.
	header = `digraph{size="10,0";shape=circle;node[width=0.6,height=0.6];`

	// footer closes the digraph.
	footer = `}`

	fillDoubleBlack = "black"
	fillRed         = "red"
	fillBlack       = "gray"
)

// Renderer turns trees into DOT documents.
type Renderer[K any] struct {
	// formatKey turns a key into the text that is used as node id and label.
	formatKey func(key K) string
}

// NewRenderer creates a new Renderer.
func NewRenderer[K any](opts ...options.Option[Renderer[K]]) *Renderer[K] {
	return options.Apply(&Renderer[K]{
		formatKey: func(key K) string {
			return fmt.Sprint(key)
		},
	}, opts)
}

// Render returns the DOT document of the given tree. Nodes are emitted in breadth-first order, the node that is
// pending deletion has an empty label and the doubly-black node is filled black while red nodes are filled red and
// black nodes gray.
func (r *Renderer[K]) Render(tree *rbtree.Tree[K]) string {
	var builder strings.Builder
	builder.WriteString(header)

	root := tree.Root()
	if !root.Exists() {
		builder.WriteString(footer)

		return builder.String()
	}

	r.writeNode(&builder, tree, root)
	walker.New[rbtree.Node[K]]().Push(root).Walk(func(parent rbtree.Node[K]) (children []rbtree.Node[K]) {
		for _, child := range []rbtree.Node[K]{parent.Left(), parent.Right()} {
			if !child.Exists() {
				continue
			}

			r.writeNode(&builder, tree, child)
			r.writeEdge(&builder, parent, child)

			children = append(children, child)
		}

		return children
	})

	builder.WriteString(footer)

	return builder.String()
}

func (r *Renderer[K]) writeNode(builder *strings.Builder, tree *rbtree.Tree[K], node rbtree.Node[K]) {
	label := r.formatKey(node.Key())
	if node == tree.PendingDelete() {
		label = ""
	}

	fmt.Fprintf(builder, "%s[label=%s,color=black,style=filled,fillcolor=%s];", r.id(node), strconv.Quote(label), fillColor(tree, node))
}

func (r *Renderer[K]) writeEdge(builder *strings.Builder, parent, child rbtree.Node[K]) {
	fmt.Fprintf(builder, "%s -> %s;", r.id(parent), r.id(child))
}

func (r *Renderer[K]) id(node rbtree.Node[K]) string {
	return strconv.Quote(r.formatKey(node.Key()))
}

func fillColor[K any](tree *rbtree.Tree[K], node rbtree.Node[K]) string {
	switch {
	case node == tree.DoubleBlack():
		return fillDoubleBlack
	case node.IsRed():
		return fillRed
	default:
		return fillBlack
	}
}

// WithKeyFormatter overrides how keys are turned into node ids and labels (fmt.Sprint by default).
func WithKeyFormatter[K any](formatKey func(key K) string) options.Option[Renderer[K]] {
	return func(r *Renderer[K]) {
		r.formatKey = formatKey
	}
}

// Render renders the tree with a default Renderer.
func Render[K any](tree *rbtree.Tree[K], opts ...options.Option[Renderer[K]]) string {
	return NewRenderer(opts...).Render(tree)
}
