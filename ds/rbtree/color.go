package rbtree

// Color is the color of a Node in the Tree.
type Color uint8

const (
	// Red is the color of newly inserted nodes.
	Red Color = iota

	// Black is the color of the root and of all absent (nil) children.
	Black
)

// String returns a human-readable representation of the Color.
func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Black:
		return "BLACK"
	default:
		return "UNKNOWN"
	}
}
