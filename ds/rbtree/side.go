package rbtree

// side identifies one of the two children of a node.
type side uint8

const (
	leftSide side = iota
	rightSide
)

// flip returns the opposite side.
func (s side) flip() side {
	if s == leftSide {
		return rightSide
	}

	return leftSide
}

// sideOf returns the side a key descends to according to the result of comparing it with the key of a node.
func sideOf(comparison int) side {
	if comparison < 0 {
		return leftSide
	}

	return rightSide
}
