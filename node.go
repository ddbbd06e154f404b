package trinet

// NodeKind discriminates the two node types of a net.
type NodeKind int

const (
	PlaceNode NodeKind = iota
	TransitionNode
)

func (k NodeKind) String() string {
	if k == PlaceNode {
		return "place"
	}
	return "transition"
}

// Node is a place or a transition.
type Node interface {
	Kind() NodeKind
	String() string
}
