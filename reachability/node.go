package reachability

import "github.com/trinets/trinet"

// Node is one distinct marking in a reachability graph. Exploration
// canonicalizes nodes per marking, so nodes wrapping equal markings are
// the same instance and cycles collapse onto it.
type Node struct {
	marking  *trinet.Marking
	outgoing []*Node
	incoming []*Node
	depth    int
	expanded bool
}

func newNode(m *trinet.Marking) *Node {
	return &Node{marking: m, depth: -1}
}

// Marking returns the state this node represents.
func (n *Node) Marking() *trinet.Marking { return n.marking }

// Outgoing returns the distinct nodes reachable from n by firing one
// transition. The returned slice must be treated as read-only.
func (n *Node) Outgoing() []*Node { return n.outgoing }

// Incoming returns the distinct nodes that reach n by firing one
// transition. The returned slice must be treated as read-only.
func (n *Node) Incoming() []*Node { return n.incoming }

// Depth is the breadth-first distance from the root node, -1 while
// undiscovered.
func (n *Node) Depth() int { return n.depth }

func (n *Node) String() string {
	return "{" + n.marking.String() + "}"
}

func (n *Node) addOutgoing(o *Node) {
	for _, existing := range n.outgoing {
		if existing == o {
			return
		}
	}
	n.outgoing = append(n.outgoing, o)
}

func (n *Node) addIncoming(o *Node) {
	for _, existing := range n.incoming {
		if existing == o {
			return
		}
	}
	n.incoming = append(n.incoming, o)
}

// nodeSet indexes canonical nodes by marking. Buckets are keyed by the
// marking hash and resolved with Equal, so a hash collision can never
// merge two distinct markings onto one node.
type nodeSet struct {
	buckets map[uint64][]*Node
}

func newNodeSet() *nodeSet {
	return &nodeSet{buckets: make(map[uint64][]*Node)}
}

func (s *nodeSet) get(m *trinet.Marking) *Node {
	for _, n := range s.buckets[m.Hash()] {
		if n.marking.Equal(m) {
			return n
		}
	}
	return nil
}

func (s *nodeSet) put(n *Node) {
	h := n.marking.Hash()
	s.buckets[h] = append(s.buckets[h], n)
}
