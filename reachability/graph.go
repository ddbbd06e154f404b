package reachability

import "github.com/trinets/trinet"

// Edge records one firing: Transition fired in From's marking produces
// To's marking.
type Edge struct {
	From       *Node
	To         *Node
	Transition *trinet.Transition
}

// Graph is an explored reachability graph: every distinct marking reached
// from the initial marking, connected by single-firing edges. A graph is
// built once by Explore and read-only afterwards.
type Graph struct {
	root     *Node
	nodes    []*Node
	edges    []*Edge
	deadEnds []*Node
}

// Root returns the node of the initial marking.
func (g *Graph) Root() *Node { return g.root }

// Nodes returns every expanded node in discovery order. In a partial
// graph, edges of the frontier may lead to nodes that were discovered but
// never expanded; those do not appear here.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns every firing edge in discovery order. Two transitions
// firing between the same pair of markings contribute two edges.
func (g *Graph) Edges() []*Edge { return g.edges }

// DeadEnds returns the nodes whose markings enable no transition.
func (g *Graph) DeadEnds() []*Node { return g.deadEnds }

// Net returns the net the graph was explored over.
func (g *Graph) Net() *trinet.Net { return g.root.marking.Origin() }

// InitialMarking returns the marking exploration started from.
func (g *Graph) InitialMarking() *trinet.Marking { return g.root.marking }

// Size returns the number of distinct expanded markings.
func (g *Graph) Size() int { return len(g.nodes) }

// EdgeCount returns the number of firing edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// IsDeadEnd reports whether n is in the dead-end set.
func (g *Graph) IsDeadEnd(n *Node) bool {
	for _, d := range g.deadEnds {
		if d == n {
			return true
		}
	}
	return false
}

// Node returns the canonical node for a marking equal to m, or nil if no
// such marking was expanded.
func (g *Graph) Node(m *trinet.Marking) *Node {
	for _, n := range g.nodes {
		if n.marking.Equal(m) {
			return n
		}
	}
	return nil
}

// MaxDepth returns the largest breadth-first distance from the root among
// the expanded nodes.
func (g *Graph) MaxDepth() int {
	max := 0
	for _, n := range g.nodes {
		if n.depth > max {
			max = n.depth
		}
	}
	return max
}
