package trinet

// Arc is a directed connection between a place and a transition, derived
// from the transition's incoming and outgoing sets.
type Arc struct {
	Src  Node
	Dest Node
}

func (a Arc) String() string {
	return a.Src.String() + " -> " + a.Dest.String()
}

// Arcs enumerates every arc of the net, in transition registration order
// with incoming arcs before outgoing ones. The result is derived on each
// call; renderers and other consumers may not mutate the nodes it refers to.
func (n *Net) Arcs() []Arc {
	arcs := make([]Arc, 0)
	for _, t := range n.transitions {
		for _, p := range t.Incoming() {
			arcs = append(arcs, Arc{Src: p, Dest: t})
		}
		for _, p := range t.Outgoing() {
			arcs = append(arcs, Arc{Src: t, Dest: p})
		}
	}
	return arcs
}
