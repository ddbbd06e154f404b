// Package trinet models place/transition Petri nets with unit arc weights
// and the token-game semantics over them: markings, enablement, and firing.
// The reachability subpackage explores the state space a marked net spans.
package trinet

import "github.com/google/uuid"

// Net owns the places and transitions of one Petri-net model. It is built
// incrementally with AddPlace and AddTransition and treated as read-only by
// every consumer afterwards; markings and reachability graphs share it by
// reference.
type Net struct {
	ID   string
	Name string

	places      []*Place
	transitions []*Transition
	placeIndex  map[string]int
	transIndex  map[string]int
}

// NewNet creates an empty net.
func NewNet(name string) *Net {
	return &Net{
		ID:          uuid.New().String(),
		Name:        name,
		places:      make([]*Place, 0),
		transitions: make([]*Transition, 0),
		placeIndex:  make(map[string]int),
		transIndex:  make(map[string]int),
	}
}

// Place returns the place registered under name, or nil.
func (n *Net) Place(name string) *Place {
	i, ok := n.placeIndex[name]
	if !ok {
		return nil
	}
	return n.places[i]
}

// Transition returns the transition registered under name, or nil.
func (n *Net) Transition(name string) *Transition {
	i, ok := n.transIndex[name]
	if !ok {
		return nil
	}
	return n.transitions[i]
}

// Places returns the places in registration order. The returned slice must
// be treated as read-only.
func (n *Net) Places() []*Place { return n.places }

// Transitions returns the transitions in registration order. The returned
// slice must be treated as read-only.
func (n *Net) Transitions() []*Transition { return n.transitions }

// AddPlace creates and registers a place. The name must be unique among
// the places of the net.
func (n *Net) AddPlace(name string) (*Place, error) {
	if _, ok := n.placeIndex[name]; ok {
		return nil, &DuplicateNameError{Kind: PlaceNode, Name: name}
	}
	p := NewPlace(name)
	n.placeIndex[name] = len(n.places)
	n.places = append(n.places, p)
	return p, nil
}

// AddTransition creates and registers a transition consuming from incoming
// and producing to outgoing, all referenced by place name. Every name must
// resolve to a place already registered in the net; the first name that
// does not resolve aborts the call with an InvalidReferenceError and the
// net is left unchanged. A place may appear in both sets.
func (n *Net) AddTransition(name string, incoming, outgoing []string) (*Transition, error) {
	if _, ok := n.transIndex[name]; ok {
		return nil, &DuplicateNameError{Kind: TransitionNode, Name: name}
	}
	in, err := n.resolve(name, incoming)
	if err != nil {
		return nil, err
	}
	out, err := n.resolve(name, outgoing)
	if err != nil {
		return nil, err
	}
	t := NewTransition(name, in, out)
	n.transIndex[name] = len(n.transitions)
	n.transitions = append(n.transitions, t)
	return t, nil
}

func (n *Net) resolve(transition string, names []string) ([]*Place, error) {
	pp := make([]*Place, 0, len(names))
	for _, name := range names {
		p := n.Place(name)
		if p == nil {
			return nil, &InvalidReferenceError{Transition: transition, Place: name}
		}
		pp = append(pp, p)
	}
	return pp, nil
}

// AsMarked returns a marking of this net with the given token counts,
// keyed by place name. Places omitted from tokens start at zero. Counts
// must be non-negative.
func (n *Net) AsMarked(tokens map[string]int) (*Marking, error) {
	counts := make(map[string]int, len(tokens))
	for name, count := range tokens {
		if n.Place(name) == nil {
			return nil, &UnknownPlaceError{Name: name}
		}
		if count != 0 {
			counts[name] = count
		}
	}
	return &Marking{origin: n, tokens: counts}, nil
}
