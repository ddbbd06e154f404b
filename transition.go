package trinet

import "github.com/google/uuid"

// Transition represents an event. Firing it consumes one token from every
// incoming place and produces one token in every outgoing place. A place
// may appear on both sides; the pair then nets to zero change when fired.
type Transition struct {
	ID       string
	Name     string
	incoming []*Place
	outgoing []*Place
}

// NewTransition creates a transition consuming from incoming and producing
// to outgoing. The place sets are fixed once the transition is registered
// with a net.
func NewTransition(name string, incoming, outgoing []*Place) *Transition {
	return &Transition{
		ID:       uuid.New().String(),
		Name:     name,
		incoming: incoming,
		outgoing: outgoing,
	}
}

func (t *Transition) Kind() NodeKind { return TransitionNode }

func (t *Transition) String() string { return t.Name }

// Incoming returns the places t consumes from. The returned slice must be
// treated as read-only.
func (t *Transition) Incoming() []*Place { return t.incoming }

// Outgoing returns the places t produces to. The returned slice must be
// treated as read-only.
func (t *Transition) Outgoing() []*Place { return t.outgoing }
