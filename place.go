package trinet

import "github.com/google/uuid"

// Place represents a condition or resource slot that holds tokens. Its
// identity within a net is its Name; the ID is a stable identifier for
// display and interchange.
type Place struct {
	ID   string
	Name string
}

// NewPlace creates a new place. Places are registered with a net through
// Net.AddPlace and are immutable afterwards.
func NewPlace(name string) *Place {
	return &Place{
		ID:   uuid.New().String(),
		Name: name,
	}
}

func (p *Place) Kind() NodeKind { return PlaceNode }

func (p *Place) String() string { return p.Name }
