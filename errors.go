package trinet

import "fmt"

// DuplicateNameError reports an attempt to register a place or transition
// under a name that already exists in the net.
type DuplicateNameError struct {
	Kind NodeKind
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s %q already exists in this net", e.Kind, e.Name)
}

// InvalidReferenceError reports a transition referencing a place that is
// not registered in the net.
type InvalidReferenceError struct {
	Transition string
	Place      string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("transition %q references unknown place %q", e.Transition, e.Place)
}

// UnknownPlaceError reports a marking request naming a place that is not
// part of the net.
type UnknownPlaceError struct {
	Name string
}

func (e *UnknownPlaceError) Error() string {
	return fmt.Sprintf("place %q is not part of this net", e.Name)
}
