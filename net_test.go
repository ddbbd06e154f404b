package trinet_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/trinets/trinet"
)

func buildChain(t *testing.T) *trinet.Net {
	t.Helper()
	n := trinet.NewNet("chain")
	for _, name := range []string{"p1", "p2"} {
		if _, err := n.AddPlace(name); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := n.AddTransition("t1", []string{"p1"}, []string{"p2"}); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestNet_AddPlace_Duplicate(t *testing.T) {
	n := trinet.NewNet("dup")
	if _, err := n.AddPlace("p1"); err != nil {
		t.Fatal(err)
	}
	_, err := n.AddPlace("p1")
	var dup *trinet.DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("want DuplicateNameError, got %v", err)
	}
	if dup.Name != "p1" || dup.Kind != trinet.PlaceNode {
		t.Errorf("error does not identify the offender: %v", dup)
	}
	if len(n.Places()) != 1 {
		t.Errorf("net changed after failed add: %d places", len(n.Places()))
	}
}

func TestNet_AddTransition_Duplicate(t *testing.T) {
	n := buildChain(t)
	_, err := n.AddTransition("t1", nil, nil)
	var dup *trinet.DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("want DuplicateNameError, got %v", err)
	}
	if dup.Name != "t1" || dup.Kind != trinet.TransitionNode {
		t.Errorf("error does not identify the offender: %v", dup)
	}
	if len(n.Transitions()) != 1 {
		t.Errorf("net changed after failed add: %d transitions", len(n.Transitions()))
	}
}

func TestNet_AddTransition_UnknownPlace(t *testing.T) {
	n := buildChain(t)
	_, err := n.AddTransition("t2", []string{"p1", "nope"}, []string{"p2"})
	var ref *trinet.InvalidReferenceError
	if !errors.As(err, &ref) {
		t.Fatalf("want InvalidReferenceError, got %v", err)
	}
	if ref.Transition != "t2" || ref.Place != "nope" {
		t.Errorf("error does not identify the offender: %v", ref)
	}
	if len(n.Transitions()) != 1 {
		t.Errorf("transition was added despite the invalid reference")
	}
}

func TestNet_AddTransition_PlaceInBothSets(t *testing.T) {
	n := buildChain(t)
	tr, err := n.AddTransition("loop", []string{"p1"}, []string{"p1"})
	if err != nil {
		t.Fatalf("a place in both sets is legal: %v", err)
	}
	if len(tr.Incoming()) != 1 || len(tr.Outgoing()) != 1 {
		t.Errorf("both sets should hold p1")
	}
}

func TestNet_Lookup(t *testing.T) {
	n := buildChain(t)
	if p := n.Place("p1"); p == nil || p.Name != "p1" {
		t.Errorf("Place(p1) = %v", p)
	}
	if n.Place("nope") != nil {
		t.Error("lookup of unknown place should be nil")
	}
	if tr := n.Transition("t1"); tr == nil || tr.Name != "t1" {
		t.Errorf("Transition(t1) = %v", tr)
	}
	if n.Transition("nope") != nil {
		t.Error("lookup of unknown transition should be nil")
	}
}

func TestNet_AsMarked(t *testing.T) {
	n := buildChain(t)
	m, err := n.AsMarked(map[string]int{"p1": 2})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.TokensAt(n.Place("p1")); got != 2 {
		t.Errorf("p1 tokens = %d, want 2", got)
	}
	if got := m.TokensAt(n.Place("p2")); got != 0 {
		t.Errorf("omitted place should hold zero tokens, got %d", got)
	}

	_, err = n.AsMarked(map[string]int{"nope": 1})
	var unknown *trinet.UnknownPlaceError
	if !errors.As(err, &unknown) {
		t.Fatalf("want UnknownPlaceError, got %v", err)
	}
	if unknown.Name != "nope" {
		t.Errorf("error does not identify the offender: %v", unknown)
	}
}

func TestNet_Arcs(t *testing.T) {
	n := buildChain(t)
	arcs := n.Arcs()
	if len(arcs) != 2 {
		t.Fatalf("arc count = %d, want 2", len(arcs))
	}
	if arcs[0].String() != "p1 -> t1" {
		t.Errorf("first arc = %q", arcs[0])
	}
	if arcs[1].String() != "t1 -> p2" {
		t.Errorf("second arc = %q", arcs[1])
	}
}

// ExampleNet builds a small net, marks it, and walks one firing.
func ExampleNet() {
	n := trinet.NewNet("handoff")
	_, _ = n.AddPlace("ready")
	_, _ = n.AddPlace("done")
	_, _ = n.AddTransition("work", []string{"ready"}, []string{"done"})

	m, _ := n.AsMarked(map[string]int{"ready": 1})
	fmt.Println(m)
	for _, firing := range m.Successors() {
		fmt.Println(firing.Transition.Name, "->", firing.Marking)
	}
	// Output:
	// ready (1)
	// work -> done (1)
}
