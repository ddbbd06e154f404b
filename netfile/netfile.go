// Package netfile reads and writes net definitions as YAML documents. A
// document names the net, lists its places, maps each transition to the
// places it consumes from and produces to, and may carry an initial
// marking. Reachability graphs are never written; only model definitions
// travel through this format.
package netfile

import (
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/trinets/trinet"
)

// Flow lists the places a transition consumes from and produces to.
type Flow struct {
	Incoming []string `yaml:"incoming,omitempty"`
	Outgoing []string `yaml:"outgoing,omitempty"`
}

// File is the on-disk form of a net and an optional initial marking.
type File struct {
	Name        string          `yaml:"name"`
	Places      []string        `yaml:"places"`
	Transitions map[string]Flow `yaml:"transitions"`
	Marking     map[string]int  `yaml:"marking,omitempty"`
}

// Load decodes a net definition from r.
func Load(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Save encodes f to w.
func Save(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return enc.Close()
}

// Net builds the model this file describes. Transitions are registered in
// name order, so repeated builds of the same file enumerate successors
// identically. Validation errors from the net surface unchanged.
func (f *File) Net() (*trinet.Net, error) {
	n := trinet.NewNet(f.Name)
	for _, name := range f.Places {
		if _, err := n.AddPlace(name); err != nil {
			return nil, err
		}
	}
	names := make([]string, 0, len(f.Transitions))
	for name := range f.Transitions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		flow := f.Transitions[name]
		if _, err := n.AddTransition(name, flow.Incoming, flow.Outgoing); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// InitialMarking builds the file's marking over n. A file without a
// marking section yields the empty marking.
func (f *File) InitialMarking(n *trinet.Net) (*trinet.Marking, error) {
	return n.AsMarked(f.Marking)
}

// FromNet captures a net, and optionally one of its markings, as a File.
func FromNet(n *trinet.Net, m *trinet.Marking) *File {
	f := &File{
		Name:        n.Name,
		Places:      make([]string, 0, len(n.Places())),
		Transitions: make(map[string]Flow, len(n.Transitions())),
	}
	for _, p := range n.Places() {
		f.Places = append(f.Places, p.Name)
	}
	for _, t := range n.Transitions() {
		var flow Flow
		for _, p := range t.Incoming() {
			flow.Incoming = append(flow.Incoming, p.Name)
		}
		for _, p := range t.Outgoing() {
			flow.Outgoing = append(flow.Outgoing, p.Name)
		}
		f.Transitions[t.Name] = flow
	}
	if m != nil {
		f.Marking = make(map[string]int)
		for _, p := range n.Places() {
			if count := m.TokensAt(p); count > 0 {
				f.Marking[p.Name] = count
			}
		}
	}
	return f
}
