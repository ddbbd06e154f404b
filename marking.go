package trinet

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// Marking is an immutable assignment of non-negative token counts to the
// places of its origin net; it represents one state of the modeled system.
// Firing a transition returns a new marking and never mutates the receiver.
type Marking struct {
	origin *Net
	tokens map[string]int
}

// Origin returns the net this marking distributes tokens over.
func (m *Marking) Origin() *Net { return m.origin }

// TokensAt returns the token count at p, zero if none were assigned.
func (m *Marking) TokensAt(p *Place) int { return m.tokens[p.Name] }

// IsEnabled reports whether every incoming place of t holds at least one
// token. A transition with no incoming places is always enabled: it is a
// source that produces tokens unconditionally. Outgoing places play no
// part in enablement.
func (m *Marking) IsEnabled(t *Transition) bool {
	for _, p := range t.Incoming() {
		if m.tokens[p.Name] < 1 {
			return false
		}
	}
	return true
}

// Fire returns the marking that results from firing t: one token consumed
// per incoming place, one produced per outgoing place. A place in both
// sets keeps its count. Fire does not re-check enablement; firing a
// disabled transition yields negative counts and is the caller's mistake.
func (m *Marking) Fire(t *Transition) *Marking {
	tokens := make(map[string]int, len(m.tokens)+len(t.Outgoing()))
	for name, count := range m.tokens {
		tokens[name] = count
	}
	for _, p := range t.Incoming() {
		tokens[p.Name]--
	}
	for _, p := range t.Outgoing() {
		tokens[p.Name]++
	}
	for name, count := range tokens {
		if count == 0 {
			delete(tokens, name)
		}
	}
	return &Marking{origin: m.origin, tokens: tokens}
}

// EnabledTransitions returns every transition enabled in this marking, in
// net registration order.
func (m *Marking) EnabledTransitions() []*Transition {
	enabled := make([]*Transition, 0)
	for _, t := range m.origin.transitions {
		if m.IsEnabled(t) {
			enabled = append(enabled, t)
		}
	}
	return enabled
}

// Firing pairs a transition with the marking its firing produces.
type Firing struct {
	Transition *Transition
	Marking    *Marking
}

// Successors returns one Firing per enabled transition, in net
// registration order. Distinct transitions that happen to produce equal
// markings each contribute a pair; collapsing equal markings is the
// reachability engine's concern.
func (m *Marking) Successors() []Firing {
	firings := make([]Firing, 0)
	for _, t := range m.origin.transitions {
		if m.IsEnabled(t) {
			firings = append(firings, Firing{Transition: t, Marking: m.Fire(t)})
		}
	}
	return firings
}

// Equal reports whether m and other mark the same net with identical token
// counts on every place of that net. Places absent from either token table
// count as zero on both sides.
func (m *Marking) Equal(other *Marking) bool {
	if other == nil || m.origin != other.origin {
		return false
	}
	for _, p := range m.origin.places {
		if m.tokens[p.Name] != other.tokens[p.Name] {
			return false
		}
	}
	return true
}

// Hash is consistent with Equal: the origin net's identity combined with
// the sum of hash(place name) * count over places holding tokens. The sum
// is commutative, so construction order and explicitly-zero entries never
// change the hash. Equal markings always hash identically; the converse
// does not hold, so lookups keyed by Hash must confirm with Equal.
func (m *Marking) Hash() uint64 {
	h := hashString(m.origin.ID)
	for name, count := range m.tokens {
		if count == 0 {
			continue
		}
		h += hashString(name) * uint64(count)
	}
	return h
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// String lists the places holding tokens as "name (count)", sorted by
// place name. The empty marking prints as the empty string.
func (m *Marking) String() string {
	names := make([]string, 0, len(m.tokens))
	for name, count := range m.tokens {
		if count != 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s (%d)", name, m.tokens[name])
	}
	return strings.Join(parts, ", ")
}
