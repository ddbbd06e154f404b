// Package reachability computes the reachability graph of a marked Petri
// net: the directed graph whose nodes are the distinct markings reachable
// from an initial marking and whose edges are single transition firings.
// Exploration is breadth-first, memoized, and bounded, since unbounded
// nets are an expected input class.
package reachability

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/trinets/trinet"
)

// DefaultMaxIterations bounds exploration when no explicit bound is given.
const DefaultMaxIterations = 100000

// BoundExceededError reports that exploration consumed its iteration
// budget before the state space was exhausted.
type BoundExceededError struct {
	Iterations int
}

func (e *BoundExceededError) Error() string {
	return fmt.Sprintf("reachability exploration exceeded %d iterations", e.Iterations)
}

type config struct {
	maxIterations  int
	partialOnBound bool
	logger         *zap.Logger
}

// Option configures an exploration.
type Option func(*config)

// WithMaxIterations caps the number of markings Explore expands. Dead-end
// markings are recorded without consuming budget.
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIterations = n }
}

// WithPartialOnBound makes Explore return the graph built so far when the
// iteration budget runs out, instead of failing with a BoundExceededError.
// Which markings a partial graph contains depends on the successor
// enumeration order, so callers must not rely on its exact contents.
func WithPartialOnBound() Option {
	return func(c *config) { c.partialOnBound = true }
}

// WithLogger attaches a logger to the exploration. The default is a nop
// logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Explore computes the reachability graph of initial's net starting from
// initial. Equal markings are collapsed onto one canonical node, so cycles
// and reconverging firing sequences terminate the search instead of
// growing the graph.
//
// Exploration stops when the state space is exhausted or after expanding
// maxIterations markings, whichever comes first. On hitting the bound the
// partial state is discarded and a *BoundExceededError returned, unless
// WithPartialOnBound was given. The node and edge sets of a complete graph
// are deterministic; the number of iterations consumed before a bound is
// hit follows the successor enumeration order, which is the net's
// transition registration order.
func Explore(initial *trinet.Marking, opts ...Option) (*Graph, error) {
	cfg := &config{
		maxIterations: DefaultMaxIterations,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	root := newNode(initial)
	root.depth = 0
	seen := newNodeSet()
	seen.put(root)
	queue := trinet.NewFIFO[*Node]()
	queue.Push(root)
	g := &Graph{root: root}

	iterations := 0
	bounded := false
	for queue.Len() > 0 {
		current, _ := queue.Pop()
		// Only the first dequeue of a node expands it.
		if current.expanded {
			continue
		}
		current.expanded = true
		g.nodes = append(g.nodes, current)

		successors := current.marking.Successors()
		if len(successors) == 0 {
			g.deadEnds = append(g.deadEnds, current)
			continue
		}
		for _, firing := range successors {
			next := seen.get(firing.Marking)
			if next == nil {
				next = newNode(firing.Marking)
				seen.put(next)
				queue.Push(next)
			}
			if next.depth < 0 || current.depth+1 < next.depth {
				next.depth = current.depth + 1
			}
			current.addOutgoing(next)
			next.addIncoming(current)
			g.edges = append(g.edges, &Edge{From: current, To: next, Transition: firing.Transition})
		}

		iterations++
		if iterations >= cfg.maxIterations {
			if !cfg.partialOnBound {
				cfg.logger.Warn("iteration budget exhausted",
					zap.Int("iterations", iterations),
					zap.Int("queued", queue.Len()),
				)
				return nil, &BoundExceededError{Iterations: iterations}
			}
			bounded = true
			break
		}
	}

	cfg.logger.Info("reachability graph built",
		zap.String("net", g.Net().Name),
		zap.Int("states", g.Size()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("deadEnds", len(g.deadEnds)),
		zap.Bool("partial", bounded),
	)
	return g, nil
}
