package graphviz

import (
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/trinets/trinet/reachability"
)

// GraphWriter renders a reachability graph: one ellipse per distinct
// marking, edges labeled with the fired transition. Dead ends get a double
// border and the root a thick one.
type GraphWriter struct {
	*Config
	g       *cgraph.Graph
	mapping map[*reachability.Node]*cgraph.Node
}

func NewGraph(config *Config) *GraphWriter {
	if config.Name == "" {
		config.Name = "reachability"
	}
	if config.Font == "" {
		config.Font = Helvetica
	}
	if config.RankDir == "" {
		config.RankDir = TopToBottom
	}
	return &GraphWriter{Config: config}
}

func (w *GraphWriter) writeState(i int, g *reachability.Graph, n *reachability.Node) error {
	node, err := w.g.CreateNode(fmt.Sprintf("s%d", i))
	if err != nil {
		return err
	}
	node.SetShape(cgraph.EllipseShape)
	node.SetLabel(n.String())
	node.Set("fontname", string(w.Font))
	if g.IsDeadEnd(n) {
		node.SetPeripheries(2)
	}
	if n == g.Root() {
		node.SetPenWidth(2)
	}
	w.mapping[n] = node
	return nil
}

func (w *GraphWriter) writeEdge(i int, e *reachability.Edge) error {
	src := w.mapping[e.From]
	dst := w.mapping[e.To]
	if src == nil || dst == nil {
		// Partial graphs carry edges to unexpanded frontier markings.
		return nil
	}
	edge, err := w.g.CreateEdge(fmt.Sprintf("e%d", i), src, dst)
	if err != nil {
		return err
	}
	edge.SetLabel(e.Transition.Name)
	edge.Set("fontname", string(w.Font))
	return nil
}

func (w *GraphWriter) Flush(out io.Writer, rg *reachability.Graph) error {
	graph := graphviz.New()
	defer func() {
		_ = graph.Close()
	}()
	g, err := graph.Graph()
	if err != nil {
		return err
	}
	g.SetRankDir(cgraph.RankDir(w.RankDir))
	w.g = g
	w.mapping = make(map[*reachability.Node]*cgraph.Node)
	for i, n := range rg.Nodes() {
		if err := w.writeState(i, rg, n); err != nil {
			return err
		}
	}
	for i, e := range rg.Edges() {
		if err := w.writeEdge(i, e); err != nil {
			return err
		}
	}
	return graph.Render(g, w.format(), out)
}
