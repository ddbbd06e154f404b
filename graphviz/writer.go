// Package graphviz renders nets and reachability graphs as graphviz
// figures. Writers consume read-only views of the model and hold no state
// between flushes.
package graphviz

import (
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/trinets/trinet"
)

type Font string

func (f Font) Or(other Font) Font {
	return f + "," + other
}

const (
	Helvetica Font = "Helvetica"
	Arial     Font = "Arial"
	SansSerif Font = "sans-serif"
	Serif     Font = "Serif"
	Times     Font = "Times"
)

type RankDir string

const (
	LeftToRight RankDir = "LR"
	RightToLeft RankDir = "RL"
	TopToBottom RankDir = "TB"
	BottomToTop RankDir = "BT"
)

type Format string

const (
	XDOT Format = "xdot"
	SVG  Format = "svg"
	PNG  Format = "png"
	JPG  Format = "jpg"
)

type Config struct {
	Name string
	Font
	RankDir
	Format
}

func (c *Config) format() graphviz.Format {
	if c.Format == "" {
		return graphviz.XDOT
	}
	return graphviz.Format(c.Format)
}

// Writer renders a net: circles for places, boxes for transitions, one
// edge per arc.
type Writer struct {
	*Config
	marking *trinet.Marking
	g       *cgraph.Graph
	mapping map[trinet.Node]*cgraph.Node
}

func New(config *Config) *Writer {
	if config.Name == "" {
		config.Name = "net"
	}
	if config.Font == "" {
		config.Font = Helvetica
	}
	if config.RankDir == "" {
		config.RankDir = LeftToRight
	}
	return &Writer{Config: config}
}

// WithMarking labels each place with its token count in m.
func (w *Writer) WithMarking(m *trinet.Marking) *Writer {
	w.marking = m
	return w
}

func (w *Writer) writePlace(i int, p *trinet.Place) error {
	node, err := w.g.CreateNode(fmt.Sprintf("p%d", i))
	if err != nil {
		return err
	}
	node.SetShape(cgraph.CircleShape)
	label := p.Name
	if w.marking != nil {
		label = fmt.Sprintf("%s\n%d", p.Name, w.marking.TokensAt(p))
	}
	node.SetLabel(label)
	node.Set("fontname", string(w.Font))
	w.mapping[p] = node
	return nil
}

func (w *Writer) writeTransition(i int, t *trinet.Transition) error {
	node, err := w.g.CreateNode(fmt.Sprintf("t%d", i))
	if err != nil {
		return err
	}
	node.SetShape(cgraph.BoxShape)
	node.SetLabel(t.Name)
	node.Set("fontname", string(w.Font))
	w.mapping[t] = node
	return nil
}

func (w *Writer) writeArc(i int, a trinet.Arc) error {
	src := w.mapping[a.Src]
	dst := w.mapping[a.Dest]
	_, err := w.g.CreateEdge(fmt.Sprintf("a%d", i), src, dst)
	return err
}

func (w *Writer) Flush(out io.Writer, n *trinet.Net) error {
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
	w.mapping = make(map[trinet.Node]*cgraph.Node)
	for i, p := range n.Places() {
		if err := w.writePlace(i, p); err != nil {
			return err
		}
	}
	for i, t := range n.Transitions() {
		if err := w.writeTransition(i, t); err != nil {
			return err
		}
	}
	for i, a := range n.Arcs() {
		if err := w.writeArc(i, a); err != nil {
			return err
		}
	}
	return graph.Render(g, w.format(), out)
}
