package render

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/vango-dev/ffui/internal/errors"
	"github.com/vango-dev/ffui/pkg/dom"
	"github.com/vango-dev/ffui/pkg/vdom"
)

// Config configures a Renderer.
type Config struct {
	// Pretty indents block elements one per line.
	// Should only be used for inspection; it changes whitespace.
	Pretty bool

	// Indent is the string used for each level in pretty mode.
	// Default: two spaces.
	Indent string

	// OmitIDs drops the component identifier attribute from the output.
	OmitIDs bool
}

// Renderer writes live trees as HTML. It holds no per-render state and may
// be shared.
type Renderer struct {
	config Config
}

// New creates a Renderer.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders n and its subtree.
func (r *Renderer) RenderToString(n dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderNode(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderNode writes n and its subtree to w.
func (r *Renderer) RenderNode(w io.Writer, n dom.Node) error {
	if n == nil {
		return errors.New(errors.CodeAbsentNode).WithDetail("render: node is nil")
	}
	bw := bufio.NewWriter(w)
	r.node(bw, n, 0)
	return bw.Flush()
}

// RenderChildren writes the children of el without el itself.
func (r *Renderer) RenderChildren(w io.Writer, el dom.Element) error {
	if el == nil {
		return errors.New(errors.CodeAbsentNode).WithDetail("render: element is nil")
	}
	bw := bufio.NewWriter(w)
	for _, child := range el.ChildNodes() {
		r.node(bw, child, 0)
	}
	return bw.Flush()
}

func (r *Renderer) node(w *bufio.Writer, n dom.Node, depth int) {
	el, ok := n.(dom.Element)
	if !ok {
		w.WriteString(escape(n.TextContent(), false))
		return
	}
	r.element(w, el, depth)
}

func (r *Renderer) element(w *bufio.Writer, el dom.Element, depth int) {
	tag := el.Tag()
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	w.WriteByte('<')
	w.WriteString(tag)
	r.attributes(w, el)
	w.WriteByte('>')

	if vdom.IsVoidElement(tag) {
		if r.config.Pretty {
			w.WriteByte('\n')
		}
		return
	}

	children := el.ChildNodes()
	block := r.config.Pretty && !isInlineElement(tag) && hasElementChild(children)
	if block {
		w.WriteByte('\n')
		for _, child := range children {
			if _, isEl := child.(dom.Element); !isEl {
				r.writeIndent(w, depth+1)
				r.node(w, child, depth+1)
				w.WriteByte('\n')
				continue
			}
			r.node(w, child, depth+1)
		}
		r.writeIndent(w, depth)
	} else {
		for _, child := range children {
			// Inline content is written flat.
			r.flat(w, child)
		}
	}

	w.WriteString("</")
	w.WriteString(tag)
	w.WriteByte('>')
	if r.config.Pretty {
		w.WriteByte('\n')
	}
}

// flat writes n with no pretty-printing whitespace.
func (r *Renderer) flat(w *bufio.Writer, n dom.Node) {
	if !r.config.Pretty {
		r.node(w, n, 0)
		return
	}
	plain := *r
	plain.config.Pretty = false
	plain.node(w, n, 0)
}

func (r *Renderer) attributes(w *bufio.Writer, el dom.Element) {
	for _, name := range el.Attributes() {
		if r.config.OmitIDs && name == vdom.IDAttr {
			continue
		}
		value, _ := el.GetAttribute(name)
		w.WriteByte(' ')
		w.WriteString(name)
		if isBooleanAttr(name) && (value == "" || strings.EqualFold(value, name)) {
			continue
		}
		w.WriteString(`="`)
		w.WriteString(escape(value, true))
		w.WriteByte('"')
	}
}

func hasElementChild(children []dom.Node) bool {
	for _, c := range children {
		if c.NodeType() == dom.ElementNode {
			return true
		}
	}
	return false
}

func (r *Renderer) writeIndent(w *bufio.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString(r.config.Indent)
	}
}
