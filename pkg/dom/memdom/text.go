package memdom

import "github.com/vango-dev/ffui/pkg/dom"

// Text is an in-memory text node. Its data never changes after creation.
type Text struct {
	doc    *Document
	parent *Element
	data   string
}

var _ dom.Node = (*Text)(nil)

func (t *Text) setParent(p *Element) { t.parent = p }
func (t *Text) owner() *Document     { return t.doc }

// NodeType implements dom.Node.
func (t *Text) NodeType() dom.NodeType { return dom.TextNode }

// Parent implements dom.Node.
func (t *Text) Parent() dom.Element {
	if t.parent == nil {
		return nil
	}
	return t.parent
}

// OwnerDocument implements dom.Node.
func (t *Text) OwnerDocument() dom.Document { return t.doc }

// TextContent implements dom.Node.
func (t *Text) TextContent() string { return t.data }
