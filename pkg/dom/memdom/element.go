package memdom

import (
	"fmt"

	"github.com/vango-dev/ffui/pkg/dom"
)

// properties lists the settable element properties per tag. Setting one also
// reflects it into the attribute so serialized markup shows the current value.
var properties = map[string]map[string]bool{
	"input":    {"value": true, "checked": true},
	"textarea": {"value": true},
	"select":   {"value": true},
}

// memNode is implemented by every node this package creates.
type memNode interface {
	dom.Node
	setParent(p *Element)
	owner() *Document
}

// Element is an in-memory element.
type Element struct {
	doc    *Document
	parent *Element
	tag    string

	attrNames []string
	attrs     map[string]string
	props     map[string]any

	listenOrder []string
	listeners   map[string][]dom.Listener

	children []dom.Node
}

var _ dom.Element = (*Element)(nil)

func newElement(d *Document, tag string) *Element {
	return &Element{
		doc:       d,
		tag:       tag,
		attrs:     make(map[string]string),
		props:     make(map[string]any),
		listeners: make(map[string][]dom.Listener),
	}
}

func (e *Element) setParent(p *Element) { e.parent = p }
func (e *Element) owner() *Document     { return e.doc }

// NodeType implements dom.Node.
func (e *Element) NodeType() dom.NodeType { return dom.ElementNode }

// Parent implements dom.Node.
func (e *Element) Parent() dom.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// OwnerDocument implements dom.Node.
func (e *Element) OwnerDocument() dom.Document { return e.doc }

// TextContent returns the concatenated text of all descendants.
func (e *Element) TextContent() string {
	var s string
	for _, c := range e.children {
		s += c.TextContent()
	}
	return s
}

// Tag implements dom.Element.
func (e *Element) Tag() string { return e.tag }

func (e *Element) attached() bool {
	for cur := e; cur != nil; cur = cur.parent {
		if cur == e.doc.body {
			return true
		}
	}
	return false
}

// SetAttribute implements dom.Element.
func (e *Element) SetAttribute(name, value string) {
	e.setAttr(name, value)
	e.doc.emit(e, dom.Mutation{Op: dom.MutSetAttr, Name: name, Value: value})
}

func (e *Element) setAttr(name, value string) {
	if _, ok := e.attrs[name]; !ok {
		e.attrNames = append(e.attrNames, name)
	}
	e.attrs[name] = value
}

// GetAttribute implements dom.Element.
func (e *Element) GetAttribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// RemoveAttribute implements dom.Element.
func (e *Element) RemoveAttribute(name string) {
	if !e.removeAttr(name) {
		return
	}
	e.doc.emit(e, dom.Mutation{Op: dom.MutRemoveAttr, Name: name})
}

func (e *Element) removeAttr(name string) bool {
	if _, ok := e.attrs[name]; !ok {
		return false
	}
	delete(e.attrs, name)
	for i, n := range e.attrNames {
		if n == name {
			e.attrNames = append(e.attrNames[:i], e.attrNames[i+1:]...)
			break
		}
	}
	return true
}

// Attributes implements dom.Element.
func (e *Element) Attributes() []string {
	out := make([]string, len(e.attrNames))
	copy(out, e.attrNames)
	return out
}

// HasProperty implements dom.Element.
func (e *Element) HasProperty(name string) bool {
	return properties[e.tag][name]
}

// SetProperty implements dom.Element. Unknown property names are stored but
// not reflected.
func (e *Element) SetProperty(name string, value any) {
	e.props[name] = value
	str := fmt.Sprint(value)
	if e.HasProperty(name) {
		switch name {
		case "checked":
			if truthy(value) {
				e.setAttr(name, "")
			} else {
				e.removeAttr(name)
			}
			str = fmt.Sprint(truthy(value))
		default:
			e.setAttr(name, str)
		}
	}
	e.doc.emit(e, dom.Mutation{Op: dom.MutSetProp, Name: name, Value: str})
}

// Property implements dom.Element. A reflected property that was never set
// reads through to its attribute.
func (e *Element) Property(name string) (any, bool) {
	if v, ok := e.props[name]; ok {
		return v, true
	}
	if e.HasProperty(name) {
		v, ok := e.attrs[name]
		return v, ok
	}
	return nil, false
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b != "" && b != "false"
	case nil:
		return false
	}
	return true
}

// AddEventListener implements dom.Element. Listeners are host-side only and
// produce no mutation; Snapshot reports the event names.
func (e *Element) AddEventListener(event string, l dom.Listener) {
	if l == nil {
		return
	}
	if _, ok := e.listeners[event]; !ok {
		e.listenOrder = append(e.listenOrder, event)
	}
	e.listeners[event] = append(e.listeners[event], l)
}

// Listening implements dom.Element.
func (e *Element) Listening() []string {
	if len(e.listenOrder) == 0 {
		return nil
	}
	out := make([]string, len(e.listenOrder))
	copy(out, e.listenOrder)
	return out
}

// Dispatch implements dom.Element. The event bubbles through ancestors until
// a listener stops propagation.
func (e *Element) Dispatch(ev *dom.Event) {
	if ev.Target == nil {
		ev.Target = e
	}
	for cur := e; cur != nil && !ev.Stopped(); cur = cur.parent {
		// Listeners may patch the tree; iterate over the set present at dispatch.
		ls := append([]dom.Listener(nil), cur.listeners[ev.Type]...)
		for _, l := range ls {
			l(ev)
		}
	}
}

// ChildNodes implements dom.Element.
func (e *Element) ChildNodes() []dom.Node {
	out := make([]dom.Node, len(e.children))
	copy(out, e.children)
	return out
}

// ChildAt implements dom.Element.
func (e *Element) ChildAt(i int) dom.Node {
	if i < 0 || i >= len(e.children) {
		return nil
	}
	return e.children[i]
}

func (e *Element) indexOf(child dom.Node) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// AppendChild implements dom.Element. A child that already has a parent is
// moved.
func (e *Element) AppendChild(child dom.Node) {
	cn := e.adopt(child)
	if cn == nil {
		return
	}
	e.children = append(e.children, cn)
	cn.setParent(e)
	e.doc.emit(e, dom.Mutation{Op: dom.MutAppend, Index: len(e.children) - 1, Node: e.doc.snap(cn)})
}

// RemoveChild implements dom.Element. Removing a node that is not a child is
// a no-op.
func (e *Element) RemoveChild(child dom.Node) {
	idx := e.indexOf(child)
	if idx < 0 {
		return
	}
	e.doc.emit(e, dom.Mutation{Op: dom.MutRemove, Index: idx})
	e.children = append(e.children[:idx], e.children[idx+1:]...)
	child.(memNode).setParent(nil)
}

// ReplaceChild implements dom.Element. Replacing a node that is not a child
// is a no-op.
func (e *Element) ReplaceChild(newChild, oldChild dom.Node) {
	idx := e.indexOf(oldChild)
	if idx < 0 {
		return
	}
	cn := e.adopt(newChild)
	if cn == nil {
		return
	}
	// adopt may have detached newChild from this element and shifted oldChild.
	idx = e.indexOf(oldChild)
	e.children[idx] = cn
	cn.setParent(e)
	oldChild.(memNode).setParent(nil)
	e.doc.emit(e, dom.Mutation{Op: dom.MutReplace, Index: idx, Node: e.doc.snap(cn)})
}

// adopt validates child and detaches it from its current parent.
func (e *Element) adopt(child dom.Node) memNode {
	cn, ok := child.(memNode)
	if !ok || cn.owner() != e.doc {
		panic(fmt.Sprintf("memdom: foreign node %T cannot be inserted", child))
	}
	if p := cn.Parent(); p != nil {
		p.RemoveChild(cn)
	}
	return cn
}

func (e *Element) find(name, value string) *Element {
	if v, ok := e.attrs[name]; ok && v == value {
		return e
	}
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			if found := el.find(name, value); found != nil {
				return found
			}
		}
	}
	return nil
}
