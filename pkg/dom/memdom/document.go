// Package memdom is an in-memory implementation of the dom host contract.
//
// A Document is single-threaded: all calls for one document must come from
// one goroutine at a time, the way a browser confines its DOM to the UI
// thread. Edits made on nodes attached under Body are reported to observers
// as dom.Mutation values; edits on detached subtrees are silent until the
// subtree is attached, at which point one append mutation carries its
// snapshot.
package memdom

import (
	"github.com/vango-dev/ffui/pkg/dom"
)

// Document is an in-memory host document rooted at a <body> element.
type Document struct {
	body      *Element
	observers map[int]func(dom.Mutation)
	nextObs   int
}

var _ dom.Document = (*Document)(nil)

// New creates an empty document.
func New() *Document {
	d := &Document{observers: make(map[int]func(dom.Mutation))}
	d.body = newElement(d, "body")
	return d
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	return newElement(d, tag)
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(text string) dom.Node {
	return &Text{doc: d, data: text}
}

// Body implements dom.Document.
func (d *Document) Body() dom.Element {
	return d.body
}

// QueryByAttr implements dom.Document.
func (d *Document) QueryByAttr(name, value string) dom.Element {
	if found := d.body.find(name, value); found != nil {
		return found
	}
	return nil
}

// GetElementByID returns the first element with the given id attribute.
func (d *Document) GetElementByID(id string) dom.Element {
	return d.QueryByAttr("id", id)
}

// Observe registers fn for every mutation of the attached tree. The returned
// function removes the observer.
func (d *Document) Observe(fn func(dom.Mutation)) (cancel func()) {
	id := d.nextObs
	d.nextObs++
	d.observers[id] = fn
	return func() { delete(d.observers, id) }
}

func (d *Document) observed() bool {
	return len(d.observers) > 0
}

// snap copies n only when someone is listening.
func (d *Document) snap(n dom.Node) *dom.Snapshot {
	if !d.observed() {
		return nil
	}
	return dom.Snap(n)
}

func (d *Document) emit(target *Element, m dom.Mutation) {
	if !d.observed() || !target.attached() {
		return
	}
	path, ok := dom.PathOf(target)
	if !ok {
		return
	}
	m.Path = path
	for _, fn := range d.observers {
		fn(m)
	}
}
