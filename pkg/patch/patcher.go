package patch

import (
	"log/slog"
	"sort"

	"github.com/vango-dev/ffui/internal/errors"
	"github.com/vango-dev/ffui/pkg/dom"
	"github.com/vango-dev/ffui/pkg/vdom"
)

// Patcher applies virtual tree changes to a live tree.
type Patcher struct {
	observer Observer
	logger   *slog.Logger
}

// Option configures a Patcher.
type Option func(*Patcher)

// WithObserver reports every live tree operation to o.
func WithObserver(o Observer) Option {
	return func(p *Patcher) {
		p.observer = o
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(p *Patcher) {
		p.logger = l
	}
}

// New creates a Patcher.
func New(opts ...Option) *Patcher {
	p := &Patcher{
		logger: slog.Default().With("component", "patch"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Patch reconciles the live child of parent at index from old to next.
// old == nil appends next; next == nil removes the live child at index.
func (p *Patcher) Patch(parent dom.Element, old, next *vdom.VNode, index int) error {
	if parent == nil {
		return errors.New(errors.CodeMountRootMissing).WithDetail("patch parent is nil")
	}

	switch {
	case old == nil && next == nil:
		return nil

	case old == nil:
		parent.AppendChild(p.Create(parent.OwnerDocument(), next))
		p.note(OpAppend)
		return nil

	case next == nil:
		live := parent.ChildAt(index)
		if live == nil {
			return missingChild(parent, index)
		}
		p.logger.Debug("remove", "parent", parent.Tag(), "index", index)
		parent.RemoveChild(live)
		p.note(OpRemove)
		return nil
	}

	differs, err := vdom.Differs(old, next)
	if err != nil {
		return err
	}

	if differs {
		live := parent.ChildAt(index)
		if live == nil {
			return missingChild(parent, index)
		}
		p.logger.Debug("replace", "parent", parent.Tag(), "index", index, "old", old.Type, "new", next.Type)
		parent.ReplaceChild(p.Create(parent.OwnerDocument(), next), live)
		p.note(OpReplace)
		return nil
	}

	if next.Kind != vdom.KindElement {
		// Equal text; a text change was caught by Differs.
		return nil
	}

	el, ok := parent.ChildAt(index).(dom.Element)
	if !ok {
		return missingChild(parent, index)
	}

	if !vdom.AttrsEqual(old.Attrs, next.Attrs) {
		p.updateAttrs(el, old.Attrs, next.Attrs)
	}

	if len(old.Children) > 0 || len(next.Children) > 0 {
		return p.patchChildren(el, old.Children, next.Children)
	}
	return nil
}

// patchChildren patches every position of the longer child list against the
// live children of el. Positions present in next are visited in ascending
// order, so extra nodes are appended in order; positions only present in old
// are removed from the highest down, so each index still addresses the node
// it did before the pass.
func (p *Patcher) patchChildren(el dom.Element, old, next []*vdom.VNode) error {
	for i, child := range next {
		var prev *vdom.VNode
		if i < len(old) {
			prev = old[i]
		}
		if err := p.Patch(el, prev, child, i); err != nil {
			return err
		}
	}
	for i := len(old) - 1; i >= len(next); i-- {
		if err := p.Patch(el, old[i], nil, i); err != nil {
			return err
		}
	}
	return nil
}

// updateAttrs removes every old attribute, then writes every new one. Names
// the element exposes as properties are written as properties.
func (p *Patcher) updateAttrs(el dom.Element, old, next vdom.Props) {
	for _, name := range sortedKeys(old) {
		el.RemoveAttribute(name)
		p.note(OpRemoveAttr)
	}
	for _, name := range sortedKeys(next) {
		value := next[name]
		if el.HasProperty(name) {
			el.SetProperty(name, value)
			p.note(OpSetProp)
			continue
		}
		el.SetAttribute(name, vdom.AttrString(value))
		p.note(OpSetAttr)
	}
}

// Create realizes v as a detached live subtree owned by doc: elements with
// their listeners, attributes and children, or a text node.
func (p *Patcher) Create(doc dom.Document, v *vdom.VNode) dom.Node {
	if v.Kind == vdom.KindText {
		p.note(OpCreate)
		return doc.CreateTextNode(v.Text)
	}

	el := doc.CreateElement(v.Type)
	for _, name := range sortedKeys(v.Events) {
		el.AddEventListener(name, v.Events[name])
	}
	for _, name := range sortedKeys(v.Attrs) {
		el.SetAttribute(name, vdom.AttrString(v.Attrs[name]))
	}
	for _, child := range v.Children {
		if child != nil {
			el.AppendChild(p.Create(doc, child))
		}
	}
	p.note(OpCreate)
	return el
}

func (p *Patcher) note(op Op) {
	if p.observer != nil {
		p.observer.Observe(op)
	}
}

func missingChild(parent dom.Element, index int) error {
	return errors.New(errors.CodeLiveChildMissing).
		WithDetailf("index %d under <%s> with %d children", index, parent.Tag(), len(parent.ChildNodes()))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
