package vdom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vango-dev/ffui/pkg/dom"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is the virtual node.
type VNode struct {
	Kind     VKind    // Node type
	Type     string   // Element tag name (e.g., "div")
	Attrs    Props    // Attributes
	Events   Events   // Event listeners by event name
	Children []*VNode // Child nodes
	Text     string   // For KindText
}

// Props holds attribute values by name.
type Props map[string]any

// Events holds event listeners by event name ("input", "click").
type Events map[string]dom.Listener

// IsElement reports whether v is a non-nil element node.
func (v *VNode) IsElement() bool {
	return v != nil && v.Kind == KindElement
}

// IsText reports whether v is a non-nil text node.
func (v *VNode) IsText() bool {
	return v != nil && v.Kind == KindText
}

// String returns a compact debug representation, e.g. div[class=x](span("hi")).
func (v *VNode) String() string {
	if v == nil {
		return "<nil>"
	}
	if v.Kind == KindText {
		return fmt.Sprintf("%q", v.Text)
	}
	var b strings.Builder
	b.WriteString(v.Type)
	if len(v.Attrs) > 0 {
		keys := make([]string, 0, len(v.Attrs))
		for k := range v.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('[')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(AttrString(v.Attrs[k]))
		}
		b.WriteByte(']')
	}
	if len(v.Children) > 0 {
		b.WriteByte('(')
		for i, c := range v.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}
