package dom

// NodeType distinguishes element and text nodes in the live tree.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Document creates nodes and answers lookups over the whole tree.
type Document interface {
	// CreateElement returns a detached element with the given tag.
	CreateElement(tag string) Element

	// CreateTextNode returns a detached text node.
	CreateTextNode(text string) Node

	// QueryByAttr returns the first element under Body, in document order,
	// whose attribute name equals value. Returns nil when none matches.
	QueryByAttr(name, value string) Element

	// Body is the document's top-level element.
	Body() Element
}

// Node is any live tree node.
type Node interface {
	NodeType() NodeType
	Parent() Element
	OwnerDocument() Document
	TextContent() string
}

// Element is a live element node.
type Element interface {
	Node

	Tag() string

	SetAttribute(name, value string)
	GetAttribute(name string) (string, bool)
	RemoveAttribute(name string)
	// Attributes returns the attribute names in insertion order.
	Attributes() []string

	// HasProperty reports whether the element exposes name as a settable property.
	HasProperty(name string) bool
	SetProperty(name string, value any)
	Property(name string) (any, bool)

	AddEventListener(event string, l Listener)
	// Listening returns the event names with at least one listener.
	Listening() []string
	// Dispatch delivers e to this element's listeners for e.Type.
	Dispatch(e *Event)

	ChildNodes() []Node
	// ChildAt returns the child at position i, or nil when out of range.
	ChildAt(i int) Node
	AppendChild(child Node)
	RemoveChild(child Node)
	ReplaceChild(newChild, oldChild Node)
}

// Listener handles a dispatched event.
type Listener func(e *Event)

// Event is a user interaction delivered to an element.
type Event struct {
	// Type is the event name ("input", "click", ...).
	Type string

	// Value carries the target's current value for input-like events.
	Value string

	// Target is the element the event was dispatched on.
	Target Element

	defaultPrevented bool
	stopped          bool
}

// PreventDefault marks the event's default action as cancelled.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// StopPropagation stops delivery to further listeners.
func (e *Event) StopPropagation() { e.stopped = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Stopped reports whether StopPropagation was called.
func (e *Event) Stopped() bool { return e.stopped }
