package reactive

import (
	"github.com/vango-dev/ffui/pkg/vdom"
)

// State maps field names to plain-data values (strings, numbers, booleans,
// slices and maps of those).
type State map[string]any

// RenderFunc builds a component's tree from its reactive instance. It must
// only read state, never write it.
type RenderFunc func(c *Instance, h vdom.Builder) *vdom.VNode

// Component is a component template.
type Component struct {
	// ID identifies the component's mounted root in the live tree.
	ID string

	// State is the initial state. Its keys are the component's reactive fields.
	State State

	// Render builds the component's tree.
	Render RenderFunc
}

// Sink receives the trees before and after a state write.
type Sink func(old, next *vdom.VNode) error
