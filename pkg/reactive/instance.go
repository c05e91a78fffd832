package reactive

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/vango-dev/ffui/internal/errors"
	"github.com/vango-dev/ffui/pkg/vdom"
)

// Instance is a component with reactive state. It is not safe for concurrent
// use; all reads and writes belong to the goroutine that drives its mount.
type Instance struct {
	id     string
	state  State
	fields map[string]struct{}
	render RenderFunc

	builder vdom.Builder
	sink    Sink
	logger  *slog.Logger
}

// MakeReactive creates an Instance from a component template. The template's
// State is deep-copied; its Render function is kept by reference.
func MakeReactive(c *Component) (*Instance, error) {
	if c == nil || c.Render == nil {
		return nil, errors.Newf(errors.CategoryState, "component has no render function")
	}
	state, err := cloneState(c.State)
	if err != nil {
		return nil, errors.Newf(errors.CategoryState, "state of component %q is not plain data: %v", c.ID, err)
	}

	fields := make(map[string]struct{}, len(state))
	for name := range state {
		fields[name] = struct{}{}
	}

	return &Instance{
		id:      c.ID,
		state:   state,
		fields:  fields,
		render:  c.Render,
		builder: vdom.ComponentBuilder(c.ID),
		logger:  slog.Default().With("component", "reactive", "id", c.ID),
	}, nil
}

// ID returns the component identifier.
func (c *Instance) ID() string { return c.id }

// Bind sets the builder used for renders and the sink that receives every
// write's old and new trees. A nil builder keeps the current one.
func (c *Instance) Bind(h vdom.Builder, sink Sink) {
	if h != nil {
		c.builder = h
	}
	c.sink = sink
}

// SetLogger replaces the instance's logger.
func (c *Instance) SetLogger(l *slog.Logger) {
	if l != nil {
		c.logger = l
	}
}

// Render builds the tree for the current state.
func (c *Instance) Render() *vdom.VNode {
	return c.render(c, c.builder)
}

// Fields returns the declared field names, sorted.
func (c *Instance) Fields() []string {
	names := make([]string, 0, len(c.fields))
	for name := range c.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is a declared field.
func (c *Instance) Has(name string) bool {
	_, ok := c.fields[name]
	return ok
}

// Get returns the field's current value, or "" when it is absent or falsy.
// Slices and maps are returned as copies; write changes back with Set.
func (c *Instance) Get(name string) any {
	v := c.state[name]
	if falsy(v) {
		return ""
	}
	return cloneValue(v)
}

// GetString returns the field as a string. Non-string values are formatted.
func (c *Instance) GetString(name string) string {
	switch v := c.Get(name).(type) {
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// GetStrings returns a list field as strings. A missing or non-list field
// yields nil.
func (c *Instance) GetStrings(name string) []string {
	switch v := c.Get(name).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	}
	return nil
}

// Set writes a declared field and drives one render/patch cycle. The error
// from the sink is returned; the value stays committed either way.
func (c *Instance) Set(name string, value any) error {
	if !c.Has(name) {
		return errors.New(errors.CodeUndeclaredField).
			WithDetailf("field %q is not part of component %q state %v", name, c.id, c.Fields())
	}

	if c.sink == nil {
		c.state[name] = value
		return nil
	}

	old := c.Render()
	c.state[name] = value
	next := c.Render()

	c.logger.Debug("state write", "field", name)
	return c.sink(old, next)
}

// Snapshot returns a deep copy of the current state.
func (c *Instance) Snapshot() (State, error) {
	return cloneState(c.state)
}

// falsy mirrors the usual notion of an empty value: nil, false, zero numbers
// and the empty string. Empty slices and maps are not falsy.
func falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case int:
		return x == 0
	case int8:
		return x == 0
	case int16:
		return x == 0
	case int32:
		return x == 0
	case int64:
		return x == 0
	case uint:
		return x == 0
	case uint8:
		return x == 0
	case uint16:
		return x == 0
	case uint32:
		return x == 0
	case uint64:
		return x == 0
	case float32:
		return x == 0 || math.IsNaN(float64(x))
	case float64:
		return x == 0 || math.IsNaN(x)
	}
	return false
}
