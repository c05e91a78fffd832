// Package todo is the demo application: a task input, an add button and the
// list of tasks added so far.
package todo

import (
	"log/slog"

	"github.com/vango-dev/ffui/internal/errors"
	"github.com/vango-dev/ffui/pkg/dom"
	"github.com/vango-dev/ffui/pkg/reactive"
	"github.com/vango-dev/ffui/pkg/vdom"
)

// ComponentID identifies the todo component's live root.
const ComponentID = "123"

// DefaultTasks seed the list when no tasks are given.
var DefaultTasks = []string{
	"Talk at React Delhi NCR",
	"Shut up when the time is up",
}

// New returns a fresh todo component template listing tasks.
func New(tasks ...string) *reactive.Component {
	list := make([]string, len(tasks))
	copy(list, tasks)
	return &reactive.Component{
		ID: ComponentID,
		State: reactive.State{
			"name":     "",
			"task":     "",
			"taskList": list,
		},
		Render: render,
	}
}

func class(c string) vdom.Attributes {
	return vdom.Attributes{Attrs: vdom.Props{"class": c}}
}

func render(c *reactive.Instance, h vdom.Builder) *vdom.VNode {
	input := h("input", vdom.Attributes{
		Attrs: vdom.Props{
			"value":       c.GetString("task"),
			"class":       "form-control form-control-lg",
			"placeholder": "Enter Task",
		},
		Events: vdom.Events{
			"input": func(e *dom.Event) { onInput(c, e) },
		},
	})

	button := h("button", vdom.Attributes{
		Attrs: vdom.Props{"class": "btn btn-primary"},
		Events: vdom.Events{
			"click": func(e *dom.Event) { onAdd(c, e) },
		},
	}, "Add Task")

	items := vdom.Map(c.GetStrings("taskList"), func(task string) *vdom.VNode {
		return h("div", class("p-3 border-bottom"), task)
	})

	return h("div", class("d-flex align-items-center justify-content-center h-100 w-100"),
		h("div", class("h-50 w-50 bg-white rounded shadow p-3"),
			h("div", class("input-group"),
				input,
				h("div", class("input-group-append"), button),
			),
			items,
		),
	)
}

func onInput(c *reactive.Instance, e *dom.Event) {
	if err := c.Set("task", e.Value); err != nil {
		slog.Error("todo: update task", "error", err)
	}
}

func onAdd(c *reactive.Instance, e *dom.Event) {
	e.PreventDefault()
	e.StopPropagation()

	tasks := append(c.GetStrings("taskList"), c.GetString("task"))
	if err := c.Set("taskList", tasks); err != nil {
		slog.Error("todo: add task", "error", err)
		return
	}
	if err := c.Set("task", ""); err != nil {
		slog.Error("todo: reset task", "error", err)
	}
}

// Paths of the interactive elements, relative to the element the component
// is mounted into when it is that element's first child.
var (
	InputPath  = []int{0, 0, 0, 0}
	ButtonPath = []int{0, 0, 0, 1, 0}
)

// AddTask types task into the input and clicks the add button, the way a
// user would. root is the mount root.
func AddTask(root dom.Element, task string) error {
	input, err := element(root, InputPath, "input")
	if err != nil {
		return err
	}
	input.Dispatch(&dom.Event{Type: "input", Value: task})

	// The input event may have patched the tree; resolve again.
	button, err := element(root, ButtonPath, "button")
	if err != nil {
		return err
	}
	button.Dispatch(&dom.Event{Type: "click"})
	return nil
}

func element(root dom.Element, path []int, tag string) (dom.Element, error) {
	el, ok := dom.Resolve(root, path).(dom.Element)
	if !ok || el.Tag() != tag {
		return nil, errors.New(errors.CodeAbsentNode).
			WithDetailf("no <%s> at %v under the mount root", tag, path)
	}
	return el, nil
}
