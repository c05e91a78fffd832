package todo

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vango-dev/ffui/internal/errors"
	"github.com/vango-dev/ffui/pkg/dom"
	"github.com/vango-dev/ffui/pkg/dom/memdom"
	"github.com/vango-dev/ffui/pkg/mount"
	"github.com/vango-dev/ffui/pkg/vdom"
)

type fixture struct {
	doc    *memdom.Document
	app    dom.Element
	driver *mount.Driver
}

func mountTodo(t *testing.T, tasks ...string) *fixture {
	t.Helper()
	doc := memdom.New()
	app := doc.CreateElement("div")
	app.SetAttribute("id", "app")
	doc.Body().AppendChild(app)

	d, err := mount.Mount(app, New(tasks...))
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return &fixture{doc: doc, app: app, driver: d}
}

// element resolves a child-index path below the mount root.
func (f *fixture) element(t *testing.T, path ...int) dom.Element {
	t.Helper()
	var n dom.Node = f.app
	for _, i := range path {
		el, ok := n.(dom.Element)
		if !ok {
			t.Fatalf("path %v: %v is not an element", path, n)
		}
		n = el.ChildAt(i)
	}
	el, ok := n.(dom.Element)
	if !ok {
		t.Fatalf("path %v resolves to %v, want element", path, n)
	}
	return el
}

func (f *fixture) card(t *testing.T) dom.Element   { return f.element(t, 0, 0) }
func (f *fixture) input(t *testing.T) dom.Element  { return f.element(t, InputPath...) }
func (f *fixture) button(t *testing.T) dom.Element { return f.element(t, ButtonPath...) }

func (f *fixture) items(t *testing.T) []string {
	t.Helper()
	var out []string
	for _, n := range f.card(t).ChildNodes()[1:] {
		out = append(out, n.TextContent())
	}
	return out
}

func TestFirstPaint(t *testing.T) {
	f := mountTodo(t, "A")

	root := f.element(t, 0)
	if id, _ := root.GetAttribute(vdom.IDAttr); id != ComponentID {
		t.Errorf("root %s = %q, want %q", vdom.IDAttr, id, ComponentID)
	}
	in := f.input(t)
	if in.Tag() != "input" {
		t.Fatalf("input tag = %q", in.Tag())
	}
	if ph, _ := in.GetAttribute("placeholder"); ph != "Enter Task" {
		t.Errorf("placeholder = %q", ph)
	}
	if got := f.button(t).TextContent(); got != "Add Task" {
		t.Errorf("button text = %q", got)
	}
	if diff := cmp.Diff([]string{"A"}, f.items(t)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultTasks(t *testing.T) {
	f := mountTodo(t, DefaultTasks...)
	if diff := cmp.Diff(DefaultTasks, f.items(t)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeThenAdd(t *testing.T) {
	f := mountTodo(t, "A")
	c := f.driver.Instance()
	rec := memdom.Record(f.doc)
	defer rec.Stop()

	input := f.input(t)
	input.Dispatch(&dom.Event{Type: "input", Value: "B"})

	if got := c.GetString("task"); got != "B" {
		t.Fatalf("task = %q, want B", got)
	}
	if v, _ := input.GetAttribute("value"); v != "B" {
		t.Errorf("input value = %q, want B", v)
	}
	if s := rec.Structural(); len(s) != 0 {
		t.Errorf("typing produced structural mutations: %+v", s)
	}
	for _, m := range rec.Mutations() {
		if m.Name != "value" && m.Op != dom.MutRemoveAttr && m.Op != dom.MutSetAttr {
			t.Errorf("unexpected mutation %+v", m)
		}
	}
	if f.input(t) != input {
		t.Error("input element should be patched in place")
	}

	rec.Reset()
	ev := &dom.Event{Type: "click"}
	f.button(t).Dispatch(ev)

	if diff := cmp.Diff([]string{"A", "B"}, c.GetStrings("taskList")); diff != "" {
		t.Errorf("taskList mismatch (-want +got):\n%s", diff)
	}
	if got := c.GetString("task"); got != "" {
		t.Errorf("task = %q, want empty", got)
	}
	if !ev.DefaultPrevented() || !ev.Stopped() {
		t.Error("add handler should cancel the event")
	}

	structural := rec.Structural()
	if len(structural) != 1 || structural[0].Op != dom.MutAppend {
		t.Fatalf("structural mutations = %+v, want one append", structural)
	}
	if got := structural[0].Node; got == nil || got.Tag != "div" || got.Attrs["class"] != "p-3 border-bottom" {
		t.Errorf("appended node = %+v, want list item", got)
	}
	if diff := cmp.Diff([]string{"A", "B"}, f.items(t)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if v, _ := input.GetAttribute("value"); v != "" {
		t.Errorf("input value = %q, want cleared", v)
	}
}

func TestAddEmptyTask(t *testing.T) {
	f := mountTodo(t)
	f.button(t).Dispatch(&dom.Event{Type: "click"})

	if diff := cmp.Diff([]string{""}, f.driver.Instance().GetStrings("taskList")); diff != "" {
		t.Errorf("taskList mismatch (-want +got):\n%s", diff)
	}
	if got := len(f.card(t).ChildNodes()); got != 2 {
		t.Errorf("card children = %d, want 2", got)
	}
}

func TestNewCopiesTasks(t *testing.T) {
	tasks := []string{"A"}
	c := New(tasks...)
	tasks[0] = "changed"
	if got := c.State["taskList"].([]string)[0]; got != "A" {
		t.Errorf("taskList[0] = %q, want A", got)
	}
}

func TestAddTask(t *testing.T) {
	f := mountTodo(t, "A")
	if err := AddTask(f.app, "B"); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if err := AddTask(f.app, "C"); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, f.items(t)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestAddTaskWithoutApp(t *testing.T) {
	doc := memdom.New()
	if err := AddTask(doc.Body(), "x"); !stderrors.Is(err, errors.ErrAbsentNode) {
		t.Errorf("AddTask() error = %v, want ErrAbsentNode", err)
	}
}

func TestAddTaskTargetsItsOwnMount(t *testing.T) {
	doc := memdom.New()
	first := doc.CreateElement("div")
	second := doc.CreateElement("div")
	doc.Body().AppendChild(first)
	doc.Body().AppendChild(second)

	if _, err := mount.Mount(first, New("A")); err != nil {
		t.Fatalf("Mount(first) error = %v", err)
	}
	if _, err := mount.Mount(second, New("X")); err != nil {
		t.Fatalf("Mount(second) error = %v", err)
	}

	if err := AddTask(second, "Y"); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if got := first.TextContent(); got != "Add TaskA" {
		t.Errorf("first = %q, want untouched", got)
	}
	if got := second.TextContent(); got != "Add TaskXY" {
		t.Errorf("second = %q, want Add TaskXY", got)
	}
}
