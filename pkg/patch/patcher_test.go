package patch

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vango-dev/ffui/internal/errors"
	"github.com/vango-dev/ffui/pkg/dom"
	"github.com/vango-dev/ffui/pkg/dom/memdom"
	"github.com/vango-dev/ffui/pkg/vdom"
)

func h(tag string, attrs vdom.Props, children ...any) *vdom.VNode {
	return vdom.H(tag, vdom.Attributes{Attrs: attrs}, children...)
}

// mountTree renders tree into a fresh container and starts recording.
func mountTree(t *testing.T, tree *vdom.VNode) (*memdom.Document, dom.Element, *memdom.Recorder) {
	t.Helper()
	doc := memdom.New()
	container := doc.CreateElement("div")
	doc.Body().AppendChild(container)
	if tree != nil {
		if err := New().Patch(container, nil, tree, 0); err != nil {
			t.Fatalf("initial patch: %v", err)
		}
	}
	return doc, container, memdom.Record(doc)
}

func attrsOf(el dom.Element) map[string]string {
	out := map[string]string{}
	for _, name := range el.Attributes() {
		out[name], _ = el.GetAttribute(name)
	}
	return out
}

func childTexts(el dom.Element) []string {
	var out []string
	for _, c := range el.ChildNodes() {
		out = append(out, c.TextContent())
	}
	return out
}

func TestPatchAppend(t *testing.T) {
	_, container, rec := mountTree(t, nil)
	container.AppendChild(container.OwnerDocument().CreateTextNode("existing"))
	rec.Reset()

	tree := h("p", vdom.Props{"class": "x"}, "hello")
	if err := New().Patch(container, nil, tree, 0); err != nil {
		t.Fatalf("Patch() error = %v", err)
	}

	structural := rec.Structural()
	if len(structural) != 1 {
		t.Fatalf("structural mutations = %d, want 1: %+v", len(structural), structural)
	}
	if structural[0].Op != dom.MutAppend || structural[0].Index != 1 {
		t.Errorf("mutation = %+v, want append at index 1", structural[0])
	}

	p, ok := container.ChildAt(1).(dom.Element)
	if !ok {
		t.Fatalf("child 1 = %T, want element", container.ChildAt(1))
	}
	if p.Tag() != "p" || p.TextContent() != "hello" {
		t.Errorf("appended <%s>%s, want <p>hello", p.Tag(), p.TextContent())
	}
	if diff := cmp.Diff(map[string]string{"class": "x"}, attrsOf(p)); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestPatchRemove(t *testing.T) {
	_, container, rec := mountTree(t, nil)
	doc := container.OwnerDocument()
	for _, s := range []string{"a", "b", "c"} {
		container.AppendChild(doc.CreateTextNode(s))
	}
	rec.Reset()

	if err := New().Patch(container, vdom.Text("b"), nil, 1); err != nil {
		t.Fatalf("Patch() error = %v", err)
	}

	if diff := cmp.Diff([]string{"a", "c"}, childTexts(container)); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	muts := rec.Mutations()
	if len(muts) != 1 || muts[0].Op != dom.MutRemove || muts[0].Index != 1 {
		t.Errorf("mutations = %+v, want one remove at index 1", muts)
	}
}

func TestPatchReplaceOnTagChange(t *testing.T) {
	calls := 0
	old := vdom.H("div", vdom.Attributes{
		Events: vdom.Events{"click": func(*dom.Event) { calls++ }},
	})
	_, container, rec := mountTree(t, old)

	next := h("span", nil)
	if err := New().Patch(container, old, next, 0); err != nil {
		t.Fatalf("Patch() error = %v", err)
	}

	muts := rec.Mutations()
	if len(muts) != 1 || muts[0].Op != dom.MutReplace {
		t.Fatalf("mutations = %+v, want one replace", muts)
	}
	live := container.ChildAt(0).(dom.Element)
	if live.Tag() != "span" {
		t.Errorf("live tag = %q, want span", live.Tag())
	}
	if len(live.Listening()) != 0 {
		t.Errorf("replacement listens to %v, want none", live.Listening())
	}
	live.Dispatch(&dom.Event{Type: "click"})
	if calls != 0 {
		t.Error("old click listener survived replacement")
	}
}

func TestPatchTextChange(t *testing.T) {
	old := h("p", nil, "a")
	_, container, rec := mountTree(t, old)

	if err := New().Patch(container, old, h("p", nil, "b"), 0); err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if got := container.TextContent(); got != "b" {
		t.Errorf("text = %q, want b", got)
	}
	muts := rec.Mutations()
	if len(muts) != 1 || muts[0].Op != dom.MutReplace {
		t.Errorf("mutations = %+v, want one replace", muts)
	}
}

func TestPatchIdempotent(t *testing.T) {
	build := func() *vdom.VNode {
		return h("div", vdom.Props{"class": "card", "ffid": "1"},
			h("input", vdom.Props{"value": "x"}),
			h("ul", nil, h("li", nil, "A"), h("li", nil, "B")),
			"tail",
		)
	}
	_, container, rec := mountTree(t, build())

	counter := Counter{}
	if err := New(WithObserver(counter)).Patch(container, build(), build(), 0); err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if len(rec.Mutations()) != 0 {
		t.Errorf("mutations = %+v, want none", rec.Mutations())
	}
	if counter.Structural() != 0 {
		t.Errorf("structural ops = %d, want 0", counter.Structural())
	}
}

func TestPatchAttributes(t *testing.T) {
	old := h("div", vdom.Props{"class": "x"})
	_, container, _ := mountTree(t, old)

	next := h("div", vdom.Props{"class": "y", "id": "z"})
	counter := Counter{}
	if err := New(WithObserver(counter)).Patch(container, old, next, 0); err != nil {
		t.Fatalf("Patch() error = %v", err)
	}

	live := container.ChildAt(0).(dom.Element)
	if diff := cmp.Diff(map[string]string{"class": "y", "id": "z"}, attrsOf(live)); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
	if counter.Structural() != 0 {
		t.Errorf("structural ops = %d, want 0", counter.Structural())
	}
	if counter[OpRemoveAttr] != 1 || counter[OpSetAttr] != 2 {
		t.Errorf("ops = %v, want 1 remove_attr and 2 set_attr", counter)
	}
}

func TestPatchPrefersProperties(t *testing.T) {
	old := h("input", vdom.Props{"value": "", "class": "c"})
	_, container, _ := mountTree(t, old)

	counter := Counter{}
	next := h("input", vdom.Props{"value": "B", "class": "c"})
	if err := New(WithObserver(counter)).Patch(container, old, next, 0); err != nil {
		t.Fatalf("Patch() error = %v", err)
	}

	live := container.ChildAt(0).(dom.Element)
	if v, _ := live.Property("value"); v != "B" {
		t.Errorf("value property = %v, want B", v)
	}
	if v, _ := live.GetAttribute("value"); v != "B" {
		t.Errorf("value attribute = %q, want B", v)
	}
	if counter[OpSetProp] != 1 || counter[OpSetAttr] != 1 {
		t.Errorf("ops = %v, want 1 set_prop and 1 set_attr", counter)
	}
}

func TestPatchChildLists(t *testing.T) {
	list := func(items ...string) *vdom.VNode {
		return h("ul", nil, vdom.Map(items, func(s string) *vdom.VNode {
			return h("li", nil, s)
		}))
	}

	tests := []struct {
		name           string
		old, next      []string
		wantStructural []dom.MutationOp
	}{
		{"append one", []string{"A"}, []string{"A", "B"}, []dom.MutationOp{dom.MutAppend}},
		{"append several", []string{"A"}, []string{"A", "B", "C"}, []dom.MutationOp{dom.MutAppend, dom.MutAppend}},
		{"remove tail", []string{"A", "B"}, []string{"A"}, []dom.MutationOp{dom.MutRemove}},
		{"remove several", []string{"A", "B", "C", "D"}, []string{"A", "B"}, []dom.MutationOp{dom.MutRemove, dom.MutRemove}},
		{"clear", []string{"A", "B"}, nil, []dom.MutationOp{dom.MutRemove, dom.MutRemove}},
		// Positional matching: the middle insertion rewrites position 1 and
		// appends the old tail again.
		{"insert middle", []string{"A", "C"}, []string{"A", "B", "C"}, []dom.MutationOp{dom.MutReplace, dom.MutAppend}},
		{"remove head", []string{"A", "B"}, []string{"B"}, []dom.MutationOp{dom.MutReplace, dom.MutRemove}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := list(tt.old...)
			_, container, rec := mountTree(t, old)

			if err := New().Patch(container, old, list(tt.next...), 0); err != nil {
				t.Fatalf("Patch() error = %v", err)
			}

			ul := container.ChildAt(0).(dom.Element)
			if diff := cmp.Diff(tt.next, childTexts(ul)); diff != "" {
				t.Errorf("items mismatch (-want +got):\n%s", diff)
			}
			var got []dom.MutationOp
			for _, m := range rec.Structural() {
				got = append(got, m.Op)
			}
			if diff := cmp.Diff(tt.wantStructural, got); diff != "" {
				t.Errorf("structural ops mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPatchBothAbsent(t *testing.T) {
	_, container, rec := mountTree(t, nil)
	if err := New().Patch(container, nil, nil, 0); err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if len(rec.Mutations()) != 0 {
		t.Errorf("mutations = %+v, want none", rec.Mutations())
	}
}

func TestPatchLiveChildMissing(t *testing.T) {
	_, container, rec := mountTree(t, nil)

	tests := []struct {
		name      string
		old, next *vdom.VNode
	}{
		{"remove", vdom.Text("a"), nil},
		{"replace", vdom.Text("a"), vdom.Text("b")},
		{"update", h("div", nil), h("div", vdom.Props{"id": "x"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Patch(container, tt.old, tt.next, 3)
			if !stderrors.Is(err, errors.ErrLiveChildMissing) {
				t.Errorf("error = %v, want ErrLiveChildMissing", err)
			}
		})
	}
	if len(rec.Mutations()) != 0 {
		t.Errorf("mutations = %+v, want none", rec.Mutations())
	}
}

func TestPatchNilParent(t *testing.T) {
	err := New().Patch(nil, nil, vdom.Text("a"), 0)
	if !stderrors.Is(err, errors.ErrMountRootMissing) {
		t.Errorf("error = %v, want ErrMountRootMissing", err)
	}
}

func TestCreate(t *testing.T) {
	doc := memdom.New()
	clicked := false
	tree := vdom.H("button", vdom.Attributes{
		Attrs:  vdom.Props{"class": "btn", "disabled": false},
		Events: vdom.Events{"click": func(*dom.Event) { clicked = true }},
	}, "Add", h("span", nil))

	counter := Counter{}
	node := New(WithObserver(counter)).Create(doc, tree)
	el, ok := node.(dom.Element)
	if !ok {
		t.Fatalf("Create() = %T, want element", node)
	}
	if node.Parent() != nil {
		t.Error("created node should be detached")
	}
	if diff := cmp.Diff(map[string]string{"class": "btn", "disabled": "false"}, attrsOf(el)); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
	if len(el.ChildNodes()) != 2 || el.TextContent() != "Add" {
		t.Errorf("children = %d text %q, want 2 and Add", len(el.ChildNodes()), el.TextContent())
	}
	el.Dispatch(&dom.Event{Type: "click"})
	if !clicked {
		t.Error("click listener was not attached")
	}
	if counter[OpCreate] != 3 {
		t.Errorf("create ops = %d, want 3", counter[OpCreate])
	}
}
