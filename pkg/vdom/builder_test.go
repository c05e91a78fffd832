package vdom

import (
	"testing"

	"github.com/vango-dev/ffui/pkg/dom"
)

func TestH(t *testing.T) {
	clicked := false
	onClick := func(*dom.Event) { clicked = true }

	node := H("button",
		Attributes{
			Attrs:  Props{"class": "btn"},
			Events: Events{"click": onClick},
		},
		"Add",
		nil,
		H("span", Attributes{}),
		[]*VNode{Text("a"), nil, Text("b")},
		[]string{"c"},
	)

	if node.Kind != KindElement {
		t.Fatalf("Kind = %v, want Element", node.Kind)
	}
	if node.Type != "button" {
		t.Errorf("Type = %q, want button", node.Type)
	}
	if node.Attrs["class"] != "btn" {
		t.Errorf("class = %v, want btn", node.Attrs["class"])
	}
	node.Events["click"](&dom.Event{})
	if !clicked {
		t.Error("click listener was not passed through")
	}

	wantKinds := []VKind{KindText, KindElement, KindText, KindText, KindText}
	if len(node.Children) != len(wantKinds) {
		t.Fatalf("len(Children) = %d, want %d", len(node.Children), len(wantKinds))
	}
	for i, k := range wantKinds {
		if node.Children[i].Kind != k {
			t.Errorf("child %d kind = %v, want %v", i, node.Children[i].Kind, k)
		}
	}
	if node.Children[0].Text != "Add" {
		t.Errorf("first child text = %q, want Add", node.Children[0].Text)
	}
}

func TestHNoChildren(t *testing.T) {
	node := H("input", Attributes{})
	if node.Children != nil {
		t.Errorf("Children = %v, want nil", node.Children)
	}
	if node.Attrs != nil || node.Events != nil {
		t.Error("empty Attributes should leave Attrs and Events nil")
	}
}

func TestComponentBuilder(t *testing.T) {
	h := ComponentBuilder("123")

	attrs := Props{"class": "card"}
	node := h("div", Attributes{Attrs: attrs}, h("span", Attributes{}))

	if node.Attrs[IDAttr] != "123" {
		t.Errorf("root %s = %v, want 123", IDAttr, node.Attrs[IDAttr])
	}
	if node.Attrs["class"] != "card" {
		t.Errorf("class = %v, want card", node.Attrs["class"])
	}
	if node.Children[0].Attrs[IDAttr] != "123" {
		t.Errorf("child %s = %v, want 123", IDAttr, node.Children[0].Attrs[IDAttr])
	}
	if _, ok := attrs[IDAttr]; ok {
		t.Error("ComponentBuilder must not modify the caller's Attrs")
	}
}

func TestMap(t *testing.T) {
	nodes := Map([]string{"A", "B"}, func(s string) *VNode {
		return H("li", Attributes{}, s)
	})
	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if nodes[1].Children[0].Text != "B" {
		t.Errorf("second item text = %q, want B", nodes[1].Children[0].Text)
	}
}
