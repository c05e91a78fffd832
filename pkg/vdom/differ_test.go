package vdom

import (
	stderrors "errors"
	"testing"

	"github.com/vango-dev/ffui/internal/errors"
)

func TestDiffers(t *testing.T) {
	div := func(attrs Props, children ...any) *VNode {
		return H("div", Attributes{Attrs: attrs}, children...)
	}

	tests := []struct {
		name string
		old  *VNode
		next *VNode
		want bool
	}{
		{"element vs text", div(nil), Text("div"), true},
		{"text vs element", Text("a"), div(nil), true},
		{"tag change", div(nil), H("span", Attributes{}), true},
		{"same tag", div(nil), div(nil), false},
		{"same tag different attrs", div(Props{"class": "x"}), div(Props{"class": "y"}), false},
		{"same tag different children", div(nil, "a"), div(nil, "a", "b"), false},
		{"equal text", Text("a"), Text("a"), false},
		{"different text", Text("a"), Text("b"), true},
		{"empty text", Text(""), Text(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Differs(tt.old, tt.next)
			if err != nil {
				t.Fatalf("Differs() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Differs(%s, %s) = %v, want %v", tt.old, tt.next, got, tt.want)
			}
		})
	}
}

func TestDiffersAbsentNode(t *testing.T) {
	present := Text("a")

	for _, pair := range [][2]*VNode{{nil, present}, {present, nil}, {nil, nil}} {
		got, err := Differs(pair[0], pair[1])
		if err == nil {
			t.Fatalf("Differs(%s, %s) should fail", pair[0], pair[1])
		}
		if !stderrors.Is(err, errors.ErrAbsentNode) {
			t.Errorf("error = %v, want ErrAbsentNode", err)
		}
		if got {
			t.Error("failed comparison should not report a difference")
		}
	}
	if present.Text != "a" {
		t.Error("Differs must not modify its arguments")
	}
}
