// Package vdom provides the virtual node model and node differ for ffui.
//
// A VNode is plain data describing one node of a renderable tree: an element
// (tag, attributes, event listeners, ordered children) or a text node. Trees
// are produced fresh by every render call and never mutated afterwards; the
// previous tree is kept only so it can be compared against the next one.
//
// # Building trees
//
// Render functions receive a Builder with the same shape as H:
//
//	h("div", vdom.Attributes{Attrs: vdom.Props{"class": "card"}},
//	    h("input", vdom.Attributes{
//	        Attrs:  vdom.Props{"value": task},
//	        Events: vdom.Events{"input": onInput},
//	    }),
//	    "plain strings become text nodes",
//	)
//
// ComponentBuilder returns a Builder that stamps every element with the
// component identifier attribute (IDAttr) so the mounted root can be found
// again in the live tree.
//
// # Diffing
//
// Differs decides whether two present nodes at the same position are
// structurally compatible. Attribute and child differences are left to the
// patcher (package patch).
package vdom
