package vdom

// IDAttr is the reserved attribute ComponentBuilder stamps on every element.
const IDAttr = "ffid"

// Attributes are the reserved attribute groups accepted by a Builder.
type Attributes struct {
	Attrs  Props
	Events Events
}

// Builder creates an element node. Children may be *VNode, []*VNode, string,
// []string or nil; strings become text nodes and nils are skipped.
type Builder func(tag string, a Attributes, children ...any) *VNode

// H builds an element node from a tag, its attributes and its children.
// Attrs and Events are used as given, not copied.
func H(tag string, a Attributes, children ...any) *VNode {
	node := &VNode{
		Kind:   KindElement,
		Type:   tag,
		Attrs:  a.Attrs,
		Events: a.Events,
	}
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			// Ignore nil (allows conditional children)
			continue

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}

		case string:
			node.Children = append(node.Children, Text(v))

		case []string:
			for _, s := range v {
				node.Children = append(node.Children, Text(s))
			}
		}
	}
	return node
}

// ComponentBuilder returns a Builder that adds IDAttr=id to every element's
// attributes. The caller's Attrs map is copied, never modified.
func ComponentBuilder(id string) Builder {
	return func(tag string, a Attributes, children ...any) *VNode {
		attrs := make(Props, len(a.Attrs)+1)
		for k, v := range a.Attrs {
			attrs[k] = v
		}
		attrs[IDAttr] = id
		a.Attrs = attrs
		return H(tag, a, children...)
	}
}
