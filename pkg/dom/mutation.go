package dom

// MutationOp is the kind of live tree edit.
type MutationOp string

const (
	MutAppend     MutationOp = "append"
	MutRemove     MutationOp = "remove"
	MutReplace    MutationOp = "replace"
	MutSetAttr    MutationOp = "setAttr"
	MutRemoveAttr MutationOp = "removeAttr"
	MutSetProp    MutationOp = "setProp"
)

// Structural reports whether the op changes the shape of the tree.
func (op MutationOp) Structural() bool {
	switch op {
	case MutAppend, MutRemove, MutReplace:
		return true
	}
	return false
}

// Mutation is one edit applied to an attached node.
//
// Path addresses the element the edit applies to (the parent for structural
// ops) as child indices from the document body. Index is the child position
// for remove and replace, and the new child's position for append.
type Mutation struct {
	Op    MutationOp `json:"op"`
	Path  []int      `json:"path"`
	Index int        `json:"index,omitempty"`
	Name  string     `json:"name,omitempty"`
	Value string     `json:"value,omitempty"`
	Node  *Snapshot  `json:"node,omitempty"`
}

// Snapshot is a serializable copy of a subtree.
type Snapshot struct {
	Tag      string            `json:"tag,omitempty"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Events   []string          `json:"events,omitempty"`
	Children []*Snapshot       `json:"children,omitempty"`
}

// IsText reports whether the snapshot is a text node.
func (s *Snapshot) IsText() bool {
	return s != nil && s.Tag == ""
}

// Snap copies n and its subtree into a Snapshot.
func Snap(n Node) *Snapshot {
	if n == nil {
		return nil
	}
	el, ok := n.(Element)
	if !ok {
		return &Snapshot{Text: n.TextContent()}
	}
	s := &Snapshot{Tag: el.Tag()}
	if names := el.Attributes(); len(names) > 0 {
		s.Attrs = make(map[string]string, len(names))
		for _, name := range names {
			v, _ := el.GetAttribute(name)
			s.Attrs[name] = v
		}
	}
	s.Events = el.Listening()
	for _, c := range el.ChildNodes() {
		s.Children = append(s.Children, Snap(c))
	}
	return s
}
