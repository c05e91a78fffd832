package dom

// IndexOf returns the position of child within parent, or -1.
func IndexOf(parent Element, child Node) int {
	if parent == nil {
		return -1
	}
	for i, c := range parent.ChildNodes() {
		if c == child {
			return i
		}
	}
	return -1
}

// PathOf returns the child-index path from the owner document's body to n.
// ok is false when n is not attached under the body.
func PathOf(n Node) (path []int, ok bool) {
	if n == nil {
		return nil, false
	}
	doc := n.OwnerDocument()
	if doc == nil {
		return nil, false
	}
	body := doc.Body()
	for cur := n; cur != Node(body); {
		parent := cur.Parent()
		if parent == nil {
			return nil, false
		}
		idx := IndexOf(parent, cur)
		if idx < 0 {
			return nil, false
		}
		path = append(path, idx)
		cur = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// Resolve walks path from root and returns the node it addresses, or nil.
func Resolve(root Element, path []int) Node {
	var cur Node = root
	for _, idx := range path {
		el, ok := cur.(Element)
		if !ok {
			return nil
		}
		cur = el.ChildAt(idx)
		if cur == nil {
			return nil
		}
	}
	return cur
}
