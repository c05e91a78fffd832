package vdom

import (
	"github.com/vango-dev/ffui/internal/errors"
)

// Differs reports whether two nodes at the same tree position must be
// replaced wholesale rather than updated in place:
//
//  1. different kinds (element vs. text) differ;
//  2. elements with different tags differ;
//  3. text nodes with different content differ;
//  4. anything else does not (attributes and children are the patcher's job).
//
// Both nodes must be present. A nil argument is a caller bug and returns an
// error matching errors.ErrAbsentNode.
func Differs(old, next *VNode) (bool, error) {
	if old == nil || next == nil {
		return false, errors.New(errors.CodeAbsentNode).
			WithDetailf("old present: %t, new present: %t", old != nil, next != nil)
	}
	if old.Kind != next.Kind {
		return true, nil
	}
	switch old.Kind {
	case KindElement:
		return old.Type != next.Type, nil
	case KindText:
		return old.Text != next.Text, nil
	}
	return false, nil
}
