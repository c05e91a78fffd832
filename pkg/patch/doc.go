// Package patch reconciles a live host tree with a new virtual tree.
//
// Patch walks the previous and next virtual trees in lockstep against the live
// children of a parent element, addressing each live node by its position:
//
//   - no old node: the new subtree is created and appended to the parent
//   - no new node: the live child at the position is removed
//   - nodes differ (see vdom.Differs): the live child is replaced wholesale,
//     dropping any listeners attached to it
//   - same element: attributes are rewritten when they changed, then children
//     are patched position by position
//   - same text: nothing to do
//
// Child lists are matched by position only. Growing or shrinking a list at
// its tail maps to appends and removals; an insertion in the middle shows up
// as in-place updates of every following position plus one append at the end.
package patch
