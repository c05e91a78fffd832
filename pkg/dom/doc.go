// Package dom defines the host tree contract the ffui rendering core patches.
//
// The core never owns the live tree. It creates nodes through a Document,
// reads child positions, and issues structural edits (append, remove, replace)
// and attribute/property writes through Element. Any host that implements these
// interfaces can be patched: the in-memory document in package memdom is used by
// the live host, the CLI and the tests.
//
// Mutation describes one edit in terms of index paths from the document body,
// which is how observers (the WebSocket host, recorders in tests) replay edits
// on a remote copy of the tree.
package dom
