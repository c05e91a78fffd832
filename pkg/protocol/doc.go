// Package protocol defines the JSON messages exchanged between the live host
// and its browser client over a WebSocket.
//
// The server sends Batch frames. Each batch carries the host mutations
// produced by one client event (or by the initial mount) in the order they
// were applied, with a sequence number that increases by one per batch.
// Mutation paths address nodes by child index from the mount container.
//
// The client sends Event messages naming the target by the same kind of
// path. Events are validated before dispatch; a rejected event is answered
// with a batch carrying only an error.
package protocol
