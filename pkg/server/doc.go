// Package server is the live host: it serves the page shell and runs one
// session per WebSocket connection.
//
// # Architecture
//
//   - Server: chi router, page shell, health and metrics endpoints, session
//     tracking and graceful shutdown
//   - Session: one connection, one in-memory document, one mounted component
//
// # Session Lifecycle
//
// A session mounts a fresh component into its own memdom document and
// records every mutation the document reports. The first batch carries the
// initial paint. After that the session reads client events one at a time:
// it resolves the event's path, dispatches the event on the live element,
// and sends everything the handlers changed as the next batch. All of a
// session's state is touched only by its read loop, so handlers need no
// locking.
//
// # Routes
//
//	GET /                  page shell
//	GET /ws                WebSocket session
//	GET /_ffui/client.js   browser client
//	GET /healthz           liveness
//	GET /metrics           Prometheus (when a gatherer is configured)
package server
