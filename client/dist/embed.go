package clientdist

import _ "embed"

// FFUIJS is the browser client. It replays mutation batches into the mount
// container and sends delegated events back over the WebSocket.
//
// It is served by the live host at "/_ffui/client.js".
//
//go:embed ffui.js
var FFUIJS []byte
