// Package metrics exposes Prometheus metrics for ffui mounts and live sessions.
//
// A Collector implements patch.Observer, so it can be passed straight to a
// patcher (or to mount.WithMetrics) to count live tree operations by kind.
//
// Metrics collected:
//   - ffui_patch_ops_total: Counter of patcher operations by op
//   - ffui_refresh_duration_seconds: Histogram of refresh (render+patch) time
//   - ffui_refresh_errors_total: Counter of failed refreshes by error code
//   - ffui_sessions_active: Gauge of live host sessions
//   - ffui_events_total: Counter of dispatched client events by type
package metrics
