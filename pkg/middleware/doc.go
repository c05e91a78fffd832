// Package middleware provides the HTTP middleware used by the live host.
//
// # OpenTelemetry
//
// OpenTelemetry starts a server span for every request. Spans carry the
// method, route pattern and status code:
//
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("ffui"),
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// The tracer comes from the global provider unless WithTracer is given.
//
// # Logging
//
// Logger writes one slog record per request after it completes:
//
//	r.Use(middleware.Logger(slog.Default()))
//
// A WebSocket request is logged when its session ends, with status 101.
package middleware
