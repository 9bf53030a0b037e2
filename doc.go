// Package htmx provides HTTP middleware and a per-request state object for
// servers responding to the htmx client library. It parses the HX-* request
// headers into typed accessors, queues HX-* response directives set by the
// handler, and serializes trigger events into the header format the client
// expects — without touching routing, rendering, or the response body.
//
// # Quick Start
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("GET /tasks", func(w http.ResponseWriter, r *http.Request) {
//		h := htmx.FromRequest(r)
//		if !h.IsHTMX() {
//			// full page render
//		}
//		h.TriggerEvent("tasks:reloaded", nil, htmx.StageStandard)
//		h.Retarget("#task-list")
//		// partial render
//	})
//
//	wrapped := htmx.Middleware(htmx.Options{})(mux)
//	http.ListenAndServe(":8080", wrapped)
//
// The middleware constructs the state before the handler runs and writes the
// queued directives into the response headers once the handler returns.
// Trigger events registered for the same lifecycle stage under the same name
// merge, keeping the most recent payload; events at different stages travel in
// independent headers (HX-Trigger, HX-Trigger-After-Swap,
// HX-Trigger-After-Settle).
//
// Gin applications can use the adapter in the htmxgin subpackage instead.
package htmx
