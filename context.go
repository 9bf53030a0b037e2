package htmx

import (
	"context"
	"net/http"
)

type contextKey struct{}

// NewContext returns a context carrying the given per-request htmx state.
// Adapters use this to make the state reachable from handlers.
func NewContext(ctx context.Context, h *Htmx) context.Context {
	return context.WithValue(ctx, contextKey{}, h)
}

// FromContext returns the htmx state stored in the context, or nil when no
// middleware installed one.
func FromContext(ctx context.Context) *Htmx {
	h, _ := ctx.Value(contextKey{}).(*Htmx)
	return h
}

// FromRequest returns the htmx state for the request, or nil when the request
// did not pass through the middleware.
func FromRequest(r *http.Request) *Htmx {
	return FromContext(r.Context())
}
