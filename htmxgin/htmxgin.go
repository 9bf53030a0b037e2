// Package htmxgin adapts the htmx middleware to gin. It installs the
// per-request htmx state before the handler chain runs and flushes the queued
// directives into the response headers after c.Next() returns.
package htmxgin

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	htmx "github.com/welshdave/go-htmx"
)

// stateKey is where the htmx state lives in the gin context.
const stateKey = "htmx.state"

// Middleware returns a gin middleware that manages the htmx request/response
// state for every request it wraps. Handlers reach the state through
// FromContext (or htmx.FromRequest, which also works under gin).
func Middleware(opts htmx.Options) gin.HandlerFunc {
	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return func(c *gin.Context) {
		h := htmx.New(c.Request.Header)
		c.Request = c.Request.WithContext(htmx.NewContext(c.Request.Context(), h))
		c.Set(stateKey, h)

		dw := &directiveWriter{ResponseWriter: c.Writer, state: h, logger: logger}
		c.Writer = dw

		c.Next()
		dw.flush()
	}
}

// FromContext returns the htmx state installed by Middleware, or nil when the
// request did not pass through it.
func FromContext(c *gin.Context) *htmx.Htmx {
	if v, ok := c.Get(stateKey); ok {
		if h, ok := v.(*htmx.Htmx); ok {
			return h
		}
	}
	return htmx.FromRequest(c.Request)
}

// directiveWriter defers the htmx flush until the response is committed. gin
// commits headers on the first body write, so every write path flushes first.
type directiveWriter struct {
	gin.ResponseWriter
	state   *htmx.Htmx
	logger  *zerolog.Logger
	flushed bool
}

func (w *directiveWriter) Write(b []byte) (int, error) {
	w.flush()
	return w.ResponseWriter.Write(b)
}

func (w *directiveWriter) WriteString(s string) (int, error) {
	w.flush()
	return w.ResponseWriter.WriteString(s)
}

func (w *directiveWriter) WriteHeader(statusCode int) {
	w.flush()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *directiveWriter) WriteHeaderNow() {
	w.flush()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *directiveWriter) flush() {
	if w.flushed {
		return
	}
	w.flushed = true
	htmx.WriteDirectives(w.ResponseWriter.Header(), w.state, w.logger)
}
