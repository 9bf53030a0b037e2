package htmx

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Options configures the htmx middleware.
type Options struct {
	// Logger receives a warning whenever a flushed directive carries a value
	// that cannot be sent as a header. Defaults to a disabled logger.
	Logger *zerolog.Logger
}

// Middleware returns an http.Handler middleware that creates the per-request
// htmx state before the handler runs, exposes it via FromRequest, and writes
// the flushed directives into the response headers after the handler returns.
//
// Response headers must be in place before the first body write, so the
// middleware wraps the ResponseWriter and flushes on the first Write or
// WriteHeader call (or after the handler, when it wrote nothing).
func Middleware(opts Options) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := New(r.Header)
			r = r.WithContext(NewContext(r.Context(), h))

			dw := &directiveWriter{ResponseWriter: w, state: h, logger: logger}
			next.ServeHTTP(dw, r)
			dw.flush()
		})
	}
}

// WriteDirectives flushes the htmx state and writes every directive into the
// given header set, overwriting existing values. Directives whose value cannot
// appear in a header are logged and skipped, so a broken trigger never breaks
// the response. Middleware uses it internally; adapters for other frameworks
// can build on it.
func WriteDirectives(header http.Header, h *Htmx, logger *zerolog.Logger) {
	for name, values := range h.Flush() {
		if len(values) == 0 {
			continue
		}
		if !validHeaderValue(values[0]) {
			logger.Warn().
				Str("header", name).
				Msg("dropping htmx directive with invalid header value")
			continue
		}
		header.Set(name, values[0])
	}
}

// validHeaderValue rejects values that would split or corrupt the header line.
func validHeaderValue(value string) bool {
	return !strings.ContainsAny(value, "\r\n\x00")
}

// directiveWriter defers the htmx flush until the response is committed.
type directiveWriter struct {
	http.ResponseWriter
	state   *Htmx
	logger  *zerolog.Logger
	flushed bool
}

func (w *directiveWriter) Write(b []byte) (int, error) {
	w.flush()
	return w.ResponseWriter.Write(b)
}

func (w *directiveWriter) WriteHeader(statusCode int) {
	w.flush()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *directiveWriter) flush() {
	if w.flushed {
		return
	}
	w.flushed = true
	WriteDirectives(w.ResponseWriter.Header(), w.state, w.logger)
}
