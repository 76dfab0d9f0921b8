package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace id so that all log lines of one
// reservation call, including those emitted by the upstream adapters, can be
// correlated. An id supplied by the caller in the X-Trace-ID header is
// honored (the user directory and listing catalog share the convention);
// otherwise a fresh UUID is generated. The id is attached to a request-scoped
// child logger and echoed back on the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
