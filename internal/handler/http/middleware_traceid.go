package http

import (
	"net/http"

	"github.com/MKhiriev/go-event-planner/internal/utils"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLen bounds what a client may push into every log line.
	maxTraceIDLen = 64
)

// withTraceID attaches a request-scoped logger tagged with trace_id and
// echoes the id back. A client-supplied id is kept if it is short enough.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = utils.NewTraceID()
		}

		reqLogger := h.logger.Child()
		reqLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(r.Context())))
	})
}
