package middleware

import (
	"net/http"
	"time"

	"github.com/dom/champion-stats/internal/logging"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request through the structured logger.
// Server errors are logged at error level.
func RequestLogger(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				fields := logging.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"status":      ww.Status(),
					"bytes":       ww.BytesWritten(),
					"duration_ms": time.Since(start).Milliseconds(),
				}
				if reqID := chiMiddleware.GetReqID(r.Context()); reqID != "" {
					fields["request_id"] = reqID
				}

				if ww.Status() >= http.StatusInternalServerError {
					log.Error("request failed", nil, fields)
					return
				}
				log.Info("request", fields)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
