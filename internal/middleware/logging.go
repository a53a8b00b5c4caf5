package middleware

import (
	"net/http"
	"time"

	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// UnmatchedRoute es el label de métricas para requests sin ruta.
const UnmatchedRoute = "unmatched"

// RequestLog loguea cada request y, si hay collector, registra métricas HTTP.
// La ruta de métricas es el patrón de chi (p.ej. /medicines/{index}/logs).
// Requests sin ruta matcheada van todos a UnmatchedRoute; el path crudo
// solo aparece en el log.
func RequestLog(log logger.Logger, m *metrics.Collector) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)

			route := UnmatchedRoute
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				}
			}
			m.ObserveHTTP(r.Method, route, status, elapsed)

			log.Info("http request", map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       route,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": elapsed.Milliseconds(),
				"request_id":  chimw.GetReqID(r.Context()),
			})
		})
	}
}
