package metrics

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/middleware"
	"github.com/joeydtaylor/ncpbridge/pkg/middleware/auth"
)

// Collect records request counters, latency and response size per route.
// Paths in the skip list are served but not counted.
func Collect(ca *auth.Middleware) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSkipPath(r) {
				next.ServeHTTP(w, r)
				return
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			inFlight.Inc()

			defer func() {
				inFlight.Dec()

				role := ""
				if ca != nil {
					role = ca.GetUser(r.Context()).Role.Name
				}
				route := normalizePath(r)
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				code := strconv.Itoa(status)

				requestsByRole.WithLabelValues(role).Inc()
				requests.WithLabelValues(code, r.Method, route).Inc()
				requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
				responseBytes.WithLabelValues(route).Observe(float64(ww.BytesWritten()))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
