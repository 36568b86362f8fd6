package logger

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/ncpbridge/pkg/middleware/auth"
	"go.uber.org/zap"
)

// Middleware writes one access-log line per request.
type Middleware struct {
	access *zap.Logger
}

func NewMiddleware(access *zap.Logger) *Middleware {
	if access == nil {
		access = zap.NewNop()
	}
	return &Middleware{access: access}
}

func (m *Middleware) Middleware(ca *auth.Middleware) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)

			// Only allowlisted JSON bodies are buffered; frames and
			// everything else stream through untouched.
			var body []byte
			if bodyLoggable(r) {
				b, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody+1))
				if err == nil {
					body = b
				}
				r.Body = struct {
					io.Reader
					io.Closer
				}{io.MultiReader(bytes.NewReader(body), r.Body), r.Body}
			}

			start := time.Now()
			defer func() {
				fields := []zap.Field{
					zap.String("dateTime", start.UTC().Format(time.RFC1123)),
					zap.String("requestId", chimd.GetReqID(r.Context())),
					zap.String("httpScheme", scheme(r)),
					zap.String("httpProto", r.Proto),
					zap.String("httpMethod", r.Method),
					zap.String("remoteAddr", r.RemoteAddr),
					zap.String("uri", r.URL.Path),
					zap.String("route", route(r)),
					zap.Duration("lat", time.Since(start)),
					zap.Int64("requestSize", r.ContentLength),
					zap.Int("responseSize", ww.BytesWritten()),
					zap.Int("status", ww.Status()),
				}
				if ca != nil {
					u := ca.GetUser(r.Context())
					fields = append(fields,
						zap.Bool("isAuthenticated", ca.IsAuthenticated(r.Context())),
						zap.String("username", u.Username),
						zap.String("role", u.Role.Name),
						zap.String("authenticationProvider", u.AuthenticationSource.Provider),
					)
				} else {
					fields = append(fields, zap.Bool("isAuthenticated", false))
				}
				if len(body) > 0 && len(body) <= maxLoggedBody {
					fields = append(fields, zap.ByteString("requestData", body))
				}
				m.access.Info("", fields...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func scheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func route(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		return rc.RoutePattern()
	}
	return ""
}
