package bridge

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/ncpbridge/pkg/dispatch"
	"github.com/joeydtaylor/ncpbridge/pkg/feature"
	"github.com/joeydtaylor/ncpbridge/pkg/middleware/auth"
	"github.com/joeydtaylor/ncpbridge/pkg/middleware/logger"
	hmetrics "github.com/joeydtaylor/ncpbridge/pkg/middleware/metrics"
	"github.com/joeydtaylor/ncpbridge/pkg/ncp"
	httpx "github.com/joeydtaylor/ncpbridge/pkg/transport/httpx"
	"go.uber.org/zap"
)

type BuildDeps struct {
	Processor *ncp.Processor
	Profile   feature.Profile
	Auth      *auth.Middleware
	LogMW     *logger.Middleware
	Metrics   http.Handler
	Router    httpx.Router
	Logger    *zap.Logger
	Timeout   time.Duration
}

type server struct {
	proc    *ncp.Processor
	profile feature.Profile
	auth    *auth.Middleware
	log     *zap.Logger
	tid     atomic.Uint32
}

func BuildRouter(d BuildDeps) http.Handler {
	s := &server{proc: d.Processor, profile: d.Profile, auth: d.Auth, log: d.Logger}
	if s.log == nil {
		s.log = zap.NewNop()
	}

	r := d.Router
	r.Use(chimd.RequestID, chimd.Recoverer, chimd.Heartbeat("/ping"))
	if d.Auth != nil {
		r.Use(d.Auth.Middleware())
	}
	if d.LogMW != nil {
		r.Use(d.LogMW.Middleware(d.Auth))
	}
	r.Use(hmetrics.Collect(d.Auth))

	if d.Metrics != nil {
		r.Get("/metrics", d.Metrics)
	}
	r.Get("/v1/registry", http.HandlerFunc(s.registry))

	r.Post("/v1/frames", withTimeout(s.frames, d.Timeout))
	r.Get("/v1/properties/{key}", withTimeout(s.property(dispatch.Get), d.Timeout))
	r.Put("/v1/properties/{key}", s.writer(withTimeout(s.property(dispatch.Set), d.Timeout)))
	r.Post("/v1/properties/{key}/items", s.writer(withTimeout(s.property(dispatch.Insert), d.Timeout)))
	r.Delete("/v1/properties/{key}/items", s.writer(withTimeout(s.property(dispatch.Remove), d.Timeout)))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "no route for " + r.URL.Path})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: r.Method + " not allowed on " + r.URL.Path})
	})

	return r.Mux()
}

func (s *server) writer(next http.HandlerFunc) http.Handler {
	if s.auth == nil {
		return next
	}
	return s.auth.RequireWriter()(next)
}

// canWrite mirrors RequireWriter for routes that only learn whether they
// mutate after decoding the body.
func (s *server) canWrite(w http.ResponseWriter, r *http.Request) bool {
	if s.auth == nil || s.auth.CanWrite(r.Context()) {
		return true
	}
	if !s.auth.IsAuthenticated(r.Context()) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false
	}
	http.Error(w, "Forbidden", http.StatusForbidden)
	return false
}

// nextTID cycles 1..15; TID 0 is reserved for unsolicited frames.
func (s *server) nextTID() uint8 {
	return uint8(s.tid.Add(1)%15) + 1
}

func withTimeout(next http.HandlerFunc, d time.Duration) http.HandlerFunc {
	if d <= 0 {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), d)
		defer cancel()
		next(w, r.WithContext(ctx))
	}
}
