package metrics

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

var (
	skipMu    sync.RWMutex
	skipPaths = map[string]struct{}{"/metrics": {}, "/ping": {}}

	normMu         sync.RWMutex
	pathNormalizer = routePattern
)

// AddMetricsSkipPaths lets callers extend the skip list.
func AddMetricsSkipPaths(paths ...string) {
	skipMu.Lock()
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p != "" {
			skipPaths[p] = struct{}{}
		}
	}
	skipMu.Unlock()
}

// SetPathNormalizer replaces the URI label function. The default uses the
// matched chi route pattern and falls back to the raw path.
func SetPathNormalizer(fn func(*http.Request) string) {
	if fn == nil {
		return
	}
	normMu.Lock()
	pathNormalizer = fn
	normMu.Unlock()
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

func isSkipPath(r *http.Request) bool {
	skipMu.RLock()
	_, ok := skipPaths[r.URL.Path]
	skipMu.RUnlock()
	return ok
}

func normalizePath(r *http.Request) string {
	normMu.RLock()
	fn := pathNormalizer
	normMu.RUnlock()
	return fn(r)
}
