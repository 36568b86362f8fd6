package logger

import (
	"net/http"
	"strings"
	"sync"
)

const maxLoggedBody = 4 << 10

var (
	bodyLogMu       sync.RWMutex
	bodyLogPrefixes = map[string]struct{}{
		"/v1/properties/": {},
	}
)

// AddBodyLogPaths extends the set of path prefixes whose JSON bodies are
// logged.
func AddBodyLogPaths(prefixes ...string) {
	bodyLogMu.Lock()
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p != "" {
			bodyLogPrefixes[p] = struct{}{}
		}
	}
	bodyLogMu.Unlock()
}

// bodyLoggable reports whether r is a mutating JSON request on an
// allowlisted prefix. Bodies above maxLoggedBody are still skipped.
func bodyLoggable(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return false
	}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return false
	}
	bodyLogMu.RLock()
	defer bodyLogMu.RUnlock()
	for p := range bodyLogPrefixes {
		if strings.HasPrefix(r.URL.Path, p) {
			return true
		}
	}
	return false
}
