package auth

import "time"

type contextKey struct{ name string }

var userCtxKey = &contextKey{"user"}

type Middleware struct {
	mode      string
	adminRole string
	writeRole string
	devBypass bool

	// Bearer token verification
	secret   []byte
	issuer   string
	audience string
	leeway   time.Duration
}
