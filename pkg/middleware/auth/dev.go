package auth

import "net/http"

// devUserFromHeaders reads the caller from X-Dev-* headers. Only consulted
// when [auth].dev_bypass (AUTH_DEV_BYPASS) is set.
func devUserFromHeaders(r *http.Request) User {
	user := r.Header.Get("X-Dev-User")
	if user == "" {
		return User{}
	}
	role := r.Header.Get("X-Dev-Role")
	prov := r.Header.Get("X-Dev-Provider")
	return User{
		Username:             user,
		AuthenticationSource: AuthenticationSource{Provider: prov},
		Role:                 Role{Name: role},
	}
}
