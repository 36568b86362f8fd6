package auth

import (
	"context"
	"slices"
)

type Role struct {
	Name string `json:"name"`
}

type AuthenticationSource struct {
	Provider string `json:"provider"`
}

// User is the caller attached to the request context. Role is the primary
// role; Roles holds every role the token granted.
type User struct {
	Username             string               `json:"username"`
	AuthenticationSource AuthenticationSource `json:"authenticationSource"`
	Role                 Role                 `json:"role"`
	Roles                []string             `json:"roles,omitempty"`
}

// Has reports whether u holds role, as primary or additional role.
func (u User) Has(role string) bool {
	return role != "" && (u.Role.Name == role || slices.Contains(u.Roles, role))
}

func (m *Middleware) GetUser(ctx context.Context) User {
	if user, ok := ctx.Value(userCtxKey).(User); ok {
		return user
	}
	return User{}
}

// IsRole is true for holders of role and for admins.
func (m *Middleware) IsRole(ctx context.Context, role Role) bool {
	u := m.GetUser(ctx)
	return u.Has(role.Name) || u.Has(m.adminRole)
}

func (m *Middleware) IsAdmin(ctx context.Context) bool {
	return m.GetUser(ctx).Has(m.adminRole)
}

func (m *Middleware) IsAuthenticated(ctx context.Context) bool {
	return m.GetUser(ctx).Username != ""
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
