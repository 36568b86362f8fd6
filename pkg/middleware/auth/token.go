package auth

import (
	"errors"
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

type claims struct {
	jwt.RegisteredClaims
	UID   string   `json:"uid"`
	Roles []string `json:"roles"`
	Role  string   `json:"role"`
}

func (m *Middleware) validateToken(raw string) (User, error) {
	if len(m.secret) == 0 {
		return User{}, errors.New("token secret not configured")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(m.leeway),
	)

	var c claims
	tok, err := parser.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return User{}, errors.New("invalid token")
	}

	if m.issuer != "" && c.Issuer != m.issuer {
		return User{}, errors.New("bad issuer")
	}
	if m.audience != "" && !slices.Contains(c.Audience, m.audience) {
		return User{}, errors.New("bad audience")
	}

	username := firstNonEmpty(c.UID, c.Subject)
	if username == "" {
		return User{}, errors.New("missing uid")
	}

	return User{
		Username:             username,
		AuthenticationSource: AuthenticationSource{Provider: "jwt"},
		Role:                 Role{Name: firstNonEmpty(append([]string{c.Role}, c.Roles...)...)},
		Roles:                c.Roles,
	}, nil
}
