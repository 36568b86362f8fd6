package auth

import (
	"os"
	"strings"
	"time"

	"github.com/joeydtaylor/ncpbridge/pkg/manifest"
	"go.uber.org/fx"
)

const (
	ModeOff = manifest.AuthOff
	ModeJWT = manifest.AuthJWT
)

// ProvideAuthentication builds the middleware from [auth]. The HMAC secret
// is read from the environment variable named by secret_env.
func ProvideAuthentication(cfg manifest.Config) *Middleware {
	a := cfg.Auth
	return &Middleware{
		mode:      a.Mode,
		adminRole: a.AdminRole,
		writeRole: a.WriteRole,
		devBypass: a.DevBypass,
		secret:    []byte(strings.TrimSpace(os.Getenv(a.SecretEnv))),
		issuer:    a.Issuer,
		audience:  a.Audience,
		leeway:    time.Duration(a.LeewaySeconds) * time.Second,
	}
}

var Module = fx.Options(
	fx.Provide(ProvideAuthentication),
)
