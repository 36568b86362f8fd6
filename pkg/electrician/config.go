package electrician

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// RelayConfig configures the forward relay. Every field maps to an
// ELECTRICIAN_* or OAUTH_* variable; an empty Targets list disables
// publishing.
type RelayConfig struct {
	Targets []string `env:"ELECTRICIAN_TARGET" envSeparator:","`

	TLSEnable   bool   `env:"ELECTRICIAN_TLS_ENABLE"`
	TLSCert     string `env:"ELECTRICIAN_TLS_CLIENT_CRT" envDefault:"keys/tls/client.crt"`
	TLSKey      string `env:"ELECTRICIAN_TLS_CLIENT_KEY" envDefault:"keys/tls/client.key"`
	TLSCA       string `env:"ELECTRICIAN_TLS_CA" envDefault:"keys/tls/ca.crt"`
	TLSInsecure bool   `env:"ELECTRICIAN_TLS_INSECURE"`

	Compress  string `env:"ELECTRICIAN_COMPRESS"`
	Encrypt   string `env:"ELECTRICIAN_ENCRYPT"`
	AESKeyHex string `env:"ELECTRICIAN_AES256_KEY_HEX"`

	StaticHeaders map[string]string `env:"ELECTRICIAN_STATIC_HEADERS" envKeyValSeparator:"="`

	OAuthIssuer       string        `env:"OAUTH_ISSUER_BASE"`
	OAuthJWKSURL      string        `env:"OAUTH_JWKS_URL"`
	OAuthClientID     string        `env:"OAUTH_CLIENT_ID"`
	OAuthClientSecret string        `env:"OAUTH_CLIENT_SECRET"`
	OAuthScopes       []string      `env:"OAUTH_SCOPES" envSeparator:","`
	OAuthLeeway       time.Duration `env:"OAUTH_REFRESH_LEEWAY" envDefault:"20s"`
	OAuthTokenPath    string        `env:"OAUTH_TOKEN_PATH" envDefault:"/api/auth/oauth/token"`

	// Zero skips the start-up token check.
	OAuthPreflight time.Duration `env:"OAUTH_PREFLIGHT_TIMEOUT"`
}

// LoadRelayConfig reads the relay configuration from the environment.
func LoadRelayConfig() (RelayConfig, error) {
	var c RelayConfig
	if err := env.Parse(&c); err != nil {
		return RelayConfig{}, fmt.Errorf("electrician: parse env: %w", err)
	}
	c.Targets = trimAll(c.Targets)
	c.OAuthScopes = trimAll(c.OAuthScopes)
	return c, nil
}

// Enabled reports whether any relay target is configured.
func (c RelayConfig) Enabled() bool { return len(c.Targets) > 0 }

func (c RelayConfig) useSnappy() bool { return strings.EqualFold(c.Compress, "snappy") }
func (c RelayConfig) useAESGCM() bool { return strings.EqualFold(c.Encrypt, "aesgcm") }

func (c RelayConfig) oauthEnabled() bool {
	return c.OAuthIssuer != "" && c.OAuthClientID != "" && c.OAuthClientSecret != ""
}

// aesKey decodes the AES-256 key when encryption is on.
func (c RelayConfig) aesKey() (string, error) {
	if !c.useAESGCM() {
		return "", nil
	}
	raw, err := hex.DecodeString(strings.TrimSpace(c.AESKeyHex))
	if err != nil || len(raw) != 32 {
		return "", fmt.Errorf("ELECTRICIAN_AES256_KEY_HEX must be 64 hex chars (32 bytes): %v", err)
	}
	return string(raw), nil
}

// Validate checks option combinations before any connection is attempted.
func (c RelayConfig) Validate() error {
	if c.Compress != "" && !c.useSnappy() {
		return fmt.Errorf("electrician: unsupported compression %q", c.Compress)
	}
	if c.Encrypt != "" && !c.useAESGCM() {
		return fmt.Errorf("electrician: unsupported encryption %q", c.Encrypt)
	}
	_, err := c.aesKey()
	return err
}

func trimAll(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
