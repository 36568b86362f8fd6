package manifest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
	"go.uber.org/zap/zapcore"
)

// Validate checks the manifest and normalises values in place.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Listen) == "" {
		return errors.New("server: listen address required")
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		return errors.New("server: tls_cert and tls_key must be set together")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errors.New("log: rotation limits must be >= 0")
	}
	if strings.TrimSpace(c.NCP.Profile) == "" {
		return errors.New("ncp: profile required")
	}

	c.Auth.Mode = strings.ToLower(strings.TrimSpace(c.Auth.Mode))
	switch c.Auth.Mode {
	case "":
		c.Auth.Mode = AuthOff
	case AuthOff:
	case AuthJWT:
		if strings.TrimSpace(c.Auth.SecretEnv) == "" {
			return errors.New("auth: secret_env required for mode=jwt")
		}
	default:
		return fmt.Errorf("auth: unknown mode %q", c.Auth.Mode)
	}
	if c.Auth.LeewaySeconds < 0 {
		return errors.New("auth: leeway_seconds must be >= 0")
	}

	if _, err := c.Seeds(); err != nil {
		return err
	}
	return nil
}

// Seeds decodes [node.values].
func (c *Config) Seeds() (map[spinel.PropKey][]byte, error) {
	out := make(map[spinel.PropKey][]byte, len(c.Node.Values))
	for name, v := range c.Node.Values {
		k, err := spinel.ParsePropKey(name)
		if err != nil {
			return nil, fmt.Errorf("node.values: %w", err)
		}
		b, err := hex.DecodeString(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("node.values %s: %w", name, err)
		}
		if _, dup := out[k]; dup {
			return nil, fmt.Errorf("node.values: %s given twice", k)
		}
		out[k] = b
	}
	return out, nil
}
