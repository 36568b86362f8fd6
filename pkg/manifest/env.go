package manifest

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type envOverlay struct {
	Profile      string `env:"NCP_PROFILE"`
	ProfilesFile string `env:"NCP_PROFILES_FILE"`
	LogDir       string `env:"NCP_LOG_DIR"`
	LogLevel     string `env:"NCP_LOG_LEVEL"`
	Listen       string `env:"SERVER_LISTEN_ADDRESS"`
	TLSCert      string `env:"SSL_SERVER_CERTIFICATE"`
	TLSKey       string `env:"SSL_SERVER_KEY"`
	AuthMode     string `env:"AUTH_MODE"`
	DevBypass    *bool  `env:"AUTH_DEV_BYPASS"`
	RelayTopic   string `env:"NCP_RELAY_TOPIC"`
}

// ApplyEnv overlays environment variables onto cfg. Unset variables leave
// the manifest value alone.
func ApplyEnv(cfg *Config) error {
	var e envOverlay
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("manifest: parse env: %w", err)
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.NCP.Profile, e.Profile)
	set(&cfg.NCP.ProfilesFile, e.ProfilesFile)
	set(&cfg.Log.Dir, e.LogDir)
	set(&cfg.Log.Level, e.LogLevel)
	set(&cfg.Server.Listen, e.Listen)
	set(&cfg.Server.TLSCert, e.TLSCert)
	set(&cfg.Server.TLSKey, e.TLSKey)
	set(&cfg.Auth.Mode, e.AuthMode)
	set(&cfg.Relay.Topic, e.RelayTopic)
	if e.DevBypass != nil {
		cfg.Auth.DevBypass = *e.DevBypass
	}
	return nil
}
