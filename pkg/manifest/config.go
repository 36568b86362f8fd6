package manifest

import "github.com/joeydtaylor/ncpbridge/pkg/feature"

// Config is the top-level bridge manifest.
type Config struct {
	Server Server `toml:"server"`
	Log    Log    `toml:"log"`
	NCP    NCP    `toml:"ncp"`
	Auth   Auth   `toml:"auth"`
	Relay  Relay  `toml:"relay"`
	Node   Node   `toml:"node"`
}

type Server struct {
	Listen  string `toml:"listen"`
	TLSCert string `toml:"tls_cert"`
	TLSKey  string `toml:"tls_key"`
}

// Log configures the rotated JSON log files under Dir.
type Log struct {
	Dir        string `toml:"dir"`
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Console    bool   `toml:"console"`
}

// NCP selects the feature profile the dispatch tables are built for.
type NCP struct {
	Profile      string `toml:"profile"`
	ProfilesFile string `toml:"profiles_file"`
	VendorID     uint32 `toml:"vendor_id"`
	Version      string `toml:"version"`
}

// Auth configures bearer-token checks on the HTTP surface.
type Auth struct {
	Mode          string `toml:"mode"` // off | jwt
	Issuer        string `toml:"issuer"`
	Audience      string `toml:"audience"`
	SecretEnv     string `toml:"secret_env"`
	WriteRole     string `toml:"write_role"`
	AdminRole     string `toml:"admin_role"`
	DevBypass     bool   `toml:"dev_bypass"`
	LeewaySeconds int    `toml:"leeway_seconds"`
}

// Relay names the topic property changes are published on. Connection
// settings come from the ELECTRICIAN_* environment.
type Relay struct {
	Topic string `toml:"topic"`
}

// Node seeds the in-memory property store. Keys are property names or
// numbers, values are hex.
type Node struct {
	Values map[string]string `toml:"values"`
}

const (
	AuthOff = "off"
	AuthJWT = "jwt"
)

// Default returns the configuration used when no manifest file exists.
func Default() Config {
	return Config{
		Server: Server{Listen: ":4000"},
		Log: Log{
			Dir:        "log",
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Console:    true,
		},
		NCP: NCP{
			Profile: feature.CompiledProfile,
			Version: "NCPBRIDGE/1.0",
		},
		Auth: Auth{
			Mode:          AuthOff,
			SecretEnv:     "NCP_JWT_SECRET",
			WriteRole:     "operator",
			LeewaySeconds: 60,
		},
		Relay: Relay{Topic: "ncp.property.changed"},
	}
}
