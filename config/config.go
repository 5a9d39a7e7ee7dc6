// Package config loads engine configuration: where rule bundles live,
// the claimsV1 property override, the audit database path, and log
// verbosity. It follows the same Viper precedence the rest of the pack
// uses: defaults, then config file, then environment variables.
package config

// Config is the engine's full configuration surface.
type Config struct {
	Rules    RulesConfig    `mapstructure:"rules"`
	Database DatabaseConfig `mapstructure:"database"`
	Logic    LogicConfig    `mapstructure:"logic"`
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
}

// RulesConfig points at the rule bundle this engine saturates against.
type RulesConfig struct {
	// BundleDir is a local directory of rule files, watched for
	// hot-reload when Watch is true. Without BundleURL its rule files are
	// loaded directly and no bundle.toml manifest is read; with BundleURL
	// it receives the fetched bundle, loaded through its manifest.
	BundleDir string `mapstructure:"bundle_dir"`
	// BundleURL is a remote source (http(s):// or git::) fetched into
	// BundleDir on startup when non-empty; see bundle.Fetch.
	BundleURL string `mapstructure:"bundle_url"`
	// AcceptedVersions is the semver constraint the engine checks a
	// fetched bundle's manifest version against before loading it.
	AcceptedVersions string `mapstructure:"accepted_versions"`
	// Watch enables fsnotify-based hot-reload of BundleDir.
	Watch bool `mapstructure:"watch"`
}

// DatabaseConfig configures the audit SQLite database.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogicConfig overrides the explicit-ethos reification predicate, per
// the claimsV1 Open Question. There is no equivalent LogicProperty
// override: the logicV1 property a presentation carries its proof
// under is extracted entirely by the external Expander oracle before
// the core ever sees it (spec.md §1), so the core has nothing to
// thread such a setting through.
type LogicConfig struct {
	ClaimsProperty string `mapstructure:"claims_property"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Verbosity int    `mapstructure:"verbosity"`
	Theme     string `mapstructure:"theme"`
	JSON      bool   `mapstructure:"json"`
}

// ServerConfig configures the HTTP/WebSocket surface.
type ServerConfig struct {
	Port               int      `mapstructure:"port"`
	AllowedOrigins     []string `mapstructure:"allowed_origins"`
	RateLimitPerSecond float64  `mapstructure:"rate_limit_per_second"`
	RateLimitBurst     int      `mapstructure:"rate_limit_burst"`
}

const (
	// DefaultServerPort is the HTTP server's default listen port.
	DefaultServerPort = 8770
)
