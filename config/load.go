package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/dock-labs/rdf2020soundness/errors"
)

// DefaultDirPermissions is used when creating the user config directory.
const DefaultDirPermissions = 0o755

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads engine configuration from defaults, config files, and
// environment variables, caching the result.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	globalConfig = &cfg
	return globalConfig, nil
}

// GetViper returns the shared Viper instance for advanced access.
func GetViper() *viper.Viper {
	return initViper()
}

// LoadFromFile loads configuration from a specific TOML file, ignoring
// the environment-variable and search-path precedence chain. Useful for
// tests and for `soundness check --config=path`.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config file %s", configPath)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "unmarshal config from %s", configPath)
	}
	return &cfg, nil
}

// Reset clears the cached configuration. Used by tests.
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("SOUNDNESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	BindSensitiveEnvVars(v)
	SetDefaults(v)
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig walks up from the working directory looking for a
// soundness.toml.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, "soundness.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges config files in precedence order (lowest to
// highest): system, user, project. Environment variables, bound above,
// take precedence over all of them via Viper's own lookup order.
func mergeConfigFiles(v *viper.Viper) {
	homeDir, _ := os.UserHomeDir()

	userDir := filepath.Join(homeDir, ".config", "soundness")
	_ = os.MkdirAll(userDir, DefaultDirPermissions)

	configPaths := []string{
		"/etc/soundness/config.toml",
		filepath.Join(userDir, "config.toml"),
	}

	if project := findProjectConfig(); project != "" {
		configPaths = append(configPaths, project)
	}

	for _, path := range configPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		tmp := viper.New()
		tmp.SetConfigFile(path)
		tmp.SetConfigType("toml")

		if err := tmp.ReadInConfig(); err == nil {
			_ = v.MergeConfigMap(tmp.AllSettings())
		}
	}
}
