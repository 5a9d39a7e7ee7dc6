package config

import (
	"github.com/spf13/viper"

	"github.com/dock-labs/rdf2020soundness/term"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("rules.bundle_dir", "./rules")
	v.SetDefault("rules.bundle_url", "")
	v.SetDefault("rules.accepted_versions", ">= 0.1.0")
	v.SetDefault("rules.watch", true)

	v.SetDefault("database.path", "soundness.db")

	v.SetDefault("logic.claims_property", term.ClaimsV1)

	v.SetDefault("log.verbosity", 1)
	v.SetDefault("log.theme", "everforest")
	v.SetDefault("log.json", false)

	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost",
		"https://localhost",
		"http://127.0.0.1",
		"https://127.0.0.1",
	})
	v.SetDefault("server.rate_limit_per_second", 5.0)
	v.SetDefault("server.rate_limit_burst", 10)
}

// BindSensitiveEnvVars explicitly binds configuration likely to be
// supplied only via environment, never committed to a config file.
func BindSensitiveEnvVars(v *viper.Viper) {
	v.BindEnv("rules.bundle_url", "SOUNDNESS_RULES_BUNDLE_URL")
	v.BindEnv("database.path", "SOUNDNESS_DATABASE_PATH")
}
