package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dock-labs/rdf2020soundness/term"
)

func TestLoadFromFileAppliesDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "soundness.toml")
	contents := `
[rules]
bundle_dir = "/srv/rules"

[database]
path = "/var/lib/soundness/audit.db"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/rules", cfg.Rules.BundleDir)
	assert.Equal(t, "/var/lib/soundness/audit.db", cfg.Database.Path)
	// Untouched sections keep their defaults.
	assert.Equal(t, term.ClaimsV1, cfg.Logic.ClaimsProperty)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
}

func TestLoadFromFileMissingFileFails(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadCachesResult(t *testing.T) {
	Reset()
	defer Reset()

	first, err := Load()
	require.NoError(t, err)

	second, err := Load()
	require.NoError(t, err)

	assert.Same(t, first, second)
}
