// Package bundle loads a rule bundle: a directory with a bundle.toml
// manifest (name, version, rule file list) and the rule files it
// names, optionally fetched from a remote source first.
package bundle

import (
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"

	"github.com/dock-labs/rdf2020soundness/errors"
)

// Manifest is a rule bundle's bundle.toml, naming the bundle, its
// version, and the rule files it contains.
type Manifest struct {
	Name    string   `toml:"name"`
	Version string   `toml:"version"`
	Files   []string `toml:"files"`
}

// ParseManifest parses a bundle.toml's contents.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return Manifest{}, errors.Wrap(err, "parse bundle manifest")
	}
	if m.Name == "" {
		return Manifest{}, errors.New("bundle manifest has no name")
	}
	if m.Version == "" {
		return Manifest{}, errors.New("bundle manifest has no version")
	}
	return m, nil
}

// CheckVersion verifies that m's declared version satisfies the given
// semver constraint. An engine should refuse to load rules from a
// bundle it wasn't built to understand rather than saturate against
// them blindly.
func CheckVersion(m Manifest, acceptedConstraint string) error {
	version, err := semver.NewVersion(m.Version)
	if err != nil {
		return errors.Wrapf(err, "bundle %s declares invalid version %q", m.Name, m.Version)
	}

	constraint, err := semver.NewConstraint(acceptedConstraint)
	if err != nil {
		return errors.Wrapf(err, "invalid accepted-version constraint %q", acceptedConstraint)
	}

	if !constraint.Check(version) {
		return errors.Newf("bundle %s version %s does not satisfy %s", m.Name, m.Version, acceptedConstraint)
	}
	return nil
}

// FilePaths returns the manifest's rule files resolved against dir.
func (m Manifest) FilePaths(dir string) []string {
	paths := make([]string, len(m.Files))
	for i, f := range m.Files {
		paths[i] = filepath.Join(dir, f)
	}
	return paths
}
