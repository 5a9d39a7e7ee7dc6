package bundle

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/rule"
)

const manifestFilename = "bundle.toml"

// Bundle is a loaded rule bundle: its manifest plus the rules its
// files contain, in manifest-declared order (which fixes ProofStep's
// RuleIndex numbering).
type Bundle struct {
	Manifest Manifest
	Rules    []rule.Rule
	Dir      string
}

// Load fetches src into dir if it's remote, parses dir's bundle.toml,
// checks its version against acceptedConstraint, and parses the rule
// files it names.
func Load(ctx context.Context, src, dir, acceptedConstraint string, log *zap.SugaredLogger) (Bundle, error) {
	if err := Fetch(ctx, src, dir, log); err != nil {
		return Bundle{}, err
	}

	manifestPath := filepath.Join(dir, manifestFilename)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return Bundle{}, errors.Wrapf(err, "read bundle manifest %s", manifestPath)
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		return Bundle{}, err
	}

	if acceptedConstraint != "" {
		if err := CheckVersion(manifest, acceptedConstraint); err != nil {
			return Bundle{}, err
		}
	}

	var rules []rule.Rule
	for _, path := range manifest.FilePaths(dir) {
		contents, err := os.ReadFile(path)
		if err != nil {
			return Bundle{}, errors.Wrapf(err, "read rule file %s", path)
		}
		parsed, _, err := rule.ParseYAML(contents)
		if err != nil {
			return Bundle{}, errors.Wrapf(err, "parse rule file %s", path)
		}
		rules = append(rules, parsed...)
	}

	return Bundle{Manifest: manifest, Rules: rules, Dir: dir}, nil
}
