package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dock-labs/rdf2020soundness/config"
)

const axiomRuleYAML = `
rules:
  - label: axiom
    then:
      - subject: {iri: "https://example.com/a"}
        predicate: {iri: "https://example.com/frobs"}
        object: {iri: "https://example.com/b"}
`

func TestRunProveFindsAxiomaticGoal(t *testing.T) {
	config.Reset()
	presentationPath, _ := writeFixture(t)

	rulesDir := filepath.Join(t.TempDir(), "rules")
	require.NoError(t, os.MkdirAll(rulesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(rulesDir, "axiom.yaml"), []byte(axiomRuleYAML), 0o644))

	configPath := filepath.Join(t.TempDir(), "soundness.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[rules]\nbundle_dir = \""+rulesDir+"\"\n"), 0o644))

	goals := []map[string]any{
		{
			"Subject":   map[string]string{"Iri": "https://example.com/a"},
			"Predicate": map[string]string{"Iri": "https://example.com/frobs"},
			"Object":    map[string]string{"Iri": "https://example.com/b"},
		},
	}
	goalsPath := filepath.Join(t.TempDir(), "goals.json")
	encoded, err := json.Marshal(goals)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(goalsPath, encoded, 0o644))

	root := testRoot()
	root.SetArgs([]string{"prove", "--config", configPath, presentationPath, goalsPath})
	require.NoError(t, root.Execute())
}

func TestRunProveRejectsMalformedGoalsFile(t *testing.T) {
	config.Reset()
	presentationPath, configPath := writeFixture(t)

	goalsPath := filepath.Join(t.TempDir(), "goals.json")
	require.NoError(t, os.WriteFile(goalsPath, []byte("not json"), 0o644))

	root := testRoot()
	root.SetArgs([]string{"prove", "--config", configPath, presentationPath, goalsPath})
	require.Error(t, root.Execute())
}
