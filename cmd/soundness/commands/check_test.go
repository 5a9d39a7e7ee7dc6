package commands

import (
	"crypto/ed25519"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/dock-labs/rdf2020soundness/config"
	"github.com/dock-labs/rdf2020soundness/external"
)

const passthroughRuleYAML = `
rules:
  - label: passthrough
    if_all:
      - subject: {var: s}
        predicate: {var: p}
        object: {var: o}
    then:
      - subject: {var: s}
        predicate: {var: p}
        object: {var: o}
`

// testRoot builds a minimal command tree mirroring main.go's wiring, so
// subcommands see the --config persistent flag the way they do in the
// real binary.
func testRoot() *cobra.Command {
	root := &cobra.Command{Use: "soundness"}
	root.PersistentFlags().String("config", "", "")
	root.AddCommand(CheckCmd, ProveCmd)
	return root
}

// writeFixture writes a rule directory, a signed presentation document
// and a config file pointing at the rule directory to t.TempDir,
// returning the presentation and config paths.
func writeFixture(t *testing.T) (presentationPath, configPath string) {
	t.Helper()

	rulesDir := filepath.Join(t.TempDir(), "rules")
	require.NoError(t, os.MkdirAll(rulesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(rulesDir, "passthrough.yaml"), []byte(passthroughRuleYAML), 0o644))

	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	holder := external.EncodeDIDKey(pub)

	envelope, err := external.SignEnvelope(holder, priv, "irrelevant")
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(envelope, &doc))
	doc["credentials"] = json.RawMessage(`[{"Issuer": "https://example.com/issuers/c1", "Claims": [
		{"Subject": {"Iri": "https://example.com/joe"}, "Predicate": {"Iri": "https://example.com/says"}, "Object": {"Iri": "https://example.com/hi"}}
	]}]`)
	doc["logic"] = json.RawMessage(`[]`)

	encoded, err := json.Marshal(doc)
	require.NoError(t, err)

	dir := t.TempDir()
	presentationPath = filepath.Join(dir, "presentation.json")
	require.NoError(t, os.WriteFile(presentationPath, encoded, 0o644))

	configPath = filepath.Join(dir, "soundness.toml")
	tomlContents := "[rules]\nbundle_dir = \"" + rulesDir + "\"\n"
	require.NoError(t, os.WriteFile(configPath, []byte(tomlContents), 0o644))

	return presentationPath, configPath
}

func TestRunCheckAcceptsValidPresentation(t *testing.T) {
	config.Reset()
	presentationPath, configPath := writeFixture(t)

	root := testRoot()
	root.SetArgs([]string{"check", "--config", configPath, presentationPath})
	require.NoError(t, root.Execute())
}

func TestRunCheckRejectsMissingPresentationFile(t *testing.T) {
	config.Reset()
	root := testRoot()
	root.SetArgs([]string{"check", "/no/such/file.json"})
	require.Error(t, root.Execute())
}
