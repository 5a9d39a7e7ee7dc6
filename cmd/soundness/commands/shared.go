// Package commands implements the soundness CLI's subcommands: check,
// prove, serve, and version.
package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dock-labs/rdf2020soundness/bundle"
	"github.com/dock-labs/rdf2020soundness/config"
	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/external"
	"github.com/dock-labs/rdf2020soundness/logger"
	"github.com/dock-labs/rdf2020soundness/rule"
	"github.com/dock-labs/rdf2020soundness/soundness"
	"github.com/dock-labs/rdf2020soundness/store"
	"github.com/dock-labs/rdf2020soundness/watch"
)

// loadEngineConfig loads the engine config, honoring a --config flag
// override on cmd if one was given.
func loadEngineConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// loadRuleSet resolves cfg.Rules into a rule set: fetching and
// verifying a remote bundle when BundleURL is set, otherwise reading
// every *.yaml/*.yml file in BundleDir directly.
func loadRuleSet(cmd *cobra.Command, cfg *config.Config) ([]rule.Rule, error) {
	log := logger.ComponentLogger("bundle")
	if cfg.Rules.BundleURL != "" {
		b, err := bundle.Load(cmd.Context(), cfg.Rules.BundleURL, cfg.Rules.BundleDir, cfg.Rules.AcceptedVersions, log)
		if err != nil {
			return nil, err
		}
		if logger.ShouldOutput(logger.CurrentVerbosity(), logger.OutputBundleStatus) {
			pterm.Info.Printf("loaded rule bundle %s@%s (%d rules)\n", b.Manifest.Name, b.Manifest.Version, len(b.Rules))
		}
		return b.Rules, nil
	}

	rules, err := watch.LoadDir(cfg.Rules.BundleDir)
	if err != nil {
		return nil, errors.Wrapf(err, "load rule bundle directory %s", cfg.Rules.BundleDir)
	}
	if logger.ShouldOutput(logger.CurrentVerbosity(), logger.OutputBundleStatus) {
		pterm.Info.Printf("loaded %d rules from %s\n", len(rules), cfg.Rules.BundleDir)
	}
	return rules, nil
}

// newDriver builds the soundness.Driver the CLI and server share, wired
// to the demo did:key/JWT verifier and passthrough expander. Swapping in
// a production Verifier/Expander pair needs no change anywhere else.
//
// When cfg.Database.Path is set, newDriver also opens that SQLite
// database (applying migrations) and wires a store.AuditLog as the
// driver's Recorder, so every CheckSoundness replay that validates
// (accepted, or rejected for an unverified assumption) lands a row in
// proof_replays. The returned close func closes that database and must
// be deferred by the caller; it is a no-op when no database path is
// configured.
func newDriver(cfg *config.Config) (*soundness.Driver, func() error, error) {
	driver := soundness.New(external.JWTVerifier{}, external.PassthroughExpander{}, logger.ComponentLogger("soundness"))
	driver.ClaimsProperty = cfg.Logic.ClaimsProperty

	if cfg.Database.Path == "" {
		return driver, func() error { return nil }, nil
	}

	db, err := store.OpenWithMigrations(cfg.Database.Path, logger.ComponentLogger("store"))
	if err != nil {
		return nil, nil, errors.Wrap(err, "open audit database")
	}
	driver.Recorder = store.NewAuditLog(db)

	return driver, db.Close, nil
}
