package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dock-labs/rdf2020soundness/errors"
)

// CheckCmd verifies a presentation and replays its attached proof.
var CheckCmd = &cobra.Command{
	Use:   "check <presentation.json>",
	Short: "Verify a presentation and replay its attached proof",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	presentation, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "read presentation %s", args[0])
	}

	cfg, err := loadEngineConfig(cmd)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	rules, err := loadRuleSet(cmd, cfg)
	if err != nil {
		return err
	}

	driver, closeStore, err := newDriver(cfg)
	if err != nil {
		return errors.Wrap(err, "build driver")
	}
	defer closeStore()

	accepted, err := driver.CheckSoundness(presentation, rules)
	if err != nil {
		pterm.Error.Printf("rejected: %s: %s\n", errors.KindOf(err), err.Error())
		return err
	}

	pterm.Success.Printf("accepted: claim graph carries %d triples\n", accepted.Len())
	return nil
}
