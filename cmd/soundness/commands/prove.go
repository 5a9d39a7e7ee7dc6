package commands

import (
	"encoding/json"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/term"
)

// ProveCmd searches for a proof witness reaching a set of goal triples.
var ProveCmd = &cobra.Command{
	Use:   "prove <presentation.json> <goals.json>",
	Short: "Search for a proof of a set of goal triples",
	Args:  cobra.ExactArgs(2),
	RunE:  runProve,
}

func runProve(cmd *cobra.Command, args []string) error {
	presentation, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "read presentation %s", args[0])
	}

	goalData, err := os.ReadFile(args[1])
	if err != nil {
		return errors.Wrapf(err, "read goals %s", args[1])
	}
	var goalTriples []term.Triple
	if err := json.Unmarshal(goalData, &goalTriples); err != nil {
		return errors.Wrapf(err, "parse goals %s", args[1])
	}
	goals := term.NewClaimGraph(goalTriples...)

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

	witness, err := driver.ProveComposite(presentation, goals, rules)
	if err != nil {
		pterm.Error.Printf("cannot prove: %s: %s\n", errors.KindOf(err), err.Error())
		return err
	}

	encoded, err := json.MarshalIndent(witness, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode witness")
	}

	pterm.Success.Printf("found a %d-step proof\n", len(witness))
	cmd.Println(string(encoded))
	return nil
}
