package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dock-labs/rdf2020soundness/cmd/soundness/commands"
	"github.com/dock-labs/rdf2020soundness/config"
	"github.com/dock-labs/rdf2020soundness/logger"
)

var rootCmd = &cobra.Command{
	Use:   "soundness",
	Short: "Composite-claim soundness checker for verifiable presentations",
	Long: `soundness checks whether a verifiable presentation's composite claims
follow soundly from its individually-signed credentials, given a bundle
of inference rules.

Available commands:
  check   - Verify a presentation and replay its attached proof
  prove   - Search for a proof of a set of goal triples
  serve   - Start the HTTP/WebSocket/MCP server
  version - Print build information`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var cfg *config.Config
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			cfg, _ = config.LoadFromFile(path)
		} else {
			cfg, _ = config.Load()
		}
		if cfg == nil {
			cfg = &config.Config{}
		}

		logger.SetTheme(cfg.Log.Theme)

		verbosity := cfg.Log.Verbosity
		if flagCount, _ := cmd.Flags().GetCount("verbose"); flagCount > 0 {
			verbosity = flagCount
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput || cfg.Log.JSON, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit structured JSON logs instead of console output")
	rootCmd.PersistentFlags().String("config", "", "Path to a soundness.toml config file")

	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.ProveCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
