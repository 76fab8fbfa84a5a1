/*
PURPOSE:
  Defines the root Cobra command for the Rook Runner CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config and --verbose.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Verbosity must be applied before any subcommand logs.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/rook-runner/main.go
  - Calls: Child commands (verify, telemetry, tactical, inspect, suites)
  - Modifies: the process-wide logger level.

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands, Root is usually empty or helps.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/rook-runner/main.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/rook-runner/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "rook-runner",
		Short: "Verification and benchmarking harness for UCI chess engines",
		Long: `Drives external chess-engine processes through reproducible checks:
perft node counts against a reference engine, throughput gates on fixed
benchmark positions, and best-move agreement with tactical puzzle suites.

Exit codes: 0 = no failing case under the active policy, 1 = at least one
failing case, 2 = setup error (missing binary, unreadable suite, bad flags).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.Configure(verbose)
		},
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./rook_runner.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics (includes engine stderr)")
}
