/*
PURPOSE:
  Defines the 'verify' subcommand.
  Cross-checks the subject engine's perft counts against a reference
  engine and the suite's declared counts.

REQUIREMENTS:
  User-specified:
  - Run every suite case through both engines in file order.
  - Exit 1 on any disagreement; exit 2 on setup errors.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Verify()
  - Uses: internal/config, internal/suite, internal/output

ERROR HANDLING:
  - A malformed suite or missing binary is a setup error (exit 2).
  - An engine dying mid-suite aborts with exit 1; the completed rows are
    still printed.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Load Suite -> Verify -> Render.

USAGE:
  rook-runner verify suites/standard.perft --engine ./rook --reference stockfish

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daryltucker/rook-runner/internal/config"
	"github.com/daryltucker/rook-runner/internal/engine"
	"github.com/daryltucker/rook-runner/internal/output"
	"github.com/daryltucker/rook-runner/internal/suite"
)

var (
	verifyEngine    string
	verifyReference string
	verifyDepthCap  int
	verifyTimeout   time.Duration
	verifyJSONL     string
)

var verifyCmd = &cobra.Command{
	Use:   "verify <suite-file>",
	Short: "Compare perft node counts against a reference engine",
	Long: `Runs every position in a perft suite through the subject engine (one-shot
--fen/--depth invocation) and a reference UCI engine (scripted 'go perft'),
classifying each case:

  eq/diff      subject vs reference node counts
  ref/refdiff  subject vs the suite's declared count, judged only when the
               case ran at its declared depth and a count was declared

Any diff or refdiff fails the run. A process error (bad exit, unparseable
output, timeout) aborts the remaining suite.`,
	Example: `  # Full suite at declared depths
  rook-runner verify suites/standard.perft --engine ./rook --reference stockfish

  # Cap the depth for a quick pass, keep machine-readable rows
  rook-runner verify suites/standard.perft --engine ./rook --reference stockfish --depth 3 --jsonl verify.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return WrapExitError(ExitSetupError, "failed to load config", err)
		}

		if verifyEngine == "" {
			verifyEngine = cfg.EngineBin
		}
		if verifyReference == "" {
			verifyReference = cfg.ReferenceBin
		}
		timeout := cfg.VerifyTimeout
		if verifyTimeout > 0 {
			timeout = verifyTimeout
		}

		subjectBin, err := requireBin(verifyEngine, "engine")
		if err != nil {
			return err
		}
		referenceBin, err := requireBin(verifyReference, "reference")
		if err != nil {
			return err
		}

		cases, err := suite.LoadPerft(args[0])
		if err != nil {
			return WrapExitError(ExitSetupError, "failed to load suite", err)
		}

		subject := engine.SubjectPerft{Bin: subjectBin, Timeout: timeout}
		reference := engine.ReferencePerft{Bin: referenceBin, Timeout: timeout}
		report, runErr := engine.Verify(subject, reference, cases, engine.VerifyOptions{DepthCap: verifyDepthCap})

		if len(report.Rows) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), output.RenderVerify(report))
		}
		if verifyJSONL != "" {
			if err := writeJSONL(verifyJSONL, report.Rows); err != nil {
				output.Logger.Error("Failed to write JSONL", "path", verifyJSONL, "error", err)
			}
		}

		if runErr != nil {
			return WrapExitError(ExitFailure, "verification aborted", runErr)
		}
		if !report.AllOK {
			return NewExitError(ExitFailure, "perft verification failed")
		}
		output.Logger.Info("All positions verified", "cases", len(report.Rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyEngine, "engine", "", "Subject engine binary (one-shot --fen/--depth interface)")
	verifyCmd.Flags().StringVar(&verifyReference, "reference", "", "Reference UCI engine binary")
	verifyCmd.Flags().IntVar(&verifyDepthCap, "depth", 0, "Cap the executed depth per case (0 = declared depth)")
	verifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 0, "Per-invocation wall-clock bound (overrides config)")
	verifyCmd.Flags().StringVar(&verifyJSONL, "jsonl", "", "Also write result rows as JSON Lines to this path")
}
