/*
PURPOSE:
  Defines the 'tactical' subcommand.
  Scores the engine's best moves against a puzzle suite's answer key.

REQUIREMENTS:
  User-specified:
  - One interactive session serves the whole suite.
  - Expected moves resolve through the notation converter; failures are
    logged and omitted, never fatal.
  - quick mode: first 10 cases at depth 3. full mode: whole file at
    depth 6. --depth and --limit override either.
  - Exit 1 only with --fail-on-miss and an imperfect score.

  Implementation-discovered:
  - Session teardown must run on every exit path; defer owns it.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.RunTactical()
  - Uses: internal/suite, internal/engine (Session, SanResolver)

ERROR HANDLING:
  - Missing binaries or suite are setup errors (exit 2).
  - A session failure (handshake, write, read timeout) aborts with exit 1.

IMPLEMENTATION RULES:
  - Per-case lines and the summary go to stdout; diagnostics to stderr.

USAGE:
  rook-runner tactical suites/smoke.epd --engine ./rook --converter ./san2uci

SELF-HEALING INSTRUCTIONS:
  - A handshake timeout means the engine binary does not speak the
    protocol; try it by hand first.

RELATED FILES:
  - internal/engine/session.go
  - internal/engine/tactical.go

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
	tacticalEngine     string
	tacticalConverter  string
	tacticalMode       string
	tacticalDepth      int
	tacticalLimit      int
	tacticalTimeout    time.Duration
	tacticalJSONL      string
	tacticalFailOnMiss bool
)

var tacticalCmd = &cobra.Command{
	Use:   "tactical <epd-file>",
	Short: "Score best moves against a tactical puzzle suite",
	Long: `Loads an EPD-like puzzle suite and asks the engine for its best move on
each position over one interactive session. Expected moves are translated
from algebraic to coordinate form by the converter binary; a case is solved
when the engine's move lands in the resolved set.

Modes: quick runs the first 10 cases at depth 3, full runs the whole file
at depth 6 (counts and depths configurable). The solve rate is informational
unless --fail-on-miss is set.`,
	Example: `  # Smoke run
  rook-runner tactical suites/smoke.epd --engine ./rook --converter ./san2uci

  # Whole suite, gate the exit status on a perfect score
  rook-runner tactical wac.epd --engine ./rook --converter ./san2uci --mode full --fail-on-miss`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return WrapExitError(ExitSetupError, "failed to load config", err)
		}

		if tacticalEngine == "" {
			tacticalEngine = cfg.EngineBin
		}
		if tacticalConverter == "" {
			tacticalConverter = cfg.ConverterBin
		}
		readTimeout := cfg.ReadTimeout
		if tacticalTimeout > 0 {
			readTimeout = tacticalTimeout
		}

		depth := cfg.QuickDepth
		limit := cfg.QuickLimit
		switch tacticalMode {
		case "quick":
		case "full":
			depth = cfg.FullDepth
			limit = 0
		default:
			return NewExitError(ExitSetupError, fmt.Sprintf("unknown mode %q: want quick or full", tacticalMode))
		}
		if tacticalDepth > 0 {
			depth = tacticalDepth
		}
		if cmd.Flags().Changed("limit") {
			limit = tacticalLimit
		}

		engineBin, err := requireBin(tacticalEngine, "engine")
		if err != nil {
			return err
		}
		converterBin, err := requireBin(tacticalConverter, "converter")
		if err != nil {
			return err
		}

		cases, err := suite.LoadEPD(args[0], limit)
		if err != nil {
			return WrapExitError(ExitSetupError, "failed to load suite", err)
		}
		if len(cases) == 0 {
			return NewExitError(ExitSetupError, fmt.Sprintf("no tactical cases in %s", args[0]))
		}

		sess, err := engine.StartSession(engineBin, readTimeout)
		if err != nil {
			return WrapExitError(ExitSetupError, "failed to start engine", err)
		}
		defer func() {
			if err := sess.Terminate(); err != nil {
				output.Logger.Warn("Engine teardown", "error", err)
			}
		}()
		if err := sess.Initialise(); err != nil {
			return WrapExitError(ExitFailure, "engine handshake failed", err)
		}

		resolver := engine.NewSanResolver(converterBin, cfg.ConvertTimeout)
		opts := engine.TacticalOptions{Depth: depth, Verbose: verbose}
		report, runErr := engine.RunTactical(sess, resolver, cases, opts, cmd.OutOrStdout())

		if tacticalJSONL != "" {
			if err := writeJSONL(tacticalJSONL, report.Rows); err != nil {
				output.Logger.Error("Failed to write JSONL", "path", tacticalJSONL, "error", err)
			}
		}

		if runErr != nil {
			return WrapExitError(ExitFailure, "tactical run aborted", runErr)
		}
		if tacticalFailOnMiss && report.Solved < report.Total {
			return NewExitError(ExitFailure, fmt.Sprintf("missed %d of %d puzzles", report.Total-report.Solved, report.Total))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tacticalCmd)

	tacticalCmd.Flags().StringVar(&tacticalEngine, "engine", "", "Interactive UCI engine binary")
	tacticalCmd.Flags().StringVar(&tacticalConverter, "converter", "", "Move-notation converter binary")
	tacticalCmd.Flags().StringVar(&tacticalMode, "mode", "quick", "Run shape: quick (10 cases, depth 3) or full (whole file, depth 6)")
	tacticalCmd.Flags().IntVar(&tacticalDepth, "depth", 0, "Search depth override")
	tacticalCmd.Flags().IntVar(&tacticalLimit, "limit", 0, "Case-count cap override (0 = no cap)")
	tacticalCmd.Flags().DurationVar(&tacticalTimeout, "timeout", 0, "Per protocol read bound (overrides config)")
	tacticalCmd.Flags().StringVar(&tacticalJSONL, "jsonl", "", "Also write result rows as JSON Lines to this path")
	tacticalCmd.Flags().BoolVar(&tacticalFailOnMiss, "fail-on-miss", false, "Exit 1 when any puzzle is missed")
}
