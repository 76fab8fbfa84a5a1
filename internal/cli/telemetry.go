/*
PURPOSE:
  Defines the 'telemetry' subcommand.
  Measures the subject engine on the configured benchmark positions and
  judges each throughput/latency bound.

REQUIREMENTS:
  User-specified:
  - PASS/FAIL per configured bound, INFO when a case has no bounds.
  - Exit status stays 0 regardless of gate results unless --fail-on-gate
    is set; this command is historically a reporting tool.
  - Optional append-only log: timestamp line, table, blank line.

  Implementation-discovered:
  - The case table comes from config, so site-specific gates need no code
    change.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.RunTelemetry()
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - A process error mid-run aborts with exit 1.
  - A bad log path is reported but does not fail a run that measured fine.

IMPLEMENTATION RULES:
  - The log body is the same rendered table stdout gets; format once.

USAGE:
  rook-runner telemetry --engine ./rook --log telemetry.log

SELF-HEALING INSTRUCTIONS:
  - An empty case table means the config file overrode telemetry_cases
    with an empty list.

RELATED FILES:
  - internal/config/config.go - owns the default case table.

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
)

var (
	telemetryEngine     string
	telemetryTimeout    time.Duration
	telemetryLog        string
	telemetryJSONL      string
	telemetryFailOnGate bool
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Measure throughput and latency against configured gates",
	Long: `Runs the subject engine on each benchmark position from the config's
telemetry_cases table and classifies every configured bound independently:
min_nps yields PASS/FAIL, max_time_ms yields PASS/FAIL, and a case with no
bounds yields INFO.

By default the exit status is 0 even when gates fail; this command reports,
it does not judge. Pass --fail-on-gate to map any FAIL to exit 1.`,
	Example: `  # Measure with the default case table
  rook-runner telemetry --engine ./rook

  # Keep an append-only history and enforce the gates
  rook-runner telemetry --engine ./rook --log telemetry.log --fail-on-gate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return WrapExitError(ExitSetupError, "failed to load config", err)
		}

		if telemetryEngine == "" {
			telemetryEngine = cfg.EngineBin
		}
		timeout := cfg.TelemetryTimeout
		if telemetryTimeout > 0 {
			timeout = telemetryTimeout
		}

		bin, err := requireBin(telemetryEngine, "engine")
		if err != nil {
			return err
		}

		sampler := engine.SubjectTelemetry{Bin: bin, Timeout: timeout}
		report, runErr := engine.RunTelemetry(sampler, cfg.TelemetryCases)

		if len(report.Rows) > 0 {
			body := output.RenderTelemetry(report)
			fmt.Fprintln(cmd.OutOrStdout(), body)
			if telemetryLog != "" {
				if err := output.AppendRunLog(telemetryLog, body); err != nil {
					output.Logger.Error("Failed to append run log", "path", telemetryLog, "error", err)
				}
			}
		}
		if telemetryJSONL != "" {
			if err := writeJSONL(telemetryJSONL, report.Rows); err != nil {
				output.Logger.Error("Failed to write JSONL", "path", telemetryJSONL, "error", err)
			}
		}

		if runErr != nil {
			return WrapExitError(ExitFailure, "telemetry run aborted", runErr)
		}
		if telemetryFailOnGate && !report.AllOK {
			return NewExitError(ExitFailure, "telemetry gates failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(telemetryCmd)

	telemetryCmd.Flags().StringVar(&telemetryEngine, "engine", "", "Subject engine binary (one-shot --fen/--depth interface)")
	telemetryCmd.Flags().DurationVar(&telemetryTimeout, "timeout", 0, "Per-invocation wall-clock bound (overrides config)")
	telemetryCmd.Flags().StringVar(&telemetryLog, "log", "", "Append results to this log file")
	telemetryCmd.Flags().StringVar(&telemetryJSONL, "jsonl", "", "Also write result rows as JSON Lines to this path")
	telemetryCmd.Flags().BoolVar(&telemetryFailOnGate, "fail-on-gate", false, "Exit 1 when any configured gate fails")
}
