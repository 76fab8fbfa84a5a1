/*
PURPOSE:
  Shared plumbing for the run commands: resolving configured binaries
  before a suite starts, and dumping result rows as JSON Lines.

REQUIREMENTS:
  User-specified:
  - A missing binary is a setup error reported before any case runs.

  Implementation-discovered:
  - LookPath covers both bare command names and explicit paths, so the
    same flag accepts "stockfish" and "./build/stockfish".
  - All three run commands share the JSONL dump; one generic helper keeps
    the open/write/close dance out of every RunE.

ARCHITECTURE INTEGRATION:
  - Called by: verify, telemetry, tactical commands
  - Uses: internal/output (JSONL writer)

ERROR HANDLING:
  - requireBin returns ExitError with the setup code and names the flag
    that should have supplied the binary.

IMPLEMENTATION RULES:
  - Helpers stay policy-free; whether a bad JSONL path sinks the run is
    each command's call.

USAGE:
  bin, err := requireBin(verifyEngine, "engine")

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/cli/exit.go - the exit code convention these helpers feed.

MAINTENANCE:
  - New shared command plumbing lands here before growing a third copy.
*/

package cli

import (
	"fmt"
	"os/exec"

	"github.com/daryltucker/rook-runner/internal/output"
)

// requireBin resolves a binary path or command name, producing a setup
// error naming the flag that should have supplied it. Run commands call
// this before touching any case so a missing binary never half-runs a
// suite.
func requireBin(bin, flagName string) (string, error) {
	if bin == "" {
		return "", NewExitError(ExitSetupError, fmt.Sprintf("no binary configured; set --%s or the config file", flagName))
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", WrapExitError(ExitSetupError, fmt.Sprintf("binary for --%s not found", flagName), err)
	}
	return path, nil
}

// writeJSONL writes one JSON line per row to path. A bad path is reported
// as an error; the caller decides whether it sinks the run.
func writeJSONL[T any](path string, rows []T) error {
	w, err := output.NewJSONLWriter(path)
	if err != nil {
		return err
	}
	defer w.Close()
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
