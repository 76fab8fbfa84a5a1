/*
PURPOSE:
  Provides a structured logger for Rook Runner.
  Wraps slog for consistent diagnostics.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy.
  - Result tables go to stdout; diagnostics must not mix into them.

  Implementation-discovered:
  - Needs a verbose mode that surfaces per-command protocol traffic.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).
  - Handler writes to stderr so stdout stays a clean result stream.

USAGE:
  output.Logger.Info("message", "key", "value")

SELF-HEALING INSTRUCTIONS:
  - Ensure Go 1.21+ is used.

RELATED FILES:
  - All.

MAINTENANCE:
  - JSON handler for non-interactive use, if anyone asks for it.
*/

package output

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// Configure installs the process-wide logger. Verbose drops the level to
// Debug, which includes engine stderr lines and protocol traffic.
func Configure(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// SetLogger allows overriding the default logger (e.g. for testing)
func SetLogger(l *slog.Logger) {
	Logger = l
}
