/*
PURPOSE:
  Appends run results to a text log file.
  Each run is one block: a timestamp line, the tabular result lines, and a
  blank separator line.

REQUIREMENTS:
  User-specified:
  - Append-only; a log file accumulates runs, never replaces them.
  - Timestamp line first, blank line last.

  Implementation-discovered:
  - Open/append/close per run keeps the handle lifetime trivial; telemetry
    runs write exactly once.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (telemetry command)
  - Consumes: the rendered table from table.go

ERROR HANDLING:
  - Returns error on open or write failure; the CLI reports it but a run
    that measured successfully is not failed by a bad log path.

IMPLEMENTATION RULES:
  - The timestamp format matches wall-clock readability, not RFC 3339;
    this file is for humans tailing it.

USAGE:
  err := output.AppendRunLog("telemetry.log", body)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/output/table.go

MAINTENANCE:
  - None expected.
*/

package output

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// runLogStamp is the header format for each appended block.
const runLogStamp = "2006-01-02 15:04:05"

// AppendRunLog appends one run block to the log at path, creating the file
// if needed. body is the already-rendered result table.
func AppendRunLog(path, body string) error {
	return appendRunLog(path, body, time.Now())
}

func appendRunLog(path, body string, now time.Time) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open run log %s: %w", path, err)
	}
	defer f.Close()

	block := now.Format(runLogStamp) + "\n" + strings.TrimRight(body, "\n") + "\n\n"
	if _, err := f.WriteString(block); err != nil {
		return fmt.Errorf("failed to append to run log %s: %w", path, err)
	}
	return nil
}
