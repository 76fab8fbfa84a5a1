/*
PURPOSE:
  One-shot invocations of external binaries: launch, feed, capture, reap.
  Perft and telemetry runs use a fresh process per case.

REQUIREMENTS:
  User-specified:
  - Enforce a wall-clock timeout per invocation.
  - A non-zero exit status is a hard error carrying the process's stderr.

  Implementation-discovered:
  - Stdout and stderr must be captured separately so diagnostic noise can
    never satisfy an output pattern.
  - Callers need the measured wall time for the zero-elapsed fallback.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (samplers, resolver)
  - Uses: os/exec with context cancellation

ERROR HANDLING:
  - Timeouts are a distinguished error type carrying the configured bound;
    callers can pick them out with errors.As.

IMPLEMENTATION RULES:
  - Use exec.CommandContext; the context kills an overrunning process.
  - No retries. A flaky engine is a finding, not something to mask.

USAGE:
  out, err := engine.RunArgs(bin, []string{"--fen", fen, "--depth", "6"}, timeout)

SELF-HEALING INSTRUCTIONS:
  - A TimeoutError almost always means the depth is too deep for the bound.

RELATED FILES:
  - internal/engine/extract.go - parses the captured output.

MAINTENANCE:
  - Update if per-invocation environment control becomes necessary.
*/

package engine

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/daryltucker/rook-runner/internal/output"
)

// TimeoutError reports an external process or protocol read exceeding its
// configured bound.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s exceeded %s timeout", e.Op, e.Timeout)
}

func (e *TimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}

// OneShot captures a single run of an external binary.
type OneShot struct {
	Stdout  string
	Stderr  string
	Elapsed time.Duration
}

// RunArgs launches bin with args and waits for exit. A non-zero exit status
// or an overrun of timeout is a hard error.
func RunArgs(bin string, args []string, timeout time.Duration) (OneShot, error) {
	return runOnce(bin, args, "", timeout)
}

// RunScript launches bin with no arguments and feeds script on stdin. Used
// for scripted protocol sessions and the notation converter.
func RunScript(bin, script string, timeout time.Duration) (OneShot, error) {
	return runOnce(bin, nil, script, timeout)
}

func runOnce(bin string, args []string, stdin string, timeout time.Duration) (OneShot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	output.Logger.Debug("exec", "bin", bin, "args", args)
	start := time.Now()
	err := cmd.Run()
	res := OneShot{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Elapsed: time.Since(start),
	}

	if ctx.Err() == context.DeadlineExceeded {
		return res, &TimeoutError{Op: bin, Timeout: timeout}
	}
	if err != nil {
		return res, fmt.Errorf("%s failed: %w: %s", bin, err, strings.TrimSpace(res.Stderr))
	}
	return res, nil
}
