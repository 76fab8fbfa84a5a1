package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunArgsCapturesSeparateStreams(t *testing.T) {
	bin := writeScript(t, `#!/bin/sh
echo "perft depth=3 nodes=8902 time_ms=1 nps=8902000"
echo "debug: scoring tables initialised nodes=999" >&2
`)

	out, err := RunArgs(bin, []string{"--fen", "start", "--depth", "3"}, time.Second)
	require.NoError(t, err)
	assert.Contains(t, out.Stdout, "nodes=8902")
	assert.NotContains(t, out.Stdout, "debug:", "stderr noise must stay out of the parsed stream")
	assert.Contains(t, out.Stderr, "nodes=999")
	assert.Greater(t, out.Elapsed, time.Duration(0))
}

func TestRunArgsNonZeroExit(t *testing.T) {
	bin := writeScript(t, `#!/bin/sh
echo "boom: no such position" >&2
exit 3
`)

	_, err := RunArgs(bin, nil, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom: no such position", "the error carries the process stderr")
	assert.Contains(t, err.Error(), "exit status 3")
}

func TestRunArgsTimeout(t *testing.T) {
	bin := writeScript(t, `#!/bin/sh
sleep 5
`)

	start := time.Now()
	_, err := RunArgs(bin, nil, 100*time.Millisecond)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second, "the overrunning process must be killed")

	var te *TimeoutError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 100*time.Millisecond, te.Timeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunArgsMissingBinary(t *testing.T) {
	_, err := RunArgs("/nonexistent/engine-binary", nil, time.Second)
	require.Error(t, err)
}

func TestRunScriptFeedsStdin(t *testing.T) {
	bin := writeScript(t, `#!/bin/sh
while read line; do
  case "$line" in
    uci) echo "uciok" ;;
    "go perft"*) echo "info string enumerating"; echo "Nodes searched: 8902" ;;
    quit) exit 0 ;;
  esac
done
`)

	out, err := RunScript(bin, "uci\nposition fen start\ngo perft 3\nquit\n", 2*time.Second)
	require.NoError(t, err)
	assert.Contains(t, out.Stdout, "Nodes searched: 8902")
}

func TestSubjectPerftSample(t *testing.T) {
	bin := writeScript(t, `#!/bin/sh
echo "perft depth=3 nodes=8902 time_ms=1 nps=8902000"
`)

	sample, err := SubjectPerft{Bin: bin, Timeout: time.Second}.Sample("start", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(8902), sample.Nodes)
}

func TestSubjectPerftUnparsableOutput(t *testing.T) {
	bin := writeScript(t, `#!/bin/sh
echo "hello"
`)

	_, err := SubjectPerft{Bin: bin, Timeout: time.Second}.Sample("start", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hello")
}

func TestReferencePerftSample(t *testing.T) {
	bin := writeScript(t, `#!/bin/sh
while read line; do
  case "$line" in
    uci) echo "id name reference"; echo "uciok" ;;
    "go perft"*) echo "a2a3: 380"; echo "Nodes searched: 8902" ;;
    quit) exit 0 ;;
  esac
done
`)

	sample, err := ReferencePerft{Bin: bin, Timeout: 2 * time.Second}.Sample("start", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(8902), sample.Nodes)
}

func TestSubjectTelemetryMeasure(t *testing.T) {
	bin := writeScript(t, `#!/bin/sh
echo "perft depth=6 nodes=119060324 time_ms=5000 nps=23812064"
`)

	sample, err := SubjectTelemetry{Bin: bin, Timeout: time.Second}.Measure("start", 6)
	require.NoError(t, err)
	assert.Equal(t, int64(119060324), sample.Nodes)
	assert.Equal(t, int64(5000), sample.TimeMS)
	assert.Equal(t, int64(23812064), sample.NPS)
}
