/*
PURPOSE:
  Extracts structured metrics from raw engine output.
  Engines decorate their numbers with arbitrary surrounding text; we only
  require that each key=value token appears somewhere.

REQUIREMENTS:
  User-specified:
  - Perft runs report `nodes=<int>`.
  - Telemetry runs report `nodes=<int>` and `time_ms=<int>`; `nps=<int>` is
    optional and derived when absent.
  - Reference engines summarize with a `Nodes searched: <int>` line.

  Implementation-discovered:
  - Engines omit nps for sub-millisecond runs, and can report time_ms=0.
    Fall back to the measured wall clock, and never divide by zero.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (samplers)
  - Produces: internal/model.Sample

ERROR HANDLING:
  - A missing required field is an error quoting the full output verbatim.
    Silent defaults would turn a broken engine into a passing run.

IMPLEMENTATION RULES:
  - Tokens may appear in any order relative to surrounding text.
  - Scan for the node summary from the end; engines print it last.

USAGE:
  sample, err := engine.ParseTelemetry(out.Stdout, out.Elapsed.Milliseconds())

SELF-HEALING INSTRUCTIONS:
  - If parsing fails, the error contains the exact output that defeated it.

RELATED FILES:
  - internal/engine/oneshot.go - captures the output parsed here.

MAINTENANCE:
  - Update the patterns if the engine output format grows fields.
*/

package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/daryltucker/rook-runner/internal/model"
)

var (
	nodesPattern = regexp.MustCompile(`nodes=(\d+)`)
	timePattern  = regexp.MustCompile(`time_ms=(\d+)`)
	npsPattern   = regexp.MustCompile(`nps=(\d+)`)
)

// ParseNodes extracts the node count from one-shot perft output.
func ParseNodes(text string) (int64, error) {
	m := nodesPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("unable to parse nodes from engine output:\n%s", text)
	}
	return strconv.ParseInt(m[1], 10, 64)
}

// ParseTelemetry extracts nodes, elapsed time and throughput from one-shot
// telemetry output. wallMS is the externally measured wall clock, used when
// the engine reports an elapsed time of zero. Throughput is derived from
// nodes and elapsed time when the engine does not report it.
func ParseTelemetry(text string, wallMS int64) (model.Sample, error) {
	nm := nodesPattern.FindStringSubmatch(text)
	tm := timePattern.FindStringSubmatch(text)
	if nm == nil || tm == nil {
		return model.Sample{}, fmt.Errorf("unable to parse telemetry from engine output:\n%s", text)
	}

	nodes, err := strconv.ParseInt(nm[1], 10, 64)
	if err != nil {
		return model.Sample{}, fmt.Errorf("bad node count %q: %w", nm[1], err)
	}
	timeMS, err := strconv.ParseInt(tm[1], 10, 64)
	if err != nil {
		return model.Sample{}, fmt.Errorf("bad elapsed time %q: %w", tm[1], err)
	}
	if timeMS == 0 {
		timeMS = wallMS
	}

	var nps int64
	if m := npsPattern.FindStringSubmatch(text); m != nil {
		nps, err = strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return model.Sample{}, fmt.Errorf("bad nps %q: %w", m[1], err)
		}
	} else {
		ms := timeMS
		if ms == 0 {
			// sub-millisecond run even by wall clock; clamp the divisor
			ms = 1
		}
		nps = nodes * 1000 / ms
	}

	return model.Sample{Nodes: nodes, TimeMS: timeMS, NPS: nps}, nil
}

// ParseNodesSearched scans reference-engine perft output for the node
// summary line. The summary is the last interesting line, so scan backward;
// a summary line that fails to parse aborts the scan.
func ParseNodesSearched(text string) (int64, error) {
	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if !strings.Contains(lines[i], "Nodes searched:") {
			continue
		}
		_, rest, _ := strings.Cut(lines[i], ":")
		n, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
		if err != nil {
			break
		}
		return n, nil
	}
	return 0, fmt.Errorf("no node summary in engine output:\n%s", text)
}
