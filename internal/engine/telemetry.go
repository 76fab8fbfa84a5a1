/*
PURPOSE:
  Threshold gating: measure the subject binary on fixed benchmark positions
  and judge each configured bound independently.

REQUIREMENTS:
  User-specified:
  - min_nps and max_time_ms are independent bounds; each yields PASS or
    FAIL on its own. A case with no bounds yields INFO.
  - The case table is configuration data handed in by the caller, never a
    constant baked into this package.

  Implementation-discovered:
  - AllOK is advisory: whether a FAIL fails the process exit status is the
    CLI's policy (see the --fail-on-gate flag), not this package's.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: one-shot runner, metric extractor

ERROR HANDLING:
  - A process error aborts the remaining cases, same as verification.

IMPLEMENTATION RULES:
  - A zero bound means "not configured"; gates never compare against zero.

USAGE:
  report, err := engine.RunTelemetry(sampler, cfg.TelemetryCases)

SELF-HEALING INSTRUCTIONS:
  - A FAIL on min_nps with a plausible nodes count usually means a debug
    build of the engine.

RELATED FILES:
  - internal/config/config.go - owns the default case table.

MAINTENANCE:
  - New bound kinds slot into Gate and the TelemetryCase struct.
*/

package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daryltucker/rook-runner/internal/model"
	"github.com/daryltucker/rook-runner/internal/output"
)

// TelemetrySampler produces a full throughput sample for one position.
type TelemetrySampler interface {
	Measure(fen string, depth int) (model.Sample, error)
}

// SubjectTelemetry measures the one-shot subject binary.
type SubjectTelemetry struct {
	Bin     string
	Timeout time.Duration
}

func (s SubjectTelemetry) Measure(fen string, depth int) (model.Sample, error) {
	args := []string{"--fen", fen, "--depth", strconv.Itoa(depth)}
	out, err := RunArgs(s.Bin, args, s.Timeout)
	if err != nil {
		return model.Sample{}, err
	}
	return ParseTelemetry(out.Stdout, out.Elapsed.Milliseconds())
}

// Gate classifies one sample against one case's bounds. Each configured
// bound contributes PASS or FAIL in a fixed order (throughput first); no
// bounds at all yields INFO.
func Gate(c model.TelemetryCase, s model.Sample) string {
	var status []string
	if c.MinNPS > 0 {
		status = append(status, gateWord(s.NPS >= c.MinNPS))
	}
	if c.MaxTimeMS > 0 {
		status = append(status, gateWord(s.TimeMS <= c.MaxTimeMS))
	}
	if len(status) == 0 {
		return model.GateInfo
	}
	return strings.Join(status, ",")
}

func gateWord(ok bool) string {
	if ok {
		return model.GatePass
	}
	return model.GateFail
}

// RunTelemetry measures every case in order. A sampler error aborts the
// run; the returned report carries whatever rows completed first.
func RunTelemetry(sampler TelemetrySampler, cases []model.TelemetryCase) (model.TelemetryReport, error) {
	report := model.TelemetryReport{RunID: uuid.New().String(), AllOK: true}
	output.Logger.Info("Starting telemetry run", "run_id", report.RunID, "cases", len(cases))

	for _, c := range cases {
		sample, err := sampler.Measure(c.FEN, c.Depth)
		if err != nil {
			return report, fmt.Errorf("case %s: %w", c.Name, err)
		}

		status := Gate(c, sample)
		if strings.Contains(status, model.GateFail) {
			report.AllOK = false
		}

		report.Rows = append(report.Rows, model.TelemetryRow{
			RunID:  report.RunID,
			Case:   c.Name,
			Depth:  c.Depth,
			Nodes:  sample.Nodes,
			TimeMS: sample.TimeMS,
			NPS:    sample.NPS,
			Status: status,
		})
		output.Logger.Info("Measured case", "case", c.Name, "nps", sample.NPS, "time_ms", sample.TimeMS, "status", status)
	}

	return report, nil
}
