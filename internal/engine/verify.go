/*
PURPOSE:
  Cross-engine perft comparison: run each suite position through the
  subject binary and a reference engine, classify agreement, and flag any
  discrepancy against the suite's declared counts.

REQUIREMENTS:
  User-specified:
  - `eq`/`diff` for subject-vs-reference agreement on every case.
  - `ref`/`refdiff` against the declared count, but only when the case ran
    at its declared depth (a depth cap makes the declared count meaningless)
    and a non-zero count was declared.
  - Either kind of mismatch fails the run.

  Implementation-discovered:
  - A process error (bad exit, parse failure, timeout) aborts the remaining
    suite; a half-verified engine is not a verified engine.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: one-shot runner, metric extractor

ERROR HANDLING:
  - Errors are wrapped with the 1-based case index and position.

IMPLEMENTATION RULES:
  - Samplers are interfaces so the comparison policy is testable without
    spawning processes.

USAGE:
  report, err := engine.Verify(subject, reference, cases, opts)

SELF-HEALING INSTRUCTIONS:
  - A refdiff with eq usually means the suite file's count is wrong, not
    the engines.

RELATED FILES:
  - internal/engine/oneshot.go
  - internal/engine/extract.go

MAINTENANCE:
  - Update if per-move divide comparisons are ever wanted.
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

// PerftSampler produces a node-count sample for one position and depth.
type PerftSampler interface {
	Sample(fen string, depth int) (model.Sample, error)
}

// SubjectPerft samples the one-shot subject binary.
type SubjectPerft struct {
	Bin     string
	Timeout time.Duration
}

func (p SubjectPerft) Sample(fen string, depth int) (model.Sample, error) {
	args := []string{"--fen", fen, "--depth", strconv.Itoa(depth)}
	out, err := RunArgs(p.Bin, args, p.Timeout)
	if err != nil {
		return model.Sample{}, err
	}
	nodes, err := ParseNodes(out.Stdout)
	if err != nil {
		return model.Sample{}, err
	}
	return model.Sample{Nodes: nodes, TimeMS: out.Elapsed.Milliseconds()}, nil
}

// ReferencePerft samples a protocol engine through a scripted run, parsing
// the node summary from its output. Threads are pinned to one so the
// reference is deterministic.
type ReferencePerft struct {
	Bin     string
	Timeout time.Duration
}

func (p ReferencePerft) Sample(fen string, depth int) (model.Sample, error) {
	script := fmt.Sprintf("uci\nsetoption name Threads value 1\nposition fen %s\ngo perft %d\nquit\n", fen, depth)
	out, err := RunScript(p.Bin, script, p.Timeout)
	if err != nil {
		return model.Sample{}, err
	}
	nodes, err := ParseNodesSearched(out.Stdout)
	if err != nil {
		return model.Sample{}, err
	}
	return model.Sample{Nodes: nodes, TimeMS: out.Elapsed.Milliseconds()}, nil
}

// VerifyOptions configures a comparison run.
type VerifyOptions struct {
	// DepthCap caps the executed depth per case; each case runs at
	// min(declared depth, cap). Zero means no cap.
	DepthCap int
}

// Verify runs every case through both samplers in file order and classifies
// the results. A sampler error aborts the run; the returned report carries
// whatever rows completed before the abort.
func Verify(subject, reference PerftSampler, cases []model.PerftCase, opts VerifyOptions) (model.VerifyReport, error) {
	report := model.VerifyReport{RunID: uuid.New().String(), AllOK: true}
	output.Logger.Info("Starting perft verification", "run_id", report.RunID, "cases", len(cases))

	for idx, c := range cases {
		depth := c.Depth
		if opts.DepthCap > 0 && opts.DepthCap < depth {
			depth = opts.DepthCap
		}

		subj, err := subject.Sample(c.FEN, depth)
		if err != nil {
			return report, fmt.Errorf("case %d (%s): subject: %w", idx+1, c.FEN, err)
		}
		ref, err := reference.Sample(c.FEN, depth)
		if err != nil {
			return report, fmt.Errorf("case %d (%s): reference: %w", idx+1, c.FEN, err)
		}

		var statuses []string
		if subj.Nodes == ref.Nodes {
			statuses = append(statuses, model.StatusEqual)
		} else {
			statuses = append(statuses, model.StatusDiff)
			report.AllOK = false
		}
		if depth == c.Depth && c.Nodes != 0 {
			if subj.Nodes == c.Nodes {
				statuses = append(statuses, model.StatusRef)
			} else {
				statuses = append(statuses, model.StatusRefDiff)
				report.AllOK = false
			}
		}
		status := strings.Join(statuses, ",")

		report.Rows = append(report.Rows, model.VerifyRow{
			RunID:        report.RunID,
			Index:        idx + 1,
			FEN:          c.FEN,
			Depth:        depth,
			SubjectNodes: subj.Nodes,
			SubjectMS:    subj.TimeMS,
			RefNodes:     ref.Nodes,
			RefMS:        ref.TimeMS,
			Status:       status,
		})
		output.Logger.Info("Verified position", "case", idx+1, "depth", depth, "status", status)
	}

	return report, nil
}
