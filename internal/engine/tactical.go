/*
PURPOSE:
  Tactical scoring: drive one interactive session through a puzzle suite
  and count how many of the engine's best moves land in each puzzle's
  expected-move set.

REQUIREMENTS:
  User-specified:
  - The expected set is built by resolving every algebraic move through the
    converter; failed resolutions are omitted (logged), duplicates collapse.
  - A case is solved iff the returned move is non-empty AND a member of the
    resolved set. A legal-but-unlisted move is a miss.
  - Per-case lines print for misses always, for everything with verbose on.
  - The summary line is `Solved X / Y at depth D`.

  Implementation-discovered:
  - If every expected move fails to resolve the case is unwinnable. That is
    correct: the suite told us nothing checkable, so the engine gets no
    credit.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: Session (BestMove), Resolver

ERROR HANDLING:
  - A session error (write failure, read timeout) aborts the run. An
    engine that exits without answering is a miss, handled inside BestMove.

IMPLEMENTATION RULES:
  - One session serves the whole suite; the caller owns Terminate.
  - Cases without identifiers get positional ones (pos-001, pos-002...).

USAGE:
  report, err := engine.RunTactical(sess, resolver, cases, opts, os.Stdout)

SELF-HEALING INSTRUCTIONS:
  - A run solving 0 cases with every expected set empty points at the
    converter, not the engine.

RELATED FILES:
  - internal/engine/session.go
  - internal/engine/resolver.go

MAINTENANCE:
  - None expected.
*/

package engine

import (
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"

	"github.com/daryltucker/rook-runner/internal/model"
	"github.com/daryltucker/rook-runner/internal/output"
)

// BestMover is the slice of Session the tactical scorer needs.
type BestMover interface {
	BestMove(fen string, depth int) (string, error)
}

// TacticalOptions configures a tactical run.
type TacticalOptions struct {
	Depth   int
	Verbose bool
}

// RunTactical scores every case against the engine's best move, writing
// per-case lines and the summary to w.
func RunTactical(mover BestMover, resolver Resolver, cases []model.TacticalCase, opts TacticalOptions, w io.Writer) (model.TacticalReport, error) {
	report := model.TacticalReport{
		RunID: uuid.New().String(),
		Total: len(cases),
		Depth: opts.Depth,
	}
	output.Logger.Info("Starting tactical run", "run_id", report.RunID, "cases", len(cases), "depth", opts.Depth)

	for idx, c := range cases {
		expected := make(map[string]struct{})
		for _, san := range c.SANs {
			if move, ok := resolver.Resolve(c.FEN, san); ok {
				expected[move] = struct{}{}
			}
		}

		best, err := mover.BestMove(c.FEN, opts.Depth)
		if err != nil {
			return report, fmt.Errorf("case %s: %w", c.Ident(idx), err)
		}

		_, member := expected[best]
		solved := best != "" && member
		if solved {
			report.Solved++
		}

		row := model.TacticalRow{
			RunID:    report.RunID,
			ID:       c.Ident(idx),
			FEN:      c.FEN,
			Expected: sortedMoves(expected),
			Got:      best,
			Solved:   solved,
		}
		report.Rows = append(report.Rows, row)

		if opts.Verbose || !solved {
			fmt.Fprintf(w, "%s: %s expected=%s got=%s\n", row.ID, verdictWord(solved), formatExpected(row.Expected), best)
		}
	}

	fmt.Fprintf(w, "Solved %d / %d at depth %d\n", report.Solved, report.Total, report.Depth)
	return report, nil
}

func sortedMoves(set map[string]struct{}) []string {
	moves := make([]string, 0, len(set))
	for m := range set {
		moves = append(moves, m)
	}
	sort.Strings(moves)
	return moves
}

func formatExpected(moves []string) string {
	if len(moves) == 0 {
		return "none"
	}
	return fmt.Sprintf("%v", moves)
}

func verdictWord(solved bool) string {
	if solved {
		return "OK"
	}
	return "MISS"
}
