/*
PURPOSE:
  Translates algebraic move descriptions into the engine-native coordinate
  form by shelling out to an external converter, so the tactical scorer can
  test set membership against protocol-level move strings.

REQUIREMENTS:
  User-specified:
  - The converter takes two stdin lines (position, then move) and answers
    with one stdout line. Non-zero exit means "cannot convert".
  - A conversion failure is logged and omitted, never fatal: it can make a
    case unwinnable, but it cannot abort a run.

  Implementation-discovered:
  - Suites repeat positions and moves; cache resolutions keyed by
    (position, move) so repeats cost a map lookup, not a process spawn.
    Failures are cached too; the converter is deterministic.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (tactical scorer)
  - Uses: RunScript for the actual process invocation

ERROR HANDLING:
  - None surfaces to callers; the second return value says whether a
    coordinate move exists.

IMPLEMENTATION RULES:
  - Empty converter output counts as a failed conversion.

USAGE:
  r := engine.NewSanResolver(cfg.ConverterBin, cfg.ConvertTimeout)
  move, ok := r.Resolve(fen, "Qg4")

SELF-HEALING INSTRUCTIONS:
  - If every move fails to resolve, run the converter by hand with two
    input lines and look at its stderr.

RELATED FILES:
  - internal/engine/tactical.go

MAINTENANCE:
  - None expected.
*/

package engine

import (
	"strings"
	"time"

	"github.com/daryltucker/rook-runner/internal/output"
)

// Resolver turns an algebraic move on a position into coordinate form.
type Resolver interface {
	Resolve(fen, san string) (string, bool)
}

type resolveKey struct {
	fen, san string
}

type resolution struct {
	move string
	ok   bool
}

// SanResolver shells out to a converter binary, one process per new
// (position, move) pair.
type SanResolver struct {
	Bin     string
	Timeout time.Duration

	run   func(bin, script string, timeout time.Duration) (OneShot, error)
	cache map[resolveKey]resolution
}

// NewSanResolver builds a resolver around the converter at bin.
func NewSanResolver(bin string, timeout time.Duration) *SanResolver {
	return &SanResolver{
		Bin:     bin,
		Timeout: timeout,
		run:     RunScript,
		cache:   make(map[resolveKey]resolution),
	}
}

// Resolve returns the coordinate form of san on fen. ok is false when the
// converter rejected the move or produced nothing.
func (r *SanResolver) Resolve(fen, san string) (string, bool) {
	key := resolveKey{fen: fen, san: san}
	if res, hit := r.cache[key]; hit {
		return res.move, res.ok
	}
	res := r.convert(fen, san)
	r.cache[key] = res
	return res.move, res.ok
}

func (r *SanResolver) convert(fen, san string) resolution {
	out, err := r.run(r.Bin, fen+"\n"+san+"\n", r.Timeout)
	if err != nil {
		output.Logger.Warn("move conversion failed", "move", san, "error", err)
		return resolution{}
	}
	move := strings.TrimSpace(out.Stdout)
	if move == "" {
		output.Logger.Warn("move conversion produced no output", "move", san)
		return resolution{}
	}
	return resolution{move: move, ok: true}
}
