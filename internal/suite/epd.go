/*
PURPOSE:
  Loads EPD-like tactical suite files into ordered puzzle records.
  A case line is `<position> bm <move>[,<move>...] ; ... id "<name>" ...`.

REQUIREMENTS:
  User-specified:
  - Only lines carrying a ` bm ` marker and a `;` terminator are cases.
  - Everything else (comments, opcodes we don't know) is skipped silently.

  Implementation-discovered:
  - Real EPD files are full of noise; skipping is the right default here,
    unlike the perft format where a bad line kills the load.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Produces: internal/model.TacticalCase

ERROR HANDLING:
  - Only I/O errors fail the load. Unparseable lines are not cases.

IMPLEMENTATION RULES:
  - Move lists accept both comma and space separation.
  - The identifier is whatever sits inside `id "..."`, empty if absent.

USAGE:
  cases, err := suite.LoadEPD("suites/smoke.epd", 10)

SELF-HEALING INSTRUCTIONS:
  - If a known-good suite parses to zero cases, check the ` bm ` spacing.

RELATED FILES:
  - internal/suite/perft.go

MAINTENANCE:
  - None expected; EPD has looked like this for decades.
*/

package suite

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/daryltucker/rook-runner/internal/model"
)

const bestMoveMarker = " bm "

// LoadEPD parses a tactical suite. limit > 0 caps how many cases are
// returned, preserving file order; limit <= 0 returns every case.
func LoadEPD(path string, limit int) ([]model.TacticalCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cases []model.TacticalCase
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		bm := strings.Index(raw, bestMoveMarker)
		if bm == -1 {
			continue
		}
		fen := strings.TrimSpace(raw[:bm])
		rhs := raw[bm+len(bestMoveMarker):]

		semi := strings.Index(rhs, ";")
		if semi == -1 {
			continue
		}
		sans := strings.Fields(strings.ReplaceAll(rhs[:semi], ",", " "))
		if len(sans) == 0 {
			continue
		}

		id := ""
		if start := strings.Index(rhs, `id "`); start != -1 {
			if end := strings.Index(rhs[start+4:], `"`); end != -1 {
				id = rhs[start+4 : start+4+end]
			}
		}

		cases = append(cases, model.TacticalCase{FEN: fen, SANs: sans, ID: id})
		if limit > 0 && len(cases) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return cases, nil
}
