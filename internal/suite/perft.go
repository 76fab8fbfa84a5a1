/*
PURPOSE:
  Loads perft suite files into ordered case records.
  Format: one case per line, `<position>|<depth>|<expected node count>`.

REQUIREMENTS:
  User-specified:
  - Preserve file order; it defines execution order.
  - Blank lines and `#` comments are ignored.

  Implementation-discovered:
  - A malformed line must fail the whole load. Half a suite is worse than
    none: a silently dropped case looks like a passing run.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Produces: internal/model.PerftCase

ERROR HANDLING:
  - Errors name the file and line number of the offending record.

IMPLEMENTATION RULES:
  - Positions are opaque strings here. The engines interpret them; the
    loader only rejects an empty one.

USAGE:
  cases, err := suite.LoadPerft("suites/standard.perft")

SELF-HEALING INSTRUCTIONS:
  - If a suite fails to load, the error points at the exact line.

RELATED FILES:
  - internal/suite/epd.go - the tactical suite format.

MAINTENANCE:
  - Update if the record format grows fields.
*/

package suite

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/daryltucker/rook-runner/internal/model"
)

// LoadPerft reads a perft suite file. It returns the full ordered case list
// or an error; there is no partial-suite recovery.
func LoadPerft(path string) ([]model.PerftCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cases []model.PerftCase
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: want <position>|<depth>|<nodes>, got %d field(s)", path, lineNo, len(fields))
		}

		fen := strings.TrimSpace(fields[0])
		if fen == "" {
			return nil, fmt.Errorf("%s:%d: empty position", path, lineNo)
		}

		depth, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad depth %q: %w", path, lineNo, fields[1], err)
		}
		if depth <= 0 {
			return nil, fmt.Errorf("%s:%d: depth must be positive, got %d", path, lineNo, depth)
		}

		nodes, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad node count %q: %w", path, lineNo, fields[2], err)
		}

		cases = append(cases, model.PerftCase{FEN: fen, Depth: depth, Nodes: nodes})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return cases, nil
}
