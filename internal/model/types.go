/*
PURPOSE:
  Defines the core data structures used throughout Rook Runner.
  These models represent suite cases, empirical samples and per-run verdicts.

REQUIREMENTS:
  User-specified:
  - Record node counts, elapsed milliseconds and throughput per case.
  - Carry the expected answers (node counts, move sets) alongside each case.

  Implementation-discovered:
  - Need JSON tags so result rows can be emitted as JSON Lines.
  - Telemetry cases need YAML tags since they live in the config file.

ARCHITECTURE INTEGRATION:
  - Used by: internal/suite, internal/engine, internal/output, internal/config
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs). Loaders and extractors enforce well-formedness;
    a case or sample that exists is complete.

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - A zero bound on a telemetry case means "bound not configured".

USAGE:
  c := model.PerftCase{FEN: "...", Depth: 5, Nodes: 4865609}

SELF-HEALING INSTRUCTIONS:
  - If new metrics are needed, add field and update the table/JSONL writers.

RELATED FILES:
  - internal/output/table.go
  - internal/output/jsonl.go

MAINTENANCE:
  - Update when adding new comparison policies.
*/

package model

import "fmt"

// Statuses assigned by the cross-engine comparison. A row can carry more
// than one, joined with commas ("eq,ref").
const (
	StatusEqual   = "eq"      // subject and reference node counts match
	StatusDiff    = "diff"    // subject and reference disagree
	StatusRef     = "ref"     // subject matches the suite's declared count
	StatusRefDiff = "refdiff" // subject misses the suite's declared count
)

// Classifications assigned by the telemetry gates.
const (
	GatePass = "PASS"
	GateFail = "FAIL"
	GateInfo = "INFO" // no bound configured; measurement is informational
)

// PerftCase is one line of a perft suite file: a position, the depth to
// enumerate, and the published node count for that depth (0 = none declared).
type PerftCase struct {
	FEN   string
	Depth int
	Nodes int64
}

// TelemetryCase is one benchmark position with optional performance bounds.
// These come from configuration, not from a suite file.
type TelemetryCase struct {
	Name      string `yaml:"name"`
	FEN       string `yaml:"fen"`
	Depth     int    `yaml:"depth"`
	MaxTimeMS int64  `yaml:"max_time_ms"`
	MinNPS    int64  `yaml:"min_nps"`
}

// TacticalCase is one puzzle: a position and the set of acceptable moves in
// algebraic notation. ID may be empty; scorers substitute a positional one.
type TacticalCase struct {
	FEN  string
	SANs []string
	ID   string
}

// Ident returns the case's identifier, falling back to a positional one
// built from idx (0-based file order) when the suite declared none. Every
// rendering of a tactical case goes through this so identifiers cannot
// drift between surfaces.
func (c TacticalCase) Ident(idx int) string {
	if c.ID != "" {
		return c.ID
	}
	return fmt.Sprintf("pos-%03d", idx+1)
}

// Sample is the empirical outcome of running one case once. It is only ever
// fully populated; extraction fails instead of building a partial sample.
type Sample struct {
	Nodes  int64 `json:"nodes"`
	TimeMS int64 `json:"time_ms"`
	NPS    int64 `json:"nps"`
}

// VerifyRow is one scored line of a cross-engine comparison run.
type VerifyRow struct {
	RunID        string `json:"run_id"`
	Index        int    `json:"index"`
	FEN          string `json:"fen"`
	Depth        int    `json:"depth"`
	SubjectNodes int64  `json:"subject_nodes"`
	SubjectMS    int64  `json:"subject_ms"`
	RefNodes     int64  `json:"ref_nodes"`
	RefMS        int64  `json:"ref_ms"`
	Status       string `json:"status"`
}

// VerifyReport aggregates a comparison run. AllOK is false as soon as any
// row carries a diff or refdiff status.
type VerifyReport struct {
	RunID string
	Rows  []VerifyRow
	AllOK bool
}

// TelemetryRow is one measured benchmark case with its gate classification.
type TelemetryRow struct {
	RunID  string `json:"run_id"`
	Case   string `json:"case"`
	Depth  int    `json:"depth"`
	Nodes  int64  `json:"nodes"`
	TimeMS int64  `json:"time_ms"`
	NPS    int64  `json:"nps"`
	Status string `json:"status"`
}

// TelemetryReport aggregates a telemetry run. AllOK is false as soon as any
// configured bound fails; whether that affects the exit status is the
// caller's policy decision.
type TelemetryReport struct {
	RunID string
	Rows  []TelemetryRow
	AllOK bool
}

// TacticalRow is one scored puzzle.
type TacticalRow struct {
	RunID    string   `json:"run_id"`
	ID       string   `json:"id"`
	FEN      string   `json:"fen"`
	Expected []string `json:"expected"`
	Got      string   `json:"got"`
	Solved   bool     `json:"solved"`
}

// TacticalReport aggregates a tactical run.
type TacticalReport struct {
	RunID  string
	Rows   []TacticalRow
	Solved int
	Total  int
	Depth  int
}
