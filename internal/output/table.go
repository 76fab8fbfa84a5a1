/*
PURPOSE:
  Renders verification and telemetry reports as text tables.
  The rendered table is the human-facing result surface and doubles as the
  body of the append-only run log.

REQUIREMENTS:
  User-specified:
  - Tabular result lines on stdout.
  - The same lines go into the telemetry log file.

  Implementation-discovered:
  - Rendering to a string (not a writer) lets the CLI print once and log
    once without formatting twice.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Consumes: internal/model report types

ERROR HANDLING:
  - None; rendering cannot fail.

IMPLEMENTATION RULES:
  - Numeric columns align right.
  - Long positions get soft-wrapped, not truncated; a FEN you cannot read
    is a FEN you cannot reproduce.

USAGE:
  fmt.Println(output.RenderVerify(report))

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/output/runlog.go - appends the rendered table to the log.

MAINTENANCE:
  - Update column sets when report rows grow fields.
*/

package output

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/daryltucker/rook-runner/internal/model"
)

// RenderVerify renders a cross-engine comparison report.
func RenderVerify(r model.VerifyReport) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Position", "Depth", "Subject Nodes", "Subject ms", "Ref Nodes", "Ref ms", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Position", WidthMax: 48, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Depth", Align: text.AlignRight},
		{Name: "Subject Nodes", Align: text.AlignRight},
		{Name: "Subject ms", Align: text.AlignRight},
		{Name: "Ref Nodes", Align: text.AlignRight},
		{Name: "Ref ms", Align: text.AlignRight},
	})
	for _, row := range r.Rows {
		t.AppendRow(table.Row{row.Index, row.FEN, row.Depth, row.SubjectNodes, row.SubjectMS, row.RefNodes, row.RefMS, row.Status})
	}
	return t.Render()
}

// RenderTelemetry renders a threshold-gate report.
func RenderTelemetry(r model.TelemetryReport) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Case", "Depth", "Nodes", "Time ms", "NPS", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Depth", Align: text.AlignRight},
		{Name: "Nodes", Align: text.AlignRight},
		{Name: "Time ms", Align: text.AlignRight},
		{Name: "NPS", Align: text.AlignRight},
	})
	for _, row := range r.Rows {
		t.AppendRow(table.Row{row.Case, row.Depth, row.Nodes, row.TimeMS, row.NPS, row.Status})
	}
	return t.Render()
}
