package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/rook-runner/internal/model"
)

func TestRenderVerifyRows(t *testing.T) {
	report := model.VerifyReport{
		Rows: []model.VerifyRow{
			{Index: 1, FEN: "start", Depth: 3, SubjectNodes: 8902, SubjectMS: 4, RefNodes: 8902, RefMS: 7, Status: "eq,ref"},
			{Index: 2, FEN: "kiwipete", Depth: 2, SubjectNodes: 2040, SubjectMS: 1, RefNodes: 2039, RefMS: 2, Status: "diff"},
		},
	}

	rendered := RenderVerify(report)
	assert.Contains(t, rendered, "POSITION")
	assert.Contains(t, rendered, "eq,ref")
	assert.Contains(t, rendered, "diff")
	assert.Contains(t, rendered, "8902")
	assert.Contains(t, rendered, "kiwipete")

	// One header, two data rows, plus border lines.
	lines := strings.Split(rendered, "\n")
	require.Len(t, lines, 6)
}

func TestRenderTelemetryRows(t *testing.T) {
	report := model.TelemetryReport{
		Rows: []model.TelemetryRow{
			{Case: "startpos-d6", Depth: 6, Nodes: 119060324, TimeMS: 5000, NPS: 23812064, Status: "PASS"},
			{Case: "startpos-d7", Depth: 7, Nodes: 3195901860, TimeMS: 61000, NPS: 52391833, Status: "FAIL"},
		},
	}

	rendered := RenderTelemetry(report)
	assert.Contains(t, rendered, "startpos-d6")
	assert.Contains(t, rendered, "PASS")
	assert.Contains(t, rendered, "FAIL")
	assert.Contains(t, rendered, "3195901860")
}

func TestRenderEmptyReports(t *testing.T) {
	// Header-only tables, no panic.
	assert.Contains(t, RenderVerify(model.VerifyReport{}), "STATUS")
	assert.Contains(t, RenderTelemetry(model.TelemetryReport{}), "STATUS")
}
