package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/rook-runner/internal/model"
)

func TestGateClassification(t *testing.T) {
	tests := []struct {
		name string
		c    model.TelemetryCase
		s    model.Sample
		want string
	}{
		{
			name: "throughput exactly at the bound passes",
			c:    model.TelemetryCase{MinNPS: 20_000_000},
			s:    model.Sample{NPS: 20_000_000},
			want: "PASS",
		},
		{
			name: "one below the bound fails",
			c:    model.TelemetryCase{MinNPS: 20_000_000},
			s:    model.Sample{NPS: 19_999_999},
			want: "FAIL",
		},
		{
			name: "elapsed exactly at the bound passes",
			c:    model.TelemetryCase{MaxTimeMS: 60_000},
			s:    model.Sample{TimeMS: 60_000},
			want: "PASS",
		},
		{
			name: "one over the bound fails",
			c:    model.TelemetryCase{MaxTimeMS: 60_000},
			s:    model.Sample{TimeMS: 60_001},
			want: "FAIL",
		},
		{
			name: "no bounds is informational",
			c:    model.TelemetryCase{},
			s:    model.Sample{NPS: 1, TimeMS: 999_999_999},
			want: "INFO",
		},
		{
			name: "bounds judge independently",
			c:    model.TelemetryCase{MinNPS: 20_000_000, MaxTimeMS: 60_000},
			s:    model.Sample{NPS: 25_000_000, TimeMS: 70_000},
			want: "PASS,FAIL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Gate(tt.c, tt.s))
		})
	}
}

type measureFunc func(fen string, depth int) (model.Sample, error)

func (f measureFunc) Measure(fen string, depth int) (model.Sample, error) {
	return f(fen, depth)
}

func TestRunTelemetry(t *testing.T) {
	cases := []model.TelemetryCase{
		{Name: "fast", FEN: "a", Depth: 6, MinNPS: 100},
		{Name: "slow", FEN: "b", Depth: 7, MaxTimeMS: 10},
		{Name: "watch", FEN: "c", Depth: 5},
	}
	sampler := measureFunc(func(fen string, depth int) (model.Sample, error) {
		switch fen {
		case "a":
			return model.Sample{Nodes: 1000, TimeMS: 5, NPS: 200}, nil
		case "b":
			return model.Sample{Nodes: 1000, TimeMS: 50, NPS: 20}, nil
		default:
			return model.Sample{Nodes: 1000, TimeMS: 1, NPS: 1}, nil
		}
	})

	report, err := RunTelemetry(sampler, cases)
	require.NoError(t, err)
	require.Len(t, report.Rows, 3)
	assert.Equal(t, "PASS", report.Rows[0].Status)
	assert.Equal(t, "FAIL", report.Rows[1].Status)
	assert.Equal(t, "INFO", report.Rows[2].Status)
	assert.False(t, report.AllOK)
	assert.NotEmpty(t, report.RunID)
}

func TestRunTelemetryAllPassing(t *testing.T) {
	cases := []model.TelemetryCase{{Name: "only", FEN: "a", Depth: 6, MinNPS: 10}}
	sampler := measureFunc(func(string, int) (model.Sample, error) {
		return model.Sample{Nodes: 100, TimeMS: 1, NPS: 100}, nil
	})

	report, err := RunTelemetry(sampler, cases)
	require.NoError(t, err)
	assert.True(t, report.AllOK)
}

func TestRunTelemetryAbortsOnProcessError(t *testing.T) {
	cases := []model.TelemetryCase{
		{Name: "ok", FEN: "a", Depth: 6},
		{Name: "boom", FEN: "b", Depth: 7},
		{Name: "never-reached", FEN: "c", Depth: 5},
	}
	sampler := measureFunc(func(fen string, depth int) (model.Sample, error) {
		if fen == "b" {
			return model.Sample{}, errors.New("exit status 1")
		}
		return model.Sample{Nodes: 1, TimeMS: 1, NPS: 1000}, nil
	})

	report, err := RunTelemetry(sampler, cases)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Len(t, report.Rows, 1)
}
