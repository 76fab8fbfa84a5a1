package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/rook-runner/internal/model"
)

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.perft")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPerftSingleCase(t *testing.T) {
	path := writeSuite(t, "start|3|8902\n")

	cases, err := LoadPerft(path)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, model.PerftCase{FEN: "start", Depth: 3, Nodes: 8902}, cases[0])
}

func TestLoadPerftSkipsCommentsAndBlanks(t *testing.T) {
	path := writeSuite(t, `# standard positions
start|3|8902

  # indented comment
r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1|2|2039
`)

	cases, err := LoadPerft(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "start", cases[0].FEN)
	assert.Equal(t, int64(2039), cases[1].Nodes)
}

func TestLoadPerftPreservesOrder(t *testing.T) {
	path := writeSuite(t, "a|1|10\nb|2|20\nc|3|30\n")

	cases, err := LoadPerft(path)
	require.NoError(t, err)
	require.Len(t, cases, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{cases[0].FEN, cases[1].FEN, cases[2].FEN})
}

func TestLoadPerftMalformedLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"non-integer depth", "start|three|8902\n"},
		{"non-integer nodes", "start|3|lots\n"},
		{"too few fields", "start|3\n"},
		{"too many fields", "start|3|8902|extra\n"},
		{"zero depth", "start|0|1\n"},
		{"negative depth", "start|-2|1\n"},
		{"empty position", "|3|8902\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSuite(t, "start|1|20\n"+tt.content)

			cases, err := LoadPerft(path)
			require.Error(t, err)
			assert.Nil(t, cases, "a malformed line must fail the whole load")
			assert.Contains(t, err.Error(), ":2:", "error should name the offending line")
		})
	}
}

func TestLoadPerftMissingFile(t *testing.T) {
	_, err := LoadPerft(filepath.Join(t.TempDir(), "nope.perft"))
	require.Error(t, err)
}
