package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/rook-runner/internal/suite"
)

func TestSuitesInstallWritesLoadableFixtures(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "suites")

	_, err := execute(t, "suites", "install", dir)
	require.NoError(t, err)

	perftCases, err := suite.LoadPerft(filepath.Join(dir, "standard.perft"))
	require.NoError(t, err)
	assert.NotEmpty(t, perftCases)
	for _, c := range perftCases {
		assert.Positive(t, c.Depth)
		assert.Positive(t, c.Nodes)
		assert.NotEmpty(t, c.FEN)
	}

	epdCases, err := suite.LoadEPD(filepath.Join(dir, "smoke.epd"), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, epdCases)
	for _, c := range epdCases {
		assert.NotEmpty(t, c.SANs)
		assert.NotEmpty(t, c.ID)
	}
}
