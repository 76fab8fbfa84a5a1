package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedUCIEngine answers the protocol and records every command it
// receives, so tests can check which depths and how many searches ran.
// Its best move never appears in any suite's answer key.
func scriptedUCIEngine(t *testing.T, logPath string) string {
	t.Helper()
	return writeScript(t, fmt.Sprintf(`#!/bin/sh
while read line; do
  echo "$line" >> "%s"
  case "$line" in
    uci) echo "id name fakefish"; echo "uciok" ;;
    isready) echo "readyok" ;;
    go*) echo "bestmove a1a1" ;;
    quit) exit 0 ;;
  esac
done
`, logPath))
}

// fixedConverter resolves every algebraic move to e2e4.
const fixedConverter = `#!/bin/sh
read fen
read san
echo "e2e4"
`

// writeTacticalSuite writes an EPD file with n one-move cases.
func writeTacticalSuite(t *testing.T, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "f%d w - - bm Nf3; id \"P%02d\";\n", i, i)
	}
	path := filepath.Join(t.TempDir(), "cases.epd")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
	return path
}

func countCommands(t *testing.T, logPath, command string) int {
	t.Helper()
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	return strings.Count(string(data), command)
}

func resetTacticalFlags() {
	tacticalMode = "quick"
	tacticalLimit = 0
	tacticalFailOnMiss = false
	tacticalCmd.Flags().Lookup("limit").Changed = false
}

func TestTacticalQuickModeTenCasesAtDepthThree(t *testing.T) {
	defer resetTacticalFlags()
	logPath := filepath.Join(t.TempDir(), "commands.log")
	engineBin := scriptedUCIEngine(t, logPath)
	converter := writeScript(t, fixedConverter)
	suitePath := writeTacticalSuite(t, 12)

	out, err := execute(t, "tactical", suitePath, "--engine", engineBin, "--converter", converter)
	require.NoError(t, err, "misses alone must not fail the run without --fail-on-miss")
	assert.Contains(t, out, "Solved 0 / 10 at depth 3")
	assert.Equal(t, 10, countCommands(t, logPath, "go depth 3"))
}

func TestTacticalFullModeWholeFileAtDepthSix(t *testing.T) {
	defer resetTacticalFlags()
	logPath := filepath.Join(t.TempDir(), "commands.log")
	engineBin := scriptedUCIEngine(t, logPath)
	converter := writeScript(t, fixedConverter)
	suitePath := writeTacticalSuite(t, 12)

	out, err := execute(t, "tactical", suitePath, "--engine", engineBin, "--converter", converter, "--mode", "full")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved 0 / 12 at depth 6")
	assert.Equal(t, 12, countCommands(t, logPath, "go depth 6"))
}

func TestTacticalLimitOverridesMode(t *testing.T) {
	defer resetTacticalFlags()
	logPath := filepath.Join(t.TempDir(), "commands.log")
	engineBin := scriptedUCIEngine(t, logPath)
	converter := writeScript(t, fixedConverter)
	suitePath := writeTacticalSuite(t, 12)

	out, err := execute(t, "tactical", suitePath, "--engine", engineBin, "--converter", converter, "--mode", "full", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved 0 / 2 at depth 6")
	assert.Equal(t, 2, countCommands(t, logPath, "go depth 6"))
}

func TestTacticalFailOnMissMapsMissesToExitOne(t *testing.T) {
	defer resetTacticalFlags()
	logPath := filepath.Join(t.TempDir(), "commands.log")
	engineBin := scriptedUCIEngine(t, logPath)
	converter := writeScript(t, fixedConverter)
	suitePath := writeTacticalSuite(t, 3)

	_, err := execute(t, "tactical", suitePath, "--engine", engineBin, "--converter", converter, "--fail-on-miss")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestTacticalUnknownModeIsASetupError(t *testing.T) {
	defer resetTacticalFlags()
	engineBin := writeScript(t, fixedConverter)
	suitePath := writeTacticalSuite(t, 1)

	_, err := execute(t, "tactical", suitePath, "--engine", engineBin, "--converter", engineBin, "--mode", "thorough")
	require.Error(t, err)
	assert.Equal(t, ExitSetupError, GetExitCode(err))
}
