/*
PURPOSE:
  Defines the 'inspect' subcommand.
  Helps debug suite files by parsing them with the real loaders and
  printing what the runners would see, without touching any engine.

REQUIREMENTS:
  User-specified:
  - Show parsed cases, one line each.

  Implementation-discovered:
  - Useful validation step before a long run; a perft suite that fails
    here would fail verify the same way.

ARCHITECTURE INTEGRATION:
  - Calls: internal/suite loaders

ERROR HANDLING:
  - A malformed perft suite keeps its hard-error contract (exit 2).
  - EPD noise keeps its skip contract: skipped lines just don't print.

IMPLEMENTATION RULES:
  - Simple output to stdout.
  - Format detection by extension; --format forces it.

USAGE:
  rook-runner inspect suites/smoke.epd

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/suite/perft.go
  - internal/suite/epd.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daryltucker/rook-runner/internal/suite"
)

var (
	inspectFormat string
	inspectLimit  int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <suite-file>",
	Short: "Parse a suite file and show what the runners would execute",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		format := inspectFormat
		if format == "auto" {
			format = "perft"
			if strings.HasSuffix(path, ".epd") {
				format = "epd"
			}
		}

		out := cmd.OutOrStdout()
		switch format {
		case "perft":
			cases, err := suite.LoadPerft(path)
			if err != nil {
				return WrapExitError(ExitSetupError, "failed to load suite", err)
			}
			if inspectLimit > 0 && len(cases) > inspectLimit {
				cases = cases[:inspectLimit]
			}
			for i, c := range cases {
				fmt.Fprintf(out, "%3d depth=%d nodes=%d fen=%s\n", i+1, c.Depth, c.Nodes, c.FEN)
			}
			fmt.Fprintf(out, "%d case(s)\n", len(cases))
		case "epd":
			cases, err := suite.LoadEPD(path, inspectLimit)
			if err != nil {
				return WrapExitError(ExitSetupError, "failed to load suite", err)
			}
			for i, c := range cases {
				fmt.Fprintf(out, "%3d id=%s bm=%s fen=%s\n", i+1, c.Ident(i), strings.Join(c.SANs, ","), c.FEN)
			}
			fmt.Fprintf(out, "%d case(s)\n", len(cases))
		default:
			return NewExitError(ExitSetupError, fmt.Sprintf("unknown format %q: want perft, epd or auto", inspectFormat))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectFormat, "format", "auto", "Suite format: perft, epd or auto (by extension)")
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 0, "Show at most this many cases (0 = all)")
}
