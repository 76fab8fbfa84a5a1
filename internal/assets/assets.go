/*
PURPOSE:
  Embeds the starter suite files so a fresh checkout can exercise every
  command without hunting for fixtures.

REQUIREMENTS:
  User-specified:
  - Ship a small perft suite and a small tactical suite with the binary.

  Implementation-discovered:
  - go:embed keeps the files out of the install path until asked for.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli (suites install)

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Suites here are real published positions with published counts; they
    double as a sanity check of the loaders.

USAGE:
  data, err := fs.ReadFile(assets.Suites, "suites/standard.perft")

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/cli/suites.go

MAINTENANCE:
  - New starter suites just need a file under suites/.
*/

package assets

import "embed"

// Suites holds the embedded starter suite files.
//
//go:embed suites
var Suites embed.FS
