/*
PURPOSE:
  Writes result rows to a JSON Lines file (NDJSON).
  Optimized for machine parsing downstream of the human-facing tables.

REQUIREMENTS:
  User-specified:
  - Optional machine-readable output alongside the table.

  Implementation-discovered:
  - JSON Lines is better for streaming/logging than a single large array
    (append-friendly).
  - One writer serves all three row types; the encoder does not care.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Consumes: internal/model row types

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - One JSON object per line, one line per case.

USAGE:
  w, err := output.NewJSONLWriter("results.jsonl")
  w.Write(row)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update if we switch to plain JSON array (not recommended for streaming).
*/

package output

import (
	"encoding/json"
	"os"
)

// JSONLWriter handles writing result rows to a JSON Lines file.
type JSONLWriter struct {
	file    *os.File
	encoder *json.Encoder
}

// NewJSONLWriter creates a new JSONLWriter, overwriting any existing file.
func NewJSONLWriter(path string) (*JSONLWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONLWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes a single row as a JSON line.
func (jw *JSONLWriter) Write(row any) error {
	return jw.encoder.Encode(row)
}

// Close closes the underlying file.
func (jw *JSONLWriter) Close() error {
	return jw.file.Close()
}
