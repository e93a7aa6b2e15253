package writers

import (
	"encoding/json"
	"io"

	"aoc2022/pkg/api"
)

// FormatJSON is a single indented JSON array.
const FormatJSON = "json"

func init() {
	Register(FormatJSON, func(w io.Writer, _ Options) Sink {
		return &buffered{w: w, encode: writeJSON}
	})
}

func writeJSON(w io.Writer, list []api.AnswerV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
