// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"aoc2022/internal/jsonlutil"
	"aoc2022/pkg/api"
)

// FormatJSONL streams one JSON object per answer.
const FormatJSONL = "jsonl"

func init() {
	Register(FormatJSONL, func(w io.Writer, _ Options) Sink {
		return jsonlutil.Start(w, 0, func(enc *json.Encoder, a api.AnswerV1) error {
			return enc.Encode(a)
		})
	})
}
