package writers

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"aoc2022/pkg/api"
)

// FormatYAML is a YAML sequence of answers.
const FormatYAML = "yaml"

func init() {
	Register(FormatYAML, func(w io.Writer, _ Options) Sink {
		return &buffered{w: w, encode: writeYAML}
	})
}

// writeYAML encodes into memory first; the yaml encoder flattens writer
// errors to strings, which would hide a broken pipe.
func writeYAML(w io.Writer, list []api.AnswerV1) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(list); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
