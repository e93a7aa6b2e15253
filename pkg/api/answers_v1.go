// pkg/api/answers_v1.go
package api

// AnswerV1 is the stable JSON/YAML schema for one solved part.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AnswerV1 struct {
	Day    int    `json:"day" yaml:"day"`
	Part   int    `json:"part" yaml:"part"`
	Title  string `json:"title" yaml:"title"`
	Answer string `json:"answer" yaml:"answer"`
	Input  string `json:"input,omitempty" yaml:"input,omitempty"` // source path, "-" for stdin
}
