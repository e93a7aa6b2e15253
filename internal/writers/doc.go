// Package writers turns solved answers into serialized output.
//
// Design:
//   - Writers own all presentation knowledge (TSV, JSON, YAML).
//   - Day packages stay domain-only; the solve loop only hands answers over.
//   - JSON/YAML go through pkg/api (v1) for a stable wire format.
package writers
