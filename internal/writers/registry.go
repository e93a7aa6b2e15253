// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"aoc2022/pkg/api"
)

// Options tune presentation.
type Options struct {
	Header bool // text: emit the column header line
}

// Sink receives answers as they are produced. Streaming formats write on
// Put; document formats buffer and encode on Close.
type Sink interface {
	Put(api.AnswerV1) error
	Close() error
}

// Sink factories by format. Register in init() blocks from the format files.
var sinks = map[string]func(w io.Writer, opt Options) Sink{}

// Register adds a format (idempotent last-wins).
func Register(format string, fn func(io.Writer, Options) Sink) { sinks[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string { return slices.Sorted(maps.Keys(sinks)) }

// NewSink returns the sink for format.
func NewSink(format string, w io.Writer, opt Options) (Sink, error) {
	fn, ok := sinks[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (have %v)", format, Formats())
	}
	return fn(w, opt), nil
}

// WriteAll pushes answers through a fresh sink and closes it.
func WriteAll(format string, w io.Writer, opt Options, answers []api.AnswerV1) error {
	s, err := NewSink(format, w, opt)
	if err != nil {
		return err
	}
	for _, a := range answers {
		if err := s.Put(a); err != nil {
			return err
		}
	}
	return s.Close()
}

// buffered collects answers and encodes them all on Close.
type buffered struct {
	w      io.Writer
	list   []api.AnswerV1
	encode func(io.Writer, []api.AnswerV1) error
}

func (b *buffered) Put(a api.AnswerV1) error {
	b.list = append(b.list, a)
	return nil
}

func (b *buffered) Close() error {
	list := b.list
	if list == nil {
		list = []api.AnswerV1{}
	}
	return b.encode(b.w, list)
}
