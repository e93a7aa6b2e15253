package writers

import (
	"fmt"
	"io"

	"aoc2022/pkg/api"
)

// FormatText is tab-separated, one answer per line.
const FormatText = "text"

// TSVHeader is the header row for text output.
const TSVHeader = "day\tpart\ttitle\tanswer"

func init() {
	Register(FormatText, func(w io.Writer, opt Options) Sink {
		return &textSink{w: w, header: opt.Header}
	})
}

type textSink struct {
	w       io.Writer
	header  bool
	started bool
}

func (t *textSink) Put(a api.AnswerV1) error {
	if t.header && !t.started {
		if _, err := fmt.Fprintln(t.w, TSVHeader); err != nil {
			return err
		}
	}
	t.started = true
	_, err := fmt.Fprintf(t.w, "%d\t%d\t%s\t%s\n", a.Day, a.Part, a.Title, a.Answer)
	return err
}

func (t *textSink) Close() error { return nil }
