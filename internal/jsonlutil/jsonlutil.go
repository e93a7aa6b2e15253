// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across JSONL streams.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Stream encodes values of type T as JSON lines on its own goroutine.
// Send values with Put and finish with Close, which flushes and reports the
// first error. After an error, Put and Close keep returning it.
type Stream[T any] struct {
	in   chan T
	done chan error
	err  error
	shut bool
}

// Start spins up the encoder goroutine. encode converts one value to its
// wire type and hands it to enc.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error) *Stream[T] {
	if bufSize <= 0 {
		bufSize = 64
	}
	s := &Stream[T]{in: make(chan T, bufSize), done: make(chan error, 1)}

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		for v := range s.in {
			if err := encode(enc, v); err != nil {
				s.done <- err
				return
			}
		}
		s.done <- bw.Flush()
	}()

	return s
}

// Put queues v for encoding.
func (s *Stream[T]) Put(v T) error {
	if s.shut {
		return s.err
	}
	select {
	case s.in <- v:
		return nil
	case err := <-s.done:
		s.finish(err)
		return err
	}
}

// Close waits for queued values to be written.
func (s *Stream[T]) Close() error {
	if s.shut {
		return s.err
	}
	close(s.in)
	s.shut = true
	s.err = <-s.done
	return s.err
}

func (s *Stream[T]) finish(err error) {
	close(s.in)
	s.shut = true
	s.err = err
}
