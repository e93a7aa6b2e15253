// Package day06 locates start-of-packet and start-of-message markers in a
// datastream.
package day06

import (
	"errors"
	"fmt"
	"strings"

	"aoc2022/internal/puzzle"
)

// ErrNoMarker is returned when no window of distinct characters exists.
var ErrNoMarker = errors.New("no marker in stream")

const (
	packetMarker  = 4
	messageMarker = 14
)

func init() {
	puzzle.Register(puzzle.Solver{
		Day:     6,
		Title:   "Tuning Trouble",
		PartOne: puzzle.Of(PartOne),
		PartTwo: puzzle.Of(PartTwo),
	})
}

// FindMarker returns the number of bytes read when the last width bytes
// first become pairwise distinct.
func FindMarker(stream string, width int) (int, error) {
	var seen [256]bool
	lo := 0
	for hi := 0; hi < len(stream); hi++ {
		c := stream[hi]
		for seen[c] {
			seen[stream[lo]] = false
			lo++
		}
		seen[c] = true
		if hi-lo+1 == width {
			return hi + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: width %d over %d bytes", ErrNoMarker, width, len(stream))
}

// PartOne finds the start-of-packet marker.
func PartOne(input string) (int, error) {
	return FindMarker(strings.TrimSpace(input), packetMarker)
}

// PartTwo finds the start-of-message marker.
func PartTwo(input string) (int, error) {
	return FindMarker(strings.TrimSpace(input), messageMarker)
}
