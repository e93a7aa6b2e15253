// Package day04 compares the section ranges assigned to pairs of elves.
package day04

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"aoc2022/internal/puzzle"
)

// ErrBadAssignment is returned for a line that is not `a-b,c-d`.
var ErrBadAssignment = errors.New("bad assignment")

func init() {
	puzzle.Register(puzzle.Solver{
		Day:     4,
		Title:   "Camp Cleanup",
		PartOne: puzzle.Of(PartOne),
		PartTwo: puzzle.Of(PartTwo),
	})
}

// Range is an inclusive section range.
type Range struct {
	Lo, Hi int
}

// ParseRange reads `lo-hi`.
func ParseRange(s string) (Range, error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: range %q", ErrBadAssignment, s)
	}
	lo, err := strconv.Atoi(a)
	if err != nil {
		return Range{}, fmt.Errorf("%w: range %q: %v", ErrBadAssignment, s, err)
	}
	hi, err := strconv.Atoi(b)
	if err != nil {
		return Range{}, fmt.Errorf("%w: range %q: %v", ErrBadAssignment, s, err)
	}
	if lo > hi {
		return Range{}, fmt.Errorf("%w: range %q runs backwards", ErrBadAssignment, s)
	}
	return Range{Lo: lo, Hi: hi}, nil
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool { return r.Lo <= o.Lo && o.Hi <= r.Hi }

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool { return r.Lo <= o.Hi && o.Lo <= r.Hi }

func pairs(input string) ([][2]Range, error) {
	var out [][2]Range
	for i, line := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		l, r, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrBadAssignment, line)
		}
		left, err := ParseRange(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		right, err := ParseRange(r)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, [2]Range{left, right})
	}
	return out, nil
}

func count(input string, keep func(a, b Range) bool) (int, error) {
	ps, err := pairs(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range ps {
		if keep(p[0], p[1]) {
			n++
		}
	}
	return n, nil
}

// PartOne counts pairs where one range fully contains the other.
func PartOne(input string) (int, error) {
	return count(input, func(a, b Range) bool { return a.Contains(b) || b.Contains(a) })
}

// PartTwo counts pairs that overlap at all.
func PartTwo(input string) (int, error) {
	return count(input, Range.Overlaps)
}
