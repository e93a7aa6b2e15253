// Package day03 finds misplaced rucksack items and badges.
package day03

import (
	"errors"
	"fmt"
	"strings"

	"aoc2022/internal/puzzle"
)

var (
	// ErrBadItem is returned for an item outside a-z and A-Z.
	ErrBadItem = errors.New("bad item")
	// ErrUnevenRucksack is returned when a line cannot split into equal compartments.
	ErrUnevenRucksack = errors.New("uneven rucksack")
	// ErrIncompleteGroup is returned when the line count is not a multiple of three.
	ErrIncompleteGroup = errors.New("incomplete group")
)

func init() {
	puzzle.Register(puzzle.Solver{
		Day:     3,
		Title:   "Rucksack Reorganization",
		PartOne: puzzle.Of(PartOne),
		PartTwo: puzzle.Of(PartTwo),
	})
}

// Priority maps a-z to 1-26 and A-Z to 27-52.
func Priority(item byte) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadItem, item)
}

// itemSet is a bitmask over the 52 priorities.
type itemSet uint64

func setOf(s string) (itemSet, error) {
	var set itemSet
	for i := 0; i < len(s); i++ {
		p, err := Priority(s[i])
		if err != nil {
			return 0, err
		}
		set |= 1 << p
	}
	return set, nil
}

// sum adds the priorities of every item in the set.
func (s itemSet) sum() int {
	total := 0
	for p := 1; p <= 52; p++ {
		if s&(1<<p) != 0 {
			total += p
		}
	}
	return total
}

// Common returns the distinct items present in every string, in
// priority order.
func Common(parts ...string) (string, error) {
	set := ^itemSet(0)
	for _, p := range parts {
		s, err := setOf(p)
		if err != nil {
			return "", err
		}
		set &= s
	}
	var b strings.Builder
	for p := 1; p <= 52; p++ {
		if set&(1<<p) == 0 {
			continue
		}
		if p <= 26 {
			b.WriteByte(byte('a' + p - 1))
		} else {
			b.WriteByte(byte('A' + p - 27))
		}
	}
	return b.String(), nil
}

func lines(input string) []string {
	input = strings.TrimSpace(strings.ReplaceAll(input, "\r\n", "\n"))
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// PartOne sums the priorities of items shared by both compartments.
func PartOne(input string) (int, error) {
	total := 0
	for i, line := range lines(input) {
		line = strings.TrimSpace(line)
		if len(line)%2 != 0 {
			return 0, fmt.Errorf("line %d: %w: %d items", i+1, ErrUnevenRucksack, len(line))
		}
		mid := len(line) / 2
		left, err := setOf(line[:mid])
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		right, err := setOf(line[mid:])
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += (left & right).sum()
	}
	return total, nil
}

// PartTwo sums the priorities of each three-elf group's badge.
func PartTwo(input string) (int, error) {
	ls := lines(input)
	if len(ls)%3 != 0 {
		return 0, fmt.Errorf("%w: %d rucksacks", ErrIncompleteGroup, len(ls))
	}
	total := 0
	for g := 0; g < len(ls); g += 3 {
		set := ^itemSet(0)
		for _, line := range ls[g : g+3] {
			s, err := setOf(strings.TrimSpace(line))
			if err != nil {
				return 0, fmt.Errorf("group %d: %w", g/3+1, err)
			}
			set &= s
		}
		total += set.sum()
	}
	return total, nil
}
