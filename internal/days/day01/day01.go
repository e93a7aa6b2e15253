// Package day01 totals the calories carried by each elf.
package day01

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"aoc2022/internal/puzzle"
)

// ErrNoElves is returned for input without any calorie group.
var ErrNoElves = errors.New("no elves in input")

func init() {
	puzzle.Register(puzzle.Solver{
		Day:     1,
		Title:   "Calorie Counting",
		PartOne: puzzle.Of(PartOne),
		PartTwo: puzzle.Of(PartTwo),
	})
}

func sum[T constraints.Integer](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Totals returns each elf's calorie total in input order. Elves are
// separated by blank lines.
func Totals(input string) ([]int, error) {
	input = strings.TrimSpace(strings.ReplaceAll(input, "\r\n", "\n"))
	if input == "" {
		return nil, ErrNoElves
	}
	var totals []int
	for i, group := range strings.Split(input, "\n\n") {
		var items []int
		for _, line := range strings.Split(group, "\n") {
			n, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("elf %d: %w", i+1, err)
			}
			items = append(items, n)
		}
		totals = append(totals, sum(items))
	}
	return totals, nil
}

// PartOne returns the largest total.
func PartOne(input string) (int, error) {
	totals, err := Totals(input)
	if err != nil {
		return 0, err
	}
	return slices.Max(totals), nil
}

// PartTwo returns the sum of the three largest totals.
func PartTwo(input string) (int, error) {
	totals, err := Totals(input)
	if err != nil {
		return 0, err
	}
	slices.Sort(totals)
	slices.Reverse(totals)
	return sum(totals[:min(3, len(totals))]), nil
}
