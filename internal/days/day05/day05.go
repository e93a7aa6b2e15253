package day05

import (
	"strings"

	"aoc2022/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solver{
		Day:     5,
		Title:   "Supply Stacks",
		PartOne: puzzle.Of(PartOne),
		PartTwo: puzzle.Of(PartTwo),
	})
}

// Parse splits the input at the first blank line into the crate diagram
// and the move list. A missing move list means no moves.
func Parse(input string) (*Supplies, []Move, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	diagram, moveText, _ := strings.Cut(input, "\n\n")
	s, err := ParseDiagram(diagram)
	if err != nil {
		return nil, nil, err
	}
	moves, err := ParseMoves(moveText)
	if err != nil {
		return nil, nil, err
	}
	return s, moves, nil
}

func solve(input string, model Model) (string, error) {
	s, moves, err := Parse(input)
	if err != nil {
		return "", err
	}
	if err := s.Run(moves, model); err != nil {
		return "", err
	}
	return s.TopCrates()
}

// PartOne reports the top crates after a CrateMover 9000 run.
func PartOne(input string) (string, error) { return solve(input, CrateMover9000) }

// PartTwo reports the top crates after a CrateMover 9001 run.
func PartTwo(input string) (string, error) { return solve(input, CrateMover9001) }
