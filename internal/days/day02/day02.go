// Package day02 scores a rock-paper-scissors strategy guide.
package day02

import (
	"errors"
	"fmt"
	"strings"

	"aoc2022/internal/puzzle"
)

// ErrBadRound is returned for a line that is not `<A|B|C> <X|Y|Z>`.
var ErrBadRound = errors.New("bad round")

func init() {
	puzzle.Register(puzzle.Solver{
		Day:     2,
		Title:   "Rock Paper Scissors",
		PartOne: puzzle.Of(PartOne),
		PartTwo: puzzle.Of(PartTwo),
	})
}

// Shape is a hand shape. Its value is also its score.
type Shape int

const (
	Rock     Shape = 1
	Paper    Shape = 2
	Scissors Shape = 3
)

// Outcome is the result for the second player. Its value is its score.
type Outcome int

const (
	Lose Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

func shapeOf(b byte) (Shape, bool) {
	switch b {
	case 'A', 'X':
		return Rock, true
	case 'B', 'Y':
		return Paper, true
	case 'C', 'Z':
		return Scissors, true
	}
	return 0, false
}

func outcomeOf(b byte) (Outcome, bool) {
	switch b {
	case 'X':
		return Lose, true
	case 'Y':
		return Draw, true
	case 'Z':
		return Win, true
	}
	return 0, false
}

// beats returns the shape s defeats.
func (s Shape) beats() Shape { return (s+1)%3 + 1 }

// Play scores one round from the second player's side.
func Play(them, us Shape) int {
	switch {
	case us == them:
		return int(us) + int(Draw)
	case us.beats() == them:
		return int(us) + int(Win)
	default:
		return int(us) + int(Lose)
	}
}

// Respond picks the shape that yields want against them.
func Respond(them Shape, want Outcome) Shape {
	switch want {
	case Win:
		// Shape values sum to 6; the winner is the one left over.
		return 6 - them - them.beats()
	case Lose:
		return them.beats()
	default:
		return them
	}
}

// rounds splits input into the two columns of each line.
func rounds(input string) ([][2]byte, error) {
	var out [][2]byte
	for i, line := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		if len(f) != 2 || len(f[0]) != 1 || len(f[1]) != 1 {
			return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrBadRound, line)
		}
		out = append(out, [2]byte{f[0][0], f[1][0]})
	}
	return out, nil
}

// PartOne reads the second column as our shape.
func PartOne(input string) (int, error) {
	rs, err := rounds(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for i, r := range rs {
		them, ok1 := shapeOf(r[0])
		us, ok2 := shapeOf(r[1])
		if !ok1 || !ok2 || r[0] > 'C' || r[1] < 'X' {
			return 0, fmt.Errorf("round %d: %w: %c %c", i+1, ErrBadRound, r[0], r[1])
		}
		total += Play(them, us)
	}
	return total, nil
}

// PartTwo reads the second column as the outcome we need.
func PartTwo(input string) (int, error) {
	rs, err := rounds(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for i, r := range rs {
		them, ok1 := shapeOf(r[0])
		want, ok2 := outcomeOf(r[1])
		if !ok1 || !ok2 || r[0] > 'C' {
			return 0, fmt.Errorf("round %d: %w: %c %c", i+1, ErrBadRound, r[0], r[1])
		}
		total += int(Respond(them, want)) + int(want)
	}
	return total, nil
}
