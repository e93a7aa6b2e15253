package day05

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedMove is returned for a line that is not a move instruction.
var ErrMalformedMove = errors.New("malformed move")

var movePattern = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

// Move relocates Quantity crates from stack From to stack To. Indices are
// 0-based; the text form uses 1-based labels.
type Move struct {
	Quantity int
	From     int
	To       int
}

func (m Move) String() string {
	return fmt.Sprintf("move %d from %d to %d", m.Quantity, m.From+1, m.To+1)
}

// ParseMove reads one `move N from A to B` line.
func ParseMove(line string) (Move, error) {
	g := movePattern.FindStringSubmatch(strings.TrimSpace(line))
	if g == nil {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, line)
	}
	var nums [3]int
	for i, s := range g[1:] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q: %v", ErrMalformedMove, line, err)
		}
		if v < 1 {
			return Move{}, fmt.Errorf("%w: %q: values start at 1", ErrMalformedMove, line)
		}
		nums[i] = v
	}
	return Move{Quantity: nums[0], From: nums[1] - 1, To: nums[2] - 1}, nil
}

// ParseMoves reads one instruction per line, skipping blank lines.
func ParseMoves(text string) ([]Move, error) {
	var moves []Move
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := ParseMove(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}
