package day05

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedDiagram is returned for any crate diagram that cannot be read.
var ErrMalformedDiagram = errors.New("malformed crate diagram")

// fieldWidth is one diagram column: three content characters and a separator.
const fieldWidth = 4

// slot is one decoded diagram field. ok is false for an empty position.
type slot struct {
	crate rune
	ok    bool
}

// ParseDiagram builds the initial stacks from a crate diagram whose last
// line is the stack label row.
func ParseDiagram(text string) (*Supplies, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	labelRow := lines[len(lines)-1]
	labels := strings.Fields(labelRow)
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: missing stack label row", ErrMalformedDiagram)
	}
	for _, l := range labels {
		if _, err := strconv.Atoi(l); err != nil {
			return nil, fmt.Errorf("%w: label row %q: bad label %q", ErrMalformedDiagram, labelRow, l)
		}
	}

	rows := lines[:len(lines)-1]
	decoded := make([][]slot, len(rows))
	for i, row := range rows {
		slots, err := decodeRow(row, len(labels))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedDiagram, i+1, err)
		}
		decoded[i] = slots
	}

	// The bottom row is each stack's base, so push from the last row up.
	s := newSupplies(len(labels))
	for i := len(decoded) - 1; i >= 0; i-- {
		for col, sl := range decoded[i] {
			if sl.ok {
				s.Stacks[col].Crates = append(s.Stacks[col].Crates, sl.crate)
			}
		}
	}
	return s, nil
}

// decodeRow segments one diagram row into fixed-width fields. Rows may be
// shorter than the full width; missing fields are empty.
func decodeRow(row string, columns int) ([]slot, error) {
	rs := []rune(strings.TrimRight(row, " "))
	n := (len(rs) + fieldWidth - 1) / fieldWidth
	if n > columns {
		return nil, fmt.Errorf("%d fields, want at most %d", n, columns)
	}
	slots := make([]slot, columns)
	for i := 0; i < n; i++ {
		start := i * fieldWidth
		field := rs[start:min(start+fieldWidth, len(rs))]
		if len(field) == fieldWidth {
			if field[fieldWidth-1] != ' ' {
				return nil, fmt.Errorf("field %d: separator %q is not a space", i+1, field[fieldWidth-1])
			}
			field = field[:fieldWidth-1]
		}
		sl, err := decodeField(field)
		if err != nil {
			return nil, fmt.Errorf("field %d: %v", i+1, err)
		}
		slots[i] = sl
	}
	return slots, nil
}

func decodeField(f []rune) (slot, error) {
	if strings.TrimSpace(string(f)) == "" {
		return slot{}, nil
	}
	if len(f) == 3 && f[0] == '[' && f[2] == ']' && isCrate(f[1]) {
		return slot{crate: f[1], ok: true}, nil
	}
	return slot{}, fmt.Errorf("%q is not a bracketed crate", string(f))
}

func isCrate(r rune) bool {
	return r != ' ' && r != '\t' && r != '[' && r != ']'
}
