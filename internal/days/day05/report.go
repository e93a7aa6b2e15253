package day05

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyStack means a stack had no top crate to report.
var ErrEmptyStack = errors.New("empty stack")

// TopCrates concatenates the top crate of every stack in index order.
func (s *Supplies) TopCrates() (string, error) {
	var b strings.Builder
	for _, st := range s.Stacks {
		if len(st.Crates) == 0 {
			return "", fmt.Errorf("%w: stack %d", ErrEmptyStack, st.Index+1)
		}
		b.WriteRune(st.Crates[len(st.Crates)-1])
	}
	return b.String(), nil
}
