package day05

import (
	"errors"
	"fmt"
)

var (
	// ErrUnderflow means a move asked for more crates than its source stack holds.
	ErrUnderflow = errors.New("not enough crates on source stack")
	// ErrNoSuchStack means a move names a stack outside the collection.
	ErrNoSuchStack = errors.New("no such stack")
)

// Model selects the crane's move semantics.
type Model int

const (
	// CrateMover9000 lifts one crate at a time, reversing the moved crates.
	CrateMover9000 Model = iota
	// CrateMover9001 lifts the whole block at once, keeping its order.
	CrateMover9001
)

func (m Model) String() string {
	switch m {
	case CrateMover9000:
		return "CrateMover 9000"
	case CrateMover9001:
		return "CrateMover 9001"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// Apply performs one move. The move is checked before any crate is touched,
// so a failed move leaves the supplies unchanged.
func (s *Supplies) Apply(m Move, model Model) error {
	if err := s.check(m); err != nil {
		return err
	}
	switch model {
	case CrateMover9000:
		s.moveOneByOne(m)
	case CrateMover9001:
		s.moveBlock(m)
	default:
		return fmt.Errorf("unknown crane %v", model)
	}
	return nil
}

// Run replays moves in order and stops at the first failure.
func (s *Supplies) Run(moves []Move, model Model) error {
	for i, m := range moves {
		if err := s.Apply(m, model); err != nil {
			return fmt.Errorf("move %d (%v): %w", i+1, m, err)
		}
	}
	return nil
}

func (s *Supplies) check(m Move) error {
	n := len(s.Stacks)
	if m.From < 0 || m.From >= n {
		return fmt.Errorf("%w: source %d of %d", ErrNoSuchStack, m.From+1, n)
	}
	if m.To < 0 || m.To >= n {
		return fmt.Errorf("%w: destination %d of %d", ErrNoSuchStack, m.To+1, n)
	}
	if m.Quantity < 0 {
		return fmt.Errorf("negative quantity %d", m.Quantity)
	}
	if have := len(s.Stacks[m.From].Crates); m.Quantity > have {
		return fmt.Errorf("%w: want %d, stack %d has %d", ErrUnderflow, m.Quantity, m.From+1, have)
	}
	return nil
}

func (s *Supplies) moveOneByOne(m Move) {
	src, dst := &s.Stacks[m.From], &s.Stacks[m.To]
	for i := 0; i < m.Quantity; i++ {
		top := len(src.Crates) - 1
		c := src.Crates[top]
		src.Crates = src.Crates[:top]
		dst.Crates = append(dst.Crates, c)
	}
}

func (s *Supplies) moveBlock(m Move) {
	src, dst := &s.Stacks[m.From], &s.Stacks[m.To]
	cut := len(src.Crates) - m.Quantity
	block := append([]rune(nil), src.Crates[cut:]...)
	src.Crates = src.Crates[:cut]
	dst.Crates = append(dst.Crates, block...)
}
