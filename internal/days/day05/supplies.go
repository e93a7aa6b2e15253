// Package day05 simulates the supply-stack crane: a fixed set of crate
// stacks, parsed from an ASCII diagram and rearranged by a list of move
// instructions.
package day05

// Stack is one column of crates. The top crate is the last element.
type Stack struct {
	Index  int
	Crates []rune
}

// Supplies is the ordered stack collection. The number of stacks is fixed
// when the diagram is parsed; moves only relocate crates between them.
type Supplies struct {
	Stacks []Stack
}

func newSupplies(n int) *Supplies {
	s := &Supplies{Stacks: make([]Stack, n)}
	for i := range s.Stacks {
		s.Stacks[i].Index = i
	}
	return s
}

// Len reports the number of stacks.
func (s *Supplies) Len() int { return len(s.Stacks) }

// TotalCrates counts crates across all stacks.
func (s *Supplies) TotalCrates() int {
	n := 0
	for _, st := range s.Stacks {
		n += len(st.Crates)
	}
	return n
}

// Clone returns a deep copy, so one parsed diagram can feed both crane models.
func (s *Supplies) Clone() *Supplies {
	c := &Supplies{Stacks: make([]Stack, len(s.Stacks))}
	for i, st := range s.Stacks {
		c.Stacks[i] = Stack{Index: st.Index, Crates: append([]rune(nil), st.Crates...)}
	}
	return c
}
