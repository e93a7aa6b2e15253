// Package puzzle maps day numbers to their solvers.
//
// Day packages register themselves from init(); the registry only knows a
// day's title and its two entrypoints, never how a day parses or solves.
package puzzle

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

// ErrUnknownPart is returned when asking a Solver for a part other than 1 or 2.
var ErrUnknownPart = errors.New("unknown part")

// Func solves one part of a day for the given input text.
type Func func(input string) (string, error)

// Solver bundles a day's two parts.
type Solver struct {
	Day     int
	Title   string
	PartOne Func
	PartTwo Func
}

// Part returns the function for part n (1 or 2).
func (s Solver) Part(n int) (Func, error) {
	switch n {
	case 1:
		return s.PartOne, nil
	case 2:
		return s.PartTwo, nil
	default:
		return nil, fmt.Errorf("%w %d for day %d", ErrUnknownPart, n, s.Day)
	}
}

// Of lifts a typed day function into a Func by formatting its result.
func Of[T constraints.Ordered](f func(string) (T, error)) Func {
	return func(input string) (string, error) {
		v, err := f(input)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	}
}

// Registry holds solvers by day.
type Registry struct {
	byDay map[int]Solver
}

func NewRegistry() *Registry {
	return &Registry{byDay: map[int]Solver{}}
}

// Register adds s. It panics on a duplicate day or a missing part, since
// both are wiring mistakes caught at init.
func (r *Registry) Register(s Solver) {
	if s.Day < 1 || s.Day > 25 {
		panic(fmt.Sprintf("puzzle: day %d out of range", s.Day))
	}
	if s.PartOne == nil || s.PartTwo == nil {
		panic(fmt.Sprintf("puzzle: day %d registered without both parts", s.Day))
	}
	if _, dup := r.byDay[s.Day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", s.Day))
	}
	r.byDay[s.Day] = s
}

func (r *Registry) Lookup(day int) (Solver, bool) {
	s, ok := r.byDay[day]
	return s, ok
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	return slices.Sorted(maps.Keys(r.byDay))
}

// Latest returns the highest registered day.
func (r *Registry) Latest() (int, bool) {
	days := r.Days()
	if len(days) == 0 {
		return 0, false
	}
	return days[len(days)-1], true
}

// Default is the registry day packages register into.
var Default = NewRegistry()

func Register(s Solver)             { Default.Register(s) }
func Lookup(day int) (Solver, bool) { return Default.Lookup(day) }
func Days() []int                   { return Default.Days() }
func Latest() (int, bool)           { return Default.Latest() }
