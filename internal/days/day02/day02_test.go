package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "A Y\nB X\nC Z\n"

func TestPlay(t *testing.T) {
	tests := []struct {
		them, us Shape
		want     int
	}{
		{Rock, Paper, 8},
		{Rock, Scissors, 3},
		{Paper, Rock, 1},
		{Paper, Scissors, 9},
		{Scissors, Rock, 7},
		{Scissors, Paper, 2},
		{Rock, Rock, 4},
		{Paper, Paper, 5},
		{Scissors, Scissors, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Play(tt.them, tt.us), "%v vs %v", tt.them, tt.us)
	}
}

func TestRespond(t *testing.T) {
	tests := []struct {
		them Shape
		want Outcome
		us   Shape
	}{
		{Scissors, Win, Rock},
		{Rock, Win, Paper},
		{Paper, Win, Scissors},
		{Rock, Draw, Rock},
		{Rock, Lose, Scissors},
		{Scissors, Lose, Paper},
		{Paper, Lose, Rock},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.us, Respond(tt.them, tt.want), "%v wanting %v", tt.them, tt.want)
	}
}

func TestParts(t *testing.T) {
	one, err := PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, 15, one)

	two, err := PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 12, two)
}

func TestBadRounds(t *testing.T) {
	for _, in := range []string{"A", "A Y Z", "AB Y", "D Y", "X A", "A Q"} {
		_, err := PartOne(in)
		assert.ErrorIs(t, err, ErrBadRound, "part one %q", in)
	}
	for _, in := range []string{"A A", "Z Y"} {
		_, err := PartTwo(in)
		assert.ErrorIs(t, err, ErrBadRound, "part two %q", in)
	}
}
