package day06

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMarker(t *testing.T) {
	tests := []struct {
		stream          string
		packet, message int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tt := range tests {
		got, err := PartOne(tt.stream)
		require.NoError(t, err)
		assert.Equal(t, tt.packet, got, tt.stream)

		got, err = PartTwo(tt.stream + "\n")
		require.NoError(t, err)
		assert.Equal(t, tt.message, got, tt.stream)
	}
}

func TestNoMarker(t *testing.T) {
	_, err := FindMarker("aabbccdd", 4)
	assert.ErrorIs(t, err, ErrNoMarker)

	_, err = PartOne("")
	assert.ErrorIs(t, err, ErrNoMarker)
}
