// Package days links every day's solver into the puzzle registry.
package days

import (
	_ "aoc2022/internal/days/day01"
	_ "aoc2022/internal/days/day02"
	_ "aoc2022/internal/days/day03"
	_ "aoc2022/internal/days/day04"
	_ "aoc2022/internal/days/day05"
	_ "aoc2022/internal/days/day06"
)
