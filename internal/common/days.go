package common

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrNoDays is returned when nothing is registered to select from.
var ErrNoDays = errors.New("no days registered")

// ParseDays expands day selectors ("5", "1-3", "2,4", "all") against the
// known days, de-duplicating and preserving first-seen order. No selectors
// means the latest known day.
func ParseDays(args []string, known []int) ([]int, error) {
	if len(known) == 0 {
		return nil, ErrNoDays
	}
	if len(args) == 0 {
		return []int{slices.Max(known)}, nil
	}

	seen := make(map[int]struct{}, len(known))
	var out []int
	add := func(d int) error {
		if !slices.Contains(known, d) {
			return fmt.Errorf("day %d is not solved here (have %v)", d, known)
		}
		if _, ok := seen[d]; ok {
			return nil
		}
		seen[d] = struct{}{}
		out = append(out, d)
		return nil
	}

	for _, arg := range args {
		for _, sel := range strings.Split(arg, ",") {
			sel = strings.ToLower(strings.TrimSpace(sel))
			switch {
			case sel == "":
				continue
			case sel == "all":
				for _, d := range known {
					_ = add(d)
				}
			case strings.Contains(sel, "-"):
				lo, hi, err := parseRange(sel)
				if err != nil {
					return nil, err
				}
				for d := lo; d <= hi; d++ {
					if err := add(d); err != nil {
						return nil, err
					}
				}
			default:
				d, err := strconv.Atoi(sel)
				if err != nil {
					return nil, fmt.Errorf("bad day %q", sel)
				}
				if err := add(d); err != nil {
					return nil, err
				}
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no days selected by %q", strings.Join(args, " "))
	}
	return out, nil
}

func parseRange(sel string) (int, int, error) {
	a, b, _ := strings.Cut(sel, "-")
	lo, err1 := strconv.Atoi(a)
	hi, err2 := strconv.Atoi(b)
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("bad day range %q", sel)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("day range %q runs backwards", sel)
	}
	return lo, hi, nil
}
