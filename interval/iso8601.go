// Copyright 2026 epochware llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidDuration = errors.New("invalid ISO8601 duration")

func consumeN(dur string) (int, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if c >= '0' && c <= '9' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D', 'H', 'S':
			n, err := strconv.Atoi(dur[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidDuration)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or duration designator: %s: %w", dur, ErrInvalidDuration)
}

// Parse parses a duration string in the ISO8601 format, [-]PnYnMnWnDTnHnMnS,
// into an Interval. Weeks fold into the day component. Designators must be
// integers; fractional values are rejected since they cannot be carried as
// calendar components.
func Parse(dur string) (Interval, error) {
	nl := len(dur)
	hasP, hasNP := (nl > 0 && dur[0] == 'P'), (nl > 1 && dur[0] == '-' && dur[1] == 'P')
	if !hasP && !hasNP {
		return Interval{}, fmt.Errorf("duration must start with P or -P: %s: %w", dur, ErrInvalidDuration)
	}
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}

	var result Interval
	state := 0 // 0 = P, 1 = T
	for len(dur) > 0 {
		if dur[0] == 'T' {
			state = 1
			dur = dur[1:]
			continue
		}
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return Interval{}, err
		}
		dur = dur[idx:]
		switch state {
		case 0:
			switch designator {
			case 'Y':
				result.Years += n
			case 'M':
				result.Months += n
			case 'W':
				result.Days += 7 * n
			case 'D':
				result.Days += n
			default:
				return Interval{}, fmt.Errorf("invalid duration designator: %c: %w", designator, ErrInvalidDuration)
			}
			continue
		case 1:
			switch designator {
			case 'H':
				result.Hours += n
			case 'M':
				result.Minutes += n
			case 'S':
				result.Seconds += n
			default:
				return Interval{}, fmt.Errorf("invalid duration designator: %c: %w", designator, ErrInvalidDuration)
			}
		}
	}
	result.Neg = hasNP
	return result, nil
}

// String renders the interval in ISO8601 form. Zero components are
// omitted and a zero interval renders as PT0S.
func (iv Interval) String() string {
	var out strings.Builder
	if iv.Neg {
		out.WriteByte('-')
	}
	out.WriteByte('P')
	if iv.Years != 0 {
		fmt.Fprintf(&out, "%dY", iv.Years)
	}
	if iv.Months != 0 {
		fmt.Fprintf(&out, "%dM", iv.Months)
	}
	if iv.Days != 0 {
		fmt.Fprintf(&out, "%dD", iv.Days)
	}
	if iv.Hours != 0 || iv.Minutes != 0 || iv.Seconds != 0 {
		out.WriteByte('T')
		if iv.Hours != 0 {
			fmt.Fprintf(&out, "%dH", iv.Hours)
		}
		if iv.Minutes != 0 {
			fmt.Fprintf(&out, "%dM", iv.Minutes)
		}
		if iv.Seconds != 0 {
			fmt.Fprintf(&out, "%dS", iv.Seconds)
		}
	}
	if iv.IsZero() {
		out.WriteString("T0S")
	}
	return out.String()
}
