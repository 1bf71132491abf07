// Copyright 2026 epochware llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package relative parses free-form date expressions, both relative
// ("+1 year, 2 months, 3 days", "tomorrow noon", "2 days ago",
// "next monday 13:37") and absolute ("2011-02-03T13:37:00+0200",
// "February 3, 2011"). Relative clauses are evaluated left to right
// against a base instant; expressions with no relative syntax fall
// through to the dateparse library, evaluated in the base's location.
//
// The clause grammar:
//
//	[+|-]N year|month|fortnight|week|day|hour|minute|second[s]
//	unit alone               (counts one: "fortnight" is "+1 fortnight")
//	N unit... ago            (negates every count seen so far)
//	now|today|tomorrow|yesterday|midnight|noon
//	next|last unit           (one unit forward or back)
//	next|last weekday-name   (strictly after or before the base day)
//	next|last month-name     (strictly after or before the base month)
//	weekday-name             (first such day at or after the base day)
//	month-name               (same day of that month in the base year)
//	HH[:MM[:SS]][am|pm]      (sets the time of day)
//
// Weekday and month names may be abbreviated; day jumps reset the time
// of day to midnight, month jumps keep it. Counted units shift fields
// through the platform's calendar normalization, so "+1 month" on
// January 31 rolls into early March just as time.Date would.
package relative

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/araddon/dateparse"
)

// ErrExpression is wrapped by all errors reported for expressions that
// fail the clause grammar.
var ErrExpression = errors.New("unparseable date expression")

var monthNames = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}

// parseMonthName matches a month name or any prefix of at least three
// characters, "jan" to "december".
func parseMonthName(tok string) (time.Month, bool) {
	if len(tok) < 3 {
		return 0, false
	}
	for i := range monthNames {
		if strings.HasPrefix(monthNames[i], tok) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

var weekdayNames = map[string]int{
	"monday": 1, "mon": 1,
	"tuesday": 2, "tue": 2, "tues": 2,
	"wednesday": 3, "wed": 3,
	"thursday": 4, "thu": 4, "thur": 4, "thurs": 4,
	"friday": 5, "fri": 5,
	"saturday": 6, "sat": 6,
	"sunday": 7, "sun": 7,
}

type unitShift func(t time.Time, n int) time.Time

func shiftYears(t time.Time, n int) time.Time  { return t.AddDate(n, 0, 0) }
func shiftMonths(t time.Time, n int) time.Time { return t.AddDate(0, n, 0) }
func shiftWeeks(t time.Time, n int) time.Time  { return t.AddDate(0, 0, 7*n) }
func shiftFortnights(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, 14*n)
}
func shiftDays(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) }
func shiftHours(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Hour)
}
func shiftMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}
func shiftSeconds(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Second)
}

var units = map[string]unitShift{
	"year": shiftYears, "years": shiftYears,
	"month": shiftMonths, "months": shiftMonths,
	"fortnight": shiftFortnights, "fortnights": shiftFortnights,
	"week": shiftWeeks, "weeks": shiftWeeks,
	"day": shiftDays, "days": shiftDays,
	"hour": shiftHours, "hours": shiftHours, "hr": shiftHours, "hrs": shiftHours,
	"minute": shiftMinutes, "minutes": shiftMinutes, "min": shiftMinutes, "mins": shiftMinutes,
	"second": shiftSeconds, "seconds": shiftSeconds, "sec": shiftSeconds, "secs": shiftSeconds,
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

const (
	jumpAtOrAfter = iota
	jumpAfter
	jumpBefore
)

func weekdayJump(t time.Time, target, mode int) time.Time {
	delta := target - isoWeekday(t)
	switch mode {
	case jumpAtOrAfter:
		if delta < 0 {
			delta += 7
		}
	case jumpAfter:
		if delta <= 0 {
			delta += 7
		}
	case jumpBefore:
		if delta >= 0 {
			delta -= 7
		}
	}
	return midnight(t.AddDate(0, 0, delta))
}

func monthJump(t time.Time, target time.Month, mode int) time.Time {
	year := t.Year()
	switch mode {
	case jumpAfter:
		if target <= t.Month() {
			year++
		}
	case jumpBefore:
		if target >= t.Month() {
			year--
		}
	}
	hour, min, sec := t.Clock()
	return time.Date(year, target, t.Day(), hour, min, sec, 0, t.Location())
}

// clause is one step of a relative expression. Counted clauses carry a
// sign that "ago" may later flip; the rest apply a fixed adjustment.
type clause struct {
	counted bool
	n       int
	shift   unitShift
	apply   func(time.Time) time.Time
}

func looksLikeTime(tok string) bool {
	if strings.Contains(tok, ":") {
		return true
	}
	if strings.HasSuffix(tok, "am") || strings.HasSuffix(tok, "pm") {
		return isDigits(tok[:len(tok)-2])
	}
	return false
}

func scan(fields []string) ([]clause, error) {
	clauses := make([]clause, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		tok := fields[i]
		switch tok {
		case "now":
			continue
		case "today", "midnight":
			clauses = append(clauses, clause{apply: midnight})
			continue
		case "tomorrow":
			clauses = append(clauses, clause{apply: func(t time.Time) time.Time {
				return midnight(t.AddDate(0, 0, 1))
			}})
			continue
		case "yesterday":
			clauses = append(clauses, clause{apply: func(t time.Time) time.Time {
				return midnight(t.AddDate(0, 0, -1))
			}})
			continue
		case "noon":
			clauses = append(clauses, clause{apply: func(t time.Time) time.Time {
				return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
			}})
			continue
		case "ago":
			flipped := false
			for j := range clauses {
				if clauses[j].counted {
					clauses[j].n = -clauses[j].n
					flipped = true
				}
			}
			if !flipped {
				return nil, fmt.Errorf("%q without a preceding count: %w", tok, ErrExpression)
			}
			continue
		case "next", "last":
			if i+1 >= len(fields) {
				return nil, fmt.Errorf("%q needs a following unit, weekday or month: %w", tok, ErrExpression)
			}
			mode, n := jumpAfter, 1
			if tok == "last" {
				mode, n = jumpBefore, -1
			}
			i++
			arg := fields[i]
			if shift, ok := units[arg]; ok {
				clauses = append(clauses, clause{counted: true, n: n, shift: shift})
				continue
			}
			if wd, ok := weekdayNames[arg]; ok {
				clauses = append(clauses, clause{apply: func(t time.Time) time.Time {
					return weekdayJump(t, wd, mode)
				}})
				continue
			}
			if m, ok := parseMonthName(arg); ok {
				clauses = append(clauses, clause{apply: func(t time.Time) time.Time {
					return monthJump(t, m, mode)
				}})
				continue
			}
			return nil, fmt.Errorf("%q %q: not a unit, weekday or month: %w", tok, arg, ErrExpression)
		}
		if n, err := strconv.Atoi(tok); err == nil {
			if i+1 >= len(fields) {
				return nil, fmt.Errorf("count %q needs a unit: %w", tok, ErrExpression)
			}
			i++
			shift, ok := units[fields[i]]
			if !ok {
				return nil, fmt.Errorf("%q: not a unit: %w", fields[i], ErrExpression)
			}
			clauses = append(clauses, clause{counted: true, n: n, shift: shift})
			continue
		}
		if shift, ok := units[tok]; ok {
			clauses = append(clauses, clause{counted: true, n: 1, shift: shift})
			continue
		}
		if wd, ok := weekdayNames[tok]; ok {
			clauses = append(clauses, clause{apply: func(t time.Time) time.Time {
				return weekdayJump(t, wd, jumpAtOrAfter)
			}})
			continue
		}
		if looksLikeTime(tok) {
			tod, err := parseTimeOfDay(tok)
			if err != nil {
				return nil, fmt.Errorf("%q: %v: %w", tok, err, ErrExpression)
			}
			clauses = append(clauses, clause{apply: func(t time.Time) time.Time {
				return time.Date(t.Year(), t.Month(), t.Day(), tod.hour(), tod.minute(), tod.second(), 0, t.Location())
			}})
			continue
		}
		if m, ok := parseMonthName(tok); ok {
			clauses = append(clauses, clause{apply: func(t time.Time) time.Time {
				return monthJump(t, m, jumpAtOrAfter)
			}})
			continue
		}
		return nil, fmt.Errorf("unrecognized token %q: %w", tok, ErrExpression)
	}
	return clauses, nil
}

// Parse evaluates expr against base and returns the resulting instant.
// Relative clauses apply in order to base; an expression with no valid
// clause syntax is handed to dateparse in base's location. When both
// readings fail the returned error carries both causes.
func Parse(expr string, base time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(expr)
	if len(trimmed) == 0 {
		return time.Time{}, fmt.Errorf("empty expression: %w", ErrExpression)
	}
	fields := strings.Fields(strings.ReplaceAll(strings.ToLower(trimmed), ",", " "))
	clauses, scanErr := scan(fields)
	if scanErr == nil {
		t := base
		for _, c := range clauses {
			if c.counted {
				t = c.shift(t, c.n)
				continue
			}
			t = c.apply(t)
		}
		return t, nil
	}
	t, absErr := dateparse.ParseIn(trimmed, base.Location())
	if absErr == nil {
		return t, nil
	}
	errs := errors.M{}
	errs.Append(scanErr, absErr)
	return time.Time{}, errs.Err()
}
