// Copyright 2026 epochware llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package interval provides calendar-aware intervals expressed as
// year/month/day and hour/minute/second components, in the manner of
// ISO 8601 durations. Unlike time.Duration an Interval has no fixed
// length: adding one month to January 31 and to February 1 moves the
// clock by different amounts. Component arithmetic is delegated to
// time.Time's AddDate and Add and hence inherits their normalization
// of out-of-range values.
package interval

import "time"

// Interval represents a calendar interval. The components are not
// normalized against each other; 90 minutes and 1 hour 30 minutes are
// distinct values that shift an instant by the same amount. Neg applies
// to the interval as a whole.
type Interval struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Neg     bool
}

// New returns an Interval with the supplied components.
func New(years, months, days, hours, minutes, seconds int) Interval {
	return Interval{
		Years:   years,
		Months:  months,
		Days:    days,
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
	}
}

// OfSeconds returns an Interval spanning the given number of seconds,
// the typed equivalent of an "n seconds" interval description.
func OfSeconds(n int) Interval {
	if n < 0 {
		return Interval{Seconds: -n, Neg: true}
	}
	return Interval{Seconds: n}
}

// OfDays returns an Interval spanning the given number of days.
func OfDays(n int) Interval {
	if n < 0 {
		return Interval{Days: -n, Neg: true}
	}
	return Interval{Days: n}
}

// IsZero returns true if all components are zero, regardless of Neg.
func (iv Interval) IsZero() bool {
	return iv.Years == 0 && iv.Months == 0 && iv.Days == 0 &&
		iv.Hours == 0 && iv.Minutes == 0 && iv.Seconds == 0
}

// Negate returns the interval with its sign flipped.
func (iv Interval) Negate() Interval {
	iv.Neg = !iv.Neg
	return iv
}

func (iv Interval) clock() time.Duration {
	return time.Duration(iv.Hours)*time.Hour +
		time.Duration(iv.Minutes)*time.Minute +
		time.Duration(iv.Seconds)*time.Second
}

// AddTo returns t shifted forward by the interval (backward if Neg is
// set). Date components are applied first via AddDate, then the clock
// components, so out-of-range results normalize exactly as time.Date
// does.
func (iv Interval) AddTo(t time.Time) time.Time {
	years, months, days, clock := iv.Years, iv.Months, iv.Days, iv.clock()
	if iv.Neg {
		years, months, days, clock = -years, -months, -days, -clock
	}
	return t.AddDate(years, months, days).Add(clock)
}

// SubtractFrom returns t shifted by the negated interval.
func (iv Interval) SubtractFrom(t time.Time) time.Time {
	return iv.Negate().AddTo(t)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Between returns the component-wise difference from a to b, evaluated
// on the wall clock of a's location. Components are non-negative with
// Neg set when b precedes a. Adding the result to the earlier of the
// two instants lands on the later one, DST transitions aside.
func Between(a, b time.Time) Interval {
	b = b.In(a.Location())
	var neg bool
	if b.Before(a) {
		a, b = b, a
		neg = true
	}
	y1, mo1, d1 := a.Date()
	h1, mi1, s1 := a.Clock()
	y2, mo2, d2 := b.Date()
	h2, mi2, s2 := b.Clock()

	sec := s2 - s1
	if sec < 0 {
		sec += 60
		mi2--
	}
	min := mi2 - mi1
	if min < 0 {
		min += 60
		h2--
	}
	hour := h2 - h1
	if hour < 0 {
		hour += 24
		d2--
	}
	day := d2 - d1
	for day < 0 {
		mo2--
		if mo2 < time.January {
			mo2 = time.December
			y2--
		}
		day += daysIn(y2, mo2)
	}
	month := int(mo2 - mo1)
	if month < 0 {
		month += 12
		y2--
	}
	return Interval{
		Years:   y2 - y1,
		Months:  month,
		Days:    day,
		Hours:   hour,
		Minutes: min,
		Seconds: sec,
		Neg:     neg,
	}
}
