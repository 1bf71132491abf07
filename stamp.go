// Copyright 2026 epochware llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datetime provides immutable date and time value types layered
// over the time package. A Stamp is an instant in seconds carried with
// a presentation layout; a Zoned is a moment with an attached time
// zone. Every modifying operation returns a new value, so values of
// both types can be shared between concurrent readers without locking.
//
// The field conventions differ from the time package in two places: the
// day of the year is 1-based and weekdays run Monday=1 through
// Sunday=7. Field replacement is unvalidated; out of range values get
// time.Date's normalization, which WithYearDay exploits to address a
// day by its ordinal within the year.
package datetime

import (
	"strconv"
	"strings"
	"time"

	"github.com/epochware/datetime/relative"
)

// Stamp is an instant in whole seconds since the Unix epoch, together
// with the layout used to render it. Fields are decomposed in the
// process local time zone and recomputed on every access. The zero
// value is the epoch rendered with LayoutDefault.
type Stamp struct {
	sec    int64
	layout string
}

// NewStamp returns a Stamp for the given Unix time in seconds.
func NewStamp(sec int64) Stamp {
	return Stamp{sec: sec}
}

// StampNow returns a Stamp for the current time.
func StampNow() Stamp {
	return Stamp{sec: time.Now().Unix()}
}

// ParseStamp interprets s as a Unix time in seconds when s is entirely
// a base-10 integer, and as a free-form date expression evaluated
// against the current time otherwise (see package relative).
func ParseStamp(s string) (Stamp, error) {
	if sec, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return Stamp{sec: sec}, nil
	}
	t, err := relative.Parse(s, time.Now())
	if err != nil {
		return Stamp{}, err
	}
	return Stamp{sec: t.Unix()}, nil
}

// Unix returns the instant in seconds since the Unix epoch.
func (s Stamp) Unix() int64 {
	return s.sec
}

// Time returns the instant as a time.Time in the local zone.
func (s Stamp) Time() time.Time {
	return time.Unix(s.sec, 0)
}

// Fields returns the decomposition of the instant in the local zone.
func (s Stamp) Fields() Fields {
	return FieldsOf(s.Time())
}

// Year returns the year.
func (s Stamp) Year() int { return s.Fields().Year }

// Month returns the month, 1-12.
func (s Stamp) Month() int { return s.Fields().Month }

// Day returns the day of the month, 1-31.
func (s Stamp) Day() int { return s.Fields().Day }

// YearDay returns the day of the year, 1-366.
func (s Stamp) YearDay() int { return s.Fields().YearDay }

// Weekday returns the day of the week, Monday=1 through Sunday=7.
func (s Stamp) Weekday() int { return s.Fields().Weekday }

// Hour returns the hour, 0-23.
func (s Stamp) Hour() int { return s.Fields().Hour }

// Minute returns the minute, 0-59.
func (s Stamp) Minute() int { return s.Fields().Minute }

// Second returns the second, 0-59.
func (s Stamp) Second() int { return s.Fields().Second }

// Week returns the ISO 8601 week number, 1-53.
func (s Stamp) Week() int {
	_, week := s.Time().ISOWeek()
	return week
}

// DaysInMonth returns the length of the month holding the instant.
func (s Stamp) DaysInMonth() int {
	f := s.Fields()
	return DaysInMonth(f.Year, f.Month)
}

// With returns a Stamp with the given fields replaced and all others
// kept from the current decomposition. Replacement values are not
// validated; they normalize through time.Date.
func (s Stamp) With(fields ...Field) Stamp {
	f := s.Fields().overlay(fields...)
	return Stamp{sec: f.Time(time.Local).Unix(), layout: s.layout}
}

// WithDate returns a Stamp on the given calendar day, keeping the time
// of day.
func (s Stamp) WithDate(year, month, day int) Stamp {
	return s.With(Year(year), Month(month), Day(day))
}

// WithISODate returns a Stamp on the day addressed by the ISO 8601 week
// date (isoYear, week, weekday), keeping the time of day.
func (s Stamp) WithISODate(isoYear, week, weekday int) Stamp {
	f := s.Fields()
	d := isoDate(isoYear, week, weekday, time.Local)
	t := time.Date(d.Year(), d.Month(), d.Day(), f.Hour, f.Minute, f.Second, 0, time.Local)
	return Stamp{sec: t.Unix(), layout: s.layout}
}

// WithYearDay returns a Stamp on the nth day of the current year,
// keeping the time of day. It overlays January n and relies on day of
// month normalization, so n=34 lands on February 3 and values past the
// end of the year roll into the next one.
func (s Stamp) WithYearDay(n int) Stamp {
	return s.With(Month(1), Day(n))
}

// WithWeek moves to the given week of the current ISO year, keeping the
// weekday and time of day.
func (s Stamp) WithWeek(week int) Stamp {
	isoYear, _ := s.Time().ISOWeek()
	return s.WithISODate(isoYear, week, s.Weekday())
}

// WithWeekday moves to the given weekday (Monday=1) of the current ISO
// week, keeping the time of day.
func (s Stamp) WithWeekday(weekday int) Stamp {
	isoYear, week := s.Time().ISOWeek()
	return s.WithISODate(isoYear, week, weekday)
}

// Layout returns the layout used by String and Format, LayoutDefault
// unless WithLayout replaced it.
func (s Stamp) Layout() string {
	if s.layout == "" {
		return LayoutDefault
	}
	return s.layout
}

// WithLayout returns a Stamp rendering through the given layout. The
// instant is unchanged.
func (s Stamp) WithLayout(layout string) Stamp {
	s.layout = layout
	return s
}

// Format renders the instant in the local zone with the given layout,
// or with Layout when layout is empty.
func (s Stamp) Format(layout string) string {
	if layout == "" {
		layout = s.Layout()
	}
	return s.Time().Format(layout)
}

func (s Stamp) String() string {
	return s.Format("")
}

// Modify evaluates a free-form relative or absolute date expression
// against the instant and returns the result, keeping the layout.
func (s Stamp) Modify(expr string) (Stamp, error) {
	t, err := relative.Parse(expr, s.Time())
	if err != nil {
		return Stamp{}, err
	}
	return Stamp{sec: t.Unix(), layout: s.layout}, nil
}

// Equal reports whether both values name the same instant.
func (s Stamp) Equal(o Stamp) bool { return s.sec == o.sec }

// Before reports whether s precedes o.
func (s Stamp) Before(o Stamp) bool { return s.sec < o.sec }

// After reports whether s follows o.
func (s Stamp) After(o Stamp) bool { return s.sec > o.sec }

// In returns the instant as a Zoned in the given location.
func (s Stamp) In(loc *time.Location) *Zoned {
	return NewZoned(time.Unix(s.sec, 0).In(loc))
}
