// Copyright 2026 epochware llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/epochware/datetime/interval"
	"github.com/epochware/datetime/relative"
)

// ErrTypeMismatch is wrapped by errors reported for values of a type
// this package cannot convert to an instant.
var ErrTypeMismatch = errors.New("incompatible type for date arithmetic")

// Zoned is an immutable moment in time in a specific time zone. Fields
// are decomposed in that zone and cached on first access; every
// modifying method builds a brand-new value, so a *Zoned can be shared
// between concurrent readers without locking. Sub-second precision in
// the backing time survives Add, Sub and In, but is dropped by field
// replacement.
type Zoned struct {
	t    time.Time
	memo *fieldsMemo
}

// fieldsMemo lives in its own allocation so that constructing a value
// in place (Scan, the unmarshalers) swaps the cache instead of copying
// a sync.Once.
type fieldsMemo struct {
	once sync.Once
	f    Fields
}

// NewZoned returns a Zoned for t in t's location.
func NewZoned(t time.Time) *Zoned {
	return &Zoned{t: t, memo: &fieldsMemo{}}
}

// ZonedNow returns a Zoned for the current time in the local zone.
func ZonedNow() *Zoned {
	return NewZoned(time.Now())
}

// ZonedUnix returns a Zoned for the given Unix time in seconds,
// expressed in loc. A nil loc means the local zone.
func ZonedUnix(sec int64, loc *time.Location) *Zoned {
	if loc == nil {
		loc = time.Local
	}
	return NewZoned(time.Unix(sec, 0).In(loc))
}

// ParseZoned evaluates a free-form relative or absolute date expression
// against the current time in loc (see package relative). A nil loc
// means the local zone.
func ParseZoned(s string, loc *time.Location) (*Zoned, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := relative.Parse(s, time.Now().In(loc))
	if err != nil {
		return nil, err
	}
	return NewZoned(t), nil
}

// ParseZonedLayout parses value strictly against layout, in loc when
// the value carries no zone of its own. A nil loc means the local zone.
func ParseZonedLayout(layout, value string, loc *time.Location) (*Zoned, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return nil, err
	}
	return NewZoned(t), nil
}

// Time returns the moment as a time.Time in the value's zone.
func (z *Zoned) Time() time.Time {
	return z.t
}

// Unix returns the instant in seconds since the Unix epoch.
func (z *Zoned) Unix() int64 {
	return z.t.Unix()
}

// Location returns the value's time zone.
func (z *Zoned) Location() *time.Location {
	return z.t.Location()
}

// Stamp returns the instant as a Stamp, dropping the zone.
func (z *Zoned) Stamp() Stamp {
	return Stamp{sec: z.t.Unix()}
}

// Fields returns the decomposition of the moment in its zone, computed
// on first access and cached for the value's lifetime.
func (z *Zoned) Fields() Fields {
	m := z.memo
	if m == nil { // zero value, not built by a constructor
		return FieldsOf(z.t)
	}
	m.once.Do(func() { m.f = FieldsOf(z.t) })
	return m.f
}

// Year returns the year.
func (z *Zoned) Year() int { return z.Fields().Year }

// Month returns the month, 1-12.
func (z *Zoned) Month() int { return z.Fields().Month }

// Day returns the day of the month, 1-31.
func (z *Zoned) Day() int { return z.Fields().Day }

// YearDay returns the day of the year, 1-366.
func (z *Zoned) YearDay() int { return z.Fields().YearDay }

// Weekday returns the day of the week, Monday=1 through Sunday=7.
func (z *Zoned) Weekday() int { return z.Fields().Weekday }

// Hour returns the hour, 0-23.
func (z *Zoned) Hour() int { return z.Fields().Hour }

// Minute returns the minute, 0-59.
func (z *Zoned) Minute() int { return z.Fields().Minute }

// Second returns the second, 0-59.
func (z *Zoned) Second() int { return z.Fields().Second }

// Week returns the ISO 8601 week number, 1-53.
func (z *Zoned) Week() int {
	_, week := z.t.ISOWeek()
	return week
}

// DaysInMonth returns the length of the month holding the moment.
func (z *Zoned) DaysInMonth() int {
	f := z.Fields()
	return DaysInMonth(f.Year, f.Month)
}

// derive applies mod to a copy of the backing time and wraps the result
// in a new value with an empty field cache. Every modifying method
// funnels through here.
func (z *Zoned) derive(mod func(time.Time) time.Time) *Zoned {
	return &Zoned{t: mod(z.t), memo: &fieldsMemo{}}
}

// reset rebuilds the receiver around t, used by the unmarshalers.
func (z *Zoned) reset(t time.Time) {
	z.t = t
	z.memo = &fieldsMemo{}
}

// With returns a Zoned with the given fields replaced and all others
// kept from the current decomposition, in the same zone. Replacement
// values are not validated; they normalize through time.Date.
func (z *Zoned) With(fields ...Field) *Zoned {
	f := z.Fields().overlay(fields...)
	return z.derive(func(t time.Time) time.Time {
		return f.Time(t.Location())
	})
}

// WithDate returns a Zoned on the given calendar day, keeping the time
// of day and zone.
func (z *Zoned) WithDate(year, month, day int) *Zoned {
	return z.With(Year(year), Month(month), Day(day))
}

// WithTime returns a Zoned at the given clock time, keeping the day and
// zone.
func (z *Zoned) WithTime(hour, minute, second int) *Zoned {
	return z.With(Hour(hour), Minute(minute), Second(second))
}

// WithISODate returns a Zoned on the day addressed by the ISO 8601 week
// date (isoYear, week, weekday), keeping the time of day and zone.
func (z *Zoned) WithISODate(isoYear, week, weekday int) *Zoned {
	f := z.Fields()
	return z.derive(func(t time.Time) time.Time {
		d := isoDate(isoYear, week, weekday, t.Location())
		return time.Date(d.Year(), d.Month(), d.Day(), f.Hour, f.Minute, f.Second, 0, t.Location())
	})
}

// WithYearDay returns a Zoned on the nth day of the current year,
// keeping the time of day and zone. It overlays January n and relies on
// day of month normalization, so n=34 lands on February 3.
func (z *Zoned) WithYearDay(n int) *Zoned {
	return z.With(Month(1), Day(n))
}

// WithWeek moves to the given week of the current ISO year, keeping the
// weekday, time of day and zone.
func (z *Zoned) WithWeek(week int) *Zoned {
	isoYear, _ := z.t.ISOWeek()
	return z.WithISODate(isoYear, week, z.Weekday())
}

// WithWeekday moves to the given weekday (Monday=1) of the current ISO
// week, keeping the time of day and zone.
func (z *Zoned) WithWeekday(weekday int) *Zoned {
	isoYear, week := z.t.ISOWeek()
	return z.WithISODate(isoYear, week, weekday)
}

// In returns the same instant expressed in loc.
func (z *Zoned) In(loc *time.Location) *Zoned {
	return z.derive(func(t time.Time) time.Time {
		return t.In(loc)
	})
}

// Add returns the moment shifted forward by the calendar interval.
// Component arithmetic carries across minute, hour and day boundaries
// as time.Date defines.
func (z *Zoned) Add(iv interval.Interval) *Zoned {
	return z.derive(iv.AddTo)
}

// Sub returns the moment shifted backward by the calendar interval.
func (z *Zoned) Sub(iv interval.Interval) *Zoned {
	return z.derive(iv.SubtractFrom)
}

// Diff returns the component-wise calendar difference from z to other,
// evaluated in z's zone. other may be a *Zoned, a Stamp or a time.Time;
// anything else fails with ErrTypeMismatch.
func (z *Zoned) Diff(other any) (interval.Interval, error) {
	switch o := other.(type) {
	case *Zoned:
		return interval.Between(z.t, o.t), nil
	case Stamp:
		return interval.Between(z.t, o.Time()), nil
	case time.Time:
		return interval.Between(z.t, o), nil
	}
	return interval.Interval{}, fmt.Errorf("cannot diff %T: %w", other, ErrTypeMismatch)
}

// Modify evaluates a free-form relative or absolute date expression
// against the moment and returns the result (see package relative).
func (z *Zoned) Modify(expr string) (*Zoned, error) {
	t, err := relative.Parse(expr, z.t)
	if err != nil {
		return nil, err
	}
	return z.derive(func(time.Time) time.Time { return t }), nil
}

// Format renders the moment with the given layout, or with
// LayoutRFC3339 when layout is empty.
func (z *Zoned) Format(layout string) string {
	if layout == "" {
		layout = LayoutRFC3339
	}
	return z.t.Format(layout)
}

func (z *Zoned) String() string {
	return z.Format("")
}

// Equal reports whether both values name the same instant, regardless
// of zone.
func (z *Zoned) Equal(o *Zoned) bool { return z.t.Equal(o.t) }

// Before reports whether z precedes o.
func (z *Zoned) Before(o *Zoned) bool { return z.t.Before(o.t) }

// After reports whether z follows o.
func (z *Zoned) After(o *Zoned) bool { return z.t.After(o.t) }
