// Copyright 2026 epochware llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import "time"

// Fields is the decomposition of an instant into calendar components.
// Month, Day and YearDay are 1-based and Weekday runs Monday=1 through
// Sunday=7, unlike time.Weekday's Sunday=0. Week numbers are not part
// of the decomposition; they are derived via time.Time.ISOWeek.
type Fields struct {
	Year    int
	Month   int // 1-12
	Day     int // 1-31
	YearDay int // 1-366
	Weekday int // 1-7, Monday=1
	Hour    int // 0-23
	Minute  int // 0-59
	Second  int // 0-59
}

// FieldsOf decomposes t in its own location.
func FieldsOf(t time.Time) Fields {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return Fields{
		Year:    year,
		Month:   int(month),
		Day:     day,
		YearDay: t.YearDay(),
		Weekday: wd,
		Hour:    hour,
		Minute:  minute,
		Second:  sec,
	}
}

// Time recomposes the fields into an instant in loc via time.Date.
// Only Year, Month, Day, Hour, Minute and Second take part; YearDay and
// Weekday are derived on decomposition and never fed back. Out of range
// components normalize as time.Date defines: Month=13 rolls into the
// next year and Day=34 in January rolls into February.
func (f Fields) Time(loc *time.Location) time.Time {
	return time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, 0, loc)
}

// Field replaces one component of a decomposition. Values are not
// validated; recomposition normalizes them. There are deliberately no
// YearDay or Weekday fields, since those components cannot feed
// recomposition.
type Field func(*Fields)

// Year replaces the year component.
func Year(n int) Field { return func(f *Fields) { f.Year = n } }

// Month replaces the month component, 1-12.
func Month(n int) Field { return func(f *Fields) { f.Month = n } }

// Day replaces the day of the month component, 1-31.
func Day(n int) Field { return func(f *Fields) { f.Day = n } }

// Hour replaces the hour component, 0-23.
func Hour(n int) Field { return func(f *Fields) { f.Hour = n } }

// Minute replaces the minute component, 0-59.
func Minute(n int) Field { return func(f *Fields) { f.Minute = n } }

// Second replaces the second component, 0-59.
func Second(n int) Field { return func(f *Fields) { f.Second = n } }

func (f Fields) overlay(fields ...Field) Fields {
	for _, field := range fields {
		field(&f)
	}
	return f
}

// isoDate returns midnight of the day addressed by the ISO 8601 week
// date (isoYear, week, weekday), weekday running Monday=1. January 4 is
// always part of week 1. Out of range weeks and weekdays roll through
// the calendar rather than failing.
func isoDate(isoYear, week, weekday int, loc *time.Location) time.Time {
	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, loc)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := jan4.AddDate(0, 0, 1-wd)
	return monday.AddDate(0, 0, (week-1)*7+weekday-1)
}

var (
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
}

// DaysInMonth returns the number of days in the given month (1-12) for
// the given year.
func DaysInMonth(year, month int) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}
