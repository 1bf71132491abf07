// Copyright 2026 epochware llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package relative_test

import (
	"errors"
	"testing"
	"time"

	"github.com/epochware/datetime/relative"
)

func utc(year, month, day, hour, min, sec int) time.Time {
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC)
}

func TestParse(t *testing.T) {
	// 2011-02-03 is a Thursday.
	base := utc(2011, 2, 3, 13, 37, 0)
	for _, tc := range []struct {
		expr string
		want time.Time
	}{
		{"now", base},
		{"2 days", utc(2011, 2, 5, 13, 37, 0)},
		{"+3 days", utc(2011, 2, 6, 13, 37, 0)},
		{"-1 day", utc(2011, 2, 2, 13, 37, 0)},
		{"2 days ago", utc(2011, 2, 1, 13, 37, 0)},
		{"1 year 2 months ago", utc(2009, 12, 3, 13, 37, 0)},
		{"+1 week", utc(2011, 2, 10, 13, 37, 0)},
		{"fortnight", utc(2011, 2, 17, 13, 37, 0)},
		{"+90 minutes", utc(2011, 2, 3, 15, 7, 0)},
		{"-3600 secs", utc(2011, 2, 3, 12, 37, 0)},

		// Keywords reset or pin the clock.
		{"today", utc(2011, 2, 3, 0, 0, 0)},
		{"midnight", utc(2011, 2, 3, 0, 0, 0)},
		{"noon", utc(2011, 2, 3, 12, 0, 0)},
		{"tomorrow", utc(2011, 2, 4, 0, 0, 0)},
		{"yesterday", utc(2011, 2, 2, 0, 0, 0)},
		{"yesterday noon", utc(2011, 2, 2, 12, 0, 0)},
		{"tomorrow 8am", utc(2011, 2, 4, 8, 0, 0)},

		// Weekday jumps land on midnight of the target day.
		{"thursday", utc(2011, 2, 3, 0, 0, 0)},
		{"friday", utc(2011, 2, 4, 0, 0, 0)},
		{"mon", utc(2011, 2, 7, 0, 0, 0)},
		{"next monday", utc(2011, 2, 7, 0, 0, 0)},
		{"next thursday", utc(2011, 2, 10, 0, 0, 0)},
		{"last friday", utc(2011, 1, 28, 0, 0, 0)},
		{"last thursday", utc(2011, 1, 27, 0, 0, 0)},

		// Unit jumps keep the clock.
		{"next month", utc(2011, 3, 3, 13, 37, 0)},
		{"last year", utc(2010, 2, 3, 13, 37, 0)},
		{"next week", utc(2011, 2, 10, 13, 37, 0)},

		// Month jumps keep the day and clock.
		{"march", utc(2011, 3, 3, 13, 37, 0)},
		{"february", utc(2011, 2, 3, 13, 37, 0)},
		{"next february", utc(2012, 2, 3, 13, 37, 0)},
		{"last january", utc(2011, 1, 3, 13, 37, 0)},
		{"last february", utc(2010, 2, 3, 13, 37, 0)},
		{"december", utc(2011, 12, 3, 13, 37, 0)},

		// Clock settings.
		{"13:45", utc(2011, 2, 3, 13, 45, 0)},
		{"1:37:05pm", utc(2011, 2, 3, 13, 37, 5)},
		{"8am", utc(2011, 2, 3, 8, 0, 0)},
		{"12am", utc(2011, 2, 3, 0, 0, 0)},
		{"12pm", utc(2011, 2, 3, 12, 0, 0)},
		{"23:59:59", utc(2011, 2, 3, 23, 59, 59)},

		// Compound expressions evaluate left to right.
		{"next monday 13:37", utc(2011, 2, 7, 13, 37, 0)},
		{"+1 year, 2 months, 3 days", utc(2012, 4, 6, 13, 37, 0)},
		{"tomorrow +2 hours", utc(2011, 2, 4, 2, 0, 0)},

		// Absolute expressions fall through to the date parser.
		{"2011-02-03T13:37:00+0200", time.Unix(1296733020, 0)},
		{"2011-02-03 13:37:00", base},
		{"February 3, 2011", utc(2011, 2, 3, 0, 0, 0)},
	} {
		got, err := relative.Parse(tc.expr, base)
		if err != nil {
			t.Errorf("%q: %v", tc.expr, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("%q: got %v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestParseSequential(t *testing.T) {
	// Each clause applies to the result of the one before, so counted
	// units roll through the calendar one at a time.
	base := utc(2011, 1, 1, 0, 0, 0)
	got, err := relative.Parse("+1 year, 2 months, 3 days", base)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := utc(2012, 3, 4, 0, 0, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// "ago" flips every count seen so far.
	got, err = relative.Parse("1 year 2 months 3 days ago", base)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := utc(2009, 10, 29, 0, 0, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseLocation(t *testing.T) {
	// Relative results stay in the base's zone and absolute expressions
	// without a zone resolve in it.
	eet := time.FixedZone("EET", 2*60*60)
	base := time.Date(2011, 2, 3, 13, 37, 0, 0, eet)

	got, err := relative.Parse("tomorrow", base)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := time.Date(2011, 2, 4, 0, 0, 0, 0, eet); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := got.Location(), eet; got != want {
		t.Errorf("got zone %v, want %v", got, want)
	}

	got, err = relative.Parse("2011-02-03 13:37:00", base)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := got.Unix(), base.Unix(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	base := utc(2011, 2, 3, 13, 37, 0)
	for _, expr := range []string{
		"",
		"   ",
		"@@",
		"5 parsecs",
		"5",
		"ago",
		"next",
		"last",
		"next eternity",
		"25:00",
		"13:75",
		"13:37:99",
		"13am",
	} {
		if _, err := relative.Parse(expr, base); !errors.Is(err, relative.ErrExpression) {
			t.Errorf("%q: expected ErrExpression, got %v", expr, err)
		}
	}
}
