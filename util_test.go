// Copyright 2026 epochware llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"time"

	"github.com/epochware/datetime"
)

// localStamp composes a Stamp from local wall clock fields so tests
// read back the same values regardless of the zone the test host runs
// in.
func localStamp(year, month, day, hour, minute, sec int) datetime.Stamp {
	return datetime.NewStamp(time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.Local).Unix())
}

func zonedIn(loc *time.Location, year, month, day, hour, minute, sec int) *datetime.Zoned {
	return datetime.NewZoned(time.Date(year, time.Month(month), day, hour, minute, sec, 0, loc))
}

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// anchor is 2011-02-03T13:37:00+0200, the moment used throughout the
// zone-sensitive tests: a Thursday, day 34 of the year, ISO week 5.
func anchor() *datetime.Zoned {
	z, err := datetime.ParseZonedLayout(datetime.LayoutISO8601, "2011-02-03T13:37:00+0200", nil)
	if err != nil {
		panic(err)
	}
	return z
}

const anchorUnix = 1296733020
