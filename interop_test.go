// Copyright 2026 epochware llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/epochware/datetime"
)

func TestCivilOf(t *testing.T) {
	z := anchor()
	if got, want := z.Civil(), (civil.Date{Year: 2011, Month: time.February, Day: 3}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := z.CivilTime(), (civil.Time{Hour: 13, Minute: 37}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	want := civil.DateTime{
		Date: civil.Date{Year: 2011, Month: time.February, Day: 3},
		Time: civil.Time{Hour: 13, Minute: 37},
	}
	if got := z.CivilDateTime(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// The calendar day tracks the zone, not the instant.
	if got, want := z.In(time.UTC).CivilTime(), (civil.Time{Hour: 11, Minute: 37}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	s := localStamp(2011, 2, 3, 13, 37, 0)
	if got, want := s.Civil(), (civil.Date{Year: 2011, Month: time.February, Day: 3}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromCivil(t *testing.T) {
	d := civil.Date{Year: 2011, Month: time.February, Day: 3}
	z := datetime.FromCivil(d, time.UTC)
	if got, want := z.Unix(), zonedIn(time.UTC, 2011, 2, 3, 0, 0, 0).Unix(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := z.Civil(), d; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// A nil location means the local zone.
	local := datetime.FromCivil(d, nil)
	if got, want := local.Unix(), time.Date(2011, 2, 3, 0, 0, 0, 0, time.Local).Unix(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromCivilDateTime(t *testing.T) {
	utc := anchor().In(time.UTC)
	back := datetime.FromCivilDateTime(utc.CivilDateTime(), time.UTC)
	if got, want := back.Unix(), utc.Unix(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := back.Fields(), utc.Fields(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
