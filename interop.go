// Copyright 2026 epochware llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"time"

	"cloud.google.com/go/civil"
)

// Conversions to and from the civil package's zone-free calendar types.

// Civil returns the calendar day holding the moment, in its zone.
func (z *Zoned) Civil() civil.Date {
	return civil.DateOf(z.t)
}

// CivilTime returns the clock reading of the moment, in its zone.
func (z *Zoned) CivilTime() civil.Time {
	return civil.TimeOf(z.t)
}

// CivilDateTime returns the calendar day and clock reading of the
// moment, in its zone.
func (z *Zoned) CivilDateTime() civil.DateTime {
	return civil.DateTimeOf(z.t)
}

// Civil returns the calendar day holding the instant, in the local
// zone.
func (s Stamp) Civil() civil.Date {
	return civil.DateOf(s.Time())
}

// FromCivil returns the start of day d in loc. A nil loc means the
// local zone.
func FromCivil(d civil.Date, loc *time.Location) *Zoned {
	if loc == nil {
		loc = time.Local
	}
	return NewZoned(d.In(loc))
}

// FromCivilDateTime returns the moment dt names in loc. A nil loc means
// the local zone.
func FromCivilDateTime(dt civil.DateTime, loc *time.Location) *Zoned {
	if loc == nil {
		loc = time.Local
	}
	return NewZoned(dt.In(loc))
}
