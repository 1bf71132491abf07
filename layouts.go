// Copyright 2026 epochware llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import "time"

// LayoutDefault is the layout a Stamp renders with when none is set.
const LayoutDefault = time.DateTime

// Standard timestamp layouts, named for the conventions they encode.
// They are plain layout strings for time.Format and time.Parse, and
// several conventions share one rendering. LayoutRFC822 keeps the
// weekday and seconds that RFC 822 itself defines and so differs from
// time.RFC822.
const (
	LayoutAtom    = time.RFC3339
	LayoutCookie  = "Monday, 02-Jan-2006 15:04:05 MST"
	LayoutISO8601 = "2006-01-02T15:04:05-0700"
	LayoutRFC822  = "Mon, 02 Jan 06 15:04:05 -0700"
	LayoutRFC850  = time.RFC850
	LayoutRFC1036 = "Mon, 02 Jan 06 15:04:05 -0700"
	LayoutRFC1123 = time.RFC1123Z
	LayoutRFC2822 = time.RFC1123Z
	LayoutRFC3339 = time.RFC3339
	LayoutRSS     = time.RFC1123Z
	LayoutW3C     = time.RFC3339
)
