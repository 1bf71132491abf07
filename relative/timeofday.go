// Copyright 2026 epochware llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package relative

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// timeOfDay holds an hour, minute and second packed into a uint32.
type timeOfDay uint32

func newTimeOfDay(hour, minute, second int) timeOfDay {
	return timeOfDay(hour<<16 | minute<<8 | second)
}

func (t timeOfDay) hour() int {
	return int(t >> 16)
}

func (t timeOfDay) minute() int {
	return int(t >> 8 & 0xff)
}

func (t timeOfDay) second() int {
	return int(t & 0xff)
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if !unicode.IsNumber(c) {
			return false
		}
	}
	return true
}

func parseHour(h string, ampmState int) (int, error) {
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour: %s", h)
	}
	if ampmState != 0 && hour > 12 {
		return 0, fmt.Errorf("invalid hour: %s with am/pm", h)
	}
	if ampmState == 2 && hour < 12 {
		hour += 12
	}
	if ampmState == 1 && hour == 12 {
		hour = 0
	}
	return hour, nil
}

func parseHourMinuteSec(h, m, s string, ampmState int) (timeOfDay, error) {
	if !isDigits(h) || !isDigits(m) || !isDigits(s) {
		return 0, fmt.Errorf("invalid time: %s:%s:%s", h, m, s)
	}
	hour, err := parseHour(h, ampmState)
	if err != nil {
		return 0, err
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute: %s", m)
	}
	sec, err := strconv.Atoi(s)
	if err != nil || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid second: %s", s)
	}
	return newTimeOfDay(hour, minute, sec), nil
}

// parseTimeOfDay parses val in formats '08[:12[:10]][am|pm]'.
func parseTimeOfDay(val string) (timeOfDay, error) {
	if len(val) == 0 {
		return 0, fmt.Errorf("empty value, expected '08[:12][:10][am|pm]'")
	}
	tl := strings.TrimSpace(strings.ToLower(val))
	ampmState := 0
	if strings.HasSuffix(tl, "am") {
		tl = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 1
	}
	if strings.HasSuffix(tl, "pm") {
		tl = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 2
	}
	parts := strings.Split(tl, ":")
	switch len(parts) {
	case 1:
		return parseHourMinuteSec(parts[0], "0", "0", ampmState)
	case 2:
		return parseHourMinuteSec(parts[0], parts[1], "0", ampmState)
	case 3:
		return parseHourMinuteSec(parts[0], parts[1], parts[2], ampmState)
	}
	return 0, fmt.Errorf("invalid time format, expected '08:12[:10]'")
}
