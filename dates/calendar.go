// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarDate represents a date with a year, month and day as a single
// comparable value. The year is stored in the top 16 bits, the month in
// the next 8 bits and the day in the lowest 8 bits so that CalendarDate
// values sort and compare in date order. CalendarDate values are
// immutable; all methods return new values.
type CalendarDate uint32

// NewCalendarDate returns a CalendarDate for the given year, month and
// day. The components are not validated; use Parse or ParseCalendarDate
// to construct a CalendarDate from untrusted input.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(year)<<16 | CalendarDate(month)<<8 | CalendarDate(day)
}

// CalendarDateFromTime returns the CalendarDate for the given time in
// the time's location.
func CalendarDateFromTime(when time.Time) CalendarDate {
	return NewCalendarDate(when.Year(), Month(when.Month()), when.Day())
}

// Year returns the year.
func (cd CalendarDate) Year() int {
	return int(cd >> 16 & 0xffff)
}

// Month returns the month.
func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// Time returns the time at midnight on the date in the given location.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, loc)
}

// Weekday returns the day of the week for the date.
func (cd CalendarDate) Weekday() time.Weekday {
	return cd.Time(time.UTC).Weekday()
}

// IsValid returns true if the date has a month in the range 1-12 and a
// day that exists in that month for the date's year.
func (cd CalendarDate) IsValid() bool {
	m := cd.Month()
	if m < 1 || m > 12 {
		return false
	}
	return cd.Day() >= 1 && cd.Day() <= DaysInMonth(cd.Year(), m)
}

// Tomorrow returns the date of the next day. Dec-31 wraps to Jan-01 of
// the following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	if month == 12 && day == 31 {
		return NewCalendarDate(year+1, 1, 1)
	}
	if day >= daysInMonthForYear(year)[month-1] {
		return NewCalendarDate(year, month+1, 1)
	}
	return NewCalendarDate(year, month, day+1)
}

// Yesterday returns the date of the previous day. Jan-01 wraps to
// Dec-31 of the preceding year.
func (cd CalendarDate) Yesterday() CalendarDate {
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	if month == 1 && day == 1 {
		return NewCalendarDate(year-1, 12, 31)
	}
	if day <= 1 {
		month--
		return NewCalendarDate(year, month, daysInMonthForYear(year)[month-1])
	}
	return NewCalendarDate(year, month, day-1)
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year(), cd.Month(), cd.Day())
}

// Parse parses a date in the formats '2006-01-02' or '2006/01/02' with
// error checking for a valid month and day.
func (cd *CalendarDate) Parse(val string) error {
	sep := "-"
	if strings.Contains(val, "/") {
		sep = "/"
	}
	parts := strings.Split(val, sep)
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected format '2006-01-02' or '2006/01/02'", val)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 || year > 0xffff {
		return fmt.Errorf("invalid year: %s", parts[0])
	}
	month, err := ParseNumericMonth(parts[1])
	if err != nil {
		return err
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("invalid day: %s", parts[2])
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("invalid day for %04d %v: %d", year, month, day)
	}
	*cd = NewCalendarDate(year, month, day)
	return nil
}

// ParseCalendarDate is like CalendarDate.Parse but returns the parsed
// date.
func ParseCalendarDate(val string) (CalendarDate, error) {
	var cd CalendarDate
	if err := cd.Parse(val); err != nil {
		return 0, err
	}
	return cd, nil
}

// CalendarDateList represents a list of CalendarDate values.
type CalendarDateList []CalendarDate

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if the list contains the given date.
func (cdl CalendarDateList) Contains(cd CalendarDate) bool {
	for _, d := range cdl {
		if d == cd {
			return true
		}
	}
	return false
}
