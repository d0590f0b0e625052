// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package jpholiday determines whether a calendar date is a Japanese
// national holiday under the Public Holiday Law of 1948 and all of its
// amendments. Holidays are modeled as an ordered table of rules, each a
// conjunction of year, month and day predicates; amendments are encoded
// as separate entries with disjoint year ranges and the first matching
// entry wins. Substitute holidays (a weekday granted off because a
// holiday fell on a Sunday) and national holidays (a weekday sandwiched
// between two holidays) are derived by rules that query the holiday
// status of adjacent dates.
//
// All operations are pure functions over the immutable rule table and
// are safe for concurrent use.
package jpholiday

import (
	"time"

	"cloudeng.io/jpholiday/dates"
)

// Category classifies how a holiday arises.
type Category int

const (
	// PublicHoliday is a fixed, floating or computed observance named
	// by the Public Holiday Law.
	PublicHoliday Category = iota
	// SubstituteHoliday is a weekday granted off because a public
	// holiday fell on a Sunday.
	SubstituteHoliday
	// NationalHoliday is a weekday granted off because it falls between
	// two public holidays.
	NationalHoliday
)

func (c Category) String() string {
	switch c {
	case PublicHoliday:
		return "public holiday"
	case SubstituteHoliday:
		return "substitute holiday"
	case NationalHoliday:
		return "national holiday"
	}
	return "unknown"
}

// Holiday represents a single holiday on a specific date.
type Holiday struct {
	Name     string
	Date     dates.CalendarDate
	Category Category
}

func (h Holiday) String() string {
	return h.Date.String() + " " + h.Name
}

// IsHoliday returns true if the given date is a holiday of any
// category.
func IsHoliday(cd dates.CalendarDate) bool {
	_, ok := resolve(cd, true, true)
	return ok
}

// GetHoliday returns the holiday falling on the given date, if any.
func GetHoliday(cd dates.CalendarDate) (Holiday, bool) {
	r, ok := resolve(cd, true, true)
	if !ok {
		return Holiday{}, false
	}
	return Holiday{Name: r.name, Date: cd, Category: r.category}, true
}

// ExistsHoliday returns true if any date in the range [from, to]
// inclusive is a holiday. It returns false if to is earlier than from.
func ExistsHoliday(from, to dates.CalendarDate) bool {
	for cd := range dates.NewCalendarDateRange(from, to).Dates() {
		if IsHoliday(cd) {
			return true
		}
	}
	return false
}

// GetHolidays returns the holidays falling in the range [from, to]
// inclusive in chronological order. It returns nil if the range
// contains no holidays or if to is earlier than from.
func GetHolidays(from, to dates.CalendarDate) []Holiday {
	var holidays []Holiday
	for cd := range dates.NewCalendarDateRange(from, to).Dates() {
		if h, ok := GetHoliday(cd); ok {
			holidays = append(holidays, h)
		}
	}
	return holidays
}

// searchWindowDays bounds the next/previous holiday searches. Every
// year from 1949 on contains a holiday, so a window of just over a year
// is sufficient within the supported era.
const searchWindowDays = 380

// tableStart is the earliest date any rule can match.
var tableStart = dates.NewCalendarDate(1949, 1, 1)

// NextHoliday returns the first holiday strictly after the given date.
// It returns false only if no holiday exists in the year following the
// date; for dates before the supported era the search starts at the
// beginning of the era.
func NextHoliday(cd dates.CalendarDate) (Holiday, bool) {
	if cd < tableStart.Yesterday() {
		cd = tableStart.Yesterday()
	}
	next := cd.Tomorrow()
	for i := 0; i < searchWindowDays; i++ {
		if h, ok := GetHoliday(next); ok {
			return h, true
		}
		next = next.Tomorrow()
	}
	return Holiday{}, false
}

// PreviousHoliday returns the last holiday strictly before the given
// date. It returns false if no holiday exists in the year preceding the
// date or if the date is at or before the start of the supported era.
func PreviousHoliday(cd dates.CalendarDate) (Holiday, bool) {
	prev := cd.Yesterday()
	for i := 0; i < searchWindowDays && prev >= tableStart; i++ {
		if h, ok := GetHoliday(prev); ok {
			return h, true
		}
		prev = prev.Yesterday()
	}
	return Holiday{}, false
}

// IsBusinessDay returns true if the given date is neither a weekend day
// nor a holiday.
func IsBusinessDay(cd dates.CalendarDate) bool {
	wd := cd.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !IsHoliday(cd)
}

// BusinessDaysBetween returns the number of business days in the range
// [from, to] inclusive. It returns 0 if to is earlier than from.
func BusinessDaysBetween(from, to dates.CalendarDate) int {
	count := 0
	for cd := range dates.NewCalendarDateRange(from, to).Dates() {
		if IsBusinessDay(cd) {
			count++
		}
	}
	return count
}
