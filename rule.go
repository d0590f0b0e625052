// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jpholiday

import (
	"time"

	"cloudeng.io/jpholiday/dates"
)

// yearRange is an inclusive range of years. The sentinel values
// minYear/maxYear encode open-ended ranges.
type yearRange struct {
	from, to int
}

const (
	minYear = 0
	maxYear = 1<<16 - 1
)

func yearIs(year int) yearRange {
	return yearRange{year, year}
}

// yearBefore includes the boundary year itself, as does yearAfter.
// Several table entries rely on this inclusive convention, eg. the
// amendment "after 1949" applies to 1949.
func yearBefore(year int) yearRange {
	return yearRange{minYear, year}
}

func yearAfter(year int) yearRange {
	return yearRange{year, maxYear}
}

func yearBetween(from, to int) yearRange {
	return yearRange{from, to}
}

func (yr yearRange) includes(year int) bool {
	return yr.from <= year && year <= yr.to
}

// monthRange is an inclusive range of months.
type monthRange struct {
	from, to dates.Month
}

func monthIs(month dates.Month) monthRange {
	return monthRange{month, month}
}

func anyMonth() monthRange {
	return monthRange{1, 12}
}

func (mr monthRange) includes(month dates.Month) bool {
	return mr.from <= month && month <= mr.to
}

// dayRule determines which days of a month a rule applies to. It is a
// tagged union with three variants: an exact day of the month, the nth
// occurrence of a weekday within the month, and an arbitrary predicate
// over the full date (used for the equinox formulas and for the
// substitute and national holiday rules).
type dayRule struct {
	kind    dayRuleKind
	day     int          // dayOfMonthRule
	week    int          // nthWeekdayRule, counted from 1
	weekday time.Weekday // nthWeekdayRule
	fn      func(dates.CalendarDate) bool
}

type dayRuleKind int

const (
	dayOfMonthRule dayRuleKind = iota
	nthWeekdayRule
	computedRule
)

func dayIs(day int) dayRule {
	return dayRule{kind: dayOfMonthRule, day: day}
}

func nthWeekday(week int, weekday time.Weekday) dayRule {
	return dayRule{kind: nthWeekdayRule, week: week, weekday: weekday}
}

func dayFn(fn func(dates.CalendarDate) bool) dayRule {
	return dayRule{kind: computedRule, fn: fn}
}

func (dr dayRule) matches(cd dates.CalendarDate) bool {
	switch dr.kind {
	case dayOfMonthRule:
		return cd.Day() == dr.day
	case nthWeekdayRule:
		return dr.matchesNthWeekday(cd)
	default:
		return dr.fn(cd)
	}
}

// matchesNthWeekday locates the month's first occurrence of the target
// weekday and advances 7*(week-1) days from it. If the first of the
// month falls after the target weekday the first occurrence wraps into
// the following week. A week index large enough to overflow into the
// next month matches no day.
func (dr dayRule) matchesNthWeekday(cd dates.CalendarDate) bool {
	first := dates.NewCalendarDate(cd.Year(), cd.Month(), 1)
	offset := int(dr.weekday) - int(first.Weekday())
	if offset < 0 {
		offset += 7
	}
	day := 1 + offset + 7*(dr.week-1)
	return day <= dates.DaysInMonth(cd.Year(), cd.Month()) && cd.Day() == day
}

// rule associates a named holiday with the year, month and day
// predicates that determine the dates it falls on. A date matches a
// rule iff all three predicates hold.
type rule struct {
	name     string
	category Category
	years    yearRange
	months   monthRange
	day      dayRule
}

func (r rule) matches(cd dates.CalendarDate) bool {
	return r.years.includes(cd.Year()) &&
		r.months.includes(cd.Month()) &&
		r.day.matches(cd)
}

// resolve scans the rule table in order and returns the first rule that
// matches the given date, skipping substitute and national holiday
// rules unless the corresponding flag is set. The substitute and
// national predicates call back into resolve with both flags false;
// that restriction bounds their recursion since a category-restricted
// scan can never re-enter a substitute or national predicate.
func resolve(cd dates.CalendarDate, includeSubstitute, includeNational bool) (rule, bool) {
	for _, r := range holidayTable {
		switch r.category {
		case SubstituteHoliday:
			if !includeSubstitute {
				continue
			}
		case NationalHoliday:
			if !includeNational {
				continue
			}
		}
		if r.matches(cd) {
			return r, true
		}
	}
	return rule{}, false
}

// isPublicHoliday reports whether the date matches a Holiday-category
// rule, excluding substitute and national holidays.
func isPublicHoliday(cd dates.CalendarDate) bool {
	_, ok := resolve(cd, false, false)
	return ok
}
