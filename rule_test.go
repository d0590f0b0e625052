// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jpholiday

import (
	"testing"
	"time"

	"cloudeng.io/jpholiday/dates"
)

func TestYearRangeBoundaries(t *testing.T) {
	// Before and After both include the boundary year itself; the rule
	// table depends on this convention at its amendment years.
	for _, tc := range []struct {
		yr       yearRange
		year     int
		includes bool
	}{
		{yearAfter(1949), 1948, false},
		{yearAfter(1949), 1949, true},
		{yearAfter(1949), 2150, true},
		{yearBefore(1999), 1999, true},
		{yearBefore(1999), 2000, false},
		{yearAfter(2000), 1999, false},
		{yearAfter(2000), 2000, true},
		{yearAfter(2007), 2006, false},
		{yearAfter(2007), 2007, true},
		{yearBetween(1973, 2006), 1972, false},
		{yearBetween(1973, 2006), 1973, true},
		{yearBetween(1973, 2006), 2006, true},
		{yearBetween(1973, 2006), 2007, false},
		{yearIs(1990), 1989, false},
		{yearIs(1990), 1990, true},
		{yearIs(1990), 1991, false},
	} {
		if got, want := tc.yr.includes(tc.year), tc.includes; got != want {
			t.Errorf("%v includes %v: got %v, want %v", tc.yr, tc.year, got, want)
		}
	}
}

func TestMonthRange(t *testing.T) {
	if got, want := monthIs(5).includes(5), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := monthIs(5).includes(6), false; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for m := dates.Month(1); m <= 12; m++ {
		if !anyMonth().includes(m) {
			t.Errorf("anyMonth excludes %v", m)
		}
	}
}

func TestNthWeekday(t *testing.T) {
	nd := dates.NewCalendarDate
	for _, tc := range []struct {
		week    int
		weekday time.Weekday
		day     dates.CalendarDate
		matches bool
	}{
		// Jan 2024 starts on a Monday.
		{2, time.Monday, nd(2024, 1, 8), true},
		{2, time.Monday, nd(2024, 1, 15), false},
		{1, time.Monday, nd(2024, 1, 1), true},
		{5, time.Monday, nd(2024, 1, 29), true},
		// Jul 2024 starts on a Monday; the first Sunday wraps to Jul 7.
		{1, time.Sunday, nd(2024, 7, 7), true},
		{1, time.Sunday, nd(2024, 7, 1), false},
		// Feb 2024 has only four Fridays; the fifth overflows into
		// March and matches nothing.
		{5, time.Friday, nd(2024, 2, 23), false},
		{5, time.Friday, nd(2024, 3, 1), false},
		{4, time.Friday, nd(2024, 2, 23), true},
		// Sep 2003 starts on a Monday.
		{3, time.Monday, nd(2003, 9, 15), true},
	} {
		dr := nthWeekday(tc.week, tc.weekday)
		if got, want := dr.matches(tc.day), tc.matches; got != want {
			t.Errorf("%v of %v on %v: got %v, want %v", tc.week, tc.weekday, tc.day, got, want)
		}
	}
}

func TestDayRuleVariants(t *testing.T) {
	nd := dates.NewCalendarDate
	if got, want := dayIs(23).matches(nd(2024, 2, 23)), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dayIs(23).matches(nd(2024, 2, 22)), false; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	even := dayFn(func(cd dates.CalendarDate) bool { return cd.Day()%2 == 0 })
	if got, want := even.matches(nd(2024, 2, 22)), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := even.matches(nd(2024, 2, 23)), false; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolveCategoryFilter(t *testing.T) {
	nd := dates.NewCalendarDate
	// 2009-05-06 is a substitute holiday and 2009-09-22 a national
	// holiday. A category-restricted scan must not see either, which is
	// what bounds the recursion of the substitute and national
	// predicates.
	for _, tc := range []struct {
		day dates.CalendarDate
	}{
		{nd(2009, 5, 6)},
		{nd(2009, 9, 22)},
	} {
		if _, ok := resolve(tc.day, true, true); !ok {
			t.Errorf("%v: expected a match", tc.day)
		}
		if _, ok := resolve(tc.day, false, false); ok {
			t.Errorf("%v: unexpected match with categories excluded", tc.day)
		}
	}
	// A holiday rule matches regardless of the flags.
	r, ok := resolve(nd(2009, 5, 5), false, false)
	if !ok || r.name != "Children's Day" {
		t.Errorf("got %v, %v, want Children's Day", r.name, ok)
	}
}

func TestFirstMatchWins(t *testing.T) {
	// 2019-10-22 is both the enthronement ceremony one-off and a
	// candidate bridging day; the holiday entry is earlier in the table
	// and must win.
	r, ok := resolve(dates.NewCalendarDate(2019, 10, 22), true, true)
	if !ok {
		t.Fatal("expected a match")
	}
	if got, want := r.name, "Enthronement Ceremony of Emperor Naruhito"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.category, PublicHoliday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
