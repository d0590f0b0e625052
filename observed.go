// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jpholiday

import (
	"time"

	"cloudeng.io/jpholiday/dates"
)

// substituteHolidayStart is the date the substitute holiday amendment
// took effect.
var substituteHolidayStart = dates.NewCalendarDate(1973, 4, 12)

// isSubstituteClassic implements the 1973-2006 substitute holiday rule:
// the date qualifies iff it is on or after 12 April 1973 and the
// previous day is a holiday falling on a Sunday.
func isSubstituteClassic(cd dates.CalendarDate) bool {
	if cd < substituteHolidayStart {
		return false
	}
	prev := cd.Yesterday()
	return prev.Weekday() == time.Sunday && isPublicHoliday(prev)
}

// isSubstituteModern implements the rule in effect from 2007: walking
// backward through the contiguous run of holidays immediately preceding
// the date, the date qualifies iff one of them falls on a Sunday. The
// walk only ever consults Holiday-category rules so it cannot re-enter
// this predicate.
func isSubstituteModern(cd dates.CalendarDate) bool {
	for prev := cd.Yesterday(); isPublicHoliday(prev); prev = prev.Yesterday() {
		if prev.Weekday() == time.Sunday {
			return true
		}
	}
	return false
}

// isNationalHoliday implements the bridging rule in effect from 1986: a
// date that is not itself a Sunday qualifies iff both the previous and
// the next day are holidays. Substitute and national holidays are
// excluded from the neighbour checks.
func isNationalHoliday(cd dates.CalendarDate) bool {
	if cd.Weekday() == time.Sunday {
		return false
	}
	return isPublicHoliday(cd.Yesterday()) && isPublicHoliday(cd.Tomorrow())
}
