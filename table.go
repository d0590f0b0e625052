// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jpholiday

import "time"

// holidayTable is the ordered rule table encoding the Public Holiday
// Law of 1948 and every subsequent amendment. The first rule that
// matches a date wins; amendments to a holiday are encoded as separate
// entries with disjoint year ranges so that each entry can be audited
// against the legal text it implements. Substitute holiday rules
// precede the national holiday rule so that a Monday following a Sunday
// holiday resolves as a substitute holiday even when it is also
// sandwiched between two holidays. The table is built once and never
// mutated, which makes it safe for unsynchronized concurrent use.
//
// The table is populated by an init function rather than a package
// level composite literal because the substitute and national holiday
// predicates call back into resolve, which reads the table.
var holidayTable []rule

func init() {
	hd := func(name string, years yearRange, months monthRange, day dayRule) rule {
		return rule{name: name, category: PublicHoliday, years: years, months: months, day: day}
	}
	holidayTable = []rule{
		hd("New Year's Day", yearAfter(1949), monthIs(1), dayIs(1)),

		hd("Coming of Age Day", yearBetween(1949, 1999), monthIs(1), dayIs(15)),
		hd("Coming of Age Day", yearAfter(2000), monthIs(1), nthWeekday(2, time.Monday)),

		hd("National Foundation Day", yearAfter(1967), monthIs(2), dayIs(11)),

		hd("The Emperor's Birthday", yearBetween(1949, 1988), monthIs(4), dayIs(29)),
		hd("The Emperor's Birthday", yearBetween(1989, 2018), monthIs(12), dayIs(23)),
		hd("The Emperor's Birthday", yearAfter(2020), monthIs(2), dayIs(23)),

		hd("Vernal Equinox Day", yearAfter(1949), monthIs(3), dayFn(isVernalEquinox)),

		hd("Greenery Day", yearBetween(1989, 2006), monthIs(4), dayIs(29)),
		hd("Greenery Day", yearAfter(2007), monthIs(5), dayIs(4)),

		hd("Shōwa Day", yearAfter(2007), monthIs(4), dayIs(29)),

		hd("Constitution Memorial Day", yearAfter(1949), monthIs(5), dayIs(3)),

		hd("Children's Day", yearAfter(1949), monthIs(5), dayIs(5)),

		hd("Marine Day", yearBetween(1996, 2002), monthIs(7), dayIs(20)),
		hd("Marine Day", yearBetween(2003, 2019), monthIs(7), nthWeekday(3, time.Monday)),
		hd("Marine Day", yearIs(2020), monthIs(7), dayIs(23)),
		hd("Marine Day", yearIs(2021), monthIs(7), dayIs(22)),
		hd("Marine Day", yearAfter(2022), monthIs(7), nthWeekday(3, time.Monday)),

		hd("Mountain Day", yearBetween(2016, 2019), monthIs(8), dayIs(11)),
		hd("Mountain Day", yearIs(2020), monthIs(8), dayIs(10)),
		hd("Mountain Day", yearIs(2021), monthIs(8), dayIs(8)),
		hd("Mountain Day", yearAfter(2022), monthIs(8), dayIs(11)),

		hd("Respect for the Aged Day", yearBetween(1966, 2002), monthIs(9), dayIs(15)),
		hd("Respect for the Aged Day", yearAfter(2003), monthIs(9), nthWeekday(3, time.Monday)),

		hd("Autumnal Equinox Day", yearAfter(1949), monthIs(9), dayFn(isAutumnalEquinox)),

		hd("Health and Sports Day", yearBetween(1966, 1999), monthIs(10), dayIs(10)),
		hd("Health and Sports Day", yearBetween(2000, 2019), monthIs(10), nthWeekday(2, time.Monday)),
		hd("Sports Day", yearIs(2020), monthIs(7), dayIs(24)),
		hd("Sports Day", yearIs(2021), monthIs(7), dayIs(23)),
		hd("Sports Day", yearAfter(2022), monthIs(10), nthWeekday(2, time.Monday)),

		hd("Culture Day", yearAfter(1949), monthIs(11), dayIs(3)),

		hd("Labor Thanksgiving Day", yearAfter(1949), monthIs(11), dayIs(23)),

		hd("Wedding of Crown Prince Akihito", yearIs(1959), monthIs(4), dayIs(10)),
		hd("Funeral of Emperor Shōwa", yearIs(1989), monthIs(2), dayIs(24)),
		hd("Enthronement Ceremony of Emperor Akihito", yearIs(1990), monthIs(11), dayIs(12)),
		hd("Wedding of Crown Prince Naruhito", yearIs(1993), monthIs(6), dayIs(9)),
		hd("Accession of Emperor Naruhito", yearIs(2019), monthIs(5), dayIs(1)),
		hd("Enthronement Ceremony of Emperor Naruhito", yearIs(2019), monthIs(10), dayIs(22)),

		{
			name:     "Substitute Holiday",
			category: SubstituteHoliday,
			years:    yearBetween(1973, 2006),
			months:   anyMonth(),
			day:      dayFn(isSubstituteClassic),
		},
		{
			name:     "Substitute Holiday",
			category: SubstituteHoliday,
			years:    yearAfter(2007),
			months:   anyMonth(),
			day:      dayFn(isSubstituteModern),
		},
		{
			name:     "National Holiday",
			category: NationalHoliday,
			years:    yearAfter(1986),
			months:   anyMonth(),
			day:      dayFn(isNationalHoliday),
		},
	}
}
