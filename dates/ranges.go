// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"iter"
	"strings"
)

// CalendarDateRange represents an inclusive range of CalendarDate
// values. The from date is stored in the upper 32 bits and the to date
// in the lower 32 bits. The zero value is the empty range.
type CalendarDateRange uint64

// NewCalendarDateRange returns a CalendarDateRange for the from/to
// dates inclusive. If from is later than to the empty range is
// returned.
func NewCalendarDateRange(from, to CalendarDate) CalendarDateRange {
	if from > to {
		return CalendarDateRange(0)
	}
	return CalendarDateRange(from)<<32 | CalendarDateRange(to)
}

// From returns the start date of the range.
func (cdr CalendarDateRange) From() CalendarDate {
	return CalendarDate(cdr >> 32 & 0xffffffff)
}

// To returns the end date of the range.
func (cdr CalendarDateRange) To() CalendarDate {
	return CalendarDate(cdr & 0xffffffff)
}

// IsEmpty returns true for the empty range.
func (cdr CalendarDateRange) IsEmpty() bool {
	return cdr == 0
}

// Include returns true if the given date is within the range.
func (cdr CalendarDateRange) Include(cd CalendarDate) bool {
	return !cdr.IsEmpty() && cdr.From() <= cd && cd <= cdr.To()
}

// Dates returns an iterator that yields each date in the range in
// chronological order. The empty range yields no dates.
func (cdr CalendarDateRange) Dates() iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		if cdr.IsEmpty() {
			return
		}
		to := cdr.To()
		for cd := cdr.From(); cd <= to; cd = cd.Tomorrow() {
			if !yield(cd) {
				return
			}
		}
	}
}

func (cdr CalendarDateRange) String() string {
	if cdr.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s - %s", cdr.From(), cdr.To())
}

// Parse parses a range in the format '<from>:<to>' where from and to
// are dates as accepted by CalendarDate.Parse. The from date must not
// be later than the to date.
func (cdr *CalendarDateRange) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>'", val)
	}
	var from, to CalendarDate
	if err := from.Parse(parts[0]); err != nil {
		return fmt.Errorf("invalid from: %s: %v", parts[0], err)
	}
	if err := to.Parse(parts[1]); err != nil {
		return fmt.Errorf("invalid to: %s: %v", parts[1], err)
	}
	if from > to {
		return fmt.Errorf("from date %v is later than to date %v", from, to)
	}
	*cdr = NewCalendarDateRange(from, to)
	return nil
}
