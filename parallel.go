// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jpholiday

import (
	"context"

	"cloudeng.io/jpholiday/dates"
	"cloudeng.io/sync/errgroup"
)

// HolidaysInRange is like GetHolidays but shards the scan by year and
// resolves the shards concurrently. Per-date resolutions are
// independent of each other (the adjacency rules only ever read the
// immutable rule table), so very large spans can be scanned in
// parallel. The context is checked per shard; the only error returned
// is that of a cancelled context.
func HolidaysInRange(ctx context.Context, from, to dates.CalendarDate) ([]Holiday, error) {
	if to < from {
		return nil, nil
	}
	fromYear := from.Year()
	perYear := make([][]Holiday, to.Year()-fromYear+1)
	g, ctx := errgroup.WithContext(ctx)
	for year := fromYear; year <= to.Year(); year++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := dates.NewCalendarDate(year, 1, 1)
			if start < from {
				start = from
			}
			end := dates.NewCalendarDate(year, 12, 31)
			if end > to {
				end = to
			}
			perYear[year-fromYear] = GetHolidays(start, end)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var holidays []Holiday
	for _, hs := range perYear {
		holidays = append(holidays, hs...)
	}
	return holidays, nil
}
