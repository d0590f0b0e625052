// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/jpholiday"
	"cloudeng.io/jpholiday/dates"
	"cloudeng.io/logging/ctxlog"
)

type checkFlags struct {
	Quiet bool `subcmd:"quiet,false,print nothing and report via the exit status only"`
}

type listFlags struct {
	Parallel bool `subcmd:"parallel,false,shard the scan by year and resolve the shards concurrently"`
}

type nextFlags struct{}

type businessDaysFlags struct{}

func parseRange(args []string) (from, to dates.CalendarDate, err error) {
	errs := errors.M{}
	if perr := from.Parse(args[0]); perr != nil {
		errs.Append(fmt.Errorf("invalid from date: %v", perr))
	}
	if perr := to.Parse(args[1]); perr != nil {
		errs.Append(fmt.Errorf("invalid to date: %v", perr))
	}
	return from, to, errs.Err()
}

func checkCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*checkFlags)
	var cd dates.CalendarDate
	if err := cd.Parse(args[0]); err != nil {
		return err
	}
	h, ok := jpholiday.GetHoliday(cd)
	if fv.Quiet {
		if !ok {
			return fmt.Errorf("%v is not a holiday", cd)
		}
		return nil
	}
	if !ok {
		fmt.Printf("%v: not a holiday\n", cd)
		return nil
	}
	fmt.Printf("%v: %v (%v)\n", cd, h.Name, h.Category)
	return nil
}

func listCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*listFlags)
	from, to, err := parseRange(args)
	if err != nil {
		return err
	}
	var holidays []jpholiday.Holiday
	if fv.Parallel {
		holidays, err = jpholiday.HolidaysInRange(ctx, from, to)
		if err != nil {
			return err
		}
	} else {
		holidays = jpholiday.GetHolidays(from, to)
	}
	ctxlog.Logger(ctx).Debug("list", "from", from.String(), "to", to.String(), "holidays", len(holidays))
	for _, h := range holidays {
		fmt.Printf("%v (%v)\n", h, h.Category)
	}
	return nil
}

func nextCmd(ctx context.Context, _ interface{}, args []string) error {
	var cd dates.CalendarDate
	if err := cd.Parse(args[0]); err != nil {
		return err
	}
	h, ok := jpholiday.NextHoliday(cd)
	if !ok {
		return fmt.Errorf("no holiday found in the year following %v", cd)
	}
	fmt.Printf("%v (%v)\n", h, h.Category)
	return nil
}

func businessDaysCmd(ctx context.Context, _ interface{}, args []string) error {
	from, to, err := parseRange(args)
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", jpholiday.BusinessDaysBetween(from, to))
	return nil
}
