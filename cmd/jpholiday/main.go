// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command jpholiday queries the Japanese national holiday calendar.
package main

import (
	"context"
	"log/slog"
	"os"

	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: jpholiday
summary: query the Japanese national holiday calendar
commands:
  - name: check
    summary: report whether a date is a national holiday
    arguments:
      - <date>
  - name: list
    summary: list the holidays in a date range
    arguments:
      - <from>
      - <to>
  - name: next
    summary: show the first holiday after a date
    arguments:
      - <date>
  - name: business-days
    summary: count the business days in a date range
    arguments:
      - <from>
      - <to>
`

type GlobalFlags struct {
	Verbose bool `subcmd:"verbose,false,enable verbose logging to stderr"`
}

var (
	globalFlags GlobalFlags
	cmdSet      = subcmd.MustFromYAML(cmdSpec)
)

func init() {
	cmdSet.Set("check").Runner(checkCmd, &checkFlags{})
	cmdSet.Set("list").Runner(listCmd, &listFlags{})
	cmdSet.Set("next").Runner(nextCmd, &nextFlags{})
	cmdSet.Set("business-days").Runner(businessDaysCmd, &businessDaysFlags{})

	gfs := subcmd.GlobalFlagSet().MustRegisterFlagStruct(&globalFlags, nil, nil)
	cmdSet.WithGlobalFlags(gfs)
	cmdSet.WithMain(mainWrapper)
}

func mainWrapper(ctx context.Context, cmdRunner func(ctx context.Context) error) error {
	if globalFlags.Verbose {
		ctx = ctxlog.NewJSONLogger(ctx, os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return cmdRunner(ctx)
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
