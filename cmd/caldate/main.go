// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command caldate validates, formats and performs arithmetic on calendar
// dates. Dates may be specified as DD-Mon-YYYY, YYYY-MM-DD or, with a
// leading @, as the name of a date defined in the configuration file.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

const commandSpec = `name: caldate
summary: validate, format and perform arithmetic on calendar dates
commands:
  - name: format
    summary: print each date using the requested layout
    arguments:
      - <date>
      - ...
  - name: add
    summary: add a number of days to a date
    arguments:
      - <date>
      - <days>
  - name: sub
    summary: subtract a number of days, or another date, from a date
    arguments:
      - <date>
      - <days-or-date>
  - name: diff
    summary: print the number of days between two dates, positive when the first is later
    arguments:
      - <date>
      - <date>
  - name: advance
    summary: advance a date by a period such as 10D, 2W, 3M or 1Y
    arguments:
      - <date>
      - <period>
  - name: info
    summary: print the serial number, weekday and other calendar details of a date
    arguments:
      - <date>
  - name: nth-weekday
    summary: print the nth occurrence of a weekday in a month, eg. 3 wed mar 2025
    arguments:
      - <nth>
      - <weekday>
      - <month>
      - <year>
`

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	Config string `subcmd:"config,,'optional YAML configuration file with layout, logging and dates sections'"`
	Layout string `subcmd:"layout,,'output layout: default, long, short or iso'"`
	cmdutil.LoggingFlags
}

type dateFlags struct {
	CommonFlags
}

type app struct {
	out io.Writer
}

func newCommandSet(a *app) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commandSpec)
	cmdSet.Set("format").MustRunnerAndFlags(a.format,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	cmdSet.Set("add").MustRunnerAndFlags(a.add,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	cmdSet.Set("sub").MustRunnerAndFlags(a.sub,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	cmdSet.Set("diff").MustRunnerAndFlags(a.diff,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	cmdSet.Set("advance").MustRunnerAndFlags(a.advance,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	cmdSet.Set("info").MustRunnerAndFlags(a.info,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	cmdSet.Set("nth-weekday").MustRunnerAndFlags(a.nthWeekday,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(&app{out: os.Stdout}))
}
