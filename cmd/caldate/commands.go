// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/caldate"
	"cloudeng.io/caldate/period"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

func (a *app) format(ctx context.Context, values any, args []string) error {
	fv := values.(*dateFlags)
	ctx, s, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.close()
	dates, err := s.dates(args...)
	for _, d := range dates {
		fmt.Fprintln(a.out, d.Format(s.layout))
	}
	ctxlog.Logger(ctx).Debug("format", "dates", len(dates), "errors", err != nil)
	return err
}

func (a *app) add(ctx context.Context, values any, args []string) error {
	fv := values.(*dateFlags)
	ctx, s, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.close()
	d, err := s.date(args[0])
	if err != nil {
		return err
	}
	n, err := atoi("days", args[1])
	if err != nil {
		return err
	}
	nd, err := d.Plus(caldate.Days(n))
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("add", "date", d, "days", n, "result", nd)
	fmt.Fprintln(a.out, nd.Format(s.layout))
	return nil
}

// sub treats its second argument as a number of days if it is an
// integer and as a date otherwise.
func (a *app) sub(ctx context.Context, values any, args []string) error {
	fv := values.(*dateFlags)
	ctx, s, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.close()
	d, err := s.date(args[0])
	if err != nil {
		return err
	}
	var rhs caldate.Operand
	if n, err := strconv.Atoi(args[1]); err == nil {
		rhs = caldate.Days(n)
	} else {
		o, err := s.date(args[1])
		if err != nil {
			return err
		}
		rhs = caldate.OfDate(o)
	}
	result, err := d.Minus(rhs)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("sub", "date", d, "operand", rhs.String(), "result", result.String())
	if nd, ok := result.Date(); ok {
		fmt.Fprintln(a.out, nd.Format(s.layout))
		return nil
	}
	days, _ := result.Days()
	fmt.Fprintln(a.out, days)
	return nil
}

func (a *app) diff(ctx context.Context, values any, args []string) error {
	fv := values.(*dateFlags)
	ctx, s, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.close()
	dates, err := s.dates(args...)
	if err != nil {
		return err
	}
	days := dates[0].Sub(dates[1])
	ctxlog.Logger(ctx).Debug("diff", "from", dates[1], "to", dates[0], "days", days)
	fmt.Fprintln(a.out, days)
	return nil
}

func (a *app) advance(ctx context.Context, values any, args []string) error {
	fv := values.(*dateFlags)
	ctx, s, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.close()
	d, err := s.date(args[0])
	if err != nil {
		return err
	}
	p, err := period.Parse(args[1])
	if err != nil {
		return err
	}
	nd, err := period.Advance(d, p)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("advance", "date", d, "period", p.LongFormat(), "result", nd)
	fmt.Fprintln(a.out, nd.Format(s.layout))
	return nil
}

func (a *app) info(ctx context.Context, values any, args []string) error {
	fv := values.(*dateFlags)
	_, s, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.close()
	d, err := s.date(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "date:          %v\n", d.Format(s.layout))
	fmt.Fprintf(a.out, "long:          %v\n", d.Format(caldate.LongLayout))
	fmt.Fprintf(a.out, "iso:           %v\n", d.Format(caldate.ISOLayout))
	fmt.Fprintf(a.out, "serial:        %v\n", d.Serial())
	fmt.Fprintf(a.out, "weekday:       %v\n", d.Weekday())
	fmt.Fprintf(a.out, "day of year:   %v\n", d.DayOfYear())
	fmt.Fprintf(a.out, "leap year:     %v\n", caldate.IsLeap(d.Year()))
	fmt.Fprintf(a.out, "days in month: %v\n", caldate.DaysInMonth(d.Year(), d.Month()))
	fmt.Fprintf(a.out, "end of month:  %v\n", d.EndOfMonth().Format(s.layout))
	return nil
}

func (a *app) nthWeekday(ctx context.Context, values any, args []string) error {
	fv := values.(*dateFlags)
	ctx, s, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.close()
	errs := &errors.M{}
	nth, err := atoi("nth", args[0])
	errs.Append(err)
	wd, err := caldate.ParseWeekday(args[1])
	errs.Append(err)
	var month caldate.Month
	errs.Append(month.Parse(args[2]))
	year, err := atoi("year", args[3])
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	d, err := caldate.NthWeekday(nth, wd, month, year)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("nth-weekday", "nth", nth, "weekday", wd, "month", month, "year", year, "result", d)
	fmt.Fprintln(a.out, d.Format(s.layout))
	return nil
}

func atoi(field, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Annotate(field, err)
	}
	return n, nil
}
