// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package period provides calendar periods, such as 3 months or 2 weeks,
// and the frequencies commonly used to describe recurring financial
// events, together with support for advancing a caldate.Date by a period.
package period

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/caldate"
	"cloudeng.io/errors"
)

// TimeUnit is the unit in which a Period is measured.
type TimeUnit int

const (
	Days TimeUnit = iota
	Weeks
	Months
	Years
)

var (
	unitNames   = []string{"Day", "Week", "Month", "Year"}
	unitSymbols = "DWMY"
)

func (u TimeUnit) valid() bool {
	return u >= Days && u <= Years
}

func (u TimeUnit) String() string {
	if !u.valid() {
		return "TimeUnit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u] + "s"
}

// ErrUnknownFrequency is returned for frequencies that have no
// corresponding Period.
var ErrUnknownFrequency = errors.New("unknown frequency")

// Frequency represents the number of times per year that an event occurs.
type Frequency int

const (
	NoFrequency      Frequency = -1  // null frequency
	Once             Frequency = 0   // only once, e.g. a zero-coupon
	Annual           Frequency = 1   // once a year
	Semiannual       Frequency = 2   // twice a year
	EveryFourthMonth Frequency = 3   // every fourth month
	Quarterly        Frequency = 4   // every third month
	Bimonthly        Frequency = 6   // every second month
	Monthly          Frequency = 12  // once a month
	EveryFourthWeek  Frequency = 13  // every fourth week
	Biweekly         Frequency = 26  // every second week
	Weekly           Frequency = 52  // once a week
	Daily            Frequency = 365 // once a day
	OtherFrequency   Frequency = 999 // some other unknown frequency
)

func (f Frequency) String() string {
	switch f {
	case NoFrequency:
		return "No-Frequency"
	case Once:
		return "Once"
	case Annual:
		return "Annual"
	case Semiannual:
		return "Semiannual"
	case EveryFourthMonth:
		return "Every-Fourth-Month"
	case Quarterly:
		return "Quarterly"
	case Bimonthly:
		return "Bimonthly"
	case Monthly:
		return "Monthly"
	case EveryFourthWeek:
		return "Every-Fourth-Week"
	case Biweekly:
		return "Biweekly"
	case Weekly:
		return "Weekly"
	case Daily:
		return "Daily"
	}
	return "Unknown frequency"
}

// FrequencyFromTimesPerYear returns the monthly based Frequency that
// occurs n times per year, or OtherFrequency.
func FrequencyFromTimesPerYear(n int) Frequency {
	switch n {
	case 1, 2, 3, 4, 6, 12:
		return Frequency(n)
	}
	return OtherFrequency
}

// Period represents a length of time measured in days, weeks, months or
// years. Length may be negative.
type Period struct {
	Length int
	Units  TimeUnit
}

// New returns a new Period.
func New(length int, units TimeUnit) Period {
	return Period{Length: length, Units: units}
}

// FromFrequency returns the Period between successive events occurring
// at the specified frequency.
func FromFrequency(f Frequency) (Period, error) {
	switch f {
	case NoFrequency:
		return New(0, Days), nil
	case Once:
		return New(0, Years), nil
	case Annual:
		return New(1, Years), nil
	case Semiannual, EveryFourthMonth, Quarterly, Bimonthly, Monthly:
		return New(12/int(f), Months), nil
	case EveryFourthWeek, Biweekly, Weekly:
		return New(52/int(f), Weeks), nil
	case Daily:
		return New(1, Days), nil
	}
	return Period{}, fmt.Errorf("%d: %w", int(f), ErrUnknownFrequency)
}

// LongFormat returns p in a long form such as "1 Day" or "3 Months".
func (p Period) LongFormat() string {
	if !p.Units.valid() {
		return fmt.Sprintf("%d %v", p.Length, p.Units)
	}
	if p.Length == 1 || p.Length == -1 {
		return fmt.Sprintf("%d %s", p.Length, unitNames[p.Units])
	}
	return fmt.Sprintf("%d %ss", p.Length, unitNames[p.Units])
}

// ShortFormat returns p in a short form such as "1D" or "3M".
func (p Period) ShortFormat() string {
	if !p.Units.valid() {
		return fmt.Sprintf("%d%v", p.Length, p.Units)
	}
	return fmt.Sprintf("%d%c", p.Length, unitSymbols[p.Units])
}

// String returns the short format of p.
func (p Period) String() string {
	return p.ShortFormat()
}

// Parse parses a period in the short format, an optionally signed integer
// followed by one of D, W, M or Y in either case, eg. 3M, -2w, 10D.
func Parse(val string) (Period, error) {
	s := strings.TrimSpace(val)
	if len(s) < 2 {
		return Period{}, &caldate.ParseError{Field: "period", Input: val}
	}
	idx := strings.IndexByte(unitSymbols, strings.ToUpper(s[len(s)-1:])[0])
	if idx < 0 {
		return Period{}, &caldate.ParseError{Field: "period", Input: val}
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Period{}, &caldate.ParseError{Field: "period", Input: val, Err: err}
	}
	return New(n, TimeUnit(idx)), nil
}

// Advance returns d advanced by p. Days and weeks are added as a number
// of days. Months and years are added to the month and year of d, with
// the day of the month reduced, if need be, to the last day of the
// resulting month; for example 31-Jan-2024 advanced by 1M is 29-Feb-2024.
func Advance(d caldate.Date, p Period) (caldate.Date, error) {
	if d.IsZero() {
		return caldate.Date{}, caldate.ErrNullDate
	}
	switch p.Units {
	case Days:
		return d.AddDays(p.Length)
	case Weeks:
		return d.AddDays(p.Length * 7)
	case Months:
		return addMonths(d, p.Length)
	case Years:
		return addMonths(d, p.Length*12)
	}
	return caldate.Date{}, fmt.Errorf("unsupported time unit: %v", p.Units)
}

func addMonths(d caldate.Date, n int) (caldate.Date, error) {
	total := d.Year()*12 + int(d.Month()) - 1 + n
	year := total / 12
	if total < 0 && total%12 != 0 {
		year--
	}
	month := caldate.Month(total - year*12 + 1)
	day := min(d.Day(), caldate.DaysInMonth(year, month))
	return caldate.New(day, month, year)
}
