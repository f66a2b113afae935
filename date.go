// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package caldate provides a validated calendar date, in the proleptic
// Gregorian calendar, for use in financial and scheduling calculations.
//
// A Date is always valid: it can only be created by New, or the functions
// built on it, which validate the year, month and day, or by arithmetic,
// which is carried out on serial numbers (days since 30-Dec-1899) and hence
// always yields a valid date. Years are restricted to the range
// MinYear to MaxYear.
//
//	d, err := caldate.New(31, caldate.December, 2024)
//	...
//	next, err := d.AddDays(1) // 01-Jan-2025
//	days := next.Sub(d)       // 1
//
// Loosely typed input, such as strings from configuration files, is
// supported via Record and FromRecord, and arithmetic with operands
// whose type is only known at run time via Operand and Apply.
package caldate

import (
	"cmp"
	"fmt"
	"time"
)

// Date represents a calendar date. The zero value is the null date, which is
// not a valid calendar date, and is reported by IsZero. Dates are comparable
// using == and are equal if their day, month and year are equal.
type Date struct {
	year  int
	month Month
	day   int
}

// New returns the Date for the specified day, month and year. The year
// is validated first, followed by the month and then the day since the
// range of valid days depends on the month and year. Any failure is
// reported as a *RangeError.
func New(day int, month Month, year int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, newRangeError("year", year, MinYear, MaxYear)
	}
	if !month.IsValid() {
		return Date{}, newRangeError("month", int(month), int(January), int(December))
	}
	if dim := DaysInMonth(year, month); day < 1 || day > dim {
		return Date{}, newRangeError("day", day, 1, dim)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNew is like New but panics on error.
func MustNew(day int, month Month, year int) Date {
	d, err := New(day, month, year)
	if err != nil {
		panic(fmt.Sprintf("%v", err))
	}
	return d
}

// Day returns the day of the month, 1-31.
func (d Date) Day() int {
	return d.day
}

// Month returns the month.
func (d Date) Month() Month {
	return d.month
}

// Year returns the year.
func (d Date) Year() int {
	return d.year
}

// IsZero returns true for the null date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// DayOfYear returns the day of the year as 1-365 for non-leap years
// and 1-366 for leap years.
func (d Date) DayOfYear() int {
	if d.IsZero() {
		return 0
	}
	return daysBeforeMonth(d.year, d.month) + d.day
}

// Equal returns true if d and o represent the same date.
func (d Date) Equal(o Date) bool {
	return d == o
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// as, or after o. The null date is before all other dates.
func (d Date) Compare(o Date) int {
	return cmp.Compare(d.Serial(), o.Serial())
}

// Before returns true if d is before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After returns true if d is after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// AddDays returns the date n days after d, n may be negative. A result
// outside of the supported range of years is reported as a *RangeError.
func (d Date) AddDays(n int) (Date, error) {
	if d.IsZero() {
		return Date{}, ErrNullDate
	}
	return FromSerial(d.Serial() + n)
}

// SubDays returns the date n days before d.
func (d Date) SubDays(n int) (Date, error) {
	return d.AddDays(-n)
}

// Sub returns the number of days from o to d, which is positive
// if d is after o. The result is meaningless if either is the null
// date; Minus(OfDate(o)) reports that case as ErrNullDate.
func (d Date) Sub(o Date) int {
	return d.Serial() - o.Serial()
}

// Weekday returns the day of the week for d. The result is meaningless
// for the null date.
func (d Date) Weekday() time.Weekday {
	// Serial number 1, 31-Dec-1899, was a Sunday.
	return time.Weekday((d.Serial() + 6) % 7)
}

// IsEndOfMonth returns true if d is the last day of its month.
func (d Date) IsEndOfMonth() bool {
	return !d.IsZero() && d.day == DaysInMonth(d.year, d.month)
}

// EndOfMonth returns the last day of the month that d falls in.
func (d Date) EndOfMonth() Date {
	if d.IsZero() {
		return d
	}
	return Date{year: d.year, month: d.month, day: DaysInMonth(d.year, d.month)}
}

// NextWeekday returns the first date on or after d that falls on wd.
// ErrNullDate is returned for the null date.
func (d Date) NextWeekday(wd time.Weekday) (Date, error) {
	return d.AddDays((int(wd) - int(d.Weekday()) + 7) % 7)
}

// NthWeekday returns the nth occurrence, 1 to 5, of weekday wd in the
// specified month and year, for example the third Wednesday of March.
// A *RangeError for field "nth" is returned if nth is out of range or if
// the month contains fewer than nth occurrences of wd.
func NthWeekday(nth int, wd time.Weekday, month Month, year int) (Date, error) {
	if nth < 1 || nth > 5 {
		return Date{}, newRangeError("nth", nth, 1, 5)
	}
	first, err := New(1, month, year)
	if err != nil {
		return Date{}, err
	}
	offset := (int(wd) - int(first.Weekday()) + 7) % 7
	dim := DaysInMonth(year, month)
	day := 1 + offset + (nth-1)*7
	if day > dim {
		return Date{}, newRangeError("nth", nth, 1, (dim-1-offset)/7+1)
	}
	return Date{year: year, month: month, day: day}, nil
}
