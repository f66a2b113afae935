// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"strconv"
	"strings"
	"time"
)

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
	months          = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
)

// Month represents a month of the year, January is 1.
type Month time.Month

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// IsValid returns true if m is one of January through December.
func (m Month) IsValid() bool {
	return m >= January && m <= December
}

// String returns the English name of the month.
func (m Month) String() string {
	return time.Month(m).String()
}

// Abbrev returns the three letter English abbreviation of the month,
// for example "Jan".
func (m Month) Abbrev() string {
	if !m.IsValid() {
		return m.String()
	}
	return m.String()[:3]
}

func daysInMonthForYearInit(year int, month Month) int {
	switch month {
	case February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, Month(i+1))
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, Month(i+1))
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month for the given year.
// It returns 0 for an invalid month.
func DaysInMonth(year int, month Month) int {
	if !month.IsValid() {
		return 0
	}
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// daysBeforeMonth returns the number of days in year that precede the
// first of month.
func daysBeforeMonth(year int, month Month) int {
	if IsLeap(year) {
		return dayOfYearLeap[month-1]
	}
	return dayOfYear[month-1]
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil || len(val) > 2 {
		return 0, &ParseError{Field: "month", Input: val, Err: err}
	}
	if n < 1 || n > 12 {
		return 0, newRangeError("month", n, 1, 12)
	}
	return Month(n), nil
}

// ParseMonth parses a month name, "January" to "December", or any prefix
// of at least three letters of those names, "Jan", "Sept" etc, in either
// lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) >= 3 {
		for i := range months {
			if strings.HasPrefix(months[i], lc) {
				return Month(i + 1), nil
			}
		}
	}
	return 0, &ParseError{Field: "month", Input: val}
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	} else if _, ok := err.(*RangeError); ok {
		return err
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

var weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// ParseWeekday parses a weekday name, "Sunday" to "Saturday", or any prefix
// of at least three letters of those names, in either lower or upper case.
func ParseWeekday(val string) (time.Weekday, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) >= 3 {
		for i := range weekdays {
			if strings.HasPrefix(weekdays[i], lc) {
				return time.Weekday(i), nil
			}
		}
	}
	return 0, &ParseError{Field: "weekday", Input: val}
}
