// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

const (
	// MinYear is the earliest year that a Date may represent.
	MinYear = 1950
	// MaxYear is the latest year that a Date may represent.
	MaxYear = 2150

	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1
)

var (
	// serialEpoch is the number of days from 01-Jan-0001 to 30-Dec-1899,
	// which is serial number zero.
	serialEpoch = daysBeforeYear(1900) - 2

	minSerial = daysBeforeYear(MinYear) - serialEpoch
	maxSerial = daysBeforeYear(MaxYear+1) - 1 - serialEpoch
)

// daysBeforeYear returns the number of days from 01-Jan-0001 up to,
// but not including, 01-Jan of year.
func daysBeforeYear(year int) int {
	y := year - 1
	return y*365 + y/4 - y/100 + y/400
}

// yearAndDay returns the year and zero based day of that year for the
// given number of days since 01-Jan-0001.
func yearAndDay(days int) (year, yday int) {
	n400 := days / daysPer400Years
	if days < 0 && days%daysPer400Years != 0 {
		n400--
	}
	days -= n400 * daysPer400Years

	// The last day of a 400 year cycle would otherwise be counted
	// as the start of a fifth century, and the last day of a leap
	// year as the start of a fifth year.
	n100 := days / daysPer100Years
	n100 -= n100 >> 2
	days -= n100 * daysPer100Years

	n4 := days / daysPer4Years
	days -= n4 * daysPer4Years

	n1 := days / 365
	n1 -= n1 >> 2
	days -= n1 * 365

	return 1 + n400*400 + n100*100 + n4*4 + n1, days
}

// monthAndDay returns the month and day of month for the zero based
// day of the year.
func monthAndDay(year, yday int) (Month, int) {
	cumulative := dayOfYear
	if IsLeap(year) {
		cumulative = dayOfYearLeap
	}
	// yday/31 is either the month or the one before it.
	m := yday / 31
	if m < 11 && cumulative[m+1] <= yday {
		m++
	}
	return Month(m + 1), yday - cumulative[m] + 1
}

// Serial returns the number of days since 30-Dec-1899, the serial
// number used by spreadsheets and QuantLib, such that 01-Jan-1901
// is 367. It returns 0 for the zero Date.
func (d Date) Serial() int {
	if d.IsZero() {
		return 0
	}
	return daysBeforeYear(d.year) + daysBeforeMonth(d.year, d.month) + d.day - 1 - serialEpoch
}

// FromSerial returns the Date for the given serial number, see Date.Serial.
// A serial number outside of [MinDate().Serial(), MaxDate().Serial()] results
// in a *RangeError for the year that the serial number falls in.
func FromSerial(serial int) (Date, error) {
	year, yday := yearAndDay(serial + serialEpoch)
	if serial < minSerial || serial > maxSerial {
		return Date{}, newRangeError("year", year, MinYear, MaxYear)
	}
	month, day := monthAndDay(year, yday)
	return Date{year: year, month: month, day: day}, nil
}

// MinDate returns the earliest representable Date, 01-Jan-1950.
func MinDate() Date {
	return Date{year: MinYear, month: January, day: 1}
}

// MaxDate returns the latest representable Date, 31-Dec-2150.
func MaxDate() Date {
	return Date{year: MaxYear, month: December, day: 31}
}
