// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"time"

	"cloud.google.com/go/civil"
)

// FromTime returns the Date of t in t's location.
func FromTime(t time.Time) (Date, error) {
	year, month, day := t.Date()
	return New(day, Month(month), year)
}

// Today returns the current date in the local time zone.
func Today() (Date, error) {
	return FromTime(time.Now())
}

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// FromCivil returns the Date for the supplied civil.Date.
func FromCivil(cd civil.Date) (Date, error) {
	return New(cd.Day, Month(cd.Month), cd.Year)
}

// Civil returns d as a civil.Date.
func (d Date) Civil() civil.Date {
	return civil.Date{Year: d.year, Month: time.Month(d.month), Day: d.day}
}
