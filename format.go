// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout identifies one of the supported formats for rendering a Date.
type Layout int

const (
	DefaultLayout Layout = iota // 01-Jan-2025
	LongLayout                  // January 1st, 2025
	ShortLayout                 // 01/01/2025
	ISOLayout                   // 2025-01-01
)

var layoutNames = []string{"default", "long", "short", "iso"}

func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return "unknown layout " + strconv.Itoa(int(l))
	}
	return layoutNames[l]
}

// ParseLayout parses the name of a layout as returned by Layout.String.
// An empty name is treated as DefaultLayout.
func ParseLayout(name string) (Layout, error) {
	if len(name) == 0 {
		return DefaultLayout, nil
	}
	lc := strings.ToLower(name)
	for i, n := range layoutNames {
		if n == lc {
			return Layout(i), nil
		}
	}
	return DefaultLayout, &ParseError{Field: "layout", Input: name}
}

// String returns d in the DD-Mon-YYYY format, eg. 01-Jan-2025.
func (d Date) String() string {
	return d.Format(DefaultLayout)
}

// Format returns d rendered using the specified layout.
func (d Date) Format(layout Layout) string {
	if d.IsZero() {
		return "null date"
	}
	switch layout {
	case LongLayout:
		return fmt.Sprintf("%v %s, %d", d.month, Ordinal(d.day), d.year)
	case ShortLayout:
		return fmt.Sprintf("%02d/%02d/%04d", int(d.month), d.day, d.year)
	case ISOLayout:
		return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
	default:
		return fmt.Sprintf("%02d-%s-%04d", d.day, d.month.Abbrev(), d.year)
	}
}

// Ordinal returns n with its English ordinal suffix, eg. 1st, 12th, 23rd.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

const expectedDateFormats = "DD-Mon-YYYY or YYYY-MM-DD"

// ParseDate parses a date in either the DD-Mon-YYYY format, with a 1 or 2
// digit day and case insensitive month name, or the ISO 8601 YYYY-MM-DD
// format. Errors for the individual fields are reported via a
// *ValidationError as per FromRecord.
func ParseDate(val string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(val), "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q, expected %s: %w", val, expectedDateFormats, &ParseError{Field: "date", Input: val})
	}
	if len(parts[0]) == 4 {
		return FromRecord(Record{Day: parts[2], Month: parts[1], Year: parts[0]})
	}
	return FromRecord(Record{Day: parts[0], Month: parts[1], Year: parts[2]})
}
