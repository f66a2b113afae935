// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
	"golang.org/x/exp/constraints"
)

// Record represents a date whose fields are loosely typed, as is typically
// the case for dates read from configuration files, command line arguments
// or decoded documents. Day and Year may be any integer type or a numeric
// string. Month may additionally be a Month, a time.Month or the name of
// a month as accepted by ParseMonth.
type Record struct {
	Day   any `yaml:"day" json:"day"`
	Month any `yaml:"month" json:"month"`
	Year  any `yaml:"year" json:"year"`
}

// Fields contains the strongly typed, but not yet validated, fields of a Date.
type Fields struct {
	Day   int
	Month Month
	Year  int
}

// Coerce converts each of the fields in r to its underlying type.
// All of the fields are converted and any failures, which are
// all of type *ParseError, are returned together.
func Coerce(r Record) (Fields, error) {
	var (
		f    Fields
		err  error
		errs = &errors.M{}
	)
	f.Year, err = coerceInt("year", r.Year)
	errs.Append(err)
	f.Month, err = coerceMonth(r.Month)
	errs.Append(err)
	f.Day, err = coerceInt("day", r.Day)
	errs.Append(err)
	return f, errs.Err()
}

// Validate returns the Date represented by f, as per New.
func (f Fields) Validate() (Date, error) {
	return New(f.Day, f.Month, f.Year)
}

// FromRecord creates a Date from r by first coercing its fields and then
// validating them. Any errors are returned as a *ValidationError.
func FromRecord(r Record) (Date, error) {
	f, err := Coerce(r)
	if err != nil {
		return Date{}, &ValidationError{err: err}
	}
	d, err := f.Validate()
	if err != nil {
		return Date{}, &ValidationError{err: err}
	}
	return d, nil
}

func toInt[T constraints.Integer](field string, n T) (int, error) {
	i := int(n)
	if T(i) != n || (i < 0) != (n < 0) {
		return 0, &ParseError{Field: field, Input: fmt.Sprint(n), Err: strconv.ErrRange}
	}
	return i, nil
}

func coerceInt(field string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return toInt(field, n)
	case int16:
		return toInt(field, n)
	case int32:
		return toInt(field, n)
	case int64:
		return toInt(field, n)
	case uint:
		return toInt(field, n)
	case uint8:
		return toInt(field, n)
	case uint16:
		return toInt(field, n)
	case uint32:
		return toInt(field, n)
	case uint64:
		return toInt(field, n)
	case float64:
		// Generic YAML and JSON decoders may produce floats for integral values.
		if i := int(n); float64(i) == n {
			return i, nil
		}
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, &ParseError{Field: field, Input: n, Err: err}
		}
		return i, nil
	}
	return 0, &ParseError{Field: field, Input: fmt.Sprint(v)}
}

func coerceMonth(v any) (Month, error) {
	switch m := v.(type) {
	case Month:
		return m, nil
	case time.Month:
		return Month(m), nil
	case string:
		s := strings.TrimSpace(m)
		if n, err := strconv.Atoi(s); err == nil {
			return Month(n), nil
		}
		return ParseMonth(s)
	}
	n, err := coerceInt("month", v)
	return Month(n), err
}
