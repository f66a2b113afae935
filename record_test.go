// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"cloudeng.io/caldate"
)

func TestFromRecord(t *testing.T) {
	nd := newDate
	for _, tc := range []struct {
		record caldate.Record
		date   caldate.Date
	}{
		{caldate.Record{Day: 14, Month: 5, Year: 1989}, nd(14, caldate.May, 1989)},
		{caldate.Record{Day: "14", Month: "5", Year: "1989"}, nd(14, caldate.May, 1989)},
		{caldate.Record{Day: " 14 ", Month: "May", Year: " 1989"}, nd(14, caldate.May, 1989)},
		{caldate.Record{Day: int8(1), Month: caldate.February, Year: uint16(2024)}, nd(1, caldate.February, 2024)},
		{caldate.Record{Day: int64(29), Month: time.February, Year: int32(2024)}, nd(29, caldate.February, 2024)},
		{caldate.Record{Day: 8.0, Month: "sept", Year: 2030.0}, nd(8, caldate.September, 2030)},
	} {
		d, err := caldate.FromRecord(tc.record)
		if err != nil {
			t.Errorf("%v: %v", tc.record, err)
			continue
		}
		if got, want := d, tc.date; got != want {
			t.Errorf("%v: got %v, want %v", tc.record, got, want)
		}
	}
}

func TestCoerce(t *testing.T) {
	f, err := caldate.Coerce(caldate.Record{Day: "45", Month: "13", Year: "2024"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f, (caldate.Fields{Day: 45, Month: 13, Year: 2024}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	_, err = f.Validate()
	var re *caldate.RangeError
	if !errors.As(err, &re) || re.Field != "month" {
		t.Errorf("unexpected or missing error: %v", err)
	}

	// All fields are coerced and all failures reported.
	_, err = caldate.Coerce(caldate.Record{Day: "x", Month: "Foo", Year: []int{1}})
	if err == nil {
		t.Fatal("expected an error")
	}
	var me interface{ Unwrap() []error }
	if !errors.As(err, &me) {
		t.Fatalf("%v: is not a multi-error", err)
	}
	fields := map[string]bool{}
	for _, e := range me.Unwrap() {
		var pe *caldate.ParseError
		if !errors.As(e, &pe) {
			t.Errorf("%v: is not a ParseError", e)
			continue
		}
		fields[pe.Field] = true
	}
	if got, want := len(fields), 3; got != want || !fields["day"] || !fields["month"] || !fields["year"] {
		t.Errorf("got %v, want day, month and year", fields)
	}
	if !errors.Is(err, caldate.ErrParse) {
		t.Errorf("%v: is not an ErrParse", err)
	}
}

func TestFromRecordErrors(t *testing.T) {
	for _, tc := range []struct {
		record caldate.Record
		field  string
		parse  bool
	}{
		{caldate.Record{Day: "x", Month: 1, Year: 2024}, "day", true},
		{caldate.Record{Day: 1, Month: "Foo", Year: 2024}, "month", true},
		{caldate.Record{Day: 1, Month: 1, Year: "twenty"}, "year", true},
		{caldate.Record{Day: 1, Month: 1, Year: nil}, "year", true},
		{caldate.Record{Day: 1.5, Month: 1, Year: 2024}, "day", true},
		{caldate.Record{Day: uint64(1 << 63), Month: 1, Year: 2024}, "day", true},
		{caldate.Record{Day: 32, Month: 1, Year: 2024}, "day", false},
		{caldate.Record{Day: 1, Month: 0, Year: 2024}, "month", false},
		{caldate.Record{Day: 1, Month: 1, Year: "1949"}, "year", false},
	} {
		_, err := caldate.FromRecord(tc.record)
		var ve *caldate.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%v: unexpected or missing error: %v", tc.record, err)
			continue
		}
		if tc.parse {
			var pe *caldate.ParseError
			if !errors.As(err, &pe) || pe.Field != tc.field {
				t.Errorf("%v: unexpected error: %v", tc.record, err)
			}
			continue
		}
		var re *caldate.RangeError
		if !errors.As(err, &re) || re.Field != tc.field {
			t.Errorf("%v: unexpected error: %v", tc.record, err)
		}
	}

	_, err := caldate.FromRecord(caldate.Record{Day: uint64(1 << 63), Month: 1, Year: 2024})
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}
