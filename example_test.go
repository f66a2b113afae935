// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate_test

import (
	"fmt"

	"cloudeng.io/caldate"
)

func Example() {
	d, err := caldate.New(13, caldate.February, 2024)
	if err != nil {
		panic(err)
	}
	leap, _ := d.AddDays(16)
	fmt.Println(leap, leap.Weekday(), leap.IsEndOfMonth())
	fmt.Println(leap.Format(caldate.LongLayout))
	fmt.Println(leap.Sub(d))

	_, err = caldate.New(45, caldate.January, 1989)
	fmt.Println(err)
	// Output:
	// 29-Feb-2024 Thursday true
	// February 29th, 2024
	// 16
	// day not valid: 45 is not between 1 and 31
}

func ExampleFromRecord() {
	d, err := caldate.FromRecord(caldate.Record{Day: "14", Month: "May", Year: 1989})
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	_, err = caldate.FromRecord(caldate.Record{Day: "14", Month: "May", Year: 1900})
	fmt.Println(err)
	// Output:
	// 14-May-1989
	// invalid date: year not valid: 1900 is not between 1950 and 2150
}

func ExampleApply() {
	d := caldate.MustNew(14, caldate.May, 1989)
	for _, v := range []any{15, caldate.MustNew(1, caldate.May, 1989), "x"} {
		r, err := caldate.Apply(caldate.Subtraction, d, caldate.OperandOf(v))
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}
	// Output:
	// 29-Apr-1989
	// 13
	// Subtraction not implemented for type string
}
