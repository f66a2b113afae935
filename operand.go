// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Operator represents a date arithmetic operator.
type Operator int

const (
	Addition Operator = iota
	Subtraction
)

func (op Operator) String() string {
	switch op {
	case Addition:
		return "Addition"
	case Subtraction:
		return "Subtraction"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// OperandKind identifies the type of value held by an Operand.
type OperandKind int

const (
	UnsupportedOperand OperandKind = iota
	DaysOperand
	DateOperand
)

// Operand is the right hand side of a date arithmetic operation; it
// holds either a number of days or a Date. An Operand created from a
// value of any other type is unsupported and records the name of that
// type for use in error messages.
type Operand struct {
	kind     OperandKind
	days     int
	date     Date
	typeName string
	err      error
}

// Days returns an Operand representing n days. A value that does not fit
// in an int yields an unsupported Operand for which Apply returns a
// *ParseError for field "days".
func Days[T constraints.Integer](n T) Operand {
	days, err := toInt("days", n)
	if err != nil {
		return Operand{typeName: fmt.Sprintf("%T", n), err: err}
	}
	return Operand{kind: DaysOperand, days: days, typeName: fmt.Sprintf("%T", n)}
}

// OfDate returns an Operand representing d.
func OfDate(d Date) Operand {
	return Operand{kind: DateOperand, date: d, typeName: fmt.Sprintf("%T", d)}
}

// OperandOf returns the Operand for v: any integer type is treated as
// a number of days, a Date as a date and anything else as unsupported.
func OperandOf(v any) Operand {
	switch n := v.(type) {
	case int:
		return Days(n)
	case int8:
		return Days(n)
	case int16:
		return Days(n)
	case int32:
		return Days(n)
	case int64:
		return Days(n)
	case uint:
		return Days(n)
	case uint8:
		return Days(n)
	case uint16:
		return Days(n)
	case uint32:
		return Days(n)
	case uint64:
		return Days(n)
	case Date:
		return OfDate(n)
	case Operand:
		return n
	case nil:
		return Operand{typeName: "nil"}
	}
	return Operand{typeName: fmt.Sprintf("%T", v)}
}

// Kind returns the kind of value held by o.
func (o Operand) Kind() OperandKind {
	return o.kind
}

// Days returns the number of days held by o and true if o is a
// DaysOperand.
func (o Operand) Days() (int, bool) {
	return o.days, o.kind == DaysOperand
}

// Date returns the Date held by o and true if o is a DateOperand.
func (o Operand) Date() (Date, bool) {
	return o.date, o.kind == DateOperand
}

// TypeName returns the name of the Go type that o was created from,
// or caldate.Operand for the zero Operand.
func (o Operand) TypeName() string {
	if len(o.typeName) == 0 {
		return "caldate.Operand"
	}
	return o.typeName
}

func (o Operand) String() string {
	switch o.kind {
	case DaysOperand:
		return fmt.Sprintf("%d", o.days)
	case DateOperand:
		return o.date.String()
	}
	return "unsupported operand of type " + o.TypeName()
}

// Apply evaluates lhs op rhs. Adding days to a date, or subtracting days
// from it, yields a DateOperand; subtracting one date from another yields
// a DaysOperand. All other combinations fail with a *TypeOperationError.
// ErrNullDate is returned if either date is the null date.
func Apply(op Operator, lhs Date, rhs Operand) (Operand, error) {
	if rhs.err != nil {
		return Operand{}, rhs.err
	}
	switch {
	case op == Addition && rhs.kind == DaysOperand:
		d, err := lhs.AddDays(rhs.days)
		if err != nil {
			return Operand{}, err
		}
		return OfDate(d), nil
	case op == Subtraction && rhs.kind == DaysOperand:
		d, err := lhs.SubDays(rhs.days)
		if err != nil {
			return Operand{}, err
		}
		return OfDate(d), nil
	case op == Subtraction && rhs.kind == DateOperand:
		if lhs.IsZero() || rhs.date.IsZero() {
			return Operand{}, ErrNullDate
		}
		return Days(lhs.Sub(rhs.date)), nil
	}
	return Operand{}, &TypeOperationError{Op: op, Type: rhs.TypeName()}
}

// Plus returns d + rhs, where rhs must be a number of days.
func (d Date) Plus(rhs Operand) (Date, error) {
	r, err := Apply(Addition, d, rhs)
	if err != nil {
		return Date{}, err
	}
	nd, _ := r.Date()
	return nd, nil
}

// Minus returns d - rhs, which is a Date if rhs is a number of days or the
// number of days between the two dates if rhs is a Date.
func (d Date) Minus(rhs Operand) (Operand, error) {
	return Apply(Subtraction, d, rhs)
}
