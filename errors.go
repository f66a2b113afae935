// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrRange is matched by errors.Is for any *RangeError.
	ErrRange = errors.New("value out of range")
	// ErrParse is matched by errors.Is for any *ParseError.
	ErrParse = errors.New("value cannot be parsed")
	// ErrTypeOperation is matched by errors.Is for any *TypeOperationError.
	ErrTypeOperation = errors.New("operation not implemented for type")
	// ErrNullDate is returned for arithmetic on the zero Date.
	ErrNullDate = errors.New("null date")
)

// RangeError reports a field whose value lies outside of [Low, High].
type RangeError struct {
	Field string
	Value int
	Low   int
	High  int
}

func newRangeError(field string, value, low, high int) *RangeError {
	return &RangeError{Field: field, Value: value, Low: low, High: high}
}

// Error implements error.
func (re *RangeError) Error() string {
	return fmt.Sprintf("%s not valid: %d is not between %d and %d", re.Field, re.Value, re.Low, re.High)
}

// Is supports errors.Is for ErrRange.
func (re *RangeError) Is(target error) bool {
	return target == ErrRange
}

// ParseError reports input that could not be converted to the
// underlying type of a field. Err, if set, is the error
// returned by the underlying conversion.
type ParseError struct {
	Field string
	Input string
	Err   error
}

// Error implements error.
func (pe *ParseError) Error() string {
	return fmt.Sprintf("%s not valid: %q cannot be parsed", pe.Field, pe.Input)
}

// Unwrap returns the underlying conversion error, if any.
func (pe *ParseError) Unwrap() error {
	return pe.Err
}

// Is supports errors.Is for ErrParse.
func (pe *ParseError) Is(target error) bool {
	return target == ErrParse
}

// TypeOperationError reports an arithmetic operator applied to an
// operand of a type it does not support.
type TypeOperationError struct {
	Op   Operator
	Type string
}

// Error implements error.
func (te *TypeOperationError) Error() string {
	return fmt.Sprintf("%v not implemented for type %s", te.Op, te.Type)
}

// Is supports errors.Is for ErrTypeOperation.
func (te *TypeOperationError) Is(target error) bool {
	return target == ErrTypeOperation
}

// ValidationError is returned by FromRecord and wraps all of the
// coercion or range errors encountered. Use errors.As to obtain
// the individual *ParseError or *RangeError values.
type ValidationError struct {
	err error
}

// Error implements error.
func (ve *ValidationError) Error() string {
	return "invalid date: " + ve.err.Error()
}

// Unwrap implements errors.Unwrap.
func (ve *ValidationError) Unwrap() error {
	return ve.err
}
