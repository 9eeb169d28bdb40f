// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ranged

import (
	"errors"
	"fmt"

	"github.com/consensys/go-ranged/pkg/layout"
)

// ErrInvalidRange signals a range whose lower bound exceeds its upper bound.
var ErrInvalidRange = layout.ErrInvalidRange

// ErrUnsupportedRange signals a range which no layout kind can represent.
var ErrUnsupportedRange = layout.ErrUnsupportedRange

// ErrDivisionByZero signals a division (or remainder) whose divisor range
// contains zero.
var ErrDivisionByZero = errors.New("divisor range contains zero")

// ErrArity signals an operator applied to the wrong number of operands.
var ErrArity = errors.New("incorrect number of operands")

// ErrInvariantViolated signals a constant which lies outside its declared
// range.
var ErrInvariantViolated = errors.New("invariant violated")

// ErrNotExpandable signals an attempt to expand a value into a range which
// does not contain its current range.
var ErrNotExpandable = errors.New("target range does not contain source range")

// ErrNoInterleave signals a comparison-driven fit between ranges which do not
// interleave, or a split point outside the range being split.
var ErrNoInterleave = errors.New("ranges do not interleave")

// ErrIndexRange signals an index whose range is not contained within the
// bounds of the array being indexed.
var ErrIndexRange = errors.New("index range exceeds array bounds")

// ErrNotExhaustive signals a set of match arms which do not cover every value
// of the matched range.
var ErrNotExhaustive = errors.New("match arms not exhaustive")

// ErrNativeRange signals a range which does not fit within a native integer
// type.
var ErrNativeRange = errors.New("range does not fit native type")

// ErrCorruptEncoding signals a byte encoding which does not decode to a value
// of the expected range.
var ErrCorruptEncoding = errors.New("corrupt encoding")

// ErrNotANumber signals text which does not represent an integer.
var ErrNotANumber = errors.New("not a number")

// ErrOutOfRange signals text representing an integer outside the target
// range.
var ErrOutOfRange = errors.New("number out of range")

// SpecError describes a violation in how ranges are declared or combined
// (e.g. dividing by a range containing zero), as opposed to a problem with the
// values flowing through them.  Operations which cannot continue in this
// situation panic with a *SpecError, whilst their checked counterparts return
// it.
type SpecError struct {
	// Operation which was attempted.
	Op string
	// Underlying cause (one of the sentinel errors above).
	Err error
	// Further detail, such as the offending ranges.
	Detail string
}

func (e *SpecError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
	}
	//
	return fmt.Sprintf("%s: %s (%s)", e.Op, e.Err.Error(), e.Detail)
}

// Unwrap returns the underlying cause.
func (e *SpecError) Unwrap() error {
	return e.Err
}

func specError(op string, err error, format string, args ...any) *SpecError {
	return &SpecError{op, err, fmt.Sprintf(format, args...)}
}

// ParseError describes a failure to construct a bounded integer from text.
// The underlying cause distinguishes text which is not a number at all
// (ErrNotANumber) from a number lying outside the target range
// (ErrOutOfRange).
type ParseError struct {
	// Text being parsed.
	Input string
	// Range which was targeted.
	Range Range
	// Underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %s", e.Input, e.Range.String(), e.Err.Error())
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
