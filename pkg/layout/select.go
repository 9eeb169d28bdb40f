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
package layout

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shabbyrobe/go-num"
	"golang.org/x/exp/constraints"
)

// ErrUnsupportedRange signals a range which cannot be represented by any kind
// on the ladder.
var ErrUnsupportedRange = errors.New("unsupported range")

// ErrInvalidRange signals a range whose lower bound exceeds its upper bound.
var ErrInvalidRange = errors.New("invalid range")

// Select determines the narrowest kind able to hold every value in the range
// [lower,upper].  Ranges holding exactly one value are given the Trivial kind.
// Otherwise, kinds are tried in LADDER order and the first which fits wins.  An
// error is returned if lower > upper, or if no kind on the ladder suffices.
func Select(lower num.I128, upper num.I128) (Kind, error) {
	switch c := lower.Cmp(upper); {
	case c > 0:
		return Trivial, fmt.Errorf("%w (%s > %s)", ErrInvalidRange, lower.String(), upper.String())
	case c == 0:
		return Trivial, nil
	}
	//
	for _, kind := range LADDER {
		if kind.Fits(lower, upper) {
			return kind, nil
		}
	}
	// Nothing fits
	return Trivial, fmt.Errorf("%w (%s..%s)", ErrUnsupportedRange, lower.String(), upper.String())
}

// Select64 is a convenience wrapper around Select for bounds which fit in an
// int64.
func Select64(lower int64, upper int64) (Kind, error) {
	return Select(num.I128From64(lower), num.I128From64(upper))
}

// KindOf returns the kind matching the native Go integer type T.  The
// platform-dependent types int, uint and uintptr map onto the kinds of the
// host word size.
func KindOf[T constraints.Integer]() Kind {
	var zero T
	//
	switch any(zero).(type) {
	case int8:
		return I8
	case uint8:
		return U8
	case int16:
		return I16
	case uint16:
		return U16
	case int32:
		return I32
	case uint32:
		return U32
	case int64:
		return I64
	case uint64:
		return U64
	case int:
		return wordKind(true)
	case uint, uintptr:
		return wordKind(false)
	}
	// Named types (e.g. "type Foo int8") fall through the switch above.
	// Instead, derive the kind from the width and signedness of T.
	return nativeKind(zero)
}

func wordKind(signed bool) Kind {
	switch {
	case strconv.IntSize == 32 && signed:
		return I32
	case strconv.IntSize == 32:
		return U32
	case signed:
		return I64
	default:
		return U64
	}
}

func nativeKind[T constraints.Integer](zero T) Kind {
	var (
		signed = ^zero < 0
		bits   = 0
	)
	// Count bits by shifting a one through the type.
	for v := T(1); v != 0; v <<= 1 {
		bits++
	}
	//
	switch {
	case bits == 8 && signed:
		return I8
	case bits == 8:
		return U8
	case bits == 16 && signed:
		return I16
	case bits == 16:
		return U16
	case bits == 32 && signed:
		return I32
	case bits == 32:
		return U32
	case signed:
		return I64
	default:
		return U64
	}
}
