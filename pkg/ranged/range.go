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
	"fmt"
	"math/big"

	"github.com/consensys/go-ranged/pkg/layout"
	"github.com/consensys/go-ranged/pkg/util/math"
	"github.com/shabbyrobe/go-num"
)

// Range is an inclusive interval [MIN,MAX] of integers, together with the
// layout kind selected for it.  Ranges are only constructed when MIN <= MAX and
// some kind on the layout ladder can hold every value.  Ranges are comparable
// using ==.
type Range struct {
	min  num.I128
	max  num.I128
	kind layout.Kind
}

// NewRange constructs the range [min,max], or returns a *SpecError if min > max
// or the range cannot be represented.
func NewRange(min num.I128, max num.I128) (Range, error) {
	kind, err := layout.Select(min, max)
	//
	if err != nil {
		return Range{}, &SpecError{"range", err, ""}
	}
	//
	return Range{min, max, kind}, nil
}

// MustRange constructs the range [min,max], panicking with a *SpecError if
// this is not possible.
func MustRange(min num.I128, max num.I128) Range {
	r, err := NewRange(min, max)
	//
	if err != nil {
		panic(err)
	}
	//
	return r
}

// Range64 constructs the range [min,max] from int64 bounds, panicking with a
// *SpecError if this is not possible.
func Range64(min int64, max int64) Range {
	return MustRange(num.I128From64(min), num.I128From64(max))
}

// Min returns the smallest value in this range.
func (r Range) Min() num.I128 {
	return r.min
}

// Max returns the largest value in this range.
func (r Range) Max() num.I128 {
	return r.max
}

// Layout returns the narrowest layout kind able to hold every value in this
// range.
func (r Range) Layout() layout.Kind {
	return r.kind
}

// IsConstant checks whether this range holds exactly one value.
func (r Range) IsConstant() bool {
	return r.min == r.max
}

// Contains checks whether a given value lies within this range.
func (r Range) Contains(val num.I128) bool {
	return r.min.Cmp(val) <= 0 && r.max.Cmp(val) >= 0
}

// Within checks whether this range is entirely contained within another.
func (r Range) Within(other Range) bool {
	return other.min.Cmp(r.min) <= 0 && other.max.Cmp(r.max) >= 0
}

// Intersect returns the range of values held by both ranges, or false if they
// are disjoint.
func (r Range) Intersect(other Range) (Range, bool) {
	lower, upper := r.min, r.max
	//
	if other.min.Cmp(lower) > 0 {
		lower = other.min
	}
	//
	if other.max.Cmp(upper) < 0 {
		upper = other.max
	}
	//
	if lower.Cmp(upper) > 0 {
		return Range{}, false
	}
	// Observe the intersection cannot be wider than either operand, hence
	// layout selection cannot fail.
	return MustRange(lower, upper), true
}

// Size returns the number of values in this range.
func (r Range) Size() *big.Int {
	size := new(big.Int).Sub(r.max.AsBigInt(), r.min.AsBigInt())
	//
	return size.Add(size, big.NewInt(1))
}

func (r Range) String() string {
	return fmt.Sprintf("(%s..%s)", r.min.String(), r.max.String())
}

// Interval returns this range as an interval for use with bound propagation.
func (r Range) Interval() math.Interval {
	return math.NewInterval(r.min.AsBigInt(), r.max.AsBigInt())
}

// FromInterval converts an interval arising from bound propagation back into a
// range.  This fails if the interval is wider than any supported layout.
func FromInterval(i math.Interval) (Range, error) {
	var (
		lower, lok = num.I128FromBigInt(i.MinValue())
		upper, uok = num.I128FromBigInt(i.MaxValue())
	)
	//
	if !lok || !uok {
		return Range{}, specError("range", ErrUnsupportedRange, "%s", i.String())
	}
	//
	return NewRange(lower, upper)
}
