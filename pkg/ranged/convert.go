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
	"github.com/consensys/go-ranged/pkg/layout"
	"github.com/consensys/go-ranged/pkg/util"
	"github.com/shabbyrobe/go-num"
	"golang.org/x/exp/constraints"
)

// ============================================================================
// Widening / narrowing
// ============================================================================

// Expand relabels x with a wider range.  Since the target range contains the
// current range, this cannot fail and the value is unchanged.  This panics
// with a *SpecError if the target range does not contain the current range.
func (x Int) Expand(r Range) Int {
	if err := x.CheckExpand(r); err != nil {
		panic(err)
	}
	//
	return Int{r, x.value}
}

// CheckExpand reports whether x can be expanded into the given range.
func (x Int) CheckExpand(r Range) error {
	if !x.rng.Within(r) {
		return specError("expand", ErrNotExpandable, "%s into %s", x.rng.String(), r.String())
	}
	//
	return nil
}

// Fit relabels x with an arbitrary range, provided its value lies within that
// range.  Otherwise, None is returned.
func (x Int) Fit(r Range) util.Option[Int] {
	return New(r, x.value)
}

// FitMin relabels x with the range [min,MAX], provided its value is at least
// min.  This panics with a *SpecError if min > MAX.
func (x Int) FitMin(min num.I128) util.Option[Int] {
	return x.Fit(MustRange(min, x.rng.max))
}

// FitMax relabels x with the range [MIN,max], provided its value is at most
// max.  This panics with a *SpecError if max < MIN.
func (x Int) FitMax(max num.I128) util.Option[Int] {
	return x.Fit(MustRange(x.rng.min, max))
}

// ============================================================================
// Comparison-driven narrowing
// ============================================================================

var one = num.I128From64(1)

// FitLessThan narrows x, provided x < y holds.  In such case, x cannot exceed
// y.MAX-1 and the returned value has range [MIN, y.MAX-1].  Otherwise, None is
// returned.  This panics with a *SpecError if the ranges do not interleave
// (see CheckFitLessThan).
func (x Int) FitLessThan(y Int) util.Option[Int] {
	if err := x.CheckFitLessThan(y); err != nil {
		panic(err)
	} else if !x.Lt(y) {
		return util.None[Int]()
	}
	//
	return util.Some(Int{MustRange(x.rng.min, y.rng.max.Sub(one)), x.value})
}

// CheckFitLessThan reports whether comparing x < y can narrow x, which holds
// when MIN < y.MAX < MAX.
func (x Int) CheckFitLessThan(y Int) error {
	if y.rng.max.Cmp(x.rng.max) < 0 && x.rng.min.Cmp(y.rng.max) < 0 {
		return nil
	}
	//
	return specError("fit_less_than", ErrNoInterleave, "%s < %s", x.rng.String(), y.rng.String())
}

// FitLessEq narrows x, provided x <= y holds.  In such case, the returned value
// has range [MIN, y.MAX].  Otherwise, None is returned.  This panics with a
// *SpecError if the ranges do not interleave (see CheckFitLessEq).
func (x Int) FitLessEq(y Int) util.Option[Int] {
	if err := x.CheckFitLessEq(y); err != nil {
		panic(err)
	} else if !x.Le(y) {
		return util.None[Int]()
	}
	//
	return util.Some(Int{MustRange(x.rng.min, y.rng.max), x.value})
}

// CheckFitLessEq reports whether comparing x <= y can narrow x, which holds
// when MIN <= y.MAX < MAX.
func (x Int) CheckFitLessEq(y Int) error {
	if y.rng.max.Cmp(x.rng.max) < 0 && x.rng.min.Cmp(y.rng.max) <= 0 {
		return nil
	}
	//
	return specError("fit_less_eq", ErrNoInterleave, "%s <= %s", x.rng.String(), y.rng.String())
}

// FitGreaterThan narrows x, provided x > y holds.  In such case, the returned
// value has range [y.MIN+1, MAX].  Otherwise, None is returned.  This panics
// with a *SpecError if the ranges do not interleave (see CheckFitGreaterThan).
func (x Int) FitGreaterThan(y Int) util.Option[Int] {
	if err := x.CheckFitGreaterThan(y); err != nil {
		panic(err)
	} else if !x.Gt(y) {
		return util.None[Int]()
	}
	//
	return util.Some(Int{MustRange(y.rng.min.Add(one), x.rng.max), x.value})
}

// CheckFitGreaterThan reports whether comparing x > y can narrow x, which
// holds when MIN < y.MIN < MAX.
func (x Int) CheckFitGreaterThan(y Int) error {
	if x.rng.min.Cmp(y.rng.min) < 0 && y.rng.min.Cmp(x.rng.max) < 0 {
		return nil
	}
	//
	return specError("fit_greater_than", ErrNoInterleave, "%s > %s", x.rng.String(), y.rng.String())
}

// FitGreaterEq narrows x, provided x >= y holds.  In such case, the returned
// value has range [y.MIN, MAX].  Otherwise, None is returned.  This panics with
// a *SpecError if the ranges do not interleave (see CheckFitGreaterEq).
func (x Int) FitGreaterEq(y Int) util.Option[Int] {
	if err := x.CheckFitGreaterEq(y); err != nil {
		panic(err)
	} else if !x.Ge(y) {
		return util.None[Int]()
	}
	//
	return util.Some(Int{MustRange(y.rng.min, x.rng.max), x.value})
}

// CheckFitGreaterEq reports whether comparing x >= y can narrow x, which holds
// when MIN < y.MIN <= MAX.
func (x Int) CheckFitGreaterEq(y Int) error {
	if x.rng.min.Cmp(y.rng.min) < 0 && y.rng.min.Cmp(x.rng.max) <= 0 {
		return nil
	}
	//
	return specError("fit_greater_eq", ErrNoInterleave, "%s >= %s", x.rng.String(), y.rng.String())
}

// ============================================================================
// Case analysis
// ============================================================================

// Split x at a given point.  If x < at, then the first alternative holds x with
// range [MIN, at-1].  Otherwise, the second alternative holds x with range [at,
// MAX].  This panics with a *SpecError unless MIN < at <= MAX.
func (x Int) Split(at num.I128) util.Union[Int, Int] {
	x.checkSplit("split", at)
	//
	if x.value.Cmp(at) < 0 {
		return util.Union1[Int, Int](Int{MustRange(x.rng.min, at.Sub(one)), x.value})
	}
	//
	return util.Union2[Int, Int](Int{MustRange(at, x.rng.max), x.value})
}

// SplitSubtract is similar to Split, except that the second alternative holds
// x-at with range [0, MAX-at].  This is useful for decomposing a value into
// consecutive segments.
func (x Int) SplitSubtract(at num.I128) util.Union[Int, Int] {
	x.checkSplit("split_subtract", at)
	//
	if x.value.Cmp(at) < 0 {
		return util.Union1[Int, Int](Int{MustRange(x.rng.min, at.Sub(one)), x.value})
	}
	//
	return util.Union2[Int, Int](Int{MustRange(num.I128{}, x.rng.max.Sub(at)), x.value.Sub(at)})
}

func (x Int) checkSplit(op string, at num.I128) {
	if x.rng.min.Cmp(at) >= 0 || at.Cmp(x.rng.max) > 0 {
		panic(specError(op, ErrNoInterleave, "%s at %s", x.rng.String(), at.String()))
	}
}

// ============================================================================
// Native conversion
// ============================================================================

// ToNative converts x into the native integer type T.  This fails with a
// *SpecError if the range of x (rather than just its value) does not fit
// within T, since the conversion would otherwise succeed or fail depending on
// the data.
func ToNative[T constraints.Integer](x Int) (T, error) {
	var (
		kind         = layout.KindOf[T]()
		lower, upper = kind.Bounds()
	)
	//
	if x.rng.min.Cmp(lower) < 0 || x.rng.max.Cmp(upper) > 0 {
		return 0, specError("to_native", ErrNativeRange, "%s does not fit %s", x.rng.String(), kind.String())
	}
	//
	val := x.value.AsBigInt()
	//
	if kind.Signed() {
		return T(val.Int64()), nil
	}
	//
	return T(val.Uint64()), nil
}

// FromNative converts a native integer into a bounded integer whose range is
// that of its type.  For example, an int8 becomes a value in (-128..127).
func FromNative[T constraints.Integer](v T) Int {
	var (
		kind         = layout.KindOf[T]()
		lower, upper = kind.Bounds()
	)
	//
	return Int{MustRange(lower, upper), nativeToI128(v)}
}
