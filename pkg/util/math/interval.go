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
package math

import (
	"fmt"
	"math/big"
)

// Interval provides a discrete range of integers, such as 0..1, 1..18, etc.  An
// interval is used to approximate the possible values that a given expression
// could evaluate to, given the intervals of its operands.  All operations are
// sound: the interval they return contains every value which the corresponding
// operation could produce on values drawn from its operand intervals.  For
// more information on this system, see the following paper:
//
// Integer Range Analysis for Whiley on Embedded Systems, David J. Pearce.  In
// Proceedings of the IEEE/IFIP Workshop on Software Technologies for Future
// Embedded and Ubiquitous Systems (SEUS), pages 26--33, 2015.
//
// Intervals are immutable.  Bounds are never shared with callers.
type Interval struct {
	min *big.Int
	max *big.Int
}

// NewInterval creates an interval representing a given range.  Observe that
// both bounds are cloned.  This will panic if lower > upper.
func NewInterval(lower *big.Int, upper *big.Int) Interval {
	// sanity check
	if lower.Cmp(upper) > 0 {
		panic(fmt.Sprintf("invalid interval (%s > %s)", lower.String(), upper.String()))
	}
	//
	return Interval{new(big.Int).Set(lower), new(big.Int).Set(upper)}
}

// NewInterval64 creates an interval representing a given range.
func NewInterval64(lower int64, upper int64) Interval {
	return NewInterval(big.NewInt(lower), big.NewInt(upper))
}

// MinValue returns the minimum value that this interval includes.
func (p Interval) MinValue() *big.Int {
	return new(big.Int).Set(p.min)
}

// MaxValue returns the maximum value that this interval includes.
func (p Interval) MaxValue() *big.Int {
	return new(big.Int).Set(p.max)
}

// IsConstant determines whether this interval holds exactly one value.
func (p Interval) IsConstant() bool {
	return p.min.Cmp(p.max) == 0
}

// Equals checks whether two intervals have identical bounds.
func (p Interval) Equals(q Interval) bool {
	return p.min.Cmp(q.min) == 0 && p.max.Cmp(q.max) == 0
}

// BitWidth returns the minimum number of bits required to store all elements in
// this interval.  Observe that, if the interval can contain negative numbers
// then it is considered to be "signed", and the bitwidth returned the maximum
// of either the positive or negative sides.
func (p Interval) BitWidth() (width uint, signed bool) {
	// Determine whether signed or not
	signed = p.min.Sign() < 0
	// Done
	return uint(max(p.min.BitLen(), p.max.BitLen())), signed
}

// Contains checks whether a given value is contained with this interval
func (p Interval) Contains(val *big.Int) bool {
	return p.min.Cmp(val) <= 0 && p.max.Cmp(val) >= 0
}

// ContainsZero checks whether or not zero lies within this interval.
func (p Interval) ContainsZero() bool {
	return p.min.Sign() <= 0 && p.max.Sign() >= 0
}

// Within checks whether this interval is contained within the given bounds.
func (p Interval) Within(q Interval) bool {
	return p.min.Cmp(q.min) >= 0 && p.max.Cmp(q.max) <= 0
}

// Union returns the smallest interval enclosing both intervals.
func (p Interval) Union(q Interval) Interval {
	return Interval{minOf(p.min, q.min), maxOf(p.max, q.max)}
}

// Intersect returns the set intersection of two intervals, or false if they
// are disjoint.
func (p Interval) Intersect(q Interval) (Interval, bool) {
	lower, upper := maxOf(p.min, q.min), minOf(p.max, q.max)
	//
	if lower.Cmp(upper) > 0 {
		return Interval{}, false
	}
	//
	return Interval{lower, upper}, true
}

// Add two intervals together.  This is exact.
func (p Interval) Add(q Interval) Interval {
	return Interval{
		new(big.Int).Add(p.min, q.min),
		new(big.Int).Add(p.max, q.max),
	}
}

// Sub subtracts another interval from this.  This is exact.
func (p Interval) Sub(q Interval) Interval {
	return Interval{
		new(big.Int).Sub(p.min, q.max),
		new(big.Int).Sub(p.max, q.min),
	}
}

// Mul multiplies this interval by another.  Since multiplication is monotone
// once the sign of each factor is fixed, the four corner products dominate
// every other product.  This is exact.
func (p Interval) Mul(q Interval) Interval {
	return corners(p, q, (*big.Int).Mul)
}

// Neg negates this interval.  This is exact.
func (p Interval) Neg() Interval {
	return Interval{new(big.Int).Neg(p.max), new(big.Int).Neg(p.min)}
}

// Abs returns the interval of absolute values.  The lower bound is zero if the
// interval straddles zero.  This is exact.
func (p Interval) Abs() Interval {
	var (
		absMin = new(big.Int).Abs(p.min)
		absMax = new(big.Int).Abs(p.max)
	)
	//
	if p.ContainsZero() {
		return Interval{new(big.Int), maxOf(absMin, absMax)}
	}
	//
	return Interval{minOf(absMin, absMax), maxOf(absMin, absMax)}
}

// Min returns the interval of pointwise minimums.  This is exact.
func (p Interval) Min(q Interval) Interval {
	return Interval{minOf(p.min, q.min), minOf(p.max, q.max)}
}

// Max returns the interval of pointwise maximums.  This is exact.
func (p Interval) Max(q Interval) Interval {
	return Interval{maxOf(p.min, q.min), maxOf(p.max, q.max)}
}

func (p Interval) String() string {
	return fmt.Sprintf("(%s..%s)", p.min.String(), p.max.String())
}

// Apply a given binary operation to the four corners of two intervals,
// returning the smallest interval enclosing the results.
func corners(p Interval, q Interval, fn func(*big.Int, *big.Int, *big.Int) *big.Int) Interval {
	x1 := fn(new(big.Int), p.min, q.min)
	x2 := fn(new(big.Int), p.min, q.max)
	x3 := fn(new(big.Int), p.max, q.min)
	x4 := fn(new(big.Int), p.max, q.max)
	//
	lower := minOf(minOf(x1, x2), minOf(x3, x4))
	upper := maxOf(maxOf(x1, x2), maxOf(x3, x4))
	//
	return Interval{lower, upper}
}

func minOf(x *big.Int, y *big.Int) *big.Int {
	if x.Cmp(y) <= 0 {
		return new(big.Int).Set(x)
	}
	//
	return new(big.Int).Set(y)
}

func maxOf(x *big.Int, y *big.Int) *big.Int {
	if x.Cmp(y) >= 0 {
		return new(big.Int).Set(x)
	}
	//
	return new(big.Int).Set(y)
}
