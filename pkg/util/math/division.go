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

// DivisionAllowed determines whether an interval can safely be used as a
// divisor.  This holds only when the interval lies entirely on one side of
// zero.
func DivisionAllowed(q Interval) bool {
	return (q.min.Sign() > 0 && q.max.Sign() > 0) || (q.min.Sign() < 0 && q.max.Sign() < 0)
}

// Div divides this interval by another using truncated division (i.e. rounding
// towards zero).  For a divisor which does not straddle zero, the quotient is
// monotone in each operand and, hence, the four corner quotients dominate.
// This is exact.  Note: this will panic if the divisor could be zero.
func (p Interval) Div(q Interval) Interval {
	checkDivisor(q)
	//
	return corners(p, q, (*big.Int).Quo)
}

// DivEuclid divides this interval by another using Euclidean division (i.e.
// where the corresponding remainder is never negative).  This is exact.  Note:
// this will panic if the divisor could be zero.
func (p Interval) DivEuclid(q Interval) Interval {
	checkDivisor(q)
	//
	return corners(p, q, (*big.Int).Div)
}

// Rem computes the remainder of truncated division of this interval by another
// (i.e. where the remainder takes the sign of the dividend).  When the divisor
// is a constant and every value of the dividend shares the same quotient, the
// result is exact.  Otherwise, a conservative interval bounded by the largest
// magnitude of the divisor (and clamped towards zero by the dividend) is
// returned.  Note: this will panic if the divisor could be zero.
func (p Interval) Rem(q Interval) Interval {
	checkDivisor(q)
	//
	if q.IsConstant() {
		if r, ok := p.remConstant(q.min); ok {
			return r
		}
	}
	//
	var (
		one    = big.NewInt(1)
		dmax   = q.maxAbs()
		lower  = new(big.Int)
		upper  = new(big.Int)
		oneSub = new(big.Int).Sub(one, dmax)
		subOne = new(big.Int).Sub(dmax, one)
	)
	// Lower bound: the dividend's sign determines whether negative remainders
	// are possible.
	if p.min.Sign() < 0 {
		lower = maxOf(oneSub, p.min)
	}
	// Upper bound
	if p.max.Sign() > 0 {
		upper = minOf(subOne, p.max)
	}
	//
	return Interval{lower, upper}
}

// RemEuclid computes the Euclidean remainder of this interval by another.  The
// result is never negative.  When the divisor is a constant and every value of
// the dividend shares the same Euclidean quotient, the result is exact.
// Otherwise, the interval 0..|d|-1 (for the largest divisor magnitude |d|) is
// returned, or 0..max when the dividend is positive and smaller than |d|.
// Note: this will panic if the divisor could be zero.
func (p Interval) RemEuclid(q Interval) Interval {
	checkDivisor(q)
	//
	if q.IsConstant() {
		var (
			b     = q.min
			qlow  = new(big.Int).Div(p.min, b)
			qhigh = new(big.Int).Div(p.max, b)
		)
		//
		if qlow.Cmp(qhigh) == 0 {
			return Interval{new(big.Int).Mod(p.min, b), new(big.Int).Mod(p.max, b)}
		}
	}
	//
	var dmax = q.maxAbs()
	//
	if p.min.Sign() > 0 && p.max.Cmp(dmax) < 0 {
		return Interval{new(big.Int), new(big.Int).Set(p.max)}
	}
	//
	return Interval{new(big.Int), dmax.Sub(dmax, big.NewInt(1))}
}

// Compute the remainder of this interval by a constant divisor, provided the
// quotient is the same for every value in this interval.
func (p Interval) remConstant(b *big.Int) (Interval, bool) {
	var absb = new(big.Int).Abs(b)
	//
	switch {
	case p.IsConstant():
		r := new(big.Int).Rem(p.min, b)
		return Interval{r, new(big.Int).Set(r)}, true
	case p.min.Sign() > 0:
		// base is the largest multiple of |b| not exceeding max.
		base := new(big.Int).Quo(p.max, absb)
		base.Mul(base, absb)
		//
		if p.min.Cmp(base) >= 0 {
			return Interval{new(big.Int).Rem(p.min, b), new(big.Int).Rem(p.max, b)}, true
		}
	case p.max.Sign() < 0:
		// base is the smallest multiple of |b| not below min.
		base := new(big.Int).Quo(p.min, absb)
		base.Mul(base, absb)
		//
		if p.max.Cmp(base) <= 0 {
			return Interval{new(big.Int).Rem(p.min, b), new(big.Int).Rem(p.max, b)}, true
		}
	}
	//
	return Interval{}, false
}

// Determine the largest magnitude of any value in this interval.
func (p Interval) maxAbs() *big.Int {
	return maxOf(new(big.Int).Abs(p.min), new(big.Int).Abs(p.max))
}

func checkDivisor(q Interval) {
	if !DivisionAllowed(q) {
		panic(fmt.Sprintf("division by interval %s which may be zero", q.String()))
	}
}
