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
	"slices"

	"github.com/shabbyrobe/go-num"
)

// Arm is a single branch of a Match.  An arm either covers an inclusive range
// of values, or is a catch-all covering everything not matched by an earlier
// arm.
type Arm[R any] struct {
	// Values covered by this arm (unused for a catch-all).
	lower num.I128
	upper num.I128
	// Indicates a catch-all arm.
	otherwise bool
	// Function to execute when this arm matches.
	fn func(Int) R
}

// Case constructs an arm covering the inclusive range [lower,upper].  When this
// arm matches, its function receives the matched value narrowed to the
// intersection of this arm and the value's original range.
func Case[R any](lower int64, upper int64, fn func(Int) R) Arm[R] {
	return CaseRange(Range64(lower, upper), fn)
}

// CaseRange constructs an arm covering a given range.
func CaseRange[R any](r Range, fn func(Int) R) Arm[R] {
	return Arm[R]{r.min, r.max, false, fn}
}

// Otherwise constructs a catch-all arm.  When this arm matches, its function
// receives the matched value unchanged.
func Otherwise[R any](fn func(Int) R) Arm[R] {
	return Arm[R]{otherwise: true, fn: fn}
}

// Match dispatches on the value of x, executing the first arm which matches.
// Unless a catch-all arm is given, the arms must together cover every value in
// the range of x (though they may overlap).  This panics with a *SpecError if
// they do not, regardless of the actual value of x.
func Match[R any](x Int, arms ...Arm[R]) R {
	if !slices.ContainsFunc(arms, func(a Arm[R]) bool { return a.otherwise }) {
		checkExhaustive(x.rng, arms)
	}
	//
	for _, arm := range arms {
		if arm.otherwise {
			return arm.fn(x)
		} else if arm.lower.Cmp(x.value) <= 0 && arm.upper.Cmp(x.value) >= 0 {
			// Narrow x to the values this arm covers
			r, _ := x.rng.Intersect(Range{arm.lower, arm.upper, 0})
			//
			return arm.fn(Int{r, x.value})
		}
	}
	// Unreachable, since the arms are exhaustive.
	panic(specError("match", ErrNotExhaustive, "no arm for %s", x.value.String()))
}

// Check that a given set of arms covers every value in a given range.  This is
// done by sorting the arms by their lower bound and sweeping across the range,
// looking for gaps.
func checkExhaustive[R any](r Range, arms []Arm[R]) {
	sorted := slices.Clone(arms)
	slices.SortFunc(sorted, func(a, b Arm[R]) int { return a.lower.Cmp(b.lower) })
	// Lowest value not yet covered
	next := r.min
	//
	for _, arm := range sorted {
		if arm.lower.Cmp(next) > 0 {
			// Found a gap
			break
		} else if arm.upper.Cmp(next) >= 0 {
			if arm.upper.Cmp(r.max) >= 0 {
				return
			}
			//
			next = arm.upper.Add(one)
		}
	}
	//
	panic(specError("match", ErrNotExhaustive, "value %s of %s not covered", next.String(), r.String()))
}
