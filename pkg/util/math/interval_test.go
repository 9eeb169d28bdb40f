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
	"math/big"
	"testing"
)

// Bounds of the exhaustively explored value space.
const (
	LOW  = -6
	HIGH = 6
)

type binop struct {
	name     string
	interval func(Interval, Interval) Interval
	concrete func(int64, int64) int64
	divides  bool
	exact    bool
}

var binops = []binop{
	{"add", Interval.Add, func(x, y int64) int64 { return x + y }, false, true},
	{"sub", Interval.Sub, func(x, y int64) int64 { return x - y }, false, true},
	{"mul", Interval.Mul, func(x, y int64) int64 { return x * y }, false, true},
	{"div", Interval.Div, func(x, y int64) int64 { return x / y }, true, true},
	{"rem", Interval.Rem, func(x, y int64) int64 { return x % y }, true, false},
	{"div_euclid", Interval.DivEuclid, divEuclid, true, true},
	{"rem_euclid", Interval.RemEuclid, remEuclid, true, false},
	{"min", Interval.Min, func(x, y int64) int64 { return min(x, y) }, false, true},
	{"max", Interval.Max, func(x, y int64) int64 { return max(x, y) }, false, true},
}

func Test_Interval_Add(t *testing.T) {
	checkBinop(t, binops[0])
}

func Test_Interval_Sub(t *testing.T) {
	checkBinop(t, binops[1])
}

func Test_Interval_Mul(t *testing.T) {
	checkBinop(t, binops[2])
}

func Test_Interval_Div(t *testing.T) {
	checkBinop(t, binops[3])
}

func Test_Interval_Rem(t *testing.T) {
	checkBinop(t, binops[4])
}

func Test_Interval_DivEuclid(t *testing.T) {
	checkBinop(t, binops[5])
}

func Test_Interval_RemEuclid(t *testing.T) {
	checkBinop(t, binops[6])
}

func Test_Interval_Min(t *testing.T) {
	checkBinop(t, binops[7])
}

func Test_Interval_Max(t *testing.T) {
	checkBinop(t, binops[8])
}

func Test_Interval_Neg(t *testing.T) {
	checkUnop(t, Interval.Neg, func(x int64) int64 { return -x })
}

func Test_Interval_Abs(t *testing.T) {
	checkUnop(t, Interval.Abs, func(x int64) int64 {
		if x < 0 {
			return -x
		}

		return x
	})
}

func Test_Interval_Examples(t *testing.T) {
	d6 := NewInterval64(1, 6)
	//
	checkInterval(t, d6.Add(d6), 2, 12)
	checkInterval(t, d6.Mul(d6), 1, 36)
	checkInterval(t, d6.Div(d6), 0, 6)
	checkInterval(t, NewInterval64(-1000, 1000).Rem(NewInterval64(1, 10)), -9, 9)
	checkInterval(t, NewInterval64(-6, -1).Neg(), 1, 6)
	checkInterval(t, NewInterval64(100, 1000).Div(NewInterval64(1, 6)), 16, 1000)
	checkInterval(t, NewInterval64(100, 1000).Div(NewInterval64(-6, -1)), -1000, -16)
	checkInterval(t, NewInterval64(-3, 0).Mul(NewInterval64(0, 3)), -9, 0)
	checkInterval(t, NewInterval64(-3, 3).Abs(), 0, 3)
	checkInterval(t, NewInterval64(-7, -2).Abs(), 2, 7)
	// Exact remainder by constant
	checkInterval(t, NewInterval64(6, 8).Rem(NewInterval64(3, 3)), 0, 2)
	checkInterval(t, NewInterval64(-8, -6).Rem(NewInterval64(-3, -3)), -2, 0)
	checkInterval(t, NewInterval64(64, 64).Rem(NewInterval64(42, 42)), 22, 22)
	checkInterval(t, NewInterval64(-7, -7).RemEuclid(NewInterval64(3, 3)), 2, 2)
	checkInterval(t, NewInterval64(7, 8).RemEuclid(NewInterval64(-3, -3)), 1, 2)
	// Fallback
	checkInterval(t, NewInterval64(0, 100).RemEuclid(NewInterval64(1, 10)), 0, 9)
	checkInterval(t, NewInterval64(1, 5).RemEuclid(NewInterval64(2, 10)), 0, 5)
	checkInterval(t, NewInterval64(0, 15).Rem(NewInterval64(20, 20)), 0, 15)
}

func Test_Interval_DivisionAllowed(t *testing.T) {
	for lo := int64(LOW); lo <= HIGH; lo++ {
		for hi := lo; hi <= HIGH; hi++ {
			q := NewInterval64(lo, hi)
			expected := hi < 0 || lo > 0
			//
			if DivisionAllowed(q) != expected {
				t.Errorf("division by %s incorrectly (dis)allowed", q.String())
			}
		}
	}
}

func Test_Interval_DivByZero(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("division by (-1..1) should panic")
		}
	}()
	//
	NewInterval64(1, 2).Div(NewInterval64(-1, 1))
}

func Test_Interval_Intersect(t *testing.T) {
	r, ok := NewInterval64(0, 10).Intersect(NewInterval64(5, 20))
	//
	if !ok || !r.Equals(NewInterval64(5, 10)) {
		t.Errorf("unexpected intersection %s", r.String())
	}
	//
	if _, ok := NewInterval64(0, 4).Intersect(NewInterval64(5, 20)); ok {
		t.Errorf("disjoint intervals should not intersect")
	}
}

// Check soundness (and exactness where claimed) of a binary operator over all
// intervals within the explored value space.
func checkBinop(t *testing.T, op binop) {
	for _, a := range intervals() {
		for _, b := range intervals() {
			if op.divides && !DivisionAllowed(b) {
				continue
			}
			//
			var (
				r     = op.interval(a, b)
				lower = false
				upper = false
			)
			//
			for x := a.min.Int64(); x <= a.max.Int64(); x++ {
				for y := b.min.Int64(); y <= b.max.Int64(); y++ {
					v := op.concrete(x, y)
					if !r.Contains(big.NewInt(v)) {
						t.Fatalf("%s(%d,%d) == %d not in %s (%s,%s)", op.name, x, y, v, r.String(), a.String(), b.String())
					}
					//
					lower = lower || v == r.min.Int64()
					upper = upper || v == r.max.Int64()
				}
			}
			//
			if op.exact && (!lower || !upper) {
				t.Fatalf("%s(%s,%s) == %s is not tight", op.name, a.String(), b.String(), r.String())
			}
		}
	}
}

func checkUnop(t *testing.T, interval func(Interval) Interval, concrete func(int64) int64) {
	for _, a := range intervals() {
		var (
			r     = interval(a)
			lower = false
			upper = false
		)
		//
		for x := a.min.Int64(); x <= a.max.Int64(); x++ {
			v := concrete(x)
			if !r.Contains(big.NewInt(v)) {
				t.Fatalf("op(%d) == %d not in %s", x, v, r.String())
			}
			//
			lower = lower || v == r.min.Int64()
			upper = upper || v == r.max.Int64()
		}
		//
		if !lower || !upper {
			t.Fatalf("op(%s) == %s is not tight", a.String(), r.String())
		}
	}
}

func checkInterval(t *testing.T, r Interval, lower int64, upper int64) {
	t.Helper()
	//
	if !r.Equals(NewInterval64(lower, upper)) {
		t.Errorf("expected (%d..%d), got %s", lower, upper, r.String())
	}
}

// Generate all intervals within the explored value space.
func intervals() []Interval {
	var items []Interval
	//
	for lo := int64(LOW); lo <= HIGH; lo++ {
		for hi := lo; hi <= HIGH; hi++ {
			items = append(items, NewInterval64(lo, hi))
		}
	}
	//
	return items
}

func divEuclid(x int64, y int64) int64 {
	q := x / y
	if x%y < 0 {
		if y > 0 {
			q--
		} else {
			q++
		}
	}
	//
	return q
}

func remEuclid(x int64, y int64) int64 {
	r := x % y
	if r < 0 {
		if y > 0 {
			r += y
		} else {
			r -= y
		}
	}
	//
	return r
}
