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

	"github.com/consensys/go-ranged/pkg/util/math"
	"github.com/shabbyrobe/go-num"
	"golang.org/x/exp/constraints"
)

// Op enumerates the operators over bounded integers.
type Op int

// The binary operators are listed first, followed by the unary ones.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpDivEuclid
	OpRemEuclid
	OpMin
	OpMax
	OpNeg
	OpAbs
)

// OPERATORS lists every operator.
var OPERATORS = []Op{OpAdd, OpSub, OpMul, OpDiv, OpRem, OpDivEuclid, OpRemEuclid, OpMin, OpMax, OpNeg, OpAbs}

var opNames = []string{"add", "sub", "mul", "div", "rem", "div-euclid", "rem-euclid", "min", "max", "neg", "abs"}

// ParseOp returns the operator with the given name (e.g. "div-euclid"), or
// false if no such operator exists.
func ParseOp(name string) (Op, bool) {
	for i, n := range opNames {
		if n == name {
			return Op(i), true
		}
	}
	//
	return 0, false
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		panic(fmt.Sprintf("unknown operator %d", op))
	}
	//
	return opNames[op]
}

// Arity returns the number of operands this operator accepts.
func (op Op) Arity() int {
	if op >= OpNeg {
		return 1
	}
	//
	return 2
}

// Divides determines whether this operator divides by its second operand, and
// hence requires a divisor range which excludes zero.
func (op Op) Divides() bool {
	return op >= OpDiv && op <= OpRemEuclid
}

// Bounds determines the range of results this operator can produce from
// operands drawn from the given ranges, without any concrete values being
// required.  An error is returned if the operator is not permitted on these
// ranges (e.g. the divisor range contains zero) or the resulting range cannot
// be represented.
func (op Op) Bounds(args ...Range) (Range, error) {
	if len(args) != op.Arity() {
		return Range{}, specError(op.String(), ErrArity, "expected %d, got %d", op.Arity(), len(args))
	}
	//
	var (
		lhs    = args[0].Interval()
		result math.Interval
	)
	//
	if op.Arity() == 1 {
		switch op {
		case OpNeg:
			result = lhs.Neg()
		default:
			result = lhs.Abs()
		}
		//
		return op.checkResult(result)
	}
	//
	rhs := args[1].Interval()
	//
	if op.Divides() && !math.DivisionAllowed(rhs) {
		return Range{}, specError(op.String(), ErrDivisionByZero, "%s / %s", args[0].String(), args[1].String())
	}
	//
	switch op {
	case OpAdd:
		result = lhs.Add(rhs)
	case OpSub:
		result = lhs.Sub(rhs)
	case OpMul:
		result = lhs.Mul(rhs)
	case OpDiv:
		result = lhs.Div(rhs)
	case OpRem:
		result = lhs.Rem(rhs)
	case OpDivEuclid:
		result = lhs.DivEuclid(rhs)
	case OpRemEuclid:
		result = lhs.RemEuclid(rhs)
	case OpMin:
		result = lhs.Min(rhs)
	default:
		result = lhs.Max(rhs)
	}
	//
	return op.checkResult(result)
}

func (op Op) checkResult(result math.Interval) (Range, error) {
	r, err := FromInterval(result)
	//
	if err != nil {
		return Range{}, specError(op.String(), ErrUnsupportedRange, "%s", result.String())
	}
	//
	return r, nil
}

// Apply an operator to bounded integers.  The range of the result is
// determined by Bounds and, hence, always contains the result value.  An error
// is returned if the operator is not permitted on the operands' ranges.
func Apply(op Op, args ...Int) (Int, error) {
	ranges := make([]Range, len(args))
	//
	for i, arg := range args {
		ranges[i] = arg.rng
	}
	//
	r, err := op.Bounds(ranges...)
	if err != nil {
		return Int{}, err
	}
	//
	val := op.eval(args)
	// Sanity check
	if !r.Contains(val) {
		panic(fmt.Sprintf("%s result %s outside %s", op.String(), val.String(), r.String()))
	}
	//
	return Int{r, val}, nil
}

// Evaluate this operator on the given (non-empty, arity-checked) operands.
// The operand ranges have already been checked, so no division by zero or
// overflow can arise here.
func (op Op) eval(args []Int) num.I128 {
	var x = args[0].value
	//
	switch op {
	case OpNeg:
		return x.Neg()
	case OpAbs:
		if x.Sign() < 0 {
			return x.Neg()
		}
		//
		return x
	}
	//
	var y = args[1].value
	//
	switch op {
	case OpAdd:
		return x.Add(y)
	case OpSub:
		return x.Sub(y)
	case OpMul:
		return x.Mul(y)
	case OpDiv:
		return x.Quo(y)
	case OpRem:
		return x.Rem(y)
	case OpDivEuclid:
		q, _ := divEuclid(x, y)
		return q
	case OpRemEuclid:
		_, r := divEuclid(x, y)
		return r
	case OpMin:
		if x.Cmp(y) <= 0 {
			return x
		}
		//
		return y
	default:
		if x.Cmp(y) >= 0 {
			return x
		}
		//
		return y
	}
}

// Compute the Euclidean quotient and remainder, where the remainder is never
// negative.  This adjusts truncated division whenever the truncated remainder
// is negative.
func divEuclid(x num.I128, y num.I128) (num.I128, num.I128) {
	var (
		one = num.I128From64(1)
		q   = x.Quo(y)
		r   = x.Rem(y)
	)
	//
	if r.Sign() < 0 {
		if y.Sign() > 0 {
			return q.Sub(one), r.Add(y)
		}
		//
		return q.Add(one), r.Sub(y)
	}
	//
	return q, r
}

func mustApply(op Op, args ...Int) Int {
	r, err := Apply(op, args...)
	//
	if err != nil {
		panic(err)
	}
	//
	return r
}

// Add returns x + y, whose range is [x.MIN + y.MIN, x.MAX + y.MAX].
func (x Int) Add(y Int) Int {
	return mustApply(OpAdd, x, y)
}

// Sub returns x - y, whose range is [x.MIN - y.MAX, x.MAX - y.MIN].
func (x Int) Sub(y Int) Int {
	return mustApply(OpSub, x, y)
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return mustApply(OpMul, x, y)
}

// Div returns x / y, rounding towards zero.  This panics with a *SpecError if
// the range of y contains zero, regardless of y's actual value.
func (x Int) Div(y Int) Int {
	return mustApply(OpDiv, x, y)
}

// Rem returns x % y, whose sign follows x.  This panics with a *SpecError if
// the range of y contains zero.
func (x Int) Rem(y Int) Int {
	return mustApply(OpRem, x, y)
}

// DivEuclid returns the Euclidean quotient of x by y.  This panics with a
// *SpecError if the range of y contains zero.
func (x Int) DivEuclid(y Int) Int {
	return mustApply(OpDivEuclid, x, y)
}

// RemEuclid returns the Euclidean remainder of x by y, which is never
// negative.  This panics with a *SpecError if the range of y contains zero.
func (x Int) RemEuclid(y Int) Int {
	return mustApply(OpRemEuclid, x, y)
}

// Min returns the smaller of x and y.
func (x Int) Min(y Int) Int {
	return mustApply(OpMin, x, y)
}

// Max returns the larger of x and y.
func (x Int) Max(y Int) Int {
	return mustApply(OpMax, x, y)
}

// Neg returns -x.
func (x Int) Neg() Int {
	return mustApply(OpNeg, x)
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return mustApply(OpAbs, x)
}

// RemNative returns the remainder of a native integer by a bounded divisor.
// The result range follows from treating v as a value ranging over all of T,
// hence lies within [1-|d|,|d|-1] for signed T and [0,|d|-1] for unsigned T.
func RemNative[T constraints.Integer](v T, d Int) Int {
	return FromNative(v).Rem(d)
}
