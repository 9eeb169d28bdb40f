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
package expr

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/go-ranged/pkg/ranged"
	"github.com/shabbyrobe/go-num"
)

// ErrMalformed signals an expression which does not have a recognised shape.
var ErrMalformed = errors.New("malformed expression")

// ErrFitFailed signals a fit whose value lies outside the target range.
var ErrFitFailed = errors.New("value does not fit range")

// EvalError describes a failure to evaluate some part of an expression.
type EvalError struct {
	// Expression being evaluated
	Expr SExp
	// Underlying cause
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Expr.String(), e.Err.Error())
}

// Unwrap returns the underlying cause.
func (e *EvalError) Unwrap() error {
	return e.Err
}

// EvalString parses and evaluates a single expression.
func EvalString(text string) (ranged.Int, error) {
	e, err := Parse(text)
	//
	if err != nil {
		return ranged.Int{}, err
	}
	//
	return Eval(e)
}

// Eval evaluates an expression into a bounded integer.  Expressions take the
// following forms:
//
//	42                     constant with range [42,42]
//	[min max value]        bounded literal
//	(op x y)               binary operator (add, sub, mul, div, rem,
//	                       div-euclid, rem-euclid, min, max)
//	(op x)                 unary operator (neg, abs)
//	(expand x min max)     widen x into [min,max]
//	(fit x min max)        narrow x into [min,max]
//
// Operators whose operand ranges are not permitted (e.g. division by a range
// containing zero) report the corresponding *ranged.SpecError.
func Eval(e SExp) (ranged.Int, error) {
	switch {
	case e.AsSymbol() != nil:
		val, err := parseI128(e.AsSymbol().Value)
		if err != nil {
			return ranged.Int{}, &EvalError{e, err}
		}
		//
		return ranged.ConstantOf(val), nil
	case e.AsArray() != nil:
		return evalLiteral(e.AsArray())
	case e.AsList() != nil:
		return evalList(e.AsList())
	}
	//
	return ranged.Int{}, &EvalError{e, ErrMalformed}
}

func evalLiteral(e *Array) (ranged.Int, error) {
	if e.Len() != 3 || !allSymbols(e.Elements) {
		return ranged.Int{}, &EvalError{e, ErrMalformed}
	}
	//
	r, err := evalRange(e.Get(0), e.Get(1))
	if err != nil {
		return ranged.Int{}, &EvalError{e, err}
	}
	//
	x, err := ranged.Parse(r, e.Get(2).AsSymbol().Value)
	if err != nil {
		return ranged.Int{}, &EvalError{e, err}
	}
	//
	return x, nil
}

func evalList(e *List) (ranged.Int, error) {
	var head = e.Head()
	//
	switch head {
	case "expand", "fit":
		return evalConversion(e, head == "expand")
	case "":
		return ranged.Int{}, &EvalError{e, ErrMalformed}
	}
	//
	op, ok := ranged.ParseOp(head)
	if !ok {
		return ranged.Int{}, &EvalError{e, fmt.Errorf("%w (unknown operator %q)", ErrMalformed, head)}
	}
	//
	args, err := evalArgs(e.Elements[1:])
	if err != nil {
		return ranged.Int{}, err
	}
	//
	x, err := ranged.Apply(op, args...)
	if err != nil {
		return ranged.Int{}, &EvalError{e, err}
	}
	//
	return x, nil
}

func evalConversion(e *List, expand bool) (ranged.Int, error) {
	if e.Len() != 4 || !allSymbols(e.Elements[2:]) {
		return ranged.Int{}, &EvalError{e, ErrMalformed}
	}
	//
	x, err := Eval(e.Get(1))
	if err != nil {
		return ranged.Int{}, err
	}
	//
	r, err := evalRange(e.Get(2), e.Get(3))
	if err != nil {
		return ranged.Int{}, &EvalError{e, err}
	}
	//
	if expand {
		if err := x.CheckExpand(r); err != nil {
			return ranged.Int{}, &EvalError{e, err}
		}
		//
		return x.Expand(r), nil
	}
	//
	if y, ok := x.Fit(r).Get(); ok {
		return y, nil
	}
	//
	return ranged.Int{}, &EvalError{e, fmt.Errorf("%w (%s not in %s)", ErrFitFailed, x.String(), r.String())}
}

func evalArgs(elements []SExp) ([]ranged.Int, error) {
	args := make([]ranged.Int, len(elements))
	//
	for i, arg := range elements {
		x, err := Eval(arg)
		if err != nil {
			return nil, err
		}
		//
		args[i] = x
	}
	//
	return args, nil
}

func evalRange(lower SExp, upper SExp) (ranged.Range, error) {
	lo, err := parseI128(lower.AsSymbol().Value)
	if err != nil {
		return ranged.Range{}, err
	}
	//
	hi, err := parseI128(upper.AsSymbol().Value)
	if err != nil {
		return ranged.Range{}, err
	}
	//
	return ranged.NewRange(lo, hi)
}

func parseI128(text string) (num.I128, error) {
	val, ok := new(big.Int).SetString(text, 10)
	//
	if !ok {
		return num.I128{}, fmt.Errorf("%w (%q)", ranged.ErrNotANumber, text)
	} else if v, accurate := num.I128FromBigInt(val); accurate {
		return v, nil
	}
	//
	return num.I128{}, fmt.Errorf("%w (%s)", ranged.ErrUnsupportedRange, text)
}

func allSymbols(elements []SExp) bool {
	for _, e := range elements {
		if e.AsSymbol() == nil {
			return false
		}
	}
	//
	return true
}
