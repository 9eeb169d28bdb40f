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

	"github.com/consensys/go-ranged/pkg/layout"
	"github.com/consensys/go-ranged/pkg/util"
	"github.com/shabbyrobe/go-num"
)

// Int is a bounded integer: a value tagged with an inclusive range it is
// guaranteed to lie within.  Every operation on an Int derives the range of its
// result from the ranges of its operands, such that the result is always
// contained.  Ints are immutable and may be freely copied.
type Int struct {
	rng   Range
	value num.I128
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ util.Comparable[Int] = Int{}

// New constructs a bounded integer with the given range and value, or returns
// None if the value lies outside the range.
func New(r Range, val num.I128) util.Option[Int] {
	if !r.Contains(val) {
		return util.None[Int]()
	}
	//
	return util.Some(Int{r, val})
}

// New64 constructs a bounded integer from int64 bounds and value, or returns
// None if the value lies outside the range.  This panics if the range itself
// is invalid.
func New64(min int64, max int64, val int64) util.Option[Int] {
	return New(Range64(min, max), num.I128From64(val))
}

// CreateConst constructs a bounded integer from a value which is known to lie
// within the given range.  Should that not be the case, this panics with a
// *SpecError since it indicates an error in how the constant was declared.
func CreateConst(r Range, val num.I128) Int {
	if !r.Contains(val) {
		panic(specError("const", ErrInvariantViolated, "%s not in %s", val.String(), r.String()))
	}
	//
	return Int{r, val}
}

// Const64 is a convenience wrapper around CreateConst for int64 bounds.
func Const64(min int64, max int64, val int64) Int {
	return CreateConst(Range64(min, max), num.I128From64(val))
}

// Constant constructs a bounded integer whose range holds exactly one value.
// Such values require no storage.
func Constant(val int64) Int {
	return ConstantOf(num.I128From64(val))
}

// ConstantOf constructs a bounded integer whose range holds exactly the given
// value.
func ConstantOf(val num.I128) Int {
	return Int{MustRange(val, val), val}
}

// Decode a bounded integer of the given range from its byte encoding (see
// Bytes).  Since the bytes may come from anywhere, an error is returned if
// they are the wrong length or decode to a value outside the range.  Observe
// that a constant range has an empty encoding.
func Decode(r Range, bytes []byte) (Int, error) {
	kind := r.Layout()
	//
	if uint(len(bytes)) != kind.Width() {
		return Int{}, fmt.Errorf("%w (expected %d bytes for %s, got %d)", ErrCorruptEncoding, kind.Width(),
			r.String(), len(bytes))
	} else if kind == layout.Trivial {
		return Int{r, r.min}, nil
	}
	//
	val := layout.Decode(kind, bytes)
	//
	if !r.Contains(val) {
		return Int{}, fmt.Errorf("%w (%s not in %s)", ErrCorruptEncoding, val.String(), r.String())
	}
	//
	return Int{r, val}, nil
}

// Value returns the underlying value.
func (x Int) Value() num.I128 {
	return x.value
}

// Int64 returns the underlying value as an int64.  This panics with a
// *SpecError if the range (not just the value) does not fit an int64.
func (x Int) Int64() int64 {
	val, err := ToNative[int64](x)
	//
	if err != nil {
		panic(err)
	}
	//
	return val
}

// Range returns the range this value is tagged with.
func (x Int) Range() Range {
	return x.rng
}

// Layout returns the physical representation selected for this value's range.
func (x Int) Layout() layout.Kind {
	return x.rng.kind
}

// Bytes returns the little-endian encoding of this value according to its
// layout.  Values with constant ranges encode as zero bytes.
func (x Int) Bytes() []byte {
	return layout.Encode(x.rng.kind, x.value)
}

func (x Int) String() string {
	return x.value.String()
}

// GoString returns a representation including the range, as used by the %#v
// verb.
func (x Int) GoString() string {
	return fmt.Sprintf("ranged.Int%s(%s)", x.rng.String(), x.value.String())
}
