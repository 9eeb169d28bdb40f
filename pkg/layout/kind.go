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
	"fmt"
	"math"

	"github.com/shabbyrobe/go-num"
)

// Kind identifies the physical representation chosen for a given range of
// integer values.  Kinds are ordered by byte width, with Trivial (zero bytes)
// representing ranges which contain exactly one value.
type Kind uint8

const (
	// Trivial is the zero-size representation for ranges of the form [v,v].
	Trivial Kind = iota
	// I8 is a signed 8-bit representation.
	I8
	// U8 is an unsigned 8-bit representation.
	U8
	// I16 is a signed 16-bit representation.
	I16
	// U16 is an unsigned 16-bit representation.
	U16
	// I32 is a signed 32-bit representation.
	I32
	// U32 is an unsigned 32-bit representation.
	U32
	// I64 is a signed 64-bit representation.
	I64
	// U64 is an unsigned 64-bit representation.
	U64
)

// LADDER determines the order in which native kinds are considered when
// selecting a layout.  Signed kinds precede unsigned kinds of the same width,
// hence a range which fits both is given the signed kind.
var LADDER = []Kind{I8, U8, I16, U16, I32, U32, I64, U64}

// Native bounds for each kind, indexed by kind.
var (
	nativeMin [9]num.I128
	nativeMax [9]num.I128
)

func init() {
	nativeMin[I8], nativeMax[I8] = num.I128From64(math.MinInt8), num.I128From64(math.MaxInt8)
	nativeMin[U8], nativeMax[U8] = num.I128From64(0), num.I128From64(math.MaxUint8)
	nativeMin[I16], nativeMax[I16] = num.I128From64(math.MinInt16), num.I128From64(math.MaxInt16)
	nativeMin[U16], nativeMax[U16] = num.I128From64(0), num.I128From64(math.MaxUint16)
	nativeMin[I32], nativeMax[I32] = num.I128From64(math.MinInt32), num.I128From64(math.MaxInt32)
	nativeMin[U32], nativeMax[U32] = num.I128From64(0), num.I128From64(math.MaxUint32)
	nativeMin[I64], nativeMax[I64] = num.I128From64(math.MinInt64), num.I128From64(math.MaxInt64)
	nativeMin[U64], nativeMax[U64] = num.I128From64(0), num.I128FromRaw(0, math.MaxUint64)
}

// Width returns the number of bytes occupied by this kind.
func (k Kind) Width() uint {
	switch k {
	case Trivial:
		return 0
	case I8, U8:
		return 1
	case I16, U16:
		return 2
	case I32, U32:
		return 4
	case I64, U64:
		return 8
	}
	//
	panic(fmt.Sprintf("unknown layout kind (%d)", k))
}

// Signed indicates whether or not this kind uses a two's complement signed
// representation.  The trivial kind is not considered signed.
func (k Kind) Signed() bool {
	return k == I8 || k == I16 || k == I32 || k == I64
}

// Bounds returns the smallest and largest values representable by this kind.
// Note: this will panic for the trivial kind, since its single value is
// determined by the range it represents rather than the kind itself.
func (k Kind) Bounds() (num.I128, num.I128) {
	if k == Trivial || k > U64 {
		panic(fmt.Sprintf("kind %s has no native bounds", k.String()))
	}
	//
	return nativeMin[k], nativeMax[k]
}

// Contains checks whether a given value is representable by this kind.
func (k Kind) Contains(val num.I128) bool {
	lo, hi := k.Bounds()
	//
	return lo.Cmp(val) <= 0 && val.Cmp(hi) <= 0
}

// Fits checks whether every value in the range [lower,upper] is representable
// by this kind.
func (k Kind) Fits(lower num.I128, upper num.I128) bool {
	return k.Contains(lower) && k.Contains(upper)
}

func (k Kind) String() string {
	switch k {
	case Trivial:
		return "trivial"
	case I8:
		return "i8"
	case U8:
		return "u8"
	case I16:
		return "i16"
	case U16:
		return "u16"
	case I32:
		return "i32"
	case U32:
		return "u32"
	case I64:
		return "i64"
	case U64:
		return "u64"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}
