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
	"errors"
	"math"
	"testing"

	"github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Select_01(t *testing.T) {
	checkSelect(t, 42, 42, Trivial)
	checkSelect(t, -1, 127, I8)
	checkSelect(t, 0, 200, U8)
	checkSelect(t, -1, 200, I16)
	checkSelect(t, 0, 90000, I32)
}

func Test_Select_02(t *testing.T) {
	// Signed kinds win ties
	checkSelect(t, 0, 10, I8)
	checkSelect(t, 0, 127, I8)
	checkSelect(t, 0, 128, U8)
	checkSelect(t, 127, 255, U8)
	checkSelect(t, -128, -127, I8)
	checkSelect(t, -128, 128, I16)
	checkSelect(t, 0, 32767, I16)
	checkSelect(t, 0, 32768, U16)
	checkSelect(t, 0, 65535, U16)
	checkSelect(t, -32768, 32768, I32)
	checkSelect(t, 0, 65536, I32)
	checkSelect(t, 0, math.MaxUint32, U32)
	checkSelect(t, -1, math.MaxUint32, I64)
	checkSelect(t, math.MinInt32-1, math.MaxInt32, I64)
	checkSelect(t, math.MinInt64, math.MaxInt64, I64)
}

func Test_Select_03(t *testing.T) {
	kind, err := Select(num.I128From64(0), num.I128FromRaw(0, math.MaxUint64))
	require.NoError(t, err)
	assert.Equal(t, U64, kind)
	// One beyond u64
	_, err = Select(num.I128From64(0), num.I128FromRaw(1, 0))
	assert.True(t, errors.Is(err, ErrUnsupportedRange))
	// One below i64
	_, err = Select(num.I128From64(math.MinInt64).Sub(num.I128From64(1)), num.I128From64(0))
	assert.True(t, errors.Is(err, ErrUnsupportedRange))
	// Negative and beyond i64
	_, err = Select(num.I128From64(-1), num.I128FromRaw(0, math.MaxUint64))
	assert.True(t, errors.Is(err, ErrUnsupportedRange))
}

func Test_Select_04(t *testing.T) {
	_, err := Select64(1, 0)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

// Widening a range never yields a narrower layout.
func Test_Select_Monotone(t *testing.T) {
	points := []int64{
		math.MinInt64, math.MinInt32 - 1, math.MinInt32, math.MinInt16 - 1, math.MinInt16, math.MinInt8 - 1,
		math.MinInt8, -1, 0, 1, math.MaxInt8, math.MaxInt8 + 1, math.MaxUint8, math.MaxUint8 + 1,
		math.MaxInt16, math.MaxInt16 + 1, math.MaxUint16, math.MaxUint16 + 1, math.MaxInt32, math.MaxInt32 + 1,
		math.MaxUint32, math.MaxUint32 + 1, math.MaxInt64,
	}
	//
	for _, a := range points {
		for _, b := range points {
			if a > b {
				continue
			}
			//
			inner, err := Select64(a, b)
			require.NoError(t, err)
			// Widen in every direction
			for _, c := range points {
				for _, d := range points {
					if c > a || d < b {
						continue
					}
					//
					outer, err := Select64(c, d)
					require.NoError(t, err)
					assert.LessOrEqual(t, inner.Width(), outer.Width(), "[%d,%d] within [%d,%d]", a, b, c, d)
				}
			}
		}
	}
}

func Test_Width(t *testing.T) {
	widths := []uint{0, 1, 1, 2, 2, 4, 4, 8, 8}
	//
	for i, w := range widths {
		assert.Equal(t, w, Kind(i).Width(), Kind(i).String())
	}
}

func Test_KindOf(t *testing.T) {
	type myByte uint8

	type myShort int16

	assert.Equal(t, I8, KindOf[int8]())
	assert.Equal(t, U8, KindOf[uint8]())
	assert.Equal(t, I16, KindOf[int16]())
	assert.Equal(t, U16, KindOf[uint16]())
	assert.Equal(t, I32, KindOf[int32]())
	assert.Equal(t, U32, KindOf[uint32]())
	assert.Equal(t, I64, KindOf[int64]())
	assert.Equal(t, U64, KindOf[uint64]())
	assert.Equal(t, U8, KindOf[myByte]())
	assert.Equal(t, I16, KindOf[myShort]())
	assert.True(t, KindOf[int]().Signed())
	assert.False(t, KindOf[uint]().Signed())
}

func Test_Codec_Boundaries(t *testing.T) {
	for _, kind := range LADDER {
		lo, hi := kind.Bounds()
		//
		checkRoundTrip(t, kind, lo)
		checkRoundTrip(t, kind, hi)
		checkRoundTrip(t, kind, lo.Add(num.I128From64(1)))
		checkRoundTrip(t, kind, hi.Sub(num.I128From64(1)))
		//
		if kind.Contains(num.I128From64(0)) {
			checkRoundTrip(t, kind, num.I128From64(0))
		}
	}
}

func Test_Codec_Exhaustive(t *testing.T) {
	for i := int64(math.MinInt8); i <= math.MaxInt8; i++ {
		checkRoundTrip(t, I8, num.I128From64(i))
	}
	//
	for i := int64(0); i <= math.MaxUint8; i++ {
		checkRoundTrip(t, U8, num.I128From64(i))
	}
	//
	for i := int64(math.MinInt16); i <= math.MaxInt16; i += 7 {
		checkRoundTrip(t, I16, num.I128From64(i))
	}
}

func Test_Codec_Layout(t *testing.T) {
	assert.Equal(t, []byte{}, Encode(Trivial, num.I128From64(42)))
	assert.Equal(t, []byte{0xff}, Encode(I8, num.I128From64(-1)))
	assert.Equal(t, []byte{0xc8}, Encode(U8, num.I128From64(200)))
	assert.Equal(t, []byte{0x34, 0x12}, Encode(U16, num.I128From64(0x1234)))
	assert.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff}, Encode(I32, num.I128From64(-2)))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		Encode(U64, num.I128FromRaw(0, math.MaxUint64)))
}

func Test_Codec_Invalid(t *testing.T) {
	assert.Panics(t, func() { Encode(U8, num.I128From64(-1)) })
	assert.Panics(t, func() { Encode(I8, num.I128From64(128)) })
	assert.Panics(t, func() { Decode(Trivial, []byte{}) })
	assert.Panics(t, func() { Decode(I16, []byte{0x1}) })
}

func checkSelect(t *testing.T, lower int64, upper int64, expected Kind) {
	t.Helper()
	//
	kind, err := Select64(lower, upper)
	require.NoError(t, err)
	assert.Equal(t, expected, kind, "select(%d,%d)", lower, upper)
}

func checkRoundTrip(t *testing.T, kind Kind, val num.I128) {
	t.Helper()
	//
	bytes := Encode(kind, val)
	require.Equal(t, int(kind.Width()), len(bytes))
	//
	if actual := Decode(kind, bytes); actual.Cmp(val) != 0 {
		t.Errorf("%s: decode(encode(%s)) == %s", kind.String(), val.String(), actual.String())
	}
}
