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
	"testing"

	"github.com/consensys/go-ranged/pkg/layout"
	"github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New_01(t *testing.T) {
	x := New64(1, 6, 5)
	//
	require.True(t, x.HasValue())
	assert.Equal(t, int64(5), x.Unwrap().Int64())
	assert.Equal(t, Range64(1, 6), x.Unwrap().Range())
	assert.Equal(t, num.I128From64(1), x.Unwrap().Range().Min())
	assert.Equal(t, num.I128From64(6), x.Unwrap().Range().Max())
}

func Test_New_02(t *testing.T) {
	assert.True(t, New64(1, 6, 0).IsEmpty())
	assert.True(t, New64(1, 6, 7).IsEmpty())
	assert.True(t, New64(-6, -1, 0).IsEmpty())
}

func Test_New_Exhaustive(t *testing.T) {
	for lo := int64(-4); lo <= 4; lo++ {
		for hi := lo; hi <= 4; hi++ {
			for v := int64(-6); v <= 6; v++ {
				assert.Equal(t, lo <= v && v <= hi, New64(lo, hi, v).HasValue())
			}
		}
	}
}

func Test_CreateConst_01(t *testing.T) {
	x := Const64(0, 10, 10)
	assert.Equal(t, "10", x.String())
	//
	checkSpecPanic(t, ErrInvariantViolated, func() { Const64(0, 10, 11) })
}

func Test_Constant_01(t *testing.T) {
	x := Constant(42)
	//
	assert.Equal(t, layout.Trivial, x.Layout())
	assert.Empty(t, x.Bytes())
	assert.True(t, x.Range().IsConstant())
}

func Test_Bytes_01(t *testing.T) {
	assert.Equal(t, []byte{0xff, 0xff}, Const64(-1, 200, -1).Bytes())
	assert.Equal(t, []byte{200}, Const64(0, 200, 200).Bytes())
	assert.Equal(t, []byte{0x2c, 0x01, 0x00, 0x00}, Const64(0, 70000, 300).Bytes())
}

func Test_Decode_01(t *testing.T) {
	r := Range64(-1, 200)
	//
	for v := int64(-1); v <= 200; v++ {
		x := Const64(-1, 200, v)
		y, err := Decode(r, x.Bytes())
		//
		require.NoError(t, err)
		assert.True(t, x.Eq(y))
		assert.Equal(t, r, y.Range())
	}
}

func Test_Decode_Trivial(t *testing.T) {
	x, err := Decode(Range64(42, 42), nil)
	//
	require.NoError(t, err)
	assert.Equal(t, int64(42), x.Int64())
}

func Test_Decode_Corrupt(t *testing.T) {
	// 300 fits an i16, but not the range
	_, err := Decode(Range64(-1, 200), []byte{0x2c, 0x01})
	assert.ErrorIs(t, err, ErrCorruptEncoding)
	// Wrong length
	_, err = Decode(Range64(-1, 200), []byte{0x01})
	assert.ErrorIs(t, err, ErrCorruptEncoding)
	//
	_, err = Decode(Range64(42, 42), []byte{42})
	assert.ErrorIs(t, err, ErrCorruptEncoding)
}

func Test_Int_Format(t *testing.T) {
	x := Const64(-3, 7, 2)
	//
	assert.Equal(t, "2", fmt.Sprintf("%v", x))
	assert.Equal(t, "ranged.Int(-3..7)(2)", fmt.Sprintf("%#v", x))
}

func Test_Int64_Panic(t *testing.T) {
	x := FromNative(uint64(1))
	//
	checkSpecPanic(t, ErrNativeRange, func() { x.Int64() })
}
