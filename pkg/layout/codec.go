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
	"encoding/binary"
	"fmt"

	"github.com/shabbyrobe/go-num"
)

// Encode a given value into the byte pattern of a given kind.  Bytes are
// arranged in little endian order using two's complement for signed kinds.  The
// Trivial kind encodes into zero bytes, since its value is implied by its range.
// Note: this will panic if the value is not representable by the kind.
func Encode(kind Kind, val num.I128) []byte {
	if kind == Trivial {
		return []byte{}
	} else if !kind.Contains(val) {
		panic(fmt.Sprintf("value %s not representable as %s", val.String(), kind.String()))
	}
	//
	var (
		buf  [8]byte
		word = toWord(val)
	)
	//
	binary.LittleEndian.PutUint64(buf[:], word)
	// Truncate to width
	return buf[:kind.Width()]
}

// Decode a given byte pattern of a given kind back into its value.  Signed
// kinds are sign extended, whilst unsigned kinds are zero extended.  Decoding
// the Trivial kind is not permitted, since the value of a trivial range is
// known from the range itself.  Note: this will panic if the number of bytes
// does not match the width of the kind.
func Decode(kind Kind, bytes []byte) num.I128 {
	if kind == Trivial {
		panic("cannot decode trivial layout")
	} else if uint(len(bytes)) != kind.Width() {
		panic(fmt.Sprintf("invalid encoding for %s (%d bytes)", kind.String(), len(bytes)))
	}
	//
	var (
		buf   [8]byte
		shift = 64 - (8 * kind.Width())
	)
	// Zero extend into a full word
	copy(buf[:], bytes)
	//
	word := binary.LittleEndian.Uint64(buf[:])
	//
	if kind.Signed() {
		// Sign extend
		return num.I128From64(int64(word<<shift) >> shift)
	}
	//
	return num.I128FromRaw(0, word)
}

// Convert a value into its low 64 bits (in two's complement).  This is only
// meaningful for values in the range -2^63 .. 2^64-1, which covers every kind.
func toWord(val num.I128) uint64 {
	b := val.AsBigInt()
	//
	if b.Sign() < 0 {
		return uint64(b.Int64())
	}
	//
	return b.Uint64()
}
