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
	"github.com/shabbyrobe/go-num"
	"golang.org/x/exp/constraints"
)

// Cmp returns < 0 if x is less than y, 0 if they are equal, or > 0 if x is
// greater than y.  The ranges of x and y are irrelevant.
func (x Int) Cmp(y Int) int {
	return x.value.Cmp(y.value)
}

// CmpI128 compares x against a raw 128-bit integer.
func (x Int) CmpI128(v num.I128) int {
	return x.value.Cmp(v)
}

// Eq checks whether x == y.
func (x Int) Eq(y Int) bool {
	return x.Cmp(y) == 0
}

// Ne checks whether x != y.
func (x Int) Ne(y Int) bool {
	return x.Cmp(y) != 0
}

// Lt checks whether x < y.
func (x Int) Lt(y Int) bool {
	return x.Cmp(y) < 0
}

// Le checks whether x <= y.
func (x Int) Le(y Int) bool {
	return x.Cmp(y) <= 0
}

// Gt checks whether x > y.
func (x Int) Gt(y Int) bool {
	return x.Cmp(y) > 0
}

// Ge checks whether x >= y.
func (x Int) Ge(y Int) bool {
	return x.Cmp(y) >= 0
}

// Compare a bounded integer against a native integer, returning < 0, 0 or > 0
// as for Cmp.
func Compare[T constraints.Integer](x Int, v T) int {
	return x.value.Cmp(nativeToI128(v))
}

// Equals checks whether a bounded integer equals a native integer.
func Equals[T constraints.Integer](x Int, v T) bool {
	return Compare(x, v) == 0
}

func nativeToI128[T constraints.Integer](v T) num.I128 {
	if v < 0 {
		return num.I128From64(int64(v))
	}
	//
	return num.I128FromRaw(0, uint64(v))
}
