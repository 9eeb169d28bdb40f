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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Iterate_01(t *testing.T) {
	items := Iterate(Range64(-2, 2))
	//
	assert.Equal(t, uint(5), items.Count())
	assert.Equal(t, []int64{-2, -1, 0, 1, 2}, values(items.Collect()))
	assert.False(t, items.HasNext())
	assert.Equal(t, uint(0), items.Count())
}

func Test_Iterate_Trivial(t *testing.T) {
	items := Iterate(Range64(7, 7)).Collect()
	//
	assert.Equal(t, []int64{7}, values(items))
	assert.Equal(t, Range64(7, 7), items[0].Range())
}

func Test_Iterate_Upper(t *testing.T) {
	// Iteration must stop at the largest u64 without stepping beyond it.
	x := FromNative(^uint64(0) - 1)
	//
	assert.Equal(t, uint(2), x.IterUp().Count())
	assert.Len(t, x.IterUp().Collect(), 2)
}

func Test_IterUp_01(t *testing.T) {
	items := Const64(0, 5, 3).IterUp().Collect()
	//
	assert.Equal(t, []int64{3, 4, 5}, values(items))
	//
	for _, item := range items {
		assert.Equal(t, Range64(0, 5), item.Range())
	}
}

func Test_Iterate_Nth(t *testing.T) {
	items := Iterate(Range64(10, 20))
	//
	assert.Equal(t, int64(13), items.Nth(3).Int64())
	assert.Equal(t, int64(14), items.Next().Int64())
	//
	index, ok := items.Find(func(x Int) bool { return Equals(x, 18) })
	assert.True(t, ok)
	assert.Equal(t, uint(3), index)
}

func Test_Iterate_Clone(t *testing.T) {
	items := Iterate(Range64(0, 3))
	items.Next()
	clone := items.Clone()
	//
	assert.Equal(t, []int64{1, 2, 3}, values(items.Collect()))
	assert.Equal(t, []int64{1, 2, 3}, values(clone.Collect()))
}

func Test_Iterate_Append(t *testing.T) {
	items := Iterate(Range64(0, 1)).Append(Iterate(Range64(5, 6)))
	//
	assert.Equal(t, []int64{0, 1, 5, 6}, values(items.Collect()))
}

func Test_All_01(t *testing.T) {
	var sum int64
	//
	for x := range All(Range64(1, 100)) {
		if x.Int64() > 10 {
			break
		}
		//
		sum += x.Int64()
	}
	//
	assert.Equal(t, int64(55), sum)
}

func values(items []Int) []int64 {
	vals := make([]int64, len(items))
	//
	for i, item := range items {
		vals[i] = item.Int64()
	}
	//
	return vals
}
