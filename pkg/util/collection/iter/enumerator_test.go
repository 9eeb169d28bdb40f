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
package iter

import (
	"testing"

	"github.com/consensys/go-ranged/pkg/util"
)

func Test_Pairs_0_2(t *testing.T) {
	enumerator := EnumeratePairs(NewArrayIterator([]uint{}), NewArrayIterator([]uint{0, 1}))
	checkEnumerator(t, enumerator, nil)
}

func Test_Pairs_2_0(t *testing.T) {
	enumerator := EnumeratePairs(NewArrayIterator([]uint{0, 1}), NewArrayIterator([]uint{}))
	checkEnumerator(t, enumerator, nil)
}

func Test_Pairs_1_1(t *testing.T) {
	enumerator := EnumeratePairs(NewArrayIterator([]uint{0}), NewArrayIterator([]uint{5}))
	checkEnumerator(t, enumerator, []util.Pair[uint, uint]{{Left: 0, Right: 5}})
}

func Test_Pairs_2_2(t *testing.T) {
	enumerator := EnumeratePairs(NewArrayIterator([]uint{0, 1}), NewArrayIterator([]uint{2, 3}))
	checkEnumerator(t, enumerator, []util.Pair[uint, uint]{
		{Left: 0, Right: 2}, {Left: 0, Right: 3}, {Left: 1, Right: 2}, {Left: 1, Right: 3}})
}

func Test_Pairs_3_1(t *testing.T) {
	enumerator := EnumeratePairs(NewArrayIterator([]uint{0, 1, 2}), NewArrayIterator([]uint{7}))
	checkEnumerator(t, enumerator, []util.Pair[uint, uint]{
		{Left: 0, Right: 7}, {Left: 1, Right: 7}, {Left: 2, Right: 7}})
}

func Test_Append_01(t *testing.T) {
	items := NewArrayIterator([]uint{1, 2}).Append(NewArrayIterator([]uint{3}))
	//
	if items.Count() != 3 {
		t.Errorf("expected 3 items, got %d", items.Count())
	}
	//
	checkArray(t, items.Collect(), []uint{1, 2, 3})
}

func Test_Array_Nth(t *testing.T) {
	items := NewArrayIterator([]uint{4, 5, 6, 7})
	//
	if n := items.Nth(1); n != 5 {
		t.Errorf("expected 5, got %d", n)
	}
	// Nth advances past the item returned
	checkArray(t, items.Collect(), []uint{6, 7})
}

func Test_Array_Clone(t *testing.T) {
	items := NewArrayIterator([]uint{4, 5, 6})
	items.Next()
	clone := items.Clone()
	//
	checkArray(t, items.Collect(), []uint{5, 6})
	checkArray(t, clone.Collect(), []uint{5, 6})
}

func Test_Seq_01(t *testing.T) {
	var items []uint
	//
	for v := range Seq[uint](NewArrayIterator([]uint{1, 2, 3, 4})) {
		if v == 3 {
			break
		}
		//
		items = append(items, v)
	}
	//
	checkArray(t, items, []uint{1, 2})
}

func Test_Seq2_01(t *testing.T) {
	for i, v := range Seq2[uint](NewArrayIterator([]uint{10, 11, 12})) {
		if v != 10+i {
			t.Errorf("expected %d at index %d, got %d", 10+i, i, v)
		}
	}
}

func Test_All_01(t *testing.T) {
	even := func(v uint) bool { return v%2 == 0 }
	//
	if !All[uint](NewArrayIterator([]uint{0, 2, 4}), even) {
		t.Errorf("expected all items to be even")
	}
	//
	if All[uint](NewArrayIterator([]uint{0, 1, 4}), even) {
		t.Errorf("expected some item to be odd")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkEnumerator[S, T comparable](t *testing.T, enumerator Enumerator[util.Pair[S, T]],
	expected []util.Pair[S, T]) {
	for i := 0; i < len(expected); i++ {
		if !enumerator.HasNext() {
			t.Fatalf("expected %d elements, got %d", len(expected), i)
		}
		//
		ith := enumerator.Next()
		if ith != expected[i] {
			t.Errorf("expected %v, got %v", expected[i], ith)
		}
	}
	// Sanity check lengths match
	if enumerator.HasNext() {
		t.Errorf("expected %d elements, got more", len(expected))
	}
}

func checkArray[T comparable](t *testing.T, actual []T, expected []T) {
	if len(actual) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
	// Check each item in turn
	for i := 0; i < len(actual); i++ {
		if actual[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, actual)
		}
	}
}
