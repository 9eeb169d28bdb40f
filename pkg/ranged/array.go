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
	"github.com/consensys/go-ranged/pkg/util/collection/iter"
	"github.com/shabbyrobe/go-num"
)

// Array is a fixed-length array indexed by bounded integers.  An index is
// accepted only when its range lies within [0,N-1], hence every access is
// known to be in bounds before the index value is even examined.
type Array[T any] struct {
	items []T
	index Range
}

// NewArray constructs an array of n zeroed items.  This panics if n is zero.
func NewArray[T any](n uint) *Array[T] {
	return ArrayOf(make([]T, n)...)
}

// ArrayOf constructs an array holding the given items.  This panics if there
// are no items.
func ArrayOf[T any](items ...T) *Array[T] {
	if len(items) == 0 {
		panic("empty array")
	}
	//
	index := MustRange(num.I128{}, num.I128FromRaw(0, uint64(len(items)-1)))
	//
	return &Array[T]{items, index}
}

// Len returns the number of items in this array.
func (a *Array[T]) Len() uint {
	return uint(len(a.items))
}

// Index returns the range of valid indices, i.e. [0,N-1].
func (a *Array[T]) Index() Range {
	return a.index
}

// Indices returns an iterator over all valid indices.
func (a *Array[T]) Indices() iter.Iterator[Int] {
	return Iterate(a.index)
}

// Get returns the item at a given index.  This panics with a *SpecError if the
// index's range is not within [0,N-1].
func (a *Array[T]) Get(i Int) T {
	return a.items[a.offset(i)]
}

// Set the item at a given index.  This panics with a *SpecError if the index's
// range is not within [0,N-1].
func (a *Array[T]) Set(i Int, val T) {
	a.items[a.offset(i)] = val
}

// Slice returns the items at indices within a given range.  The slice shares
// storage with this array.  This panics with a *SpecError if the range is not
// within [0,N-1].
func (a *Array[T]) Slice(r Range) []T {
	if !r.Within(a.index) {
		panic(specError("slice", ErrIndexRange, "%s not within %s", r.String(), a.index.String()))
	}
	//
	lower, upper := r.min.AsBigInt().Uint64(), r.max.AsBigInt().Uint64()
	//
	return a.items[lower : upper+1]
}

// Iter returns an iterator over the items of this array.
func (a *Array[T]) Iter() iter.Iterator[T] {
	return iter.NewArrayIterator(a.items)
}

func (a *Array[T]) offset(i Int) uint64 {
	if !i.rng.Within(a.index) {
		panic(specError("index", ErrIndexRange, "%s not within %s", i.rng.String(), a.index.String()))
	}
	//
	return i.value.AsBigInt().Uint64()
}
