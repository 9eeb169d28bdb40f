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
	"math/big"

	"github.com/consensys/go-ranged/pkg/util/collection/iter"
	"github.com/shabbyrobe/go-num"
)

// Iterate returns an iterator over every value of a given range, in ascending
// order from MIN to MAX.  Each value is tagged with the range itself.
func Iterate(r Range) iter.Iterator[Int] {
	return &rangeIterator{r, r.min, false}
}

// All returns every value of a given range in ascending order, as a sequence
// suitable for use in a for loop.
func All(r Range) func(yield func(Int) bool) {
	return iter.Seq[Int](Iterate(r))
}

// IterUp returns an iterator over the values from x up to (and including) MAX,
// each tagged with the range of x.
func (x Int) IterUp() iter.Iterator[Int] {
	return &rangeIterator{x.rng, x.value, false}
}

// rangeIterator enumerates consecutive values of a range.
type rangeIterator struct {
	rng  Range
	next num.I128
	done bool
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *rangeIterator) HasNext() bool {
	return !p.done
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *rangeIterator) Next() Int {
	if p.done {
		panic("iterator exhausted")
	}
	//
	item := Int{p.rng, p.next}
	// Stop at the upper bound, rather than stepping beyond it.
	if p.next == p.rng.max {
		p.done = true
	} else {
		p.next = p.next.Add(one)
	}
	//
	return item
}

// Append another iterator onto the end of this iterator.
//
//nolint:revive
func (p *rangeIterator) Append(other iter.Iterator[Int]) iter.Iterator[Int] {
	return iter.NewAppendIterator(p, other)
}

// Clone creates a copy of this iterator at the given cursor position.
//
//nolint:revive
func (p *rangeIterator) Clone() iter.Iterator[Int] {
	return &rangeIterator{p.rng, p.next, p.done}
}

// Collect allocates a new array containing all remaining items of this
// iterator.  This drains the iterator.
//
//nolint:revive
func (p *rangeIterator) Collect() []Int {
	return iter.Collect[Int](p)
}

// Count returns the number of items left in the iterator.  This panics if the
// count does not fit in a uint.
//
//nolint:revive
func (p *rangeIterator) Count() uint {
	if p.done {
		return 0
	}
	//
	count := new(big.Int).Sub(p.rng.max.AsBigInt(), p.next.AsBigInt())
	count.Add(count, big.NewInt(1))
	//
	if !count.IsUint64() || count.Uint64() > uint64(^uint(0)) {
		panic("iterator count overflow")
	}
	//
	return uint(count.Uint64())
}

// Find returns the index of the first match for a given predicate, or
// return false if no match is found.
//
//nolint:revive
func (p *rangeIterator) Find(predicate iter.Predicate[Int]) (uint, bool) {
	return iter.Find[Int](p, predicate)
}

// Nth skips n items and returns the following one.
//
//nolint:revive
func (p *rangeIterator) Nth(n uint) Int {
	if n >= p.Count() {
		panic("iterator out-of-bounds")
	}
	//
	p.next = p.next.Add(num.I128FromRaw(0, uint64(n)))
	//
	return p.Next()
}
