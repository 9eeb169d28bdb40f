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

import "github.com/consensys/go-ranged/pkg/util"

// Enumerator abstracts the process of iterating over a sequence of elements.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advanced the iterator.
	Next() T
}

// EnumeratePairs returns an enumerator over the cartesian product of two
// iterators.  For example, if lhs yields A,B and rhs yields 1,2 then this
// enumerates (A,1),(A,2),(B,1),(B,2).  Observe that rhs is cloned afresh for
// each item of lhs, hence neither iterator is consumed by construction.
func EnumeratePairs[S, T any](lhs Iterator[S], rhs Iterator[T]) Enumerator[util.Pair[S, T]] {
	return &pairEnumerator[S, T]{lhs.Clone(), rhs.Clone(), nil, false, *new(S)}
}

type pairEnumerator[S, T any] struct {
	lhs     Iterator[S]
	rhs     Iterator[T]
	current Iterator[T]
	started bool
	left    S
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *pairEnumerator[S, T]) HasNext() bool {
	if p.started && p.current.HasNext() {
		return true
	}
	// Advance left-hand side until a non-empty row is found
	for p.lhs.HasNext() {
		p.left = p.lhs.Next()
		p.current = p.rhs.Clone()
		p.started = true
		//
		if p.current.HasNext() {
			return true
		}
	}
	// Exhausted
	return false
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *pairEnumerator[S, T]) Next() util.Pair[S, T] {
	if !p.HasNext() {
		panic("enumerator exhausted")
	}
	//
	return util.NewPair(p.left, p.current.Next())
}
