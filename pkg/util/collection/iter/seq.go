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

// Seq adapts an enumerator into a range-over-func sequence, such that it can
// be used directly in a for loop:
//
//	for v := range iter.Seq(items) { ... }
//
// This drains the enumerator.
func Seq[T any](items Enumerator[T]) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for items.HasNext() {
			if !yield(items.Next()) {
				return
			}
		}
	}
}

// Seq2 is similar to Seq, except that each item is paired with its index in
// the sequence.
func Seq2[T any](items Enumerator[T]) func(yield func(uint, T) bool) {
	return func(yield func(uint, T) bool) {
		for index := uint(0); items.HasNext(); index++ {
			if !yield(index, items.Next()) {
				return
			}
		}
	}
}
