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
package util

import "fmt"

// Option provides a simple way of representing a value which may be absent.
// This is used, amongst other things, to signal that a value does not lie
// within some required range without resorting to errors.
type Option[T any] struct {
	// Indicates whether or not a value is present
	some bool
	// The value itself
	value T
}

// Some constructs an option which holds a value.
func Some[T any](val T) Option[T] {
	return Option[T]{true, val}
}

// None constructs an option which doesn't hold a value.
func None[T any]() Option[T] {
	var empty T
	return Option[T]{false, empty}
}

// HasValue indicates whether or not this option contains an actual value, or
// whether it is empty.
func (o Option[T]) HasValue() bool {
	return o.some
}

// IsEmpty indicates whether or not this option is empty (i.e. contains no value).
func (o Option[T]) IsEmpty() bool {
	return !o.some
}

// Unwrap returns the value contained, or panics if this option is empty.
func (o Option[T]) Unwrap() T {
	if o.some {
		return o.value
	}
	//
	panic("cannot unwrap an empty option")
}

// UnwrapOr returns the value contained, or the given default if this option is
// empty.
func (o Option[T]) UnwrapOr(dflt T) T {
	if o.some {
		return o.value
	}
	//
	return dflt
}

// Get returns the value contained (if any) along with a flag indicating
// whether it was present.  This follows the usual "comma ok" idiom.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", any(o.value))
	}
	//
	return "None"
}

// MapOption applies a given function to the contents of an option (if any).
func MapOption[S, T any](o Option[S], fn func(S) T) Option[T] {
	if o.some {
		return Some(fn(o.value))
	}
	//
	return None[T]()
}
