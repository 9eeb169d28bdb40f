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
	"strings"

	"github.com/shabbyrobe/go-num"
)

// Parse a bounded integer of the given range from its decimal representation
// (with optional sign).  Surrounding whitespace is ignored.  The returned error
// is a *ParseError whose cause is either ErrNotANumber or ErrOutOfRange.
func Parse(r Range, text string) (Int, error) {
	val, ok := new(big.Int).SetString(strings.TrimSpace(text), 10)
	//
	if !ok {
		return Int{}, &ParseError{text, r, ErrNotANumber}
	}
	// Numbers beyond 128 bits cannot lie within any range.
	v, accurate := num.I128FromBigInt(val)
	//
	if !accurate || !r.Contains(v) {
		return Int{}, &ParseError{text, r, ErrOutOfRange}
	}
	//
	return Int{r, v}, nil
}
