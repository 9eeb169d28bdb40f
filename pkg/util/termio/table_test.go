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
package termio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Table_01(t *testing.T) {
	table := NewTablePrinter(2, 2)
	table.SetRow(0, "kind", "width")
	table.SetRow(1, "i8", "1")
	//
	assert.Equal(t, uint(2), table.Width())
	assert.Equal(t, uint(2), table.Height())
	assert.Equal(t, "i8", table.Get(0, 1))
	assert.Equal(t, " kind | width |\n   i8 |     1 |\n", render(t, table))
}

func Test_Table_Truncate(t *testing.T) {
	table := NewTablePrinter(1, 1)
	table.Set(0, 0, "abcdefgh")
	table.SetMaxWidth(0, 5)
	//
	assert.Equal(t, " abc.. |\n", render(t, table))
}

func Test_Table_Escapes(t *testing.T) {
	table := NewTablePrinter(1, 1)
	table.Set(0, 0, "x")
	table.SetEscape(0, 0, NewAnsiEscape().FgColour(TERM_RED))
	// Disabled by default
	assert.Equal(t, " x |\n", render(t, table))
	//
	table.AnsiEscapes(true)
	assert.Equal(t, "\033[31m x\033[0m |\n", render(t, table))
}

func Test_Escape_01(t *testing.T) {
	assert.Equal(t, "\033[1;32;44m", BoldAnsiEscape().FgColour(TERM_GREEN).BgColour(TERM_BLUE).Build())
}

func render(t *testing.T, table *TablePrinter) string {
	var buf bytes.Buffer
	//
	if err := table.Print(&buf); err != nil {
		t.Fatal(err)
	}
	//
	return buf.String()
}
