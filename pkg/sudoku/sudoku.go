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
package sudoku

import (
	"errors"
	"fmt"
	"strings"

	"github.com/consensys/go-ranged/pkg/ranged"
	"github.com/consensys/go-ranged/pkg/util"
	"github.com/consensys/go-ranged/pkg/util/collection/iter"
)

// SIZE is the number of cells in a row, column or box.
const SIZE = 9

// VALUE is the range of a cell, where 0 indicates an empty cell.
var VALUE = ranged.Range64(0, SIZE)

// DIGIT is the range of a filled cell.
var DIGIT = ranged.Range64(1, SIZE)

// INDEX is the range of a row or column index.
var INDEX = ranged.Range64(0, SIZE-1)

// POSITION is the range of a cell position, numbered column by column.
var POSITION = ranged.Range64(0, SIZE*SIZE-1)

// Coordinates of each position, and the indices of the box containing each
// row (or column) index.  These are computed once using bounded arithmetic,
// which guarantees every coordinate is a valid INDEX without any runtime
// check.
var (
	coords = ranged.NewArray[util.Pair[ranged.Int, ranged.Int]](SIZE * SIZE)
	boxes  = ranged.NewArray[[]ranged.Int](SIZE)
)

func init() {
	nine, three := ranged.Constant(SIZE), ranged.Constant(3)
	//
	for p := range ranged.All(POSITION) {
		coords.Set(p, util.NewPair(p.Rem(nine), p.Div(nine)))
	}
	//
	for x := range ranged.All(INDEX) {
		base := x.Div(three).Mul(three)
		//
		for i := range ranged.All(ranged.Range64(0, 2)) {
			boxes.Set(x, append(boxes.Get(x), base.Add(i)))
		}
	}
}

// Grid is a 9x9 sudoku grid, indexed by row then column.
type Grid struct {
	rows *ranged.Array[*ranged.Array[ranged.Int]]
}

// NewGrid constructs a grid from the given cell values, where 0 indicates an
// empty cell.  An error is returned if any value is not in 0..9.
func NewGrid(cells [SIZE][SIZE]int) (*Grid, error) {
	rows := ranged.NewArray[*ranged.Array[ranged.Int]](SIZE)
	//
	for x := range ranged.All(INDEX) {
		row := ranged.NewArray[ranged.Int](SIZE)
		//
		for y := range ranged.All(INDEX) {
			v := cells[x.Int64()][y.Int64()]
			//
			cell, ok := ranged.New64(0, SIZE, int64(v)).Get()
			if !ok {
				return nil, fmt.Errorf("invalid cell value %d at (%d,%d)", v, x.Int64(), y.Int64())
			}
			//
			row.Set(y, cell)
		}
		//
		rows.Set(x, row)
	}
	//
	return &Grid{rows}, nil
}

// Parse a grid from its textual form, consisting of 81 cells given row by row
// where each cell is a digit and '.' or '0' indicate an empty cell.
// Whitespace and the separators '|', '-' and '+' are ignored.
func Parse(text string) (*Grid, error) {
	var (
		cells [SIZE][SIZE]int
		n     = 0
	)
	//
	for _, c := range text {
		switch {
		case strings.ContainsRune(" \t\r\n|-+", c):
			continue
		case n >= SIZE*SIZE:
			return nil, errors.New("too many cells")
		case c == '.':
			n++
		case c >= '0' && c <= '9':
			cells[n/SIZE][n%SIZE] = int(c - '0')
			n++
		default:
			return nil, fmt.Errorf("unexpected character %q", c)
		}
	}
	//
	if n != SIZE*SIZE {
		return nil, fmt.Errorf("expected %d cells, got %d", SIZE*SIZE, n)
	}
	//
	return NewGrid(cells)
}

// Puzzle returns a sample puzzle.
func Puzzle() *Grid {
	grid, err := NewGrid([SIZE][SIZE]int{
		{8, 5, 0, 0, 0, 2, 4, 0, 0},
		{7, 2, 0, 0, 0, 0, 0, 0, 9},
		{0, 0, 4, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 7, 0, 0, 2},
		{3, 0, 5, 0, 0, 0, 9, 0, 0},
		{0, 4, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 8, 0, 0, 7, 0},
		{0, 1, 7, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 3, 6, 0, 4, 0},
	})
	//
	if err != nil {
		panic(err)
	}
	//
	return grid
}

// Get the value of the cell at a given row and column.
func (g *Grid) Get(x ranged.Int, y ranged.Int) ranged.Int {
	return g.rows.Get(x).Get(y)
}

// Set the value of the cell at a given row and column.
func (g *Grid) Set(x ranged.Int, y ranged.Int, val ranged.Int) {
	g.rows.Get(x).Set(y, val.Expand(VALUE))
}

// IsValid determines whether a given value can be placed at a given row and
// column, without conflicting with the same value elsewhere in that row,
// column or box.
func (g *Grid) IsValid(val ranged.Int, x ranged.Int, y ranged.Int) bool {
	for i := range ranged.All(INDEX) {
		if g.Get(x, i).Eq(val) || g.Get(i, y).Eq(val) {
			return false
		}
	}
	//
	for _, i := range boxes.Get(x) {
		for _, j := range boxes.Get(y) {
			if g.Get(i, j).Eq(val) {
				return false
			}
		}
	}
	//
	return true
}

// IsSolved determines whether every cell is filled without conflict.
func (g *Grid) IsSolved() bool {
	return iter.All[ranged.Int](ranged.Iterate(POSITION), func(p ranged.Int) bool {
		var (
			xy  = coords.Get(p)
			val = g.Get(xy.Left, xy.Right)
		)
		// Temporarily clear the cell, so it does not conflict with itself.
		g.Set(xy.Left, xy.Right, ranged.Constant(0))
		valid := !val.Eq(ranged.Constant(0)) && g.IsValid(val, xy.Left, xy.Right)
		g.Set(xy.Left, xy.Right, val)
		//
		return valid
	})
}

// Solve this grid by backtracking search, filling empty cells in place.  This
// returns false (leaving the grid unchanged) if no solution exists.
func (g *Grid) Solve() bool {
	return g.place(ranged.Const64(0, SIZE*SIZE-1, 0))
}

func (g *Grid) place(pos ranged.Int) bool {
	// Find the first empty cell at or after pos
	candidates := pos.IterUp()
	index, found := candidates.Clone().Find(func(p ranged.Int) bool {
		xy := coords.Get(p)
		return g.Get(xy.Left, xy.Right).Eq(ranged.Constant(0))
	})
	//
	if !found {
		return true
	}
	//
	xy := coords.Get(candidates.Nth(index))
	//
	for n := range ranged.All(DIGIT) {
		if !g.IsValid(n, xy.Left, xy.Right) {
			continue
		}
		//
		g.Set(xy.Left, xy.Right, n)
		//
		next, ok := pos.Add(ranged.Constant(1)).Fit(POSITION).Get()
		if !ok || g.place(next) {
			return true
		}
		//
		g.Set(xy.Left, xy.Right, ranged.Constant(0))
	}
	//
	return false
}

// String renders this grid with separators between boxes.
func (g *Grid) String() string {
	var (
		builder strings.Builder
		sep     = "------+-------+------\n"
	)
	//
	builder.WriteString(sep)
	//
	for x := range ranged.All(INDEX) {
		for y := range ranged.All(INDEX) {
			if y.Int64() != 0 {
				builder.WriteString(" ")
			}
			//
			builder.WriteString(g.Get(x, y).String())
			//
			if y.Int64() == 2 || y.Int64() == 5 {
				builder.WriteString(" |")
			}
		}
		//
		builder.WriteString("\n")
		//
		if x.Int64()%3 == 2 {
			builder.WriteString(sep)
		}
	}
	//
	return builder.String()
}
