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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-ranged/pkg/sudoku"
	"github.com/consensys/go-ranged/pkg/util"
	"github.com/spf13/cobra"
)

var sudokuCmd = &cobra.Command{
	Use:   "sudoku [flags] [puzzle_file]",
	Short: "solve a sudoku puzzle using bounded integers.",
	Long: `Solve a sudoku puzzle, given as 81 cells row by row where '.' or '0' marks an
	 empty cell.  When no file is given, a built-in puzzle is solved.`,
	Run: func(cmd *cobra.Command, args []string) {
		var grid = sudoku.Puzzle()
		//
		if len(args) > 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		} else if len(args) == 1 {
			bytes, err := os.ReadFile(args[0])
			exitOnError(err)
			//
			grid, err = sudoku.Parse(string(bytes))
			exitOnError(err)
		}
		//
		if !solveSudoku(cmd.OutOrStdout(), grid) {
			os.Exit(1)
		}
	},
}

// Solve a given grid and print the outcome, returning false if it has no
// solution.
func solveSudoku(out io.Writer, grid *sudoku.Grid) bool {
	stats := util.NewPerfStats()
	solved := grid.Solve()
	stats.Log("Solving")
	//
	if !solved {
		fmt.Fprintln(out, "no solution")
		return false
	}
	//
	fmt.Fprint(out, grid.String())
	//
	return true
}

func init() {
	rootCmd.AddCommand(sudokuCmd)
}
