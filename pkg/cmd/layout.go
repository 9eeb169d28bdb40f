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

	"github.com/consensys/go-ranged/pkg/layout"
	"github.com/consensys/go-ranged/pkg/ranged"
	"github.com/consensys/go-ranged/pkg/util/termio"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [flags] min max [min max ...]",
	Short: "report the storage layout selected for one or more ranges.",
	Long: `Report the narrowest storage layout able to hold every value of each given
	 (inclusive) range, along with its width in bytes and native bounds.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ranges []ranged.Range
			ansi   = ansiEscapes(cmd)
		)
		//
		if GetFlag(cmd, "all") {
			exitOnError(printLadder(cmd.OutOrStdout(), ansi))
			return
		} else if len(args) == 0 || len(args)%2 != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		for i := 0; i < len(args); i += 2 {
			r, err := parseRange(args[i], args[i+1])
			exitOnError(err)
			//
			ranges = append(ranges, r)
		}
		//
		exitOnError(printLayouts(cmd.OutOrStdout(), ranges, ansi))
	},
}

// Print the layout selected for each of the given ranges.
func printLayouts(out io.Writer, ranges []ranged.Range, ansi bool) error {
	tp := termio.NewTablePrinter(4, uint(len(ranges)+1))
	tp.AnsiEscapes(ansi)
	//
	setHeader(tp, "range", "kind", "bytes", "native")
	//
	for i, r := range ranges {
		var (
			row    = uint(i + 1)
			kind   = r.Layout()
			native = "-"
		)
		//
		if kind != layout.Trivial {
			lo, hi := kind.Bounds()
			native = fmt.Sprintf("(%s..%s)", lo.String(), hi.String())
		}
		//
		tp.SetRow(row, r.String(), kind.String(), fmt.Sprintf("%d", kind.Width()), native)
		tp.SetEscape(1, row, kindEscape(kind))
	}
	//
	return tp.Print(out)
}

// Print the ladder of layout kinds, in the order in which they are considered.
func printLadder(out io.Writer, ansi bool) error {
	tp := termio.NewTablePrinter(5, uint(len(layout.LADDER)+1))
	tp.AnsiEscapes(ansi)
	//
	setHeader(tp, "kind", "bytes", "signed", "min", "max")
	//
	for i, kind := range layout.LADDER {
		row := uint(i + 1)
		lo, hi := kind.Bounds()
		tp.SetRow(row, kind.String(), fmt.Sprintf("%d", kind.Width()), fmt.Sprintf("%t", kind.Signed()),
			lo.String(), hi.String())
		tp.SetEscape(0, row, kindEscape(kind))
	}
	//
	return tp.Print(out)
}

func setHeader(tp *termio.TablePrinter, titles ...string) {
	tp.SetRow(0, titles...)
	//
	for i := range titles {
		tp.SetEscape(uint(i), 0, termio.BoldAnsiEscape())
	}
}

// Signed kinds are shown in yellow and unsigned kinds in blue.
func kindEscape(kind layout.Kind) termio.AnsiEscape {
	switch {
	case kind == layout.Trivial:
		return termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
	case kind.Signed():
		return termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW)
	default:
		return termio.NewAnsiEscape().FgColour(termio.TERM_BLUE)
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().Bool("all", false, "print every layout kind")
}
