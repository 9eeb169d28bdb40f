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

	"github.com/consensys/go-ranged/pkg/expr"
	"github.com/consensys/go-ranged/pkg/ranged"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression(s)",
	Short: "evaluate bounded integer expressions.",
	Long: `Evaluate one or more bounded integer expressions, reporting the value and
	 the range derived for it.  For example, "(rem [-1000 1000 500] [1 10 7])"
	 computes the remainder of 500 (in -1000..1000) by 7 (in 1..10).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		exitOnError(evalExpressions(cmd.OutOrStdout(), args...))
	},
}

// Evaluate each expression in turn, writing one line per result.  Evaluation
// stops at the first expression which fails.
func evalExpressions(out io.Writer, exprs ...string) error {
	for _, text := range exprs {
		val, err := expr.EvalString(text)
		if err != nil {
			return err
		}
		//
		if _, err := fmt.Fprintln(out, formatResult(val)); err != nil {
			return err
		}
	}
	//
	return nil
}

func formatResult(val ranged.Int) string {
	return fmt.Sprintf("%s %s %s", val.String(), val.Range().String(), val.Layout().String())
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
