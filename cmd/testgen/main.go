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
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-ranged/pkg/cmd"
	"github.com/consensys/go-ranged/pkg/ranged"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int("min-elem", -3, "Minimum element")
	rootCmd.Flags().Int("max-elem", 3, "Maximum element")
	rootCmd.Flags().String("ops", "", "Comma-separated operators (default all)")
	rootCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen",
	Short: "Test generation utility for go-ranged.",
	Long: `Generate a verification configuration covering every operator applied to
	 every range (or pair of ranges) between a minimum and maximum element.`,
	Run: func(c *cobra.Command, args []string) {
		var cfg TestGenConfig
		//
		cfg.minElem = int64(cmd.GetInt(c, "min-elem"))
		cfg.maxElem = int64(cmd.GetInt(c, "max-elem"))
		cfg.ops = parseOps(cmd.GetString(c, "ops"))
		//
		if cfg.minElem > cfg.maxElem {
			fmt.Println("minimum element exceeds maximum element")
			os.Exit(2)
		}
		// Generate cases
		cases := generateCases(cfg)
		// Write out
		writeCases(cmd.GetString(c, "output"), cases)
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	minElem int64
	maxElem int64
	ops     []ranged.Op
}

func parseOps(names string) []ranged.Op {
	if names == "" {
		return ranged.OPERATORS
	}
	//
	var ops []ranged.Op
	//
	for _, name := range strings.Split(names, ",") {
		op, ok := ranged.ParseOp(strings.TrimSpace(name))
		if !ok {
			fmt.Printf("unknown operator \"%s\"\n", name)
			os.Exit(2)
		}
		//
		ops = append(ops, op)
	}
	//
	return ops
}

// Generate every case for the configured operators.  Cases whose divisor range
// contains zero are included, since their rejection is also checked.
func generateCases(cfg TestGenConfig) []cmd.VerifyCase {
	var (
		ranges = generateRanges(cfg.minElem, cfg.maxElem)
		cases  []cmd.VerifyCase
	)
	//
	for _, op := range cfg.ops {
		for _, a := range ranges {
			if op.Arity() == 1 {
				cases = append(cases, cmd.VerifyCase{Op: op.String(), A: a})
				continue
			}
			//
			for _, b := range ranges {
				cases = append(cases, cmd.VerifyCase{Op: op.String(), A: a, B: b})
			}
		}
	}
	//
	return cases
}

// Generate every range [lo,hi] where lower <= lo <= hi <= upper.
func generateRanges(lower int64, upper int64) [][]int64 {
	var ranges [][]int64
	//
	for lo := lower; lo <= upper; lo++ {
		for hi := lo; hi <= upper; hi++ {
			ranges = append(ranges, []int64{lo, hi})
		}
	}
	//
	return ranges
}

func writeCases(filename string, cases []cmd.VerifyCase) {
	bytes, err := yaml.Marshal(cmd.VerifyConfig{Cases: cases})
	if err != nil {
		panic(err)
	}
	//
	if filename == "" {
		fmt.Print(string(bytes))
		return
	}
	// Write the file
	if err := os.WriteFile(filename, bytes, 0644); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// Log what happened
	log.Infof("Wrote %s (%d cases)\n", filename, len(cases))
}
