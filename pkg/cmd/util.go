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
	"math/big"
	"os"

	"github.com/consensys/go-ranged/pkg/ranged"
	"github.com/shabbyrobe/go-num"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a range from its bounds given as command-line arguments.
func parseRange(lower string, upper string) (ranged.Range, error) {
	lo, err := parseBound(lower)
	if err != nil {
		return ranged.Range{}, err
	}
	//
	hi, err := parseBound(upper)
	if err != nil {
		return ranged.Range{}, err
	}
	//
	return ranged.NewRange(lo, hi)
}

func parseBound(text string) (num.I128, error) {
	val, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return num.I128{}, fmt.Errorf("invalid bound \"%s\": %w", text, ranged.ErrNotANumber)
	}
	//
	bound, accurate := num.I128FromBigInt(val)
	if !accurate {
		return num.I128{}, fmt.Errorf("invalid bound \"%s\": %w", text, ranged.ErrUnsupportedRange)
	}
	//
	return bound, nil
}

// Report an error and exit.
func exitOnError(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

// GetInt gets an expected signed integer, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}
