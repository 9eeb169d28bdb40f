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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/consensys/go-ranged/pkg/ranged"
	"github.com/consensys/go-ranged/pkg/sudoku"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Layout_Ladder(t *testing.T) {
	var out bytes.Buffer
	//
	require.NoError(t, printLadder(&out, false))
	checkGolden(t, "ladder", out.Bytes())
}

func Test_Layout_Ranges(t *testing.T) {
	var (
		out    bytes.Buffer
		ranges []ranged.Range
		bounds = [][2]string{
			{"42", "42"}, {"-1", "127"}, {"0", "200"}, {"-1", "200"}, {"-70000", "5"}, {"0", "18446744073709551615"},
		}
	)
	//
	for _, b := range bounds {
		r, err := parseRange(b[0], b[1])
		require.NoError(t, err)
		//
		ranges = append(ranges, r)
	}
	//
	require.NoError(t, printLayouts(&out, ranges, false))
	checkGolden(t, "layouts", out.Bytes())
}

func Test_Layout_Invalid(t *testing.T) {
	_, err := parseRange("10", "1")
	assert.ErrorIs(t, err, ranged.ErrInvalidRange)
	//
	_, err = parseRange("0", "18446744073709551616")
	assert.ErrorIs(t, err, ranged.ErrUnsupportedRange)
	//
	_, err = parseRange("0", "1e3")
	assert.ErrorIs(t, err, ranged.ErrNotANumber)
	//
	_, err = parseRange("0", "340282366920938463463374607431768211456")
	assert.ErrorIs(t, err, ranged.ErrUnsupportedRange)
}

func Test_Eval_01(t *testing.T) {
	var out bytes.Buffer
	//
	err := evalExpressions(&out,
		"(add [1 6 5] [1 6 4])",
		"(mul [1 6 5] [1 6 4])",
		"(div [1 6 5] [1 6 4])",
		"(rem [-1000 1000 500] [1 10 7])",
		"(neg [-6 -1 -3])",
		"(abs [-3 7 -3])",
		"(expand [0 9 4] 0 1000)",
		"(fit [0 1000 42] 0 255)",
		"42",
		"(div-euclid [-7 -7 -7] [2 2 2])",
		"(rem-euclid [-7 7 -7] [3 3 3])",
		"(min [0 10 3] [-5 5 5])",
		"(max [-200 -1 -100] [0 100 7])",
	)
	//
	require.NoError(t, err)
	checkGolden(t, "eval", out.Bytes())
}

func Test_Eval_02(t *testing.T) {
	var out bytes.Buffer
	// Evaluation stops at the first failure
	err := evalExpressions(&out, "(add 1 2)", "(div [0 10 5] [-1 1 1])", "(add 3 4)")
	//
	assert.ErrorIs(t, err, ranged.ErrDivisionByZero)
	assert.Equal(t, "3 (3..3) trivial\n", out.String())
}

func Test_Verify_Default(t *testing.T) {
	var out bytes.Buffer
	//
	results, err := runVerify(VerifyConfig{Workers: 4, Cases: defaultCases})
	require.NoError(t, err)
	assert.Zero(t, countUnsound(results))
	//
	require.NoError(t, printVerifyResults(&out, results, false))
	checkGolden(t, "verify", out.Bytes())
}

func Test_Verify_Config(t *testing.T) {
	var out bytes.Buffer
	//
	cfg, err := readVerifyConfig("testdata/verify.yaml")
	require.NoError(t, err)
	assert.Equal(t, uint(2), cfg.Workers)
	require.Len(t, cfg.Cases, 5)
	//
	results, err := runVerify(cfg)
	require.NoError(t, err)
	//
	require.NoError(t, printVerifyResults(&out, results, false))
	checkGolden(t, "verify_config", out.Bytes())
}

func Test_Verify_UnknownField(t *testing.T) {
	_, err := readVerifyConfig("testdata/typo.yaml")
	assert.Error(t, err)
	//
	_, err = readVerifyConfig("testdata/missing.yaml")
	assert.Error(t, err)
}

func Test_Verify_Malformed(t *testing.T) {
	cases := []VerifyCase{
		{"pow", []int64{1, 2}, []int64{1, 2}},
		{"add", []int64{1, 2}, nil},
		{"neg", []int64{1, 2}, []int64{1, 2}},
		{"add", []int64{1}, []int64{1, 2}},
		{"add", []int64{2, 1}, []int64{1, 2}},
	}
	//
	for _, c := range cases {
		_, err := runVerify(VerifyConfig{Cases: []VerifyCase{c}})
		assert.Error(t, err, c.Op)
	}
}

func Test_Verify_Rejected(t *testing.T) {
	op, args, err := VerifyCase{"rem", []int64{0, 10}, []int64{-2, 0}}.resolve()
	require.NoError(t, err)
	//
	result := verify(op, args)
	assert.Equal(t, REJECTED, result.status)
	assert.Zero(t, result.checks)
	assert.True(t, result.bounds.IsEmpty())
}

func Test_Verify_Loose(t *testing.T) {
	op, args, err := VerifyCase{"rem", []int64{5, 7}, []int64{10, 20}}.resolve()
	require.NoError(t, err)
	//
	result := verify(op, args)
	assert.Equal(t, SOUND, result.status)
	assert.Equal(t, uint(33), result.checks)
}

func Test_Sudoku_01(t *testing.T) {
	var out bytes.Buffer
	//
	require.True(t, solveSudoku(&out, sudoku.Puzzle()))
	checkGolden(t, "sudoku", out.Bytes())
}

func Test_Sudoku_02(t *testing.T) {
	var out bytes.Buffer
	// The top-left cell has no remaining candidate
	grid, err := sudoku.Parse(".12345678" + "9........" + strings.Repeat(".", 63))
	require.NoError(t, err)
	//
	assert.False(t, solveSudoku(&out, grid))
	assert.Equal(t, "no solution\n", out.String())
}

func Test_Root_Version(t *testing.T) {
	var out bytes.Buffer
	//
	Version = "v1.2.3"
	printVersion(&out)
	Version = ""
	//
	assert.Equal(t, "go-ranged v1.2.3\n", out.String())
}

func Test_ParseBound(t *testing.T) {
	val, err := parseBound("-9223372036854775809")
	require.NoError(t, err)
	assert.Equal(t, "-9223372036854775809", val.String())
	//
	_, err = parseBound("abc")
	assert.True(t, errors.Is(err, ranged.ErrNotANumber))
}

func checkGolden(t *testing.T, name string, actual []byte) {
	t.Helper()
	//
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, actual)
}
