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
	"fmt"
	"io"
	"math/big"
	"os"
	"runtime"

	"github.com/consensys/go-ranged/pkg/ranged"
	"github.com/consensys/go-ranged/pkg/util"
	"github.com/consensys/go-ranged/pkg/util/collection/iter"
	"github.com/consensys/go-ranged/pkg/util/termio"
	"github.com/shabbyrobe/go-num"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags]",
	Short: "exhaustively verify the soundness of bound propagation.",
	Long: `Exhaustively verify that, for each case, every result of the given operator
	 applied to operands drawn from the given ranges lies within the range derived
	 for it.  Cases are read from a YAML configuration file, or a built-in set of
	 cases is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg      = VerifyConfig{Cases: defaultCases}
			filename = GetString(cmd, "config")
			stats    = util.NewPerfStats()
			err      error
		)
		//
		if filename != "" {
			cfg, err = readVerifyConfig(filename)
			exitOnError(err)
		}
		//
		if cmd.Flags().Changed("workers") || cfg.Workers == 0 {
			cfg.Workers = GetUint(cmd, "workers")
		}
		//
		results, err := runVerify(cfg)
		exitOnError(err)
		stats.Log("Verification")
		//
		exitOnError(printVerifyResults(cmd.OutOrStdout(), results, ansiEscapes(cmd)))
		// Report failure
		if n := countUnsound(results); n > 0 {
			fmt.Printf("%d unsound case(s)\n", n)
			os.Exit(1)
		}
	},
}

// VerifyConfig describes the cases to be verified, and how many of them to
// verify in parallel.
type VerifyConfig struct {
	Workers uint         `yaml:"workers,omitempty"`
	Cases   []VerifyCase `yaml:"cases"`
}

// VerifyCase identifies an operator and the (inclusive) ranges of its
// operands.  The second range is omitted for unary operators.
type VerifyCase struct {
	Op string  `yaml:"op"`
	A  []int64 `yaml:"a,flow"`
	B  []int64 `yaml:"b,omitempty,flow"`
}

// Outcomes of verifying a case.
const (
	// Derived bounds are exactly the observed results.
	TIGHT = "tight"
	// Derived bounds contain the observed results, but are wider.
	SOUND = "sound"
	// Some result lies outside the derived bounds.
	UNSOUND = "unsound"
	// Some result differs from the reference computation.
	MISMATCH = "mismatch"
	// The operator is not permitted on the given ranges.
	REJECTED = "rejected"
)

type verifyResult struct {
	op       ranged.Op
	args     []ranged.Range
	bounds   util.Option[ranged.Range]
	observed util.Option[util.Pair[*big.Int, *big.Int]]
	checks   uint
	status   string
}

var defaultCases = []VerifyCase{
	{"add", []int64{1, 6}, []int64{1, 6}},
	{"sub", []int64{-4, 4}, []int64{1, 6}},
	{"mul", []int64{-3, 5}, []int64{-2, 4}},
	{"div", []int64{1, 6}, []int64{1, 6}},
	{"div", []int64{-20, 20}, []int64{-7, -2}},
	{"div", []int64{0, 10}, []int64{-1, 1}},
	{"rem", []int64{-1000, 1000}, []int64{1, 10}},
	{"rem", []int64{6, 8}, []int64{3, 3}},
	{"div-euclid", []int64{-20, 20}, []int64{2, 5}},
	{"rem-euclid", []int64{-20, 20}, []int64{-7, -2}},
	{"rem-euclid", []int64{0, 100}, []int64{1, 10}},
	{"min", []int64{-5, 5}, []int64{0, 10}},
	{"max", []int64{-5, 5}, []int64{0, 10}},
	{"neg", []int64{-6, -1}, nil},
	{"abs", []int64{-3, 7}, nil},
}

// Read a verification configuration from a YAML file.  Unknown fields are
// rejected, so as to catch typos.
func readVerifyConfig(filename string) (VerifyConfig, error) {
	var cfg VerifyConfig
	//
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	//
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	//
	return cfg, nil
}

// Resolve the operator and operand ranges of a case.
func (c VerifyCase) resolve() (ranged.Op, []ranged.Range, error) {
	op, ok := ranged.ParseOp(c.Op)
	if !ok {
		return op, nil, fmt.Errorf("unknown operator \"%s\"", c.Op)
	}
	//
	bounds := [][]int64{c.A, c.B}[:op.Arity()]
	//
	if op.Arity() == 1 && len(c.B) != 0 {
		return op, nil, fmt.Errorf("%s expects one operand range", c.Op)
	}
	//
	args := make([]ranged.Range, len(bounds))
	//
	for i, b := range bounds {
		if len(b) != 2 {
			return op, nil, fmt.Errorf("%s expects operand ranges of the form [min, max]", c.Op)
		}
		//
		r, err := ranged.NewRange(num.I128From64(b[0]), num.I128From64(b[1]))
		if err != nil {
			return op, nil, err
		}
		//
		args[i] = r
	}
	//
	return op, args, nil
}

// Verify every case of a given configuration using a bounded pool of workers.
// Results are returned in the order of the cases.
func runVerify(cfg VerifyConfig) ([]verifyResult, error) {
	var (
		g       errgroup.Group
		results = make([]verifyResult, len(cfg.Cases))
		workers = int(cfg.Workers)
	)
	// Resolve all cases upfront, so that malformed cases are reported before
	// any work is done.
	for i, c := range cfg.Cases {
		op, args, err := c.resolve()
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
		//
		results[i] = verifyResult{op: op, args: args}
	}
	//
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	//
	g.SetLimit(workers)
	log.Debugf("verifying %d cases with %d workers", len(results), workers)
	//
	for i := range results {
		g.Go(func() error {
			results[i] = verify(results[i].op, results[i].args)
			return nil
		})
	}
	//
	return results, g.Wait()
}

// Verify a single operator by evaluating it against every combination of
// operands drawn from the given ranges.
func verify(op ranged.Op, args []ranged.Range) verifyResult {
	var result = verifyResult{op: op, args: args, status: TIGHT}
	//
	log.Debugf("verifying %s", describeCase(op, args))
	//
	bounds, err := op.Bounds(args...)
	if err != nil {
		log.Debugf("rejected %s (%s)", describeCase(op, args), err.Error())
		result.status = REJECTED
		//
		return result
	}
	//
	result.bounds = util.Some(bounds)
	//
	if op.Arity() == 1 {
		for x := range ranged.All(args[0]) {
			result.check(bounds, x)
		}
	} else {
		pairs := iter.EnumeratePairs(ranged.Iterate(args[0]), ranged.Iterate(args[1]))
		//
		for p := range iter.Seq(pairs) {
			result.check(bounds, p.Left, p.Right)
		}
	}
	//
	if observed, ok := result.observed.Get(); ok && result.status == TIGHT {
		lo, hi := bounds.Min().AsBigInt(), bounds.Max().AsBigInt()
		//
		if lo.Cmp(observed.Left) != 0 || hi.Cmp(observed.Right) != 0 {
			result.status = SOUND
		}
	}
	//
	return result
}

// Check a single combination of operands against the derived bounds.
func (p *verifyResult) check(bounds ranged.Range, operands ...ranged.Int) {
	var expected = reference(p.op, operands)
	//
	p.checks++
	p.observe(expected)
	//
	if !bounds.Interval().Contains(expected) {
		log.WithFields(log.Fields{
			"op":       p.op.String(),
			"operands": operands,
		}).Errorf("result %s outside %s", expected.String(), bounds.String())
		//
		p.status = UNSOUND
		//
		return
	}
	//
	actual, err := ranged.Apply(p.op, operands...)
	//
	if err != nil || actual.Value().AsBigInt().Cmp(expected) != 0 {
		log.WithFields(log.Fields{
			"op":       p.op.String(),
			"operands": operands,
		}).Errorf("result %s differs from %s", actual.String(), expected.String())
		//
		p.status = MISMATCH
	}
}

func (p *verifyResult) observe(val *big.Int) {
	observed, ok := p.observed.Get()
	//
	switch {
	case !ok:
		observed = util.NewPair(val, val)
	case val.Cmp(observed.Left) < 0:
		observed.Left = val
	case val.Cmp(observed.Right) > 0:
		observed.Right = val
	}
	//
	p.observed = util.Some(observed)
}

// Compute the result of an operator directly, without any bounds.  Euclidean
// division and remainder coincide with big.Int's Div and Mod.
func reference(op ranged.Op, operands []ranged.Int) *big.Int {
	var x = operands[0].Value().AsBigInt()
	//
	switch op {
	case ranged.OpNeg:
		return x.Neg(x)
	case ranged.OpAbs:
		return x.Abs(x)
	}
	//
	var y = operands[1].Value().AsBigInt()
	//
	switch op {
	case ranged.OpAdd:
		return x.Add(x, y)
	case ranged.OpSub:
		return x.Sub(x, y)
	case ranged.OpMul:
		return x.Mul(x, y)
	case ranged.OpDiv:
		return x.Quo(x, y)
	case ranged.OpRem:
		return x.Rem(x, y)
	case ranged.OpDivEuclid:
		return x.Div(x, y)
	case ranged.OpRemEuclid:
		return x.Mod(x, y)
	case ranged.OpMin:
		if x.Cmp(y) <= 0 {
			return x
		}
		//
		return y
	default:
		if x.Cmp(y) >= 0 {
			return x
		}
		//
		return y
	}
}

func countUnsound(results []verifyResult) uint {
	var count uint
	//
	for _, r := range results {
		if r.status == UNSOUND || r.status == MISMATCH {
			count++
		}
	}
	//
	return count
}

// Print a table summarising the outcome of each case.
func printVerifyResults(out io.Writer, results []verifyResult, ansi bool) error {
	tp := termio.NewTablePrinter(7, uint(len(results)+1))
	tp.AnsiEscapes(ansi)
	//
	setHeader(tp, "op", "a", "b", "bounds", "observed", "checks", "status")
	//
	for i, r := range results {
		var (
			row      = uint(i + 1)
			b        = "-"
			bounds   = util.MapOption(r.bounds, ranged.Range.String).UnwrapOr("-")
			observed = util.MapOption(r.observed, formatObserved).UnwrapOr("-")
		)
		//
		if len(r.args) > 1 {
			b = r.args[1].String()
		}
		//
		tp.SetRow(row, r.op.String(), r.args[0].String(), b, bounds, observed, fmt.Sprintf("%d", r.checks), r.status)
		tp.SetEscape(6, row, statusEscape(r.status))
	}
	//
	return tp.Print(out)
}

func formatObserved(obs util.Pair[*big.Int, *big.Int]) string {
	return fmt.Sprintf("(%s..%s)", obs.Left.String(), obs.Right.String())
}

func statusEscape(status string) termio.AnsiEscape {
	switch status {
	case TIGHT:
		return termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
	case SOUND:
		return termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW)
	case REJECTED:
		return termio.NewAnsiEscape().FgColour(termio.TERM_BLUE)
	default:
		return termio.NewAnsiEscape().FgColour(termio.TERM_RED)
	}
}

func describeCase(op ranged.Op, args []ranged.Range) string {
	var text = op.String()
	//
	for _, arg := range args {
		text = fmt.Sprintf("%s %s", text, arg.String())
	}
	//
	return text
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringP("config", "c", "", "read cases from a YAML configuration file.")
	verifyCmd.Flags().UintP("workers", "w", 0, "number of cases verified in parallel (0 for one per CPU).")
}
