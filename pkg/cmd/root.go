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
	"runtime/debug"

	"github.com/consensys/go-ranged/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "go-ranged",
	Short: "A toolbox for bounded integers.",
	Long: `A toolbox for bounded integers, whose values are guaranteed to lie within a
	 given range and whose storage layout is derived from that range.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			printVersion(cmd.OutOrStdout())
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), cmd.UsageString())
		}
	},
}

func printVersion(out io.Writer) {
	fmt.Fprint(out, "go-ranged ")
	//
	if Version != "" {
		// Built via "make"
		fmt.Fprintf(out, "%s", Version)
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		fmt.Fprintf(out, "%s", info.Main.Version)
	} else {
		// Unknown, perhaps "go run"
		fmt.Fprintf(out, "(unknown version)")
	}
	//
	fmt.Fprintln(out)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// Determine whether ANSI escapes should be used when printing tables.  Unless
// explicitly requested, they are only used when stdout is a terminal.
func ansiEscapes(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("ansi-escapes") {
		return GetFlag(cmd, "ansi-escapes")
	}
	//
	return termio.IsTerminal(os.Stdout)
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("ansi-escapes", false, "force (or disable) ANSI colour in tables")
}
