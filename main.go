// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// logger writes diagnostics to stderr
var logger = newLogger(false)

// verbose activates debug messages
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "eccw",
	Short: "Exact Critical Coulomb Wedge",
	Long: `Computes the critical surface slope (alpha), basal slope (beta), bulk
friction (phiB) or basal friction (phiD) of a Coulomb wedge in compression or
extension, possibly with fluid overpressures.

Examples:
  eccw run session.ccw
  eccw solve --focus alpha --phiB 30 --phiD 10 --beta 0
  eccw curve --phiB 30 --phiD 10 --np 200`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(verbose)
		chk.Verbose = verbose
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug messages")
	rootCmd.AddCommand(runCmd, solveCmd, curveCmd)
}

// newLogger returns a logger with colours and short times
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(2)
		}
	}()

	// run command
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}
