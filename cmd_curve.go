// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bclmary/eccw/out"
	"github.com/spf13/cobra"
)

var (
	curveFlags wedgeFlags
	curveNp    int
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Compute the critical envelope (beta, alpha) of a wedge",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := curveFlags.state(cmd.Flags())
		if err != nil {
			return err
		}
		logger.Debug("envelope", "state", state.String(), "np", curveNp, "alphamax", state.AlphaMax())
		env, err := state.Envelope(curveNp)
		if err != nil {
			return err
		}
		return out.WriteCurve(cmd.OutOrStdout(), env)
	},
}

func init() {
	curveFlags.register(curveCmd.Flags())
	curveCmd.Flags().IntVarP(&curveNp, "np", "n", 200, "number of values of alpha")
}
