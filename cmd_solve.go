// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bclmary/eccw/out"
	"github.com/bclmary/eccw/wedge"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// wedgeFlags holds the parameters of a wedge given in the command line
type wedgeFlags struct {
	context string
	values  map[string]*float64
	showR   bool
}

// register defines the flags
func (o *wedgeFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.context, "context", "c", "compression", "tectonic context: compression (c) or extension (e)")
	o.values = make(map[string]*float64)
	for _, key := range wedge.ParamNames[1:] {
		o.values[key] = fs.Float64(key, 0, key+" (angles in degrees)")
	}
}

// state allocates a State with the flags set by the user
func (o *wedgeFlags) state(fs *pflag.FlagSet) (state *wedge.State, err error) {
	state = wedge.NewState()
	state.ShowR = o.showR
	if err = state.SetContext(o.context); err != nil {
		return nil, err
	}
	for _, key := range wedge.ParamNames[1:] {
		if !fs.Changed(key) {
			continue
		}
		if err = state.Set(key, *o.values[key]); err != nil {
			return nil, err
		}
	}
	return
}

var (
	solveFlags wedgeFlags
	solveFocus []string
	solveJSON  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute one or more parameters of a wedge",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := solveFlags.state(cmd.Flags())
		if err != nil {
			return err
		}
		focus := make([]wedge.Param, len(solveFocus))
		for i, name := range solveFocus {
			if focus[i], err = wedge.ParseParam(name); err != nil {
				return err
			}
		}
		logger.Debug("solving", "state", state.String(), "focus", solveFocus)
		rep := out.NewReport("")
		if _, err = rep.Add(state, focus); err != nil {
			return err
		}
		if solveJSON {
			return rep.WriteJSON(cmd.OutOrStdout())
		}
		return rep.WriteTable(cmd.OutOrStdout())
	},
}

func init() {
	solveFlags.register(solveCmd.Flags())
	solveCmd.Flags().StringSliceVarP(&solveFocus, "focus", "f", []string{"alpha", "beta", "phiB", "phiD"}, "parameters to compute")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "write results in JSON format")
	solveCmd.Flags().BoolVar(&solveFlags.showR, "showr", false, "show Newton-Raphson residuals")
}
