// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	goio "io"

	"github.com/bclmary/eccw/inp"
	"github.com/bclmary/eccw/out"
	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"
)

var runJSON bool

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Compute the focus parameters of a session file (.ccw, .json, .yaml)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), args[0], runJSON)
	},
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "write results in JSON format")
}

// run reads a session file, computes all records and writes the report
func run(w goio.Writer, path string, asJSON bool) (err error) {

	// input
	ses, err := inp.ReadSession(path)
	if err != nil {
		return
	}
	logger.Debug("session read", "key", ses.Key, "focus", ses.Focus)
	state, err := ses.NewState()
	if err != nil {
		return chk.Err("session %q:\n%v", ses.Key, err)
	}

	// compute
	rep := out.NewReport(ses.Desc)
	values := ses.RangeValues()
	if values == nil {
		if _, err = rep.Add(state, ses.Targets); err != nil {
			return
		}
	}
	for _, v := range values {
		if err = state.Set(ses.Range.Prm, v); err != nil {
			return chk.Err("session %q: cannot set %s = %g:\n%v", ses.Key, ses.Range.Prm, v, err)
		}
		logger.Debug("computing", "state", state.String())
		if _, err = rep.Add(state, ses.Targets); err != nil {
			return
		}
	}
	logger.Debug("computed", "records", len(rep.Records))

	// output
	if asJSON {
		err = rep.WriteJSON(w)
	} else {
		err = rep.WriteTable(w)
	}
	if err != nil || ses.Curve.Np == 0 || asJSON {
		return
	}
	env, err := state.Envelope(ses.Curve.Np)
	if err != nil {
		return
	}
	if _, err = goio.WriteString(w, "\n"); err != nil {
		return
	}
	return out.WriteCurve(w, env)
}
