// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_main01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main01. run session file")

	var buf bytes.Buffer
	err := run(&buf, "inp/data/dry.ccw", false)
	if err != nil {
		tst.Errorf("run failed:\n%v", err)
		return
	}
	io.Pf("%s", buf.String())
	res := buf.String()

	// five values of beta in the range, then the envelope
	for _, s := range []string{"# compression without fluids", "=> alpha", "=> beta", "# upper: normal faults", "# lower: inverse faults"} {
		if !strings.Contains(res, s) {
			tst.Errorf("%q not found in output\n", s)
		}
	}
	table := strings.Split(res, "# upper")[0]
	chk.Int(tst, "number of lines in table", len(strings.Split(strings.TrimSpace(table), "\n")), 8)

	// JSON skips the envelope
	buf.Reset()
	err = run(&buf, "inp/data/fluids.yaml", true)
	if err != nil {
		tst.Errorf("run failed:\n%v", err)
		return
	}
	if !strings.Contains(buf.String(), `"target": "phiD"`) || strings.Contains(buf.String(), "# upper") {
		tst.Errorf("JSON output is incorrect:\n%s", buf.String())
	}

	// errors
	if err = run(&buf, "inp/data/badname.json", false); err == nil {
		tst.Errorf("run must fail with wrong parameter names\n")
	}
	if err = run(&buf, "inp/data/badphiB.json", false); err == nil {
		tst.Errorf("run must fail with negative phiB\n")
	}
}

func Test_main02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main02. solve and curve commands")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"solve", "--focus", "alpha,phiD", "--phiB", "30", "--phiD", "10", "--beta", "20", "--alpha", "9.4113", "-c", "e"})
	if err := rootCmd.Execute(); err != nil {
		tst.Errorf("solve failed:\n%v", err)
		return
	}
	io.Pf("%s", buf.String())
	for _, s := range []string{"# context: extension", "-16.2620 | 9.4113", "-- | 10.0000"} {
		if !strings.Contains(buf.String(), s) {
			tst.Errorf("%q not found in output\n", s)
		}
	}

	buf.Reset()
	rootCmd.SetArgs([]string{"curve", "--phiB", "30", "--phiD", "10", "--np", "20"})
	if err := rootCmd.Execute(); err != nil {
		tst.Errorf("curve failed:\n%v", err)
		return
	}
	if !strings.HasPrefix(buf.String(), "# upper: normal faults") {
		tst.Errorf("curve output is incorrect:\n%s", buf.String())
	}

	rootCmd.SetArgs([]string{"solve", "--focus", "gamma", "--phiB", "30", "--phiD", "10"})
	if err := rootCmd.Execute(); err == nil {
		tst.Errorf("solve must fail with wrong focus\n")
	}
}

func Test_main03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main03. fluid flags")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"solve", "--focus", "beta", "--phiB", "30", "--phiD", "10", "--alpha", "3.8353", "--beta", "0", "-c", "c",
		"--rho_f", "1000", "--rho_sr", "3500", "--delta_lambdaB", "0.5", "--delta_lambdaD", "0.3"})
	if err := rootCmd.Execute(); err != nil {
		tst.Errorf("solve failed:\n%v", err)
		return
	}
	io.Pf("%s", buf.String())
	for _, s := range []string{"rho_f", "=> beta", "| 58.9150"} {
		if !strings.Contains(buf.String(), s) {
			tst.Errorf("%q not found in output\n", s)
		}
	}

	rootCmd.SetArgs([]string{"solve", "--focus", "beta", "--phiB", "30", "--phiD", "10", "--alpha", "0", "--beta", "0", "--rho_f", "-1000",
		"--rho_sr", "0", "--delta_lambdaB", "0", "--delta_lambdaD", "0"})
	if err := rootCmd.Execute(); err == nil {
		tst.Errorf("solve must fail with negative rho_f\n")
	}
}
