// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wedge

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// tolDeg is the tolerance on angles in degrees
const tolDeg = 1e-3

// newDry returns a State without fluids
func newDry(tst *testing.T, ctx string, alpha, beta, phiB, phiD float64) *State {
	o := NewState()
	if err := o.SetContext(ctx); err != nil {
		tst.Fatalf("SetContext failed: %v\n", err)
	}
	o.SetAlpha(alpha)
	o.SetBeta(beta)
	if err := o.SetPhiB(phiB); err != nil {
		tst.Fatalf("SetPhiB failed: %v\n", err)
	}
	if err := o.SetPhiD(phiD); err != nil {
		tst.Fatalf("SetPhiD failed: %v\n", err)
	}
	return o
}

// checkRoot compares a Root with a value; NaN means None
func checkRoot(tst *testing.T, msg string, res Root, correct float64) {
	if math.IsNaN(correct) {
		if res.Ok {
			tst.Errorf("%s: None expected but got %g\n", msg, res.Val)
		}
		return
	}
	if !res.Ok {
		tst.Errorf("%s: %g expected but got None\n", msg, correct)
		return
	}
	chk.Float64(tst, msg, tolDeg, res.Val, correct)
}

// checkRoots compares both roots
func checkRoots(tst *testing.T, msg string, res Roots, lower, upper float64) {
	checkRoot(tst, msg+".lower", res.Lower, lower)
	checkRoot(tst, msg+".upper", res.Upper, upper)
}

// checkBetas compares both sequences of β
func checkBetas(tst *testing.T, res Betas, tectonic, collapse []float64) {
	chk.Int(tst, "len(tectonic)", len(res.Tectonic), len(tectonic))
	chk.Int(tst, "len(collapse)", len(res.Collapse), len(collapse))
	if len(res.Tectonic) == len(tectonic) {
		chk.Array(tst, "tectonic", tolDeg, res.Tectonic, tectonic)
	}
	if len(res.Collapse) == len(collapse) {
		chk.Array(tst, "collapse", tolDeg, res.Collapse, collapse)
	}
}
