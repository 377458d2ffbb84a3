// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wedge

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. initial values and setters")

	o := NewState()
	if !math.IsNaN(o.Alpha()) || !math.IsNaN(o.Beta()) || !math.IsNaN(o.PhiB()) || !math.IsNaN(o.PhiD()) {
		tst.Errorf("angles of a new State must be NaN\n")
	}
	chk.String(tst, o.Context().String(), "Compression")
	chk.Float64(tst, "rho_f", 1e-17, o.RhoF(), 0)

	o.SetAlpha(3.5)
	o.SetBeta(-2)
	err := o.SetPhiB(30)
	if err != nil {
		tst.Errorf("SetPhiB failed: %v\n", err)
		return
	}
	err = o.SetPhiD(10)
	if err != nil {
		tst.Errorf("SetPhiD failed: %v\n", err)
		return
	}
	chk.Float64(tst, "alpha", 1e-14, o.Alpha(), 3.5)
	chk.Float64(tst, "beta", 1e-14, o.Beta(), -2)
	chk.Float64(tst, "phiB", 1e-14, o.PhiB(), 30)
	chk.Float64(tst, "phiD", 1e-14, o.PhiD(), 10)
	chk.Float64(tst, "signed phiD", 1e-14, o.SignedPhiD(), 10)

	err = o.SetContext("E")
	if err != nil {
		tst.Errorf("SetContext failed: %v\n", err)
		return
	}
	chk.Float64(tst, "phiD (extension)", 1e-14, o.PhiD(), 10)
	chk.Float64(tst, "signed phiD (extension)", 1e-14, o.SignedPhiD(), -10)

	// switching twice does not change the magnitude
	o.SetContext("compression")
	o.SetContext("extension")
	o.SetContext("extension")
	chk.Float64(tst, "signed phiD (again)", 1e-14, o.SignedPhiD(), -10)

	o.SetRhoF(1000)
	o.SetRhoSR(2500)
	o.SetDeltaLambdaB(0.1)
	o.SetDeltaLambdaD(0.2)
	chk.Float64(tst, "density ratio", 1e-15, o.DensityRatio(), 0.4)
	o.SetNoFluids()
	chk.Float64(tst, "density ratio (no fluids)", 1e-15, o.DensityRatio(), 0)
	chk.Float64(tst, "dlB (no fluids)", 1e-15, o.DeltaLambdaB(), 0)
	chk.Float64(tst, "dlD (no fluids)", 1e-15, o.DeltaLambdaD(), 0)

	io.Pforan("%v\n", o)
	if !strings.HasPrefix(o.String(), "State(context=Extension, beta=") {
		tst.Errorf("String is incorrect: %q\n", o.String())
	}
}

func Test_state02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state02. configuration errors")

	o := NewState()
	var perr *ParamError

	err := o.SetPhiB(-30)
	if !errors.As(err, &perr) {
		tst.Errorf("ParamError expected for negative phiB. got %v\n", err)
		return
	}
	chk.String(tst, perr.Problem, "sign")

	err = o.SetPhiB(0)
	if !errors.As(err, &perr) {
		tst.Errorf("ParamError expected for zero phiB. got %v\n", err)
		return
	}
	chk.String(tst, perr.Problem, "value")

	err = o.SetPhiD(-1)
	if !errors.As(err, &perr) {
		tst.Errorf("ParamError expected for negative phiD. got %v\n", err)
		return
	}
	chk.String(tst, perr.Name, "phiD")

	// NaN angles and negative densities
	for _, e := range []struct {
		name    string
		err     error
		problem string
	}{
		{"phiB", o.SetPhiB(math.NaN()), "value"},
		{"phiD", o.SetPhiD(math.NaN()), "value"},
		{"rho_f", o.SetRhoF(-1000), "sign"},
		{"rho_sr", o.SetRhoSR(-2500), "sign"},
		{"rho_f", o.SetRhoF(math.NaN()), "value"},
		{"rho_sr", o.Set("rho_sr", -1.0), "sign"},
		{"rho_f", o.SetParams(Params{PhiB: 30, PhiD: 10, RhoF: -1}), "sign"},
	} {
		if !errors.As(e.err, &perr) {
			tst.Errorf("%s: ParamError expected. got %v\n", e.name, e.err)
			return
		}
		chk.String(tst, perr.Name, e.name)
		chk.String(tst, perr.Problem, e.problem)
	}
	chk.Float64(tst, "rho_f", 1e-17, o.RhoF(), 0)
	chk.Float64(tst, "rho_sr", 1e-17, o.RhoSR(), 0)

	err = o.SetContext("sideways")
	if !errors.As(err, &perr) {
		tst.Errorf("ParamError expected for wrong context. got %v\n", err)
		return
	}
	chk.String(tst, perr.Name, "context")
	chk.String(tst, o.Context().String(), "Compression")

	// failed setters do not change the State
	if !math.IsNaN(o.PhiB()) || !math.IsNaN(o.PhiD()) {
		tst.Errorf("failed setters must not modify the State\n")
	}

	// dynamic setter
	err = o.Set("alpha", "3")
	if !errors.As(err, &perr) {
		tst.Errorf("ParamError expected for non-numeric alpha. got %v\n", err)
		return
	}
	chk.String(tst, perr.Problem, "type")
	err = o.Set("context", 1.0)
	if !errors.As(err, &perr) {
		tst.Errorf("ParamError expected for numeric context. got %v\n", err)
		return
	}
	chk.String(tst, perr.Problem, "type")
	err = o.Set("gamma", 1.0)
	if !errors.As(err, &perr) {
		tst.Errorf("ParamError expected for unknown name. got %v\n", err)
		return
	}
	chk.String(tst, perr.Problem, "name")
	if err = o.Set("alpha", 3); err != nil {
		tst.Errorf("Set failed: %v\n", err)
		return
	}
	chk.Float64(tst, "alpha", 1e-14, o.Alpha(), 3)
	if err = o.Set("beta", nil); err != nil {
		tst.Errorf("Set with nil must be ignored: %v\n", err)
		return
	}
}

func Test_state03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state03. fluid checks and derived quantities")

	o := newDry(tst, "c", 3.8353, 0, 30, 10)
	chk.String(tst, o.Check(), "")

	o.SetRhoF(1000)
	o.SetRhoSR(3500)
	o.SetDeltaLambdaB(0.5)
	o.SetDeltaLambdaD(0.3)
	chk.String(tst, o.Check(), "")

	d := o.Derived()
	ρ := 1000.0 / 3500.0
	c := math.Cos(3.8353 * math.Pi / 180)
	chk.Float64(tst, "density ratio", 1e-15, d.DensityRatio, ρ)
	chk.Float64(tst, "lambdaB", 1e-15, d.LambdaB, 0.5+ρ)
	chk.Float64(tst, "lambdaD", 1e-15, d.LambdaD, 0.3+ρ)
	chk.Float64(tst, "lambdaB_D2", 1e-14, d.LambdaBD2, ρ+0.5/(c*c))
	chk.Float64(tst, "lambdaD_D2", 1e-14, d.LambdaDD2, ρ+0.3/(c*c))
	αp := math.Atan((1 - ρ) / (1 - d.LambdaBD2) * math.Tan(3.8353*math.Pi/180))
	chk.Float64(tst, "alpha'", 1e-14, d.AlphaPrime, αp)
	chk.Float64(tst, "taper min", 1e-17, d.TaperMin, -Tol)
	chk.Float64(tst, "taper max", 1e-14, d.TaperMax, math.Pi/2-10*math.Pi/180)

	// α changes derived values
	o.SetAlpha(0)
	d = o.Derived()
	chk.Float64(tst, "lambdaB_D2 (alpha=0)", 1e-15, d.LambdaBD2, 0.5+ρ)
	chk.Float64(tst, "alpha' (alpha=0)", 1e-15, d.AlphaPrime, 0)

	// extension shifts the taper window
	o.SetContext("e")
	d = o.Derived()
	chk.Float64(tst, "taper max (extension)", 1e-14, d.TaperMax, math.Pi/2+10*math.Pi/180)

	// bounds
	o.SetDeltaLambdaD(0.8)
	msg := o.Check()
	io.Pforan("%s", msg)
	if !strings.Contains(msg, "delta_lambdaD") || strings.Contains(msg, "delta_lambdaB") {
		tst.Errorf("only delta_lambdaD must be reported:\n%s", msg)
	}
	o.SetDeltaLambdaD(1 - ρ)
	if !strings.Contains(o.Check(), "delta_lambdaD") {
		tst.Errorf("delta_lambdaD = 1 - density ratio must be rejected\n")
	}
	o.SetDeltaLambdaD(0)
	o.SetDeltaLambdaB(1 - ρ)
	chk.String(tst, o.Check(), "")
	o.SetDeltaLambdaB(-0.1)
	if !strings.Contains(o.Check(), "delta_lambdaB") {
		tst.Errorf("negative delta_lambdaB must be rejected\n")
	}

	// compute refuses wrong fluids
	_, err := o.Compute("alpha")
	var derr *DomainError
	if !errors.As(err, &derr) {
		tst.Errorf("DomainError expected. got %v\n", err)
	}
}

func Test_state04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state04. snapshots")

	o := newDry(tst, "e", 9.4113, 20, 30, 10)
	o.SetRhoF(1000)
	o.SetRhoSR(2500)
	o.SetDeltaLambdaB(0.1)
	p := o.Params()
	chk.String(tst, p.Context, "extension")
	chk.Float64(tst, "alpha", 1e-14, p.Alpha, 9.4113)
	chk.Float64(tst, "phiD", 1e-14, p.PhiD, 10)

	b := NewState()
	err := b.SetParams(p)
	if err != nil {
		tst.Errorf("SetParams failed: %v\n", err)
		return
	}
	checkSame(tst, b, o)

	// bulk setter is atomic
	p.PhiB = -1
	p.Alpha = 1
	err = b.SetParams(p)
	if err == nil {
		tst.Errorf("SetParams must fail with negative phiB\n")
		return
	}
	chk.Float64(tst, "alpha unchanged", 1e-14, b.Alpha(), 9.4113)

	// parameters list
	prms := o.GetPrms()
	chk.Int(tst, "number of prms", len(prms), 9)
	chk.String(tst, prms[0].N, "context")
	chk.Float64(tst, "context", 1e-17, prms[0].V, -1)
	c := NewState()
	err = c.SetPrms(prms)
	if err != nil {
		tst.Errorf("SetPrms failed: %v\n", err)
		return
	}
	checkSame(tst, c, o)

	// unset angles are not listed
	chk.Int(tst, "prms of new State", len(NewState().GetPrms()), 5)
}

// checkSame compares all parameters of two States
func checkSame(tst *testing.T, a, b *State) {
	chk.String(tst, a.Context().String(), b.Context().String())
	ra, rb := a.Table(), b.Table()
	for i := range ra {
		chk.String(tst, ra[i].N, rb[i].N)
		chk.Float64(tst, ra[i].N, 1e-12, ra[i].V, rb[i].V)
	}
}
