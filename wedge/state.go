// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wedge implements the exact solution of the critical Coulomb wedge
//
//  Based on Dahlen (1984) and Yuan et al. (2015), doi:10.1002/2014JB011612
//
//            surface  α > 0 (downward)
//     ---------------------------------___
//      \                                   ---___
//        \    bulk: φB, ΔλB                       ---___
//          \                                            ---o
//            \                                     ___---
//              \_____________________________---     β > 0 (upward)
//                 base (décollement): φD, ΔλD
//
//  Given all but one of {α, β, φB, φD} the remaining one is computed. Two
//  solutions generally exist: one on the tectonic branch and one on the
//  gravitational collapse branch.
package wedge

import (
	"math"

	"github.com/bclmary/eccw/ang"
	"github.com/cpmech/gosl/io"
)

// State holds the physical parameters of a wedge
//  Note: angles are stored in radians and exposed in degrees.
//        φD is stored as a magnitude; its sign is given by the context.
//        A State and the computations performed on it must be used by one
//        goroutine at a time; use one State per parameter set otherwise.
type State struct {

	// input
	α   float64 // surface slope
	β   float64 // basal slope
	φB  float64 // bulk friction angle
	φD  float64 // basal friction angle (magnitude)
	ctx Context // tectonic context
	ρf  float64 // volumetric mass density of fluids
	ρsr float64 // volumetric mass density of saturated rock
	ΔλB float64 // bulk fluids overpressure ratio
	ΔλD float64 // basal fluids overpressure ratio

	// options
	ShowR bool // show Newton-Raphson residuals
}

// NewState returns a State with meaningless (NaN) angles, no fluids and compression context
func NewState() (o *State) {
	o = new(State)
	o.Reset()
	return
}

// Reset sets all parameters to their initial (meaningless) values
func (o *State) Reset() {
	o.α, o.β, o.φB, o.φD = math.NaN(), math.NaN(), math.NaN(), math.NaN()
	o.ctx = Compression
	o.ρf, o.ρsr, o.ΔλB, o.ΔλD = 0, 0, 0, 0
}

// setters ///////////////////////////////////////////////////////////////////////////////////////

// SetAlpha sets the surface slope [deg], positive downward
func (o *State) SetAlpha(deg float64) {
	o.α = ang.D2R(deg)
}

// SetBeta sets the basal slope [deg], positive upward
func (o *State) SetBeta(deg float64) {
	o.β = ang.D2R(deg)
}

// SetPhiB sets the bulk friction angle [deg]; it must be positive
func (o *State) SetPhiB(deg float64) error {
	if math.IsNaN(deg) {
		return &ParamError{"phiB", "value", "a number"}
	}
	if deg < 0 {
		return &ParamError{"phiB", "sign", "> 0"}
	}
	if deg == 0 {
		return &ParamError{"phiB", "value", "non zero"}
	}
	o.φB = ang.D2R(deg)
	return nil
}

// SetPhiD sets the magnitude of the basal friction angle [deg]
func (o *State) SetPhiD(deg float64) error {
	if math.IsNaN(deg) {
		return &ParamError{"phiD", "value", "a number"}
	}
	if deg < 0 {
		return &ParamError{"phiD", "sign", ">= 0"}
	}
	o.φD = ang.D2R(deg)
	return nil
}

// SetContext sets the tectonic context; e.g. "compression", "c", "extension" or "e"
func (o *State) SetContext(label string) error {
	ctx, err := ParseContext(label)
	if err != nil {
		return err
	}
	o.ctx = ctx
	return nil
}

// SetRhoF sets the volumetric mass density of fluids; it must not be negative
func (o *State) SetRhoF(v float64) error {
	if err := checkDensity("rho_f", v); err != nil {
		return err
	}
	o.ρf = v
	return nil
}

// SetRhoSR sets the volumetric mass density of saturated rock; it must not be negative
func (o *State) SetRhoSR(v float64) error {
	if err := checkDensity("rho_sr", v); err != nil {
		return err
	}
	o.ρsr = v
	return nil
}

// checkDensity checks a volumetric mass density
func checkDensity(name string, v float64) error {
	if math.IsNaN(v) {
		return &ParamError{name, "value", "a number"}
	}
	if v < 0 {
		return &ParamError{name, "sign", ">= 0"}
	}
	return nil
}

// SetDeltaLambdaB sets the bulk fluids overpressure ratio
func (o *State) SetDeltaLambdaB(v float64) {
	o.ΔλB = v
}

// SetDeltaLambdaD sets the basal fluids overpressure ratio
func (o *State) SetDeltaLambdaD(v float64) {
	o.ΔλD = v
}

// SetNoFluids sets all fluid parameters to zero
func (o *State) SetNoFluids() {
	o.ρf, o.ρsr, o.ΔλB, o.ΔλD = 0, 0, 0, 0
}

// getters ///////////////////////////////////////////////////////////////////////////////////////

// Alpha returns the surface slope [deg]
func (o *State) Alpha() float64 { return ang.R2D(o.α) }

// Beta returns the basal slope [deg]
func (o *State) Beta() float64 { return ang.R2D(o.β) }

// PhiB returns the bulk friction angle [deg]
func (o *State) PhiB() float64 { return ang.R2D(o.φB) }

// PhiD returns the magnitude of the basal friction angle [deg]
func (o *State) PhiD() float64 { return ang.R2D(o.φD) }

// SignedPhiD returns the basal friction angle [deg] with the sign of the context
func (o *State) SignedPhiD() float64 { return ang.R2D(o.ctx.Sign() * o.φD) }

// Context returns the tectonic context
func (o *State) Context() Context { return o.ctx }

// RhoF returns the volumetric mass density of fluids
func (o *State) RhoF() float64 { return o.ρf }

// RhoSR returns the volumetric mass density of saturated rock
func (o *State) RhoSR() float64 { return o.ρsr }

// DeltaLambdaB returns the bulk fluids overpressure ratio
func (o *State) DeltaLambdaB() float64 { return o.ΔλB }

// DeltaLambdaD returns the basal fluids overpressure ratio
func (o *State) DeltaLambdaD() float64 { return o.ΔλD }

// checks ////////////////////////////////////////////////////////////////////////////////////////

// Check checks the fluid overpressure ratios
//  Output: an empty string if all ratios are within bounds; otherwise one line
//          per wrong parameter. Check never panics so callers can gather
//          messages from other fields before reporting.
func (o *State) Check() (errors string) {
	hydro := 1.0 - o.DensityRatio()
	if !(0 <= o.ΔλD && o.ΔλD < hydro) {
		errors += (&ParamError{"delta_lambdaD", "value", io.Sf("in [0 : %g[", hydro)}).Error() + "\n"
	}
	if !(0 <= o.ΔλB && o.ΔλB <= hydro) {
		errors += (&ParamError{"delta_lambdaB", "value", io.Sf("in [0 : %g]", hydro)}).Error() + "\n"
	}
	return
}

// String returns a one-line description of all parameters
func (o *State) String() string {
	return io.Sf("State(context=%s, beta=%g, alpha=%g, phiB=%g, phiD=%g, rho_f=%g, rho_sr=%g, delta_lambdaB=%g, delta_lambdaD=%g)",
		o.ctx, o.Beta(), o.Alpha(), o.PhiB(), o.PhiD(), o.ρf, o.ρsr, o.ΔλB, o.ΔλD)
}
