// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wedge

import "math"

// JacobianStep is the forward finite-difference step used to build the Jacobian
const JacobianStep = 1e-6

// System implements the three equations of the critical wedge
//
//   x = {target, ψD, ψ0}
//
//   f1 = α + β - ψD + ψ0
//   f2 = sin(2ψD + φD) - (1-λD′)・sin(φD) / ((1-λB′)・sin(φB)) - (λD′-λB′)・sin(φD)・cos(2ψ0) / (1-λB′)
//   f3 = sin(2ψ0 + α′)・sin(φB) - sin(α′)
//
//  The target replaces α, φB or φD. When the target is α, the quantities λB′,
//  λD′ and α′ are recomputed with the trial α; otherwise they are kept at
//  their values for the State's α.
type System struct {
	Target Param  // unknown: Alpha, PhiB or PhiD
	s      frozen // snapshot of the wedge
}

// NewSystem returns the equations for a given target using a snapshot of the State
func (o *State) NewSystem(target Param) (sys *System, err error) {
	if target != Alpha && target != PhiB && target != PhiD {
		return nil, &ParamError{"target", "value", "one of 'alpha', 'phiB' or 'phiD'"}
	}
	return &System{target, o.freeze()}, nil
}

// Unknown returns the target
func (o *System) Unknown() Param {
	return o.Target
}

// F computes the residuals
func (o *System) F(x [3]float64) (f [3]float64) {

	// values at runtime
	α, φB, φD := o.s.α, o.s.φB, o.s.φD
	λB2, λD2, αp := o.s.λB2, o.s.λD2, o.s.αp
	switch o.Target {
	case Alpha:
		α = x[0]
		λB2, λD2, αp = o.s.at(α)
	case PhiB:
		φB = x[0]
	case PhiD:
		φD = x[0]
	}
	ψD, ψ0 := x[1], x[2]

	// residuals
	f[0] = α + o.s.β - ψD + ψ0
	f[1] = math.Sin(2*ψD+φD) -
		(1-λD2)*math.Sin(φD)/(1-λB2)/math.Sin(φB) -
		(λD2-λB2)*math.Sin(φD)*math.Cos(2*ψ0)/(1-λB2)
	f[2] = math.Sin(2*ψ0+αp)*math.Sin(φB) - math.Sin(αp)
	return
}

// Reduce shifts ψD and ψ0 by the same multiple of π such that ψ0 ∈ [-π/2, π/2]
//  Note: f1 depends on ψD - ψ0 only; f2 and f3 on 2ψD and 2ψ0
func (o *System) Reduce(x [3]float64) [3]float64 {
	k := math.Round(x[2] / math.Pi)
	if k != 0 {
		x[1] -= k * math.Pi
		x[2] -= k * math.Pi
	}
	return x
}

// Jacobian computes J = dF/dx with forward differences
//  Input:
//   x  -- point
//   fx -- F(x)
//  Output:
//   J[i][j] = (F_i(x + h・e_j) - F_i(x)) / h
func (o *System) Jacobian(x, fx [3]float64) (J [3][3]float64) {
	for j := 0; j < 3; j++ {
		y := x
		y[j] += JacobianStep
		fy := o.F(y)
		for i := 0; i < 3; i++ {
			J[i][j] = (fy[i] - fx[i]) / JacobianStep
		}
	}
	return
}
