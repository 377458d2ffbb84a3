// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wedge

import "math"

// Tol is the numerical tolerance used for convergence and validity tests
const Tol = 1e-15

// Derived holds quantities computed from the parameters of a State
//  Note: angles in radians
type Derived struct {
	DensityRatio float64 // ρf/ρsr; equivalent to hydrostatic pressure
	LambdaB      float64 // bulk λ as Hubbert and Rubey: ΔλB + ρf/ρsr
	LambdaD      float64 // basal λ as Hubbert and Rubey: ΔλD + ρf/ρsr
	LambdaBD2    float64 // bulk λ as Dahlen (1984); depends on α
	LambdaDD2    float64 // basal λ as Dahlen (1984); depends on α
	AlphaPrime   float64 // modified surface slope α′; depends on α
	TaperMin     float64 // lower bound of α+β
	TaperMax     float64 // upper bound of α+β
}

// DensityRatio returns ρf/ρsr or zero if ρsr is zero
func (o *State) DensityRatio() float64 {
	if o.ρsr == 0 {
		return 0
	}
	return o.ρf / o.ρsr
}

// Derived computes all dependent quantities at the current parameters
func (o *State) Derived() Derived {
	f := o.freeze()
	return Derived{f.ρ, f.λB, f.λD, f.λB2, f.λD2, f.αp, f.taperMin, f.taperMax}
}

// frozen is an immutable snapshot of a State including derived quantities
//  Note: φD is signed
type frozen struct {
	α, β, φB, φD       float64
	sign               float64
	ρ, λB, λD          float64
	λB2, λD2, αp       float64
	taperMin, taperMax float64
}

// freeze takes a snapshot of the State
func (o *State) freeze() (f frozen) {
	f.α, f.β, f.φB = o.α, o.β, o.φB
	f.sign = o.ctx.Sign()
	f.φD = f.sign * o.φD
	f.ρ = o.DensityRatio()
	f.λB = o.ΔλB + f.ρ
	f.λD = o.ΔλD + f.ρ
	f.λB2, f.λD2, f.αp = f.at(f.α)
	f.taperMin = -Tol
	f.taperMax = math.Pi/2.0 - f.φD + Tol
	return
}

// at computes the α-dependent quantities {λB′, λD′, α′} for a given α
func (o frozen) at(α float64) (λB2, λD2, αp float64) {
	λB2 = convertLambda(α, o.λB, o.ρ)
	λD2 = convertLambda(α, o.λD, o.ρ)
	αp = math.Atan((1 - o.ρ) / (1 - λB2) * math.Tan(α))
	return
}

// validTaper tells whether α+β is within the taper window
func (o frozen) validTaper(α, β float64) bool {
	return o.taperMin < α+β && α+β < o.taperMax
}

// convertLambda converts λ from the Hubbert-Rubey to the Dahlen parametrisation
//  Reverse of equation (A3) of Yuan et al. (2015)
func convertLambda(α, λ, ρ float64) float64 {
	c := math.Cos(α)
	return ρ + (λ-ρ)/(c*c)
}
