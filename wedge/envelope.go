// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wedge

import (
	"math"

	"github.com/bclmary/eccw/ang"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Curve holds points (β, α) [deg] of the critical envelope
type Curve struct {
	Betas  []float64
	Alphas []float64
}

// Envelope holds the two critical curves in the (β, α) plane
//  Upper corresponds to normal faulting (collapse) and Lower to inverse faulting (tectonic)
type Envelope struct {
	Upper Curve
	Lower Curve
}

// AlphaMax returns the maximum surface slope [deg] supported by the bulk
func (o *State) AlphaMax() float64 {
	f := o.freeze()
	return ang.R2D(math.Atan((1 - f.λB) / (1 - f.ρ) * math.Tan(f.φB)))
}

// Envelope computes the critical envelope using np values of α in [-αmax, αmax[
//  Note: the current α and β of the State are not used
func (o *State) Envelope(np int) (env *Envelope, err error) {
	if np < 2 {
		return nil, chk.Err("number of points must be at least 2. %d is invalid\n", np)
	}
	if math.IsNaN(o.φB) || math.IsNaN(o.φD) {
		return nil, chk.Err("phiB and phiD must be set before computing the envelope\n")
	}
	if err = o.preflight(); err != nil {
		return
	}

	// α values; the last one (αmax) is excluded
	f := o.freeze()
	αmax := ang.D2R(o.AlphaMax())
	αs := utl.LinSpace(-αmax, αmax, np+1)[:np]

	// candidates
	var dl, dr, ul, ur Curve
	for _, α := range αs {
		β, ok := f.betaCandidates(α)
		dl.add(β[iDL], α, ok[iDL])
		dr.add(β[iDR], α, ok[iDR])
		ul.add(β[iUL], α, ok[iUL])
		ur.add(β[iUR], α, ok[iUR])
	}

	// join branches
	env = new(Envelope)
	env.Upper.join(ul, false)
	env.Upper.join(ur, true)
	env.Lower.join(dl, true)
	env.Lower.join(dr, false)
	return
}

// add appends a point [rad] converted to degrees if ok
func (o *Curve) add(β, α float64, ok bool) {
	if ok {
		o.Betas = append(o.Betas, ang.R2D(β))
		o.Alphas = append(o.Alphas, ang.R2D(α))
	}
}

// join appends the points of another curve, possibly in reverse order
func (o *Curve) join(c Curve, reverse bool) {
	n := len(c.Betas)
	for k := 0; k < n; k++ {
		i := k
		if reverse {
			i = n - 1 - k
		}
		o.Betas = append(o.Betas, c.Betas[i])
		o.Alphas = append(o.Alphas, c.Alphas[i])
	}
}
