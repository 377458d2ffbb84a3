// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wedge

import (
	"math"
	"sort"

	"github.com/bclmary/eccw/ang"
)

// asinBranchOffset is added to the candidate built with the second roots of
// both ψ0 and ψD so that it lands on the tectonic (lower) branch
const asinBranchOffset = math.Pi

// indices of β candidates; d = down (tectonic), u = up (collapse)
const (
	iDL = iota // first ψ0, first ψD
	iUR        // first ψ0, second ψD
	iDR        // second ψ0, first ψD (+π)
	iUL        // second ψ0, second ψD
	nCandidates
)

// betaCandidates computes the four explicit values of β at a given α
//  Note: ok[i] is false when the corresponding arcsine is not defined or
//        when the candidate falls outside the taper window
func (o frozen) betaCandidates(α float64) (β [nCandidates]float64, ok [nCandidates]bool) {

	// α-dependent values
	λB2, λD2, αp := o.at(α)
	if !(-o.φB <= αp && αp <= o.φB) {
		return
	}

	// ψ0
	x := clampUnit(math.Sin(αp) / math.Sin(o.φB))
	ψ0a := (math.Asin(x) - αp) / 2.0
	ψ0b := (math.Pi - math.Asin(x) - αp) / 2.0

	// ψD and β
	if ψD1, ψD2, found := o.psiD(ψ0a, λB2, λD2); found {
		β[iDL], ok[iDL] = ψD1-ψ0a-α, true
		β[iUR], ok[iUR] = ψD2-ψ0a-α, true
	}
	if ψD1, ψD2, found := o.psiD(ψ0b, λB2, λD2); found {
		β[iDR], ok[iDR] = ψD1-ψ0b-α+asinBranchOffset, true
		β[iUL], ok[iUL] = ψD2-ψ0b-α, true
	}

	// filter
	for i := 0; i < nCandidates; i++ {
		ok[i] = ok[i] && o.validTaper(α, β[i])
	}
	return
}

// psiD computes the two values of ψD corresponding to ψ0 by inverting f2
func (o frozen) psiD(ψ0, λB2, λD2 float64) (ψD1, ψD2 float64, found bool) {
	t := (1-λD2)*math.Sin(o.φD)/(1-λB2)/math.Sin(o.φB) +
		(λD2-λB2)*math.Sin(o.φD)*math.Cos(2*ψ0)/(1-λB2)
	if t > 1+Tol || t < -1-Tol || math.IsNaN(t) {
		return
	}
	t = clampUnit(t)
	ψD1 = (math.Asin(t) - o.φD) / 2.0
	ψD2 = (math.Pi - math.Asin(t) - o.φD) / 2.0
	return ψD1, ψD2, true
}

// betas computes the tectonic and collapse values of β [deg] at the frozen α
//  Note: a value may belong to both sets
func (o frozen) betas() (res Betas) {
	β, ok := o.betaCandidates(o.α)
	res.Tectonic = collect(β, ok, iDL, iDR)
	res.Collapse = collect(β, ok, iUL, iUR)
	return
}

// collect returns the sorted valid candidates [deg] among the given indices
func collect(β [nCandidates]float64, ok [nCandidates]bool, idx ...int) (res []float64) {
	res = make([]float64, 0, len(idx))
	for _, i := range idx {
		if ok[i] {
			res = append(res, ang.R2D(β[i]))
		}
	}
	sort.Float64s(res)
	return
}

// clampUnit clamps x to [-1, 1]
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
