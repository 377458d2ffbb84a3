// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wedge

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/io"
	"golang.org/x/sync/errgroup"
)

// Roots holds the two solutions of α, φB or φD [deg]
//  Lower is found from the seed of the tectonic branch and Upper from the
//  seed of the gravitational collapse branch
type Roots struct {
	Lower Root
	Upper Root
}

// Betas holds the solutions of β [deg] sorted in ascending order
type Betas struct {
	Tectonic []float64
	Collapse []float64
}

// Solution holds the results of Compute
//  Note: Betas is set when Target == Beta; Roots otherwise
type Solution struct {
	Target Param
	Roots  Roots
	Betas  Betas
}

// String returns the pair of results as "(lower, upper)"
func (o *Solution) String() string {
	if o.Target == Beta {
		return io.Sf("(%v, %v)", o.Betas.Tectonic, o.Betas.Collapse)
	}
	return io.Sf("(%v, %v)", o.Roots.Lower, o.Roots.Upper)
}

// Compute computes the parameter named p ("alpha", "beta", "phiB" or "phiD")
func (o *State) Compute(p string) (sol *Solution, err error) {
	target, err := ParseParam(p)
	if err != nil {
		return
	}
	sol = &Solution{Target: target}
	switch target {
	case Beta:
		sol.Betas, err = o.ComputeBeta()
	case Alpha:
		sol.Roots, err = o.ComputeAlpha()
	case PhiB:
		sol.Roots, err = o.ComputePhiB()
	case PhiD:
		sol.Roots, err = o.ComputePhiD()
	}
	if err != nil {
		return nil, err
	}
	return
}

// ComputeAlpha computes the critical surface slopes
func (o *State) ComputeAlpha() (Roots, error) {
	return o.solveBranches(Alpha)
}

// ComputePhiB computes the bulk friction angles
func (o *State) ComputePhiB() (Roots, error) {
	return o.solveBranches(PhiB)
}

// ComputePhiD computes the magnitudes of the basal friction angle
//  Note: roots are validated on their magnitude, 0 ≤ |φD| ≤ φB, and reported
//  as magnitudes in both contexts. In extension, the signed root must then be
//  negative; a positive signed root is rejected.
func (o *State) ComputePhiD() (Roots, error) {
	return o.solveBranches(PhiD)
}

// ComputeBeta computes the basal slopes using the explicit solution
func (o *State) ComputeBeta() (res Betas, err error) {
	if err = o.preflight(); err != nil {
		return
	}
	return o.freeze().betas(), nil
}

// preflight checks the fluid parameters before computing
func (o *State) preflight() error {
	if msg := o.Check(); msg != "" {
		return &DomainError{msg}
	}
	return nil
}

// seeds returns the initial values {target, ψD, ψ0} of the lower and upper branches
func (o frozen) seeds(target Param) (lower, upper [3]float64) {
	switch target {
	case Alpha:
		return [3]float64{0, 0, 0}, [3]float64{0, o.sign * math.Pi / 2.0, o.sign * math.Pi / 4.0}
	case PhiB:
		return o.frictionSeeds(math.Pi / 7.0)
	}
	return o.frictionSeeds(math.Pi / 4.0)
}

// frictionSeeds returns the seeds used to find φB or φD
func (o frozen) frictionSeeds(guess float64) (lower, upper [3]float64) {
	lower = [3]float64{guess, math.Pi, math.Pi - o.α - o.β}
	upper = [3]float64{guess, math.Pi / 2.0, math.Pi/2.0 - o.α - o.β}
	return
}

// valid applies the validity test corresponding to target and converts to degrees
//  Note: φD is reported as a magnitude
func (o frozen) valid(target Param, x float64, ok bool) Root {
	if !ok {
		return None
	}
	if target == PhiD {
		return degreesOrNone(o.sign*x, o.validPhiD(x))
	}
	return degreesOrNone(x, o.admissible(target, x))
}

// admissible applies the validity test corresponding to target
func (o frozen) admissible(target Param, x float64) bool {
	switch target {
	case Alpha:
		return o.validAlpha(x)
	case PhiB:
		return o.validPhiB(x)
	}
	return o.validPhiD(x)
}

// solveBranches runs the two independent Newton-Raphson solves
func (o *State) solveBranches(target Param) (res Roots, err error) {

	// snapshot
	if err = o.preflight(); err != nil {
		return
	}
	sys, err := o.NewSystem(target)
	if err != nil {
		return
	}
	lower, upper := sys.s.seeds(target)

	// solve each branch
	solve := func(seed [3]float64, root *Root) func() error {
		return func() error {
			nr := NewNewtonRaphson()
			nr.ShowR = o.ShowR
			x, ok, e := nr.Solve(sys, seed)
			if e != nil {
				// stuck outside of the admissible region: no root from this seed
				var cerr *ConvergenceError
				if errors.As(e, &cerr) && !sys.s.admissible(target, cerr.X[0]) {
					*root = None
					return nil
				}
				return e
			}
			*root = sys.s.valid(target, x[0], ok)
			return nil
		}
	}
	if o.ShowR {
		// serial to keep residual logs readable
		if err = solve(lower, &res.Lower)(); err != nil {
			return Roots{}, err
		}
		if err = solve(upper, &res.Upper)(); err != nil {
			return Roots{}, err
		}
		return
	}
	var g errgroup.Group
	g.Go(solve(lower, &res.Lower))
	g.Go(solve(upper, &res.Upper))
	if err = g.Wait(); err != nil {
		return Roots{}, err
	}
	return
}
