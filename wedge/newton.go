// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wedge

import (
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Equations defines a system of three equations F(x) = 0
type Equations interface {
	Unknown() Param                          // name of x[0]
	F(x [3]float64) [3]float64               // residuals
	Jacobian(x, fx [3]float64) [3][3]float64 // dF/dx at x, given fx = F(x)
	Reduce(x [3]float64) [3]float64          // equivalent point with F(Reduce(x)) = F(x)
}

// NewtonRaphson solves F(x) = 0 for the equations of the critical wedge
//
//   x_(k+1) = x_(k) - J⁻¹・F(x_(k))
//
//  Convergence is reached when all |F_i| < Tol. A solve fails if NmaxIt
//  iterations are not enough or if J cannot be inverted. An iterate that is
//  not finite or whose target exceeds Bound cannot reach an admissible root;
//  neither can one where F or J are not finite. The solve then stops and
//  reports that no root exists from that seed. Every iterate is passed
//  through Reduce before F is evaluated.
type NewtonRaphson struct {
	Tol    float64 // tolerance on every component of F
	NmaxIt int     // max number of iterations
	Bound  float64 // max |target|; α, φB and φD admissible roots lie within half a turn
	ShowR  bool    // show residuals
}

// NewNewtonRaphson returns a solver with default settings
func NewNewtonRaphson() *NewtonRaphson {
	return &NewtonRaphson{Tol: Tol, NmaxIt: 999, Bound: math.Pi}
}

// Solve runs the iterations starting from the seed x0 = {target, ψD, ψ0}
//  Output:
//   x   -- last iterate; x[0] is set to exactly zero if |x[0]| < Tol
//   ok  -- a root was found
//   err -- ConvergenceError on failure
func (o *NewtonRaphson) Solve(sys Equations, x0 [3]float64) (x [3]float64, ok bool, err error) {

	// initial residuals
	x = x0
	fx := sys.F(x)
	if o.ShowR {
		io.Pforan("%s: seed = (%g, %g, %g)\n", sys.Unknown(), x[0], x[1], x[2])
		io.Pf("%4d%23.15e\n", 0, maxAbs(fx))
	}

	// iterations
	var Jinv mat.Dense
	var δx mat.VecDense
	for it := 1; !o.converged(fx); it++ {

		// check number of iterations
		if it > o.NmaxIt {
			return x, false, &ConvergenceError{sys.Unknown(), it - 1, x, ErrNoConvergence}
		}

		// Jacobian and its inverse
		J := sys.Jacobian(x, fx)
		if !finite(J[0][:]...) || !finite(J[1][:]...) || !finite(J[2][:]...) {
			if o.ShowR {
				io.Pfyel("%4d: Jacobian is not finite at %v\n", it, x)
			}
			return x, false, nil
		}
		Jmat := mat.NewDense(3, 3, []float64{
			J[0][0], J[0][1], J[0][2],
			J[1][0], J[1][1], J[1][2],
			J[2][0], J[2][1], J[2][2],
		})
		if e := Jinv.Inverse(Jmat); e != nil {
			if cond, isCond := e.(mat.Condition); !isCond || math.IsInf(float64(cond), 1) {
				return x, false, &ConvergenceError{sys.Unknown(), it, x, ErrSingular}
			}
		}

		// update
		δx.MulVec(&Jinv, mat.NewVecDense(3, []float64{fx[0], fx[1], fx[2]}))
		for i := 0; i < 3; i++ {
			x[i] -= δx.AtVec(i)
		}
		x = sys.Reduce(x)
		if o.runaway(x) {
			if o.ShowR {
				io.Pfyel("%4d: iterate left the admissible region: %v\n", it, x)
			}
			return x, false, nil
		}

		// new residuals
		fx = sys.F(x)
		if o.ShowR {
			io.Pf("%4d%23.15e\n", it, maxAbs(fx))
		}
		if !finite(fx[:]...) {
			return x, false, nil
		}
	}

	// results
	if math.Abs(x[0]) < o.Tol {
		x[0] = 0
	}
	return x, true, nil
}

// converged checks whether all residuals are below tolerance
func (o *NewtonRaphson) converged(fx [3]float64) bool {
	for _, f := range fx {
		if !(math.Abs(f) < o.Tol) {
			return false
		}
	}
	return true
}

// runaway checks whether an iterate cannot lead to an admissible root
func (o *NewtonRaphson) runaway(x [3]float64) bool {
	return !finite(x[:]...) || math.Abs(x[0]) > o.Bound
}

// finite tells whether all values are neither NaN nor ±Inf
func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// maxAbs returns max_i |f_i|
func maxAbs(f [3]float64) (res float64) {
	for _, v := range f {
		res = math.Max(res, math.Abs(v))
	}
	return
}
