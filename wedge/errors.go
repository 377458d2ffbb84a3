// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wedge

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

var (
	// ErrNoConvergence is wrapped by ConvergenceError when the iteration ceiling is reached
	ErrNoConvergence = errors.New("Newton-Raphson did not converge")

	// ErrSingular is wrapped by ConvergenceError when the Jacobian cannot be inverted
	ErrSingular = errors.New("singular Jacobian matrix")
)

// ParamError reports a configuration error found by a setter
//  Problem is one of "type", "sign" or "value"
type ParamError struct {
	Name    string // parameter name; e.g. "phiB"
	Problem string // what is wrong
	Want    string // what is expected
}

// Error implements error
func (o *ParamError) Error() string {
	return io.Sf("wedge: wrong %s for '%s': must be %s", o.Problem, o.Name, o.Want)
}

// DomainError reports fluid ratios out of their admissible bounds
type DomainError struct {
	Msg string // message returned by State.Check
}

// Error implements error
func (o *DomainError) Error() string {
	return "wedge: invalid fluid parameters:\n" + o.Msg
}

// ConvergenceError holds the last iterate of a failed Newton-Raphson solve
type ConvergenceError struct {
	Target Param      // unknown being solved
	It     int        // number of iterations performed
	X      [3]float64 // last iterate {target, ψD, ψ0} in radians
	Err    error      // ErrNoConvergence or ErrSingular
}

// Error implements error
func (o *ConvergenceError) Error() string {
	return io.Sf("wedge: solving %s: %v after %d iterations; last values (rad): %s=%g, psiD=%g, psi0=%g",
		o.Target, o.Err, o.It, o.Target, o.X[0], o.X[1], o.X[2])
}

// Unwrap returns the sentinel error
func (o *ConvergenceError) Unwrap() error {
	return o.Err
}
