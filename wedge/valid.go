// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wedge

import (
	"math"

	"github.com/bclmary/eccw/ang"
	"github.com/cpmech/gosl/io"
)

// Root holds one solution of a branch
//  Note: Val is in degrees; Ok is false when the branch has no physical solution
type Root struct {
	Val float64
	Ok  bool
}

// None is the absent root
var None = Root{math.NaN(), false}

// String returns the value or "None"
func (o Root) String() string {
	if !o.Ok {
		return "None"
	}
	return io.Sf("%g", o.Val)
}

// validAlpha tells whether α gives a taper inside the window
func (o frozen) validAlpha(α float64) bool {
	return o.validTaper(α, o.β)
}

// validPhiB tells whether φB is an admissible bulk friction angle
func (o frozen) validPhiB(φB float64) bool {
	return -Tol < φB && φB < math.Pi+Tol
}

// validPhiD tells whether the signed φD is admissible; i.e. its magnitude does not exceed φB
func (o frozen) validPhiD(φD float64) bool {
	m := o.sign * φD
	return -Tol < m && m < o.φB+Tol
}

// degreesOrNone converts a raw root [rad] into a Root [deg]
func degreesOrNone(x float64, ok bool) Root {
	if !ok {
		return None
	}
	return Root{ang.R2D(x), true}
}
