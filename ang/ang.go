// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ang implements conversions and normalisation of angles
package ang

import "math"

// D2R converts degrees to radians
func D2R(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// R2D converts radians to degrees
func R2D(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Normalize removes full turns from angle so that it falls into [min, max]
//  Note: max-min is the length of one turn; e.g. (-180,180) or (-π,π).
//        Infinite or NaN angles return NaN
func Normalize(angle, min, max float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return math.NaN()
	}
	turn := max - min
	for angle > max {
		angle -= turn
	}
	for angle < min {
		angle += turn
	}
	return angle
}
