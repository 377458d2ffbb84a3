// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wedge

import "strings"

// Context defines the tectonic context of the wedge
type Context int

const (
	Compression Context = 1  // thrust wedge; φD is positive
	Extension   Context = -1 // normal wedge; φD is negative
)

// ParseContext converts labels such as "compression", "C", "extension" or "e"
func ParseContext(label string) (Context, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "compression", "c":
		return Compression, nil
	case "extension", "e":
		return Extension, nil
	}
	return Compression, &ParamError{"context", "value", "'compression' or 'extension'"}
}

// Sign returns +1 for compression and -1 for extension
func (o Context) Sign() float64 {
	if o == Extension {
		return -1
	}
	return 1
}

// String returns "Compression" or "Extension"
func (o Context) String() string {
	if o == Extension {
		return "Extension"
	}
	return "Compression"
}

// Param names one of the four main parameters that can be solved for
type Param string

const (
	Alpha Param = "alpha" // surface slope
	Beta  Param = "beta"  // basal slope
	PhiB  Param = "phiB"  // bulk friction angle
	PhiD  Param = "phiD"  // basal friction angle
)

// MainParams lists the parameters accepted by Compute, in display order
var MainParams = []Param{Alpha, Beta, PhiB, PhiD}

// ParseParam validates a parameter name
func ParseParam(name string) (Param, error) {
	for _, p := range MainParams {
		if string(p) == name {
			return p, nil
		}
	}
	return "", &ParamError{"parameter", "value", "one of 'alpha', 'beta', 'phiB' or 'phiD'"}
}
