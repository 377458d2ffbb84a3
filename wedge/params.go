// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wedge

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Params holds all parameters of a State
//  Note: angles in degrees; NaN angles are unset
type Params struct {
	Context      string  `json:"context" yaml:"context"`
	Alpha        float64 `json:"alpha" yaml:"alpha"`
	Beta         float64 `json:"beta" yaml:"beta"`
	PhiB         float64 `json:"phiB" yaml:"phiB"`
	PhiD         float64 `json:"phiD" yaml:"phiD"`
	RhoF         float64 `json:"rho_f" yaml:"rho_f"`
	RhoSR        float64 `json:"rho_sr" yaml:"rho_sr"`
	DeltaLambdaB float64 `json:"delta_lambdaB" yaml:"delta_lambdaB"`
	DeltaLambdaD float64 `json:"delta_lambdaD" yaml:"delta_lambdaD"`
}

// ParamNames lists the keys accepted by Set, in display order
var ParamNames = []string{"context", "beta", "alpha", "phiB", "phiD", "rho_f", "rho_sr", "delta_lambdaB", "delta_lambdaD"}

// Params returns a snapshot of all parameters
func (o *State) Params() Params {
	return Params{
		Context:      strings.ToLower(o.ctx.String()),
		Alpha:        o.Alpha(),
		Beta:         o.Beta(),
		PhiB:         o.PhiB(),
		PhiD:         o.PhiD(),
		RhoF:         o.ρf,
		RhoSR:        o.ρsr,
		DeltaLambdaB: o.ΔλB,
		DeltaLambdaD: o.ΔλD,
	}
}

// SetParams sets all parameters at once
//  Note: NaN angles are left unset; the State is unchanged if an error occurs
func (o *State) SetParams(p Params) (err error) {
	tmp := *o
	if p.Context != "" {
		if err = tmp.SetContext(p.Context); err != nil {
			return
		}
	}
	if !math.IsNaN(p.PhiB) {
		if err = tmp.SetPhiB(p.PhiB); err != nil {
			return
		}
	}
	if !math.IsNaN(p.PhiD) {
		if err = tmp.SetPhiD(p.PhiD); err != nil {
			return
		}
	}
	if !math.IsNaN(p.Alpha) {
		tmp.SetAlpha(p.Alpha)
	}
	if !math.IsNaN(p.Beta) {
		tmp.SetBeta(p.Beta)
	}
	if err = tmp.SetRhoF(p.RhoF); err != nil {
		return
	}
	if err = tmp.SetRhoSR(p.RhoSR); err != nil {
		return
	}
	tmp.ΔλB, tmp.ΔλD = p.DeltaLambdaB, p.DeltaLambdaD
	*o = tmp
	return
}

// Set sets a parameter by name
//  Input:
//   key   -- one of ParamNames
//   value -- a number; or a string for "context". nil values are ignored
func (o *State) Set(key string, value interface{}) error {
	if value == nil {
		return nil
	}
	if key == "context" {
		label, ok := value.(string)
		if !ok {
			return &ParamError{key, "type", "a string"}
		}
		return o.SetContext(label)
	}
	v, ok := toFloat(value)
	if !ok {
		return &ParamError{key, "type", "a number"}
	}
	return o.setNumber(key, v)
}

// setNumber sets a numeric parameter by name
func (o *State) setNumber(key string, v float64) error {
	switch key {
	case "alpha":
		o.SetAlpha(v)
	case "beta":
		o.SetBeta(v)
	case "phiB":
		return o.SetPhiB(v)
	case "phiD":
		return o.SetPhiD(v)
	case "rho_f":
		return o.SetRhoF(v)
	case "rho_sr":
		return o.SetRhoSR(v)
	case "delta_lambdaB":
		o.SetDeltaLambdaB(v)
	case "delta_lambdaD":
		o.SetDeltaLambdaD(v)
	case "context":
		if v > 0 {
			o.ctx = Compression
		} else {
			o.ctx = Extension
		}
	default:
		return &ParamError{key, "name", "one of " + strings.Join(ParamNames, ", ")}
	}
	return nil
}

// toFloat converts numbers to float64
func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

// GetPrms returns all parameters as a list of named values
//  Note: the context is +1 (compression) or -1 (extension); unset angles are skipped
func (o *State) GetPrms() (prms dbf.Params) {
	prms = append(prms, &dbf.P{N: "context", V: o.ctx.Sign()})
	for _, r := range o.Table() {
		if math.IsNaN(r.V) {
			continue
		}
		prms = append(prms, &dbf.P{N: r.N, V: r.V})
	}
	return
}

// SetPrms sets parameters from a list of named values
//  Note: a "context" entry is +1 for compression and -1 for extension
func (o *State) SetPrms(prms dbf.Params) (err error) {
	for _, p := range prms {
		if err = o.setNumber(p.N, p.V); err != nil {
			return chk.Err("cannot set parameter %q:\n%v", p.N, err)
		}
	}
	return
}

// Row is a named value
type Row struct {
	N string  // name
	V float64 // value
}

// Table returns the numeric parameters in display order
func (o *State) Table() []Row {
	return []Row{
		{"beta", o.Beta()},
		{"alpha", o.Alpha()},
		{"phiB", o.PhiB()},
		{"phiD", o.PhiD()},
		{"rho_f", o.ρf},
		{"rho_sr", o.ρsr},
		{"delta_lambdaB", o.ΔλB},
		{"delta_lambdaD", o.ΔλD},
	}
}
