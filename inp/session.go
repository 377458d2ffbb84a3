// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a session file (JSON or YAML)
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bclmary/eccw/wedge"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gopkg.in/yaml.v3"
)

// RangeData holds data for computing a focus parameter over a range of values of another one
type RangeData struct {
	Prm   string  `json:"prm" yaml:"prm"`     // parameter to vary; e.g. "beta"
	Begin float64 `json:"begin" yaml:"begin"` // first value
	End   float64 `json:"end" yaml:"end"`     // last value
	Np    int     `json:"np" yaml:"np"`       // number of values
}

// CurveData holds data for computing the critical envelope
type CurveData struct {
	Np int `json:"np" yaml:"np"` // number of values of α; 0 means no envelope
}

// Session holds all data read from a session file
type Session struct {

	// input data
	Desc    string     `json:"desc" yaml:"desc"`       // description of session
	Context string     `json:"context" yaml:"context"` // "compression" or "extension"
	Prms    dbf.Params `json:"prms" yaml:"prms"`       // parameters; e.g. {"n":"phiB", "v":30}
	Focus   []string   `json:"focus" yaml:"focus"`     // parameters to compute
	Range   *RangeData `json:"range" yaml:"range"`     // optional range of values of one parameter
	Curve   CurveData  `json:"curve" yaml:"curve"`     // envelope
	ShowR   bool       `json:"showr" yaml:"showr"`     // show Newton-Raphson residuals

	// derived
	Key     string        `json:"-" yaml:"-"` // file name key; e.g. "dry" for "dry.ccw"
	Targets []wedge.Param `json:"-" yaml:"-"` // validated focus
}

// ReadSession reads a session file
//  Note: files with extension ".yaml" or ".yml" are decoded as YAML; all others as JSON
func ReadSession(path string) (o *Session, err error) {

	// read file
	b, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, chk.Err("cannot read session file %q:\n%v", path, err)
	}

	// decode
	o = new(Session)
	o.SetDefault()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal session file %q:\n%v", path, err)
	}
	o.Key = io.FnKey(filepath.Base(path))

	// check data
	if err = o.PostProcess(); err != nil {
		return nil, chk.Err("session file %q is invalid:\n%v", path, err)
	}
	return
}

// SetDefault sets default values
func (o *Session) SetDefault() {
	o.Context = "compression"
}

// PostProcess checks the data just read and sets derived values
func (o *Session) PostProcess() (err error) {

	// focus
	if len(o.Focus) == 0 {
		for _, p := range wedge.MainParams {
			o.Focus = append(o.Focus, string(p))
		}
	}
	o.Targets = make([]wedge.Param, len(o.Focus))
	for i, name := range o.Focus {
		if o.Targets[i], err = wedge.ParseParam(name); err != nil {
			return
		}
	}

	// context
	if _, err = wedge.ParseContext(o.Context); err != nil {
		return
	}

	// parameters
	for _, p := range o.Prms {
		if slices.Index(wedge.ParamNames, p.N) < 0 {
			return chk.Err("parameter named %q is incorrect\n", p.N)
		}
	}

	// range
	if o.Range != nil {
		if slices.Index(wedge.ParamNames, o.Range.Prm) < 1 {
			return chk.Err("range: parameter named %q cannot be varied\n", o.Range.Prm)
		}
		if o.Range.Np < 2 {
			return chk.Err("range: number of values must be at least 2. %d is invalid\n", o.Range.Np)
		}
	}
	if o.Curve.Np < 0 || o.Curve.Np == 1 {
		return chk.Err("curve: number of values must be 0 or at least 2. %d is invalid\n", o.Curve.Np)
	}
	return
}

// NewState allocates a State with the parameters of this session
func (o *Session) NewState() (state *wedge.State, err error) {
	state = wedge.NewState()
	state.ShowR = o.ShowR
	if err = state.SetContext(o.Context); err != nil {
		return nil, err
	}
	if err = state.SetPrms(o.Prms); err != nil {
		return nil, err
	}
	return
}

// RangeValues returns the values of the range parameter; nil if there is no range
func (o *Session) RangeValues() []float64 {
	if o.Range == nil {
		return nil
	}
	return utl.LinSpace(o.Range.Begin, o.Range.End, o.Range.Np)
}

// String returns a summary of the session
func (o *Session) String() string {
	l := io.Sf("session %q: %s\n", o.Key, o.Desc)
	l += io.Sf("  context = %s\n", o.Context)
	for _, p := range o.Prms {
		l += io.Sf("  %-14s = %g\n", p.N, p.V)
	}
	l += io.Sf("  focus   = %v\n", o.Focus)
	if o.Range != nil {
		l += io.Sf("  range   = %s in [%g, %g] with %d values\n", o.Range.Prm, o.Range.Begin, o.Range.End, o.Range.Np)
	}
	return l
}
