// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of results as tables, JSON and envelope curves
package out

import (
	"encoding/json"
	goio "io"
	"math"
	"strings"

	"github.com/bclmary/eccw/wedge"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// constants
var (
	NumFmt = "%.4f" // format of numbers in tables
	Absent = "--"   // text of absent solutions in tables
)

// Record holds the parameters of a State and the solutions computed with them
type Record struct {
	Params    wedge.Params      // snapshot of parameters
	Solutions []*wedge.Solution // one solution per focus parameter
}

// Report collects records
type Report struct {
	Desc    string    // description
	Records []*Record // results
}

// NewReport returns a new Report
func NewReport(desc string) *Report {
	return &Report{Desc: desc}
}

// Add computes all focus parameters with the current State and records the results
func (o *Report) Add(state *wedge.State, focus []wedge.Param) (rec *Record, err error) {
	rec = &Record{Params: state.Params()}
	for _, p := range focus {
		sol, e := state.Compute(string(p))
		if e != nil {
			return nil, chk.Err("record %d: cannot compute %s:\n%v", len(o.Records), p, e)
		}
		rec.Solutions = append(rec.Solutions, sol)
	}
	o.Records = append(o.Records, rec)
	return
}

// WriteTable writes all records as a table
func (o *Report) WriteTable(w goio.Writer) (err error) {
	if len(o.Records) == 0 {
		return
	}
	if o.Desc != "" {
		if _, err = goio.WriteString(w, io.Sf("# %s\n", o.Desc)); err != nil {
			return
		}
	}

	// header
	first := o.Records[0]
	l := io.Sf("# context: %s\n", first.Params.Context)
	l += io.Sf("%10s%10s%10s%10s", "beta", "alpha", "phiB", "phiD")
	if hasFluids(first.Params) {
		l += io.Sf("%10s%10s%10s%10s", "rho_f", "rho_sr", "dlB", "dlD")
	}
	for _, sol := range first.Solutions {
		l += io.Sf("  %-24s", "=> "+string(sol.Target))
	}
	l += "\n"

	// rows
	for _, rec := range o.Records {
		p := rec.Params
		l += io.Sf("%10s%10s%10s%10s", num(p.Beta), num(p.Alpha), num(p.PhiB), num(p.PhiD))
		if hasFluids(first.Params) {
			l += io.Sf("%10g%10g%10g%10g", p.RhoF, p.RhoSR, p.DeltaLambdaB, p.DeltaLambdaD)
		}
		for _, sol := range rec.Solutions {
			l += io.Sf("  %-24s", Cell(sol))
		}
		l += "\n"
	}
	_, err = goio.WriteString(w, l)
	return
}

// Cell formats a solution for tables
//  Examples: "3.4365 | 23.9463", "-- | 69.6780" or "0.0000 | 35.7316, 69.6780"
func Cell(sol *wedge.Solution) string {
	if sol.Target == wedge.Beta {
		return seq(sol.Betas.Tectonic) + " | " + seq(sol.Betas.Collapse)
	}
	return root(sol.Roots.Lower) + " | " + root(sol.Roots.Upper)
}

// WriteJSON writes all records in JSON format
//  Note: absent solutions and unset parameters are written as null
func (o *Report) WriteJSON(w goio.Writer) error {
	res := jsonReport{Desc: o.Desc, Records: make([]jsonRecord, len(o.Records))}
	for i, rec := range o.Records {
		p := rec.Params
		res.Records[i].Params = jsonParams{
			Context:      p.Context,
			Alpha:        nullable(p.Alpha),
			Beta:         nullable(p.Beta),
			PhiB:         nullable(p.PhiB),
			PhiD:         nullable(p.PhiD),
			RhoF:         p.RhoF,
			RhoSR:        p.RhoSR,
			DeltaLambdaB: p.DeltaLambdaB,
			DeltaLambdaD: p.DeltaLambdaD,
		}
		for _, sol := range rec.Solutions {
			s := jsonSolution{Target: string(sol.Target)}
			if sol.Target == wedge.Beta {
				tec, col := nonNil(sol.Betas.Tectonic), nonNil(sol.Betas.Collapse)
				s.Tectonic, s.Collapse = &tec, &col
			} else {
				s.Roots = []*float64{rootPtr(sol.Roots.Lower), rootPtr(sol.Roots.Upper)}
			}
			res.Records[i].Solutions = append(res.Records[i].Solutions, s)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteCurve writes the two curves of an envelope as blocks of (β, α) columns
func WriteCurve(w goio.Writer, env *wedge.Envelope) (err error) {
	l := ""
	for k, c := range []wedge.Curve{env.Upper, env.Lower} {
		if k > 0 {
			l += "\n\n"
		}
		l += io.Sf("# %s\n", []string{"upper: normal faults", "lower: inverse faults"}[k])
		l += io.Sf("%12s%12s\n", "beta", "alpha")
		for i := range c.Betas {
			l += io.Sf("%12.6f%12.6f\n", c.Betas[i], c.Alphas[i])
		}
	}
	_, err = goio.WriteString(w, l)
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

type jsonParams struct {
	Context      string   `json:"context"`
	Alpha        *float64 `json:"alpha"`
	Beta         *float64 `json:"beta"`
	PhiB         *float64 `json:"phiB"`
	PhiD         *float64 `json:"phiD"`
	RhoF         float64  `json:"rho_f"`
	RhoSR        float64  `json:"rho_sr"`
	DeltaLambdaB float64  `json:"delta_lambdaB"`
	DeltaLambdaD float64  `json:"delta_lambdaD"`
}

type jsonSolution struct {
	Target   string     `json:"target"`
	Roots    []*float64 `json:"roots,omitempty"`    // {lower, upper}
	Tectonic *[]float64 `json:"tectonic,omitempty"` // β only
	Collapse *[]float64 `json:"collapse,omitempty"` // β only
}

type jsonRecord struct {
	Params    jsonParams     `json:"params"`
	Solutions []jsonSolution `json:"solutions"`
}

type jsonReport struct {
	Desc    string       `json:"desc"`
	Records []jsonRecord `json:"records"`
}

func hasFluids(p wedge.Params) bool {
	return p.RhoF != 0 || p.RhoSR != 0 || p.DeltaLambdaB != 0 || p.DeltaLambdaD != 0
}

func num(x float64) string {
	if math.IsNaN(x) {
		return Absent
	}
	return io.Sf(NumFmt, x)
}

func root(r wedge.Root) string {
	if !r.Ok {
		return Absent
	}
	return io.Sf(NumFmt, r.Val)
}

func seq(values []float64) string {
	if len(values) == 0 {
		return Absent
	}
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = io.Sf(NumFmt, v)
	}
	return strings.Join(s, ", ")
}

func nullable(x float64) *float64 {
	if math.IsNaN(x) {
		return nil
	}
	return &x
}

func rootPtr(r wedge.Root) *float64 {
	if !r.Ok {
		return nil
	}
	v := r.Val
	return &v
}

func nonNil(values []float64) []float64 {
	if values == nil {
		return []float64{}
	}
	return values
}
