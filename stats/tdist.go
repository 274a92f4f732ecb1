// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// A TDist is a Student's t-distribution with V degrees of freedom.
type TDist struct {
	V float64
}

func (t TDist) dist() distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: t.V}
}

func (t TDist) PDF(x float64) float64 {
	return t.dist().Prob(x)
}

func (t TDist) CDF(x float64) float64 {
	return t.dist().CDF(x)
}

func (t TDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nan
	}
	if p == 0 {
		return -inf
	} else if p == 1 {
		return inf
	}
	return t.dist().Quantile(p)
}

func (t TDist) Bounds() (float64, float64) {
	return -4, 4
}
