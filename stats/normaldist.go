// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = NormalDist{0, 1}

func (n NormalDist) dist(src rand.Source) distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma, Src: src}
}

func (n NormalDist) PDF(x float64) float64 {
	return n.dist(nil).Prob(x)
}

func (n NormalDist) CDF(x float64) float64 {
	return n.dist(nil).CDF(x)
}

func (n NormalDist) InvCDF(p float64) (x float64) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nan
	}
	if p == 0 {
		return -inf
	} else if p == 1 {
		return inf
	}
	return n.dist(nil).Quantile(p)
}

// Rand returns a random value drawn from n using src. If src is nil,
// the global source of golang.org/x/exp/rand is used.
func (n NormalDist) Rand(src rand.Source) float64 {
	return n.dist(src).Rand()
}

// Draw returns a Sample of size count drawn from n using src.
func (n NormalDist) Draw(count int, src rand.Source) Sample {
	xs := make([]float64, count)
	for i := range xs {
		xs[i] = n.Rand(src)
	}
	return Sample{Xs: xs}
}

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}
