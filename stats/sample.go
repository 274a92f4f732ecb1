// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of data points drawn from some population.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Mean returns the arithmetic mean of the sample, or NaN if the
// sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// Variance returns the sample variance of xs, using n-1 as the
// denominator. It is NaN for samples with fewer than two values.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.Variance(s.Xs, nil)
}

// StdDev returns the sample standard deviation of xs.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// SEM returns the standard error of the mean, StdDev/√n.
func (s Sample) SEM() float64 {
	return s.StdDev() / math.Sqrt(float64(len(s.Xs)))
}

// Bounds returns the minimum and maximum values of the sample. If
// the sample is empty, it returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Quantile returns the sample value at quantile q, interpolating
// linearly between the two closest order statistics. q is clamped to
// [0, 1]. This sorts a copy of the sample if it is not already
// sorted.
//
// This is the "type 7" estimator of Hyndman and Fan (1996), which is
// also the default in R and NumPy.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	if q <= 0 {
		return s.Xs[0]
	} else if q >= 1 {
		return s.Xs[len(s.Xs)-1]
	}
	h := float64(len(s.Xs)-1) * q
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(s.Xs) {
		return s.Xs[i]
	}
	return s.Xs[i] + (h-lo)*(s.Xs[i+1]-s.Xs[i])
}

// Sort sorts the samples in place in s and returns s.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}
