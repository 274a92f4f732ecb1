// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "fmt"

// An Interval is a closed interval [Lo, Hi] with Lo <= Hi.
type Interval struct {
	Lo float64 `json:"lower" yaml:"lower"`
	Hi float64 `json:"upper" yaml:"upper"`
}

// Width returns Hi - Lo.
func (i Interval) Width() float64 {
	return i.Hi - i.Lo
}

// Center returns the midpoint of i.
func (i Interval) Center() float64 {
	return i.Lo + (i.Hi-i.Lo)/2
}

// Contains reports whether x lies in [Lo, Hi].
func (i Interval) Contains(x float64) bool {
	return i.Lo <= x && x <= i.Hi
}

func (i Interval) String() string {
	return fmt.Sprintf("[%v, %v]", i.Lo, i.Hi)
}

// An Estimate is a point estimate of a population mean together with
// a confidence interval around it.
type Estimate struct {
	// N is the sample size.
	N int `json:"n" yaml:"n"`

	// Mean is the sample mean.
	Mean float64 `json:"mean" yaml:"mean"`

	// Confidence is the confidence level of CI.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// CI is the confidence interval for the population mean.
	CI Interval `json:"ci" yaml:"ci"`
}

// An Estimator computes a confidence interval for the population mean
// from a sample.
type Estimator interface {
	// Name returns a short name identifying the method.
	Name() string

	// Estimate returns the sample mean of s and a confidence
	// interval for the population mean at the given confidence
	// level, which must be in (0, 1).
	Estimate(s Sample, confidence float64) (Estimate, error)
}
