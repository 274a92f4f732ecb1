// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes confidence intervals for the mean of a
// sample.
//
// Three estimators are provided: a z interval, which assumes the
// population standard deviation is effectively known (or that the
// sample is large enough for the central limit theorem to apply), a
// Student's t interval for small samples with unknown standard
// deviation, and a non-parametric percentile bootstrap interval.
package stats // import "github.com/aclements/go-meanci/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
