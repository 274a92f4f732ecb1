// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSampleSize is matched by any DomainError caused by a
	// sample that is too small for the requested computation.
	ErrSampleSize = errors.New("sample is too small")

	// ErrConfidence is matched by any DomainError caused by a
	// confidence level outside (0, 1).
	ErrConfidence = errors.New("confidence level must be in (0, 1)")

	// ErrNonFinite is matched by any DomainError caused by a
	// sample containing NaN or an infinity.
	ErrNonFinite = errors.New("sample values must be finite")

	// ErrResampling is matched by any DomainError caused by a
	// negative bootstrap parameter.
	ErrResampling = errors.New("bootstrap parameters must not be negative")
)

// A DomainError reports an argument for which a computation is
// undefined, such as a sample with fewer than two values (whose
// standard error is undefined) or a confidence level outside (0, 1).
type DomainError struct {
	// Func is the name of the function that rejected the argument.
	Func string

	// Param names the rejected argument.
	Param string

	// Value is the rejected value.
	Value float64

	// Err is the underlying cause, if it is one of the sentinel
	// errors of this package.
	Err error
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("stats.%s: %s = %v out of domain", e.Func, e.Param, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// checkSample returns a DomainError if xs is too small for an
// interval around its mean or contains a non-finite value.
func checkSample(fn string, xs []float64) error {
	if len(xs) < 2 {
		return &DomainError{Func: fn, Param: "n", Value: float64(len(xs)), Err: ErrSampleSize}
	}
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &DomainError{Func: fn, Param: "xs", Value: x, Err: ErrNonFinite}
		}
	}
	return nil
}

// checkConfidence returns a DomainError unless 0 < confidence < 1.
// NaN is rejected.
func checkConfidence(fn string, confidence float64) error {
	if !(confidence > 0 && confidence < 1) {
		return &DomainError{Func: fn, Param: "confidence", Value: confidence, Err: ErrConfidence}
	}
	return nil
}
