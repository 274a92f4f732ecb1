// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// ZCritical returns the two-sided critical value of the standard
// normal distribution at the given confidence level. For example,
// ZCritical(0.95) ≈ 1.96.
func ZCritical(confidence float64) (float64, error) {
	if err := checkConfidence("ZCritical", confidence); err != nil {
		return nan, err
	}
	return twoSidedCritical(StdNormal, confidence), nil
}

// TCritical returns the two-sided critical value of Student's
// t-distribution with v degrees of freedom at the given confidence
// level. v must be at least 1.
func TCritical(confidence float64, v int) (float64, error) {
	if err := checkConfidence("TCritical", confidence); err != nil {
		return nan, err
	}
	if v < 1 {
		return nan, &DomainError{Func: "TCritical", Param: "v", Value: float64(v), Err: ErrSampleSize}
	}
	return twoSidedCritical(TDist{V: float64(v)}, confidence), nil
}

// ZInterval returns the mean of xs and the confidence interval
// x̄ ± z·SEM for the population mean.
//
// This assumes the population standard deviation is effectively
// known, which is reasonable when xs is large. For small samples, the
// interval is too narrow; use TInterval instead.
//
// ZInterval returns a *DomainError if len(xs) < 2, xs contains NaN or
// an infinity, or confidence is not in (0, 1).
func ZInterval(xs []float64, confidence float64) (Estimate, error) {
	if err := checkSample("ZInterval", xs); err != nil {
		return Estimate{}, err
	}
	z, err := ZCritical(confidence)
	if err != nil {
		return Estimate{}, err
	}
	return symmetricEstimate(Sample{Xs: xs}, confidence, z), nil
}

// TInterval returns the mean of xs and the confidence interval
// x̄ ± t·SEM for the population mean, where t is the critical value
// of Student's t-distribution with len(xs)-1 degrees of freedom.
//
// The interval is never narrower than the corresponding ZInterval and
// approaches it as len(xs) grows.
//
// TInterval returns a *DomainError if len(xs) < 2, xs contains NaN or
// an infinity, or confidence is not in (0, 1).
func TInterval(xs []float64, confidence float64) (Estimate, error) {
	if err := checkSample("TInterval", xs); err != nil {
		return Estimate{}, err
	}
	t, err := TCritical(confidence, len(xs)-1)
	if err != nil {
		return Estimate{}, err
	}
	return symmetricEstimate(Sample{Xs: xs}, confidence, t), nil
}

func symmetricEstimate(s Sample, confidence, crit float64) Estimate {
	mean := s.Mean()
	margin := crit * s.SEM()
	return Estimate{
		N:          len(s.Xs),
		Mean:       mean,
		Confidence: confidence,
		CI:         Interval{Lo: mean - margin, Hi: mean + margin},
	}
}

// ZEstimator is an Estimator using ZInterval.
type ZEstimator struct{}

func (ZEstimator) Name() string { return "z" }

func (ZEstimator) Estimate(s Sample, confidence float64) (Estimate, error) {
	return ZInterval(s.Xs, confidence)
}

// TEstimator is an Estimator using TInterval.
type TEstimator struct{}

func (TEstimator) Name() string { return "t" }

func (TEstimator) Estimate(s Sample, confidence float64) (Estimate, error) {
	return TInterval(s.Xs, confidence)
}
