// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "golang.org/x/exp/rand"

// DefaultResamples is the number of bootstrap resamples used by a
// BootstrapEstimator with Resamples == 0.
const DefaultResamples = 1000

// BootstrapEstimator is an Estimator that computes a percentile
// bootstrap confidence interval.
//
// It draws Resamples resamples with replacement from the observed
// sample, computes Statistic on each, and takes the (1-c)/2 and
// c+(1-c)/2 quantiles of the resulting bootstrap distribution as the
// bounds of the interval. Unlike ZEstimator and TEstimator, this makes
// no assumption about the shape of the population.
//
// The zero value is ready to use. A BootstrapEstimator with a non-nil
// Rand must not be used from multiple goroutines at once.
type BootstrapEstimator struct {
	// Resamples is the number of bootstrap repetitions B. If
	// this is zero, DefaultResamples is used.
	Resamples int

	// ResampleSize is the size of each resample. If this is
	// zero, each resample is the same size as the input sample.
	ResampleSize int

	// Statistic is the statistic whose sampling distribution is
	// estimated. If nil, Sample.Mean is used.
	Statistic func(Sample) float64

	// Rand is the source of randomness. If nil, the global
	// source of golang.org/x/exp/rand is used.
	Rand *rand.Rand
}

func (b *BootstrapEstimator) Name() string { return "bootstrap" }

// Estimate returns the mean of s and the bootstrap confidence
// interval of the statistic.
//
// It returns a *DomainError if s has fewer than two values, contains
// NaN or an infinity, confidence is not in (0, 1), or Resamples or
// ResampleSize is negative.
func (b *BootstrapEstimator) Estimate(s Sample, confidence float64) (Estimate, error) {
	if err := checkSample("Bootstrap", s.Xs); err != nil {
		return Estimate{}, err
	}
	if err := checkConfidence("Bootstrap", confidence); err != nil {
		return Estimate{}, err
	}
	dist, err := b.Distribution(s)
	if err != nil {
		return Estimate{}, err
	}

	tail := (1 - confidence) / 2
	return Estimate{
		N:          len(s.Xs),
		Mean:       s.Mean(),
		Confidence: confidence,
		CI:         Interval{Lo: dist.Quantile(tail), Hi: dist.Quantile(confidence + tail)},
	}, nil
}

// Distribution returns the bootstrap distribution of the statistic
// over s: one value of the statistic for each of the B resamples. The
// returned Sample is sorted.
func (b *BootstrapEstimator) Distribution(s Sample) (Sample, error) {
	reps := b.Resamples
	if reps == 0 {
		reps = DefaultResamples
	} else if reps < 0 {
		return Sample{}, &DomainError{Func: "Bootstrap", Param: "Resamples", Value: float64(reps), Err: ErrResampling}
	}
	size := b.ResampleSize
	if size == 0 {
		size = len(s.Xs)
	} else if size < 0 {
		return Sample{}, &DomainError{Func: "Bootstrap", Param: "ResampleSize", Value: float64(size), Err: ErrResampling}
	}
	if len(s.Xs) == 0 {
		return Sample{}, &DomainError{Func: "Bootstrap", Param: "n", Value: 0, Err: ErrSampleSize}
	}
	stat := b.Statistic
	if stat == nil {
		stat = Sample.Mean
	}
	intn := rand.Intn
	if b.Rand != nil {
		intn = b.Rand.Intn
	}

	// The resample buffer is reused across repetitions, so
	// Statistic must not retain it.
	resample := Sample{Xs: make([]float64, size)}
	stats := make([]float64, reps)
	for i := range stats {
		for j := range resample.Xs {
			resample.Xs[j] = s.Xs[intn(len(s.Xs))]
		}
		stats[i] = stat(resample)
	}

	dist := Sample{Xs: stats}
	dist.Sort()
	return dist, nil
}
