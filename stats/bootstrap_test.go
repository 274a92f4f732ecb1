// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func newBootstrap(seed uint64, b int) *BootstrapEstimator {
	return &BootstrapEstimator{Resamples: b, Rand: rand.New(rand.NewSource(seed))}
}

func TestBootstrap(t *testing.T) {
	s := Sample{Xs: []float64{8, 9, 10, 11, 12}}
	est, err := newBootstrap(1, 2000).Estimate(s, 0.95)
	if err != nil {
		t.Fatal(err)
	}
	if est.N != 5 || !aeq(10, est.Mean) {
		t.Errorf("want n=5 mean=10, got %+v", est)
	}
	// The bootstrap distribution of the mean can't leave the
	// range of the sample.
	if !(8 <= est.CI.Lo && est.CI.Lo < 10 && 10 < est.CI.Hi && est.CI.Hi <= 12) {
		t.Errorf("want interval around 10 within [8,12], got %v", est.CI)
	}

	// Same seed, same interval.
	again, _ := newBootstrap(1, 2000).Estimate(s, 0.95)
	if again != est {
		t.Errorf("same seed gave %+v then %+v", est, again)
	}

	// Higher confidence can only widen a percentile interval on
	// the same bootstrap distribution.
	wide, _ := newBootstrap(1, 2000).Estimate(s, 0.99)
	if wide.CI.Lo > est.CI.Lo || wide.CI.Hi < est.CI.Hi {
		t.Errorf("99%% interval %v does not contain 95%% interval %v", wide.CI, est.CI)
	}
}

func TestBootstrapConstant(t *testing.T) {
	s := Sample{Xs: []float64{5, 5, 5, 5}}
	est, err := newBootstrap(1, 100).Estimate(s, 0.95)
	if err != nil {
		t.Fatal(err)
	}
	if est.CI.Lo != 5 || est.CI.Hi != 5 {
		t.Errorf("want [5, 5], got %v", est.CI)
	}
}

func TestBootstrapSingleResample(t *testing.T) {
	// With a single repetition there is only one statistic to
	// take percentiles of, so the interval collapses to a point.
	s := Sample{Xs: []float64{8, 9, 10, 11, 12}}
	est, _ := newBootstrap(3, 1).Estimate(s, 0.95)
	if est.CI.Width() != 0 {
		t.Errorf("want degenerate interval, got %v", est.CI)
	}
	est, _ = newBootstrap(3, 1000).Estimate(s, 0.95)
	if est.CI.Width() == 0 {
		t.Errorf("want non-degenerate interval, got %v", est.CI)
	}
}

func TestBootstrapShrinks(t *testing.T) {
	pop := NormalDist{Mu: 10, Sigma: 2}
	src := rand.NewSource(11)
	small := pop.Draw(10, src)
	large := pop.Draw(1000, src)

	es, _ := newBootstrap(1, 1000).Estimate(small, 0.95)
	el, _ := newBootstrap(1, 1000).Estimate(large, 0.95)
	// Widths scale as 1/√n, so we expect a ratio near 10.
	if el.CI.Width()*3 > es.CI.Width() {
		t.Errorf("n=1000 width %v not much smaller than n=10 width %v", el.CI.Width(), es.CI.Width())
	}

	// Larger resamples also narrow the interval.
	b := newBootstrap(1, 1000)
	b.ResampleSize = 100 * len(small.Xs)
	eb, _ := b.Estimate(small, 0.95)
	if eb.CI.Width()*3 > es.CI.Width() {
		t.Errorf("large resample width %v not much smaller than %v", eb.CI.Width(), es.CI.Width())
	}
}

func TestBootstrapConverges(t *testing.T) {
	// A percentile interval's width converges to that of the
	// true bootstrap distribution as B grows, so the spread of
	// widths across seeds shrinks roughly as 1/√B.
	s := NormalDist{Mu: 10, Sigma: 2}.Draw(20, rand.NewSource(13))
	spread := func(b int) float64 {
		var widths Sample
		for seed := uint64(1); seed <= 10; seed++ {
			est, err := newBootstrap(seed, b).Estimate(s, 0.95)
			if err != nil {
				t.Fatal(err)
			}
			widths.Xs = append(widths.Xs, est.CI.Width())
		}
		return widths.StdDev()
	}
	few, many := spread(50), spread(5000)
	if many*3 > few {
		t.Errorf("width spread with B=5000 (%v) not much smaller than with B=50 (%v)", many, few)
	}
}

func TestBootstrapStatistic(t *testing.T) {
	s := Sample{Xs: []float64{1, 2, 3, 4, 100}}
	b := newBootstrap(5, 500)
	b.Statistic = func(s Sample) float64 { return s.Quantile(0.5) }
	dist, err := b.Distribution(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(dist.Xs) != 500 || !dist.Sorted {
		t.Fatalf("want 500 sorted statistics, got %d (sorted %v)", len(dist.Xs), dist.Sorted)
	}
	// Medians of resamples are always sample values.
	for _, x := range dist.Xs {
		switch x {
		case 1, 2, 3, 4, 100:
		default:
			t.Fatalf("median %v is not a sample value", x)
		}
	}
}

func TestBootstrapDomain(t *testing.T) {
	s := Sample{Xs: []float64{1, 2, 3}}
	var de *DomainError
	if _, err := newBootstrap(1, 10).Estimate(Sample{Xs: []float64{1}}, 0.95); !errors.Is(err, ErrSampleSize) {
		t.Errorf("want ErrSampleSize, got %v", err)
	}
	if _, err := newBootstrap(1, 10).Estimate(s, 1); !errors.Is(err, ErrConfidence) {
		t.Errorf("want ErrConfidence, got %v", err)
	}
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		est, err := newBootstrap(1, 10).Estimate(Sample{Xs: []float64{1, x, 2}}, 0.95)
		if !errors.As(err, &de) || de.Param != "xs" || !errors.Is(err, ErrNonFinite) {
			t.Errorf("for %v, want xs DomainError, got %+v, %v", x, est, err)
		}
	}
	if _, err := newBootstrap(1, -1).Estimate(s, 0.95); !errors.As(err, &de) || de.Param != "Resamples" || !errors.Is(err, ErrResampling) {
		t.Errorf("want Resamples DomainError, got %v", err)
	}
	b := newBootstrap(1, 10)
	b.ResampleSize = -2
	if _, err := b.Estimate(s, 0.95); !errors.As(err, &de) || de.Param != "ResampleSize" || !errors.Is(err, ErrResampling) {
		t.Errorf("want ResampleSize DomainError, got %v", err)
	}
}

func TestBootstrapDefaults(t *testing.T) {
	var b BootstrapEstimator
	dist, err := b.Distribution(Sample{Xs: []float64{1, 2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if len(dist.Xs) != DefaultResamples {
		t.Errorf("want %d resamples, got %d", DefaultResamples, len(dist.Xs))
	}
}
