// Package experiment draws samples from a normal population and runs
// confidence interval estimators over them.
package experiment

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/aclements/go-meanci/internal/config"
	"github.com/aclements/go-meanci/stats"
)

// A Report holds the estimates produced by one method.
type Report struct {
	// Method is the 1-based position of the method in the
	// configuration.
	Method int `json:"method" yaml:"method"`

	// Name is the estimator name, e.g. "t".
	Name string `json:"name" yaml:"name"`

	// Estimates holds one estimate per sample, in sample order.
	Estimates []stats.Estimate `json:"estimates" yaml:"estimates"`
}

// NewEstimator returns the estimator for the named method. r is used
// by estimators that need randomness.
func NewEstimator(method string, c config.Config, r *rand.Rand) (stats.Estimator, error) {
	switch method {
	case config.MethodZ:
		return stats.ZEstimator{}, nil
	case config.MethodT:
		return stats.TEstimator{}, nil
	case config.MethodBootstrap:
		return &stats.BootstrapEstimator{
			Resamples:    c.Resamples,
			ResampleSize: c.ResampleSize,
			Rand:         r,
		}, nil
	}
	return nil, errors.Errorf("unknown method %q", method)
}

// Run performs the experiment described by c: for each method, and
// for each sample size, it draws a fresh sample from N(c.Mean,
// c.StdDev) and estimates the population mean.
//
// Method k draws from its own source seeded with c.Seed+k, so the
// result depends only on c, not on c.Parallelism. Run stops early if
// ctx is cancelled.
func Run(ctx context.Context, c config.Config) ([]Report, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	pop := stats.NormalDist{Mu: c.Mean, Sigma: c.StdDev}

	reports := make([]Report, len(c.Methods))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Parallelism)
	for i, method := range c.Methods {
		i, method := i, method
		g.Go(func() error {
			src := rand.NewSource(c.Seed + uint64(i))
			est, err := NewEstimator(method, c, rand.New(src))
			if err != nil {
				return err
			}
			rep := Report{Method: i + 1, Name: est.Name()}
			logger := log.WithFields(log.Fields{"method": rep.Method, "name": rep.Name})
			start := time.Now()
			for _, n := range c.SampleSizes {
				if err := ctx.Err(); err != nil {
					return err
				}
				e, err := est.Estimate(pop.Draw(n, src), c.Confidence)
				if err != nil {
					return errors.Wrapf(err, "method %d (%s), n = %d", rep.Method, rep.Name, n)
				}
				logger.WithField("n", n).Debugf("CI %v", e.CI)
				rep.Estimates = append(rep.Estimates, e)
			}
			logger.WithField("elapsed", time.Since(start)).Info("method complete")
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
