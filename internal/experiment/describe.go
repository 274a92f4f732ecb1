package experiment

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/aclements/go-meanci/internal/config"
	"github.com/aclements/go-meanci/stats"
)

// ReadSample reads newline-separated numbers from r. Blank lines are
// ignored.
func ReadSample(r io.Reader) (stats.Sample, error) {
	var s stats.Sample
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return stats.Sample{}, errors.Wrapf(err, "line %d", line)
		}
		s.Xs = append(s.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		return stats.Sample{}, errors.Wrap(err, "reading sample")
	}
	return s, nil
}

// Describe estimates the population mean of an observed sample with
// every method in c. Each returned Report holds a single Estimate.
// The population parameters and sample sizes of c are not used.
func Describe(ctx context.Context, c config.Config, s stats.Sample) ([]Report, error) {
	reports := make([]Report, 0, len(c.Methods))
	for i, method := range c.Methods {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		est, err := NewEstimator(method, c, rand.New(rand.NewSource(c.Seed+uint64(i))))
		if err != nil {
			return nil, err
		}
		e, err := est.Estimate(s, c.Confidence)
		if err != nil {
			return nil, errors.Wrapf(err, "method %d (%s)", i+1, est.Name())
		}
		reports = append(reports, Report{Method: i + 1, Name: est.Name(), Estimates: []stats.Estimate{e}})
	}
	return reports, nil
}
