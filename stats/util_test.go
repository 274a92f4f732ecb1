// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// aeqTol is like aeq, but with a caller-specified tolerance.
func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) < tol
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
	}
}

// testInvCDF checks that d.InvCDF inverts d.CDF over d's bounds.
func testInvCDF(t *testing.T, d Dist) {
	t.Helper()
	lo, hi := d.Bounds()
	for i := 0; i <= 20; i++ {
		x := lo + (hi-lo)*float64(i)/20
		y := d.CDF(x)
		if got := d.InvCDF(y); !aeqTol(x, got, 1e-4) {
			t.Errorf("%+v.InvCDF(%+v.CDF(%v)) = %v, want %v", d, d, x, got, x)
		}
	}
}
