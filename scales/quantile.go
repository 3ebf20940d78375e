// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"math"
	"sort"

	"github.com/aclements/go-plotscale/internal/value"
)

// Quantile returns the p-quantile of xs, linearly interpolating
// between the two nearest ranks (R-7 in Hyndman and Fan's taxonomy).
// NaNs are ignored. Quantile returns NaN if xs has no other values.
//
// go-moremath's stats.Sample.Quantile uses R-8, which places the
// quartiles of small samples differently.
func Quantile(xs []float64, p float64) float64 {
	s := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			s = append(s, x)
		}
	}
	if len(s) == 0 || math.IsNaN(p) {
		return math.NaN()
	}
	sort.Float64s(s)
	if p <= 0 || len(s) == 1 {
		return s[0]
	}
	if p >= 1 {
		return s[len(s)-1]
	}
	i := float64(len(s)-1) * p
	lo := math.Floor(i)
	x0 := s[int(lo)]
	return x0 + (s[int(lo)+1]-x0)*(i-lo)
}

// radiusDomain returns the default domain of a radius scale: [0, M]
// where M is the median across encodings of each encoding's first
// quartile. It returns nil if no encoding has a numeric value.
func radiusDomain(encs []Encoding) []float64 {
	q1s := make([]float64, len(encs))
	for i, e := range encs {
		q1s[i] = Quantile(value.Floats(e.Value), 0.25)
	}
	m := Quantile(q1s, 0.5)
	if math.IsNaN(m) {
		return nil
	}
	return []float64{0, m}
}
