// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-plotscale/internal/value"
)

// Ticker is implemented by scales that can place tick marks.
type Ticker interface {
	// Ticks returns at most max major ticks and the minor ticks
	// between them, in domain units.
	Ticks(max int) (major, minor []float64)
}

// continuous is a scale from a numeric domain to a continuous range.
// Inputs are coerced to float64, passed through unit to [0, 1], and
// interpolated over the range.
type continuous struct {
	dom    table.Slice
	unit   func(x float64) float64
	coerce func(x interface{}) (float64, bool)
	ticks  func(o scale.TickOptions) (major, minor []float64)

	rng            []float64
	clamp, reverse bool
}

func (s *continuous) Map(x interface{}) float64 {
	v, ok := s.coerce(x)
	if !ok || math.IsNaN(v) {
		return math.NaN()
	}
	t := s.unit(v)
	if s.clamp {
		t = math.Max(0, math.Min(1, t))
	}
	if s.reverse {
		t = 1 - t
	}
	return interpolate(s.rng, t)
}

func (s *continuous) Domain() table.Slice { return s.dom }
func (s *continuous) Range() []float64    { return s.rng }

func (s *continuous) SetRange(r []float64) {
	s.rng = r
}

func (s *continuous) Ticks(max int) (major, minor []float64) {
	if s.ticks == nil {
		return nil, nil
	}
	return s.ticks(scale.TickOptions{Max: max})
}

// interpolate maps t in [0, 1] piecewise-linearly onto the stops of r.
// Values of t outside [0, 1] extrapolate from the end segments.
func interpolate(r []float64, t float64) float64 {
	switch {
	case math.IsNaN(t):
		return t
	case len(r) == 0:
		return t
	case len(r) == 1:
		return r[0]
	}
	u := t * float64(len(r)-1)
	i := int(math.Floor(math.Max(0, math.Min(u, float64(len(r)-2)))))
	return r[i] + (u-float64(i))*(r[i+1]-r[i])
}

func defaultRange(o Options) []float64 {
	if o.Range != nil {
		return append([]float64(nil), o.Range...)
	}
	return []float64{0, 1}
}

// numericDomain returns the explicit domain of o coerced to float64,
// or else the extent of the finite values of encs. Without any values
// the domain is [0, 1].
func numericDomain(encs []Encoding, o Options) []float64 {
	if value.Len(o.Domain) > 0 {
		return value.Floats(o.Domain)
	}
	var xs []float64
	for _, e := range encs {
		for _, x := range value.Floats(e.Value) {
			if !math.IsNaN(x) && !math.IsInf(x, 0) {
				xs = append(xs, x)
			}
		}
	}
	if len(xs) == 0 {
		return []float64{0, 1}
	}
	lo, hi := stats.Bounds(xs)
	return []float64{lo, hi}
}

// linearUnit returns the map from [lo, hi] to [0, 1]. A degenerate
// domain maps everything to the middle of the range.
func linearUnit(lo, hi float64) func(float64) float64 {
	if lo == hi {
		return func(float64) float64 { return 0.5 }
	}
	ls := scale.Linear{Min: lo, Max: hi}
	return ls.Map
}

// linearTicks returns ticks for the domain [lo, hi] in either order.
func linearTicks(lo, hi float64) func(scale.TickOptions) ([]float64, []float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return func(scale.TickOptions) ([]float64, []float64) {
			return []float64{lo}, nil
		}
	}
	ls := scale.Linear{Min: lo, Max: hi}
	return ls.Ticks
}

func newLinear(key string, encs []Encoding, o Options) (Scaler, error) {
	d := numericDomain(encs, o)
	lo, hi := d[0], d[len(d)-1]
	if o.Nice && lo < hi {
		ls := scale.Linear{Min: lo, Max: hi}
		ls.Nice(scale.TickOptions{Max: 10})
		lo, hi = ls.Min, ls.Max
	}
	return &continuous{
		dom:     []float64{lo, hi},
		unit:    linearUnit(lo, hi),
		coerce:  value.Float,
		ticks:   linearTicks(lo, hi),
		rng:     defaultRange(o),
		clamp:   o.Clamp,
		reverse: o.Reverse,
	}, nil
}

// newTransformed returns a continuous scale that is linear in f(x).
func newTransformed(encs []Encoding, o Options, f func(float64) float64) *continuous {
	d := numericDomain(encs, o)
	lo, hi := d[0], d[len(d)-1]
	unit := linearUnit(f(lo), f(hi))
	return &continuous{
		dom:     []float64{lo, hi},
		unit:    func(x float64) float64 { return unit(f(x)) },
		coerce:  value.Float,
		ticks:   linearTicks(lo, hi),
		rng:     defaultRange(o),
		clamp:   o.Clamp,
		reverse: o.Reverse,
	}
}

func newPow(key string, encs []Encoding, o Options) (Scaler, error) {
	e := o.Exponent
	if e == 0 {
		e = 1
	}
	return newTransformed(encs, o, func(x float64) float64 {
		if x < 0 {
			return -math.Pow(-x, e)
		}
		return math.Pow(x, e)
	}), nil
}

func newSymlog(key string, encs []Encoding, o Options) (Scaler, error) {
	c := o.Constant
	if c == 0 {
		c = 1
	}
	return newTransformed(encs, o, func(x float64) float64 {
		if x < 0 {
			return -math.Log1p(-x / c)
		}
		return math.Log1p(x / c)
	}), nil
}

func newLog(key string, encs []Encoding, o Options) (Scaler, error) {
	d := numericDomain(encs, o)
	d0, d1 := d[0], d[len(d)-1]
	lo, hi := math.Min(d0, d1), math.Max(d0, d1)
	if lo <= 0 && hi >= 0 {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrLogDomain, d0, d1)
	}
	base := o.Base
	if base == 0 {
		base = 10
	}

	// Negative domains are mirrored onto positive ones.
	sign := 1.0
	if hi < 0 {
		sign, lo, hi = -1, -hi, -lo
	}
	ls, err := scale.NewLog(lo, hi, base)
	if err != nil {
		return nil, err
	}
	unit := func(x float64) float64 {
		t := ls.Map(sign * x)
		if sign < 0 {
			t = 1 - t
		}
		return t
	}
	if d0 > d1 {
		u := unit
		unit = func(x float64) float64 { return 1 - u(x) }
	}
	return &continuous{
		dom:    []float64{d0, d1},
		unit:   unit,
		coerce: value.Float,
		ticks: func(to scale.TickOptions) (major, minor []float64) {
			major, minor = ls.Ticks(to)
			if sign < 0 {
				major, minor = negate(major), negate(minor)
			}
			return
		},
		rng:     defaultRange(o),
		clamp:   o.Clamp,
		reverse: o.Reverse,
	}, nil
}

func negate(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = -x
	}
	return out
}

// newDiverging returns a scale that maps the domain below the pivot to
// the first half of the range and the domain above it to the second
// half. A three-element domain gives the pivot explicitly.
func newDiverging(key string, encs []Encoding, o Options) (Scaler, error) {
	d := numericDomain(encs, o)
	lo, hi, pivot := d[0], d[len(d)-1], o.Pivot
	if len(d) == 3 {
		pivot = d[1]
	}
	below, above := linearUnit(lo, pivot), linearUnit(pivot, hi)
	return &continuous{
		dom: []float64{lo, pivot, hi},
		unit: func(x float64) float64 {
			if x < pivot {
				return 0.5 * below(x)
			}
			return 0.5 + 0.5*above(x)
		},
		coerce:  value.Float,
		ticks:   linearTicks(lo, hi),
		rng:     defaultRange(o),
		clamp:   o.Clamp,
		reverse: o.Reverse,
	}, nil
}
