// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"math"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotscale/internal/value"
)

// ordinal is a band or point scale. Its domain is a list of distinct
// values, each of which maps to the start of an equal step of the
// range. A point scale is a band scale with zero-width bands.
type ordinal struct {
	domain []interface{}
	index  map[interface{}]int

	rng                        []float64
	paddingInner, paddingOuter float64
	align                      float64
	reverse                    bool

	// Computed from the range by rescale.
	positions       []float64
	step, bandwidth float64
}

func newBand(key string, encs []Encoding, o Options) (Scaler, error) {
	p := 0.1
	if o.Padding != nil {
		p = *o.Padding
	}
	return newOrdinal(encs, o, p, p), nil
}

func newPoint(key string, encs []Encoding, o Options) (Scaler, error) {
	p := 0.5
	if o.Padding != nil {
		p = *o.Padding
	}
	return newOrdinal(encs, o, 1, p), nil
}

func newOrdinal(encs []Encoding, o Options, inner, outer float64) *ordinal {
	s := &ordinal{
		index:        make(map[interface{}]int),
		paddingInner: inner,
		paddingOuter: outer,
		align:        0.5,
		reverse:      o.Reverse,
	}
	if o.Align != nil {
		s.align = *o.Align
	}
	add := func(v interface{}) {
		if value.IsNull(v) {
			return
		}
		k := value.Key(v)
		if _, ok := s.index[k]; ok {
			return
		}
		s.index[k] = len(s.domain)
		s.domain = append(s.domain, v)
	}

	if value.Len(o.Domain) > 0 {
		// An explicit domain keeps its order.
		for _, v := range value.Elems(o.Domain) {
			add(v)
		}
	} else {
		for _, e := range encs {
			for _, v := range value.Elems(e.Value) {
				add(v)
			}
		}
		sort.SliceStable(s.domain, func(i, j int) bool {
			return value.Less(s.domain[i], s.domain[j])
		})
		for i, v := range s.domain {
			s.index[value.Key(v)] = i
		}
	}

	s.SetRange(defaultRange(o))
	return s
}

func (s *ordinal) Map(x interface{}) float64 {
	if value.IsNull(x) {
		return math.NaN()
	}
	i, ok := s.index[value.Key(x)]
	if !ok {
		return math.NaN()
	}
	return s.positions[i]
}

func (s *ordinal) Domain() table.Slice { return s.domain }
func (s *ordinal) Range() []float64    { return s.rng }

func (s *ordinal) SetRange(r []float64) {
	s.rng = r
	s.rescale()
}

// Bandwidth returns the width of each band. It is 0 for point scales.
func (s *ordinal) Bandwidth() float64 { return s.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (s *ordinal) Step() float64 { return s.step }

func (s *ordinal) rescale() {
	n := float64(len(s.domain))
	var r0, r1 float64
	switch len(s.rng) {
	case 0:
		r0, r1 = 0, 1
	case 1:
		r0, r1 = s.rng[0], s.rng[0]
	default:
		r0, r1 = s.rng[0], s.rng[len(s.rng)-1]
	}
	rev := r1 < r0
	start, stop := r0, r1
	if rev {
		start, stop = r1, r0
	}
	s.step = (stop - start) / math.Max(1, n-s.paddingInner+s.paddingOuter*2)
	start += (stop - start - s.step*(n-s.paddingInner)) * s.align
	s.bandwidth = s.step * (1 - s.paddingInner)

	s.positions = make([]float64, len(s.domain))
	for i := range s.positions {
		s.positions[i] = start + s.step*float64(i)
	}
	if rev != s.reverse {
		for i, j := 0, len(s.positions)-1; i < j; i, j = i+1, j-1 {
			s.positions[i], s.positions[j] = s.positions[j], s.positions[i]
		}
	}
}
