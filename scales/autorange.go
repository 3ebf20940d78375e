// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

// Dimensions is the final geometry of a plot, in pixels.
type Dimensions struct {
	Width, Height float64

	MarginTop, MarginRight, MarginBottom, MarginLeft float64
}

// defaultRadiusRange is the range of a radius scale without an
// explicit range.
var defaultRadiusRange = []float64{0, 3}

// AutoRange sets the ranges of the "x", "y", and "r" scales in m from
// the plot geometry d, unless their options specify a range. x spans
// the plot left to right. y spans it bottom to top, so its range is
// decreasing in screen coordinates. r spans [0, 3].
//
// AutoRange modifies the scales in place and must be called after
// layout. Calling it again with the same geometry has no further
// effect.
func AutoRange(m map[string]*Scale, d Dimensions) {
	if s := m["x"]; s != nil {
		autoRange(s, []float64{d.MarginLeft, d.Width - d.MarginRight})
	}
	if s := m["y"]; s != nil {
		autoRange(s, []float64{d.Height - d.MarginBottom, d.MarginTop})
	}
	if s := m["r"]; s != nil {
		autoRange(s, defaultRadiusRange)
	}
}

func autoRange(s *Scale, def []float64) {
	r := s.Options.Range
	if r == nil {
		r = def
	}
	s.Scaler.SetRange(append([]float64(nil), r...))
}
