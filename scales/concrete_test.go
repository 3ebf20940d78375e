// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, encs []Encoding, o Options) Scaler {
	t.Helper()
	s, err := New("x", encs, o)
	require.NoError(t, err)
	return s.Scaler
}

func TestLinear(t *testing.T) {
	s := mustNew(t, []Encoding{{Value: []float64{2, 8}}, {Value: []interface{}{nil, 4, math.Inf(1)}}}, Options{Range: []float64{0, 60}})
	assert.Equal(t, []float64{2, 8}, s.Domain())
	assert.InDelta(t, 20, s.Map(4), 1e-9)
	assert.InDelta(t, 80, s.Map(10), 1e-9)
	assert.True(t, math.IsNaN(s.Map(nil)))
	assert.True(t, math.IsNaN(s.Map("x")))

	s = mustNew(t, []Encoding{{Value: []float64{2, 8}}}, Options{Range: []float64{0, 60}, Clamp: true, Reverse: true})
	assert.InDelta(t, 0, s.Map(10), 1e-9)
	assert.InDelta(t, 60, s.Map(-5), 1e-9)

	// Degenerate domains map to the middle of the range.
	s = mustNew(t, []Encoding{{Value: []float64{3, 3}}}, Options{Range: []float64{0, 10}})
	assert.Equal(t, 5.0, s.Map(3))

	// Multi-stop ranges interpolate piecewise.
	s = mustNew(t, nil, Options{Domain: []float64{0, 1}, Range: []float64{0, 10, 100}})
	assert.InDelta(t, 5, s.Map(0.25), 1e-9)
	assert.InDelta(t, 55, s.Map(0.75), 1e-9)
}

func TestLinearTicks(t *testing.T) {
	s := mustNew(t, nil, Options{Domain: []float64{0, 10}})
	ticker, ok := s.(Ticker)
	require.True(t, ok)
	major, _ := ticker.Ticks(6)
	require.NotEmpty(t, major)
	assert.LessOrEqual(t, len(major), 6)
	for _, x := range major {
		assert.True(t, x >= 0 && x <= 10, "tick %v outside domain", x)
	}
}

func TestLinearNice(t *testing.T) {
	s := mustNew(t, []Encoding{{Value: []float64{0.3, 9.7}}}, Options{Nice: true})
	d := s.Domain().([]float64)
	assert.LessOrEqual(t, d[0], 0.3)
	assert.GreaterOrEqual(t, d[1], 9.7)
}

func TestPow(t *testing.T) {
	s := mustNew(t, nil, Options{Type: Pow, Exponent: 2, Domain: []float64{0, 10}, Range: []float64{0, 100}})
	assert.InDelta(t, 25, s.Map(5), 1e-9)

	s = mustNew(t, nil, Options{Type: Pow, Domain: []float64{0, 10}, Range: []float64{0, 100}})
	assert.InDelta(t, 50, s.Map(5), 1e-9)

	// Sqrt ignores the caller's exponent.
	s = mustNew(t, nil, Options{Type: Sqrt, Exponent: 3, Domain: []float64{0, 100}, Range: []float64{0, 10}})
	assert.InDelta(t, 5, s.Map(25), 1e-9)

	s = mustNew(t, nil, Options{Type: Pow, Exponent: 2, Domain: []float64{-10, 10}, Range: []float64{0, 100}})
	assert.InDelta(t, 37.5, s.Map(-5), 1e-9)
}

func TestLog(t *testing.T) {
	s := mustNew(t, []Encoding{{Value: []float64{1, 10, 1000}}}, Options{Type: Log, Range: []float64{0, 30}})
	assert.InDelta(t, 10, s.Map(10), 1e-9)
	assert.InDelta(t, 20, s.Map(100), 1e-9)

	s = mustNew(t, nil, Options{Type: Log, Domain: []float64{-1000, -1}, Range: []float64{0, 30}})
	assert.InDelta(t, 0, s.Map(-1000), 1e-9)
	assert.InDelta(t, 20, s.Map(-10), 1e-9)

	s = mustNew(t, nil, Options{Type: Log, Base: 2, Domain: []float64{8, 1}, Range: []float64{0, 3}})
	assert.InDelta(t, 1, s.Map(4), 1e-9)

	for _, d := range [][]float64{{0, 10}, {-1, 1}, {-5, 0}} {
		_, err := New("x", nil, Options{Type: Log, Domain: d})
		assert.ErrorIs(t, err, ErrLogDomain, "domain %v", d)
	}
}

func TestSymlog(t *testing.T) {
	s := mustNew(t, nil, Options{Type: Symlog, Domain: []float64{-10, 10}, Range: []float64{-1, 1}})
	assert.InDelta(t, 0, s.Map(0), 1e-9)
	assert.InDelta(t, -s.Map(3), s.Map(-3), 1e-9)
	assert.InDelta(t, math.Log1p(3)/math.Log1p(10), s.Map(3), 1e-9)
}

func TestDiverging(t *testing.T) {
	s := mustNew(t, []Encoding{{Value: []float64{-2, 8}}}, Options{Type: Diverging, Range: []float64{0, 100}})
	assert.Equal(t, []float64{-2, 0, 8}, s.Domain())
	assert.InDelta(t, 0, s.Map(-2), 1e-9)
	assert.InDelta(t, 25, s.Map(-1), 1e-9)
	assert.InDelta(t, 50, s.Map(0), 1e-9)
	assert.InDelta(t, 75, s.Map(4), 1e-9)

	s = mustNew(t, nil, Options{Type: Diverging, Domain: []float64{0, 10, 20}, Range: []float64{0, 1}})
	assert.InDelta(t, 0.5, s.Map(10), 1e-9)
}

func TestTemporal(t *testing.T) {
	t0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(10 * time.Hour)
	s := mustNew(t, []Encoding{{Value: []interface{}{nil, t1, t0}}}, Options{Range: []float64{0, 100}})
	assert.Equal(t, []time.Time{t0, t1}, s.Domain())
	assert.InDelta(t, 30, s.Map(t0.Add(3*time.Hour)), 1e-6)
	assert.InDelta(t, 30, s.Map(&[]time.Time{t0.Add(3 * time.Hour)}[0]), 1e-6)
	assert.Equal(t, time.UTC, s.(*temporal).Location())

	s = mustNew(t, []Encoding{{Value: []time.Time{t0, t1}}}, Options{Type: Time})
	assert.Equal(t, time.Local, s.(*temporal).Location())
}

func TestPoint(t *testing.T) {
	s := mustNew(t, []Encoding{{Value: []string{"d", "b"}}, {Value: []interface{}{"a", nil, "c", "b"}}}, Options{Range: []float64{0, 80}})
	assert.Equal(t, []interface{}{"a", "b", "c", "d"}, s.Domain())
	for v, want := range map[string]float64{"a": 10, "b": 30, "c": 50, "d": 70} {
		assert.InDelta(t, want, s.Map(v), 1e-9, "Map(%q)", v)
	}
	assert.True(t, math.IsNaN(s.Map("e")))
	assert.True(t, math.IsNaN(s.Map(nil)))

	o := s.(*ordinal)
	assert.Equal(t, 0.0, o.Bandwidth())
	assert.InDelta(t, 20, o.Step(), 1e-9)

	s.SetRange([]float64{80, 0})
	assert.InDelta(t, 70, s.Map("a"), 1e-9)
}

func TestBand(t *testing.T) {
	zero := 0.0
	s := mustNew(t, nil, Options{Type: Band, Domain: []string{"z", "y"}, Range: []float64{0, 100}, Padding: &zero})
	// An explicit domain keeps its order.
	assert.Equal(t, []interface{}{"z", "y"}, s.Domain())
	assert.InDelta(t, 0, s.Map("z"), 1e-9)
	assert.InDelta(t, 50, s.Map("y"), 1e-9)
	assert.InDelta(t, 50, s.(*ordinal).Bandwidth(), 1e-9)

	s = mustNew(t, []Encoding{{Value: []string{"a", "b", "c"}}}, Options{Type: Band, Range: []float64{0, 100}})
	b := s.(*ordinal)
	assert.InDelta(t, 100/3.1, b.Step(), 1e-9)
	assert.InDelta(t, 0.9*100/3.1, b.Bandwidth(), 1e-9)
	// Outer padding is split evenly at both ends.
	assert.InDelta(t, 100-(s.Map("c")+b.Bandwidth()), s.Map("a"), 1e-9)

	s = mustNew(t, []Encoding{{Value: []string{"a", "b"}}}, Options{Type: Band, Range: []float64{0, 100}, Padding: &zero, Reverse: true})
	assert.InDelta(t, 50, s.Map("a"), 1e-9)
	assert.InDelta(t, 0, s.Map("b"), 1e-9)
}

func TestOrdinalMixed(t *testing.T) {
	t0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	s := mustNew(t, []Encoding{{Value: []interface{}{true, 2, 1.0, t0, t0.In(time.FixedZone("X", 60))}}}, Options{Type: Point})
	// 1.0 and an int 2 are numbers; the two times are the same instant.
	assert.Equal(t, []interface{}{true, 1.0, 2, t0}, s.Domain())
}
