// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package channel

import (
	"testing"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotscale/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *table.Table {
	return new(table.Builder).
		Add("v", []float64{1.2, 2.7, 3.1}).
		Add("name", []string{"a", "b", "c"}).
		Done()
}

// eval evaluates channel name of o against data.
func eval(t *testing.T, o Options, name string, data *table.Table) table.Slice {
	t.Helper()
	c, ok := o.Channels[name]
	require.True(t, ok, "no channel %q", name)
	vs, err := Valueof(data, c)
	require.NoError(t, err)
	return vs
}

func TestValueof(t *testing.T) {
	data := testTable()

	vs, err := Valueof(data, "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, vs)

	vs, err = Valueof(data, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, vs)

	vs, err = Valueof(data, func(t *table.Table) table.Slice { return []int{t.Len()} })
	require.NoError(t, err)
	assert.Equal(t, []int{3}, vs)

	vs, err = Valueof(data, &Channel{Value: "v"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.2, 2.7, 3.1}, vs)

	vs, err = Valueof(data, nil)
	require.NoError(t, err)
	assert.Nil(t, vs)

	_, err = Valueof(data, "missing")
	assert.ErrorIs(t, err, ErrMissingColumn)
	_, err = Valueof(nil, "v")
	assert.ErrorIs(t, err, ErrMissingColumn)
	_, err = Valueof(data, 42)
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestLabelof(t *testing.T) {
	assert.Equal(t, "v", Labelof("v"))
	assert.Equal(t, "v", Labelof(&Channel{Value: "v"}))
	assert.Equal(t, "Value", Labelof(&Channel{Value: "v", Label: "Value"}))
	assert.Equal(t, "", Labelof([]float64{1}))
	assert.Equal(t, "", Labelof(nil))
}

func TestMaybeValue(t *testing.T) {
	assert.Nil(t, MaybeValue(nil))
	assert.Nil(t, MaybeValue((*Channel)(nil)))
	assert.Equal(t, &Channel{Value: "v"}, MaybeValue("v"))

	c := &Channel{Value: "v", Label: "L"}
	mc := MaybeValue(c)
	assert.Equal(t, c, mc)
	mc.Label = "changed"
	assert.Equal(t, "L", c.Label, "MaybeValue must not alias its argument")
}

func TestIntervalX(t *testing.T) {
	o := Options{Channels: map[string]interface{}{"x": "v"}, Interval: 1}
	got, err := IntervalX(o)
	require.NoError(t, err)

	_, ok := got.Channels["x"]
	assert.False(t, ok, "x should be cleared")
	assert.Equal(t, "v", o.Channels["x"], "input options must not be modified")

	data := testTable()
	assert.Equal(t, []interface{}{1.0, 2.0, 3.0}, eval(t, got, "x1", data))
	assert.Equal(t, []interface{}{2.0, 3.0, 4.0}, eval(t, got, "x2", data))
	assert.Equal(t, "v", Labelof(got.Channels["x1"]))
	assert.Equal(t, "v", Labelof(got.Channels["x2"]))

	top, right, bottom, left := got.Insets()
	assert.Equal(t, [4]float64{0, 0.5, 0, 0.5}, [4]float64{top, right, bottom, left})
}

func TestIntervalOnChannel(t *testing.T) {
	// A channel's own interval overrides the options' interval.
	o := Options{
		Channels: map[string]interface{}{"y": &Channel{Value: "v", Interval: 2, Label: "V"}},
		Interval: 1,
	}
	got, err := IntervalY(o)
	require.NoError(t, err)

	data := testTable()
	assert.Equal(t, []interface{}{0.0, 2.0, 2.0}, eval(t, got, "y1", data))
	assert.Equal(t, []interface{}{2.0, 4.0, 4.0}, eval(t, got, "y2", data))
	assert.Equal(t, "V", Labelof(got.Channels["y1"]))

	top, _, bottom, _ := got.Insets()
	assert.Equal(t, 0.5, top)
	assert.Equal(t, 0.5, bottom)
}

func TestIntervalExplicitPair(t *testing.T) {
	o := Options{
		Channels: map[string]interface{}{"x": "v", "x2": "name"},
		Interval: 1,
		Inset:    float(2),
	}
	got, err := IntervalX(o)
	require.NoError(t, err)

	assert.Equal(t, "name", got.Channels["x2"])
	assert.Equal(t, []interface{}{1.0, 2.0, 3.0}, eval(t, got, "x1", testTable()))

	// An explicit inset suppresses the default.
	top, right, bottom, left := got.Insets()
	assert.Equal(t, [4]float64{2, 2, 2, 2}, [4]float64{top, right, bottom, left})
}

func TestIntervalUnbound(t *testing.T) {
	for _, o := range []Options{
		{Channels: map[string]interface{}{"x": "v"}},
		{Channels: map[string]interface{}{"y": "v"}, Interval: 1},
		{Interval: 1},
	} {
		got, err := IntervalX(o)
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
}

func TestIntervalInvalid(t *testing.T) {
	_, err := IntervalX(Options{Channels: map[string]interface{}{"x": "v"}, Interval: struct{}{}})
	assert.ErrorIs(t, err, interval.ErrInvalidInterval)

	// The interval is validated even without a value.
	_, err = IntervalX(Options{Interval: "week"})
	assert.ErrorIs(t, err, interval.ErrInvalidInterval)
}

func TestTrivialInterval(t *testing.T) {
	calls := 0
	v := Transform(func(data *table.Table) (table.Slice, error) {
		calls++
		return []float64{5, 6}, nil
	})
	o := Options{Channels: map[string]interface{}{"x": v}}
	got, err := TrivialIntervalX(o)
	require.NoError(t, err)

	_, ok := got.Channels["x"]
	assert.False(t, ok)
	x1 := eval(t, got, "x1", nil)
	x2 := eval(t, got, "x2", nil)
	assert.Equal(t, []float64{5, 6}, x1)
	assert.Equal(t, x1, x2)
	assert.Equal(t, 1, calls, "values should be extracted once")

	// Trivial intervals get no default inset.
	assert.Nil(t, got.InsetLeft)
	assert.Nil(t, got.InsetRight)
}

func TestTrivialIntervalWithInterval(t *testing.T) {
	o := Options{Channels: map[string]interface{}{"y": "v"}, Interval: 1}
	got, err := TrivialIntervalY(o)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{2.0, 3.0, 4.0}, eval(t, got, "y2", testTable()))
}

func TestIntervalMemoized(t *testing.T) {
	calls := 0
	v := Transform(func(data *table.Table) (table.Slice, error) {
		calls++
		return []interface{}{1.5, nil}, nil
	})
	got, err := IntervalX(Options{Channels: map[string]interface{}{"x": v}, Interval: 1})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{2.0, nil}, eval(t, got, "x2", nil))
	assert.Equal(t, []interface{}{1.0, nil}, eval(t, got, "x1", nil))
	assert.Equal(t, 1, calls)
}

func TestIntervalTemporal(t *testing.T) {
	t0 := time.Date(2022, 6, 1, 13, 20, 0, 0, time.UTC)
	o := Options{Channels: map[string]interface{}{
		"x": &Channel{Value: []time.Time{t0}, Interval: time.Hour},
	}}
	got, err := IntervalX(o)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{time.Date(2022, 6, 1, 13, 0, 0, 0, time.UTC)}, eval(t, got, "x1", nil))
	assert.Equal(t, []interface{}{time.Date(2022, 6, 1, 14, 0, 0, 0, time.UTC)}, eval(t, got, "x2", nil))
}

func TestInsets(t *testing.T) {
	o := InsetY(Options{InsetTop: float(1)})
	top, right, bottom, left := o.Insets()
	assert.Equal(t, [4]float64{1, 0, 0, 0}, [4]float64{top, right, bottom, left})

	o = InsetX(Options{})
	top, right, bottom, left = o.Insets()
	assert.Equal(t, [4]float64{0, 0.5, 0, 0.5}, [4]float64{top, right, bottom, left})
}
