// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interval snaps continuous values onto a regular lattice.
//
// An Interval is described by three operations: Floor rounds a value
// down to the nearest lattice point, Offset advances a lattice point
// to the next one, and Range enumerates the lattice points in a
// half-open span. Numeric intervals are given as a step size (Step)
// and temporal intervals as a duration (Every). Callers may also
// supply their own implementation.
package interval

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aclements/go-plotscale/internal/value"
)

// ErrInvalidInterval is returned by Maybe for interval descriptors
// that cannot be turned into an Interval.
var ErrInvalidInterval = errors.New("invalid interval; missing Floor or Offset method")

// Interval is a regular lattice over values.
//
// Floor must be idempotent and Offset(Floor(v)) must be strictly
// greater than Floor(v). Implementations return nil for values they
// cannot place on the lattice, including nil.
type Interval interface {
	Floor(v interface{}) interface{}
	Offset(v interface{}) interface{}
	// Range returns the lattice points in [lo, hi) in increasing
	// order.
	Range(lo, hi interface{}) []interface{}
}

// floorOffsetter is the minimal interval a caller can supply. Maybe
// derives Range from Floor and Offset.
type floorOffsetter interface {
	Floor(v interface{}) interface{}
	Offset(v interface{}) interface{}
}

// Maybe normalizes an interval descriptor. A nil descriptor means no
// interval and yields nil, nil. Otherwise x may be:
//
// * an Interval, which is returned as is;
//
// * a time.Duration, which yields Every(x);
//
// * any value with Floor and Offset methods, whose Range is derived
// by repeated Offset;
//
// * a Go number, which yields Step(x).
//
// Anything else, and non-positive steps or durations, fail with
// ErrInvalidInterval.
func Maybe(x interface{}) (Interval, error) {
	switch s := x.(type) {
	case nil:
		return nil, nil
	case Interval:
		return s, nil
	case time.Duration:
		if s <= 0 {
			return nil, fmt.Errorf("%w: duration %v is not positive", ErrInvalidInterval, s)
		}
		return Every(s), nil
	case floorOffsetter:
		return derived{s}, nil
	}
	if value.IsNumber(x) {
		n, _ := value.Float(x)
		if !(n > 0) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("%w: step %v is not a positive finite number", ErrInvalidInterval, x)
		}
		return Step(n), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidInterval, x)
}

// Step is a numeric interval whose lattice points are the multiples
// of the step size. It has no notion of a secondary step: Offset
// always advances by exactly one step.
type Step float64

func (n Step) Floor(v interface{}) interface{} {
	d, ok := numeric(v)
	if !ok {
		return nil
	}
	return float64(n) * math.Floor(d/float64(n))
}

func (n Step) Offset(v interface{}) interface{} {
	d, ok := numeric(v)
	if !ok {
		return nil
	}
	return d + float64(n)
}

func (n Step) Range(lo, hi interface{}) []interface{} {
	l, ok1 := numeric(lo)
	h, ok2 := numeric(hi)
	if !ok1 || !ok2 || !finite(l) || !finite(h) {
		return nil
	}
	var out []interface{}
	stop := h / float64(n)
	for k := math.Ceil(l / float64(n)); k < stop; k++ {
		if k+1 == k {
			// k is past the float64 integer range.
			break
		}
		out = append(out, float64(n)*k)
	}
	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// unbounded reports whether v is a number that is not finite.
func unbounded(v interface{}) bool {
	x, ok := numeric(v)
	return ok && !finite(x)
}

// numeric accepts numbers only; unlike value.Float it does not parse
// strings or convert times.
func numeric(v interface{}) (float64, bool) {
	v = value.Deref(v)
	if !value.IsNumber(v) {
		return 0, false
	}
	return value.Float(v)
}

// Every is a temporal interval over time.Time values whose lattice
// points are the multiples of the duration since the zero time, in
// UTC. Durations that divide a day therefore align with UTC
// midnight.
type Every time.Duration

func (d Every) Floor(v interface{}) interface{} {
	t, ok := value.Deref(v).(time.Time)
	if !ok {
		return nil
	}
	return t.UTC().Truncate(time.Duration(d))
}

func (d Every) Offset(v interface{}) interface{} {
	t, ok := value.Deref(v).(time.Time)
	if !ok {
		return nil
	}
	return t.UTC().Add(time.Duration(d))
}

func (d Every) Range(lo, hi interface{}) []interface{} {
	l, ok1 := value.Deref(lo).(time.Time)
	h, ok2 := value.Deref(hi).(time.Time)
	if !ok1 || !ok2 {
		return nil
	}
	var out []interface{}
	t := d.Floor(l).(time.Time)
	if t.Before(l) {
		t = t.Add(time.Duration(d))
	}
	for ; t.Before(h); t = t.Add(time.Duration(d)) {
		out = append(out, t)
	}
	return out
}

// derived completes a caller-supplied Floor/Offset pair with a Range
// that steps from Floor(lo).
type derived struct {
	floorOffsetter
}

func (i derived) Range(lo, hi interface{}) []interface{} {
	if value.IsNull(lo) || value.IsNull(hi) || unbounded(lo) || unbounded(hi) {
		return nil
	}
	var out []interface{}
	v := i.Floor(lo)
	if !value.IsNull(v) && value.Less(v, lo) {
		v = i.Offset(v)
	}
	for !value.IsNull(v) && value.Less(v, hi) {
		out = append(out, v)
		next := i.Offset(v)
		if value.IsNull(next) || !value.Less(v, next) {
			// Offset failed to advance.
			break
		}
		v = next
	}
	return out
}
