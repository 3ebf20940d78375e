// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales resolves the scale of each channel of a plot.
//
// For every channel key ("x", "y", "r", "fill", ...) the caller
// supplies zero or more encodings, each binding data to that channel,
// and optionally explicit scale Options. New picks exactly one
// ScaleType for the key, constructs a scale of that type, and returns
// it as a *Scale. Once the final plot geometry is known, AutoRange
// fills in the output ranges of the positional and radius scales.
//
// Scale types are inferred from the shape of the data, not from its
// full distribution: only the first non-null value of a sequence is
// inspected. A mostly numeric column whose first non-null value is a
// string gets an ordinal point scale.
package scales

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aclements/go-gg/table"
)

// ScaleType is the kind of a scale.
type ScaleType string

const (
	Diverging ScaleType = "diverging"
	Linear    ScaleType = "linear"
	Sqrt      ScaleType = "sqrt"
	Pow       ScaleType = "pow"
	Log       ScaleType = "log"
	Symlog    ScaleType = "symlog"
	UTC       ScaleType = "utc"
	Time      ScaleType = "time"
	Point     ScaleType = "point"
	Band      ScaleType = "band"
)

// Encoding binds data to a channel. Several encodings may share a
// channel key, for example when two layers both use "x".
type Encoding struct {
	// Type, if non-empty, is the scale type this encoding requires.
	Type ScaleType

	// Value is the encoded data. It may be any slice; nil
	// interfaces and nil pointers are null values.
	Value table.Slice

	Label string
}

// Options are the explicit options of one scale. The zero value
// requests everything be inferred.
type Options struct {
	// Type forces the scale type.
	Type ScaleType

	// Domain is the input extent of the scale: the bounds of a
	// continuous scale or the categories of an ordinal scale.
	Domain table.Slice

	// Range is the output extent of the scale. If nil, AutoRange
	// assigns one for "x", "y", and "r"; other scales map to [0, 1].
	Range []float64

	// Exponent is the exponent of a pow scale. 0 means 1.
	Exponent float64

	// Base is the base of a log scale. 0 means 10.
	Base int

	// Constant is the linear region around zero of a symlog
	// scale. 0 means 1.
	Constant float64

	// Pivot is the midpoint of a diverging scale's domain.
	Pivot float64

	// Clamp restricts continuous outputs to the range.
	Clamp bool

	// Nice extends a linear scale's domain to round tick values.
	Nice bool

	// Reverse flips the range.
	Reverse bool

	// Padding is the fraction of a step left between bands, and at
	// the ends of a band or point scale. Nil means the default of
	// the scale type.
	Padding *float64

	// Align positions the bands or points within the range when
	// padding leaves room: 0 is start, 1 is end. Nil means 0.5.
	Align *float64
}

// Scaler maps data values to the output range of a scale.
type Scaler interface {
	// Map maps x to the output range. It returns NaN for values
	// the scale cannot place.
	Map(x interface{}) float64

	// Domain returns the resolved input extent.
	Domain() table.Slice

	Range() []float64

	// SetRange replaces the output range.
	SetRange(r []float64)
}

// Scale is the resolved scale of one channel key.
//
// A Scale belongs to the resolution pass that created it. After New
// returns, only AutoRange modifies it, and only its range.
type Scale struct {
	Key  string
	Type ScaleType

	// Options are the options the scale was constructed with,
	// including defaults filled in by New.
	Options Options

	Scaler Scaler
}

// A constructor builds the Scaler of one scale type.
type constructor func(key string, encs []Encoding, o Options) (Scaler, error)

var constructors = map[ScaleType]constructor{
	Diverging: newDiverging,
	Linear:    newLinear,
	Sqrt:      newPow, // New fixes the exponent at 0.5.
	Pow:       newPow,
	Log:       newLog,
	Symlog:    newSymlog,
	UTC:       newUTC,
	Time:      newTime,
	Point:     newPoint,
	Band:      newBand,
}

// New resolves the scale for channel key from the encodings bound to
// it and the explicit options o.
//
// The radius channel "r" defaults to a sqrt scale, so that the area
// of a mark is proportional to its value, and to the domain [0, M]
// where M is the median of the encodings' first quartiles.
func New(key string, encs []Encoding, o Options) (*Scale, error) {
	if key == "r" {
		if o.Domain == nil {
			if d := radiusDomain(encs); d != nil {
				o.Domain = d
			}
		}
		if o.Type == "" {
			o.Type = Sqrt
		}
	}
	typ, err := InferType(encs, o)
	if err != nil {
		return nil, err
	}
	ctor, ok := constructors[typ]
	if !ok {
		return nil, &UnknownTypeError{typ}
	}
	if typ == Sqrt {
		o.Exponent = 0.5
	}
	s, err := ctor(key, encs, o)
	if err != nil {
		return nil, err
	}
	o.Type = typ
	return &Scale{Key: key, Type: typ, Options: o, Scaler: s}, nil
}

// NewScales resolves a scale for every key that has encodings or
// options. Keys are resolved independently: if some keys fail, NewScales
// returns the scales of the other keys together with an error joining
// the failures in key order.
func NewScales(channels map[string][]Encoding, opts map[string]Options) (map[string]*Scale, error) {
	keys := make([]string, 0, len(channels)+len(opts))
	seen := make(map[string]bool)
	for k := range opts {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range channels {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	scales := make(map[string]*Scale, len(keys))
	var errs []error
	for _, k := range keys {
		s, err := New(k, channels[k], opts[k])
		if err != nil {
			errs = append(errs, fmt.Errorf("scale %q: %w", k, err))
			continue
		}
		scales[k] = s
	}
	return scales, errors.Join(errs...)
}
