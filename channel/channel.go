// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package channel normalizes the channel options of a mark before
// they are bound to data.
//
// A channel is a named visual property such as "x" or "y". Its value
// is given in Options.Channels either in shorthand (a column name, a
// slice of values, or a Transform) or as a *Channel, which can also
// carry a label and an interval.
package channel

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/table"
)

var (
	// ErrUnknownValue is returned by Valueof for value specs it
	// cannot extract values from.
	ErrUnknownValue = errors.New("unknown channel value")

	// ErrMissingColumn is returned by Valueof when a column name
	// does not exist in the data.
	ErrMissingColumn = errors.New("no such column")
)

// A Transform derives a channel's values from the data.
type Transform func(data *table.Table) (table.Slice, error)

// Channel is the full description of a channel's value.
type Channel struct {
	// Value is a column name, a table.Slice of values, a
	// Transform, or a func(*table.Table) table.Slice.
	Value interface{}

	// Interval, if non-nil, makes this an interval-bound channel.
	// It overrides Options.Interval. See interval.Maybe for the
	// accepted forms.
	Interval interface{}

	// Label is the channel's axis or legend label. If empty and
	// Value is a column name, the column name is used.
	Label string
}

// Options is the channel options record of a mark.
type Options struct {
	// Channels maps channel names ("x", "x1", "y2", ...) to values,
	// either as a *Channel or in shorthand.
	Channels map[string]interface{}

	// Interval is the default interval for interval-bound
	// channels.
	Interval interface{}

	// Inset shrinks every side of an interval-rendered shape. The
	// side-specific insets override it.
	Inset, InsetTop, InsetRight, InsetBottom, InsetLeft *float64
}

// clone returns a copy of o whose Channels map can be modified
// without affecting o.
func (o Options) clone() Options {
	chans := make(map[string]interface{}, len(o.Channels)+2)
	for k, v := range o.Channels {
		chans[k] = v
	}
	o.Channels = chans
	return o
}

// MaybeValue normalizes a channel value into a fresh *Channel. It
// returns nil for a nil value.
func MaybeValue(v interface{}) *Channel {
	switch c := v.(type) {
	case nil:
		return nil
	case *Channel:
		if c == nil {
			return nil
		}
		cc := *c
		return &cc
	case Channel:
		return &c
	}
	return &Channel{Value: v}
}

// Labelof returns the label of a channel value, or "" if it has
// none.
func Labelof(v interface{}) string {
	switch c := v.(type) {
	case string:
		return c
	case *Channel:
		if c == nil {
			return ""
		}
		if c.Label != "" {
			return c.Label
		}
		return Labelof(c.Value)
	case Channel:
		return Labelof(&c)
	}
	return ""
}

// Valueof extracts the values of v from data.
func Valueof(data *table.Table, v interface{}) (table.Slice, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		if data == nil {
			return nil, fmt.Errorf("%w %q: no data", ErrMissingColumn, v)
		}
		col := data.Column(v)
		if col == nil {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, v)
		}
		return col, nil
	case Transform:
		return v(data)
	case func(*table.Table) (table.Slice, error):
		return v(data)
	case func(*table.Table) table.Slice:
		return v(data), nil
	case *Channel:
		if v == nil {
			return nil, nil
		}
		return Valueof(data, v.Value)
	case Channel:
		return Valueof(data, v.Value)
	}
	if reflect.ValueOf(v).Kind() == reflect.Slice {
		return v, nil
	}
	return nil, fmt.Errorf("%w of type %T", ErrUnknownValue, v)
}
