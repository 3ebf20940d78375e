// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package channel

import (
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotscale/interval"
	"github.com/aclements/go-plotscale/internal/value"
)

// TODO: Accept named intervals such as "day" or "hour". These need to
// know whether the associated scale is UTC or local time.

// IntervalX expands an interval-bound x channel into x1 and x2. x1
// is x floored to the interval and x2 is x1 advanced by one interval.
// Explicit x1 and x2 channels take precedence. The x channel is
// removed and InsetX is applied. If x is not interval-bound, o is
// returned unchanged.
func IntervalX(o Options) (Options, error) {
	return maybeIntervalK("x", InsetX, o, false)
}

// IntervalY is IntervalX for the y channel.
func IntervalY(o Options) (Options, error) {
	return maybeIntervalK("y", InsetY, o, false)
}

// TrivialIntervalX is like IntervalX, but if x has a value and no
// interval, x1 and x2 both become x, making each value its own
// zero-width interval.
func TrivialIntervalX(o Options) (Options, error) {
	return maybeIntervalK("x", InsetX, o, true)
}

// TrivialIntervalY is TrivialIntervalX for the y channel.
func TrivialIntervalY(o Options) (Options, error) {
	return maybeIntervalK("y", InsetY, o, true)
}

// intervalValue resolves the value and interval of channel v. An
// interval on the channel overrides the options' interval.
func intervalValue(v interface{}, o Options) (*Channel, interval.Interval, error) {
	c := MaybeValue(v)
	ivx := o.Interval
	if c != nil && c.Interval != nil {
		ivx = c.Interval
	}
	iv, err := interval.Maybe(ivx)
	if err != nil {
		return nil, nil, err
	}
	return c, iv, nil
}

func maybeIntervalK(k string, insetK func(Options) Options, o Options, trivial bool) (Options, error) {
	k1, k2 := k+"1", k+"2"
	v := o.Channels[k]
	c, iv, err := intervalValue(v, o)
	if err != nil {
		return o, err
	}
	if c == nil || c.Value == nil || (iv == nil && !trivial) {
		return o, nil
	}
	label := Labelof(v)
	v1, v2 := o.Channels[k1], o.Channels[k2]
	o = o.clone()
	delete(o.Channels, k)

	if iv == nil {
		m := &memo{f: func(data *table.Table) (table.Slice, error) {
			return Valueof(data, c.Value)
		}}
		kv := &Channel{Value: Transform(m.get), Label: label}
		if v1 == nil {
			o.Channels[k1] = kv
		}
		if v2 == nil {
			o.Channels[k2] = kv
		}
		return o, nil
	}

	m1 := &memo{f: func(data *table.Table) (table.Slice, error) {
		vs, err := Valueof(data, c.Value)
		if err != nil {
			return nil, err
		}
		return mapValues(vs, iv.Floor), nil
	}}
	if v1 == nil {
		o.Channels[k1] = &Channel{Value: Transform(m1.get), Label: label}
	}
	if v2 == nil {
		o.Channels[k2] = &Channel{Value: Transform(func(data *table.Table) (table.Slice, error) {
			vs, err := m1.get(data)
			if err != nil {
				return nil, err
			}
			return mapValues(vs, iv.Offset), nil
		}), Label: label}
	}
	return insetK(o), nil
}

// mapValues applies f to each element of vs. Null elements stay
// null.
func mapValues(vs table.Slice, f func(interface{}) interface{}) []interface{} {
	elems := value.Elems(vs)
	out := make([]interface{}, len(elems))
	for i, e := range elems {
		if value.IsNull(e) {
			continue
		}
		out[i] = f(e)
	}
	return out
}

// memo is a compute-once cell. The first call to get runs f and every
// later call returns its result, regardless of the data passed in. A
// memo is owned by a single channel expansion and is not safe for
// concurrent use.
type memo struct {
	f    Transform
	done bool
	v    table.Slice
	err  error
}

func (m *memo) get(data *table.Table) (table.Slice, error) {
	if !m.done {
		m.v, m.err = m.f(data)
		m.done = true
	}
	return m.v, m.err
}
