// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"time"

	"github.com/aclements/go-plotscale/internal/value"
)

// TODO: Calendar-aware ticks (days, months, years) for temporal
// scales. Linear ticks over milliseconds land on arbitrary instants.

// temporal is a continuous scale over time.Time values. Internally
// times are milliseconds since the Unix epoch, so numbers are
// accepted as such too.
type temporal struct {
	*continuous
	loc *time.Location
}

// Location returns the time zone the scale presents times in: UTC for
// utc scales and the local zone for time scales.
func (s *temporal) Location() *time.Location {
	return s.loc
}

func newUTC(key string, encs []Encoding, o Options) (Scaler, error) {
	return newTemporal(encs, o, time.UTC), nil
}

func newTime(key string, encs []Encoding, o Options) (Scaler, error) {
	return newTemporal(encs, o, time.Local), nil
}

func newTemporal(encs []Encoding, o Options, loc *time.Location) *temporal {
	d := numericDomain(encs, o)
	lo, hi := d[0], d[len(d)-1]
	return &temporal{
		continuous: &continuous{
			dom:     []time.Time{value.FromMillis(lo).In(loc), value.FromMillis(hi).In(loc)},
			unit:    linearUnit(lo, hi),
			coerce:  value.Float,
			rng:     defaultRange(o),
			clamp:   o.Clamp,
			reverse: o.Reverse,
		},
		loc: loc,
	}
}
