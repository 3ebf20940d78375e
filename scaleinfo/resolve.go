// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotscale/channel"
	"github.com/aclements/go-plotscale/internal/value"
	"github.com/aclements/go-plotscale/scales"
)

type config struct {
	// channels maps channel names to column names. Empty column
	// names are unbound.
	channels map[string]string

	// intervals maps channel names to interval widths. Zero
	// widths are unbinned.
	intervals map[string]float64

	// rect expands unbinned x and y into zero-width intervals.
	rect bool

	types map[string]scales.Options
	dims  scales.Dimensions

	// logf, if non-nil, logs each resolved channel.
	logf func(format string, args ...interface{})
}

// resolve binds the columns of tab to channels, expands interval
// channels, and resolves and ranges a scale for each channel. If a
// channel cannot be bound, resolve returns a nil map. If only some
// scales fail, it returns the scales that resolved along with the
// error.
func resolve(tab *table.Table, cfg config) (map[string]*scales.Scale, error) {
	opts := channel.Options{Channels: make(map[string]interface{})}
	for name, col := range cfg.channels {
		if col == "" {
			continue
		}
		if tab.Column(col) == nil {
			return nil, fmt.Errorf("channel %s: %w %q", name, channel.ErrMissingColumn, col)
		}
		ch := &channel.Channel{Value: col}
		if w := cfg.intervals[name]; w != 0 {
			ch.Interval = w
		}
		opts.Channels[name] = ch
	}

	var err error
	for _, expand := range expanders(cfg.rect) {
		if opts, err = expand(opts); err != nil {
			return nil, err
		}
	}
	if cfg.logf != nil {
		top, right, bottom, left := opts.Insets()
		cfg.logf("insets: top %g, right %g, bottom %g, left %g", top, right, bottom, left)
	}

	// Gather each channel's values under its scale key. Visit the
	// channels in order so the encodings of x1 precede those of x2.
	names := make([]string, 0, len(opts.Channels))
	for name := range opts.Channels {
		names = append(names, name)
	}
	sort.Strings(names)
	encs := make(map[string][]scales.Encoding)
	for _, name := range names {
		v := opts.Channels[name]
		vs, err := channel.Valueof(tab, v)
		if err != nil {
			return nil, fmt.Errorf("channel %s: %w", name, err)
		}
		if cfg.logf != nil {
			cfg.logf("channel %s: %d values", name, value.Len(vs))
		}
		key := scaleKey(name)
		encs[key] = append(encs[key], scales.Encoding{Value: vs, Label: channel.Labelof(v)})
	}

	ss, err := scales.NewScales(encs, cfg.types)
	scales.AutoRange(ss, cfg.dims)
	return ss, err
}

// expanders returns the channel expansions to apply for x and y.
func expanders(rect bool) []func(channel.Options) (channel.Options, error) {
	if rect {
		return []func(channel.Options) (channel.Options, error){channel.TrivialIntervalX, channel.TrivialIntervalY}
	}
	return []func(channel.Options) (channel.Options, error){channel.IntervalX, channel.IntervalY}
}

// scaleKey returns the scale a channel is encoded on. The bounds of
// an interval channel share the channel's scale.
func scaleKey(name string) string {
	if len(name) > 1 && (strings.HasSuffix(name, "1") || strings.HasSuffix(name, "2")) {
		return name[:len(name)-1]
	}
	return name
}

// summarize tabulates the resolved scales, one row per scale.
func summarize(ss map[string]*scales.Scale) *table.Table {
	keys := make([]string, 0, len(ss))
	for k := range ss {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var kcol, tcol, dcol, rcol []string
	for _, k := range keys {
		s := ss[k]
		kcol = append(kcol, k)
		tcol = append(tcol, string(s.Type))
		dcol = append(dcol, fmt.Sprint(s.Scaler.Domain()))
		rcol = append(rcol, fmt.Sprint(s.Scaler.Range()))
	}
	return new(table.Builder).
		Add("scale", kcol).
		Add("type", tcol).
		Add("domain", dcol).
		Add("range", rcol).
		Done()
}
