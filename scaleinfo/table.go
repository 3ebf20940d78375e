// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-gg/table"
)

// readTable reads a tab-separated table with a header line of column
// names.
func readTable(r io.Reader) (*table.Table, error) {
	var names []string
	var cols [][]string

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if names == nil {
			if strings.TrimSpace(text) == "" {
				continue
			}
			names = strings.Split(text, "\t")
			cols = make([][]string, len(names))
			continue
		}
		if text == "" {
			continue
		}
		cells := strings.Split(text, "\t")
		if len(cells) > len(names) {
			return nil, fmt.Errorf("line %d: %d cells, but only %d columns", line, len(cells), len(names))
		}
		for i := range names {
			cell := ""
			if i < len(cells) {
				cell = strings.TrimSpace(cells[i])
			}
			cols[i] = append(cols[i], cell)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if names == nil {
		return nil, fmt.Errorf("missing header line")
	}

	b := new(table.Builder)
	for i, name := range names {
		b.Add(name, parseColumn(cols[i]))
	}
	return b.Done(), nil
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02"}

func parseTime(s string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// parseColumn types a column by the first of numbers, booleans, times,
// and strings that all of its non-empty cells parse as. Missing
// numbers are NaN. Other columns with missing values are
// []interface{} with nil for the missing cells.
func parseColumn(cells []string) table.Slice {
	missing := 0
	for _, c := range cells {
		if c == "" {
			missing++
		}
	}
	if missing == len(cells) {
		return make([]interface{}, len(cells))
	}

	if fs, ok := parseAll(cells, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}); ok {
		for i, c := range cells {
			if c == "" {
				fs[i] = math.NaN()
			}
		}
		return fs
	}
	if bs, ok := parseAll(cells, strconv.ParseBool); ok {
		if missing == 0 {
			return bs
		}
		return withNulls(cells, bs)
	}
	if ts, ok := parseAll(cells, parseTime); ok {
		if missing == 0 {
			return ts
		}
		return withNulls(cells, ts)
	}
	if missing == 0 {
		return cells
	}
	return withNulls(cells, cells)
}

// parseAll parses every non-empty cell with parse.
func parseAll[T any](cells []string, parse func(string) (T, error)) ([]T, bool) {
	out := make([]T, len(cells))
	for i, c := range cells {
		if c == "" {
			continue
		}
		v, err := parse(c)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func withNulls[T any](cells []string, vs []T) []interface{} {
	out := make([]interface{}, len(vs))
	for i, v := range vs {
		if cells[i] != "" {
			out[i] = v
		}
	}
	return out
}
