// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value provides helpers for the loosely typed values that
// flow through channels: nulls, numeric and temporal coercion,
// ordering, and element access for arbitrary column slices.
package value

import (
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/aclements/go-gg/generic"
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

var timeType = reflect.TypeOf(time.Time{})

// IsNull reports whether v is a missing value. Missing values are nil
// interfaces and nil pointers.
func IsNull(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Deref returns the value pointed to by v if v is a non-nil pointer,
// and v otherwise.
func Deref(v interface{}) interface{} {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return v
}

// IsNumber reports whether v is of a Go numeric kind. time.Duration
// counts as a number.
func IsNumber(v interface{}) bool {
	if v == nil {
		return false
	}
	return isNumericKind(reflect.TypeOf(v).Kind())
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Float coerces v to a float64. Numbers convert directly, booleans
// become 0 or 1, times become milliseconds since the Unix epoch, and
// strings are parsed. Null and unconvertible values yield NaN, false.
func Float(v interface{}) (float64, bool) {
	if IsNull(v) {
		return math.NaN(), false
	}
	switch x := Deref(v).(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case time.Time:
		return Millis(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return math.NaN(), false
		}
		return f, true
	}
	rv := reflect.ValueOf(Deref(v))
	switch k := rv.Kind(); {
	case isNumericKind(k):
		return rv.Convert(reflect.TypeOf(float64(0))).Float(), true
	case k == reflect.Bool:
		return Float(rv.Bool())
	case k == reflect.String:
		return Float(rv.String())
	}
	return math.NaN(), false
}

// Millis returns t as fractional milliseconds since the Unix epoch.
func Millis(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e6
}

// FromMillis is the inverse of Millis, in UTC.
func FromMillis(ms float64) time.Time {
	return time.Unix(0, int64(ms*1e6)).UTC()
}

// Len returns the length of seq, which must be a slice or nil.
func Len(seq table.Slice) int {
	if seq == nil {
		return 0
	}
	return sliceValue(seq).Len()
}

// Elems returns the elements of seq as a []interface{}. Non-nil
// pointer elements are dereferenced; nil pointers become nil.
func Elems(seq table.Slice) []interface{} {
	if seq == nil {
		return nil
	}
	if xs, ok := seq.([]interface{}); ok {
		out := make([]interface{}, len(xs))
		for i, x := range xs {
			if IsNull(x) {
				continue
			}
			out[i] = Deref(x)
		}
		return out
	}
	sv := sliceValue(seq)
	out := make([]interface{}, sv.Len())
	for i := range out {
		x := sv.Index(i).Interface()
		if IsNull(x) {
			continue
		}
		out[i] = Deref(x)
	}
	return out
}

// First returns the first non-null element of seq, dereferenced, and
// its index. It returns nil, -1 if every element is null. Elements
// after the first non-null one are never visited.
func First(seq table.Slice) (interface{}, int) {
	if seq == nil {
		return nil, -1
	}
	if xs, ok := seq.([]interface{}); ok {
		for i, x := range xs {
			if !IsNull(x) {
				return Deref(x), i
			}
		}
		return nil, -1
	}
	sv := sliceValue(seq)
	for i, n := 0, sv.Len(); i < n; i++ {
		x := sv.Index(i).Interface()
		if IsNull(x) {
			continue
		}
		return Deref(x), i
	}
	return nil, -1
}

// Floats returns the elements of seq coerced to float64 by Float.
// Elements that cannot be coerced are NaN.
func Floats(seq table.Slice) []float64 {
	if seq == nil {
		return nil
	}
	if isNumericKind(sliceValue(seq).Type().Elem().Kind()) {
		// Fast path for homogeneous numeric columns.
		var xs []float64
		slice.Convert(&xs, seq)
		return xs
	}
	elems := Elems(seq)
	xs := make([]float64, len(elems))
	for i, e := range elems {
		xs[i], _ = Float(e)
	}
	return xs
}

func sliceValue(seq table.Slice) reflect.Value {
	sv := reflect.ValueOf(seq)
	if sv.Kind() != reflect.Slice {
		panic(&generic.TypeError{Type1: sv.Type(), Extra: "is not a slice"})
	}
	return sv
}

// IsTime reports whether v is a time.Time or a pointer to one.
func IsTime(v interface{}) bool {
	if IsNull(v) {
		return false
	}
	return reflect.TypeOf(Deref(v)) == timeType
}

// Less orders two non-null values. Numbers compare numerically, times
// chronologically, strings lexically, and false sorts before true.
// Values of different kinds are ordered by rank: booleans, numbers,
// times, strings, then anything else.
func Less(a, b interface{}) bool {
	a, b = Deref(a), Deref(b)
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	switch ra {
	case rankBool:
		return !reflect.ValueOf(a).Bool() && reflect.ValueOf(b).Bool()
	case rankNumber:
		x, _ := Float(a)
		y, _ := Float(b)
		return x < y
	case rankTime:
		return a.(time.Time).Before(b.(time.Time))
	case rankString:
		return reflect.ValueOf(a).String() < reflect.ValueOf(b).String()
	}
	return false
}

const (
	rankBool = iota
	rankNumber
	rankTime
	rankString
	rankOther
)

// rank classifies v by kind, so named string and bool types rank
// with strings and booleans.
func rank(v interface{}) int {
	if _, ok := v.(time.Time); ok {
		return rankTime
	}
	if v == nil {
		return rankOther
	}
	switch k := reflect.TypeOf(v).Kind(); {
	case k == reflect.Bool:
		return rankBool
	case k == reflect.String:
		return rankString
	case isNumericKind(k):
		return rankNumber
	}
	return rankOther
}

// Key returns a comparable map key for v such that equal values have
// equal keys. Times are keyed by instant rather than by location, and
// values of named string, bool, and numeric types by their underlying
// value.
func Key(v interface{}) interface{} {
	v = Deref(v)
	switch x := v.(type) {
	case time.Time:
		return x.UnixNano()
	case float32, float64:
		f, _ := Float(x)
		return f
	}
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch k := rv.Kind(); {
	case isNumericKind(k):
		f, _ := Float(v)
		return f
	case k == reflect.String:
		return rv.String()
	case k == reflect.Bool:
		return rv.Bool()
	}
	return v
}
