// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"reflect"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotscale/internal/value"
)

// InferType returns the scale type for a channel bound to encs with
// options o. The first rule that applies wins:
//
// 1. An explicit o.Type, which every explicitly typed encoding must
// agree with.
//
// 2. The explicit type of the first typed encoding. All typed
// encodings must agree.
//
// 3. An explicit o.Domain: point if it lists more than two values,
// otherwise the type inferred from its values.
//
// 4. The type inferred from each encoding's values, in order.
//
// 5. Linear.
func InferType(encs []Encoding, o Options) (ScaleType, error) {
	if o.Type != "" {
		for _, e := range encs {
			if e.Type != "" && e.Type != o.Type {
				return "", &IncompatibleTypeError{o.Type, e.Type}
			}
		}
		return o.Type, nil
	}
	var typ ScaleType
	for _, e := range encs {
		switch {
		case e.Type == "":
		case typ == "":
			typ = e.Type
		case e.Type != typ:
			return "", &IncompatibleTypeError{typ, e.Type}
		}
	}
	if typ != "" {
		return typ, nil
	}
	if o.Domain != nil {
		if value.Len(o.Domain) > 2 {
			return Point, nil
		}
		if t, ok := inferFromValues(o.Domain); ok {
			return t, nil
		}
	}
	for _, e := range encs {
		if t, ok := inferFromValues(e.Value); ok {
			return t, nil
		}
	}
	return Linear, nil
}

// inferFromValues infers a scale type from the first non-null
// element of seq. Strings and booleans, including named string and
// bool types, are ordinal, times are UTC, and anything else is
// linear. It returns false if seq has no non-null element. Elements
// after the first non-null one are never inspected.
func inferFromValues(seq table.Slice) (ScaleType, bool) {
	v, i := value.First(seq)
	if i < 0 {
		return "", false
	}
	if _, ok := v.(time.Time); ok {
		return UTC, true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String, reflect.Bool:
		return Point, true
	}
	return Linear, true
}
