// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"errors"
	"fmt"
)

var (
	ErrIncompatibleScaleType = errors.New("scale incompatible with channel")
	ErrUnknownScaleType      = errors.New("unknown scale type")

	// ErrLogDomain is returned when a log scale's domain includes
	// or crosses zero.
	ErrLogDomain = errors.New("log scale domain must not include zero")
)

// IncompatibleTypeError records two explicit scale types for one
// channel that disagree.
type IncompatibleTypeError struct {
	Scale   ScaleType // from the options, or the first typed encoding
	Channel ScaleType // from the conflicting encoding
}

func (e *IncompatibleTypeError) Error() string {
	return fmt.Sprintf("%s: %s != %s", ErrIncompatibleScaleType, e.Scale, e.Channel)
}

func (e *IncompatibleTypeError) Is(target error) bool {
	return target == ErrIncompatibleScaleType
}

// UnknownTypeError records a scale type with no constructor.
type UnknownTypeError struct {
	Type ScaleType
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownScaleType, string(e.Type))
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownScaleType
}
