// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package channel

// defaultInset is the inset on each side of an interval shape when
// the caller gives none. Adjacent bars end up one unit apart.
const defaultInset = 0.5

// InsetX defaults the left and right insets of o if none of Inset,
// InsetLeft, and InsetRight is set.
func InsetX(o Options) Options {
	if o.Inset == nil && o.InsetLeft == nil && o.InsetRight == nil {
		o.InsetLeft, o.InsetRight = float(defaultInset), float(defaultInset)
	}
	return o
}

// InsetY defaults the top and bottom insets of o if none of Inset,
// InsetTop, and InsetBottom is set.
func InsetY(o Options) Options {
	if o.Inset == nil && o.InsetTop == nil && o.InsetBottom == nil {
		o.InsetTop, o.InsetBottom = float(defaultInset), float(defaultInset)
	}
	return o
}

// Insets returns the effective inset of each side. A side without
// its own inset uses Inset, and 0 if that is unset too.
func (o Options) Insets() (top, right, bottom, left float64) {
	side := func(p *float64) float64 {
		switch {
		case p != nil:
			return *p
		case o.Inset != nil:
			return *o.Inset
		}
		return 0
	}
	return side(o.InsetTop), side(o.InsetRight), side(o.InsetBottom), side(o.InsetLeft)
}

func float(x float64) *float64 {
	return &x
}
