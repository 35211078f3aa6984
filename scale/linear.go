// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data domains onto pixel ranges.
//
// Linear scales map a continuous domain to a continuous range. Band
// scales map an ordered set of categories to equal, padded slots of a
// range.
package scale

import (
	"fmt"
	"math"

	"github.com/aclements/go-charts/domain"
	"github.com/aclements/go-moremath/scale"
)

// DefaultTicks is the tick count used to nice a linear domain when
// LinearOptions does not specify one.
const DefaultTicks = 5

// A Range is a pixel interval. Min may be greater than Max, in which
// case the scale is inverted (typical for y axes, where pixel 0 is at
// the top).
type Range struct {
	Min, Max float64
}

// Len returns the absolute length of r.
func (r Range) Len() float64 {
	return math.Abs(r.Max - r.Min)
}

func (r Range) String() string {
	return fmt.Sprintf("[%g,%g]px", r.Min, r.Max)
}

// LinearOptions controls construction of a Linear scale.
type LinearOptions struct {
	// Ticks is the approximate number of ticks the domain is
	// niced to. If 0, DefaultTicks is used.
	Ticks int

	// NoNice disables rounding the domain outward to tick
	// boundaries.
	NoNice bool

	// Clamp clamps mapped values to the range.
	Clamp bool
}

// Linear is an affine map from a domain to a pixel range.
type Linear struct {
	s     scale.Linear
	r     Range
	ticks int
}

// NewLinear returns a linear scale from d to r. o may be nil.
//
// Unless o.NoNice is set, the domain bounds are rounded outward to
// human-friendly tick boundaries. The result depends only on d and
// the tick count. A degenerate domain is widened first so that Map
// never divides by zero: [0,0] becomes [0,1] and [a,a] is extended to
// include 0.
func NewLinear(d domain.Domain, r Range, o *LinearOptions) *Linear {
	var opts LinearOptions
	if o != nil {
		opts = *o
	}
	if opts.Ticks <= 0 {
		opts.Ticks = DefaultTicks
	}

	d = widen(d)
	ls := scale.Linear{Min: d.Min, Max: d.Max, Clamp: opts.Clamp}
	if !opts.NoNice {
		ls.Nice(scale.TickOptions{Max: tickCount(opts.Ticks)})
		nd := domain.Domain{Min: ls.Min, Max: ls.Max}
		if domain.IsMissing(nd.Min) || domain.IsMissing(nd.Max) || nd.Degenerate() {
			ls.Min, ls.Max = d.Min, d.Max
		}
	}
	return &Linear{s: ls, r: r, ticks: opts.Ticks}
}

// minTicks is the fewest ticks go-moremath can place on a domain.
// Below it, Nice leaves the domain NaN and Ticks panics.
const minTicks = 3

func tickCount(n int) int {
	if n < minTicks {
		return minTicks
	}
	return n
}

func widen(d domain.Domain) domain.Domain {
	if d.Min > d.Max {
		d.Min, d.Max = d.Max, d.Min
	}
	if !d.Degenerate() {
		return d
	}
	switch {
	case d.Min == 0:
		d.Max = 1
	case d.Min > 0:
		d.Min = 0
	default:
		d.Max = 0
	}
	return d
}

// Domain returns the (niced) domain of s.
func (s *Linear) Domain() domain.Domain {
	return domain.Domain{Min: s.s.Min, Max: s.s.Max}
}

// Range returns the pixel range of s.
func (s *Linear) Range() Range {
	return s.r
}

// Map maps domain value v to a pixel. Missing values map to NaN;
// callers are expected to skip them.
func (s *Linear) Map(v float64) float64 {
	return s.r.Min + s.s.Map(v)*(s.r.Max-s.r.Min)
}

// Unmap maps pixel p back to a domain value.
func (s *Linear) Unmap(p float64) float64 {
	w := s.r.Max - s.r.Min
	if w == 0 {
		return s.s.Min
	}
	return s.s.Unmap((p - s.r.Min) / w)
}

// Ticks returns approximately n human-readable major tick values
// spanning the domain of s, in increasing order. If n <= 0, the
// scale's tick count is used. At least 3 ticks are requested.
func (s *Linear) Ticks(n int) []float64 {
	if n <= 0 {
		n = s.ticks
	}
	major, _ := s.s.Ticks(scale.TickOptions{Max: tickCount(n)})
	return major
}

// GridTicks is like Ticks, but omits the zero tick, which coincides
// with the axis baseline.
func (s *Linear) GridTicks(n int) []float64 {
	ticks := s.Ticks(n)
	eps := 1e-9 * (s.s.Max - s.s.Min)
	out := ticks[:0:0]
	for _, t := range ticks {
		if math.Abs(t) > eps {
			out = append(out, t)
		}
	}
	return out
}

// Baseline returns the pixel of the value closest to zero inside the
// domain. Bars grow from the baseline.
func (s *Linear) Baseline() float64 {
	switch {
	case s.s.Min > 0:
		return s.Map(s.s.Min)
	case s.s.Max < 0:
		return s.Map(s.s.Max)
	}
	return s.Map(0)
}

func (s *Linear) String() string {
	return fmt.Sprintf("linear %v => %v", s.Domain(), s.r)
}
