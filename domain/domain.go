// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package domain infers the data extent that a chart scale maps from.
//
// Missing values are represented as NaN throughout this module. A
// missing value is distinct from 0: it is skipped by every extent
// computation, while 0 participates normally.
package domain

import (
	"fmt"
	"math"
)

// Missing is the value used for an absent data point.
var Missing = math.NaN()

// IsMissing reports whether v is an absent value. Infinities are
// treated as absent because they cannot be placed on a scale.
func IsMissing(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// A Domain is the closed interval [Min, Max] of data values a scale
// maps from.
type Domain struct {
	Min, Max float64
}

func (d Domain) String() string {
	return fmt.Sprintf("[%g,%g]", d.Min, d.Max)
}

// Span returns Max-Min.
func (d Domain) Span() float64 {
	return d.Max - d.Min
}

// Degenerate reports whether d contains a single value.
func (d Domain) Degenerate() bool {
	return d.Min == d.Max
}

// CrossesZero reports whether d contains both negative and positive
// values.
func (d Domain) CrossesZero() bool {
	return d.Min < 0 && d.Max > 0
}

// Include returns d expanded to contain v. Missing values are
// ignored.
func (d Domain) Include(v float64) Domain {
	if IsMissing(v) {
		return d
	}
	if v < d.Min {
		d.Min = v
	}
	if v > d.Max {
		d.Max = v
	}
	return d
}

// Options overrides inferred domain bounds. A NaN field means "no
// override" for that bound.
type Options struct {
	Min, Max float64
}

// NoOverride returns Options that override neither bound.
func NoOverride() *Options {
	return &Options{Min: math.NaN(), Max: math.NaN()}
}

// Extent returns the minimum and maximum of the non-missing values in
// vs. ok is false if there are no such values.
func Extent(vs []float64) (min, max float64, ok bool) {
	min, max = math.NaN(), math.NaN()
	for _, v := range vs {
		if IsMissing(v) {
			continue
		}
		if v < min || math.IsNaN(min) {
			min = v
		}
		if v > max || math.IsNaN(max) {
			max = v
		}
	}
	if math.IsNaN(min) {
		return 0, 0, false
	}
	return min, max, true
}

// Infer computes the domain of vs.
//
// Explicit bounds in o win unconditionally. Otherwise the domain
// always includes the zero baseline: max is clamped up to 0 when all
// values are negative and min is clamped down to 0 when all values are
// non-negative. If vs has no non-missing values, the inferred bounds
// are 0, so an entirely empty series yields [0,0]. o may be nil.
func Infer(vs []float64, o *Options) Domain {
	rawMin, rawMax, ok := Extent(vs)
	var d Domain
	if ok {
		d.Max = rawMax
		if rawMax < 0 {
			d.Max = 0
		}
		d.Min = rawMin
		if rawMin >= 0 {
			d.Min = 0
		}
	}
	if o != nil {
		if !math.IsNaN(o.Min) {
			d.Min = o.Min
		}
		if !math.IsNaN(o.Max) {
			d.Max = o.Max
		}
	}
	return d
}

// InferAll is like Infer, but computes the domain over the union of
// several series. Bullet charts use it to span values, targets and
// qualitative ranges at once.
func InferAll(o *Options, series ...[]float64) Domain {
	var all []float64
	for _, s := range series {
		all = append(all, s...)
	}
	return Infer(all, o)
}

// MaxOf returns the largest non-missing value across series, or
// Missing if there is none.
func MaxOf(series ...[]float64) float64 {
	max := math.NaN()
	for _, s := range series {
		if _, hi, ok := Extent(s); ok && (hi > max || math.IsNaN(max)) {
			max = hi
		}
	}
	return max
}

// MinOf returns the smallest non-missing value across series, or
// Missing if there is none.
func MinOf(series ...[]float64) float64 {
	min := math.NaN()
	for _, s := range series {
		if lo, _, ok := Extent(s); ok && (lo < min || math.IsNaN(min)) {
			min = lo
		}
	}
	return min
}
