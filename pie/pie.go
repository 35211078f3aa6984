// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pie computes the angles of pie and donut chart arcs.
//
// Angles are in radians, measured clockwise from 12 o'clock, which is
// the natural orientation for SVG's downward y axis.
package pie

import (
	"math"
	"sort"

	"github.com/aclements/go-charts/domain"
)

// An Arc is the angular extent of one value.
type Arc struct {
	Index      int // Index of the value in the input
	Value      float64
	Start, End float64
}

// Empty reports whether a has no angular extent.
func (a Arc) Empty() bool {
	return a.End <= a.Start
}

// Mid returns the angle halfway through a.
func (a Arc) Mid() float64 {
	return (a.Start + a.End) / 2
}

// Point returns the point at radius r and angle theta relative to the
// pie's center.
func Point(r, theta float64) (x, y float64) {
	return r * math.Sin(theta), -r * math.Cos(theta)
}

// Centroid returns the point halfway through a, between radii inner
// and outer, relative to the pie's center. Labels are placed there.
func (a Arc) Centroid(inner, outer float64) (x, y float64) {
	return Point((inner+outer)/2, a.Mid())
}

// Options controls arc computation.
type Options struct {
	// StartAngle and EndAngle bound the pie. If both are 0, the
	// pie is a full circle.
	StartAngle, EndAngle float64

	// PadAngle is the gap between adjacent arcs. Each non-empty arc
	// is shrunk by PadAngle/2 at both ends, but never below zero
	// width.
	PadAngle float64

	// Sort lays arcs out in decreasing value order instead of input
	// order. Arcs are still returned in input order.
	Sort bool
}

// Angles returns one arc per value, in input order. Missing and
// non-positive values get an empty arc at their position. If no value
// is positive, every arc is empty.
func Angles(values []float64, o Options) []Arc {
	start, end := o.StartAngle, o.EndAngle
	if start == 0 && end == 0 {
		end = 2 * math.Pi
	}

	total := 0.0
	for _, v := range values {
		if weight(v) > 0 {
			total += v
		}
	}

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	if o.Sort {
		sort.SliceStable(order, func(i, j int) bool {
			return weight(values[order[i]]) > weight(values[order[j]])
		})
	}

	arcs := make([]Arc, len(values))
	k := 0.0
	if total > 0 {
		k = (end - start) / total
	}
	theta := start
	for _, i := range order {
		w := weight(values[i]) * k
		a := Arc{Index: i, Value: values[i], Start: theta, End: theta + w}
		if w > 0 && o.PadAngle > 0 {
			pad := math.Min(o.PadAngle/2, w/2)
			a.Start += pad
			a.End -= pad
		}
		arcs[i] = a
		theta += w
	}
	return arcs
}

func weight(v float64) float64 {
	if domain.IsMissing(v) || v <= 0 {
		return 0
	}
	return v
}

// Find returns the index of the arc containing angle theta, or -1.
func Find(arcs []Arc, theta float64) int {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	for _, a := range arcs {
		if a.Empty() {
			continue
		}
		if theta >= a.Start && theta < a.End {
			return a.Index
		}
	}
	return -1
}
