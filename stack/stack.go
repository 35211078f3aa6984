// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stack computes cumulative offsets for segments placed end to
// end along an axis, as in stacked bar charts and the qualitative
// ranges of bullet charts.
package stack

import "github.com/aclements/go-charts/domain"

// Stacked is the result of stacking a sequence of segments.
//
// Offsets[j] is the sum of the non-missing segments before j. A
// missing segment keeps its position but has zero width, so it does
// not shift the segments after it.
type Stacked struct {
	Offsets []float64
	Total   float64
}

// Accumulate stacks segments in order.
func Accumulate(segments []float64) Stacked {
	s := Stacked{Offsets: make([]float64, len(segments))}
	for j, v := range segments {
		s.Offsets[j] = s.Total
		if !domain.IsMissing(v) {
			s.Total += v
		}
	}
	return s
}

// Width returns the extent of segment v, which is 0 for a missing
// segment.
func Width(v float64) float64 {
	if domain.IsMissing(v) {
		return 0
	}
	return v
}

// Span returns the start and end offsets of segment j of segments
// stacked as s.
func (s Stacked) Span(j int, segments []float64) (lo, hi float64) {
	lo = s.Offsets[j]
	return lo, lo + Width(segments[j])
}

// Diverging stacks positive segments upward from 0 and negative
// segments downward from 0, each in order. Offsets[j] is the start of
// segment j on its side of the baseline; Total is the net sum. Neg and
// Pos are the totals of each side.
func Diverging(segments []float64) (s Stacked, neg, pos float64) {
	s.Offsets = make([]float64, len(segments))
	for j, v := range segments {
		switch {
		case domain.IsMissing(v):
			s.Offsets[j] = pos
		case v < 0:
			s.Offsets[j] = neg
			neg += v
		default:
			s.Offsets[j] = pos
			pos += v
		}
	}
	s.Total = neg + pos
	return s, neg, pos
}

// Normalize returns s and segments rescaled so that the total is 1.
// If the total is 0, the result is all zeros.
func Normalize(s Stacked, segments []float64) (Stacked, []float64) {
	ns := Stacked{Offsets: make([]float64, len(s.Offsets))}
	nseg := make([]float64, len(segments))
	if s.Total == 0 {
		return ns, nseg
	}
	for j := range s.Offsets {
		ns.Offsets[j] = s.Offsets[j] / s.Total
	}
	for j, v := range segments {
		if domain.IsMissing(v) {
			nseg[j] = v
			continue
		}
		nseg[j] = v / s.Total
	}
	ns.Total = 1
	return ns, nseg
}
