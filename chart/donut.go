// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"

	"github.com/aclements/go-charts/animate"
	"github.com/aclements/go-charts/colors"
	"github.com/aclements/go-charts/pie"
)

// Donut lays out a donut chart with one slice per positive data point,
// clockwise from 12 o'clock in data order (or p.Sort order). Missing,
// zero and negative sizes get no slice.
func Donut(data []DataPoint, p Props) (*Layout, error) {
	p, err := p.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("donut chart: %w", err)
	}
	pts := sortPoints(data, p.Sort)
	arcs := pie.Angles(sizes(pts), pie.Options{PadAngle: p.PadAngle})
	total := 0.0
	for _, a := range arcs {
		if !a.Empty() {
			total += a.Value
		}
	}
	if total == 0 {
		return newLayout(DonutChart, p).empty(p), nil
	}

	cats := labels(pts)
	cs := colors.NewScale(cats, p.Palette)
	fr := newFrame(p, gutters{legend: cs.Labels()})
	l := newLayout(DonutChart, p)
	l.decorate(fr, p, cs.Labels(), cs)

	plot := fr.plot
	cx, cy := plot.X+plot.W/2, plot.Y+plot.H/2
	outer := math.Min(plot.W, plot.H) / 2
	inner := outer * p.InnerRadius
	for _, a := range arcs {
		if a.Empty() {
			continue
		}
		pt := pts[a.Index]
		m := Mark{Kind: ArcMark, Class: "slice", X: cx, Y: cy, R: outer, R0: inner, Start: a.Start, End: a.End, Label: pt.Label}
		m.Fill = cs.Resolve(pt.Label, pt.Color)
		ax, ay := a.Centroid(inner, outer)
		interactive(&m, p, pt.fields(p.Precision), cx+ax, cy+ay)
		if p.Animate {
			from := m.style()
			from.Values["end"] = a.Start
			tr := animate.Update(from, m.style(), p.Duration)
			m.Transition = &tr
		}
		l.add(m)
		if p.ShowValues {
			l.add(Mark{Kind: TextMark, Class: "value", X: cx + ax, Y: cy + ay, Text: format(pt.Size, p.Precision), Anchor: AnchorMiddle})
		}
	}
	if p.ShowValues {
		l.add(Mark{Kind: TextMark, Class: "total", X: cx, Y: cy, Text: format(total, p.Precision), Anchor: AnchorMiddle})
	}
	return l, nil
}
