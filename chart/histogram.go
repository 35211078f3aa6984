// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"

	"github.com/aclements/go-charts/animate"
	"github.com/aclements/go-charts/colors"
	"github.com/aclements/go-charts/domain"
	"github.com/aclements/go-charts/histogram"
	"github.com/aclements/go-charts/scale"
	"github.com/aclements/go-charts/tooltip"
)

// HistogramSeries names the bars of a histogram in its color scale.
const HistogramSeries = "count"

// Histogram bins values into about p.Bins bins and lays out one bar
// per bin. Bins run along the band axis as a continuous scale, so
// adjacent bars touch except for a hairline gap.
func Histogram(values []float64, p Props) (*Layout, error) {
	p, err := p.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("histogram chart: %w", err)
	}
	bins := histogram.Bins(values, p.Bins)
	if len(bins) == 0 {
		return newLayout(HistogramChart, p).empty(p), nil
	}

	o := orient(p.Orientation)
	dv := domain.Infer(histogram.Sizes(bins), p.domainOptions())
	db := domain.Domain{Min: bins[0].X0, Max: bins[len(bins)-1].X1}
	vopts := &scale.LinearOptions{Ticks: p.Ticks}
	bopts := &scale.LinearOptions{Ticks: p.Ticks, NoNice: true}
	unit := scale.Range{Min: 0, Max: 1}
	g := gutters{left: tickGutter(scale.NewLinear(db, unit, bopts), p), bottom: lineGutter()}
	if Orientation(o) == Vertical {
		g.left = tickGutter(scale.NewLinear(dv, unit, vopts), p)
	}
	fr := newFrame(p, g)
	sv := scale.NewLinear(dv, o.valueRange(fr.plot), vopts)
	sb := scale.NewLinear(db, o.bandRange(fr.plot), bopts)

	cs := colors.NewScale([]string{HistogramSeries}, p.Palette)
	l := newLayout(HistogramChart, p)
	l.decorate(fr, p, nil, cs)
	o.valueAxis(l, sv, p)
	linearAxis(l, sb, Orientation(o) == Vertical, p)

	pos, size := o.keys()
	for i, bin := range bins {
		b0, b1 := sb.Map(bin.X0), sb.Map(bin.X1)
		if b1 < b0 {
			b0, b1 = b1, b0
		}
		gap := math.Min(1, (b1-b0)/4)
		closing := ")"
		if i == len(bins)-1 {
			closing = "]"
		}
		label := fmt.Sprintf("[%s, %s%s", format(bin.X0, p.Precision), format(bin.X1, p.Precision), closing)
		m := Mark{Kind: RectMark, Class: "bar", Label: HistogramSeries, Fill: cs.Map(HistogramSeries)}
		m.X, m.Y, m.W, m.H = o.rect(b0+gap/2, b1-b0-gap, sv.Map(0), sv.Map(float64(bin.Count)))
		f := tooltip.Fields{
			Label: label,
			Size:  float64(bin.Count),
			Extra: map[string]string{"x0": format(bin.X0, p.Precision), "x1": format(bin.X1, p.Precision)},
		}
		ax, ay := o.point((b0+b1)/2, sv.Map(float64(bin.Count)))
		interactive(&m, p, f, ax, ay)
		if p.Animate {
			tr := animate.Enter(m.style(), pos, size, sv.Map(0), p.Duration)
			m.Transition = &tr
		}
		l.add(m)
	}
	return l, nil
}
