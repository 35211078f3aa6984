// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-charts/animate"
	"github.com/aclements/go-charts/colors"
	"github.com/aclements/go-charts/domain"
	"github.com/aclements/go-charts/internal/textwidth"
	"github.com/aclements/go-charts/scale"
	"github.com/aclements/go-charts/stack"
	"github.com/aclements/go-charts/tooltip"
)

// banded holds the frame and scales shared by charts that place
// categories in bands along one axis and values along the other.
type banded struct {
	p    Props
	o    orient
	fr   frame
	band *scale.Band
	ls   *scale.Linear
}

func newBanded(p Props, cats []string, d domain.Domain, legend []string) (*banded, error) {
	o := orient(p.Orientation)
	lopts := &scale.LinearOptions{Ticks: p.Ticks}
	g := o.gutters(p, cats, scale.NewLinear(d, scale.Range{Min: 0, Max: 1}, lopts), legend)

	fr := newFrame(p, g)
	band, err := scale.NewBand(cats, o.bandRange(fr.plot), p.bandOptions())
	if err != nil {
		return nil, err
	}
	if band.Extent() > o.bandLen(fr.plot) {
		// MinThickness pushed the bands past the plot. Grow the
		// chart to fit them.
		p = o.grow(p, fr.plot, band.Extent())
		fr = newFrame(p, g)
		if band, err = scale.NewBand(cats, o.bandRange(fr.plot), p.bandOptions()); err != nil {
			return nil, err
		}
	}
	return &banded{
		p:    p,
		o:    o,
		fr:   fr,
		band: band,
		ls:   scale.NewLinear(d, o.valueRange(fr.plot), lopts),
	}, nil
}

// layout starts a layout with the frame decorations and both axes.
func (b *banded) layout(t Type, legend []string, cs *colors.Scale) *Layout {
	l := newLayout(t, b.p)
	l.decorate(b.fr, b.p, legend, cs)
	b.o.valueAxis(l, b.ls, b.p)
	b.o.bandAxis(l, b.band, b.p)
	return l
}

// px maps v to a pixel, clamping it to the value domain so that bars
// stay inside the plot when Min or Max cut off the data.
func (b *banded) px(v float64) float64 {
	d := b.ls.Domain()
	return b.ls.Map(math.Max(d.Min, math.Min(d.Max, v)))
}

// bar returns the mark of a bar in band bp from value v0 to v1.
func (b *banded) bar(class, label string, bp, bw, v0, v1 float64) Mark {
	m := Mark{Kind: RectMark, Class: class, Label: label}
	m.X, m.Y, m.W, m.H = b.o.rect(bp, bw, b.px(v0), b.px(v1))
	return m
}

// enter animates m growing out of value v0.
func (b *banded) enter(m *Mark, v0 float64) {
	if !b.p.Animate {
		return
	}
	pos, size := b.o.keys()
	tr := animate.Enter(m.style(), pos, size, b.px(v0), b.p.Duration)
	m.Transition = &tr
}

// valueLabel returns a text mark showing v just past the end of a bar
// centered at band position mid.
func (b *banded) valueLabel(mid, v float64) Mark {
	px, base := b.px(v), b.ls.Baseline()
	m := Mark{Kind: TextMark, Class: "value", Text: format(v, b.p.Precision)}
	if Orientation(b.o) == Horizontal {
		m.X, m.Y, m.Anchor = px+4, mid+textwidth.Height()/3, AnchorStart
		if px < base {
			m.X, m.Anchor = px-4, AnchorEnd
		}
	} else {
		m.X, m.Y, m.Anchor = mid, px-4, AnchorMiddle
		if px > base {
			m.Y = px + textwidth.Height()
		}
	}
	return m
}

func (p Props) domainOptions() *domain.Options {
	o := domain.NoOverride()
	if p.Min != nil {
		o.Min = *p.Min
	}
	if p.Max != nil {
		o.Max = *p.Max
	}
	return o
}

// Bar lays out a bar chart with one bar per data point. Bars grow from
// the zero baseline, so negative values extend the other way. Points
// with a missing size keep their category slot but draw no bar.
func Bar(data []DataPoint, p Props) (*Layout, error) {
	p, err := p.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	pts := sortPoints(data, p.Sort)
	vs := sizes(pts)
	if !hasValues(vs) {
		return newLayout(BarChart, p).empty(p), nil
	}
	cats := labels(pts)
	cs := colors.NewScale(cats, p.Palette)
	b, err := newBanded(p, cats, domain.Infer(vs, p.domainOptions()), nil)
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	p = b.p
	l := b.layout(BarChart, nil, cs)

	bw := b.band.Bandwidth()
	for i, pt := range pts {
		if domain.IsMissing(pt.Size) {
			continue
		}
		bp := b.band.MapIndex(i)
		m := b.bar("bar", pt.Label, bp, bw, 0, pt.Size)
		m.Fill = cs.Resolve(pt.Label, pt.Color)
		ax, ay := b.o.point(bp+bw/2, b.px(pt.Size))
		interactive(&m, p, pt.fields(p.Precision), ax, ay)
		b.enter(&m, 0)
		l.add(m)
		if p.ShowValues {
			l.add(b.valueLabel(bp+bw/2, pt.Size))
		}
	}
	return l, nil
}

// Stacked lays out a stacked bar chart. series names the segments of
// each point; unnamed segments are numbered. Positive segments stack
// away from zero in one direction and negative segments in the other.
// If p.Normalize is set, each bar is drawn as fractions of its total.
func Stacked(data []StackedPoint, series []string, p Props) (*Layout, error) {
	p, err := p.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("stacked chart: %w", err)
	}

	rows := append([]StackedPoint(nil), data...)
	totals := func(r StackedPoint) float64 { return stack.Accumulate(r.Segments).Total }
	if p.Sort != SortNone {
		sort.SliceStable(rows, func(i, j int) bool {
			return less(totals(rows[i]), totals(rows[j]), p.Sort)
		})
	}

	nseries := len(series)
	var cats []string
	var ends []float64
	stacks := make([]stack.Stacked, len(rows))
	segs := make([][]float64, len(rows))
	seen := false
	for i, r := range rows {
		cats = append(cats, r.Label)
		if len(r.Segments) > nseries {
			nseries = len(r.Segments)
		}
		if hasValues(r.Segments) {
			seen = true
		}
		if p.Normalize {
			stacks[i], segs[i] = stack.Normalize(stack.Accumulate(r.Segments), r.Segments)
			ends = append(ends, 0, stacks[i].Total)
			continue
		}
		var neg, pos float64
		stacks[i], neg, pos = stack.Diverging(r.Segments)
		segs[i] = r.Segments
		ends = append(ends, neg, pos)
	}
	if !seen {
		return newLayout(StackedChart, p).empty(p), nil
	}
	names := make([]string, nseries)
	for j := range names {
		if j < len(series) && series[j] != "" {
			names[j] = series[j]
		} else {
			names[j] = fmt.Sprintf("series %d", j+1)
		}
	}

	cs := colors.NewScale(names, p.Palette)
	b, err := newBanded(p, cats, domain.Infer(ends, p.domainOptions()), names)
	if err != nil {
		return nil, fmt.Errorf("stacked chart: %w", err)
	}
	p = b.p
	l := b.layout(StackedChart, names, cs)

	bw := b.band.Bandwidth()
	for i, r := range rows {
		bp := b.band.MapIndex(i)
		for j, v := range segs[i] {
			if domain.IsMissing(v) || v == 0 {
				continue
			}
			lo, hi := stacks[i].Span(j, segs[i])
			m := b.bar("segment", names[j], bp, bw, lo, hi)
			m.Fill = cs.Map(names[j])
			f := tooltip.Fields{
				Label: names[j],
				Size:  round(r.Segments[j], p.Precision),
				Date:  r.Date,
				Extra: map[string]string{"category": r.Label},
			}
			ax, ay := b.o.point(bp+bw/2, b.px((lo+hi)/2))
			interactive(&m, p, f, ax, ay)
			b.enter(&m, lo)
			l.add(m)
		}
		if p.ShowValues && !p.Normalize {
			l.add(b.valueLabel(bp+bw/2, stacks[i].Total))
		}
	}
	return l, nil
}
