// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/aclements/go-charts/colors"
	"github.com/aclements/go-charts/domain"
	"github.com/aclements/go-charts/stack"
	"github.com/aclements/go-charts/tooltip"
	"github.com/aclements/go-moremath/vec"
)

// Bullet series names, used for legends and highlighting.
const (
	BulletValue  = "value"
	BulletTarget = "target"
)

// Bullet lays out a bullet chart. Each row draws its qualitative
// ranges as stacked background bands, the value as a narrow bar and
// the target as a tick across the band. The value domain spans
// values, targets and range totals. p.Sort orders rows by value.
func Bullet(data []BulletPoint, p Props) (*Layout, error) {
	p, err := p.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("bullet chart: %w", err)
	}
	data = append([]BulletPoint(nil), data...)
	if p.Sort != SortNone {
		sort.SliceStable(data, func(i, j int) bool {
			return less(data[i].Value, data[j].Value, p.Sort)
		})
	}
	var cats []string
	var values, targets, ranges []float64
	stacks := make([]stack.Stacked, len(data))
	nranges := 0
	for i, r := range data {
		cats = append(cats, r.Label)
		values = append(values, r.Value)
		targets = append(targets, r.Target)
		stacks[i] = stack.Accumulate(r.Ranges)
		if hasValues(r.Ranges) {
			ranges = append(ranges, stacks[i].Total)
		}
		if len(r.Ranges) > nranges {
			nranges = len(r.Ranges)
		}
	}
	if !hasValues(values, targets, ranges) {
		return newLayout(BulletChart, p).empty(p), nil
	}

	legend := []string{BulletValue, BulletTarget}
	cs := colors.NewScale(legend, p.Palette)
	b, err := newBanded(p, cats, domain.InferAll(p.domainOptions(), values, targets, ranges), legend)
	if err != nil {
		return nil, fmt.Errorf("bullet chart: %w", err)
	}
	p = b.p
	l := b.layout(BulletChart, legend, cs)

	// Qualitative bands darken with distance from zero.
	var shades []float64
	if nranges > 0 {
		shades = vec.Linspace(0.85, 0.45, nranges)
	}
	bw := b.band.Bandwidth()
	for i, r := range data {
		bp := b.band.MapIndex(i)
		for j, v := range r.Ranges {
			if domain.IsMissing(v) || v == 0 {
				continue
			}
			lo, hi := stacks[i].Span(j, r.Ranges)
			m := b.bar("range", r.Label, bp, bw, lo, hi)
			m.Fill = gray(shades[j])
			l.add(m)
		}

		if !domain.IsMissing(r.Value) {
			inset := bw / 3
			m := b.bar("bar", BulletValue, bp+inset, bw-2*inset, 0, r.Value)
			m.Fill = cs.Map(BulletValue)
			f := tooltip.Fields{
				Label: r.Label,
				Size:  round(r.Value, p.Precision),
				Extra: map[string]string{"target": format(r.Target, p.Precision)},
			}
			ax, ay := b.o.point(bp+bw/2, b.px(r.Value))
			interactive(&m, p, f, ax, ay)
			b.enter(&m, 0)
			l.add(m)
			if p.ShowValues {
				l.add(b.valueLabel(bp+bw/2, r.Value))
			}
		}

		if !domain.IsMissing(r.Target) {
			v := b.px(r.Target)
			x0, y0 := b.o.point(bp+bw*0.2, v)
			x1, y1 := b.o.point(bp+bw*0.8, v)
			l.add(Mark{Kind: LineMark, Class: "target", X: x0, Y: y0, X2: x1, Y2: y1, Stroke: cs.Map(BulletTarget), Label: BulletTarget})
		}
	}
	return l, nil
}

// Dumbbell series names.
const (
	DumbbellStart = "start"
	DumbbellEnd   = "end"
)

// Dumbbell lays out a dumbbell chart: one dot per end of each row,
// joined by a line. A row with a missing end draws only the other.
func Dumbbell(data []DumbbellPoint, p Props) (*Layout, error) {
	p, err := p.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("dumbbell chart: %w", err)
	}
	rows := append([]DumbbellPoint(nil), data...)
	if p.Sort != SortNone {
		sort.SliceStable(rows, func(i, j int) bool {
			return less(rows[i].End-rows[i].Start, rows[j].End-rows[j].Start, p.Sort)
		})
	}
	var cats []string
	var starts, ends []float64
	for _, r := range rows {
		cats = append(cats, r.Label)
		starts = append(starts, r.Start)
		ends = append(ends, r.End)
	}
	if !hasValues(starts, ends) {
		return newLayout(DumbbellChart, p).empty(p), nil
	}

	legend := []string{DumbbellStart, DumbbellEnd}
	cs := colors.NewScale(legend, p.Palette)
	b, err := newBanded(p, cats, domain.InferAll(p.domainOptions(), starts, ends), legend)
	if err != nil {
		return nil, fmt.Errorf("dumbbell chart: %w", err)
	}
	p = b.p
	l := b.layout(DumbbellChart, legend, cs)

	bw := b.band.Bandwidth()
	r := bw / 4
	if r > DefaultRadius*2 {
		r = DefaultRadius * 2
	}
	for i, row := range rows {
		bp := b.band.MapIndex(i)
		mid := bp + bw/2
		if !domain.IsMissing(row.Start) && !domain.IsMissing(row.End) {
			x0, y0 := b.o.point(mid, b.px(row.Start))
			x1, y1 := b.o.point(mid, b.px(row.End))
			l.add(Mark{Kind: LineMark, Class: "connector", X: x0, Y: y0, X2: x1, Y2: y1, Stroke: axisColor, Label: row.Label})
		}
		for _, end := range []struct {
			name string
			v    float64
		}{{DumbbellStart, row.Start}, {DumbbellEnd, row.End}} {
			if domain.IsMissing(end.v) {
				continue
			}
			x, y := b.o.point(mid, b.px(end.v))
			m := Mark{Kind: CircleMark, Class: "dot", X: x, Y: y, R: r, Fill: cs.Map(end.name), Label: end.name}
			f := tooltip.Fields{
				Label: row.Label,
				Size:  round(end.v, p.Precision),
				Extra: map[string]string{"end": end.name},
			}
			interactive(&m, p, f, x, y)
			l.add(m)
		}
	}
	return l, nil
}

func gray(level float64) color.RGBA {
	v := uint8(level * 0xff)
	return color.RGBA{v, v, v, 0xff}
}
