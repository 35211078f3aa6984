// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"github.com/aclements/go-charts/animate"
	"github.com/aclements/go-charts/colors"
	"github.com/aclements/go-charts/domain"
	"github.com/aclements/go-charts/scale"
	"github.com/aclements/go-charts/tooltip"
	"github.com/aclements/go-charts/voronoi"
)

// Scatter lays out a scatter chart. p.Min and p.Max override the y
// domain. Points with a missing coordinate are skipped. Hovering
// anywhere in the plot area resolves to the nearest dot.
func Scatter(data []ScatterPoint, p Props) (*Layout, error) {
	p, err := p.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("scatter chart: %w", err)
	}
	var xs, ys []float64
	var cats []string
	for _, pt := range data {
		if domain.IsMissing(pt.X) || domain.IsMissing(pt.Y) {
			continue
		}
		xs = append(xs, pt.X)
		ys = append(ys, pt.Y)
		cats = append(cats, pt.Label)
	}
	if len(xs) == 0 {
		return newLayout(ScatterChart, p).empty(p), nil
	}

	cs := colors.NewScale(cats, p.Palette)
	dx, dy := domain.Infer(xs, nil), domain.Infer(ys, p.domainOptions())
	lopts := &scale.LinearOptions{Ticks: p.Ticks}
	fr := newFrame(p, gutters{
		left:   tickGutter(scale.NewLinear(dy, scale.Range{Min: 0, Max: 1}, lopts), p),
		bottom: lineGutter(),
		legend: cs.Labels(),
	})
	plot := fr.plot
	sx := scale.NewLinear(dx, scale.Range{Min: plot.X, Max: plot.X + plot.W}, lopts)
	sy := scale.NewLinear(dy, scale.Range{Min: plot.Y + plot.H, Max: plot.Y}, lopts)

	l := newLayout(ScatterChart, p)
	l.decorate(fr, p, cs.Labels(), cs)
	linearAxis(l, sx, true, p)
	linearAxis(l, sy, false, p)

	var centers []voronoi.Point
	for _, pt := range data {
		if domain.IsMissing(pt.X) || domain.IsMissing(pt.Y) {
			continue
		}
		r := pt.Radius
		if r <= 0 || domain.IsMissing(r) {
			r = DefaultRadius
		}
		x, y := sx.Map(pt.X), sy.Map(pt.Y)
		m := Mark{Kind: CircleMark, Class: "dot", X: x, Y: y, R: r, Fill: cs.Resolve(pt.Label, pt.Color), Label: pt.Label}
		f := tooltip.Fields{
			Label: pt.Label,
			Size:  round(pt.Y, p.Precision),
			Color: pt.Color,
			Extra: map[string]string{"x": format(pt.X, p.Precision), "y": format(pt.Y, p.Precision)},
		}
		interactive(&m, p, f, x, y)
		if p.Animate {
			from := m.style()
			from.Values["r"] = 0
			tr := animate.Update(from, m.style(), p.Duration)
			m.Transition = &tr
		}
		centers = append(centers, voronoi.Point{X: x, Y: y})
		l.regionMarks = append(l.regionMarks, l.add(m))
	}
	l.regions = voronoi.Build(centers, voronoi.Rect{X0: plot.X, Y0: plot.Y, X1: plot.X + plot.W, Y1: plot.Y + plot.H})
	return l, nil
}
