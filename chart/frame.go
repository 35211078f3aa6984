// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/aclements/go-charts/colors"
	"github.com/aclements/go-charts/internal/textwidth"
	"github.com/aclements/go-charts/scale"
	"github.com/aclements/go-gg/gg/layout"
)

const (
	tickPad    = 6  // gap between tick labels and the plot
	swatchSize = 10 // legend color swatch
	legendRow  = 18
)

func titleHeight() float64 {
	return textwidth.Height() + 8
}

// A cell is a fixed-size or flexible grid element.
type cell struct {
	layout.Leaf
	w, h         float64
	flexw, flexh bool
}

func (c *cell) SizeHint() (w, h float64, flexw, flexh bool) {
	return c.w, c.h, c.flexw, c.flexh
}

// box returns the laid out cell offset by (dx, dy).
func (c *cell) box(dx, dy float64) Box {
	x, y, w, h := c.Layout()
	return Box{x + dx, y + dy, w, h}
}

// A frame divides a chart into a title row, axis gutters, the plot
// area and a legend column:
//
//	+-------+--------------+--------+
//	|          title                |
//	+-------+--------------+--------+
//	| left  |    plot      | legend |
//	+-------+--------------+--------+
//	|       |   bottom     |        |
//	+-------+--------------+--------+
type frame struct {
	title, left, plot, bottom, legend Box
}

// gutters are the sizes of the frame's fixed cells.
type gutters struct {
	left, bottom float64
	legend       []string
}

func newFrame(p Props, g gutters) frame {
	title := &cell{flexw: true}
	if p.Title != "" {
		title.w, title.h = textwidth.Width(p.Title), titleHeight()
	}
	left := &cell{w: g.left, flexh: true}
	plot := &cell{flexw: true, flexh: true}
	bottom := &cell{h: g.bottom, flexw: true}
	legend := &cell{flexh: true}
	if p.ShowLegend && len(g.legend) > 0 {
		legend.w = textwidth.Max(g.legend) + swatchSize + 3*tickPad
	}

	var grid layout.Grid
	grid.Add(title, 0, 0, 3, 1)
	grid.Add(left, 0, 1, 1, 1)
	grid.Add(plot, 1, 1, 1, 1)
	grid.Add(legend, 2, 1, 1, 1)
	grid.Add(bottom, 1, 2, 1, 1)
	// Grid positions its children relative to the origin.
	m := p.Margins
	grid.SetLayout(0, 0, p.Width-m.Left-m.Right, p.Height-m.Top-m.Bottom)

	return frame{
		title:  title.box(m.Left, m.Top),
		left:   left.box(m.Left, m.Top),
		plot:   plot.box(m.Left, m.Top),
		bottom: bottom.box(m.Left, m.Top),
		legend: legend.box(m.Left, m.Top),
	}
}

// tickGutter returns the width needed for the tick labels of a scale
// over d.
func tickGutter(ls *scale.Linear, p Props) float64 {
	var ss []string
	for _, t := range ls.Ticks(p.Ticks) {
		ss = append(ss, format(t, p.Precision))
	}
	return textwidth.Max(ss) + tickPad
}

// labelGutter returns the width needed for category labels.
func labelGutter(cats []string, p Props) float64 {
	var ss []string
	for _, c := range cats {
		ss = append(ss, textwidth.Truncate(c, p.TruncateLabels))
	}
	return textwidth.Max(ss) + tickPad
}

func lineGutter() float64 {
	return textwidth.Height() + tickPad
}

// decorate adds the title and legend marks of f to l.
func (l *Layout) decorate(f frame, p Props, legend []string, cs *colors.Scale) {
	l.Plot = f.plot
	if p.Title != "" {
		l.add(Mark{Kind: TextMark, Class: "title", X: f.title.X + f.title.W/2, Y: f.title.Y + f.title.H - 4, Text: p.Title, Anchor: AnchorMiddle})
	}
	for _, name := range legend {
		l.Legend = append(l.Legend, LegendEntry{name, cs.Map(name)})
	}
	if !p.ShowLegend {
		return
	}
	x := f.legend.X + tickPad
	for i, e := range l.Legend {
		y := f.legend.Y + float64(i)*legendRow
		l.add(Mark{Kind: RectMark, Class: "legend", X: x, Y: y, W: swatchSize, H: swatchSize, Fill: e.Color, Label: e.Label, Opacity: p.Highlight.Opacity(e.Label, colors.Hex(e.Color))})
		l.add(Mark{Kind: TextMark, Class: "legend", X: x + swatchSize + tickPad, Y: y + swatchSize, Text: e.Label, Anchor: AnchorStart, Label: e.Label})
	}
}
