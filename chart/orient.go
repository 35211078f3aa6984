// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"github.com/aclements/go-charts/colors"
	"github.com/aclements/go-charts/internal/textwidth"
	"github.com/aclements/go-charts/scale"
)

// orient maps axis-agnostic geometry to the screen. Layout functions
// work in terms of a band axis, along which categories are placed,
// and a value axis.
type orient Orientation

// rect returns the screen rectangle of a bar occupying
// [bandPos, bandPos+bandwidth] on the band axis and between v0 and v1
// on the value axis, in either order.
func (o orient) rect(bandPos, bandwidth, v0, v1 float64) (x, y, w, h float64) {
	if v1 < v0 {
		v0, v1 = v1, v0
	}
	if Orientation(o) == Horizontal {
		return v0, bandPos, v1 - v0, bandwidth
	}
	return bandPos, v0, bandwidth, v1 - v0
}

// point returns the screen point at band position b and value pixel v.
func (o orient) point(b, v float64) (x, y float64) {
	if Orientation(o) == Horizontal {
		return v, b
	}
	return b, v
}

// bandRange returns the pixel range of the band axis of plot.
func (o orient) bandRange(plot Box) scale.Range {
	if Orientation(o) == Horizontal {
		return scale.Range{Min: plot.Y, Max: plot.Y + plot.H}
	}
	return scale.Range{Min: plot.X, Max: plot.X + plot.W}
}

// valueRange returns the pixel range of the value axis of plot.
// Vertical values grow upward.
func (o orient) valueRange(plot Box) scale.Range {
	if Orientation(o) == Horizontal {
		return scale.Range{Min: plot.X, Max: plot.X + plot.W}
	}
	return scale.Range{Min: plot.Y + plot.H, Max: plot.Y}
}

// bandLen returns the available length of the band axis of a chart
// of the given props.
func (o orient) bandLen(plot Box) float64 {
	return o.bandRange(plot).Len()
}

// grow returns p enlarged so that the band axis is at least need
// pixels long.
func (o orient) grow(p Props, plot Box, need float64) Props {
	extra := need - o.bandLen(plot)
	if extra <= 0 {
		return p
	}
	if Orientation(o) == Horizontal {
		p.Height += extra
	} else {
		p.Width += extra
	}
	return p
}

// keys returns the animated position and size properties of the value
// axis.
func (o orient) keys() (pos, size string) {
	if Orientation(o) == Horizontal {
		return "x", "width"
	}
	return "y", "height"
}

// gutters returns the frame gutters for a band axis over cats and a
// value axis over ls.
func (o orient) gutters(p Props, cats []string, ls *scale.Linear, legend []string) gutters {
	if Orientation(o) == Horizontal {
		return gutters{left: labelGutter(cats, p), bottom: lineGutter(), legend: legend}
	}
	return gutters{left: tickGutter(ls, p), bottom: lineGutter(), legend: legend}
}

// valueAxis adds grid lines, tick labels and the baseline of ls.
func (o orient) valueAxis(l *Layout, ls *scale.Linear, p Props) {
	linearAxis(l, ls, Orientation(o) == Horizontal, p)
	base := ls.Baseline()
	x0, y0 := o.point(o.bandRange(l.Plot).Min, base)
	x1, y1 := o.point(o.bandRange(l.Plot).Max, base)
	l.add(Mark{Kind: LineMark, Class: "baseline", X: x0, Y: y0, X2: x1, Y2: y1, Stroke: axisColor})
}

// bandAxis adds category labels for band.
func (o orient) bandAxis(l *Layout, band *scale.Band, p Props) {
	bw := band.Bandwidth()
	for i, c := range band.Categories() {
		mid := band.MapIndex(i) + bw/2
		text := textwidth.Truncate(c, p.TruncateLabels)
		m := Mark{Kind: TextMark, Class: "category", Text: text, Label: c}
		if Orientation(o) == Horizontal {
			m.X, m.Y, m.Anchor = l.Plot.X-tickPad, mid+textwidth.Height()/3, AnchorEnd
		} else {
			if text = textwidth.Fit(text, band.Step()); text == "" {
				continue
			}
			m.Text = text
			m.X, m.Y, m.Anchor = mid, l.Plot.Y+l.Plot.H+textwidth.Height(), AnchorMiddle
		}
		l.add(m)
	}
}

var (
	axisColor = colors.RGBA(colors.Neutral)
	gridColor = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
)

// linearAxis adds grid lines and tick labels for ls. If along is set,
// the axis runs along the bottom of the plot; otherwise down its left
// side.
func linearAxis(l *Layout, ls *scale.Linear, along bool, p Props) {
	plot := l.Plot
	for _, t := range ls.GridTicks(p.Ticks) {
		v := ls.Map(t)
		m := Mark{Kind: LineMark, Class: "grid", Stroke: gridColor}
		if along {
			m.X, m.Y, m.X2, m.Y2 = v, plot.Y, v, plot.Y+plot.H
		} else {
			m.X, m.Y, m.X2, m.Y2 = plot.X, v, plot.X+plot.W, v
		}
		l.add(m)
	}
	for _, t := range ls.Ticks(p.Ticks) {
		v := ls.Map(t)
		m := Mark{Kind: TextMark, Class: "tick", Text: format(t, p.Precision)}
		if along {
			m.X, m.Y, m.Anchor = v, plot.Y+plot.H+textwidth.Height(), AnchorMiddle
		} else {
			m.X, m.Y, m.Anchor = plot.X-tickPad, v+textwidth.Height()/3, AnchorEnd
		}
		l.add(m)
	}
}
