// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"math"
	"time"

	"github.com/aclements/go-charts/animate"
	"github.com/aclements/go-charts/colors"
	"github.com/aclements/go-charts/tooltip"
	"github.com/aclements/go-charts/voronoi"
)

// A Kind is the shape of a mark.
type Kind int

const (
	RectMark    Kind = iota // X, Y, W, H
	CircleMark              // center X, Y; radius R
	LineMark                // X, Y to X2, Y2
	PolygonMark             // Points
	ArcMark                 // center X, Y; radii R0 to R; angles Start to End
	TextMark                // Text anchored at X, Y
)

// An Anchor aligns text relative to its position.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// A Mark is one visual primitive of a laid out chart.
type Mark struct {
	Kind  Kind
	Class string // role of the mark, such as "bar", "axis" or "legend"

	X, Y, W, H float64
	X2, Y2     float64
	R, R0      float64
	Start, End float64
	Points     []voronoi.Point

	Text   string
	Anchor Anchor

	Fill    color.Color // nil means no fill
	Stroke  color.Color // nil means no stroke
	Opacity float64

	// Label identifies the datum the mark represents, if any.
	Label string

	// Tooltip and Event are set on marks that respond to hover and
	// click.
	Tooltip string
	Event   *tooltip.Event

	// Transition, if non-nil, animates the mark into place.
	Transition *animate.Transition
}

// Interactive reports whether m carries a datum.
func (m *Mark) Interactive() bool {
	return m.Event != nil
}

// Contains reports whether the point (x, y) lies in m.
func (m *Mark) Contains(x, y float64) bool {
	switch m.Kind {
	case RectMark:
		return x >= m.X && x <= m.X+m.W && y >= m.Y && y <= m.Y+m.H
	case CircleMark:
		return math.Hypot(x-m.X, y-m.Y) <= m.R
	case PolygonMark:
		return voronoi.Contains(m.Points, voronoi.Point{X: x, Y: y})
	case ArcMark:
		r := math.Hypot(x-m.X, y-m.Y)
		if r < m.R0 || r > m.R {
			return false
		}
		theta := math.Atan2(x-m.X, m.Y-y)
		if theta < 0 {
			theta += 2 * math.Pi
		}
		return theta >= m.Start && theta < m.End
	}
	return false
}

// style returns the animatable properties of m.
func (m *Mark) style() animate.Style {
	s := animate.Style{
		Values: map[string]float64{"opacity": m.Opacity},
		Colors: map[string]color.RGBA{},
	}
	switch m.Kind {
	case RectMark:
		s.Values["x"], s.Values["y"] = m.X, m.Y
		s.Values["width"], s.Values["height"] = m.W, m.H
	case CircleMark:
		s.Values["cx"], s.Values["cy"], s.Values["r"] = m.X, m.Y, m.R
	case ArcMark:
		s.Values["start"], s.Values["end"] = m.Start, m.End
	}
	if m.Fill != nil {
		s.Colors["fill"] = colors.RGBA(m.Fill)
	}
	return s
}

// A Box is a rectangle of the chart.
type Box struct {
	X, Y, W, H float64
}

// A LegendEntry pairs a series label with its color.
type LegendEntry struct {
	Label string
	Color color.Color
}

// A Region is a hit region of a scatter chart: the points closer to
// Mark than to any other mark.
type Region struct {
	Polygon []voronoi.Point
	Mark    int
}

// A Layout is the geometry of a chart.
type Layout struct {
	Type          Type
	Width, Height float64
	Title         string
	AriaLabel     string

	// Plot is the area inside the axes.
	Plot Box

	// Empty is set if there was no data to show. Marks then hold
	// only the title and a placeholder.
	Empty bool

	// Marks are in drawing order.
	Marks  []Mark
	Legend []LegendEntry

	Animate  bool
	Duration time.Duration

	regions     *voronoi.Regions
	regionMarks []int
}

// EmptyText is the placeholder shown for a chart with no data.
const EmptyText = "No data available"

func newLayout(t Type, p Props) *Layout {
	return &Layout{
		Type:      t,
		Width:     p.Width,
		Height:    p.Height,
		Title:     p.Title,
		AriaLabel: p.AriaLabel,
		Animate:   p.Animate,
		Duration:  p.Duration,
	}
}

func (l *Layout) add(m Mark) int {
	if m.Opacity == 0 {
		m.Opacity = 1
	}
	l.Marks = append(l.Marks, m)
	return len(l.Marks) - 1
}

// empty turns l into the empty-state placeholder.
func (l *Layout) empty(p Props) *Layout {
	l.Empty = true
	l.Marks = nil
	l.Plot = Box{p.Margins.Left, p.Margins.Top, p.Width - p.Margins.Left - p.Margins.Right, p.Height - p.Margins.Top - p.Margins.Bottom}
	if p.Title != "" {
		l.add(Mark{Kind: TextMark, Class: "title", X: p.Width / 2, Y: p.Margins.Top + titleHeight() - 4, Text: p.Title, Anchor: AnchorMiddle})
	}
	l.add(Mark{Kind: TextMark, Class: "empty", X: p.Width / 2, Y: p.Height / 2, Text: EmptyText, Anchor: AnchorMiddle, Fill: colors.Neutral})
	return l
}

// HitTest returns the interactive mark at (x, y). Its Event carries
// the datum and the mark's anchor point.
//
// Scatter charts resolve the nearest dot within the plot area; other
// charts return the topmost mark containing the point.
func (l *Layout) HitTest(x, y float64) (Mark, bool) {
	if l.regions != nil {
		if x < l.Plot.X || x > l.Plot.X+l.Plot.W || y < l.Plot.Y || y > l.Plot.Y+l.Plot.H {
			return Mark{}, false
		}
		i := l.regions.Find(voronoi.Point{X: x, Y: y})
		if i < 0 {
			return Mark{}, false
		}
		return l.Marks[l.regionMarks[i]], true
	}
	for i := len(l.Marks) - 1; i >= 0; i-- {
		m := &l.Marks[i]
		if m.Interactive() && m.Contains(x, y) {
			return *m, true
		}
	}
	return Mark{}, false
}

// Regions returns the hit regions of a scatter chart.
func (l *Layout) Regions() []Region {
	if l.regions == nil {
		return nil
	}
	var out []Region
	for i, mi := range l.regionMarks {
		if poly := l.regions.Polygon(i); len(poly) > 0 {
			out = append(out, Region{Polygon: poly, Mark: mi})
		}
	}
	return out
}

// interactive attaches a tooltip and event for datum f, anchored at
// (x, y), to m.
func interactive(m *Mark, p Props, f tooltip.Fields, x, y float64) {
	if m.Fill != nil && f.Color == "" {
		f.Color = colors.Hex(m.Fill)
	}
	m.Tooltip = p.Tooltip.Render(f)
	m.Event = &tooltip.Event{Point: f, X: x, Y: y}
	m.Opacity = p.Highlight.Opacity(m.Label, f.Color)
}
