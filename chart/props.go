// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aclements/go-charts/colors"
	"github.com/aclements/go-charts/highlight"
	"github.com/aclements/go-charts/scale"
	"github.com/aclements/go-charts/tooltip"
)

// ErrUnknownType is returned for chart types this package cannot lay
// out.
var ErrUnknownType = errors.New("unknown chart type")

// A Type is a kind of chart.
type Type int

const (
	BarChart Type = iota
	StackedChart
	BulletChart
	DumbbellChart
	ScatterChart
	DonutChart
	TreemapChart
	HistogramChart
)

var typeNames = []string{
	BarChart:       "bar",
	StackedChart:   "stacked",
	BulletChart:    "bullet",
	DumbbellChart:  "dumbbell",
	ScatterChart:   "scatter",
	DonutChart:     "donut",
	TreemapChart:   "treemap",
	HistogramChart: "histogram",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType returns the Type named s.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if strings.EqualFold(s, name) {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownType, s)
}

// Orientation selects which screen axis carries the values.
type Orientation int

const (
	// Horizontal charts have categories down the y axis and values
	// along the x axis.
	Horizontal Orientation = iota
	// Vertical charts have categories along the x axis and values
	// up the y axis.
	Vertical
)

// ParseOrientation parses "horizontal" or "vertical". The empty string
// is Horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "", "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return 0, fmt.Errorf("bad orientation %q", s)
}

// SortOrder orders categories by value.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAsc
	SortDesc
)

// ParseSort parses "none", "asc" or "desc". The empty string is
// SortNone.
func ParseSort(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return SortNone, nil
	case "asc", "ascending":
		return SortAsc, nil
	case "desc", "descending":
		return SortDesc, nil
	}
	return 0, fmt.Errorf("bad sort order %q", s)
}

// Margins are the blank space around a chart, in pixels.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Defaults used by Props.
const (
	DefaultWidth       = 640
	DefaultHeight      = 400
	DefaultMargin      = 10
	DefaultPrecision   = 2
	DefaultDuration    = 500 * time.Millisecond
	DefaultInnerRadius = 0.6
	DefaultRadius      = 4
)

// Props configures a chart layout. Every field is optional; the zero
// value of a field selects its default.
type Props struct {
	Width, Height float64
	Margins       Margins

	Orientation Orientation
	Sort        SortOrder

	// Precision is the maximum number of decimal places of value
	// labels and tooltips. Trailing zeros are trimmed.
	Precision int

	// TruncateLabels shortens category labels to this many
	// characters. 0 means no limit.
	TruncateLabels int

	// MinThickness and MaxThickness bound the thickness of each
	// band. If MinThickness forces the bands past the plot area,
	// the chart grows.
	MinThickness, MaxThickness float64

	// Padding is the fraction of each band reserved as a gap
	// between bars. It must be in [0, 1).
	Padding float64

	// Min and Max, if non-nil, override the inferred value domain.
	// Each bound is independent: a nil bound is inferred.
	Min, Max *float64

	// Ticks is the approximate number of value axis ticks.
	Ticks int

	Animate  bool
	Duration time.Duration

	Title     string
	AriaLabel string

	Tooltip   tooltip.Template
	Palette   colors.Palette
	Highlight highlight.Selection

	ShowLegend bool
	ShowValues bool

	// Normalize draws stacked bars as fractions of each total.
	Normalize bool

	// Bins is the approximate histogram bin count.
	Bins int

	// InnerRadius is the donut hole as a fraction of the outer
	// radius, in [0, 1).
	InnerRadius float64

	// PadAngle is the gap between donut slices, in radians.
	PadAngle float64

	// TilePadding insets treemap tiles, in pixels.
	TilePadding float64

	// SliceDice selects slice-and-dice treemap tiling instead of
	// squarified.
	SliceDice bool
}

// Bound returns a pointer to v for Props.Min and Props.Max.
func Bound(v float64) *float64 {
	return &v
}

// withDefaults returns p with defaults filled in, or an error if p is
// invalid.
func (p Props) withDefaults() (Props, error) {
	if p.Width < 0 || p.Height < 0 {
		return p, fmt.Errorf("negative chart size %gx%g", p.Width, p.Height)
	}
	if p.Width == 0 {
		p.Width = DefaultWidth
	}
	if p.Height == 0 {
		p.Height = DefaultHeight
	}
	if p.Margins == (Margins{}) {
		p.Margins = Margins{DefaultMargin, DefaultMargin, DefaultMargin, DefaultMargin}
	}
	if p.Padding < 0 || p.Padding >= 1 {
		return p, fmt.Errorf("padding %g out of range [0,1)", p.Padding)
	}
	if p.MinThickness > 0 && p.MaxThickness > 0 && p.MinThickness > p.MaxThickness {
		return p, fmt.Errorf("min thickness %g exceeds max thickness %g", p.MinThickness, p.MaxThickness)
	}
	if p.Min != nil && p.Max != nil && *p.Min > *p.Max {
		return p, fmt.Errorf("min %g exceeds max %g", *p.Min, *p.Max)
	}
	if p.Precision <= 0 {
		p.Precision = DefaultPrecision
	}
	if p.Ticks <= 0 {
		p.Ticks = scale.DefaultTicks
	}
	if p.Duration <= 0 {
		p.Duration = DefaultDuration
	}
	if p.Palette.Categorical == nil && p.Palette.Sequential == nil {
		p.Palette = colors.Default()
	}
	if p.InnerRadius < 0 || p.InnerRadius >= 1 {
		return p, fmt.Errorf("inner radius %g out of range [0,1)", p.InnerRadius)
	}
	if p.InnerRadius == 0 {
		p.InnerRadius = DefaultInnerRadius
	}
	if p.TilePadding < 0 {
		return p, fmt.Errorf("negative tile padding %g", p.TilePadding)
	}
	if p.AriaLabel == "" {
		p.AriaLabel = p.Title
	}
	return p, nil
}

func (p Props) bandOptions() scale.BandOptions {
	return scale.BandOptions{
		PaddingInner: p.Padding,
		MinThickness: p.MinThickness,
		MaxThickness: p.MaxThickness,
		Align:        0.5,
		Duplicates:   true,
	}
}
