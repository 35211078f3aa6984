// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/aclements/go-charts/chart"
	"github.com/aclements/go-charts/colors"
	"github.com/aclements/go-charts/tooltip"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// Env holds defaults taken from the environment. Chart definitions
// and flags override them.
type Env struct {
	Width   float64 `env:"CHARTSVG_WIDTH"`
	Height  float64 `env:"CHARTSVG_HEIGHT"`
	Palette string  `env:"CHARTSVG_PALETTE"`
	Animate bool    `env:"CHARTSVG_ANIMATE,default=false"`
}

func loadEnv(ctx context.Context) (Env, error) {
	var env Env
	if err := envconfig.Process(ctx, &env); err != nil {
		return Env{}, fmt.Errorf("processing environment: %w", err)
	}
	return env, nil
}

// A Definition is a chart read from YAML.
type Definition struct {
	Type         string   `yaml:"type"`
	Title        string   `yaml:"title"`
	AriaLabel    string   `yaml:"aria_label"`
	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
	Orientation  string   `yaml:"orientation"`
	Sort         string   `yaml:"sort"`
	Min          *float64 `yaml:"min"`
	Max          *float64 `yaml:"max"`
	Precision    int      `yaml:"precision"`
	Truncate     int      `yaml:"truncate"`
	Padding      float64  `yaml:"padding"`
	MinThickness float64  `yaml:"min_thickness"`
	MaxThickness float64  `yaml:"max_thickness"`
	Legend       bool     `yaml:"legend"`
	Values       bool     `yaml:"values"`
	Normalize    bool     `yaml:"normalize"`
	Bins         int      `yaml:"bins"`
	InnerRadius  float64  `yaml:"inner_radius"`
	PadAngle     float64  `yaml:"pad_angle"`
	TilePadding  float64  `yaml:"tile_padding"`
	SliceDice    bool     `yaml:"slice_dice"`
	Animate      *bool    `yaml:"animate"`
	Duration     string   `yaml:"duration"`
	Tooltip      string   `yaml:"tooltip"`
	Palette      string   `yaml:"palette"` // ColorBrewer scheme name
	Colors       []string `yaml:"colors"`  // explicit categorical colors
	Highlight    []string `yaml:"highlight"`
	Autoplay     bool     `yaml:"autoplay"`
	Speed        string   `yaml:"speed"`
	Series       []string `yaml:"series"`
	Data         []Record `yaml:"data"`
}

// A Record is one datum. Which fields apply depends on the chart type.
// Null numbers are missing values.
type Record struct {
	Label    string            `yaml:"label"`
	Size     *float64          `yaml:"size"`
	Color    string            `yaml:"color"`
	Date     string            `yaml:"date"`
	Extra    map[string]string `yaml:"extra"`
	Segments []*float64        `yaml:"segments"`
	Value    *float64          `yaml:"value"`
	Target   *float64          `yaml:"target"`
	Ranges   []*float64        `yaml:"ranges"`
	Start    *float64          `yaml:"start"`
	End      *float64          `yaml:"end"`
	X        *float64          `yaml:"x"`
	Y        *float64          `yaml:"y"`
	Radius   *float64          `yaml:"radius"`

	date time.Time
}

func readDefinition(r io.Reader) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("parsing chart definition: %w", err)
	}
	if _, err := chart.ParseType(def.Type); err != nil {
		return nil, err
	}
	for i := range def.Data {
		rec := &def.Data[i]
		if rec.Date == "" {
			continue
		}
		d, err := parseDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rec.date = d
	}
	return &def, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad date %q", s)
}

func num(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

func nums(ps []*float64) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = num(p)
	}
	return out
}

// props converts def to chart properties, filling gaps from env.
func (def *Definition) props(env Env) (chart.Props, error) {
	p := chart.Props{
		Width:          def.Width,
		Height:         def.Height,
		Precision:      def.Precision,
		TruncateLabels: def.Truncate,
		Padding:        def.Padding,
		MinThickness:   def.MinThickness,
		MaxThickness:   def.MaxThickness,
		Min:            def.Min,
		Max:            def.Max,
		Title:          def.Title,
		AriaLabel:      def.AriaLabel,
		ShowLegend:     def.Legend,
		ShowValues:     def.Values,
		Normalize:      def.Normalize,
		Bins:           def.Bins,
		InnerRadius:    def.InnerRadius,
		PadAngle:       def.PadAngle,
		TilePadding:    def.TilePadding,
		SliceDice:      def.SliceDice,
		Animate:        env.Animate,
	}
	if p.Width == 0 {
		p.Width = env.Width
	}
	if p.Height == 0 {
		p.Height = env.Height
	}
	if def.Animate != nil {
		p.Animate = *def.Animate
	}

	var err error
	if p.Orientation, err = chart.ParseOrientation(def.Orientation); err != nil {
		return p, err
	}
	if p.Sort, err = chart.ParseSort(def.Sort); err != nil {
		return p, err
	}
	if def.Duration != "" {
		if p.Duration, err = time.ParseDuration(def.Duration); err != nil {
			return p, fmt.Errorf("bad duration: %w", err)
		}
	}
	if def.Tooltip != "" {
		p.Tooltip = tooltip.Literal(def.Tooltip)
	}
	if len(def.Highlight) > 0 {
		p.Highlight.SelectLabels(def.Highlight...)
	}

	switch name := def.Palette; {
	case len(def.Colors) > 0:
		p.Palette, err = colors.Fixed(def.Colors...)
	case name != "" || env.Palette != "":
		if name == "" {
			name = env.Palette
		}
		p.Palette, err = brewer(name)
	}
	return p, err
}

// brewer returns the largest variant of the named ColorBrewer scheme.
func brewer(name string) (colors.Palette, error) {
	var err error
	for n := 12; n >= 3; n-- {
		var p colors.Palette
		if p, err = colors.Brewer(name, n); err == nil {
			return p, nil
		}
	}
	return colors.Palette{}, err
}

// speed returns the timeline speed of def.
func (def *Definition) speed() (time.Duration, error) {
	if def.Speed == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(def.Speed)
	if err != nil {
		return 0, fmt.Errorf("bad speed: %w", err)
	}
	return d, nil
}

// dates returns the dates of recs, or nil if none is dated.
func dates(recs []Record) []time.Time {
	var out []time.Time
	for _, r := range recs {
		if !r.date.IsZero() {
			out = append(out, r.date)
		}
	}
	return out
}

// layout lays out recs as a chart of def's type.
func (def *Definition) layout(recs []Record, p chart.Props) (*chart.Layout, error) {
	typ, err := chart.ParseType(def.Type)
	if err != nil {
		return nil, err
	}
	switch typ {
	case chart.BarChart, chart.DonutChart:
		pts := make([]chart.DataPoint, len(recs))
		for i, r := range recs {
			pts[i] = chart.DataPoint{Label: r.Label, Size: num(r.Size), Color: r.Color, Date: r.date, Extra: r.Extra}
		}
		if typ == chart.DonutChart {
			return chart.Donut(pts, p)
		}
		return chart.Bar(pts, p)
	case chart.StackedChart:
		pts := make([]chart.StackedPoint, len(recs))
		for i, r := range recs {
			pts[i] = chart.StackedPoint{Label: r.Label, Segments: nums(r.Segments), Date: r.date}
		}
		return chart.Stacked(pts, def.Series, p)
	case chart.BulletChart:
		pts := make([]chart.BulletPoint, len(recs))
		for i, r := range recs {
			pts[i] = chart.BulletPoint{Label: r.Label, Value: num(r.Value), Target: num(r.Target), Ranges: nums(r.Ranges)}
		}
		return chart.Bullet(pts, p)
	case chart.DumbbellChart:
		pts := make([]chart.DumbbellPoint, len(recs))
		for i, r := range recs {
			pts[i] = chart.DumbbellPoint{Label: r.Label, Start: num(r.Start), End: num(r.End)}
		}
		return chart.Dumbbell(pts, p)
	case chart.ScatterChart:
		pts := make([]chart.ScatterPoint, len(recs))
		for i, r := range recs {
			pts[i] = chart.ScatterPoint{Label: r.Label, X: num(r.X), Y: num(r.Y), Radius: num(r.Radius), Color: r.Color}
		}
		return chart.Scatter(pts, p)
	case chart.TreemapChart:
		items := make([]chart.TreemapItem, len(recs))
		for i, r := range recs {
			items[i] = chart.TreemapItem{ID: r.Label, Value: num(r.Size), Color: r.Color}
		}
		return chart.Treemap(items, p)
	case chart.HistogramChart:
		vs := make([]float64, len(recs))
		for i, r := range recs {
			vs[i] = num(r.Size)
		}
		return chart.Histogram(vs, p)
	}
	return nil, fmt.Errorf("%w %v", chart.ErrUnknownType, typ)
}
