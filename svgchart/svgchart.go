// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgchart renders chart layouts as SVG.
//
// Interactive marks are wrapped in a group carrying a data-label
// attribute and a <title> tooltip. Scatter charts additionally get
// transparent hit polygons covering the plot, so hovering anywhere
// selects the nearest dot. Animated layouts use SMIL <animate>
// elements that play once and freeze at their final value.
package svgchart

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-charts/animate"
	"github.com/aclements/go-charts/chart"
	"github.com/aclements/go-charts/pie"
	svg "github.com/ajstarks/svgo"
)

// Options controls rendering.
type Options struct {
	// FontSize is the base font size in pixels. If 0, 12 is used.
	FontSize float64

	// Background fills the whole canvas if non-nil.
	Background color.Color

	// NoHitRegions disables the transparent hit polygons of
	// scatter charts.
	NoHitRegions bool
}

// Write renders l to w. o may be nil.
func Write(w io.Writer, l *chart.Layout, o *Options) error {
	var opts Options
	if o != nil {
		opts = *o
	}
	if opts.FontSize == 0 {
		opts.FontSize = 12
	}

	ew := &errWriter{w: w}
	r := &renderer{canvas: svg.New(ew), l: l}
	width, height := round(l.Width), round(l.Height)
	r.canvas.Start(width, height,
		fmt.Sprintf(`font-size="%.6gpx" font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`, opts.FontSize),
		`role="img"`,
		fmt.Sprintf(`aria-label="%s"`, html.EscapeString(l.AriaLabel)))
	if l.AriaLabel != "" {
		r.canvas.Title(l.AriaLabel)
	}
	if opts.Background != nil {
		r.canvas.Rect(0, 0, width, height, cssPaint("fill", opts.Background))
	}
	for i := range l.Marks {
		r.mark(i)
	}
	if !opts.NoHitRegions {
		r.regions()
	}
	r.canvas.End()
	return ew.err
}

type renderer struct {
	canvas *svg.SVG
	l      *chart.Layout
}

func (r *renderer) mark(i int) {
	m := &r.l.Marks[i]
	id := fmt.Sprintf("m%d", i)
	attrs := []string{fmt.Sprintf(`id="%s"`, id), fmt.Sprintf(`class="%s"`, m.Class), style(m)}

	if m.Interactive() {
		r.canvas.Group(fmt.Sprintf(`data-label="%s"`, html.EscapeString(m.Label)))
		r.canvas.Title(m.Tooltip)
		defer r.canvas.Gend()
	}

	c := r.canvas
	switch m.Kind {
	case chart.RectMark:
		c.Rect(round(m.X), round(m.Y), round(m.W), round(m.H), attrs...)
	case chart.CircleMark:
		c.Circle(round(m.X), round(m.Y), round(m.R), attrs...)
	case chart.LineMark:
		c.Line(round(m.X), round(m.Y), round(m.X2), round(m.Y2), attrs...)
	case chart.PolygonMark:
		xs, ys := polygon(m)
		c.Polygon(xs, ys, attrs...)
	case chart.ArcMark:
		c.Path(arcPath(m.X, m.Y, m.R0, m.R, m.Start, m.End), attrs...)
	case chart.TextMark:
		attrs = append(attrs, fmt.Sprintf(`text-anchor="%s"`, m.Anchor))
		c.Text(round(m.X), round(m.Y), m.Text, attrs...)
	}

	if r.l.Animate && m.Transition != nil {
		r.animate(id, m, m.Transition)
	}
}

// style returns the presentation attributes of m.
func style(m *chart.Mark) string {
	var parts []string
	switch {
	case m.Fill != nil:
		parts = append(parts, cssPaint("fill", m.Fill))
	case m.Kind == chart.TextMark:
		parts = append(parts, "fill:#666")
	default:
		parts = append(parts, "fill:none")
	}
	if m.Stroke != nil {
		parts = append(parts, cssPaint("stroke", m.Stroke))
		if m.Class == "target" {
			parts = append(parts, "stroke-width:3")
		}
	}
	if m.Opacity != 1 {
		parts = append(parts, "opacity:"+strconv.FormatFloat(m.Opacity, 'g', 3, 64))
	}
	return strings.Join(parts, ";")
}

// attrNames maps animated style keys to SVG attributes.
var attrNames = map[string]string{
	"x":      "x",
	"y":      "y",
	"width":  "width",
	"height": "height",
	"cx":     "cx",
	"cy":     "cy",
	"r":      "r",
}

// animate emits SMIL animations for the properties tr changes.
func (r *renderer) animate(id string, m *chart.Mark, tr *animate.Transition) {
	dur := tr.Duration.Seconds()
	href := "#" + id
	for _, k := range tr.To.Keys() {
		from, ok := tr.From.Values[k]
		to := tr.To.Values[k]
		if !ok || from == to {
			continue
		}
		if name, ok := attrNames[k]; ok {
			r.canvas.Animate(href, name, round(from), round(to), dur, 1, `fill="freeze"`)
			continue
		}
		if k == "opacity" {
			r.raw(href, "opacity", strconv.FormatFloat(from, 'g', 3, 64), strconv.FormatFloat(to, 'g', 3, 64), dur)
		}
	}
	if m.Kind == chart.ArcMark {
		start := tr.From.Values["start"]
		end := tr.From.Values["end"]
		if start != m.Start || end != m.End {
			r.raw(href, "d", arcPath(m.X, m.Y, m.R0, m.R, start, end), arcPath(m.X, m.Y, m.R0, m.R, m.Start, m.End), dur)
		}
	}
	var keys []string
	for k := range tr.To.Colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		from, ok := tr.From.Colors[k]
		if to := tr.To.Colors[k]; ok && from != to {
			r.raw(href, k, hex(from), hex(to), dur)
		}
	}
}

// raw emits an <animate> with non-integer values, which svgo's Animate
// cannot express.
func (r *renderer) raw(href, attr, from, to string, dur float64) {
	fmt.Fprintf(r.canvas.Writer, `<animate xlink:href="%s" attributeName="%s" from="%s" to="%s" dur="%gs" repeatCount="1" fill="freeze" />`+"\n",
		href, attr, html.EscapeString(from), html.EscapeString(to), dur)
}

// regions emits a transparent hit polygon per scatter region.
func (r *renderer) regions() {
	for _, reg := range r.l.Regions() {
		m := &r.l.Marks[reg.Mark]
		xs := make([]int, len(reg.Polygon))
		ys := make([]int, len(reg.Polygon))
		for i, p := range reg.Polygon {
			xs[i], ys[i] = round(p.X), round(p.Y)
		}
		r.canvas.Group(`class="hit"`, fmt.Sprintf(`data-label="%s"`, html.EscapeString(m.Label)))
		r.canvas.Title(m.Tooltip)
		r.canvas.Polygon(xs, ys, `fill="#000"`, `fill-opacity="0"`)
		r.canvas.Gend()
	}
}

func polygon(m *chart.Mark) (xs, ys []int) {
	for _, p := range m.Points {
		xs = append(xs, round(p.X))
		ys = append(ys, round(p.Y))
	}
	return
}

// arcPath returns the path of the annular sector between radii r0 and
// r1 and angles a0 and a1, centered at (cx, cy).
func arcPath(cx, cy, r0, r1, a0, a1 float64) string {
	if a1-a0 >= 2*math.Pi-1e-9 {
		// A single arc cannot close a full circle.
		mid := (a0 + a1) / 2
		return arcPath(cx, cy, r0, r1, a0, mid) + arcPath(cx, cy, r0, r1, mid, a1)
	}
	large := 0
	if a1-a0 > math.Pi {
		large = 1
	}
	pt := func(r, a float64) string {
		x, y := pie.Point(r, a)
		return num(cx+x) + " " + num(cy+y)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M%s A%s %s 0 %d 1 %s", pt(r1, a0), num(r1), num(r1), large, pt(r1, a1))
	if r0 > 0 {
		fmt.Fprintf(&b, " L%s A%s %s 0 %d 0 %s", pt(r0, a1), num(r0), num(r0), large, pt(r0, a0))
	} else {
		fmt.Fprintf(&b, " L%s %s", num(cx), num(cy))
	}
	b.WriteString("Z")
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// cssPaint returns a CSS fragment for setting CSS property prop to
// color c.
func cssPaint(prop string, c color.Color) string {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return prop + ":none"
	}
	css := prop + ":" + hex(color.NRGBAModel.Convert(c).(color.NRGBA))
	if a != 0xffff {
		// SVG 1.1 has no rgba colors.
		css += ";" + prop + "-opacity:" + strconv.FormatFloat(float64(a)/0xffff, 'g', 3, 64)
	}
	return css
}

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// errWriter records the first error from w. svgo does not report
// write errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
