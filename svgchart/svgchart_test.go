// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgchart

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/aclements/go-charts/chart"
)

func render(t *testing.T, l *chart.Layout, o *Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, l, o); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestBar(t *testing.T) {
	l, err := chart.Bar([]chart.DataPoint{{Label: "Q1", Size: 3}, {Label: "Q<2>", Size: -5}}, chart.Props{Title: "Quarterly", Animate: true})
	if err != nil {
		t.Fatal(err)
	}
	out := render(t, l, &Options{Background: color.White})
	for _, want := range []string{
		"<svg",
		`aria-label="Quarterly"`,
		`data-label="Q1"`,
		`data-label="Q&lt;2&gt;"`,
		"<title>Q1: 3</title>",
		`class="bar"`,
		`attributeName="width"`,
		`fill="freeze"`,
		"Quarterly</text>",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestNoAnimation(t *testing.T) {
	l, err := chart.Bar([]chart.DataPoint{{Label: "a", Size: 1}}, chart.Props{})
	if err != nil {
		t.Fatal(err)
	}
	if out := render(t, l, nil); strings.Contains(out, "<animate") {
		t.Errorf("static chart has animations")
	}
}

func TestEmpty(t *testing.T) {
	l, err := chart.Bar(nil, chart.Props{})
	if err != nil {
		t.Fatal(err)
	}
	if out := render(t, l, nil); !strings.Contains(out, chart.EmptyText) {
		t.Errorf("empty chart missing placeholder:\n%s", out)
	}
}

func TestScatterRegions(t *testing.T) {
	l, err := chart.Scatter([]chart.ScatterPoint{{Label: "p", X: 1, Y: 2}, {Label: "q", X: 3, Y: 1}}, chart.Props{})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(render(t, l, nil), `class="hit"`); got != 2 {
		t.Errorf("got %d hit regions, want 2", got)
	}
	if got := strings.Count(render(t, l, &Options{NoHitRegions: true}), `class="hit"`); got != 0 {
		t.Errorf("got %d hit regions with NoHitRegions", got)
	}
}

func TestDonut(t *testing.T) {
	l, err := chart.Donut([]chart.DataPoint{{Label: "all", Size: 1}}, chart.Props{Animate: true})
	if err != nil {
		t.Fatal(err)
	}
	out := render(t, l, nil)
	if !strings.Contains(out, `class="slice"`) || !strings.Contains(out, `attributeName="d"`) {
		t.Errorf("donut output missing slice or its animation:\n%s", out)
	}
}

func TestArcPath(t *testing.T) {
	p := arcPath(0, 0, 0, 10, 0, math.Pi/2)
	if !strings.HasPrefix(p, "M0 -10 A10 10 0 0 1 10 ") || !strings.HasSuffix(p, "L0 0Z") {
		t.Errorf("quarter pie path = %q", p)
	}
	full := arcPath(0, 0, 5, 10, 0, 2*math.Pi)
	if strings.Count(full, "M") != 2 {
		t.Errorf("full ring path %q is not split in two", full)
	}
}

func TestCSSPaint(t *testing.T) {
	for _, test := range []struct {
		c    color.Color
		want string
	}{
		{color.RGBA{0xff, 0, 0, 0xff}, "fill:#ff0000"},
		{color.Transparent, "fill:none"},
		{color.NRGBA{0, 0, 0xff, 0x80}, "fill:#0000ff;fill-opacity:0.502"},
	} {
		if got := cssPaint("fill", test.c); got != test.want {
			t.Errorf("cssPaint(%v) = %q, want %q", test.c, got, test.want)
		}
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	l, err := chart.Bar([]chart.DataPoint{{Label: "a", Size: 1}}, chart.Props{})
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(failWriter{}, l, nil); err == nil {
		t.Errorf("Write to failing writer succeeded")
	}
}
