// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aclements/go-charts/chart"
	"github.com/google/go-cmp/cmp"
)

const barYAML = `
type: bar
title: Sales
sort: desc
min: 0
precision: 1
colors: ["#ff0000", "#00ff00"]
highlight: [North]
data:
  - {label: North, size: 12}
  - {label: South, size: null}
  - {label: East, size: 3.5}
`

func TestReadDefinition(t *testing.T) {
	def, err := readDefinition(strings.NewReader(barYAML))
	if err != nil {
		t.Fatal(err)
	}
	if def.Type != "bar" || len(def.Data) != 3 {
		t.Fatalf("got %+v", def)
	}
	if def.Data[1].Size != nil {
		t.Errorf("null size decoded as %v", *def.Data[1].Size)
	}
	if !math.IsNaN(num(def.Data[1].Size)) {
		t.Errorf("null size is not missing")
	}

	p, err := def.props(Env{Width: 300, Height: 200})
	if err != nil {
		t.Fatal(err)
	}
	if p.Width != 300 || p.Height != 200 {
		t.Errorf("size %gx%g, want env default 300x200", p.Width, p.Height)
	}
	if p.Min == nil || *p.Min != 0 || p.Max != nil {
		t.Errorf("domain override [%v, %v], want [0, nil]", p.Min, p.Max)
	}
	if p.Sort != chart.SortDesc || p.Precision != 1 {
		t.Errorf("sort %v precision %d", p.Sort, p.Precision)
	}
	if got := len(p.Palette.Categorical); got != 2 {
		t.Errorf("palette has %d colors, want 2", got)
	}
	if diff := cmp.Diff([]string{"North"}, p.Highlight.Labels()); diff != "" {
		t.Errorf("highlight mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDefinitionErrors(t *testing.T) {
	for _, in := range []string{
		"type: pyramid\n",
		"type: bar\nbogus: 1\n",
		"type: bar\ndata:\n  - {label: a, date: yesterday}\n",
	} {
		if _, err := readDefinition(strings.NewReader(in)); err == nil {
			t.Errorf("readDefinition(%q) succeeded", in)
		}
	}
	def := &Definition{Type: "bar", Orientation: "diagonal"}
	if _, err := def.props(Env{}); err == nil {
		t.Errorf("bad orientation accepted")
	}
	def = &Definition{Type: "bar", Palette: "NoSuchScheme"}
	if _, err := def.props(Env{}); err == nil {
		t.Errorf("unknown palette accepted")
	}
}

func TestEnv(t *testing.T) {
	t.Setenv("CHARTSVG_WIDTH", "800")
	t.Setenv("CHARTSVG_PALETTE", "Set1")
	t.Setenv("CHARTSVG_ANIMATE", "true")
	env, err := loadEnv(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := Env{Width: 800, Palette: "Set1", Animate: true}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("env mismatch (-want +got):\n%s", diff)
	}

	no := false
	def := &Definition{Type: "bar", Width: 500, Animate: &no}
	p, err := def.props(env)
	if err != nil {
		t.Fatal(err)
	}
	if p.Width != 500 || p.Animate {
		t.Errorf("definition did not override env: width %g animate %v", p.Width, p.Animate)
	}
	if len(p.Palette.Categorical) == 0 {
		t.Errorf("env palette not applied")
	}
}

func TestRender(t *testing.T) {
	def, err := readDefinition(strings.NewReader(barYAML))
	if err != nil {
		t.Fatal(err)
	}
	p, err := def.props(Env{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := render(&buf, def, p, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "Sales", "North", "East", `class="bar"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

const datedYAML = `
type: donut
speed: 10ms
data:
  - {label: a, size: 1, date: 2024-01-01}
  - {label: b, size: 2, date: 2024-01-01}
  - {label: c, size: 3, date: 2025-01-01}
`

func TestRenderDated(t *testing.T) {
	def, err := readDefinition(strings.NewReader(datedYAML))
	if err != nil {
		t.Fatal(err)
	}
	p, err := def.props(Env{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := render(&buf, def, p, nil); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), `class="slice"`); n != 1 {
		t.Errorf("latest date rendered %d slices, want 1", n)
	}

	def.Autoplay = true
	buf.Reset()
	if err := render(&buf, def, p, nil); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), `class="slice"`); n != 2 {
		t.Errorf("first date rendered %d slices, want 2", n)
	}
}

func TestWriteFrames(t *testing.T) {
	def, err := readDefinition(strings.NewReader(datedYAML))
	if err != nil {
		t.Fatal(err)
	}
	p, err := def.props(Env{})
	if err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(t.TempDir(), "frames")
	n, err := writeFrames(dir, def, p, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("wrote %d frames, want 2", n)
	}
	for i, want := range []int{2, 1} {
		b, err := os.ReadFile(filepath.Join(dir, []string{"frame-000.svg", "frame-001.svg"}[i]))
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.Count(string(b), `class="slice"`); got != want {
			t.Errorf("frame %d has %d slices, want %d", i, got, want)
		}
	}

	def.Data = def.Data[:0]
	if _, err := writeFrames(dir, def, p, nil); err == nil {
		t.Errorf("writeFrames without dates succeeded")
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-03-05")
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("parseDate = %v, want %v", got, want)
	}
}
