// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"math"
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	p := Fields{
		Label: "Q1",
		Size:  3.5,
		Color: "#ff0000",
		Date:  time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC),
		Extra: map[string]string{"region": "EU"},
	}
	for _, test := range []struct {
		tmpl Template
		want string
	}{
		{Template{}, "Q1: 3.5"},
		{Literal("{label} ({extra.region}) on {date}"), "Q1 (EU) on 2021-03-04"},
		{Literal("{color}={size}"), "#ff0000=3.5"},
		{Literal("{{label} {nope} {extra.missing}|"), "{label} {nope} |"},
		{Literal("unterminated {label"), "unterminated {label"},
		{Func(func(f Fields) string { return "<" + f.Label + ">" }), "<Q1>"},
		{Func(nil), "Q1: 3.5"},
	} {
		if got := test.tmpl.Render(p); got != test.want {
			t.Errorf("Render = %q, want %q", got, test.want)
		}
	}
}

func TestRenderMissing(t *testing.T) {
	p := Fields{Label: "Q2", Size: math.NaN()}
	if got := (Template{}).Render(p); got != "Q2" {
		t.Errorf("default Render of missing size = %q, want %q", got, "Q2")
	}
	if got := Literal("[{size}][{date}]").Render(p); got != "[][]" {
		t.Errorf("Render = %q, want %q", got, "[][]")
	}
}

func TestFormatSize(t *testing.T) {
	for _, test := range []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{-5, "-5"},
		{0.25, "0.25"},
		{math.Inf(1), ""},
	} {
		if got := FormatSize(test.v); got != test.want {
			t.Errorf("FormatSize(%v) = %q, want %q", test.v, got, test.want)
		}
	}
}
