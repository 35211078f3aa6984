// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestEndpoints(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	blue := color.RGBA{0, 0, 0xff, 0xff}
	tr := Transition{
		From:     Style{Values: map[string]float64{"x": 0, "w": 10}, Colors: map[string]color.RGBA{"fill": red}},
		To:       Style{Values: map[string]float64{"x": 100, "w": 10}, Colors: map[string]color.RGBA{"fill": blue}},
		Duration: time.Second,
	}
	if diff := cmp.Diff(tr.From, tr.At(0)); diff != "" {
		t.Errorf("At(0) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(tr.To, tr.At(time.Second)); diff != "" {
		t.Errorf("At(end) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(tr.To, tr.At(5*time.Second)); diff != "" {
		t.Errorf("At(after end) mismatch (-want +got):\n%s", diff)
	}

	mid := tr.At(500 * time.Millisecond)
	if got := mid.Values["x"]; got != 50 {
		t.Errorf("linear midpoint x = %g, want 50", got)
	}
	c := mid.Colors["fill"]
	if c == red || c == blue || c.R == 0 || c.B == 0 {
		t.Errorf("midpoint fill %v is not a blend of red and blue", c)
	}
}

func TestMissingKeys(t *testing.T) {
	tr := Transition{
		From:     Style{Values: map[string]float64{"old": 1}},
		To:       Style{Values: map[string]float64{"new": 7}},
		Duration: time.Second,
	}
	mid := tr.At(time.Second / 2)
	if mid.Values["new"] != 7 || mid.Values["old"] != 1 {
		t.Errorf("mid-transition values = %v", mid.Values)
	}
	end := tr.At(time.Second)
	if _, ok := end.Values["old"]; ok {
		t.Errorf("From-only key survived the end: %v", end.Values)
	}
}

func TestEase(t *testing.T) {
	for _, x := range []float64{0, 0.5, 1} {
		if got := CubicInOut(x); math.Abs(got-x) > 1e-12 {
			t.Errorf("CubicInOut(%g) = %g", x, got)
		}
	}
	if CubicInOut(0.25) >= 0.25 || CubicInOut(0.75) <= 0.75 {
		t.Errorf("CubicInOut is not ease-in-out")
	}
	tr := Transition{Duration: 0}
	if tr.Progress(0) != 1 {
		t.Errorf("zero-duration transition progress = %g, want 1", tr.Progress(0))
	}
}

func TestHelpers(t *testing.T) {
	final := Style{Values: map[string]float64{"x": 40, "width": 60, "y": 5}}
	e := Enter(final, "x", "width", 40, time.Second)
	if e.From.Values["width"] != 0 || e.From.Values["x"] != 40 || e.From.Values["y"] != 5 {
		t.Errorf("Enter from = %v", e.From.Values)
	}
	if final.Values["width"] != 60 {
		t.Errorf("Enter modified its argument")
	}

	x := Exit(final, time.Second)
	if x.From.Values["opacity"] != 1 || x.To.Values["opacity"] != 0 {
		t.Errorf("Exit opacity %g -> %g", x.From.Values["opacity"], x.To.Values["opacity"])
	}

	u := Update(final, e.From, time.Second)
	if u.Duration != time.Second || u.Ease == nil {
		t.Errorf("Update = %+v", u)
	}
}
