// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pie

import (
	"math"
	"testing"
)

func sweep(arcs []Arc) float64 {
	s := 0.0
	for _, a := range arcs {
		s += a.End - a.Start
	}
	return s
}

func TestAngles(t *testing.T) {
	arcs := Angles([]float64{1, 1, 2}, Options{})
	want := [][2]float64{{0, math.Pi / 2}, {math.Pi / 2, math.Pi}, {math.Pi, 2 * math.Pi}}
	for i, a := range arcs {
		if math.Abs(a.Start-want[i][0]) > 1e-12 || math.Abs(a.End-want[i][1]) > 1e-12 {
			t.Errorf("arc %d = [%g,%g], want %v", i, a.Start, a.End, want[i])
		}
	}
}

func TestAnglesMissing(t *testing.T) {
	arcs := Angles([]float64{3, math.NaN(), -1, 0, 1}, Options{})
	if got := sweep(arcs); math.Abs(got-2*math.Pi) > 1e-12 {
		t.Errorf("sweep = %g, want 2π", got)
	}
	for _, i := range []int{1, 2, 3} {
		if !arcs[i].Empty() {
			t.Errorf("arc %d for value %g is not empty", i, arcs[i].Value)
		}
	}
	if arcs[1].Start != arcs[0].End {
		t.Errorf("empty arc not positioned after its predecessor")
	}

	for _, a := range Angles([]float64{0, math.NaN()}, Options{}) {
		if !a.Empty() {
			t.Errorf("all-zero input produced non-empty arc %+v", a)
		}
	}
}

func TestAnglesPadSort(t *testing.T) {
	vals := []float64{1, 3, 2}
	pad := 0.1
	arcs := Angles(vals, Options{PadAngle: pad, Sort: true})
	if got, want := sweep(arcs), 2*math.Pi-3*pad; math.Abs(got-want) > 1e-12 {
		t.Errorf("padded sweep = %g, want %g", got, want)
	}
	// Sorted: value 3 comes first.
	if arcs[1].Start > arcs[2].Start || arcs[2].Start > arcs[0].Start {
		t.Errorf("sorted arcs out of order: %+v", arcs)
	}
	for i, a := range arcs {
		if a.Index != i {
			t.Errorf("arc %d has Index %d", i, a.Index)
		}
	}
}

func TestFind(t *testing.T) {
	arcs := Angles([]float64{1, 1, 1, 1}, Options{})
	for _, test := range []struct {
		theta float64
		want  int
	}{
		{0.1, 0}, {math.Pi/2 + 0.1, 1}, {math.Pi + 0.1, 2}, {-0.1, 3}, {2*math.Pi + 0.1, 0},
	} {
		if got := Find(arcs, test.theta); got != test.want {
			t.Errorf("Find(%g) = %d, want %d", test.theta, got, test.want)
		}
	}
	x, y := arcs[1].Centroid(0, 2)
	if math.Abs(x-math.Sin(3*math.Pi/4)) > 1e-12 || math.Abs(y+math.Cos(3*math.Pi/4)) > 1e-12 {
		t.Errorf("Centroid = %g,%g", x, y)
	}
}
