// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"math"
	"math/rand"
	"testing"
)

func TestTwoPoints(t *testing.T) {
	r := Build([]Point{{25, 50}, {75, 50}}, Rect{0, 0, 100, 100})
	for i, want := range []float64{5000, 5000} {
		if got := Area(r.Polygon(i)); math.Abs(got-want) > 1e-9 {
			t.Errorf("region %d area = %g, want %g", i, got, want)
		}
	}
	if !Contains(r.Polygon(0), Point{10, 90}) || Contains(r.Polygon(0), Point{60, 10}) {
		t.Errorf("region 0 %v has wrong side of bisector", r.Polygon(0))
	}
}

func TestRegionsTile(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	bounds := Rect{0, 0, 300, 200}
	for iter := 0; iter < 20; iter++ {
		pts := make([]Point, 1+rng.Intn(40))
		for i := range pts {
			pts[i] = Point{rng.Float64() * 300, rng.Float64() * 200}
		}
		r := Build(pts, bounds)
		total := 0.0
		for i := range pts {
			total += Area(r.Polygon(i))
		}
		if math.Abs(total-300*200) > 1e-6 {
			t.Fatalf("regions of %d points cover %g, want %g", len(pts), total, 300.0*200)
		}

		// Random probes fall in the region of the nearest point.
		for k := 0; k < 50; k++ {
			p := Point{rng.Float64() * 300, rng.Float64() * 200}
			i := r.Find(p)
			if !Contains(r.Polygon(i), p) {
				t.Errorf("probe %v nearest to %d but outside its region %v", p, i, r.Polygon(i))
			}
		}
	}
}

func TestDuplicates(t *testing.T) {
	pts := []Point{{10, 10}, {50, 50}, {10, 10}, {10, 10}}
	r := Build(pts, Rect{0, 0, 100, 100})
	if Area(r.Polygon(0)) == 0 {
		t.Errorf("first duplicate has empty region")
	}
	for _, i := range []int{2, 3} {
		if r.Polygon(i) != nil {
			t.Errorf("later duplicate %d has region %v", i, r.Polygon(i))
		}
	}
	if got := r.Find(Point{11, 11}); got != 0 {
		t.Errorf("Find near duplicates = %d, want 0", got)
	}
	total := Area(r.Polygon(0)) + Area(r.Polygon(1))
	if math.Abs(total-10000) > 1e-6 {
		t.Errorf("regions cover %g, want 10000", total)
	}
}

func TestInvalid(t *testing.T) {
	r := Build([]Point{{math.NaN(), 1}, {5, 5}}, Rect{0, 0, 10, 10})
	if r.Polygon(0) != nil {
		t.Errorf("NaN point has region %v", r.Polygon(0))
	}
	if got := Area(r.Polygon(1)); got != 100 {
		t.Errorf("sole valid point region area = %g, want 100", got)
	}
	if got := Build(nil, Rect{0, 0, 1, 1}).Find(Point{0, 0}); got != -1 {
		t.Errorf("Find on empty diagram = %d, want -1", got)
	}
}
