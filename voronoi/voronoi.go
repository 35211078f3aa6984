// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package voronoi computes Voronoi regions of a set of points, clipped
// to a bounding rectangle. Charts use the regions as oversized,
// invisible hit targets so that hovering near a small marker selects
// it.
//
// Each region is computed by clipping the bounds by the perpendicular
// bisector half-plane between its point and every other point. This is
// quadratic in the number of points, which is fine for the hundreds
// of markers a scatter chart shows.
package voronoi

import "math"

// A Point is a location in pixel space.
type Point struct {
	X, Y float64
}

func (p Point) sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

func (p Point) valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// A Rect is an axis-aligned bounding rectangle.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Regions is the Voronoi diagram of a point set.
type Regions struct {
	points []Point
	polys  [][]Point
}

// eps is the distance below which two points are coincident.
const eps = 1e-9

// Build computes the Voronoi regions of points within bounds.
//
// Coincident points share a single region: the lowest-indexed point
// owns it and the others get an empty region. Points with NaN or
// infinite coordinates get an empty region.
func Build(points []Point, bounds Rect) *Regions {
	r := &Regions{
		points: points,
		polys:  make([][]Point, len(points)),
	}
	box := []Point{
		{bounds.X0, bounds.Y0},
		{bounds.X1, bounds.Y0},
		{bounds.X1, bounds.Y1},
		{bounds.X0, bounds.Y1},
	}
	for i, p := range points {
		if !p.valid() {
			continue
		}
		poly := append([]Point(nil), box...)
		for j, q := range points {
			if j == i || !q.valid() {
				continue
			}
			d := q.sub(p)
			if math.Abs(d.X) < eps && math.Abs(d.Y) < eps {
				if j < i {
					poly = nil
					break
				}
				continue
			}
			poly = clip(poly, p, q)
			if len(poly) == 0 {
				break
			}
		}
		r.polys[i] = poly
	}
	return r
}

// clip returns the part of poly that is at least as close to p as to q.
func clip(poly []Point, p, q Point) []Point {
	n := q.sub(p)
	m := Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
	// side < 0 is p's side of the bisector.
	side := func(v Point) float64 { return v.sub(m).dot(n) }

	var out []Point
	for k := range poly {
		a, b := poly[k], poly[(k+1)%len(poly)]
		sa, sb := side(a), side(b)
		if sa <= 0 {
			out = append(out, a)
		}
		if (sa < 0 && sb > 0) || (sa > 0 && sb < 0) {
			t := sa / (sa - sb)
			out = append(out, Point{a.X + t*(b.X-a.X), a.Y + t*(b.Y-a.Y)})
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

// Len returns the number of points.
func (r *Regions) Len() int {
	return len(r.points)
}

// Polygon returns the vertices of point i's region, or nil if the
// region is empty.
func (r *Regions) Polygon(i int) []Point {
	return r.polys[i]
}

// Find returns the index of the point nearest to p, preferring the
// lowest index on ties, or -1 if there are no valid points.
func (r *Regions) Find(p Point) int {
	best, bestD := -1, math.Inf(1)
	for i, q := range r.points {
		if !q.valid() {
			continue
		}
		d := q.sub(p)
		if dd := d.dot(d); dd < bestD {
			best, bestD = i, dd
		}
	}
	return best
}

// Area returns the area of polygon poly.
func Area(poly []Point) float64 {
	a := 0.0
	for k := range poly {
		p, q := poly[k], poly[(k+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(a) / 2
}

// Contains reports whether p lies inside the convex polygon poly.
func Contains(poly []Point, p Point) bool {
	if len(poly) < 3 {
		return false
	}
	sign := 0.0
	for k := range poly {
		a, b := poly[k], poly[(k+1)%len(poly)]
		c := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if c == 0 {
			continue
		}
		if sign == 0 {
			sign = c
		} else if (c > 0) != (sign > 0) {
			return false
		}
	}
	return true
}
