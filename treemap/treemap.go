// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treemap partitions a rectangle into tiles whose areas are
// proportional to item values.
package treemap

import (
	"math"
	"sort"

	"github.com/aclements/go-charts/domain"
)

// Phi is the target aspect ratio of squarified tiles.
var Phi = (1 + math.Sqrt(5)) / 2

// An Item is a weighted leaf of the tree.
type Item struct {
	ID    string
	Value float64
}

// A Rect is a laid out tile.
type Rect struct {
	X0, Y0, X1, Y1 float64
	ID             string
	Value          float64
}

// Area returns the area of r.
func (r Rect) Area() float64 {
	return (r.X1 - r.X0) * (r.Y1 - r.Y0)
}

// Contains reports whether (x, y) lies in r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// node is a child of the synthetic root.
type node struct {
	item Item
	rect Rect
}

// prepare drops items that cannot have area and orders the rest by
// decreasing value, keeping input order among equal values.
func prepare(items []Item) ([]*node, float64) {
	var nodes []*node
	total := 0.0
	for _, it := range items {
		if domain.IsMissing(it.Value) || it.Value <= 0 {
			continue
		}
		nodes = append(nodes, &node{item: it})
		total += it.Value
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].item.Value > nodes[j].item.Value
	})
	return nodes, total
}

// Layout lays out items in a width×height rectangle using the
// squarified algorithm. Items with missing or non-positive values are
// excluded. Tiles are returned in decreasing value order. Before
// padding, the tiles cover the rectangle exactly; padding then insets
// every tile by padding/2 on each side.
func Layout(items []Item, width, height, padding float64) []Rect {
	nodes, total := prepare(items)
	if len(nodes) == 0 || width <= 0 || height <= 0 {
		return nil
	}
	squarify(nodes, total, 0, 0, width, height)
	return finish(nodes, padding)
}

// SliceDice lays out items as a single row of strips cut along the
// longer side of the rectangle. It is an alternative to Layout that
// preserves order at the cost of aspect ratio.
func SliceDice(items []Item, width, height, padding float64) []Rect {
	nodes, total := prepare(items)
	if len(nodes) == 0 || width <= 0 || height <= 0 {
		return nil
	}
	if width >= height {
		dice(nodes, total, 0, 0, width, height)
	} else {
		slice(nodes, total, 0, 0, width, height)
	}
	return finish(nodes, padding)
}

func finish(nodes []*node, padding float64) []Rect {
	rects := make([]Rect, len(nodes))
	for i, n := range nodes {
		r := n.rect
		r.ID, r.Value = n.item.ID, n.item.Value
		if padding > 0 {
			r = inset(r, padding/2)
		}
		rects[i] = r
	}
	return rects
}

func inset(r Rect, p float64) Rect {
	if r.X1-r.X0 > 2*p {
		r.X0, r.X1 = r.X0+p, r.X1-p
	} else {
		mid := (r.X0 + r.X1) / 2
		r.X0, r.X1 = mid, mid
	}
	if r.Y1-r.Y0 > 2*p {
		r.Y0, r.Y1 = r.Y0+p, r.Y1-p
	} else {
		mid := (r.Y0 + r.Y1) / 2
		r.Y0, r.Y1 = mid, mid
	}
	return r
}

// dice lays out nodes left to right across [x0,x1].
func dice(nodes []*node, total, x0, y0, x1, y1 float64) {
	k := (x1 - x0) / total
	x := x0
	for i, n := range nodes {
		next := x + n.item.Value*k
		if i == len(nodes)-1 {
			next = x1
		}
		n.rect = Rect{X0: x, Y0: y0, X1: next, Y1: y1}
		x = next
	}
}

// slice lays out nodes top to bottom across [y0,y1].
func slice(nodes []*node, total, x0, y0, x1, y1 float64) {
	k := (y1 - y0) / total
	y := y0
	for i, n := range nodes {
		next := y + n.item.Value*k
		if i == len(nodes)-1 {
			next = y1
		}
		n.rect = Rect{X0: x0, Y0: y, X1: x1, Y1: next}
		y = next
	}
}

// squarify greedily fills rows along the shorter side of the remaining
// rectangle, adding nodes to a row while its worst aspect ratio does
// not get worse.
func squarify(nodes []*node, value, x0, y0, x1, y1 float64) {
	for i0 := 0; i0 < len(nodes); {
		dx, dy := x1-x0, y1-y0
		i1 := i0 + 1
		sum := nodes[i0].item.Value
		minV, maxV := sum, sum
		alpha := math.Max(dy/dx, dx/dy) / (value * Phi)
		beta := sum * sum * alpha
		minRatio := math.Max(maxV/beta, beta/minV)
		for ; i1 < len(nodes); i1++ {
			v := nodes[i1].item.Value
			nsum := sum + v
			nmin, nmax := math.Min(minV, v), math.Max(maxV, v)
			beta = nsum * nsum * alpha
			ratio := math.Max(nmax/beta, beta/nmin)
			if ratio > minRatio {
				break
			}
			sum, minV, maxV, minRatio = nsum, nmin, nmax, ratio
		}

		row := nodes[i0:i1]
		last := i1 == len(nodes)
		if dx < dy {
			// Row spans the width; consume a strip of height.
			ny := y1
			if !last {
				ny = y0 + dy*sum/value
			}
			dice(row, sum, x0, y0, x1, ny)
			y0 = ny
		} else {
			nx := x1
			if !last {
				nx = x0 + dx*sum/value
			}
			slice(row, sum, x0, y0, nx, y1)
			x0 = nx
		}
		value -= sum
		i0 = i1
	}
}
