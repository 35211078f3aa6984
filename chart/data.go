// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-charts/domain"
	"github.com/aclements/go-charts/tooltip"
)

// A DataPoint is one labeled value. A missing Size is NaN
// (domain.Missing), which is distinct from 0.
type DataPoint struct {
	Label string
	Size  float64
	Color string // optional explicit color
	Date  time.Time
	Extra map[string]string
}

// A StackedPoint is one stacked bar. Segments[j] belongs to the j'th
// series; missing segments are NaN.
type StackedPoint struct {
	Label    string
	Segments []float64
	Date     time.Time
}

// A BulletPoint is one bullet bar. Ranges are the widths of the
// qualitative background bands, stacked from zero.
type BulletPoint struct {
	Label  string
	Value  float64
	Target float64
	Ranges []float64
}

// A DumbbellPoint connects two values of one category.
type DumbbellPoint struct {
	Label      string
	Start, End float64
}

// A ScatterPoint is one dot. A zero Radius uses DefaultRadius.
type ScatterPoint struct {
	Label  string
	X, Y   float64
	Radius float64
	Color  string
}

// A TreemapItem is one tile.
type TreemapItem struct {
	ID    string
	Value float64
	Color string
}

func (d DataPoint) fields(prec int) tooltip.Fields {
	return tooltip.Fields{
		Label: d.Label,
		Size:  round(d.Size, prec),
		Color: d.Color,
		Date:  d.Date,
		Extra: d.Extra,
	}
}

// sortPoints returns a copy of data ordered by o. Missing sizes sort
// last in either direction.
func sortPoints(data []DataPoint, o SortOrder) []DataPoint {
	out := append([]DataPoint(nil), data...)
	if o == SortNone {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i].Size, out[j].Size, o)
	})
	return out
}

func less(a, b float64, o SortOrder) bool {
	am, bm := domain.IsMissing(a), domain.IsMissing(b)
	switch {
	case am || bm:
		return !am && bm
	case o == SortDesc:
		return a > b
	}
	return a < b
}

func sizes(data []DataPoint) []float64 {
	out := make([]float64, len(data))
	for i, d := range data {
		out[i] = d.Size
	}
	return out
}

func labels(data []DataPoint) []string {
	out := make([]string, len(data))
	for i, d := range data {
		out[i] = d.Label
	}
	return out
}

func hasValues(vs ...[]float64) bool {
	for _, s := range vs {
		if _, _, ok := domain.Extent(s); ok {
			return true
		}
	}
	return false
}

// round rounds v to prec decimal places.
func round(v float64, prec int) float64 {
	if domain.IsMissing(v) {
		return v
	}
	k := math.Pow(10, float64(prec))
	return math.Round(v*k) / k
}

// format formats v with at most prec decimal places.
func format(v float64, prec int) string {
	if domain.IsMissing(v) {
		return ""
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
