// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package histogram groups continuous values into equal-width bins.
package histogram

import (
	"sort"

	"github.com/aclements/go-charts/domain"
	"github.com/aclements/go-charts/scale"
	"github.com/aclements/go-moremath/stats"
)

// A Bin counts the values in [X0, X1). The last bin of a histogram is
// closed on the right.
type Bin struct {
	X0, X1 float64
	Count  int
}

// Bins groups values into approximately n bins whose edges are
// human-friendly tick values spanning the data. Missing values are
// skipped. It returns nil if there are no values.
func Bins(values []float64, n int) []Bin {
	lo, hi, ok := domain.Extent(values)
	if !ok {
		return nil
	}
	if n <= 0 {
		n = scale.DefaultTicks
	}
	s := scale.NewLinear(domain.Domain{Min: lo, Max: hi}, scale.Range{Min: 0, Max: 1}, &scale.LinearOptions{Ticks: n + 1})
	d := s.Domain()
	edges := s.Ticks(n + 1)
	nbins := len(edges) - 1
	if nbins < 1 || edges[0] != d.Min || edges[len(edges)-1] != d.Max {
		// The niced domain did not land on ticks; fall back to
		// equal bins over it.
		nbins = n
	}

	h := stats.NewLinearHist(d.Min, d.Max, nbins)
	last := 0
	for _, v := range values {
		if domain.IsMissing(v) {
			continue
		}
		if v >= d.Max {
			// LinearHist bins are half open; the top edge
			// belongs to the last bin.
			last++
			continue
		}
		h.Add(v)
	}
	// Every value lies in the niced domain, so anything LinearHist
	// reports outside it is rounding at the edges.
	under, counts, over := h.Counts()

	w := (d.Max - d.Min) / float64(nbins)
	bins := make([]Bin, nbins)
	for i := range bins {
		bins[i] = Bin{X0: d.Min + float64(i)*w, X1: d.Min + float64(i+1)*w, Count: int(counts[i])}
	}
	bins[0].Count += int(under)
	bins[nbins-1].X1 = d.Max
	bins[nbins-1].Count += last + int(over)
	return bins
}

// Thresholds groups values into bins bounded by the given edges,
// which must be sorted. Values outside [edges[0], edges[len-1]] are
// dropped.
func Thresholds(values []float64, edges []float64) []Bin {
	if len(edges) < 2 {
		return nil
	}
	bins := make([]Bin, len(edges)-1)
	for i := range bins {
		bins[i] = Bin{X0: edges[i], X1: edges[i+1]}
	}
	top := edges[len(edges)-1]
	for _, v := range values {
		if domain.IsMissing(v) || v < edges[0] || v > top {
			continue
		}
		i := sort.Search(len(edges), func(i int) bool { return edges[i] > v }) - 1
		if i >= len(bins) {
			i = len(bins) - 1
		}
		bins[i].Count++
	}
	return bins
}

// Sizes returns the bin counts as float64 sizes.
func Sizes(bins []Bin) []float64 {
	out := make([]float64, len(bins))
	for i, b := range bins {
		out[i] = float64(b.Count)
	}
	return out
}
