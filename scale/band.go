// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
)

// BandOptions controls construction of a Band scale.
type BandOptions struct {
	// PaddingInner is the fraction of each step reserved as a gap
	// between bands. It must be in [0, 1).
	PaddingInner float64

	// PaddingOuter is the padding before the first and after the
	// last band, as a multiple of the step. It must be >= 0.
	PaddingOuter float64

	// MinThickness, if > 0, grows the total extent to at least
	// MinThickness per category, even past the available range.
	MinThickness float64

	// MaxThickness, if > 0, shrinks the total extent to at most
	// MaxThickness per category.
	MaxThickness float64

	// Align positions the bands within the available range when
	// MaxThickness shrinks them: 0 places them at the start, 1 at
	// the end and 0.5 centers them.
	Align float64

	// Duplicates gives every occurrence of a repeated category its
	// own band. Map then returns the first; use MapIndex for the
	// others.
	Duplicates bool
}

// Band maps categories to equally sized slots of a pixel range.
type Band struct {
	cats      []string
	index     map[string]int
	r         Range
	reverse   bool
	start     float64
	extent    float64
	step      float64
	bandwidth float64
}

// NewBand returns a band scale that assigns one slot of r to each
// distinct category, in order. Unless o.Duplicates is set, duplicate
// categories are collapsed to their first occurrence. If r is inverted, the first category is
// placed at r.Min's end, i.e. the order is preserved in screen order
// from r.Min to r.Max.
func NewBand(categories []string, r Range, o BandOptions) (*Band, error) {
	if o.PaddingInner < 0 || o.PaddingInner >= 1 {
		return nil, fmt.Errorf("band padding inner %g out of range [0,1)", o.PaddingInner)
	}
	if o.PaddingOuter < 0 {
		return nil, fmt.Errorf("band padding outer %g is negative", o.PaddingOuter)
	}
	if o.Align < 0 || o.Align > 1 {
		return nil, fmt.Errorf("band align %g out of range [0,1]", o.Align)
	}

	b := &Band{index: make(map[string]int), r: r}
	for _, c := range categories {
		if _, ok := b.index[c]; !ok {
			b.index[c] = len(b.cats)
		} else if !o.Duplicates {
			continue
		}
		b.cats = append(b.cats, c)
	}

	lo := r.Min
	if r.Max < r.Min {
		lo, b.reverse = r.Max, true
	}
	avail := r.Len()
	n := float64(len(b.cats))
	extent := avail
	if o.MinThickness > 0 {
		extent = math.Max(extent, o.MinThickness*n)
	}
	if o.MaxThickness > 0 {
		extent = math.Min(extent, o.MaxThickness*n)
	}
	b.extent = extent
	b.start = lo
	if extent < avail {
		b.start += (avail - extent) * o.Align
	}
	if n > 0 {
		b.step = extent / math.Max(1, n-o.PaddingInner+2*o.PaddingOuter)
		b.start += b.step * o.PaddingOuter
	}
	b.bandwidth = b.step * (1 - o.PaddingInner)
	return b, nil
}

// Map returns the starting pixel of category c's band. It returns
// false if c is not a category of b.
func (b *Band) Map(c string) (float64, bool) {
	i, ok := b.index[c]
	if !ok {
		return 0, false
	}
	return b.MapIndex(i), true
}

// MapIndex returns the starting pixel of the i'th category's band.
func (b *Band) MapIndex(i int) float64 {
	if b.reverse {
		i = len(b.cats) - 1 - i
	}
	return b.start + float64(i)*b.step
}

// Find returns the category whose band contains pixel p.
func (b *Band) Find(p float64) (string, bool) {
	if b.step == 0 {
		return "", false
	}
	i := int(math.Floor((p - b.start) / b.step))
	if i < 0 || i >= len(b.cats) {
		return "", false
	}
	if p-(b.start+float64(i)*b.step) > b.bandwidth {
		// In the gap between bands.
		return "", false
	}
	if b.reverse {
		i = len(b.cats) - 1 - i
	}
	return b.cats[i], true
}

// Bandwidth returns the width of each band.
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (b *Band) Step() float64 { return b.step }

// Extent returns the total pixel extent used by the bands, including
// padding. It may exceed the available range when MinThickness is set.
func (b *Band) Extent() float64 { return b.extent }

// Categories returns the categories of b in band order.
func (b *Band) Categories() []string { return b.cats }

// Range returns the available range b was constructed with.
func (b *Band) Range() Range { return b.r }
