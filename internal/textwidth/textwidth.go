// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textwidth estimates the rendered size of chart labels.
//
// Widths are measured with a fixed bitmap face, so they approximate
// proportional fonts. They are used only to reserve gutter space.
package textwidth

import (
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Ellipsis is appended to truncated labels.
const Ellipsis = "…"

var face = basicfont.Face7x13

// Height is the line height of a label in pixels.
func Height() float64 {
	return float64(face.Height)
}

// Width returns the width of s in pixels.
func Width(s string) float64 {
	return fix(font.MeasureString(face, s))
}

// Max returns the width of the widest of ss.
func Max(ss []string) float64 {
	var w float64
	for _, s := range ss {
		if sw := Width(s); sw > w {
			w = sw
		}
	}
	return w
}

// Truncate shortens s to at most n runes, replacing the tail with
// Ellipsis. n <= 0 means no limit.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for j := range s {
		if i == n-1 {
			return s[:j] + Ellipsis
		}
		i++
	}
	return s
}

// Fit shortens s until it is at most px pixels wide.
func Fit(s string, px float64) string {
	if Width(s) <= px {
		return s
	}
	for n := utf8.RuneCountInString(s) - 1; n > 0; n-- {
		t := Truncate(s, n)
		if Width(t) <= px {
			return t
		}
	}
	return ""
}

func fix(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
