// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package animate interpolates mark styles over time.
//
// A Transition describes how a mark moves from one style to another
// over a duration. It does not depend on any rendering runtime:
// renderers sample it with At or translate it into their own animation
// primitives.
package animate

import (
	"image/color"
	"math"
	"sort"
	"time"

	"github.com/aclements/go-gg/palette"
)

// A Style is a set of named numeric and color properties of a mark,
// such as "x", "width" or "opacity" and "fill".
type Style struct {
	Values map[string]float64
	Colors map[string]color.RGBA
}

// Keys returns the names of the numeric properties of s, sorted.
func (s Style) Keys() []string {
	keys := make([]string, 0, len(s.Values))
	for k := range s.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// An EaseFunc maps linear progress in [0, 1] to eased progress.
type EaseFunc func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// CubicInOut accelerates then decelerates.
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// A Transition animates a mark from From to To over Duration.
type Transition struct {
	From, To Style
	Duration time.Duration
	Ease     EaseFunc // nil means Linear
}

// Progress returns the eased progress of tr at time t in [0, 1].
func (tr Transition) Progress(t time.Duration) float64 {
	if tr.Duration <= 0 || t >= tr.Duration {
		return 1
	}
	if t <= 0 {
		return 0
	}
	x := float64(t) / float64(tr.Duration)
	if tr.Ease != nil {
		x = tr.Ease(x)
	}
	return x
}

// At returns the style of the mark at time t after the transition
// started. Properties present only in To appear at their final value.
// Properties present only in From are held until the transition ends
// and then dropped.
func (tr Transition) At(t time.Duration) Style {
	x := tr.Progress(t)
	out := Style{
		Values: make(map[string]float64, len(tr.To.Values)),
		Colors: make(map[string]color.RGBA, len(tr.To.Colors)),
	}
	for k, to := range tr.To.Values {
		from, ok := tr.From.Values[k]
		if !ok {
			from = to
		}
		out.Values[k] = from + (to-from)*x
	}
	for k, to := range tr.To.Colors {
		from, ok := tr.From.Colors[k]
		if !ok || x >= 1 {
			out.Colors[k] = to
			continue
		}
		out.Colors[k] = blend(from, to, x)
	}
	if x < 1 {
		for k, v := range tr.From.Values {
			if _, ok := tr.To.Values[k]; !ok {
				out.Values[k] = v
			}
		}
		for k, v := range tr.From.Colors {
			if _, ok := tr.To.Colors[k]; !ok {
				out.Colors[k] = v
			}
		}
	}
	return out
}

// blend interpolates between two colors in linear RGB. RGBGradient
// holds its first and last segments flat, so the two endpoints are
// doubled and only the middle segment is sampled.
func blend(from, to color.RGBA, x float64) color.RGBA {
	if x <= 0 {
		return from
	}
	grad := palette.RGBGradient{Colors: []color.RGBA{from, from, to, to}}
	return color.RGBAModel.Convert(grad.Map((1 + x) / 3)).(color.RGBA)
}

// Enter returns the transition of a bar growing out of the baseline
// along the value axis. pos and size name the value-axis position
// and length properties ("x"/"width" for horizontal bars, "y"/"height"
// for vertical ones).
func Enter(final Style, pos, size string, baseline float64, d time.Duration) Transition {
	from := clone(final)
	from.Values[pos] = baseline
	from.Values[size] = 0
	return Transition{From: from, To: final, Duration: d, Ease: CubicInOut}
}

// Update returns the transition of a mark moving between two styles.
func Update(from, to Style, d time.Duration) Transition {
	return Transition{From: from, To: to, Duration: d, Ease: CubicInOut}
}

// Exit returns the transition of a mark fading out.
func Exit(last Style, d time.Duration) Transition {
	to := clone(last)
	to.Values["opacity"] = 0
	from := clone(last)
	if _, ok := from.Values["opacity"]; !ok {
		from.Values["opacity"] = 1
	}
	return Transition{From: from, To: to, Duration: d, Ease: Linear}
}

func clone(s Style) Style {
	out := Style{
		Values: make(map[string]float64, len(s.Values)),
		Colors: make(map[string]color.RGBA, len(s.Colors)),
	}
	for k, v := range s.Values {
		out.Values[k] = v
	}
	for k, v := range s.Colors {
		out.Colors[k] = v
	}
	return out
}
