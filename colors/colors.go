// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides chart palettes and maps data labels to
// colors.
//
// A Palette is an immutable value: charts receive one at construction
// and never modify it.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/palette/brewer"
)

// Neutral is the default fallback color for labels that are not in a
// color scale's domain.
var Neutral color.Color = color.RGBA{0xa0, 0xa0, 0xa0, 0xff}

// A Palette is a set of colors available to a chart.
type Palette struct {
	// Categorical colors are assigned to labels in order.
	Categorical []color.Color

	// Sequential maps [0, 1] to colors for continuous encodings.
	Sequential palette.Continuous

	// Neutral is used for labels with no assigned color.
	Neutral color.Color
}

// fallback is used if brewer does not provide the requested scheme.
var fallback = []color.Color{
	color.RGBA{0x4c, 0x72, 0xb0, 0xff},
	color.RGBA{0x55, 0xa8, 0x68, 0xff},
	color.RGBA{0xc4, 0x4e, 0x52, 0xff},
	color.RGBA{0x81, 0x72, 0xb2, 0xff},
	color.RGBA{0xcc, 0xb9, 0x74, 0xff},
	color.RGBA{0x64, 0xb5, 0xcd, 0xff},
}

// Default returns the default palette: ColorBrewer's Set2 qualitative
// scheme with the Viridis sequential palette.
func Default() Palette {
	p, err := Brewer("Set2", 8)
	if err != nil {
		p = Palette{Categorical: fallback, Sequential: palette.Viridis, Neutral: Neutral}
	}
	return p
}

// Brewer returns a palette using the n-color variant of the named
// ColorBrewer scheme for categorical colors.
func Brewer(name string, n int) (Palette, error) {
	variants, ok := brewer.ByName[name]
	if !ok {
		return Palette{}, fmt.Errorf("unknown ColorBrewer palette %q", name)
	}
	var cs []color.Color
	for _, c := range variants[n] {
		cs = append(cs, c)
	}
	if len(cs) == 0 {
		return Palette{}, fmt.Errorf("ColorBrewer palette %q has no %d-color variant", name, n)
	}
	return Palette{Categorical: cs, Sequential: palette.Viridis, Neutral: Neutral}, nil
}

// Fixed returns a palette of the given hex colors.
func Fixed(hex ...string) (Palette, error) {
	p := Palette{Sequential: palette.Viridis, Neutral: Neutral}
	for _, h := range hex {
		c, err := ParseHex(h)
		if err != nil {
			return Palette{}, err
		}
		p.Categorical = append(p.Categorical, c)
	}
	return p, nil
}

// Ramp returns n colors evenly spaced along p's sequential palette.
func (p Palette) Ramp(n int) []color.Color {
	out := make([]color.Color, n)
	for i := range out {
		x := 0.5
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		out[i] = p.Sequential.Map(x)
	}
	return out
}

// A Scale assigns colors to labels.
type Scale struct {
	index   map[string]int
	labels  []string
	palette Palette
}

// NewScale returns a color scale assigning p's categorical colors to
// labels in order, cycling if there are more labels than colors.
func NewScale(labels []string, p Palette) *Scale {
	s := &Scale{index: make(map[string]int), palette: p}
	for _, l := range labels {
		if _, ok := s.index[l]; ok {
			continue
		}
		s.index[l] = len(s.labels)
		s.labels = append(s.labels, l)
	}
	return s
}

// Map returns the color of label. Labels outside the scale's domain
// get the palette's neutral color.
func (s *Scale) Map(label string) color.Color {
	i, ok := s.index[label]
	if !ok || len(s.palette.Categorical) == 0 {
		return s.neutral()
	}
	return s.palette.Categorical[i%len(s.palette.Categorical)]
}

// Resolve returns the color for a data point: its explicit color if
// it parses, otherwise the scale's color for label.
func (s *Scale) Resolve(label, explicit string) color.Color {
	if explicit != "" {
		if c, err := ParseHex(explicit); err == nil {
			return c
		}
		if c, ok := named[strings.ToLower(explicit)]; ok {
			return c
		}
	}
	return s.Map(label)
}

// Labels returns the domain of s in order.
func (s *Scale) Labels() []string {
	return s.labels
}

func (s *Scale) neutral() color.Color {
	if s.palette.Neutral == nil {
		return Neutral
	}
	return s.palette.Neutral
}

var named = map[string]color.Color{
	"black": color.RGBA{0, 0, 0, 0xff},
	"white": color.RGBA{0xff, 0xff, 0xff, 0xff},
	"gray":  color.RGBA{0x80, 0x80, 0x80, 0xff},
	"grey":  color.RGBA{0x80, 0x80, 0x80, 0xff},
	"red":   color.RGBA{0xff, 0, 0, 0xff},
	"green": color.RGBA{0, 0x80, 0, 0xff},
	"blue":  color.RGBA{0, 0, 0xff, 0xff},
}

// Hex formats c as a #rrggbb string.
func Hex(c color.Color) string {
	r := RGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}

// RGBA converts c to non-premultiplied 8-bit RGBA.
func RGBA(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{n.R, n.G, n.B, n.A}
}

// ParseHex parses a #rgb or #rrggbb color.
func ParseHex(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}
