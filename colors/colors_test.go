// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"
)

func TestScale(t *testing.T) {
	p, err := Fixed("#ff0000", "#00ff00")
	if err != nil {
		t.Fatal(err)
	}
	s := NewScale([]string{"a", "b", "a", "c"}, p)
	for _, test := range []struct {
		label string
		want  string
	}{
		{"a", "#ff0000"},
		{"b", "#00ff00"},
		{"c", "#ff0000"}, // cycles
		{"unknown", "#a0a0a0"},
	} {
		if got := Hex(s.Map(test.label)); got != test.want {
			t.Errorf("Map(%q) = %s, want %s", test.label, got, test.want)
		}
	}
	if got := len(s.Labels()); got != 3 {
		t.Errorf("Labels has %d entries, want 3", got)
	}
}

func TestNeutralFallback(t *testing.T) {
	gray := color.RGBA{0x11, 0x22, 0x33, 0xff}
	s := NewScale([]string{"a"}, Palette{Neutral: gray})
	if got := s.Map("a"); got != gray {
		t.Errorf("empty palette Map = %v, want neutral %v", got, gray)
	}
	if got := NewScale(nil, Palette{}).Map("x"); got != Neutral {
		t.Errorf("zero palette Map = %v, want package Neutral", got)
	}
}

func TestResolve(t *testing.T) {
	s := NewScale([]string{"a"}, Default())
	if got := Hex(s.Resolve("a", "#123456")); got != "#123456" {
		t.Errorf("explicit hex resolved to %s", got)
	}
	if got := Hex(s.Resolve("a", "Red")); got != "#ff0000" {
		t.Errorf("named color resolved to %s", got)
	}
	if got, want := s.Resolve("a", "not a color"), s.Map("a"); got != want {
		t.Errorf("bad explicit color resolved to %v, want scale color %v", got, want)
	}
}

func TestParseHex(t *testing.T) {
	for _, test := range []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#abc", color.RGBA{0xaa, 0xbb, 0xcc, 0xff}, true},
		{"#0a0B0c", color.RGBA{0x0a, 0x0b, 0x0c, 0xff}, true},
		{"abcdef", color.RGBA{}, false},
		{"#abcd", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
	} {
		got, err := ParseHex(test.in)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("ParseHex(%q) = %v, %v; want %v, ok=%v", test.in, got, err, test.want, test.ok)
		}
	}
}

func TestDefault(t *testing.T) {
	p := Default()
	if len(p.Categorical) == 0 || p.Sequential == nil || p.Neutral == nil {
		t.Fatalf("Default palette incomplete: %+v", p)
	}
	if got := len(p.Ramp(4)); got != 4 {
		t.Errorf("Ramp(4) has %d colors", got)
	}
	if _, err := Brewer("NoSuchScheme", 3); err == nil {
		t.Errorf("Brewer of unknown scheme succeeded")
	}
}
