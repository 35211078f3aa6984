// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tooltip formats the text shown for a hovered or clicked
// chart mark.
package tooltip

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Fields are the values of a data point available to a template.
type Fields struct {
	Label string
	Size  float64 // NaN if missing
	Color string
	Date  time.Time
	Extra map[string]string
}

// An Event is delivered for a hovered or clicked mark. X and Y are the
// pixel coordinates of the mark's anchor.
type Event struct {
	Point Fields
	X, Y  float64
}

type kind int

const (
	kindDefault kind = iota
	kindLiteral
	kindFunc
)

// A Template renders Fields to text. It is either a literal string
// with placeholders or a function.
//
// The zero Template renders "{label}: {size}".
type Template struct {
	kind kind
	segs []segment
	fn   func(Fields) string
}

// A segment is either literal text or a placeholder name.
type segment struct {
	text string
	ref  bool
}

// Literal returns a template that substitutes {label}, {size},
// {color}, {date} and {extra.KEY} in s. Unknown placeholders are left
// as written. "{{" produces a literal "{".
func Literal(s string) Template {
	return Template{kind: kindLiteral, segs: parse(s)}
}

// Func returns a template that calls f.
func Func(f func(Fields) string) Template {
	if f == nil {
		return Template{}
	}
	return Template{kind: kindFunc, fn: f}
}

var defaultSegs = parse("{label}: {size}")

// IsZero reports whether t is the zero Template.
func (t Template) IsZero() bool {
	return t.kind == kindDefault
}

// Render returns the text for p.
func (t Template) Render(p Fields) string {
	switch t.kind {
	case kindFunc:
		return t.fn(p)
	case kindLiteral:
		return expand(t.segs, p)
	}
	if math.IsNaN(p.Size) {
		return p.Label
	}
	return expand(defaultSegs, p)
}

func parse(s string) []segment {
	var segs []segment
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			segs = append(segs, segment{text: text.String()})
			text.Reset()
		}
	}
	for len(s) > 0 {
		if strings.HasPrefix(s, "{{") {
			text.WriteByte('{')
			s = s[2:]
			continue
		}
		if s[0] == '{' {
			if end := strings.IndexByte(s, '}'); end > 0 {
				flush()
				segs = append(segs, segment{text: s[1:end], ref: true})
				s = s[end+1:]
				continue
			}
		}
		text.WriteByte(s[0])
		s = s[1:]
	}
	flush()
	return segs
}

func expand(segs []segment, p Fields) string {
	var b strings.Builder
	for _, seg := range segs {
		if !seg.ref {
			b.WriteString(seg.text)
			continue
		}
		v, ok := lookup(seg.text, p)
		if !ok {
			b.WriteString("{" + seg.text + "}")
			continue
		}
		b.WriteString(v)
	}
	return b.String()
}

func lookup(name string, p Fields) (string, bool) {
	switch name {
	case "label":
		return p.Label, true
	case "size":
		return FormatSize(p.Size), true
	case "color":
		return p.Color, true
	case "date":
		if p.Date.IsZero() {
			return "", true
		}
		return p.Date.Format("2006-01-02"), true
	}
	if key, ok := strings.CutPrefix(name, "extra."); ok {
		return p.Extra[key], true
	}
	return "", false
}

// FormatSize formats a data value for display. Missing values format
// as the empty string.
func FormatSize(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
