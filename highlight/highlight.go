// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlight tracks which marks of a chart are emphasized.
package highlight

// DimOpacity is the opacity of marks outside an active selection.
const DimOpacity = 0.3

// A Selection is either a set of labels or a single color. Selecting
// one clears the other. The zero Selection is inactive.
type Selection struct {
	labels map[string]bool
	color  string
}

// SelectLabels highlights marks with any of the given labels.
func (s *Selection) SelectLabels(labels ...string) {
	s.color = ""
	s.labels = make(map[string]bool, len(labels))
	for _, l := range labels {
		s.labels[l] = true
	}
}

// SelectColor highlights marks drawn in color c.
func (s *Selection) SelectColor(c string) {
	s.labels = nil
	s.color = c
}

// Clear deactivates s.
func (s *Selection) Clear() {
	*s = Selection{}
}

// Active reports whether anything is selected.
func (s Selection) Active() bool {
	return len(s.labels) > 0 || s.color != ""
}

// Labels returns the selected labels, if any.
func (s Selection) Labels() []string {
	var out []string
	for l := range s.labels {
		out = append(out, l)
	}
	return out
}

// Match reports whether a mark with the given label and color is
// selected. Every mark matches an inactive selection.
func (s Selection) Match(label, color string) bool {
	switch {
	case len(s.labels) > 0:
		return s.labels[label]
	case s.color != "":
		return s.color == color
	}
	return true
}

// Opacity returns the opacity of a mark with the given label and
// color.
func (s Selection) Opacity(label, color string) float64 {
	if s.Match(label, color) {
		return 1
	}
	return DimOpacity
}
