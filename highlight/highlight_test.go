// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlight

import "testing"

func TestSelection(t *testing.T) {
	var s Selection
	if s.Active() || s.Opacity("a", "#fff") != 1 {
		t.Fatalf("zero Selection is active")
	}

	s.SelectLabels("a", "b")
	for _, test := range []struct {
		label, color string
		want         float64
	}{
		{"a", "#000", 1},
		{"b", "#fff", 1},
		{"c", "#000", DimOpacity},
	} {
		if got := s.Opacity(test.label, test.color); got != test.want {
			t.Errorf("labels: Opacity(%q, %q) = %v, want %v", test.label, test.color, got, test.want)
		}
	}

	s.SelectColor("#000")
	if s.Opacity("a", "#fff") != DimOpacity || s.Opacity("z", "#000") != 1 {
		t.Errorf("color selection did not replace label selection")
	}
	if len(s.Labels()) != 0 {
		t.Errorf("Labels = %v after SelectColor", s.Labels())
	}

	s.Clear()
	if s.Active() {
		t.Errorf("Clear left selection active")
	}
}
