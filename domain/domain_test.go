// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"math"
	"testing"
)

func TestInfer(t *testing.T) {
	nan := math.NaN()
	for _, test := range []struct {
		name string
		vs   []float64
		o    *Options
		want Domain
	}{
		{"positive", []float64{3, 7, 1}, nil, Domain{0, 7}},
		{"negative", []float64{-3, -7, -1}, nil, Domain{-7, 0}},
		{"crossing", []float64{3, -5}, nil, Domain{-5, 3}},
		{"missing skipped", []float64{nan, 4, nan, -2}, nil, Domain{-2, 4}},
		{"zero is a value", []float64{0, nan}, nil, Domain{0, 0}},
		{"empty", nil, nil, Domain{0, 0}},
		{"all missing", []float64{nan, nan}, nil, Domain{0, 0}},
		{"infinities skipped", []float64{math.Inf(1), 2}, nil, Domain{0, 2}},
		{"override both", []float64{3, 7}, &Options{Min: 5, Max: 6}, Domain{5, 6}},
		{"override min", []float64{3, 7}, &Options{Min: 2, Max: nan}, Domain{2, 7}},
		{"override max", []float64{-3, -7}, &Options{Min: nan, Max: -1}, Domain{-7, -1}},
		{"no override", []float64{1, 2}, NoOverride(), Domain{0, 2}},
		{"override without data", nil, &Options{Min: nan, Max: 10}, Domain{0, 10}},
	} {
		got := Infer(test.vs, test.o)
		if got != test.want {
			t.Errorf("%s: Infer(%v) = %v, want %v", test.name, test.vs, got, test.want)
		}
	}
}

func TestInferClamp(t *testing.T) {
	for _, vs := range [][]float64{{-1}, {-5, -0.5}, {-1e9, -1e-9}} {
		if d := Infer(vs, nil); d.Max != 0 {
			t.Errorf("Infer(%v).Max = %g, want 0", vs, d.Max)
		}
	}
	for _, vs := range [][]float64{{0}, {5, 0.5}, {1e9, 1e-9}} {
		if d := Infer(vs, nil); d.Min != 0 {
			t.Errorf("Infer(%v).Min = %g, want 0", vs, d.Min)
		}
	}
}

func TestExtent(t *testing.T) {
	min, max, ok := Extent([]float64{math.NaN(), 4, -1, 2})
	if !ok || min != -1 || max != 4 {
		t.Errorf("Extent = %g, %g, %v, want -1, 4, true", min, max, ok)
	}
	if _, _, ok := Extent([]float64{math.NaN()}); ok {
		t.Errorf("Extent of all-missing series reported ok")
	}
}

func TestMaxOf(t *testing.T) {
	values := []float64{10, 20}
	targets := []float64{math.NaN(), 25}
	if got := MaxOf(values, targets); got != 25 {
		t.Errorf("MaxOf = %g, want 25", got)
	}
	if got := MinOf(values, []float64{-3}); got != -3 {
		t.Errorf("MinOf = %g, want -3", got)
	}
	if got := MaxOf(nil, []float64{math.NaN()}); !math.IsNaN(got) {
		t.Errorf("MaxOf of empty series = %g, want NaN", got)
	}
	if got := InferAll(nil, values, targets); got != (Domain{0, 25}) {
		t.Errorf("InferAll = %v, want [0,25]", got)
	}
}

func TestInclude(t *testing.T) {
	d := Domain{1, 2}.Include(-1).Include(math.NaN()).Include(5)
	if d != (Domain{-1, 5}) {
		t.Errorf("Include = %v, want [-1,5]", d)
	}
	if !d.CrossesZero() || d.Degenerate() || d.Span() != 6 {
		t.Errorf("%v: CrossesZero=%v Degenerate=%v Span=%g", d, d.CrossesZero(), d.Degenerate(), d.Span())
	}
}
