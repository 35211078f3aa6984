// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"github.com/aclements/go-charts/animate"
	"github.com/aclements/go-charts/colors"
	"github.com/aclements/go-charts/internal/textwidth"
	"github.com/aclements/go-charts/tooltip"
	"github.com/aclements/go-charts/treemap"
)

// Treemap lays out a treemap with one tile per item with a positive
// value. Tile areas are proportional to values.
func Treemap(items []TreemapItem, p Props) (*Layout, error) {
	p, err := p.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("treemap chart: %w", err)
	}
	var ids []string
	explicit := make(map[string]string)
	ti := make([]treemap.Item, len(items))
	for i, it := range items {
		ti[i] = treemap.Item{ID: it.ID, Value: it.Value}
		ids = append(ids, it.ID)
		if it.Color != "" {
			explicit[it.ID] = it.Color
		}
	}
	cs := colors.NewScale(ids, p.Palette)
	fr := newFrame(p, gutters{})
	plot := fr.plot

	tile := treemap.Layout
	if p.SliceDice {
		tile = treemap.SliceDice
	}
	rects := tile(ti, plot.W, plot.H, p.TilePadding)
	if len(rects) == 0 {
		return newLayout(TreemapChart, p).empty(p), nil
	}

	l := newLayout(TreemapChart, p)
	l.decorate(fr, p, nil, cs)
	th := textwidth.Height()
	for _, r := range rects {
		m := Mark{Kind: RectMark, Class: "tile", X: plot.X + r.X0, Y: plot.Y + r.Y0, W: r.X1 - r.X0, H: r.Y1 - r.Y0, Label: r.ID}
		m.Fill = cs.Resolve(r.ID, explicit[r.ID])
		f := tooltip.Fields{Label: r.ID, Size: round(r.Value, p.Precision), Color: explicit[r.ID]}
		interactive(&m, p, f, m.X+m.W/2, m.Y+m.H/2)
		if p.Animate {
			from := m.style()
			from.Values["opacity"] = 0
			tr := animate.Update(from, m.style(), p.Duration)
			m.Transition = &tr
		}
		l.add(m)
		if m.H < th+4 {
			continue
		}
		if text := textwidth.Fit(textwidth.Truncate(r.ID, p.TruncateLabels), m.W-8); text != "" {
			l.add(Mark{Kind: TextMark, Class: "tile-label", X: m.X + 4, Y: m.Y + th, Text: text, Anchor: AnchorStart, Label: r.ID})
		}
	}
	return l, nil
}
