// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chartsvg renders a chart definition to SVG.
//
// The input is a YAML chart definition:
//
//	type: bar
//	title: Sales
//	sort: desc
//	data:
//	  - {label: North, size: 12}
//	  - {label: South, size: null}
//
// Null numbers are missing values. If the records carry dates, chartsvg
// renders the slice for one date: the latest, or the earliest if
// autoplay is set. With -frames, it instead steps through every date
// and writes one SVG per date into a directory.
//
// The environment variables CHARTSVG_WIDTH, CHARTSVG_HEIGHT,
// CHARTSVG_PALETTE and CHARTSVG_ANIMATE supply defaults that the
// definition and flags override.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/aclements/go-charts/chart"
	"github.com/aclements/go-charts/svgchart"
	"github.com/aclements/go-charts/timeline"
)

var verbose bool

func main() {
	log.SetPrefix("chartsvg: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagFrames     = flag.String("frames", "", "write one SVG per date to `dir`")
		flagWidth      = flag.Float64("width", 0, "chart width in pixels")
		flagHeight     = flag.Float64("height", 0, "chart height in pixels")
		flagAnimate    = flag.Bool("animate", false, "animate marks into place")
		flagNoHit      = flag.Bool("nohit", false, "omit scatter hit regions")
	)
	flag.BoolVar(&verbose, "v", false, "print progress to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	env, err := loadEnv(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	path := "-"
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}
	def, err := loadDefinition(path)
	if err != nil {
		log.Fatal(err)
	}
	p, err := def.props(env)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			p.Width = *flagWidth
		case "height":
			p.Height = *flagHeight
		case "animate":
			p.Animate = *flagAnimate
		}
	})
	opts := &svgchart.Options{NoHitRegions: *flagNoHit}

	if *flagFrames != "" {
		n, err := writeFrames(*flagFrames, def, p, opts)
		if err != nil {
			log.Fatal(err)
		}
		if verbose {
			log.Printf("wrote %d frames to %s", n, *flagFrames)
		}
		return
	}

	out := os.Stdout
	if *flagOut != "" {
		out, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
	}
	bw := bufio.NewWriter(out)
	err = render(bw, def, p, opts)
	if err == nil {
		err = bw.Flush()
	}
	if out != os.Stdout {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadDefinition(path string) (*Definition, error) {
	if path == "-" {
		return readDefinition(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading chart definition: %w", err)
	}
	defer f.Close()
	def, err := readDefinition(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

func recordDate(r Record) time.Time { return r.date }

// render writes def to w as a single chart. Dated records are reduced
// to the slice for the timeline's starting date.
func render(w io.Writer, def *Definition, p chart.Props, opts *svgchart.Options) error {
	recs := def.Data
	if ds := dates(recs); len(ds) > 0 {
		speed, err := def.speed()
		if err != nil {
			return err
		}
		player := timeline.New(ds, timeline.Options{Speed: speed})
		if def.Autoplay {
			player.Scrub(0)
		}
		date, _ := player.State().Current()
		player.Close()
		recs = timeline.Slice(recs, recordDate, date)
		if verbose {
			log.Printf("rendering %d records dated %s", len(recs), date.Format("2006-01-02"))
		}
	}
	l, err := def.layout(recs, p)
	if err != nil {
		return err
	}
	return svgchart.Write(w, l, opts)
}

// writeFrames steps a timeline through every date of def and writes
// each slice to dir as frame-NNN.svg. It returns the number of frames.
func writeFrames(dir string, def *Definition, p chart.Props, opts *svgchart.Options) (int, error) {
	ds := dates(def.Data)
	if len(ds) == 0 {
		return 0, fmt.Errorf("-frames requires dated records")
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return 0, err
	}
	speed, err := def.speed()
	if err != nil {
		return 0, err
	}
	player := timeline.New(ds, timeline.Options{Speed: speed})
	defer player.Close()
	player.Scrub(0)

	n := len(player.State().Dates)
	for i := 0; i < n; i++ {
		s := player.State()
		date, _ := s.Current()
		l, err := def.layout(timeline.Slice(def.Data, recordDate, date), p)
		if err != nil {
			return i, fmt.Errorf("%s: %w", date.Format("2006-01-02"), err)
		}
		name := filepath.Join(dir, fmt.Sprintf("frame-%03d.svg", s.Index))
		if err := writeFile(name, l, opts); err != nil {
			return i, err
		}
		if verbose {
			log.Printf("%s: %s", name, date.Format("2006-01-02"))
		}
		player.Tick()
	}
	return n, nil
}

func writeFile(name string, l *chart.Layout, opts *svgchart.Options) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	err = svgchart.Write(bw, l, opts)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
