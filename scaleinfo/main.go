// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scaleinfo shows the scales a plot of tabular data would
// use.
//
// scaleinfo reads a tab-separated table whose first line names the
// columns. Each column is typed as numbers, booleans, times (RFC 3339
// or YYYY-MM-DD), or strings; empty cells are missing values.
// scaleinfo binds columns to the x, y, and r channels, expands
// interval-bound channels into their lower and upper bounds, resolves
// a scale for each channel, assigns ranges from the plot dimensions,
// and prints the result as a table.
//
// For example, to bin a "latency" column into 10ms intervals against
// a "host" column:
//
//	scaleinfo -x latency -x-interval 10 -y host data.tsv
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotscale/scales"
)

func main() {
	log.SetPrefix("scaleinfo: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagVerbose    = flag.Bool("v", false, "log channel expansion")
		flagX          = flag.String("x", "", "bind the x channel to `column`")
		flagY          = flag.String("y", "", "bind the y channel to `column`")
		flagR          = flag.String("r", "", "bind the r channel to `column`")
		flagXInterval  = flag.Float64("x-interval", 0, "bin x into intervals of `width`")
		flagYInterval  = flag.Float64("y-interval", 0, "bin y into intervals of `width`")
		flagRect       = flag.Bool("rect", false, "treat unbinned x and y as zero-width intervals")
		flagTypes      = flag.String("type", "", "comma-separated scale types, for example `x=log,y=band`")
		flagWidth      = flag.Float64("width", 640, "plot width in pixels")
		flagHeight     = flag.Float64("height", 400, "plot height in pixels")
		flagMargin     = flag.Float64("margin", 20, "plot margin in pixels")
	)
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

	types, err := parseTypes(*flagTypes)
	if err != nil {
		log.Fatal(err)
	}
	cfg := config{
		channels:  map[string]string{"x": *flagX, "y": *flagY, "r": *flagR},
		intervals: map[string]float64{"x": *flagXInterval, "y": *flagYInterval},
		rect:      *flagRect,
		types:     types,
		dims: scales.Dimensions{
			Width:        *flagWidth,
			Height:       *flagHeight,
			MarginTop:    *flagMargin,
			MarginRight:  *flagMargin,
			MarginBottom: *flagMargin,
			MarginLeft:   *flagMargin,
		},
	}
	if *flagVerbose {
		cfg.logf = log.Printf
	}

	// Read the input table.
	in := os.Stdin
	if path := flag.Arg(0); path != "" && path != "-" {
		in, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
	}
	tab, err := readTable(in)
	if err != nil {
		log.Fatal(err)
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	ss, err := resolve(tab, cfg)
	if ss == nil {
		log.Fatal(err)
	}
	if err != nil {
		// Scales that did resolve are still worth showing.
		log.Print(err)
	}
	table.Fprint(f, summarize(ss))
}

// parseTypes parses a list of key=type pairs into scale options.
func parseTypes(s string) (map[string]scales.Options, error) {
	opts := make(map[string]scales.Options)
	if s == "" {
		return opts, nil
	}
	for _, kv := range strings.Split(s, ",") {
		i := strings.Index(kv, "=")
		if i <= 0 || i == len(kv)-1 {
			return nil, fmt.Errorf("bad scale type %q; want key=type", kv)
		}
		key := strings.TrimSpace(kv[:i])
		opts[key] = scales.Options{Type: scales.ScaleType(strings.TrimSpace(kv[i+1:]))}
	}
	return opts, nil
}
