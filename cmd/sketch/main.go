// seehuhn.de/go/sketch - a pixel-level vector renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command sketch renders the test scenes into PNG images.
//
// Every pixel of the device grid is enlarged to a block of -scale×-scale
// output pixels, optionally separated by grid lines. With -frames n > 1,
// each scene is rendered as an n-frame animation in which the shape turns
// once about its centre.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/testcases"
)

func main() {
	outDir := flag.String("o", "out", "output directory")
	scale := flag.Int("scale", 4, "output pixels per device pixel")
	grid := flag.Bool("grid", false, "draw the pixel grid")
	frames := flag.Int("frames", 1, "number of animation frames per scene")
	category := flag.String("category", "", "only render scenes of this category")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	err := run(*outDir, *category, *scale, *frames, *grid)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sketch:", err)
		os.Exit(1)
	}
}

func run(outDir, only string, scale, frames int, grid bool) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	var gridColor color.Color
	if grid {
		gridColor = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if only != "" && category != only {
			continue
		}
		for _, tc := range testcases.All[category] {
			fb := sketch.NewFramebuffer(tc.Width, tc.Height)
			r := sketch.NewRenderer(fb, tc.Width, tc.Height)

			for i := range max(frames, 1) {
				frame := tc
				if frames > 1 {
					frame = tc.Frame(i, frames)
				}
				r.Clear()
				if err := frame.Render(r); err != nil {
					slog.Warn("skipping frame", "scene", frame.Name, "err", err)
					continue
				}
				name := filepath.Join(outDir, category+"_"+frame.Name+".png")
				if err := writePNG(name, fb.Present(scale, gridColor)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
