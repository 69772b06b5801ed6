// Command export writes the device-space geometry of all test scenes to
// JSON, for use by external reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string     `json:"name"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Paths  []jsonPath `json:"paths"`
}

type jsonPath struct {
	Closed bool     `json:"closed,omitempty"`
	Pts    [][2]int `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}

	paths, err := tc.Paths()
	if err != nil {
		return jtc, err
	}
	dev := sketch.Device{Width: tc.Width, Height: tc.Height}
	for _, p := range paths {
		jp := jsonPath{Closed: p.Closed}
		for _, q := range dev.WorldToDeviceAll(p.Points) {
			jp.Pts = append(jp.Pts, [2]int{q.X, q.Y})
		}
		jtc.Paths = append(jtc.Paths, jp)
	}
	return jtc, nil
}
