package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/mesh-slice/meshslice"
	"github.com/unixpickle/model3d/model3d"
)

func main() {
	var configPath string
	size := meshslice.NewCoordFlag(model3d.Coord3D{})
	var insets [3]float64
	var opts meshslice.Options
	flag.StringVar(&configPath, "config", "", "JSON slice configuration (overrides other slice flags)")
	flag.Var(size, "size", "target size of the bounding box")
	flag.Float64Var(&insets[0], "inset-x", -1, "x inset fraction (negative to leave x unchanged)")
	flag.Float64Var(&insets[1], "inset-y", -1, "y inset fraction (negative to leave y unchanged)")
	flag.Float64Var(&insets[2], "inset-z", -1, "z inset fraction (negative to leave z unchanged)")
	flag.BoolVar(&opts.Compact, "compact", false, "drop replaced triangles")
	flag.BoolVar(&opts.Verbose, "verbose", false, "log per-plane statistics")
	flag.IntVar(&opts.Concurrency, "concurrency", 0, "goroutines for classification (0 for all CPUs)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: slice_mesh [flags] <input.stl|mesh> <output.stl|mesh>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading mesh...")
	mesh, err := meshslice.LoadFile(inputPath)
	essentials.Must(err)

	var config meshslice.SliceConfig
	if configPath != "" {
		f, err := os.Open(configPath)
		essentials.Must(err)
		err = json.NewDecoder(f).Decode(&config)
		f.Close()
		essentials.Must(err)
	} else {
		// Disabled axes keep the source size.
		sizeArr := size.Array()
		sourceArr := mesh.Size().Array()
		for i, inset := range insets {
			if inset < 0 {
				continue
			}
			config.Axes[i] = meshslice.NewAxisConfig(inset)
			if sizeArr[i] == 0 {
				sizeArr[i] = sourceArr[i]
			}
		}
		config.Size = model3d.NewCoord3DArray(sizeArr)
	}

	log.Println("Source size:", mesh.Size())
	log.Println("Slicing mesh...")
	sliced, err := meshslice.Recompute(mesh, &meshslice.Slicer{Config: &config, Options: opts})
	essentials.Must(err)
	log.Println("Result size:", sliced.Size())

	log.Println("Saving mesh...")
	essentials.Must(meshslice.SaveFile(outputPath, sliced))
}
