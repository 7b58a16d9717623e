package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/mesh-slice/meshslice"
	"github.com/unixpickle/model3d/model3d"
)

func main() {
	point := meshslice.NewCoordFlag(model3d.Origin)
	normal := meshslice.NewCoordFlag(model3d.X(1))
	var offset float64
	var opts meshslice.Options
	flag.Var(point, "point", "a point on the plane")
	flag.Var(normal, "normal", "plane normal pointing at the moved side")
	flag.Float64Var(&offset, "offset", 1, "distance to move geometry along the normal")
	flag.BoolVar(&opts.Compact, "compact", false, "drop replaced triangles")
	flag.BoolVar(&opts.Verbose, "verbose", false, "log per-plane statistics")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: stretch_mesh [flags] <input.stl|mesh> <output.stl|mesh>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	if normal.Norm() == 0 {
		essentials.Die("normal must be non-zero")
	}
	plane := meshslice.NewPlanePoint(normal.Normalize(), point.Coord3D)

	log.Println("Loading mesh...")
	mesh, err := meshslice.LoadFile(inputPath)
	essentials.Must(err)

	log.Println("Stretching mesh...")
	stretcher := &meshslice.Stretcher{Plane: plane, Offset: offset, Options: opts}
	stretched, err := meshslice.Recompute(mesh, stretcher)
	essentials.Must(err)

	log.Println("Saving mesh...")
	essentials.Must(meshslice.SaveFile(outputPath, stretched))
}
