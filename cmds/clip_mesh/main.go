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
	normal := meshslice.NewCoordFlag(model3d.Coord3D{})
	euler := meshslice.NewCoordFlag(model3d.Origin)
	var opts meshslice.Options
	flag.Var(point, "point", "a point on the plane")
	flag.Var(normal, "normal", "plane normal pointing at the removed side (overrides -euler)")
	flag.Var(euler, "euler", "plane orientation as euler angles in degrees, "+
		"rotating +Z to the normal")
	flag.BoolVar(&opts.Compact, "compact", false, "drop removed triangles")
	flag.BoolVar(&opts.Verbose, "verbose", false, "log per-plane statistics")
	flag.IntVar(&opts.Concurrency, "concurrency", 0, "goroutines for classification (0 for all CPUs)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: clip_mesh [flags] <input.stl|mesh> <output.stl|mesh>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	var plane *meshslice.Plane
	if normal.Coord3D != (model3d.Coord3D{}) {
		plane = meshslice.NewPlanePoint(normal.Normalize(), point.Coord3D)
	} else {
		plane = meshslice.NewPlaneEuler(point.Coord3D, euler.Coord3D)
	}

	log.Println("Loading mesh...")
	mesh, err := meshslice.LoadFile(inputPath)
	essentials.Must(err)

	log.Println("Clipping mesh...")
	clipped, err := meshslice.Recompute(mesh, &meshslice.Clipper{Plane: plane, Options: opts})
	essentials.Must(err)
	log.Printf("Created %d triangles and %d vertices.",
		clipped.NumTriangles()-mesh.NumTriangles(), clipped.NumVertices()-mesh.NumVertices())

	log.Println("Saving mesh...")
	essentials.Must(meshslice.SaveFile(outputPath, clipped))
}
